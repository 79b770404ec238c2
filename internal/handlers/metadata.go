package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/apmstack/metadata-query/api/v1"
	"github.com/apmstack/metadata-query/internal/models"
	srvErrors "github.com/apmstack/metadata-query/pkg/errors"
)

const (
	defaultEndpointLimit = 20
	maxEndpointLimit     = 1000
)

// GetGlobalBrief returns the inventory counters
// (GET /brief)
func (h *Handler) GetGlobalBrief(c *gin.Context, params v1.GetGlobalBriefParams) {
	brief, err := h.metadataSrv.GlobalBrief(c.Request.Context(), models.NewTimeRange(params.Start, params.End))
	if err != nil {
		respondError(c, "get global brief", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewGlobalBriefFromModel(*brief))
}

// GetServices lists the services alive in the window, optionally filtered by keyword
// (GET /services)
func (h *Handler) GetServices(c *gin.Context, params v1.GetServicesParams) {
	tr := models.NewTimeRange(params.Start, params.End)

	var (
		services []models.Service
		err      error
	)
	if params.Keyword != nil && *params.Keyword != "" {
		services, err = h.metadataSrv.SearchServices(c.Request.Context(), tr, *params.Keyword)
	} else {
		services, err = h.metadataSrv.GetAllServices(c.Request.Context(), tr)
	}
	if err != nil {
		respondError(c, "list services", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewServicesFromModel(services))
}

// (GET /services/count)
func (h *Handler) CountServices(c *gin.Context, params v1.CountServicesParams) {
	n, err := h.metadataSrv.NumOfServices(c.Request.Context(), models.NewTimeRange(params.Start, params.End))
	if err != nil {
		respondError(c, "count services", err)
		return
	}
	c.JSON(http.StatusOK, v1.Count{Total: n})
}

// LookupService finds a service by exact name
// (GET /services/lookup)
func (h *Handler) LookupService(c *gin.Context, params v1.LookupServiceParams) {
	svc, err := h.metadataSrv.GetService(c.Request.Context(), params.Name)
	if err != nil {
		respondError(c, "lookup service", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewServiceFromModel(*svc))
}

// (GET /services/{id}/instances)
func (h *Handler) GetServiceInstances(c *gin.Context, id int, params v1.GetServiceInstancesParams) {
	instances, err := h.metadataSrv.GetServiceInstances(c.Request.Context(), models.NewTimeRange(params.Start, params.End), id)
	if err != nil {
		respondError(c, "list service instances", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewServiceInstancesFromModel(instances))
}

// (GET /browser-services)
func (h *Handler) GetBrowserServices(c *gin.Context, params v1.GetBrowserServicesParams) {
	services, err := h.metadataSrv.GetAllBrowserServices(c.Request.Context(), models.NewTimeRange(params.Start, params.End))
	if err != nil {
		respondError(c, "list browser services", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewServicesFromModel(services))
}

// (GET /databases)
func (h *Handler) GetDatabases(c *gin.Context) {
	databases, err := h.metadataSrv.GetAllDatabases(c.Request.Context())
	if err != nil {
		respondError(c, "list databases", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewDatabasesFromModel(databases))
}

// SearchEndpoints returns up to limit distinct server-side endpoints of a service
// (GET /endpoints)
func (h *Handler) SearchEndpoints(c *gin.Context, params v1.SearchEndpointsParams) {
	limit := defaultEndpointLimit
	if params.Limit != nil {
		if *params.Limit <= 0 {
			respondError(c, "search endpoints", srvErrors.NewValidationError("limit", "must be a positive integer"))
			return
		}
		limit = min(*params.Limit, maxEndpointLimit)
	}

	keyword := ""
	if params.Keyword != nil {
		keyword = *params.Keyword
	}

	endpoints, err := h.metadataSrv.SearchEndpoints(c.Request.Context(), keyword, params.ServiceId, limit)
	if err != nil {
		respondError(c, "search endpoints", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewEndpointsFromModel(endpoints))
}

// (GET /endpoints/count)
func (h *Handler) CountEndpoints(c *gin.Context) {
	n, err := h.metadataSrv.NumOfEndpoints(c.Request.Context())
	if err != nil {
		respondError(c, "count endpoints", err)
		return
	}
	c.JSON(http.StatusOK, v1.Count{Total: n})
}

// CountByNodeType accepts a node type name (Database, Cache, ...) or its value
// (GET /node-types/{type}/count)
func (h *Handler) CountByNodeType(c *gin.Context, pType string) {
	nodeType, err := models.ParseNodeType(pType)
	if err != nil {
		respondError(c, "count node type", srvErrors.NewValidationError("type", err.Error()))
		return
	}

	n, err := h.metadataSrv.NumOfConjectural(c.Request.Context(), nodeType)
	if err != nil {
		respondError(c, "count node type", err)
		return
	}
	c.JSON(http.StatusOK, v1.Count{Total: n})
}
