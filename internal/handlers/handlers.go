package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/apmstack/metadata-query/api/v1"
	"github.com/apmstack/metadata-query/internal/services"
	srvErrors "github.com/apmstack/metadata-query/pkg/errors"
)

var _ v1.ServerInterface = (*Handler)(nil)

type Handler struct {
	metadataSrv *services.MetadataService
}

func New(metadataSrv *services.MetadataService) *Handler {
	return &Handler{
		metadataSrv: metadataSrv,
	}
}

// RegisterRoutes mounts the generated v1 routes on router.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{
		ErrorHandler: bindErrorHandler,
	})
}

// bindErrorHandler answers parameter binding failures of the generated wrapper.
func bindErrorHandler(c *gin.Context, err error, statusCode int) {
	c.JSON(statusCode, v1.Error{Error: err.Error()})
}

// respondError maps service errors to HTTP status codes. Storage details are
// logged, never returned.
func respondError(c *gin.Context, op string, err error) {
	switch {
	case srvErrors.IsValidationError(err):
		c.JSON(http.StatusBadRequest, v1.Error{Error: err.Error()})
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, v1.Error{Error: err.Error()})
	default:
		zap.S().Named("metadata_handler").Errorw("request failed", "operation", op, "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to " + op})
	}
}
