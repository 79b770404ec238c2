package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/apmstack/metadata-query/internal/models"
	srvErrors "github.com/apmstack/metadata-query/pkg/errors"
	"github.com/apmstack/metadata-query/pkg/scheduler"
)

// MetadataReader is the query surface of store.MetadataStore.
type MetadataReader interface {
	NumOfServices(ctx context.Context, tr models.TimeRange) (int, error)
	NumOfEndpoints(ctx context.Context) (int, error)
	NumOfConjectural(ctx context.Context, nodeType models.NodeType) (int, error)
	GetAllServices(ctx context.Context, tr models.TimeRange) ([]models.Service, error)
	GetAllBrowserServices(ctx context.Context, tr models.TimeRange) ([]models.Service, error)
	GetAllDatabases(ctx context.Context) ([]models.Database, error)
	SearchServices(ctx context.Context, tr models.TimeRange, keyword string) ([]models.Service, error)
	SearchService(ctx context.Context, name string) (*models.Service, error)
	SearchEndpoint(ctx context.Context, keyword string, serviceID int, limit int) ([]models.Endpoint, error)
	GetServiceInstances(ctx context.Context, tr models.TimeRange, serviceID int) ([]models.ServiceInstance, error)
}

type MetadataService struct {
	reader    MetadataReader
	scheduler *scheduler.Scheduler
}

func NewMetadataService(reader MetadataReader, sched *scheduler.Scheduler) *MetadataService {
	return &MetadataService{reader: reader, scheduler: sched}
}

func (s *MetadataService) NumOfServices(ctx context.Context, tr models.TimeRange) (int, error) {
	if err := tr.Validate(); err != nil {
		return 0, err
	}
	return s.reader.NumOfServices(ctx, tr)
}

func (s *MetadataService) NumOfEndpoints(ctx context.Context) (int, error) {
	return s.reader.NumOfEndpoints(ctx)
}

func (s *MetadataService) NumOfConjectural(ctx context.Context, nodeType models.NodeType) (int, error) {
	return s.reader.NumOfConjectural(ctx, nodeType)
}

func (s *MetadataService) GetAllServices(ctx context.Context, tr models.TimeRange) ([]models.Service, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return s.reader.GetAllServices(ctx, tr)
}

func (s *MetadataService) GetAllBrowserServices(ctx context.Context, tr models.TimeRange) ([]models.Service, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return s.reader.GetAllBrowserServices(ctx, tr)
}

func (s *MetadataService) GetAllDatabases(ctx context.Context) ([]models.Database, error) {
	return s.reader.GetAllDatabases(ctx)
}

func (s *MetadataService) SearchServices(ctx context.Context, tr models.TimeRange, keyword string) ([]models.Service, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return s.reader.SearchServices(ctx, tr, keyword)
}

// GetService returns ResourceNotFoundError when no non-address service carries name.
func (s *MetadataService) GetService(ctx context.Context, name string) (*models.Service, error) {
	svc, err := s.reader.SearchService(ctx, name)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, srvErrors.NewServiceNotFoundError(name)
	}
	return svc, nil
}

// SearchEndpoints deduplicates the over-fetched traffic rows by endpoint ID,
// keeps first-seen order and truncates to limit. The store only over-fetches
// a fixed multiple of limit, so fewer than limit distinct endpoints may come
// back even when more exist.
func (s *MetadataService) SearchEndpoints(ctx context.Context, keyword string, serviceID int, limit int) ([]models.Endpoint, error) {
	if limit <= 0 {
		return nil, srvErrors.NewValidationError("limit", "must be positive")
	}

	rows, err := s.reader.SearchEndpoint(ctx, keyword, serviceID, limit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rows))
	endpoints := make([]models.Endpoint, 0, min(len(rows), limit))
	for _, e := range rows {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		endpoints = append(endpoints, e)
		if len(endpoints) == limit {
			break
		}
	}
	return endpoints, nil
}

func (s *MetadataService) GetServiceInstances(ctx context.Context, tr models.TimeRange, serviceID int) ([]models.ServiceInstance, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return s.reader.GetServiceInstances(ctx, tr, serviceID)
}

// GlobalBrief runs the five dashboard counts concurrently. The first failure
// cancels the remaining counts and is returned.
func (s *MetadataService) GlobalBrief(ctx context.Context, tr models.TimeRange) (*models.GlobalBrief, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	brief := &models.GlobalBrief{}
	counts := []struct {
		name   string
		target *int
		fn     func(context.Context) (int, error)
	}{
		{"services", &brief.NumOfService, func(ctx context.Context) (int, error) { return s.reader.NumOfServices(ctx, tr) }},
		{"endpoints", &brief.NumOfEndpoint, s.reader.NumOfEndpoints},
		{"databases", &brief.NumOfDatabase, s.conjectural(models.NodeTypeDatabase)},
		{"caches", &brief.NumOfCache, s.conjectural(models.NodeTypeCache)},
		{"mqs", &brief.NumOfMQ, s.conjectural(models.NodeTypeMQ)},
	}

	futures := make([]*scheduler.Future[scheduler.Result[any]], len(counts))
	for i, c := range counts {
		fn := c.fn
		futures[i] = s.scheduler.AddWork(func(ctx context.Context) (any, error) {
			return fn(ctx)
		})
	}
	stopAll := func() {
		for _, f := range futures {
			f.Stop()
		}
	}

	for i, f := range futures {
		result, err := f.Await(ctx)
		if err == nil {
			err = result.Err
		}
		if err != nil {
			stopAll()
			zap.S().Named("metadata_service").Errorw("global brief count failed", "count", counts[i].name, "error", err)
			return nil, fmt.Errorf("failed to count %s: %w", counts[i].name, err)
		}
		n, ok := result.Data.(int)
		if !ok {
			stopAll()
			return nil, fmt.Errorf("unexpected %s count type %T", counts[i].name, result.Data)
		}
		*counts[i].target = n
	}

	return brief, nil
}

func (s *MetadataService) conjectural(nodeType models.NodeType) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		return s.reader.NumOfConjectural(ctx, nodeType)
	}
}
