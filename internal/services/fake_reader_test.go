package services_test

import (
	"context"
	"sync"

	"github.com/apmstack/metadata-query/internal/models"
)

// fakeReader returns canned answers and records the calls it receives.
type fakeReader struct {
	mu sync.Mutex

	services    []models.Service
	service     *models.Service
	databases   []models.Database
	endpoints   []models.Endpoint
	instances   []models.ServiceInstance
	numServices int
	numEndpoint int
	byNodeType  map[models.NodeType]int
	err         error

	lastLimit int
	calls     int
}

func (f *fakeReader) record() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
}

func (f *fakeReader) NumOfServices(ctx context.Context, tr models.TimeRange) (int, error) {
	f.record()
	return f.numServices, f.err
}

func (f *fakeReader) NumOfEndpoints(ctx context.Context) (int, error) {
	f.record()
	return f.numEndpoint, f.err
}

func (f *fakeReader) NumOfConjectural(ctx context.Context, nodeType models.NodeType) (int, error) {
	f.record()
	return f.byNodeType[nodeType], f.err
}

func (f *fakeReader) GetAllServices(ctx context.Context, tr models.TimeRange) ([]models.Service, error) {
	f.record()
	return f.services, f.err
}

func (f *fakeReader) GetAllBrowserServices(ctx context.Context, tr models.TimeRange) ([]models.Service, error) {
	f.record()
	return f.services, f.err
}

func (f *fakeReader) GetAllDatabases(ctx context.Context) ([]models.Database, error) {
	f.record()
	return f.databases, f.err
}

func (f *fakeReader) SearchServices(ctx context.Context, tr models.TimeRange, keyword string) ([]models.Service, error) {
	f.record()
	return f.services, f.err
}

func (f *fakeReader) SearchService(ctx context.Context, name string) (*models.Service, error) {
	f.record()
	return f.service, f.err
}

func (f *fakeReader) SearchEndpoint(ctx context.Context, keyword string, serviceID int, limit int) ([]models.Endpoint, error) {
	f.record()
	f.mu.Lock()
	f.lastLimit = limit
	f.mu.Unlock()
	return f.endpoints, f.err
}

func (f *fakeReader) GetServiceInstances(ctx context.Context, tr models.TimeRange, serviceID int) ([]models.ServiceInstance, error) {
	f.record()
	return f.instances, f.err
}
