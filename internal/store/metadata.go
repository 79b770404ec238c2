package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/apmstack/metadata-query/internal/models"
	srvErrors "github.com/apmstack/metadata-query/pkg/errors"
)

// ConnProvider hands out a dedicated connection per operation. *sql.DB satisfies it.
type ConnProvider interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

// MetadataStoreConfig is fixed at construction.
type MetadataStoreConfig struct {
	// MaxSize caps list and search results.
	MaxSize     uint64
	Placeholder sq.PlaceholderFormat
	Metrics     *Metrics
}

// MetadataStore answers read-only inventory questions over the service,
// service instance and endpoint traffic tables.
type MetadataStore struct {
	pool    ConnProvider
	builder sq.StatementBuilderType
	maxSize uint64
	metrics *Metrics
	logger  *zap.SugaredLogger
}

func NewMetadataStore(pool ConnProvider, cfg MetadataStoreConfig) *MetadataStore {
	placeholder := cfg.Placeholder
	if placeholder == nil {
		placeholder = sq.Question
	}
	return &MetadataStore{
		pool:    pool,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		maxSize: cfg.MaxSize,
		metrics: cfg.Metrics,
		logger:  zap.S().Named("metadata_store"),
	}
}

// NumOfServices counts the normal, non-address services alive in tr.
func (s *MetadataStore) NumOfServices(ctx context.Context, tr models.TimeRange) (int, error) {
	return s.count(ctx, "num_of_services", s.numOfServicesQuery(tr))
}

// NumOfEndpoints counts server-side endpoint traffic rows. No time window applies.
func (s *MetadataStore) NumOfEndpoints(ctx context.Context) (int, error) {
	return s.count(ctx, "num_of_endpoints", s.numOfEndpointsQuery())
}

// NumOfConjectural counts the services of the given node type.
func (s *MetadataStore) NumOfConjectural(ctx context.Context, nodeType models.NodeType) (int, error) {
	return s.count(ctx, "num_of_conjectural", s.numOfConjecturalQuery(nodeType))
}

func (s *MetadataStore) GetAllServices(ctx context.Context, tr models.TimeRange) ([]models.Service, error) {
	return s.services(ctx, "get_all_services", s.servicesQuery(tr, models.NodeTypeNormal, ""))
}

func (s *MetadataStore) GetAllBrowserServices(ctx context.Context, tr models.TimeRange) ([]models.Service, error) {
	return s.services(ctx, "get_all_browser_services", s.servicesQuery(tr, models.NodeTypeBrowser, ""))
}

// SearchServices matches names containing keyword literally: % and _ in
// keyword are not wildcards. An empty keyword lists all services.
func (s *MetadataStore) SearchServices(ctx context.Context, tr models.TimeRange, keyword string) ([]models.Service, error) {
	return s.services(ctx, "search_services", s.servicesQuery(tr, models.NodeTypeNormal, keyword))
}

// SearchService returns the first non-address service named exactly name.
// A nil service with a nil error means nothing matched.
func (s *MetadataStore) SearchService(ctx context.Context, name string) (*models.Service, error) {
	var service *models.Service
	err := s.query(ctx, "search_service", s.searchServiceQuery(name), func(rows *sql.Rows) error {
		if !rows.Next() {
			return nil
		}
		svc, err := scanService(rows)
		if err != nil {
			return err
		}
		service = &svc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return service, nil
}

func (s *MetadataStore) services(ctx context.Context, op string, builder sq.SelectBuilder) ([]models.Service, error) {
	var services []models.Service
	err := s.query(ctx, op, builder, func(rows *sql.Rows) error {
		for rows.Next() {
			svc, err := scanService(rows)
			if err != nil {
				return err
			}
			services = append(services, svc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (s *MetadataStore) GetAllDatabases(ctx context.Context) ([]models.Database, error) {
	var databases []models.Database
	err := s.query(ctx, "get_all_databases", s.databasesQuery(), func(rows *sql.Rows) error {
		for rows.Next() {
			db, err := s.scanDatabase(rows)
			if err != nil {
				return err
			}
			databases = append(databases, db)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return databases, nil
}

// SearchEndpoint fetches up to 7*limit server-side endpoint rows of a service.
// Rows are not deduplicated: several traffic rows may carry the same endpoint ID.
func (s *MetadataStore) SearchEndpoint(ctx context.Context, keyword string, serviceID int, limit int) ([]models.Endpoint, error) {
	var endpoints []models.Endpoint
	err := s.query(ctx, "search_endpoint", s.searchEndpointQuery(keyword, serviceID, limit), func(rows *sql.Rows) error {
		for rows.Next() {
			endpoint, err := scanEndpoint(rows)
			if err != nil {
				return err
			}
			endpoints = append(endpoints, endpoint)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return endpoints, nil
}

func (s *MetadataStore) GetServiceInstances(ctx context.Context, tr models.TimeRange, serviceID int) ([]models.ServiceInstance, error) {
	var instances []models.ServiceInstance
	err := s.query(ctx, "get_service_instances", s.serviceInstancesQuery(tr, serviceID), func(rows *sql.Rows) error {
		for rows.Next() {
			instance, err := s.scanServiceInstance(rows)
			if err != nil {
				return err
			}
			instances = append(instances, instance)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return instances, nil
}

func (s *MetadataStore) numOfServicesQuery(tr models.TimeRange) sq.SelectBuilder {
	return apply(s.builder.Select(countColumn).From(tableServiceInventory),
		ByTimeRange(tr),
		NotAddress(),
		ByNodeType(models.NodeTypeNormal),
	)
}

func (s *MetadataStore) numOfEndpointsQuery() sq.SelectBuilder {
	return apply(s.builder.Select(countColumn).From(tableEndpointTraffic),
		ByDetectPoint(models.DetectPointServer),
	)
}

func (s *MetadataStore) numOfConjecturalQuery(nodeType models.NodeType) sq.SelectBuilder {
	return apply(s.builder.Select(countColumn).From(tableServiceInventory),
		ByNodeType(nodeType),
	)
}

func (s *MetadataStore) servicesQuery(tr models.TimeRange, nodeType models.NodeType, keyword string) sq.SelectBuilder {
	return apply(s.builder.Select(colSequence, colName).From(tableServiceInventory),
		ByTimeRange(tr),
		NotAddress(),
		ByNodeType(nodeType),
		ByNameContains(keyword),
		WithLimit(s.maxSize),
	)
}

func (s *MetadataStore) searchServiceQuery(name string) sq.SelectBuilder {
	return apply(s.builder.Select(colSequence, colName).From(tableServiceInventory),
		NotAddress(),
		ByName(name),
		WithLimit(1),
	)
}

func (s *MetadataStore) databasesQuery() sq.SelectBuilder {
	return apply(s.builder.Select(colSequence, colName, colProperties).From(tableServiceInventory),
		ByNodeType(models.NodeTypeDatabase),
		WithLimit(s.maxSize),
	)
}

func (s *MetadataStore) searchEndpointQuery(keyword string, serviceID int, limit int) sq.SelectBuilder {
	var fetch uint64
	switch {
	case limit <= 0:
	case uint64(limit) > maxEndpointFetch/endpointFetchMultiplier:
		fetch = maxEndpointFetch
	default:
		fetch = uint64(limit) * endpointFetchMultiplier
	}
	return apply(s.builder.Select(colServiceID, colName, colDetectPoint, colTimeBucket).From(tableEndpointTraffic),
		ByServiceID(serviceID),
		ByNameContains(keyword),
		ByDetectPoint(models.DetectPointServer),
		WithLimit(fetch),
	)
}

func (s *MetadataStore) serviceInstancesQuery(tr models.TimeRange, serviceID int) sq.SelectBuilder {
	return apply(s.builder.Select(colSequence, colName, colInstanceUUID, colProperties).From(tableServiceInstanceInventory),
		ByTimeRange(tr),
		ByServiceID(serviceID),
	)
}

// count returns 0 when the statement yields no row.
func (s *MetadataStore) count(ctx context.Context, op string, builder sq.SelectBuilder) (int, error) {
	var num int
	err := s.query(ctx, op, builder, func(rows *sql.Rows) error {
		if !rows.Next() {
			return nil
		}
		var n sql.NullInt64
		if err := rows.Scan(&n); err != nil {
			return err
		}
		num = int(n.Int64)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return num, nil
}

// query renders builder, runs it on a connection acquired for this call only
// and hands the cursor to consume. The connection is released on every path.
// Any executor failure comes back as a StorageError.
func (s *MetadataStore) query(ctx context.Context, op string, builder sq.SelectBuilder, consume func(*sql.Rows) error) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.observe(op, start, err)
		if err != nil {
			err = srvErrors.NewStorageError(op, err)
		}
	}()

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	conn, err := s.pool.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	rows, err := NewQueryInterceptor(conn).QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if err := consume(rows); err != nil {
		return err
	}
	return rows.Err()
}
