package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/apmstack/metadata-query/internal/config"
	"github.com/apmstack/metadata-query/internal/services"
	"github.com/apmstack/metadata-query/internal/store"
	"github.com/apmstack/metadata-query/pkg/scheduler"
)

// app holds the wired dependencies shared by the subcommands.
type app struct {
	store     *store.Store
	scheduler *scheduler.Scheduler
	metadata  *services.MetadataService
	registry  *prometheus.Registry
}

func newApp(ctx context.Context, cfg *config.Configuration) (*app, error) {
	driver, err := store.ParseDriver(cfg.Storage.Driver)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := store.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register store metrics: %w", err)
	}

	db, err := openWithRetry(ctx, driver, cfg.Storage.DSN, cfg.Storage.OpenTimeout)
	if err != nil {
		return nil, err
	}

	s := store.NewStore(db, store.MetadataStoreConfig{
		MaxSize:     uint64(cfg.Query.MaxSize),
		Placeholder: driver.Placeholder(),
		Metrics:     metrics,
	})
	if cfg.Storage.Migrate {
		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	sched := scheduler.NewScheduler(cfg.Query.Workers)
	return &app{
		store:     s,
		scheduler: sched,
		metadata:  services.NewMetadataService(s.Metadata(), sched),
		registry:  registry,
	}, nil
}

func (a *app) Close() {
	a.scheduler.Close()
	if err := a.store.Close(); err != nil {
		zap.S().Warnw("failed to close database", "error", err)
	}
}

// openWithRetry pings the database until it answers or timeout elapses.
func openWithRetry(ctx context.Context, driver store.Driver, dsn string, timeout time.Duration) (*sql.DB, error) {
	db, err := store.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, db.PingContext(ctx)
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(timeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			zap.S().Warnw("database not ready", "driver", driver, "retry_in", next, "error", err)
		}),
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach %s database: %w", driver, err)
	}
	return db, nil
}
