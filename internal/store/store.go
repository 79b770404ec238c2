package store

import (
	"context"
	"database/sql"

	"github.com/apmstack/metadata-query/internal/store/migrations"
)

// Store provides access to all storage repositories.
type Store struct {
	db       *sql.DB
	metadata *MetadataStore
}

func NewStore(db *sql.DB, cfg MetadataStoreConfig) *Store {
	return &Store{
		db:       db,
		metadata: NewMetadataStore(db, cfg),
	}
}

func (s *Store) Metadata() *MetadataStore {
	return s.metadata
}

// Migrate creates the inventory tables when missing.
func (s *Store) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, s.db)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
