package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver names the storage engine behind the metadata tables.
type Driver string

const (
	DriverDuckDB   Driver = "duckdb"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

func ParseDriver(s string) (Driver, error) {
	switch Driver(s) {
	case DriverDuckDB, DriverSQLite, DriverPostgres:
		return Driver(s), nil
	default:
		return "", fmt.Errorf("unsupported storage driver: %s", s)
	}
}

func (d Driver) sqlDriverName() string {
	if d == DriverPostgres {
		return "pgx"
	}
	return string(d)
}

// Placeholder returns the bind parameter style the engine expects.
func (d Driver) Placeholder() sq.PlaceholderFormat {
	if d == DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// NewDB opens a DuckDB database. Use ":memory:" for an in-memory database.
func NewDB(path string) (*sql.DB, error) {
	return Open(DriverDuckDB, path)
}

func Open(driver Driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver.sqlDriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if driver == DriverSQLite {
		// each sqlite connection to :memory: is a distinct database
		db.SetMaxOpenConns(1)
	}
	return db, nil
}
