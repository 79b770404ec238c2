// Package store implements the read-only data access layer of the metadata
// query service.
//
// The store answers inventory questions (which services exist, which
// instances belong to a service, which endpoints were observed) against
// time-stamped registration records. Statements are built with squirrel and
// every literal is a bound parameter.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│                        MetadataStore                            │
//	│        ▼                     ▼                      ▼           │
//	│  service_inventory  service_instance_inventory  endpoint_traffic│
//	├─────────────────────────────────────────────────────────────────┤
//	│             QueryInterceptor (debug logging)                    │
//	│             *sql.Conn (one per operation)                       │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Storage Engines
//
//	┌────────────┬──────────────────────────────┬─────────────┐
//	│  Driver    │  Package                     │ Placeholder │
//	├────────────┼──────────────────────────────┼─────────────┤
//	│  duckdb    │  duckdb/duckdb-go/v2         │  ?          │
//	│  sqlite    │  modernc.org/sqlite          │  ?          │
//	│  postgres  │  jackc/pgx/v5/stdlib         │  $n         │
//	└────────────┴──────────────────────────────┴─────────────┘
//
// # Tables
//
// Created by migrations (internal/store/migrations/sql/):
//
//	service_inventory (
//	    sequence INTEGER PRIMARY KEY,
//	    name VARCHAR, is_address INTEGER, node_type INTEGER,
//	    register_time BIGINT, heartbeat_time BIGINT, properties VARCHAR
//	)
//	service_instance_inventory (
//	    sequence INTEGER PRIMARY KEY, service_id INTEGER,
//	    name VARCHAR, instance_uuid VARCHAR, properties VARCHAR,
//	    register_time BIGINT, heartbeat_time BIGINT
//	)
//	endpoint_traffic (service_id INTEGER, name VARCHAR, detect_point INTEGER, time_bucket BIGINT)
//
// # MetadataStore Operations
//
//	┌─────────────────────────┬──────────────────────────────────────────────┬────────────┐
//	│  Operation              │  Filter                                      │  Cap       │
//	├─────────────────────────┼──────────────────────────────────────────────┼────────────┤
//	│  NumOfServices          │  time range, not address, Normal             │  -         │
//	│  NumOfEndpoints         │  detect point SERVER                         │  -         │
//	│  NumOfConjectural       │  node type                                   │  -         │
//	│  GetAllServices         │  time range, not address, Normal             │  MaxSize   │
//	│  GetAllBrowserServices  │  time range, not address, Browser            │  MaxSize   │
//	│  GetAllDatabases        │  Database                                    │  MaxSize   │
//	│  SearchServices         │  time range, not address, Normal, name LIKE  │  MaxSize   │
//	│  SearchService          │  not address, name =                         │  1         │
//	│  SearchEndpoint         │  service, SERVER, name LIKE                  │  7 × limit │
//	│  GetServiceInstances    │  time range, service                         │  -         │
//	└─────────────────────────┴──────────────────────────────────────────────┴────────────┘
//
// # Time Range Overlap
//
// A record is alive in [start, end] when its [register_time, heartbeat_time]
// interval overlaps the window. ByTimeRange renders:
//
//	((heartbeat_time >= end AND register_time <= end) OR
//	 (register_time <= end AND heartbeat_time >= start))
//
// A service registered before the window and still alive after it is
// selected; a plain "register_time BETWEEN start AND end" would miss it.
//
// # Endpoint Over-fetch
//
// Endpoint identity is derived from (service id, name, detect point), so
// several traffic rows can describe one logical endpoint. SearchEndpoint
// fetches 7 × limit rows and leaves deduplication to the caller. The result is
// best effort, not exact.
//
// # Property Bags
//
// Rows carrying a properties column are decoded with pkg/properties:
//   - Databases: the "database" key gives the type, "UNKNOWN" otherwise.
//   - Instances: "language" sets the typed language; "OS Name", "hostname" and
//     "Process No." become attributes; "ipv4s" expands to one attribute per
//     address; any other key is kept verbatim. Source order is preserved.
//
// A malformed bag is logged and the row falls back to its defaults. It never
// aborts the list.
//
// # Errors
//
// Executor failures (connection, syntax, scan) are returned as
// errors.StorageError and abort the operation without partial results.
// SearchService reports "not found" as a nil service and a nil error.
//
// # Connection Scoping
//
// Each operation acquires one *sql.Conn, runs exactly one statement, drains
// the cursor and releases the connection on every exit path. Nothing is held
// between calls and no state is shared, so callers may run operations in
// parallel.
package store
