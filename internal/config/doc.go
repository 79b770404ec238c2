// Package config defines the configuration structure for the metadata query service.
//
// Defaults live in `default:` struct tags applied by creasty/defaults. Every
// key is also a command line flag and an environment variable; viper merges
// them with flags taking precedence over the environment.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Storage        - Storage engine and connection
//	├── Query          - Query limits
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Key              │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ server.mode      │ "dev"   │ "prod" (gin release mode) or "dev"     │
//	│ server.http-port │ 8000    │ HTTP listen port                       │
//	│ server.shutdown- │ 10s     │ Graceful shutdown timeout              │
//	│   timeout        │         │                                        │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Storage Configuration
//
//	┌──────────────────────┬────────────┬──────────────────────────────────┐
//	│ Key                  │ Default    │ Description                      │
//	├──────────────────────┼────────────┼──────────────────────────────────┤
//	│ storage.driver       │ "duckdb"   │ duckdb, sqlite or postgres       │
//	│ storage.dsn          │ ":memory:" │ File path or postgres URL        │
//	│ storage.open-timeout │ 30s        │ Retry budget for the first ping  │
//	│ storage.migrate      │ true       │ Create missing tables on startup │
//	└──────────────────────┴────────────┴──────────────────────────────────┘
//
// # Query Configuration
//
//	┌────────────────┬─────────┬──────────────────────────────────────────┐
//	│ Key            │ Default │ Description                              │
//	├────────────────┼─────────┼──────────────────────────────────────────┤
//	│ query.max-size │ 5000    │ Max rows of list/search operations (>0)  │
//	│ query.workers  │ 5       │ Concurrent counts of the global brief    │
//	└────────────────┴─────────┴──────────────────────────────────────────┘
//
// # Environment
//
// Keys map to METADATA_QUERY_<KEY> with dots and dashes replaced by
// underscores:
//
//	METADATA_QUERY_QUERY_MAX_SIZE=200
//	METADATA_QUERY_STORAGE_DRIVER=sqlite
//
// # Debug Logging
//
// DebugMap returns a map suitable for structured logging. The postgres DSN
// is masked since it may embed a password:
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
