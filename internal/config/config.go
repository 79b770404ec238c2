package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	srvErrors "github.com/apmstack/metadata-query/pkg/errors"
)

const EnvPrefix = "METADATA_QUERY"

const (
	ServerModeDev  = "dev"
	ServerModeProd = "prod"
)

type Configuration struct {
	Server    Server  `mapstructure:"server"`
	Storage   Storage `mapstructure:"storage"`
	Query     Query   `mapstructure:"query"`
	LogFormat string  `mapstructure:"log-format" default:"console"`
	LogLevel  string  `mapstructure:"log-level" default:"info"`
}

type Server struct {
	ServerMode      string        `mapstructure:"mode" default:"dev"`
	HTTPPort        int           `mapstructure:"http-port" default:"8000"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" default:"10s"`
}

type Storage struct {
	Driver string `mapstructure:"driver" default:"duckdb"`
	// DSN is a file path for duckdb/sqlite and a connection URL for postgres.
	DSN         string        `mapstructure:"dsn" default:":memory:"`
	OpenTimeout time.Duration `mapstructure:"open-timeout" default:"30s"`
	Migrate     bool          `mapstructure:"migrate" default:"true"`
}

type Query struct {
	// MaxSize caps the rows returned by list and search operations.
	MaxSize int `mapstructure:"max-size" default:"5000"`
	// Workers bounds the concurrent count queries of the global brief.
	Workers int `mapstructure:"workers" default:"5"`
}

func NewConfigurationWithDefaults() (*Configuration, error) {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply configuration defaults: %w", err)
	}
	return cfg, nil
}

// RegisterFlags declares one flag per configuration key, defaulting to cfg.
func RegisterFlags(fs *pflag.FlagSet, cfg *Configuration) {
	fs.String("server.mode", cfg.Server.ServerMode, "Server mode: prod or dev")
	fs.Int("server.http-port", cfg.Server.HTTPPort, "HTTP listen port")
	fs.Duration("server.shutdown-timeout", cfg.Server.ShutdownTimeout, "Graceful shutdown timeout")
	fs.String("storage.driver", cfg.Storage.Driver, "Storage engine: duckdb, sqlite or postgres")
	fs.String("storage.dsn", cfg.Storage.DSN, "Database path or connection URL")
	fs.Duration("storage.open-timeout", cfg.Storage.OpenTimeout, "How long to retry opening the database")
	fs.Bool("storage.migrate", cfg.Storage.Migrate, "Create missing inventory tables on startup")
	fs.Int("query.max-size", cfg.Query.MaxSize, "Maximum rows returned by list and search operations")
	fs.Int("query.workers", cfg.Query.Workers, "Concurrent count queries for the global brief")
	fs.String("log-format", cfg.LogFormat, "Log format: console or json")
	fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
}

// NewViper returns a viper instance reading METADATA_QUERY_* environment
// variables, e.g. METADATA_QUERY_QUERY_MAX_SIZE for query.max-size.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// Load resolves the configuration: defaults, then environment, then flags.
func Load(v *viper.Viper) (*Configuration, error) {
	cfg, err := NewConfigurationWithDefaults()
	if err != nil {
		return nil, err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Configuration) Validate() error {
	if c.Query.MaxSize <= 0 {
		return srvErrors.NewValidationError("query.max-size", "must be positive")
	}
	if c.Query.Workers <= 0 {
		return srvErrors.NewValidationError("query.workers", "must be positive")
	}
	switch c.Server.ServerMode {
	case ServerModeDev, ServerModeProd:
	default:
		return srvErrors.NewValidationError("server.mode", fmt.Sprintf("unknown mode %q", c.Server.ServerMode))
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return srvErrors.NewValidationError("server.http-port", "out of range")
	}
	switch c.Storage.Driver {
	case "duckdb", "sqlite", "postgres":
	default:
		return srvErrors.NewValidationError("storage.driver", fmt.Sprintf("unsupported driver %q", c.Storage.Driver))
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return srvErrors.NewValidationError("log-format", fmt.Sprintf("unknown format %q", c.LogFormat))
	}
	return nil
}

// DebugMap is safe to log: the storage DSN may carry credentials and is masked.
func (c *Configuration) DebugMap() map[string]any {
	dsn := c.Storage.DSN
	if c.Storage.Driver == "postgres" && dsn != "" {
		dsn = "(sensitive)"
	}
	return map[string]any{
		"server.mode":             c.Server.ServerMode,
		"server.http-port":        c.Server.HTTPPort,
		"server.shutdown-timeout": c.Server.ShutdownTimeout.String(),
		"storage.driver":          c.Storage.Driver,
		"storage.dsn":             dsn,
		"storage.open-timeout":    c.Storage.OpenTimeout.String(),
		"storage.migrate":         c.Storage.Migrate,
		"query.max-size":          c.Query.MaxSize,
		"query.workers":           c.Query.Workers,
		"log-format":              c.LogFormat,
		"log-level":               c.LogLevel,
	}
}
