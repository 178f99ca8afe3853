package config

import (
	"github.com/dkovalenko/product-catalog-service/internal/logger"
	"github.com/dkovalenko/product-catalog-service/internal/model"
)

// AppConfig carries process-level identity and the HTTP bind port.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
	Port    int    `mapstructure:"port"`
}

// PostgresConfig tunes the pgx pool; durations are in seconds.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"db"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}

// StorageConfig selects the catalog backend: "memory" (default) or "postgres".
type StorageConfig struct {
	Backend  string         `mapstructure:"backend"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// CatalogConfig preloads the memory backend. Seed order is the catalog's
// natural order.
type CatalogConfig struct {
	Seed []model.Product `mapstructure:"seed"`
}

type Config struct {
	App     AppConfig           `mapstructure:"app"`
	Logger  logger.LoggerConfig `mapstructure:"logger"`
	Storage StorageConfig       `mapstructure:"storage"`
	Catalog CatalogConfig       `mapstructure:"catalog"`
}
