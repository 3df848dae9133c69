package infra

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string   `envconfig:"APP_ENV" default:"development"`
	LogLevel           string   `envconfig:"LOG_LEVEL"`
	Port               string   `envconfig:"PORT" default:"8080"`
	StorageDriver      string   `envconfig:"STORAGE_DRIVER" default:"memory"`
	DatabaseURL        string   `envconfig:"DATABASE_URL"`
	DBMaxConns         int32    `envconfig:"DB_MAX_CONNS" default:"10"`
	GeoIPDBPath        string   `envconfig:"GEOIP_DB_PATH"`
	DefaultLocale      string   `envconfig:"DEFAULT_LOCALE" default:"es"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	RateLimitPerMin    int      `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`
	ReadTimeoutSecs    int      `envconfig:"HTTP_READ_TIMEOUT_SECONDS" default:"15"`
	WriteTimeoutSecs   int      `envconfig:"HTTP_WRITE_TIMEOUT_SECONDS" default:"30"`
	IdleTimeoutSecs    int      `envconfig:"HTTP_IDLE_TIMEOUT_SECONDS" default:"60"`

	HTTPReadTimeout  time.Duration `ignored:"true"`
	HTTPWriteTimeout time.Duration `ignored:"true"`
	HTTPIdleTimeout  time.Duration `ignored:"true"`
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	origins := cfg.CORSAllowedOrigins[:0]
	for _, o := range cfg.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORSAllowedOrigins = origins

	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = 10
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = 30
	}
	cfg.HTTPReadTimeout = time.Duration(cfg.ReadTimeoutSecs) * time.Second
	cfg.HTTPWriteTimeout = time.Duration(cfg.WriteTimeoutSecs) * time.Second
	cfg.HTTPIdleTimeout = time.Duration(cfg.IdleTimeoutSecs) * time.Second

	return cfg, nil
}
