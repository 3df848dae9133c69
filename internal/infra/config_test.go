package infra

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "PORT", "STORAGE_DRIVER", "DATABASE_URL", "DB_MAX_CONNS", "GEOIP_DB_PATH", "DEFAULT_LOCALE",
	"CORS_ALLOWED_ORIGINS", "RATE_LIMIT_PER_MINUTE", "HTTP_READ_TIMEOUT_SECONDS",
	"HTTP_WRITE_TIMEOUT_SECONDS", "HTTP_IDLE_TIMEOUT_SECONDS",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("StorageDriver = %q, want %q", cfg.StorageDriver, StorageMemory)
	}
	if cfg.Port != "8080" || cfg.DefaultLocale != "es" || cfg.RateLimitPerMin != 30 || cfg.DBMaxConns != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("CORSAllowedOrigins = %#v", cfg.CORSAllowedOrigins)
	}
	if cfg.HTTPReadTimeout != 15*time.Second || cfg.HTTPWriteTimeout != 30*time.Second || cfg.HTTPIdleTimeout != time.Minute {
		t.Fatalf("unexpected timeouts: %v %v %v", cfg.HTTPReadTimeout, cfg.HTTPWriteTimeout, cfg.HTTPIdleTimeout)
	}
}

func TestLoadConfigPostgresRequiresDatabaseURL(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("STORAGE_DRIVER", "Postgres")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://example")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.StorageDriver != StoragePostgres {
		t.Fatalf("StorageDriver = %q, want %q", cfg.StorageDriver, StoragePostgres)
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("STORAGE_DRIVER", "redis")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "1919")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("HTTP_IDLE_TIMEOUT_SECONDS", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	expected := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.CORSAllowedOrigins) != len(expected) {
		t.Fatalf("CORSAllowedOrigins = %#v, want %#v", cfg.CORSAllowedOrigins, expected)
	}
	for i, origin := range expected {
		if cfg.CORSAllowedOrigins[i] != origin {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], origin)
		}
	}
	if cfg.Port != "1919" || cfg.RateLimitPerMin != 5 || cfg.HTTPIdleTimeout != 5*time.Second {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestNewHTTPServerUsesConfig(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9090")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	srv := NewHTTPServer(cfg, http.NotFoundHandler(), zerolog.Nop())
	if srv.Addr() != ":9090" {
		t.Fatalf("Addr() = %q, want :9090", srv.Addr())
	}
	if srv.server.IdleTimeout != cfg.HTTPIdleTimeout || srv.server.ErrorLog == nil {
		t.Fatalf("server not configured from config: %+v", srv.server)
	}
}
