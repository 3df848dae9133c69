package infra

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the service logger. Development gets console output at
// debug level; other environments get JSON at info. LOG_LEVEL overrides the
// level in either case.
func NewLogger(cfg *Config) zerolog.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *Config, out io.Writer) zerolog.Logger {
	dev := cfg.AppEnv == "development"

	level := zerolog.InfoLevel
	if dev {
		level = zerolog.DebugLevel
	}
	if cfg.LogLevel != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
			level = parsed
		}
	}

	if dev {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "certificates").
		Str("env", cfg.AppEnv).
		Logger()
}

// Logger aliases zerolog.Logger so packages can name the logging contract
// without importing zerolog.
type Logger = zerolog.Logger
