package infra

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantDebug bool
	}{
		{name: "production defaults to info", cfg: Config{AppEnv: "production"}},
		{name: "override to debug", cfg: Config{AppEnv: "production", LogLevel: "DEBUG"}, wantDebug: true},
		{name: "unknown level keeps default", cfg: Config{AppEnv: "production", LogLevel: "chatty"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&tc.cfg, &buf)
			logger.Debug().Msg("debug line")
			logger.Info().Msg("info line")

			if got := strings.Contains(buf.String(), "debug line"); got != tc.wantDebug {
				t.Fatalf("debug logged = %v, want %v (%s)", got, tc.wantDebug, buf.String())
			}
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			var last map[string]any
			if err := json.Unmarshal([]byte(lines[len(lines)-1]), &last); err != nil {
				t.Fatalf("production output is not JSON: %v", err)
			}
			if last["service"] != "certificates" || last["env"] != "production" {
				t.Fatalf("missing service fields: %v", last)
			}
		})
	}
}

func TestNewLoggerDevelopmentUsesConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&Config{AppEnv: "development"}, &buf)
	logger.Debug().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, "hello") || json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Fatalf("expected console output, got %q", out)
	}
}
