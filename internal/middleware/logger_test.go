package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: "info"},
		{status: http.StatusNotFound, level: "warn"},
		{status: http.StatusInternalServerError, level: "error"},
	}
	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			var buf bytes.Buffer
			h := RequestID(Logger(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte("body"))
			})))
			req := httptest.NewRequest(http.MethodGet, "/certificates", nil)
			req.Header.Set("X-Request-ID", "req-1")
			h.ServeHTTP(httptest.NewRecorder(), req)

			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("decode log line: %v (%s)", err, buf.String())
			}
			if line["level"] != tc.level || line["request_id"] != "req-1" {
				t.Fatalf("unexpected log line: %v", line)
			}
			if line["status"] != float64(tc.status) || line["bytes"] != float64(4) || line["path"] != "/certificates" {
				t.Fatalf("unexpected log fields: %v", line)
			}
		})
	}
}
