package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type assertError string

func (e assertError) Error() string { return string(e) }

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		fallback string
		country  string
		want     string
	}{
		{
			name: "x-locale overrides",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "EN")
			},
			country: "MX",
			want:    "en",
		},
		{
			name: "accept-language used",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "en-US,en;q=0.9")
			},
			want: "en",
		},
		{
			name: "accept-language es preference",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "es-AR,en;q=0.8")
			},
			want: "es",
		},
		{
			name: "wildcard accept-language skipped",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "*, es;q=0.5")
			},
			want: "es",
		},
		{
			name:    "spanish speaking country",
			country: "AR",
			want:    "es",
		},
		{
			name:    "other country falls back to en",
			country: "US",
			want:    "en",
		},
		{
			name: "untranslated language gets en",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
			},
			country: "AR",
			want:    "en",
		},
		{
			name:     "configured fallback",
			fallback: "en",
			want:     "en",
		},
		{
			name: "default to es",
			want: "es",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.setup != nil {
				tc.setup(req)
			}
			got := detectLocale(req, tc.fallback, tc.country)
			if got != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveCountry(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		resolver CountryLookup
		want     string
	}{
		{
			name: "header precedence",
			setup: func(r *http.Request) {
				r.Header.Set("X-Country-Code", "us")
				r.Header.Set("CF-IPCountry", "mx")
			},
			want: "US",
		},
		{
			name: "locale region fallback",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "en-AU")
			},
			want: "AU",
		},
		{
			name: "accept-language region",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "en-GB,en;q=0.9")
			},
			want: "GB",
		},
		{
			name: "bare language has no region",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "es;q=0.8")
			},
			want: "",
		},
		{
			name: "resolver fallback",
			resolver: func(ip string) (string, error) {
				if ip != "203.0.113.4" {
					t.Fatalf("unexpected ip: %s", ip)
				}
				return "cl", nil
			},
			want: "CL",
		},
		{
			name: "resolver error returns empty",
			resolver: func(ip string) (string, error) {
				return "", assertError("boom")
			},
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.4:80"
			if tc.setup != nil {
				tc.setup(req)
			}
			got := ResolveCountry(req, tc.resolver)
			if got != tc.want {
				t.Fatalf("ResolveCountry() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocaleFromContext(t *testing.T) {
	ctx := context.Background()
	if got := LocaleFromContext(ctx); got != LocaleES {
		t.Fatalf("LocaleFromContext() default = %q, want %q", got, LocaleES)
	}
	ctx = context.WithValue(ctx, LocaleKey, LocaleEN)
	if got := LocaleFromContext(ctx); got != LocaleEN {
		t.Fatalf("LocaleFromContext() with value = %q, want %q", got, LocaleEN)
	}
}

func TestI18NMiddlewareStoresLocaleAndCountry(t *testing.T) {
	var locale, country string
	h := I18N("en", func(string) (string, error) { return "pe", nil })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale = LocaleFromContext(r.Context())
		country = CountryFromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if locale != LocaleES || country != "PE" {
		t.Fatalf("locale = %q country = %q, want es/PE", locale, country)
	}
}
