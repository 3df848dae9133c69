package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowHeaders  = "Content-Type, X-Locale, X-Request-ID"
	corsAllowMethods  = "GET, POST, DELETE, OPTIONS"
	corsExposeHeaders = "X-Request-ID, Retry-After, X-RateLimit-Limit, X-RateLimit-Remaining"
	corsMaxAge        = "600"
)

type corsPolicy struct {
	origins  map[string]struct{}
	wildcard bool
}

func newCORSPolicy(allowed []string) corsPolicy {
	p := corsPolicy{origins: make(map[string]struct{}, len(allowed))}
	for _, origin := range allowed {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		switch origin {
		case "":
		case "*":
			p.wildcard = true
		default:
			p.origins[origin] = struct{}{}
		}
	}
	return p
}

// allow returns the Access-Control-Allow-Origin value for origin and whether
// credentials may be sent. Listed origins win over the wildcard.
func (p corsPolicy) allow(origin string) (string, bool) {
	if _, ok := p.origins[origin]; ok {
		return origin, true
	}
	if p.wildcard {
		return "*", false
	}
	return "", false
}

// CORS allows browser clients from the listed origins. "*" allows any origin
// without credentials. OPTIONS requests are answered here.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	policy := newCORSPolicy(allowedOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" {
				h := w.Header()
				h.Add("Vary", "Origin")
				if value, credentials := policy.allow(origin); value != "" {
					h.Set("Access-Control-Allow-Origin", value)
					if credentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
					h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
					h.Set("Access-Control-Allow-Methods", corsAllowMethods)
					h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
					h.Set("Access-Control-Max-Age", corsMaxAge)
				}
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
