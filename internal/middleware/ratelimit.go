package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"
)

var tooManyRequests = map[string]string{
	LocaleES: "Demasiadas solicitudes. Intenta de nuevo más tarde.",
	LocaleEN: "Too many requests. Try again later.",
}

type window struct {
	count int
	until time.Time
}

// Limiter counts requests per client IP in fixed windows.
type Limiter struct {
	limit int
	per   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	windows   map[string]*window
	nextSweep time.Time
}

func NewLimiter(limit int, per time.Duration) *Limiter {
	return &Limiter{limit: limit, per: per, now: time.Now, windows: make(map[string]*window)}
}

// RateLimit allows limit requests per client IP in each window of length per.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	return NewLimiter(limit, per).Middleware
}

// Allow records a request for key. When the window is exhausted it reports
// false along with the time left until the window resets.
func (l *Limiter) Allow(key string) (remaining int, retry time.Duration, ok bool) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.After(l.nextSweep) {
		for k, w := range l.windows {
			if now.After(w.until) {
				delete(l.windows, k)
			}
		}
		l.nextSweep = now.Add(l.per)
	}

	w, found := l.windows[key]
	if !found || now.After(w.until) {
		w = &window{until: now.Add(l.per)}
		l.windows[key] = w
	}
	if w.count >= l.limit {
		return 0, w.until.Sub(now), false
	}
	w.count++
	return l.limit - w.count, 0, true
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remaining, retry, ok := l.Allow(ClientIP(r))
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": tooManyRequests[LocaleFromContext(r.Context())],
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
