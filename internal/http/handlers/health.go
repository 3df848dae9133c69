package handlers

import (
	"context"
	"net/http"
	"time"
)

// pinger is implemented by repositories backed by an external store.
type pinger interface {
	Ping(ctx context.Context) error
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	p, ok := a.Certificates.(pinger)
	if !ok {
		a.json(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		a.Logger.Warn().Err(err).Msg("health check failed")
		a.json(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok", "storage": "up"})
}
