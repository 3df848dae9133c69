package handlers

import (
	"net/http"

	"certificates/internal/domain"
)

// StatsSummary recomputes the summary from the full repository contents on every call.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	certs, err := a.Certificates.ListAll(r.Context())
	if err != nil {
		a.internalError(w, r, err, "load stats failed")
		return
	}
	a.json(w, http.StatusOK, domain.Summarize(certs, a.Now()))
}
