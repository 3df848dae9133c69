package handlers

import (
	"net/http"

	"certificates/internal/domain"
)

func (a *App) CoursesList(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"courses":     domain.Courses(),
		"commissions": domain.Commissions(),
	})
}
