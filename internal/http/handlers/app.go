package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"certificates/internal/domain"
	"certificates/internal/infra"
)

// App carries the dependencies shared by every handler.
type App struct {
	Certificates domain.CertificateRepository
	Logger       infra.Logger
	Now          func() time.Time
}

func NewApp(certs domain.CertificateRepository, logger infra.Logger) *App {
	return &App{Certificates: certs, Logger: logger, Now: time.Now}
}

type errorResponse struct {
	Message string          `json:"message"`
	Errors  []fieldErrorDTO `json:"errors,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, r *http.Request, code int, key string) {
	a.json(w, code, errorResponse{Message: message(r, key)})
}

func (a *App) validationError(w http.ResponseWriter, r *http.Request, ve *domain.ValidationError) {
	resp := errorResponse{Message: message(r, msgInvalidData)}
	for _, f := range ve.Fields {
		resp.Errors = append(resp.Errors, fieldErrorDTO{
			Field:   f.Field,
			Code:    f.Code,
			Message: message(r, "field."+f.Code),
		})
	}
	a.json(w, http.StatusBadRequest, resp)
}

func (a *App) internalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg(msg)
	a.error(w, r, http.StatusInternalServerError, msgInternal)
}
