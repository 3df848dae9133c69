package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"certificates/internal/domain"
)

const maxCertificateBody = 64 << 10

// CertificatesList serves GET /certificates?search=&course=&student=.
// A student parameter selects a student name lookup instead of the general search.
func (a *App) CertificatesList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		items []domain.Certificate
		err   error
	)
	if student, ok := q["student"]; ok {
		items, err = a.Certificates.FindByStudentName(r.Context(), student[0])
	} else {
		items, err = a.Certificates.Search(r.Context(), q.Get("search"), q.Get("course"))
	}
	if err != nil {
		a.internalError(w, r, err, "list certificates failed")
		return
	}
	if items == nil {
		items = []domain.Certificate{}
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) CertificatesGet(w http.ResponseWriter, r *http.Request) {
	cert, err := a.Certificates.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, r, http.StatusNotFound, msgNotFound)
			return
		}
		a.internalError(w, r, err, "get certificate failed")
		return
	}
	a.json(w, http.StatusOK, cert)
}

func (a *App) CertificatesCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := a.decodeInput(w, r)
	if !ok {
		return
	}
	cert, err := a.Certificates.Create(r.Context(), in)
	if err != nil {
		a.internalError(w, r, err, "create certificate failed")
		return
	}
	a.Logger.Info().
		Str("id", cert.ID).
		Str("certificate_id", cert.CertificateID).
		Str("course", cert.CourseName).
		Msg("certificate created")
	a.json(w, http.StatusCreated, cert)
}

type validateResponse struct {
	domain.CertificateInput
	CertificateID string `json:"certificateId"`
	Valid         bool   `json:"valid"`
}

// CertificatesValidate checks a payload and previews the certificate id it
// would receive, without storing anything.
func (a *App) CertificatesValidate(w http.ResponseWriter, r *http.Request) {
	in, ok := a.decodeInput(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, validateResponse{
		CertificateInput: in,
		CertificateID:    domain.GenerateCertificateID(a.Now()),
		Valid:            true,
	})
}

func (a *App) CertificatesDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := a.Certificates.Get(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, r, http.StatusNotFound, msgNotFound)
			return
		}
		a.internalError(w, r, err, "get certificate failed")
		return
	}
	if err := a.Certificates.Delete(r.Context(), id); err != nil {
		a.internalError(w, r, err, "delete certificate failed")
		return
	}
	a.Logger.Info().Str("id", id).Msg("certificate deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) decodeInput(w http.ResponseWriter, r *http.Request) (domain.CertificateInput, bool) {
	var raw map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCertificateBody)).Decode(&raw); err != nil || raw == nil {
		a.error(w, r, http.StatusBadRequest, msgInvalidPayload)
		return domain.CertificateInput{}, false
	}
	in, err := domain.ValidateInput(raw)
	if err != nil {
		if ve, ok := domain.IsValidationError(err); ok {
			a.validationError(w, r, ve)
			return domain.CertificateInput{}, false
		}
		a.internalError(w, r, err, "validate certificate failed")
		return domain.CertificateInput{}, false
	}
	return in, true
}
