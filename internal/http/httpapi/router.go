package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"certificates/internal/http/handlers"
	"certificates/internal/middleware"
)

// Options configures the cross-cutting middleware of the router.
type Options struct {
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
	AllowedOrigins  []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	r.Get("/healthz", app.Health)
	r.Get("/openapi.json", app.OpenAPIJSON)
	r.Get("/docs", app.OpenAPIDocs)
	r.Get("/courses", app.CoursesList)

	limit := opts.RateLimitPerMin
	if limit <= 0 {
		limit = 30
	}
	writes := middleware.RateLimit(limit, time.Minute)

	r.Route("/certificates", func(r chi.Router) {
		r.Get("/", app.CertificatesList)
		r.Get("/stats/summary", app.StatsSummary)
		r.Get("/{id}", app.CertificatesGet)
		r.With(writes).Post("/", app.CertificatesCreate)
		r.With(writes).Post("/validate", app.CertificatesValidate)
		r.With(writes).Delete("/{id}", app.CertificatesDelete)
	})

	return r
}
