package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/naija"
)

// RouterOptions configures the API router.
type RouterOptions struct {
	Generator *naija.Generator
	Logger    *slog.Logger
}

// Router builds the versioned API with a liveness probe at /health.
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := NewHandlers(opts.Generator, log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ALIVE"))
	})

	r.Route("/v1", func(v1 chi.Router) {
		v1.Route("/names", func(names chi.Router) {
			names.Get("/first", h.firstName)
			names.Get("/last", h.lastName)
			names.Get("/full", h.fullName)
			names.Get("/prefix", h.prefix)
		})
		v1.Get("/degrees", h.degree)
		v1.Get("/courses", h.course)
		v1.Get("/faculties", h.faculty)
		v1.Get("/departments", h.department)
		v1.Get("/schools", h.school)
		v1.Get("/states", h.state)
		v1.Get("/emails", h.email)
		v1.Get("/phones", h.phone)
		v1.Get("/persons", h.person)
	})

	return r
}

// requestLogger emits one line per request with status and latency.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
