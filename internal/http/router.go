// Package httpapi assembles the punsj HTTP surface: the api routes from the
// feature handlers plus the internal health and metrics endpoints.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"punsj/internal/platform/middleware"
	"punsj/pkg/platform/httputil"
)

// Registrar mounts a feature's routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports readiness of a backing resource.
type HealthChecker func(ctx context.Context) error

// NewRouter wires the middleware chain, the internal endpoints and every
// feature handler under /api.
func NewRouter(logger *slog.Logger, health map[string]HealthChecker, features ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.CallID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))

	r.Get("/internal/health", handleHealth(health))
	r.Method(http.MethodGet, "/internal/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		for _, feature := range features {
			feature.Register(api)
		}
	})
	return r
}

func handleHealth(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		resultater := make(map[string]string, len(checks))
		for navn, check := range checks {
			if err := check(r.Context()); err != nil {
				status = http.StatusServiceUnavailable
				resultater[navn] = err.Error()
				continue
			}
			resultater[navn] = "ok"
		}
		_ = httputil.WriteJSON(w, status, resultater)
	}
}
