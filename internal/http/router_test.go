package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"punsj/internal/platform/middleware"
	"punsj/pkg/testutil"
)

type pingFeature struct{}

func (pingFeature) Register(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func newTestRouter(health map[string]HealthChecker) http.Handler {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return NewRouter(logger, health, pingFeature{})
}

func TestRouterMountsFeaturesUnderAPI(t *testing.T) {
	router := newTestRouter(nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/ping"))
	testutil.AssertStatus(t, rr, http.StatusNoContent)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/ping"))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterSetsCallID(t *testing.T) {
	router := newTestRouter(nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/ping"))
	assert.NotEmpty(t, rr.Header().Get(middleware.CallIDHeader))
}

func TestHealth(t *testing.T) {
	t.Run("all checks passing gives 200", func(t *testing.T) {
		router := newTestRouter(map[string]HealthChecker{
			"database": func(ctx context.Context) error { return nil },
		})

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/internal/health"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "database", "ok")
	})

	t.Run("failing check gives 503", func(t *testing.T) {
		router := newTestRouter(map[string]HealthChecker{
			"database": func(ctx context.Context) error { return nil },
			"redis":    func(ctx context.Context) error { return fmt.Errorf("connection refused") },
		})

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/internal/health"))
		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
		testutil.AssertJSONContains(t, rr, "database", "ok")
		testutil.AssertJSONContains(t, rr, "redis", "connection refused")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/internal/metrics"))
	testutil.AssertStatusOK(t, rr)
}
