package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punsj/pkg/requestcontext"
)

func TestCallID(t *testing.T) {
	t.Run("propagates inbound header", func(t *testing.T) {
		var sett string
		h := CallID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sett = requestcontext.CallID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(CallIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", sett)
		assert.Equal(t, "abc-123", rr.Header().Get(CallIDHeader))
	})

	t.Run("generates id when absent", func(t *testing.T) {
		var sett string
		h := CallID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sett = requestcontext.CallID(r.Context())
		}))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, sett)
		assert.Equal(t, sett, rr.Header().Get(CallIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
