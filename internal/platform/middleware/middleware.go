// Package middleware holds the HTTP middleware chain shared by all punsj
// endpoints.
package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"punsj/pkg/requestcontext"
)

// CallIDHeader is the correlation header NAV services propagate.
const CallIDHeader = "Nav-Callid"

// CallID reads the inbound correlation id, generating one when absent, and
// puts it on the context and the response.
func CallID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callID := r.Header.Get(CallIDHeader)
		if callID == "" {
			callID = uuid.NewString()
		}
		w.Header().Set(CallIDHeader, callID)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithCallID(r.Context(), callID)))
	})
}

// Recovery converts handler panics into 500s instead of killing the server.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(r.Context(), "panic i handler",
						"path", r.URL.Path, "panic", rec, "stack", string(debug.Stack()))
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one line per request.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.InfoContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
				"callId", requestcontext.CallID(r.Context()),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
