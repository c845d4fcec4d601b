// Package httputil holds shared JSON request/response helpers for the
// punsj HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"punsj/internal/k9format"
	"punsj/pkg/platform/sentinel"
)

// WriteJSON serializes v with the given status. Encoding failures are
// logged by the caller via the returned error; headers are already sent.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// DecodeJSON decodes the request body into T. Unknown fields are allowed;
// the editor payloads are open-ended.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}

// WriteError maps sentinel errors to HTTP statuses and writes a small
// JSON error body. Unrecognized errors become 500 without the message,
// so internals never leak to clients.
func WriteError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	melding := "intern feil"
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		status = http.StatusNotFound
		melding = err.Error()
	case errors.Is(err, sentinel.ErrConflict):
		status = http.StatusConflict
		melding = err.Error()
	case errors.Is(err, sentinel.ErrInvalidState):
		status = http.StatusBadRequest
		melding = err.Error()
	case errors.Is(err, sentinel.ErrUnavailable):
		status = http.StatusServiceUnavailable
		melding = err.Error()
	default:
		logger.Error("uventet feil i handler", "error", err)
	}
	_ = WriteJSON(w, status, map[string]string{"feil": melding})
}

// FeilRespons is the body returned when mapping or validation produced
// field errors.
type FeilRespons struct {
	SoknadID string          `json:"søknadId"`
	Feil     []k9format.Feil `json:"feil"`
}

// WriteFeil writes the accumulated mapping errors with 400. Callers must
// only invoke it with a non-empty list.
func WriteFeil(w http.ResponseWriter, soknadID string, feil []k9format.Feil) error {
	return WriteJSON(w, http.StatusBadRequest, FeilRespons{SoknadID: soknadID, Feil: feil})
}
