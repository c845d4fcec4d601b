package formidling

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"punsj/internal/k9format"
	"punsj/pkg/platform/httputil"
)

// Bestiller is the letter ordering capability the handler fronts.
type Bestiller interface {
	Bestill(ctx context.Context, dto DokumentbestillingDto) (*Dokumentbestilling, []k9format.Feil, error)
}

type Handler struct {
	service Bestiller
	logger  *slog.Logger
}

func NewHandler(service Bestiller, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/brev", h.HandleBestill)
}

func (h *Handler) HandleBestill(w http.ResponseWriter, r *http.Request) {
	dto, err := httputil.DecodeJSON[DokumentbestillingDto](r)
	if err != nil {
		_ = httputil.WriteJSON(w, http.StatusBadRequest, map[string]string{"feil": "ugyldig json"})
		return
	}

	bestilling, feil, err := h.service.Bestill(r.Context(), dto)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	if len(feil) > 0 {
		_ = httputil.WriteFeil(w, bestilling.DokumentbestillingID, feil)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusAccepted, bestilling)
}
