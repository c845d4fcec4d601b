// Package handler exposes read endpoints for journal posts under manual
// processing.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"punsj/internal/journalpost/models"
	"punsj/pkg/domain"
	"punsj/pkg/platform/httputil"
)

// Store defines the lookups the handler needs.
type Store interface {
	Hent(ctx context.Context, journalpostID domain.JournalpostID) (*models.Journalpost, error)
}

type Handler struct {
	store  Store
	logger *slog.Logger
}

func New(store Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/journalpost/{journalpostId}", h.HandleHent)
}

// JournalpostRespons is the journal post as exposed to the frontend.
type JournalpostRespons struct {
	JournalpostID   domain.JournalpostID       `json:"journalpostId"`
	AktorID         domain.AktorID             `json:"aktørId,omitempty"`
	Ytelse          models.FagsakYtelseType    `json:"ytelse"`
	Type            models.PunsjInnsendingType `json:"type"`
	FerdigBehandlet bool                       `json:"ferdigBehandlet"`
	Opprettet       time.Time                  `json:"opprettet"`
}

func (h *Handler) HandleHent(w http.ResponseWriter, r *http.Request) {
	journalpostID := domain.JournalpostID(chi.URLParam(r, "journalpostId"))
	journalpost, err := h.store.Hent(r.Context(), journalpostID)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, JournalpostRespons{
		JournalpostID:   journalpost.JournalpostID,
		AktorID:         journalpost.AktorID,
		Ytelse:          journalpost.Ytelse,
		Type:            journalpost.Type,
		FerdigBehandlet: journalpost.FerdigBehandlet,
		Opprettet:       journalpost.Opprettet,
	})
}
