// Package handler wires the søknad draft endpoints to the service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"punsj/internal/k9format"
	"punsj/internal/soknad/models"
	"punsj/internal/soknad/service"
	"punsj/pkg/domain"
	"punsj/pkg/platform/httputil"
)

// Service defines the draft operations the handler needs.
type Service interface {
	OppdaterSoknad(ctx context.Context, req service.OppdaterRequest) (*models.SoknadEntitet, error)
	Hent(ctx context.Context, soknadID domain.SoknadID) (*models.SoknadEntitet, error)
	ValiderPsb(ctx context.Context, soknadID domain.SoknadID) (*k9format.Soknad, []k9format.Feil, error)
	SendInnPsb(ctx context.Context, soknadID domain.SoknadID) (*k9format.Soknad, []k9format.Feil, error)
	SendInnOms(ctx context.Context, soknadID domain.SoknadID) (*k9format.Soknad, []k9format.Feil, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the draft endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/soknad/{soknadId}", h.HandleHent)
	r.Put("/soknad/{soknadId}", h.HandleOppdater)
	r.Post("/soknad/{soknadId}/valider", h.HandleValider)
	r.Post("/soknad/{soknadId}/send", h.HandleSend)
	r.Post("/soknad/{soknadId}/korrigering/send", h.HandleSendKorrigering)
}

// OppdaterRequest is the editor's partial update payload.
type OppdaterRequest struct {
	SokerIdent    domain.NorskIdent      `json:"norskIdent"`
	BarnIdent     domain.NorskIdent      `json:"barnIdent"`
	Journalposter []domain.JournalpostID `json:"journalposter"`
	Soknad        models.SoknadJson      `json:"soknad"`
}

// EntitetRespons is the stored draft as returned to the editor.
type EntitetRespons struct {
	SoknadID      domain.SoknadID        `json:"soeknadId"`
	SokerIdent    domain.NorskIdent      `json:"norskIdent"`
	BarnIdent     domain.NorskIdent      `json:"barnIdent,omitempty"`
	Journalposter []domain.JournalpostID `json:"journalposter"`
	Soknad        models.SoknadJson      `json:"soknad"`
	SendtInn      bool                   `json:"sendtInn"`
	SistEndret    time.Time              `json:"sistEndret"`
}

func entitetRespons(entitet *models.SoknadEntitet) EntitetRespons {
	return EntitetRespons{
		SoknadID:      entitet.SoknadID,
		SokerIdent:    entitet.SokerIdent,
		BarnIdent:     entitet.BarnIdent,
		Journalposter: entitet.Journalposter,
		Soknad:        entitet.Soknad,
		SendtInn:      entitet.SendtInn,
		SistEndret:    entitet.SistEndret,
	}
}

func (h *Handler) HandleHent(w http.ResponseWriter, r *http.Request) {
	soknadID := domain.SoknadID(chi.URLParam(r, "soknadId"))
	entitet, err := h.service.Hent(r.Context(), soknadID)
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, entitetRespons(entitet))
}

func (h *Handler) HandleOppdater(w http.ResponseWriter, r *http.Request) {
	soknadID := domain.SoknadID(chi.URLParam(r, "soknadId"))
	req, err := httputil.DecodeJSON[OppdaterRequest](r)
	if err != nil {
		_ = httputil.WriteJSON(w, http.StatusBadRequest, map[string]string{"feil": "ugyldig json"})
		return
	}

	entitet, err := h.service.OppdaterSoknad(r.Context(), service.OppdaterRequest{
		SoknadID:      soknadID,
		SokerIdent:    req.SokerIdent,
		BarnIdent:     req.BarnIdent,
		Journalposter: req.Journalposter,
		Fragment:      req.Soknad,
	})
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, entitetRespons(entitet))
}

func (h *Handler) HandleValider(w http.ResponseWriter, r *http.Request) {
	soknadID := domain.SoknadID(chi.URLParam(r, "soknadId"))
	soknad, feil, err := h.service.ValiderPsb(r.Context(), soknadID)
	h.skrivMappingResultat(w, r, soknadID, soknad, feil, err, http.StatusOK)
}

func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	soknadID := domain.SoknadID(chi.URLParam(r, "soknadId"))
	soknad, feil, err := h.service.SendInnPsb(r.Context(), soknadID)
	h.skrivMappingResultat(w, r, soknadID, soknad, feil, err, http.StatusAccepted)
}

func (h *Handler) HandleSendKorrigering(w http.ResponseWriter, r *http.Request) {
	soknadID := domain.SoknadID(chi.URLParam(r, "soknadId"))
	soknad, feil, err := h.service.SendInnOms(r.Context(), soknadID)
	h.skrivMappingResultat(w, r, soknadID, soknad, feil, err, http.StatusAccepted)
}

func (h *Handler) skrivMappingResultat(
	w http.ResponseWriter,
	r *http.Request,
	soknadID domain.SoknadID,
	soknad *k9format.Soknad,
	feil []k9format.Feil,
	err error,
	okStatus int,
) {
	if err != nil {
		httputil.WriteError(w, h.logger, err)
		return
	}
	if len(feil) > 0 {
		h.logger.InfoContext(r.Context(), "søknad avvist med feil",
			"soknadId", soknadID, "antallFeil", len(feil))
		_ = httputil.WriteFeil(w, soknadID.String(), feil)
		return
	}
	_ = httputil.WriteJSON(w, okStatus, soknad)
}
