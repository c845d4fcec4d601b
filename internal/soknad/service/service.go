// Package service implements the søknad draft flow: partial updates merged
// into stored drafts, on-demand validation, and final submission to k9-sak.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"punsj/internal/k9format"
	"punsj/internal/soknad/mapping"
	"punsj/internal/soknad/models"
	"punsj/internal/soknad/store"
	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
)

// SakGateway is the outbound k9-sak capability: which periods the sak
// already knows about, and receiving a finished canonical document.
type SakGateway interface {
	HentPerioder(ctx context.Context, soker, barn domain.NorskIdent) ([]domain.Periode, error)
	SendSoknad(ctx context.Context, soknad *k9format.Soknad) error
}

// JournalpostFerdigstiller closes journal posts once their søknad is sent.
type JournalpostFerdigstiller interface {
	SettFerdigBehandlet(ctx context.Context, journalpostID domain.JournalpostID) error
}

// PsbValidator validates an assembled PSB document against periods already
// decided in k9.
type PsbValidator interface {
	ValiderMedKjentePerioder(soknad *k9format.Soknad, kjente []domain.Periode) []k9format.Feil
}

// OmsValidator validates an assembled OMS korrigering document.
type OmsValidator interface {
	Valider(soknad *k9format.Soknad) []k9format.Feil
}

// Service orchestrates the draft lifecycle.
type Service struct {
	store         store.Store
	gateway       SakGateway
	journalposter JournalpostFerdigstiller
	psbValidator  PsbValidator
	omsValidator  OmsValidator
	logger        *slog.Logger
	now           func() time.Time
}

// Option configures optional service behavior.
type Option func(*Service)

// WithClock overrides the wall clock; used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(
	st store.Store,
	gateway SakGateway,
	journalposter JournalpostFerdigstiller,
	psbValidator PsbValidator,
	omsValidator OmsValidator,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		store:         st,
		gateway:       gateway,
		journalposter: journalposter,
		psbValidator:  psbValidator,
		omsValidator:  omsValidator,
		logger:        logger,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OppdaterRequest is a partial draft update from the punsj editor.
type OppdaterRequest struct {
	SoknadID      domain.SoknadID
	SokerIdent    domain.NorskIdent
	BarnIdent     domain.NorskIdent
	Journalposter []domain.JournalpostID
	Fragment      models.SoknadJson
}

// OppdaterSoknad folds the fragment into the stored draft, creating the
// draft on first update.
func (s *Service) OppdaterSoknad(ctx context.Context, req OppdaterRequest) (*models.SoknadEntitet, error) {
	entitet, err := s.store.Hent(ctx, req.SoknadID)
	if errors.Is(err, sentinel.ErrNotFound) {
		ny := models.SoknadEntitet{
			SoknadID:      req.SoknadID,
			SokerIdent:    req.SokerIdent,
			BarnIdent:     req.BarnIdent,
			Journalposter: req.Journalposter,
			Soknad:        req.Fragment.Kopi(),
			Opprettet:     s.now(),
			SistEndret:    s.now(),
		}
		if err := s.store.Opprett(ctx, ny); err != nil {
			return nil, fmt.Errorf("opprett utkast: %w", err)
		}
		return &ny, nil
	}
	if err != nil {
		return nil, fmt.Errorf("hent utkast: %w", err)
	}
	if entitet.SendtInn {
		return nil, fmt.Errorf("utkast %s er allerede sendt inn: %w", req.SoknadID, sentinel.ErrInvalidState)
	}

	entitet.Soknad = entitet.Soknad.Merge(req.Fragment)
	if err := s.store.OppdaterSoknad(ctx, req.SoknadID, entitet.Soknad); err != nil {
		return nil, fmt.Errorf("oppdater utkast: %w", err)
	}
	entitet.SistEndret = s.now()
	return entitet, nil
}

// Hent returns the stored draft.
func (s *Service) Hent(ctx context.Context, soknadID domain.SoknadID) (*models.SoknadEntitet, error) {
	return s.store.Hent(ctx, soknadID)
}

// ValiderPsb maps the draft to the canonical format and returns the
// assembled document with any field errors. Nothing is persisted or sent.
func (s *Service) ValiderPsb(ctx context.Context, soknadID domain.SoknadID) (*k9format.Soknad, []k9format.Feil, error) {
	entitet, err := s.store.Hent(ctx, soknadID)
	if err != nil {
		return nil, nil, fmt.Errorf("hent utkast: %w", err)
	}
	dto, err := dtoFra[models.PleiepengerSoknadDto](entitet.Soknad)
	if err != nil {
		return nil, nil, err
	}
	kjente, err := s.kjentePerioder(ctx, entitet)
	if err != nil {
		return nil, nil, err
	}
	soknad, feil := mapping.MapPsbTilK9Format(
		entitet.SoknadID, entitet.Journalposter, kjente, dto, s.psbValidator,
		mapping.MedKlokke(s.now), mapping.MedLogger(s.logger),
	)
	return soknad, feil, nil
}

// SendInnPsb maps, validates and submits the draft. On field errors nothing
// is sent and the errors are returned; on success the draft is closed and
// its journal posts are marked done.
func (s *Service) SendInnPsb(ctx context.Context, soknadID domain.SoknadID) (*k9format.Soknad, []k9format.Feil, error) {
	entitet, err := s.store.Hent(ctx, soknadID)
	if err != nil {
		return nil, nil, fmt.Errorf("hent utkast: %w", err)
	}
	if entitet.SendtInn {
		return nil, nil, fmt.Errorf("utkast %s er allerede sendt inn: %w", soknadID, sentinel.ErrInvalidState)
	}
	dto, err := dtoFra[models.PleiepengerSoknadDto](entitet.Soknad)
	if err != nil {
		return nil, nil, err
	}
	kjente, err := s.kjentePerioder(ctx, entitet)
	if err != nil {
		return nil, nil, err
	}
	soknad, feil := mapping.MapPsbTilK9Format(
		entitet.SoknadID, entitet.Journalposter, kjente, dto, s.psbValidator,
		mapping.MedKlokke(s.now), mapping.MedLogger(s.logger),
	)
	if len(feil) > 0 {
		return soknad, feil, nil
	}
	return soknad, nil, s.fullfoer(ctx, entitet, soknad)
}

// SendInnOms maps, validates and submits a korrigering av inntektsmelding.
func (s *Service) SendInnOms(ctx context.Context, soknadID domain.SoknadID) (*k9format.Soknad, []k9format.Feil, error) {
	entitet, err := s.store.Hent(ctx, soknadID)
	if err != nil {
		return nil, nil, fmt.Errorf("hent utkast: %w", err)
	}
	if entitet.SendtInn {
		return nil, nil, fmt.Errorf("utkast %s er allerede sendt inn: %w", soknadID, sentinel.ErrInvalidState)
	}
	dto, err := dtoFra[models.KorrigeringInntektsmeldingDto](entitet.Soknad)
	if err != nil {
		return nil, nil, err
	}
	soknad, feil := mapping.MapOmsTilK9Format(
		entitet.SoknadID, entitet.Journalposter, dto, s.omsValidator,
		mapping.MedLogger(s.logger),
	)
	if len(feil) > 0 {
		return soknad, feil, nil
	}
	return soknad, nil, s.fullfoer(ctx, entitet, soknad)
}

func (s *Service) fullfoer(ctx context.Context, entitet *models.SoknadEntitet, soknad *k9format.Soknad) error {
	if err := s.gateway.SendSoknad(ctx, soknad); err != nil {
		return fmt.Errorf("send til k9-sak: %w", err)
	}
	if err := s.store.MarkerSendtInn(ctx, entitet.SoknadID); err != nil {
		return fmt.Errorf("marker sendt inn: %w", err)
	}
	for _, journalpostID := range entitet.Journalposter {
		if err := s.journalposter.SettFerdigBehandlet(ctx, journalpostID); err != nil {
			// Submission already happened; log and keep closing the rest.
			s.logger.ErrorContext(ctx, "kunne ikke ferdigstille journalpost",
				"journalpostId", journalpostID, "soknadId", entitet.SoknadID, "error", err)
		}
	}
	return nil
}

func (s *Service) kjentePerioder(ctx context.Context, entitet *models.SoknadEntitet) ([]domain.Periode, error) {
	if !entitet.SokerIdent.ErSatt() {
		return nil, nil
	}
	kjente, err := s.gateway.HentPerioder(ctx, entitet.SokerIdent, entitet.BarnIdent)
	if err != nil {
		return nil, fmt.Errorf("hent perioder fra k9-sak: %w", err)
	}
	return kjente, nil
}

// dtoFra reshapes the stored free-form draft into the typed DTO.
func dtoFra[T any](soknad models.SoknadJson) (T, error) {
	var dto T
	raw, err := json.Marshal(soknad)
	if err != nil {
		return dto, fmt.Errorf("marshal utkast: %w", err)
	}
	if err := json.Unmarshal(raw, &dto); err != nil {
		return dto, fmt.Errorf("utkast kan ikke tolkes: %w", sentinel.ErrInvalidState)
	}
	return dto, nil
}
