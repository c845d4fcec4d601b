// Package service receives inbound routing events and keeps the journal post
// bookkeeping consistent: each journal post is registered once, tasks are
// dispatched to the worklist, and no-longer-needed posts are closed.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	journalpostmetrics "punsj/internal/journalpost/metrics"
	"punsj/internal/journalpost/models"
	"punsj/internal/journalpost/store"
	"punsj/pkg/domain"
)

// AksjonspunktDispatcher announces a new punsj task to the worklist system.
type AksjonspunktDispatcher interface {
	OpprettOppgave(ctx context.Context, journalpost models.Journalpost) error
	LukkOppgave(ctx context.Context, journalpostID domain.JournalpostID) error
}

// IdempotencyGuard short-circuits redelivered events. FirstSeen returns true
// only the first time a key is observed within the retention window.
type IdempotencyGuard interface {
	FirstSeen(ctx context.Context, key string) (bool, error)
}

// HendelseMottaker processes inbound fordel events.
type HendelseMottaker struct {
	store      store.Store
	dispatcher AksjonspunktDispatcher
	guard      IdempotencyGuard
	metrics    *journalpostmetrics.Metrics
	logger     *slog.Logger
	naa        func() time.Time
}

type Option func(*HendelseMottaker)

// WithClock pins the creation timestamp; used by tests.
func WithClock(naa func() time.Time) Option {
	return func(h *HendelseMottaker) { h.naa = naa }
}

// WithIdempotencyGuard adds a delivery dedupe guard in front of the store
// check. Optional: without it every event hits the store.
func WithIdempotencyGuard(guard IdempotencyGuard) Option {
	return func(h *HendelseMottaker) { h.guard = guard }
}

func NewHendelseMottaker(store store.Store, dispatcher AksjonspunktDispatcher, metrics *journalpostmetrics.Metrics, logger *slog.Logger, opts ...Option) *HendelseMottaker {
	h := &HendelseMottaker{
		store:      store,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
		naa:        time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Prosesser handles one fordel event. Known journal posts are not registered
// again; an event of type PUNSJOPPGAVE_IKKE_LENGER_NØDVENDIG closes the
// existing post instead.
func (h *HendelseMottaker) Prosesser(ctx context.Context, event models.FordelPunsjEvent) error {
	if h.guard != nil {
		first, err := h.guard.FirstSeen(ctx, "fordel:"+event.JournalpostID.String())
		if err != nil {
			h.logger.WarnContext(ctx, "idempotency guard unavailable, falling back to store check",
				"journalpost_id", event.JournalpostID, "error", err)
		} else if !first {
			h.logger.InfoContext(ctx, "hendelse allerede mottatt", "journalpost_id", event.JournalpostID)
			return nil
		}
	}

	eksisterer, err := h.store.Eksisterer(ctx, event.JournalpostID)
	if err != nil {
		return fmt.Errorf("sjekk journalpost %s: %w", event.JournalpostID, err)
	}
	if eksisterer {
		return h.prosesserKjent(ctx, event)
	}

	innsendingstype, err := models.PunsjInnsendingTypeFraKode(event.Type)
	if err != nil {
		h.logger.WarnContext(ctx, "ukjent innsendingstype", "journalpost_id", event.JournalpostID, "type", event.Type)
		innsendingstype = models.InnsendingUkjent
	}
	ytelse, err := models.FagsakYtelseTypeFraKode(event.Ytelse)
	if err != nil {
		h.logger.WarnContext(ctx, "ukjent ytelse", "journalpost_id", event.JournalpostID, "ytelse", event.Ytelse)
		ytelse = models.YtelseUkjent
	}

	journalpost := models.Journalpost{
		UUID:          uuid.New(),
		JournalpostID: event.JournalpostID,
		AktorID:       event.AktorID,
		Ytelse:        ytelse,
		Type:          innsendingstype,
		Opprettet:     h.naa(),
	}
	if err := h.store.Opprett(ctx, journalpost); err != nil {
		return fmt.Errorf("opprett journalpost %s: %w", event.JournalpostID, err)
	}

	if h.metrics != nil {
		h.metrics.IncrementOpprettet(event.Ytelse, event.Type)
	}

	if err := h.dispatcher.OpprettOppgave(ctx, journalpost); err != nil {
		return fmt.Errorf("opprett oppgave for %s: %w", event.JournalpostID, err)
	}

	h.logger.InfoContext(ctx, "journalpost registrert",
		"journalpost_id", event.JournalpostID, "ytelse", string(ytelse), "type", string(innsendingstype))
	return nil
}

// prosesserKjent handles events for journal posts punsj already knows.
func (h *HendelseMottaker) prosesserKjent(ctx context.Context, event models.FordelPunsjEvent) error {
	innsendingstype, err := models.PunsjInnsendingTypeFraKode(event.Type)
	if err != nil || innsendingstype != models.InnsendingIkkeLengerNodvendig {
		h.logger.InfoContext(ctx, "journalposten kjenner punsj fra før, blir ikke laget ny oppgave",
			"journalpost_id", event.JournalpostID)
		return nil
	}

	journalpost, err := h.store.Hent(ctx, event.JournalpostID)
	if err != nil {
		return fmt.Errorf("hent journalpost %s: %w", event.JournalpostID, err)
	}
	if journalpost.Type == models.InnsendingIkkeLengerNodvendig {
		h.logger.InfoContext(ctx, "journalposten er allerede lukket", "journalpost_id", event.JournalpostID)
		return nil
	}

	if err := h.store.SettInnsendingstype(ctx, event.JournalpostID, models.InnsendingIkkeLengerNodvendig); err != nil {
		return fmt.Errorf("lukk journalpost %s: %w", event.JournalpostID, err)
	}
	if err := h.dispatcher.LukkOppgave(ctx, event.JournalpostID); err != nil {
		return fmt.Errorf("lukk oppgave for %s: %w", event.JournalpostID, err)
	}
	h.logger.InfoContext(ctx, "journalpost lukket", "journalpost_id", event.JournalpostID)
	return nil
}
