// Package store persists journal post bookkeeping records. An in-memory
// implementation backs unit tests; PostgreSQL backs production.
package store

import (
	"context"

	"punsj/internal/journalpost/models"
	"punsj/pkg/domain"
)

// Store is the journal post repository.
type Store interface {
	Opprett(ctx context.Context, journalpost models.Journalpost) error
	Hent(ctx context.Context, journalpostID domain.JournalpostID) (*models.Journalpost, error)
	Eksisterer(ctx context.Context, journalpostID domain.JournalpostID) (bool, error)
	SettInnsendingstype(ctx context.Context, journalpostID domain.JournalpostID, type_ models.PunsjInnsendingType) error
	SettFerdigBehandlet(ctx context.Context, journalpostID domain.JournalpostID) error

	// Metrics queries.
	AntallFerdigBehandlede(ctx context.Context, ferdigBehandlet bool) (int, error)
	AntallPerType(ctx context.Context) ([]models.AntallPerType, error)
}
