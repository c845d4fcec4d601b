// Package store persists søknad drafts. The in-memory variant backs unit
// tests, the PostgreSQL variant is the production store.
package store

import (
	"context"

	"punsj/internal/soknad/models"
	"punsj/pkg/domain"
)

// Store is the draft persistence contract.
type Store interface {
	Opprett(ctx context.Context, entitet models.SoknadEntitet) error
	Hent(ctx context.Context, soknadID domain.SoknadID) (*models.SoknadEntitet, error)
	OppdaterSoknad(ctx context.Context, soknadID domain.SoknadID, soknad models.SoknadJson) error
	MarkerSendtInn(ctx context.Context, soknadID domain.SoknadID) error
}
