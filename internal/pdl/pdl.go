// Package pdl resolves identity: turning a registry-internal aktør id into
// the person's canonical identity number. Mappers depend only on the
// Resolver interface and treat a failed lookup as a field error, never a
// fatal one.
package pdl

import (
	"context"

	"punsj/pkg/domain"
)

// Resolver resolves aktør ids against the person registry. Implementations
// return sentinel.ErrNotFound (optionally wrapped) when the person is
// unknown.
type Resolver interface {
	Identifikator(ctx context.Context, aktorID domain.AktorID) (domain.NorskIdent, error)
}
