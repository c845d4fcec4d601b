// Package mapping transforms punched DTOs into canonical k9format documents.
// The contract is total: the Map* functions always return a (document, feil)
// pair and never panic. One bad field yields one Feil and never suppresses
// sibling fields or sections.
package mapping

import (
	"errors"
	"fmt"

	"punsj/internal/k9format"
)

// Feilsamler accumulates field-addressed errors across all mapping steps of
// one invocation. Append-only, insertion-ordered, never deduplicating. Each
// mapping call owns its own collector; nothing is shared across calls.
type Feilsamler struct {
	feil []k9format.Feil
}

func NewFeilsamler() *Feilsamler { return &Feilsamler{} }

func (f *Feilsamler) LeggTil(feil ...k9format.Feil) {
	f.feil = append(f.feil, feil...)
}

// Alle returns a snapshot of the collected errors.
func (f *Feilsamler) Alle() []k9format.Feil {
	return append([]k9format.Feil(nil), f.feil...)
}

func (f *Feilsamler) HarFeil() bool { return len(f.feil) > 0 }

// feilkoder lets typed lookup errors choose their own error code.
type feilkoder interface {
	Feilkode() string
}

// MapEllerLeggTilFeil runs fn and records any failure (error or panic) as one
// Feil addressed to felt. The second return is false when the value must be
// omitted; mapping of everything else continues.
func MapEllerLeggTilFeil[T any](samler *Feilsamler, felt string, fn func() (T, error)) (verdi T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			samler.LeggTil(k9format.Feil{
				Felt:        felt,
				Feilkode:    "mappingFeil",
				Feilmelding: fmt.Sprint(r),
			})
			var tom T
			verdi, ok = tom, false
		}
	}()
	verdi, err := fn()
	if err != nil {
		kode := "mappingFeil"
		var medKode feilkoder
		if errors.As(err, &medKode) {
			kode = medKode.Feilkode()
		}
		samler.LeggTil(k9format.Feil{
			Felt:        felt,
			Feilkode:    kode,
			Feilmelding: err.Error(),
		})
		var tom T
		return tom, false
	}
	return verdi, true
}
