package domain

import (
	"fmt"
	"strings"
)

// Periode is a closed date interval [Fom, Tom]. It is comparable and keys the
// period-keyed maps of the canonical document. Its wire form is the ISO 8601
// interval "fom/tom", which is also the form embedded in error field paths.
type Periode struct {
	Fom Dato
	Tom Dato
}

func (p Periode) ISO8601() string {
	return fmt.Sprintf("%s/%s", p.Fom, p.Tom)
}

func (p Periode) String() string { return p.ISO8601() }

// JSONPath is the path segment used when an error is scoped to this period,
// e.g. "ytelse.uttak.perioder.[2024-01-01/2024-01-31]".
func (p Periode) JSONPath() string {
	return fmt.Sprintf("[%s]", p.ISO8601())
}

// Overlapper reports whether the two closed intervals share at least one day.
func (p Periode) Overlapper(other Periode) bool {
	return !p.Fom.Etter(other.Tom) && !other.Fom.Etter(p.Tom)
}

// Inneholder reports whether other lies fully inside p.
func (p Periode) Inneholder(other Periode) bool {
	return !other.Fom.Foer(p.Fom) && !other.Tom.Etter(p.Tom)
}

func (p Periode) MarshalText() ([]byte, error) {
	return []byte(p.ISO8601()), nil
}

func (p *Periode) UnmarshalText(data []byte) error {
	deler := strings.SplitN(string(data), "/", 2)
	if len(deler) != 2 {
		return fmt.Errorf("ugyldig periode %q", data)
	}
	fom, err := ParseDato(deler[0])
	if err != nil {
		return err
	}
	tom, err := ParseDato(deler[1])
	if err != nil {
		return err
	}
	*p = Periode{Fom: fom, Tom: tom}
	return nil
}

// PeriodeDto is the raw caseworker-entered period: either bound may be
// missing. A period is "set" only if at least one bound is present; a wholly
// unset period is filtered out before mapping, never mapped to a null entry.
type PeriodeDto struct {
	Fom *Dato `json:"fom"`
	Tom *Dato `json:"tom"`
}

func (p *PeriodeDto) ErSatt() bool {
	return p != nil && (p.Fom != nil || p.Tom != nil)
}

// SomK9Periode converts to a canonical period. The second return is false for
// unset periods. A missing bound maps to the zero Dato, mirroring the open
// intervals the downstream format accepts.
func (p *PeriodeDto) SomK9Periode() (Periode, bool) {
	if !p.ErSatt() {
		return Periode{}, false
	}
	var periode Periode
	if p.Fom != nil {
		periode.Fom = *p.Fom
	}
	if p.Tom != nil {
		periode.Tom = *p.Tom
	}
	return periode, true
}

// SomK9Perioder converts a slice, dropping unset entries.
func SomK9Perioder(dtoer []PeriodeDto) []Periode {
	var perioder []Periode
	for i := range dtoer {
		if periode, ok := dtoer[i].SomK9Periode(); ok {
			perioder = append(perioder, periode)
		}
	}
	return perioder
}

// SomEnkeltdager expands the period to one single-day period per calendar day,
// inclusive of both bounds. [2024-03-01, 2024-03-03] yields three entries and
// fom == tom yields exactly one. Both bounds must be set, otherwise nil.
func (p *PeriodeDto) SomEnkeltdager() []PeriodeDto {
	if p == nil || p.Fom == nil || p.Tom == nil {
		return nil
	}
	antall := p.Fom.DagerTil(*p.Tom) + 1
	dager := make([]PeriodeDto, 0, max(antall, 0))
	for i := 0; i < antall; i++ {
		dag := p.Fom.PlussDager(i)
		dager = append(dager, PeriodeDto{Fom: &dag, Tom: &dag})
	}
	return dager
}
