package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Dato is a civil date without time zone or clock. It is a comparable value
// type so periods built from it can key maps directly.
type Dato struct {
	Aar   int
	Maned time.Month
	Dag   int
}

// DatoAv builds a Dato from its parts. Out-of-range parts are normalized the
// same way time.Date normalizes them.
func DatoAv(aar int, maned time.Month, dag int) Dato {
	t := time.Date(aar, maned, dag, 0, 0, 0, 0, time.UTC)
	return Dato{Aar: t.Year(), Maned: t.Month(), Dag: t.Day()}
}

// DatoFra truncates a time.Time to its civil date in the given location.
func DatoFra(t time.Time, loc *time.Location) Dato {
	t = t.In(loc)
	return Dato{Aar: t.Year(), Maned: t.Month(), Dag: t.Day()}
}

// ParseDato parses the ISO form "2006-01-02".
func ParseDato(s string) (Dato, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Dato{}, fmt.Errorf("parse dato %q: %w", s, err)
	}
	return DatoFra(t, time.UTC), nil
}

// MustParseDato is for tests and constants with known-good input.
func MustParseDato(s string) Dato {
	d, err := ParseDato(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Dato) IsZero() bool { return d == Dato{} }

func (d Dato) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Aar, int(d.Maned), d.Dag)
}

func (d Dato) tid() time.Time {
	return time.Date(d.Aar, d.Maned, d.Dag, 0, 0, 0, 0, time.UTC)
}

// Etter reports whether d is strictly after other.
func (d Dato) Etter(other Dato) bool { return d.tid().After(other.tid()) }

// Foer reports whether d is strictly before other.
func (d Dato) Foer(other Dato) bool { return d.tid().Before(other.tid()) }

// PlussDager returns the date n calendar days later (or earlier when n < 0).
func (d Dato) PlussDager(n int) Dato {
	return DatoFra(d.tid().AddDate(0, 0, n), time.UTC)
}

// PlussAar returns the date n years later (or earlier when n < 0).
func (d Dato) PlussAar(n int) Dato {
	return DatoFra(d.tid().AddDate(n, 0, 0), time.UTC)
}

// DagerTil counts whole days from d up to other. Negative when other is
// before d.
func (d Dato) DagerTil(other Dato) int {
	return int(other.tid().Sub(d.tid()) / (24 * time.Hour))
}

// Tidspunkt combines the date with a wall-clock time in loc.
func (d Dato) Tidspunkt(kl time.Duration, loc *time.Location) time.Time {
	return time.Date(d.Aar, d.Maned, d.Dag, 0, 0, 0, 0, loc).Add(kl)
}

func (d Dato) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Dato) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDato(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
