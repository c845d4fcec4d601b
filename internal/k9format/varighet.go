// Package k9format holds the canonical, versioned document format consumed by
// the downstream case-management system. Types here mirror the wire format:
// Norwegian JSON field names, ISO 8601 periods as map keys and ISO 8601
// durations. Documents are assembled once by the mapping engine and are not
// mutated after that.
package k9format

import (
	"fmt"
	"strings"
	"time"
)

// Varighet is a per-day duration on the wire, serialized in the ISO 8601
// form the downstream format expects ("PT7H30M").
type Varighet time.Duration

func VarighetAv(d time.Duration) Varighet { return Varighet(d) }

func (v Varighet) Duration() time.Duration { return time.Duration(v) }

func (v Varighet) ISO8601() string {
	d := time.Duration(v)
	if d == 0 {
		return "PT0S"
	}
	timer := int64(d / time.Hour)
	minutter := int64(d % time.Hour / time.Minute)
	var b strings.Builder
	b.WriteString("PT")
	if timer != 0 {
		fmt.Fprintf(&b, "%dH", timer)
	}
	if minutter != 0 {
		fmt.Fprintf(&b, "%dM", minutter)
	}
	return b.String()
}

func (v Varighet) String() string { return v.ISO8601() }

func (v Varighet) MarshalText() ([]byte, error) {
	return []byte(v.ISO8601()), nil
}

func (v *Varighet) UnmarshalText(data []byte) error {
	s := string(data)
	rest, ok := strings.CutPrefix(s, "PT")
	if !ok {
		return fmt.Errorf("ugyldig varighet %q", s)
	}
	var d time.Duration
	for rest != "" {
		i := strings.IndexAny(rest, "HMS")
		if i < 0 {
			return fmt.Errorf("ugyldig varighet %q", s)
		}
		var tall int64
		if _, err := fmt.Sscanf(rest[:i], "%d", &tall); err != nil {
			return fmt.Errorf("ugyldig varighet %q: %w", s, err)
		}
		switch rest[i] {
		case 'H':
			d += time.Duration(tall) * time.Hour
		case 'M':
			d += time.Duration(tall) * time.Minute
		case 'S':
			d += time.Duration(tall) * time.Second
		}
		rest = rest[i+1:]
	}
	*v = Varighet(d)
	return nil
}
