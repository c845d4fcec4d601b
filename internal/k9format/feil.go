package k9format

import "fmt"

// Feil is one field-addressed validation or mapping error. Felt is a
// dot/bracket path into the canonical document; period-scoped errors embed
// the period's ISO form as a segment, e.g.
// "ytelse.uttak.perioder.[2024-01-01/2024-01-31].timerPleieAvBarnetPerDag".
// Feil carries only a message, never the offending value.
type Feil struct {
	Felt        string `json:"felt"`
	Feilkode    string `json:"feilkode"`
	Feilmelding string `json:"feilmelding"`
}

func (f Feil) String() string {
	return fmt.Sprintf("%s: %s (%s)", f.Felt, f.Feilmelding, f.Feilkode)
}

// UkjentKode is returned by the closed-enumeration lookups. The mapping
// engine turns it into a Feil at the field that held the code.
type UkjentKode struct {
	Kodeverk string
	Kode     string
}

func (u *UkjentKode) Error() string {
	return fmt.Sprintf("ukjent %s-kode %q", u.Kodeverk, u.Kode)
}

// Feilkode is the code mappers record for this failure.
func (u *UkjentKode) Feilkode() string { return u.Kodeverk }
