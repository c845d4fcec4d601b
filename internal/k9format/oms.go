package k9format

import "punsj/pkg/domain"

// OmsorgspengerUtbetaling is the benefit payload for corrected income-report
// absence claims.
type OmsorgspengerUtbetaling struct {
	Type                          string            `json:"type"`
	FravaersperioderKorrigeringIm []FravaersPeriode `json:"fraværsperioderKorrigeringIm,omitempty"`
}

func NewOmsorgspengerUtbetaling() *OmsorgspengerUtbetaling {
	return &OmsorgspengerUtbetaling{Type: "OMP_UTBETALING"}
}

func (o *OmsorgspengerUtbetaling) YtelseType() string { return o.Type }

// FravaersPeriode is one absence entry. A zero duration withdraws previously
// reported absence for that day.
type FravaersPeriode struct {
	Periode             domain.Periode             `json:"periode"`
	VarighetPerDag      *Varighet                  `json:"duration,omitempty"`
	AktivitetFravaer    []AktivitetFravaer         `json:"aktivitetFravær"`
	Organisasjonsnummer domain.Organisasjonsnummer `json:"organisasjonsnummer,omitempty"`
	ArbeidsforholdID    string                     `json:"arbeidsforholdId,omitempty"`
}
