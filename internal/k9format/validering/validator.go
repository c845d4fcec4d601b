// Package validering checks assembled k9format documents against the domain
// rules the downstream system enforces. Validators are pure functions over
// the document; every finding is a field-addressed Feil, never a Go error.
package validering

import (
	"fmt"
	"sort"

	"punsj/internal/k9format"
	"punsj/pkg/domain"
)

// PsbValidator validates pleiepenger sykt barn documents.
type PsbValidator struct{}

func NewPsbValidator() *PsbValidator { return &PsbValidator{} }

// Valider runs the structural and business rules.
func (v *PsbValidator) Valider(soknad *k9format.Soknad) []k9format.Feil {
	var feil []k9format.Feil
	feil = append(feil, validerSoknad(soknad)...)

	psb, ok := soknad.Ytelse.(*k9format.PleiepengerSyktBarn)
	if !ok {
		return append(feil, k9format.Feil{
			Felt:        "ytelse",
			Feilkode:    "påkrevd",
			Feilmelding: "Ytelse mangler",
		})
	}

	for i, periode := range psb.Soknadsperiode {
		if periode.Tom.Foer(periode.Fom) {
			feil = append(feil, k9format.Feil{
				Felt:        fmt.Sprintf("ytelse.søknadsperiode[%d]", i),
				Feilkode:    "ugyldigPeriode",
				Feilmelding: "Fra-dato er etter til-dato",
			})
		}
	}

	if psb.Uttak != nil {
		feil = append(feil, validerPeriodeMap("ytelse.uttak.perioder", nokler(psb.Uttak.Perioder))...)
		feil = append(feil, validerInnenforSoknadsperiode("ytelse.uttak.perioder", nokler(psb.Uttak.Perioder), psb.Soknadsperiode)...)
	}
	if psb.Beredskap != nil {
		feil = append(feil, validerPeriodeMap("ytelse.beredskap.perioder", nokler(psb.Beredskap.Perioder))...)
	}
	if psb.Nattevaak != nil {
		feil = append(feil, validerPeriodeMap("ytelse.nattevåk.perioder", nokler(psb.Nattevaak.Perioder))...)
	}
	if psb.Bosteder != nil {
		feil = append(feil, validerPeriodeMap("ytelse.bosteder.perioder", nokler(psb.Bosteder.Perioder))...)
	}
	if psb.Utenlandsopphold != nil {
		feil = append(feil, validerPeriodeMap("ytelse.utenlandsopphold.perioder", nokler(psb.Utenlandsopphold.Perioder))...)
	}
	if psb.Tilsynsordning != nil {
		feil = append(feil, validerPeriodeMap("ytelse.tilsynsordning.perioder", nokler(psb.Tilsynsordning.Perioder))...)
	}
	return feil
}

// ValiderMedKjentePerioder additionally rejects claim periods that overlap
// periods already decided in the system of record.
func (v *PsbValidator) ValiderMedKjentePerioder(soknad *k9format.Soknad, kjente []domain.Periode) []k9format.Feil {
	feil := v.Valider(soknad)
	psb, ok := soknad.Ytelse.(*k9format.PleiepengerSyktBarn)
	if !ok {
		return feil
	}
	for i, periode := range psb.Soknadsperiode {
		for _, kjent := range kjente {
			if periode.Overlapper(kjent) {
				feil = append(feil, k9format.Feil{
					Felt:        fmt.Sprintf("ytelse.søknadsperiode[%d]", i),
					Feilkode:    "eksisterendePeriode",
					Feilmelding: fmt.Sprintf("Perioden overlapper med %s som allerede finnes i k9", kjent),
				})
			}
		}
	}
	return feil
}

// OmsValidator validates omsorgspenger utbetaling documents.
type OmsValidator struct{}

func NewOmsValidator() *OmsValidator { return &OmsValidator{} }

func (v *OmsValidator) Valider(soknad *k9format.Soknad) []k9format.Feil {
	var feil []k9format.Feil
	feil = append(feil, validerSoknad(soknad)...)

	oms, ok := soknad.Ytelse.(*k9format.OmsorgspengerUtbetaling)
	if !ok {
		return append(feil, k9format.Feil{
			Felt:        "ytelse",
			Feilkode:    "påkrevd",
			Feilmelding: "Ytelse mangler",
		})
	}
	for i, fravaer := range oms.FravaersperioderKorrigeringIm {
		if fravaer.Periode.Tom.Foer(fravaer.Periode.Fom) {
			feil = append(feil, k9format.Feil{
				Felt:        fmt.Sprintf("ytelse.fraværsperioderKorrigeringIm[%d]", i),
				Feilkode:    "ugyldigPeriode",
				Feilmelding: "Fra-dato er etter til-dato",
			})
		}
	}
	return feil
}

func validerSoknad(soknad *k9format.Soknad) []k9format.Feil {
	var feil []k9format.Feil
	if soknad.Soker == nil || !soknad.Soker.NorskIdentitetsnummer.ErSatt() {
		feil = append(feil, k9format.Feil{
			Felt:        "søker.norskIdentitetsnummer",
			Feilkode:    "påkrevd",
			Feilmelding: "Søker mangler",
		})
	}
	if soknad.MottattDato == nil {
		feil = append(feil, k9format.Feil{
			Felt:        "mottattDato",
			Feilkode:    "påkrevd",
			Feilmelding: "Mottatt dato mangler",
		})
	}
	if soknad.Versjon != k9format.Versjon {
		feil = append(feil, k9format.Feil{
			Felt:        "versjon",
			Feilkode:    "ugyldigVersjon",
			Feilmelding: fmt.Sprintf("Versjon må være %s", k9format.Versjon),
		})
	}
	return feil
}

// validerPeriodeMap flags overlapping intervals among the keys of one
// period-keyed map.
func validerPeriodeMap(felt string, perioder []domain.Periode) []k9format.Feil {
	var feil []k9format.Feil
	for i := 0; i < len(perioder); i++ {
		for j := i + 1; j < len(perioder); j++ {
			if perioder[i].Overlapper(perioder[j]) {
				feil = append(feil, k9format.Feil{
					Felt:        fmt.Sprintf("%s.%s", felt, perioder[i].JSONPath()),
					Feilkode:    "overlappendePerioder",
					Feilmelding: fmt.Sprintf("Perioden overlapper med %s", perioder[j]),
				})
			}
		}
	}
	return feil
}

func validerInnenforSoknadsperiode(felt string, perioder, soknadsperiode []domain.Periode) []k9format.Feil {
	if len(soknadsperiode) == 0 {
		return nil
	}
	var feil []k9format.Feil
	for _, periode := range perioder {
		innenfor := false
		for _, sp := range soknadsperiode {
			if sp.Inneholder(periode) {
				innenfor = true
				break
			}
		}
		if !innenfor {
			feil = append(feil, k9format.Feil{
				Felt:        fmt.Sprintf("%s.%s", felt, periode.JSONPath()),
				Feilkode:    "utenforSøknadsperiode",
				Feilmelding: "Perioden er utenfor søknadsperioden",
			})
		}
	}
	return feil
}

// nokler returns the map's period keys in stable chronological order so the
// error list stays deterministic.
func nokler[V any](m map[domain.Periode]V) []domain.Periode {
	perioder := make([]domain.Periode, 0, len(m))
	for p := range m {
		perioder = append(perioder, p)
	}
	sort.Slice(perioder, func(i, j int) bool {
		return perioder[i].ISO8601() < perioder[j].ISO8601()
	})
	return perioder
}
