package models

import "punsj/pkg/domain"

// KorrigeringInntektsmeldingDto is the punched correction of an employer's
// income report: absence periods for one employment.
type KorrigeringInntektsmeldingDto struct {
	SoeknadID   domain.SoknadID   `json:"soeknadId"`
	SoekerID    domain.NorskIdent `json:"soekerId"`
	MottattDato *domain.Dato      `json:"mottattDato"`
	Klokkeslett string            `json:"klokkeslett"`

	Organisasjonsnummer domain.Organisasjonsnummer `json:"organisasjonsnummer"`
	ArbeidsforholdID    string                     `json:"arbeidsforholdId"`
	Fravaersperioder    []FravaersPeriodeDto       `json:"fravaersperioder"`

	HarInfoSomIkkeKanPunsjes  *bool `json:"harInfoSomIkkeKanPunsjes"`
	HarMedisinskeOpplysninger *bool `json:"harMedisinskeOpplysninger"`
}

// FravaersPeriodeDto is one punched absence period. A zero tidPrDag means the
// days are withdrawn; a set faktiskTidPrDag marks partial-day absence.
type FravaersPeriodeDto struct {
	Periode         *domain.PeriodeDto      `json:"periode"`
	TidPrDag        *domain.TimerOgMinutter `json:"tidPrDag"`
	FaktiskTidPrDag *domain.TimerOgMinutter `json:"faktiskTidPrDag"`
}
