// Package models holds the caseworker-facing DTOs of the punsj frontend.
// Every section is optional by nature: an absent section means "nothing
// punched yet", an empty list means "explicitly nothing to report".
package models

import "punsj/pkg/domain"

// PleiepengerSoknadDto is the punched pleiepenger sykt barn application.
type PleiepengerSoknadDto struct {
	SoeknadID   domain.SoknadID   `json:"soeknadId"`
	SoekerID    domain.NorskIdent `json:"soekerId"`
	MottattDato *domain.Dato      `json:"mottattDato"`
	Klokkeslett string            `json:"klokkeslett"`

	Barn              *BarnDto            `json:"barn"`
	Soeknadsperiode   []domain.PeriodeDto `json:"soeknadsperiode"`
	TrekkKravPerioder []domain.PeriodeDto `json:"trekkKravPerioder"`

	Uttak                         []UttakDto          `json:"uttak"`
	LovbestemtFerie               []domain.PeriodeDto `json:"lovbestemtFerie"`
	LovbestemtFerieSomSkalSlettes []domain.PeriodeDto `json:"lovbestemtFerieSomSkalSlettes"`
	Beredskap                     []TilleggsinfoDto   `json:"beredskap"`
	Nattevaak                     []TilleggsinfoDto   `json:"nattevaak"`
	Bosteder                      []BostedDto         `json:"bosteder"`
	Utenlandsopphold              []UtenlandsoppholdDto `json:"utenlandsopphold"`
	Omsorg                        *OmsorgDto          `json:"omsorg"`
	OpptjeningAktivitet           *ArbeidAktivitetDto `json:"opptjeningAktivitet"`
	Arbeidstid                    *ArbeidstidDto      `json:"arbeidstid"`
	Soknadsinfo                   *SoknadsinfoDto     `json:"soknadsinfo"`
	Tilsynsordning                *TilsynsordningDto  `json:"tilsynsordning"`
	BegrunnelseForInnsending      string              `json:"begrunnelseForInnsending"`

	HarInfoSomIkkeKanPunsjes  bool `json:"harInfoSomIkkeKanPunsjes"`
	HarMedisinskeOpplysninger bool `json:"harMedisinskeOpplysninger"`
}

// BarnDto identifies the child by identity number or birth date.
type BarnDto struct {
	NorskIdent   domain.NorskIdent `json:"norskIdent"`
	Foedselsdato *domain.Dato      `json:"foedselsdato"`
}

// UttakDto is one punched uptake period.
type UttakDto struct {
	Periode            *domain.PeriodeDto      `json:"periode"`
	PleieAvBarnetPerDag *domain.TimerOgMinutter `json:"pleieAvBarnetPerDag"`
}

// TilleggsinfoDto is a period with free-text additional information; used for
// both standby (beredskap) and night watch (nattevåk).
type TilleggsinfoDto struct {
	Periode             *domain.PeriodeDto `json:"periode"`
	Tilleggsinformasjon string             `json:"tilleggsinformasjon"`
}

// BostedDto is one residence-abroad period.
type BostedDto struct {
	Periode *domain.PeriodeDto `json:"periode"`
	Land    string             `json:"land"`
}

// UtenlandsoppholdDto is one foreign-stay period with an optional reason
// code.
type UtenlandsoppholdDto struct {
	Periode *domain.PeriodeDto `json:"periode"`
	Land    string             `json:"land"`
	Aarsak  string             `json:"årsak"`
}

// OmsorgDto describes the care arrangement.
type OmsorgDto struct {
	RelasjonTilBarnet          string `json:"relasjonTilBarnet"`
	BeskrivelseAvOmsorgsrollen string `json:"beskrivelseAvOmsorgsrollen"`
}

// ArbeidAktivitetDto groups the work-activity sections.
type ArbeidAktivitetDto struct {
	SelvstendigNaeringsdrivende *SelvstendigNaeringsdrivendeDto `json:"selvstendigNaeringsdrivende"`
	Frilanser                   *FrilanserDto                   `json:"frilanser"`
}

// SelvstendigNaeringsdrivendeDto is the punched self-employment section.
type SelvstendigNaeringsdrivendeDto struct {
	Organisasjonsnummer domain.Organisasjonsnummer `json:"organisasjonsnummer"`
	VirksomhetNavn      string                     `json:"virksomhetNavn"`
	Info                *SelvstendigInfoDto        `json:"info"`
}

type SelvstendigInfoDto struct {
	Periode             *domain.PeriodeDto `json:"periode"`
	Virksomhetstyper    []string           `json:"virksomhetstyper"`
	RegistrertIUtlandet *bool              `json:"registrertIUtlandet"`
	Landkode            string             `json:"landkode"`
	RegnskapsfoererNavn string             `json:"regnskapsførerNavn"`
	RegnskapsfoererTlf  string             `json:"regnskapsførerTlf"`
	BruttoInntekt       *float64           `json:"bruttoInntekt"`
	ErVarigEndring      *bool              `json:"erVarigEndring"`
	EndringInntekt      *float64           `json:"endringInntekt"`
	EndringDato         *domain.Dato       `json:"endringDato"`
	EndringBegrunnelse  string             `json:"endringBegrunnelse"`
}

// FrilanserDto carries raw date strings; parsing happens in the mapper so a
// bad date becomes a field error, not a decode failure.
type FrilanserDto struct {
	Startdato string `json:"startdato"`
	Sluttdato string `json:"sluttdato"`
}

// ArbeidstidDto groups punched work time.
type ArbeidstidDto struct {
	ArbeidstakerList                          []ArbeidstakerDto  `json:"arbeidstakerList"`
	FrilanserArbeidstidInfo                   *ArbeidstidInfoDto `json:"frilanserArbeidstidInfo"`
	SelvstendigNaeringsdrivendeArbeidstidInfo *ArbeidstidInfoDto `json:"selvstendigNæringsdrivendeArbeidstidInfo"`
}

type ArbeidstakerDto struct {
	NorskIdent          domain.NorskIdent          `json:"norskIdent"`
	Organisasjonsnummer domain.Organisasjonsnummer `json:"organisasjonsnummer"`
	ArbeidstidInfo      *ArbeidstidInfoDto         `json:"arbeidstidInfo"`
}

type ArbeidstidInfoDto struct {
	Perioder []ArbeidstidPeriodeDto `json:"perioder"`
}

// ArbeidstidPeriodeDto carries two independently optional per-day durations.
type ArbeidstidPeriodeDto struct {
	Periode             *domain.PeriodeDto      `json:"periode"`
	FaktiskArbeidPerDag *domain.TimerOgMinutter `json:"faktiskArbeidTimerPerDag"`
	JobberNormaltPerDag *domain.TimerOgMinutter `json:"jobberNormaltTimerPerDag"`
}

// SoknadsinfoDto is auxiliary data used for downstream inference.
type SoknadsinfoDto struct {
	SamtidigHjemme *bool `json:"samtidigHjemme"`
	HarMedsoeker   *bool `json:"harMedsoeker"`
}

// TilsynsordningDto is the established supervision arrangement.
type TilsynsordningDto struct {
	Perioder []TilsynsordningInfoDto `json:"perioder"`
}

type TilsynsordningInfoDto struct {
	Periode  *domain.PeriodeDto `json:"periode"`
	Timer    int64              `json:"timer"`
	Minutter int64              `json:"minutter"`
}
