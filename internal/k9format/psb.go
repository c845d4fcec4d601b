package k9format

import (
	"punsj/pkg/domain"
)

// PleiepengerSyktBarn is the benefit payload for care of a sick child. Every
// per-period section is a map keyed by closed date intervals; within one
// mapping pass the last write for a period wins.
type PleiepengerSyktBarn struct {
	Type                 string             `json:"type"`
	Barn                 *Barn              `json:"barn,omitempty"`
	Soknadsperiode       []domain.Periode   `json:"søknadsperiode,omitempty"`
	TrekkKravPerioder    []domain.Periode   `json:"trekkKravPerioder,omitempty"`
	Uttak                *Uttak             `json:"uttak,omitempty"`
	LovbestemtFerie      *LovbestemtFerie   `json:"lovbestemtFerie,omitempty"`
	Beredskap            *Beredskap         `json:"beredskap,omitempty"`
	Nattevaak            *Nattevaak         `json:"nattevåk,omitempty"`
	Bosteder             *Bosteder          `json:"bosteder,omitempty"`
	Utenlandsopphold     *Utenlandsopphold  `json:"utenlandsopphold,omitempty"`
	Omsorg               *Omsorg            `json:"omsorg,omitempty"`
	OpptjeningAktivitet  *OpptjeningAktivitet `json:"opptjeningAktivitet,omitempty"`
	Arbeidstid           *Arbeidstid        `json:"arbeidstid,omitempty"`
	Tilsynsordning       *Tilsynsordning    `json:"tilsynsordning,omitempty"`
	DataBruktTilUtledning *DataBruktTilUtledning `json:"dataBruktTilUtledning,omitempty"`
}

func NewPleiepengerSyktBarn() *PleiepengerSyktBarn {
	return &PleiepengerSyktBarn{Type: "PLEIEPENGER_SYKT_BARN"}
}

func (p *PleiepengerSyktBarn) YtelseType() string { return p.Type }

// Uttak holds the entitlement/uptake periods with hours of care per day.
type Uttak struct {
	Perioder map[domain.Periode]UttakPeriodeInfo `json:"perioder"`
}

type UttakPeriodeInfo struct {
	TimerPleieAvBarnetPerDag *Varighet `json:"timerPleieAvBarnetPerDag,omitempty"`
}

// LovbestemtFerie marks periods with or without statutory vacation.
type LovbestemtFerie struct {
	Perioder map[domain.Periode]LovbestemtFeriePeriodeInfo `json:"perioder"`
}

type LovbestemtFeriePeriodeInfo struct {
	SkalHaFerie bool `json:"skalHaFerie"`
}

// Beredskap holds the standby/readiness periods.
type Beredskap struct {
	Perioder map[domain.Periode]BeredskapPeriodeInfo `json:"perioder"`
}

type BeredskapPeriodeInfo struct {
	Tilleggsinformasjon string `json:"tilleggsinformasjon,omitempty"`
}

// Nattevaak holds the night-watch periods.
type Nattevaak struct {
	Perioder map[domain.Periode]NattevaakPeriodeInfo `json:"perioder"`
}

type NattevaakPeriodeInfo struct {
	Tilleggsinformasjon string `json:"tilleggsinformasjon,omitempty"`
}

// Bosteder holds the residence-abroad periods.
type Bosteder struct {
	Perioder map[domain.Periode]BostedPeriodeInfo `json:"perioder"`
}

type BostedPeriodeInfo struct {
	Land string `json:"land,omitempty"`
}

// Utenlandsopphold holds foreign-stay periods with an optional reason from a
// closed enumeration.
type Utenlandsopphold struct {
	Perioder map[domain.Periode]UtenlandsoppholdPeriodeInfo `json:"perioder"`
}

type UtenlandsoppholdPeriodeInfo struct {
	Land   string                  `json:"land,omitempty"`
	Aarsak *UtenlandsoppholdAarsak `json:"årsak,omitempty"`
}

// Omsorg describes the care arrangement.
type Omsorg struct {
	RelasjonTilBarnet          *BarnRelasjon `json:"relasjonTilBarnet,omitempty"`
	BeskrivelseAvOmsorgsrollen string        `json:"beskrivelseAvOmsorgsrollen,omitempty"`
}

// OpptjeningAktivitet holds the work-activity basis for the claim.
type OpptjeningAktivitet struct {
	SelvstendigNaeringsdrivende *SelvstendigNaeringsdrivende `json:"selvstendigNæringsdrivende,omitempty"`
	Frilanser                   *Frilanser                   `json:"frilanser,omitempty"`
}

type SelvstendigNaeringsdrivende struct {
	Organisasjonsnummer domain.Organisasjonsnummer                          `json:"organisasjonsnummer,omitempty"`
	VirksomhetNavn      string                                              `json:"virksomhetNavn,omitempty"`
	Perioder            map[domain.Periode]SelvstendigPeriodeInfo           `json:"perioder,omitempty"`
}

type SelvstendigPeriodeInfo struct {
	VirksomhetsTyper    []VirksomhetType `json:"virksomhetstyper,omitempty"`
	RegistrertIUtlandet *bool            `json:"registrertIUtlandet,omitempty"`
	Landkode            string           `json:"landkode,omitempty"`
	RegnskapsfoererNavn string           `json:"regnskapsførerNavn,omitempty"`
	RegnskapsfoererTlf  string           `json:"regnskapsførerTlf,omitempty"`
	BruttoInntekt       *float64         `json:"bruttoInntekt,omitempty"`
	ErVarigEndring      *bool            `json:"erVarigEndring,omitempty"`
	EndringDato         *domain.Dato     `json:"endringDato,omitempty"`
	EndringBegrunnelse  string           `json:"endringBegrunnelse,omitempty"`
	ErNyoppstartet      bool             `json:"erNyoppstartet"`
}

type Frilanser struct {
	Startdato *domain.Dato `json:"startdato,omitempty"`
	Sluttdato *domain.Dato `json:"sluttdato,omitempty"`
}

// Arbeidstid holds work-time per employer, for freelancing and for
// self-employment.
type Arbeidstid struct {
	ArbeidstakerList []Arbeidstaker  `json:"arbeidstakerList,omitempty"`
	FrilanserArbeidstidInfo *ArbeidstidInfo `json:"frilanserArbeidstidInfo,omitempty"`
	SelvstendigNaeringsdrivendeArbeidstidInfo *ArbeidstidInfo `json:"selvstendigNæringsdrivendeArbeidstidInfo,omitempty"`
}

type Arbeidstaker struct {
	NorskIdentitetsnummer domain.NorskIdent          `json:"norskIdentitetsnummer,omitempty"`
	Organisasjonsnummer   domain.Organisasjonsnummer `json:"organisasjonsnummer,omitempty"`
	ArbeidstidInfo        *ArbeidstidInfo            `json:"arbeidstidInfo,omitempty"`
}

type ArbeidstidInfo struct {
	Perioder map[domain.Periode]ArbeidstidPeriodeInfo `json:"perioder"`
}

// ArbeidstidPeriodeInfo carries two independently optional durations; an
// absent value stays absent rather than defaulting to zero.
type ArbeidstidPeriodeInfo struct {
	FaktiskArbeidTimerPerDag *Varighet `json:"faktiskArbeidTimerPerDag,omitempty"`
	JobberNormaltTimerPerDag *Varighet `json:"jobberNormaltTimerPerDag,omitempty"`
}

// Tilsynsordning holds the established supervision arrangement.
type Tilsynsordning struct {
	Perioder map[domain.Periode]TilsynPeriodeInfo `json:"perioder"`
}

type TilsynPeriodeInfo struct {
	EtablertTilsynTimerPerDag Varighet `json:"etablertTilsynTimerPerDag"`
}

// DataBruktTilUtledning is auxiliary data used for downstream inference.
type DataBruktTilUtledning struct {
	SamtidigHjemme *bool `json:"samtidigHjemme,omitempty"`
	HarMedsoeker   *bool `json:"harMedsøker,omitempty"`
}
