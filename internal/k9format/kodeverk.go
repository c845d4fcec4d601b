package k9format

import "strings"

// Closed enumerations of the canonical format. Lookups are total: an unknown
// code returns *UkjentKode, never panics.

// UtenlandsoppholdAarsak classifies why a stay abroad is relevant for the
// claim.
type UtenlandsoppholdAarsak string

const (
	BarnetInnlagtDekketNorge        UtenlandsoppholdAarsak = "barnetInnlagtIHelseinstitusjonForNorskOffentligRegning"
	BarnetInnlagtDekketTrygdeavtale UtenlandsoppholdAarsak = "barnetInnlagtIHelseinstitusjonDekketEtterAvtaleMedEtAnnetLandOmTrygd"
)

func UtenlandsoppholdAarsakFraKode(kode string) (UtenlandsoppholdAarsak, error) {
	switch UtenlandsoppholdAarsak(kode) {
	case BarnetInnlagtDekketNorge, BarnetInnlagtDekketTrygdeavtale:
		return UtenlandsoppholdAarsak(kode), nil
	}
	return "", &UkjentKode{Kodeverk: "UtenlandsoppholdÅrsak", Kode: kode}
}

// BarnRelasjon is the caseworker-entered relation between applicant and
// child.
type BarnRelasjon string

const (
	RelasjonMor            BarnRelasjon = "MOR"
	RelasjonMedmor         BarnRelasjon = "MEDMOR"
	RelasjonFar            BarnRelasjon = "FAR"
	RelasjonFosterforelder BarnRelasjon = "FOSTERFORELDER"
	RelasjonAnnet          BarnRelasjon = "ANNET"
)

func BarnRelasjonFraKode(kode string) (BarnRelasjon, error) {
	switch BarnRelasjon(strings.ToUpper(kode)) {
	case RelasjonMor, RelasjonMedmor, RelasjonFar, RelasjonFosterforelder, RelasjonAnnet:
		return BarnRelasjon(strings.ToUpper(kode)), nil
	}
	return "", &UkjentKode{Kodeverk: "BarnRelasjon", Kode: kode}
}

// VirksomhetType classifies a self-employment business activity.
type VirksomhetType string

const (
	VirksomhetDagmamma VirksomhetType = "DAGMAMMA"
	VirksomhetFiske    VirksomhetType = "FISKE"
	VirksomhetJordbruk VirksomhetType = "JORDBRUK_SKOGBRUK"
	VirksomhetAnnen    VirksomhetType = "ANNEN"
)

// VirksomhetTypeFraKode resolves free-text business types the way the punsj
// frontend delivers them: recognizable substrings first, then a strict match
// against the closed set.
func VirksomhetTypeFraKode(kode string) (VirksomhetType, error) {
	lav := strings.ToLower(kode)
	switch {
	case strings.Contains(lav, "dagmamma"):
		return VirksomhetDagmamma, nil
	case strings.Contains(lav, "fiske"):
		return VirksomhetFiske, nil
	case strings.Contains(lav, "jordbruk"):
		return VirksomhetJordbruk, nil
	case strings.Contains(lav, "annen"):
		return VirksomhetAnnen, nil
	}
	switch VirksomhetType(strings.ToUpper(kode)) {
	case VirksomhetDagmamma, VirksomhetFiske, VirksomhetJordbruk, VirksomhetAnnen:
		return VirksomhetType(strings.ToUpper(kode)), nil
	}
	return "", &UkjentKode{Kodeverk: "VirksomhetType", Kode: kode}
}

// AktivitetFravaer says in which work role the absence occurred.
type AktivitetFravaer string

const (
	FravaerArbeidstaker AktivitetFravaer = "ARBEIDSTAKER"
	FravaerFrilanser    AktivitetFravaer = "FRILANSER"
	FravaerSelvstendig  AktivitetFravaer = "SELVSTENDIG_VIRKSOMHET"
)
