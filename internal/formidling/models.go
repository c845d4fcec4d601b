// Package formidling maps punched letter orders into the canonical document
// order format and publishes them to the formidling topic.
package formidling

import (
	"strings"

	"punsj/internal/k9format"
	"punsj/pkg/domain"
)

// BrevID identifies one letter order.
type BrevID string

func (b BrevID) String() string { return string(b) }

// DokumentbestillingDto is the caseworker's letter order.
type DokumentbestillingDto struct {
	JournalpostID    domain.JournalpostID `json:"journalpostId"`
	Saksnummer       domain.Saksnummer    `json:"saksnummer"`
	SoekerID         domain.AktorID       `json:"soekerId"`
	Mottaker         MottakerDto          `json:"mottaker"`
	FagsakYtelseType string               `json:"fagsakYtelseType"`
	DokumentMal      string               `json:"dokumentMal"`
	Dokumentdata     map[string]any       `json:"dokumentdata"`
}

// MottakerDto optionally overrides the letter recipient.
type MottakerDto struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Dokumentbestilling is the canonical letter order sent to formidling.
type Dokumentbestilling struct {
	EksternReferanse     domain.JournalpostID `json:"eksternReferanse,omitempty"`
	DokumentbestillingID string               `json:"dokumentbestillingId,omitempty"`
	Saksnummer           domain.Saksnummer    `json:"saksnummer,omitempty"`
	AktorID              domain.NorskIdent    `json:"aktørId,omitempty"`
	OverstyrtMottaker    *Mottaker            `json:"overstyrtMottaker,omitempty"`
	YtelseType           string               `json:"ytelseType,omitempty"`
	DokumentMal          string               `json:"dokumentMal,omitempty"`
	Dokumentdata         string               `json:"dokumentdata,omitempty"`
	AvsenderApplikasjon  string               `json:"avsenderApplikasjon,omitempty"`
}

type Mottaker struct {
	Type IdType `json:"type"`
	ID   string `json:"id"`
}

// IdType is the closed set of recipient identifier types.
type IdType string

const (
	IdTypeFnr     IdType = "FNR"
	IdTypeOrgnr   IdType = "ORGNR"
	IdTypeAktorID IdType = "AKTØRID"
)

func IdTypeFraKode(kode string) (IdType, error) {
	switch IdType(strings.ToUpper(kode)) {
	case IdTypeFnr, IdTypeOrgnr, IdTypeAktorID:
		return IdType(strings.ToUpper(kode)), nil
	}
	return "", &k9format.UkjentKode{Kodeverk: "IdType", Kode: kode}
}

// DokumentMal is the closed set of letter templates punsj may order.
type DokumentMal string

const (
	MalInnhentDokumentasjon DokumentMal = "INNHEN"
	MalHenleggelse          DokumentMal = "HENLEG"
	MalFritekst             DokumentMal = "FRITKS"
)

func DokumentMalFraKode(kode string) (DokumentMal, error) {
	switch DokumentMal(strings.ToUpper(kode)) {
	case MalInnhentDokumentasjon, MalHenleggelse, MalFritekst:
		return DokumentMal(strings.ToUpper(kode)), nil
	}
	return "", &k9format.UkjentKode{Kodeverk: "DokumentMalType", Kode: kode}
}
