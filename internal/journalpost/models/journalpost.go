// Package models holds the journal post bookkeeping records and the closed
// code sets of the intake pipeline.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"punsj/internal/k9format"
	"punsj/pkg/domain"
)

// Journalpost is the bookkeeping record for one inbound submission awaiting
// punsj.
type Journalpost struct {
	UUID            uuid.UUID            `json:"uuid"`
	JournalpostID   domain.JournalpostID `json:"journalpostId"`
	AktorID         domain.AktorID       `json:"aktørId"`
	Ytelse          FagsakYtelseType     `json:"ytelse"`
	Type            PunsjInnsendingType  `json:"type"`
	FerdigBehandlet bool                 `json:"ferdigBehandlet"`
	Opprettet       time.Time            `json:"opprettet"`
}

// FordelPunsjEvent is the inbound routing event announcing a journal post
// that needs manual transcription.
type FordelPunsjEvent struct {
	JournalpostID domain.JournalpostID `json:"journalpostId"`
	AktorID       domain.AktorID       `json:"aktørId"`
	Type          string               `json:"type"`
	Ytelse        string               `json:"ytelse"`
}

// FagsakYtelseType is the benefit area a journal post belongs to.
type FagsakYtelseType string

const (
	YtelsePleiepengerSyktBarn        FagsakYtelseType = "PSB"
	YtelseOmsorgspenger              FagsakYtelseType = "OMP"
	YtelsePleiepengerLivetsSluttfase FagsakYtelseType = "PPN"
	YtelseUkjent                     FagsakYtelseType = "UKJENT"
)

func FagsakYtelseTypeFraKode(kode string) (FagsakYtelseType, error) {
	switch FagsakYtelseType(strings.ToUpper(kode)) {
	case YtelsePleiepengerSyktBarn, YtelseOmsorgspenger, YtelsePleiepengerLivetsSluttfase:
		return FagsakYtelseType(strings.ToUpper(kode)), nil
	}
	return "", &k9format.UkjentKode{Kodeverk: "FagsakYtelseType", Kode: kode}
}

// PunsjInnsendingType classifies how the submission arrived.
type PunsjInnsendingType string

const (
	InnsendingPapirsoknad          PunsjInnsendingType = "PAPIRSØKNAD"
	InnsendingPapirettersendelse   PunsjInnsendingType = "PAPIRETTERSENDELSE"
	InnsendingDigitalEttersendelse PunsjInnsendingType = "DIGITAL_ETTERSENDELSE"
	InnsendingKopi                 PunsjInnsendingType = "KOPI"
	InnsendingSamtalereferat       PunsjInnsendingType = "SAMTALEREFERAT"
	InnsendingIkkeLengerNodvendig  PunsjInnsendingType = "PUNSJOPPGAVE_IKKE_LENGER_NØDVENDIG"
	InnsendingUkjent               PunsjInnsendingType = "UKJENT"
)

func PunsjInnsendingTypeFraKode(kode string) (PunsjInnsendingType, error) {
	switch PunsjInnsendingType(strings.ToUpper(kode)) {
	case InnsendingPapirsoknad, InnsendingPapirettersendelse, InnsendingDigitalEttersendelse,
		InnsendingKopi, InnsendingSamtalereferat, InnsendingIkkeLengerNodvendig:
		return PunsjInnsendingType(strings.ToUpper(kode)), nil
	}
	return "", &k9format.UkjentKode{Kodeverk: "PunsjInnsendingType", Kode: kode}
}

// AntallPerType is one row of the per-type throughput count.
type AntallPerType struct {
	Type   PunsjInnsendingType
	Antall int
}
