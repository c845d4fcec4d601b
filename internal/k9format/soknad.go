package k9format

import (
	"time"

	"punsj/pkg/domain"
)

// Versjon is the format version stamped on every assembled document.
const Versjon = "1.0.0"

// Kildesystem tags which system issued the document.
const Kildesystem = "punsj"

// Ytelse is the benefit payload of a søknad. Implementations are the
// per-benefit structs below.
type Ytelse interface {
	YtelseType() string
}

// Soknad is the canonical document shell: identity, format version, received
// timestamp, applicant reference, attached source documents and the benefit
// payload.
type Soknad struct {
	SoknadID                 string         `json:"søknadId,omitempty"`
	Versjon                  string         `json:"versjon,omitempty"`
	MottattDato              *time.Time     `json:"mottattDato,omitempty"`
	Soker                    *Soker         `json:"søker,omitempty"`
	Journalposter            []Journalpost  `json:"journalposter,omitempty"`
	BegrunnelseForInnsending string         `json:"begrunnelseForInnsending,omitempty"`
	Kildesystem              string         `json:"kildesystem,omitempty"`
	Ytelse                   Ytelse         `json:"ytelse,omitempty"`
}

// Soker is the applicant reference.
type Soker struct {
	NorskIdentitetsnummer domain.NorskIdent `json:"norskIdentitetsnummer"`
}

// Journalpost references one attached source document, with the flags the
// caseworker set about content that could not be transcribed.
type Journalpost struct {
	JournalpostID                 domain.JournalpostID `json:"journalpostId"`
	InformasjonSomIkkeKanPunsjes  bool                 `json:"informasjonSomIkkeKanPunsjes"`
	InneholderMedisinskeOpplysninger bool              `json:"inneholderMedisinskeOpplysninger"`
}

// Barn references the child the claim concerns, by identity number or, when
// that is unknown, birth date.
type Barn struct {
	NorskIdentitetsnummer domain.NorskIdent `json:"norskIdentitetsnummer,omitempty"`
	Foedselsdato          *domain.Dato      `json:"fødselsdato,omitempty"`
}
