package models

import (
	"time"

	"punsj/pkg/domain"
)

// SoknadEntitet is the stored draft: the editable JSON blob plus the
// metadata the intake flow needs to route and close it.
type SoknadEntitet struct {
	SoknadID      domain.SoknadID
	SokerIdent    domain.NorskIdent
	BarnIdent     domain.NorskIdent
	Journalposter []domain.JournalpostID
	Soknad        SoknadJson
	SendtInn      bool
	Opprettet     time.Time
	SistEndret    time.Time
}
