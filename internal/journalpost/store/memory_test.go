package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"punsj/internal/journalpost/models"
	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
)

type JournalpostStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func (s *JournalpostStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestJournalpostStoreSuite(t *testing.T) {
	suite.Run(t, new(JournalpostStoreSuite))
}

func (s *JournalpostStoreSuite) nyJournalpost(id string, type_ models.PunsjInnsendingType) models.Journalpost {
	return models.Journalpost{
		UUID:          uuid.New(),
		JournalpostID: domain.JournalpostID(id),
		AktorID:       "26699",
		Ytelse:        models.YtelsePleiepengerSyktBarn,
		Type:          type_,
		Opprettet:     time.Now(),
	}
}

func (s *JournalpostStoreSuite) TestOpprettOgHent() {
	journalpost := s.nyJournalpost("466", models.InnsendingPapirsoknad)
	s.Require().NoError(s.store.Opprett(s.ctx, journalpost))

	hentet, err := s.store.Hent(s.ctx, "466")
	s.Require().NoError(err)
	s.Equal(journalpost.UUID, hentet.UUID)
	s.Equal(models.InnsendingPapirsoknad, hentet.Type)

	s.Require().ErrorIs(s.store.Opprett(s.ctx, journalpost), sentinel.ErrConflict)

	_, err = s.store.Hent(s.ctx, "999")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *JournalpostStoreSuite) TestEksisterer() {
	s.Require().NoError(s.store.Opprett(s.ctx, s.nyJournalpost("466", models.InnsendingKopi)))

	finnes, err := s.store.Eksisterer(s.ctx, "466")
	s.Require().NoError(err)
	s.True(finnes)

	finnes, err = s.store.Eksisterer(s.ctx, "999")
	s.Require().NoError(err)
	s.False(finnes)
}

func (s *JournalpostStoreSuite) TestSettInnsendingstypeOgFerdigBehandlet() {
	s.Require().NoError(s.store.Opprett(s.ctx, s.nyJournalpost("466", models.InnsendingPapirsoknad)))

	s.Require().NoError(s.store.SettInnsendingstype(s.ctx, "466", models.InnsendingIkkeLengerNodvendig))
	s.Require().NoError(s.store.SettFerdigBehandlet(s.ctx, "466"))

	hentet, err := s.store.Hent(s.ctx, "466")
	s.Require().NoError(err)
	s.Equal(models.InnsendingIkkeLengerNodvendig, hentet.Type)
	s.True(hentet.FerdigBehandlet)

	s.Require().ErrorIs(s.store.SettInnsendingstype(s.ctx, "999", models.InnsendingKopi), sentinel.ErrNotFound)
	s.Require().ErrorIs(s.store.SettFerdigBehandlet(s.ctx, "999"), sentinel.ErrNotFound)
}

func (s *JournalpostStoreSuite) TestTelling() {
	s.Require().NoError(s.store.Opprett(s.ctx, s.nyJournalpost("1", models.InnsendingPapirsoknad)))
	s.Require().NoError(s.store.Opprett(s.ctx, s.nyJournalpost("2", models.InnsendingPapirsoknad)))
	s.Require().NoError(s.store.Opprett(s.ctx, s.nyJournalpost("3", models.InnsendingKopi)))
	s.Require().NoError(s.store.SettFerdigBehandlet(s.ctx, "3"))

	ferdige, err := s.store.AntallFerdigBehandlede(s.ctx, true)
	s.Require().NoError(err)
	s.Equal(1, ferdige)

	aapne, err := s.store.AntallFerdigBehandlede(s.ctx, false)
	s.Require().NoError(err)
	s.Equal(2, aapne)

	perType, err := s.store.AntallPerType(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]models.AntallPerType{
		{Type: models.InnsendingPapirsoknad, Antall: 2},
		{Type: models.InnsendingKopi, Antall: 1},
	}, perType)
}
