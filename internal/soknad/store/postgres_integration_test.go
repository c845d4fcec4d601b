//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"punsj/internal/soknad/models"
	"punsj/internal/soknad/store"
	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
	"punsj/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "soknad")
	s.Require().NoError(err)
}

func nyEntitet(id domain.SoknadID) models.SoknadEntitet {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return models.SoknadEntitet{
		SoknadID:      id,
		SokerIdent:    domain.NorskIdent("12345678901"),
		BarnIdent:     domain.NorskIdent("10987654321"),
		Journalposter: []domain.JournalpostID{"466", "467"},
		Soknad:        models.SoknadJson{"mottattDato": "2024-03-01"},
		Opprettet:     now,
		SistEndret:    now,
	}
}

func (s *PostgresStoreSuite) TestOpprettOgHent() {
	ctx := context.Background()
	entitet := nyEntitet("utkast-1")

	s.Require().NoError(s.store.Opprett(ctx, entitet))

	hentet, err := s.store.Hent(ctx, "utkast-1")
	s.Require().NoError(err)
	s.Equal(entitet.SoknadID, hentet.SoknadID)
	s.Equal(entitet.SokerIdent, hentet.SokerIdent)
	s.Equal(entitet.BarnIdent, hentet.BarnIdent)
	s.Equal(entitet.Journalposter, hentet.Journalposter)
	s.Equal(entitet.Soknad, hentet.Soknad)
	s.False(hentet.SendtInn)
}

func (s *PostgresStoreSuite) TestHentUkjentGirNotFound() {
	_, err := s.store.Hent(context.Background(), "finnes-ikke")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestOppdaterSoknad() {
	ctx := context.Background()
	s.Require().NoError(s.store.Opprett(ctx, nyEntitet("utkast-1")))

	oppdatert := models.SoknadJson{
		"mottattDato": "2024-03-02",
		"klokkeslett": "09:15",
	}
	s.Require().NoError(s.store.OppdaterSoknad(ctx, "utkast-1", oppdatert))

	hentet, err := s.store.Hent(ctx, "utkast-1")
	s.Require().NoError(err)
	s.Equal(oppdatert, hentet.Soknad)

	s.ErrorIs(s.store.OppdaterSoknad(ctx, "finnes-ikke", oppdatert), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestMarkerSendtInn() {
	ctx := context.Background()
	s.Require().NoError(s.store.Opprett(ctx, nyEntitet("utkast-1")))

	s.Require().NoError(s.store.MarkerSendtInn(ctx, "utkast-1"))

	hentet, err := s.store.Hent(ctx, "utkast-1")
	s.Require().NoError(err)
	s.True(hentet.SendtInn)

	s.ErrorIs(s.store.MarkerSendtInn(ctx, "finnes-ikke"), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestJournalposterRundtur() {
	ctx := context.Background()
	entitet := nyEntitet("utkast-1")
	entitet.Journalposter = nil
	s.Require().NoError(s.store.Opprett(ctx, entitet))

	hentet, err := s.store.Hent(ctx, "utkast-1")
	s.Require().NoError(err)
	s.Nil(hentet.Journalposter)
}
