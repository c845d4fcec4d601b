package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"punsj/internal/k9format"
	"punsj/internal/k9format/validering"
	"punsj/internal/soknad/models"
	"punsj/internal/soknad/store"
	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
)

type fakeGateway struct {
	perioder   []domain.Periode
	sendte     []*k9format.Soknad
	sendFeiler error
}

func (f *fakeGateway) HentPerioder(context.Context, domain.NorskIdent, domain.NorskIdent) ([]domain.Periode, error) {
	return f.perioder, nil
}

func (f *fakeGateway) SendSoknad(_ context.Context, soknad *k9format.Soknad) error {
	if f.sendFeiler != nil {
		return f.sendFeiler
	}
	f.sendte = append(f.sendte, soknad)
	return nil
}

type fakeFerdigstiller struct {
	lukkede []domain.JournalpostID
}

func (f *fakeFerdigstiller) SettFerdigBehandlet(_ context.Context, id domain.JournalpostID) error {
	f.lukkede = append(f.lukkede, id)
	return nil
}

type SoknadServiceSuite struct {
	suite.Suite
	ctx           context.Context
	store         *store.InMemoryStore
	gateway       *fakeGateway
	ferdigstiller *fakeFerdigstiller
	service       *Service
}

func (s *SoknadServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = store.NewInMemory()
	s.gateway = &fakeGateway{}
	s.ferdigstiller = &fakeFerdigstiller{}
	s.service = New(
		s.store, s.gateway, s.ferdigstiller,
		validering.NewPsbValidator(), validering.NewOmsValidator(),
		slog.Default(),
		WithClock(func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }),
	)
}

func TestSoknadServiceSuite(t *testing.T) {
	suite.Run(t, new(SoknadServiceSuite))
}

func (s *SoknadServiceSuite) komplettUtkast() models.SoknadJson {
	return models.SoknadJson{
		"soekerId":    "12345678910",
		"mottattDato": "2024-02-01",
		"klokkeslett": "12:15",
		"soeknadsperiode": []any{
			map[string]any{"fom": "2024-03-01", "tom": "2024-03-31"},
		},
	}
}

func (s *SoknadServiceSuite) oppdater(fragment models.SoknadJson) *models.SoknadEntitet {
	entitet, err := s.service.OppdaterSoknad(s.ctx, OppdaterRequest{
		SoknadID:      "u-1",
		SokerIdent:    "12345678910",
		Journalposter: []domain.JournalpostID{"466", "467"},
		Fragment:      fragment,
	})
	s.Require().NoError(err)
	return entitet
}

func (s *SoknadServiceSuite) TestFoersteOppdateringOppretterUtkast() {
	entitet := s.oppdater(models.SoknadJson{"klokkeslett": "08:00"})

	s.Equal(domain.SoknadID("u-1"), entitet.SoknadID)
	s.Equal("08:00", entitet.Soknad["klokkeslett"])

	lagret, err := s.store.Hent(s.ctx, "u-1")
	s.Require().NoError(err)
	s.False(lagret.SendtInn)
}

func (s *SoknadServiceSuite) TestOppdateringerFlettes() {
	s.oppdater(models.SoknadJson{"klokkeslett": "08:00", "barn": map[string]any{"norskIdent": "111"}})
	entitet := s.oppdater(models.SoknadJson{"barn": map[string]any{"norskIdent": "222"}})

	s.Equal("08:00", entitet.Soknad["klokkeslett"])
	barn := entitet.Soknad["barn"].(map[string]any)
	s.Equal("222", barn["norskIdent"])
}

func (s *SoknadServiceSuite) TestValiderReturnererFeilUtenAaSende() {
	s.oppdater(models.SoknadJson{"klokkeslett": "12:15"})

	soknad, feil, err := s.service.ValiderPsb(s.ctx, "u-1")
	s.Require().NoError(err)
	s.NotNil(soknad)
	s.NotEmpty(feil)
	s.Empty(s.gateway.sendte)
}

func (s *SoknadServiceSuite) TestSendInnKomplettUtkast() {
	s.oppdater(s.komplettUtkast())

	soknad, feil, err := s.service.SendInnPsb(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Empty(feil)
	s.NotNil(soknad)

	s.Require().Len(s.gateway.sendte, 1)
	s.Equal("u-1", s.gateway.sendte[0].SoknadID)

	s.ElementsMatch([]domain.JournalpostID{"466", "467"}, s.ferdigstiller.lukkede)

	lagret, err := s.store.Hent(s.ctx, "u-1")
	s.Require().NoError(err)
	s.True(lagret.SendtInn)
}

func (s *SoknadServiceSuite) TestSendInnMedFeilSenderIngenting() {
	utkast := s.komplettUtkast()
	delete(utkast, "soekerId")
	s.oppdater(utkast)

	_, feil, err := s.service.SendInnPsb(s.ctx, "u-1")
	s.Require().NoError(err)
	s.NotEmpty(feil)
	s.Empty(s.gateway.sendte)
	s.Empty(s.ferdigstiller.lukkede)

	lagret, lagretErr := s.store.Hent(s.ctx, "u-1")
	s.Require().NoError(lagretErr)
	s.False(lagret.SendtInn)
}

func (s *SoknadServiceSuite) TestSendInnToGangerAvvises() {
	s.oppdater(s.komplettUtkast())

	_, _, err := s.service.SendInnPsb(s.ctx, "u-1")
	s.Require().NoError(err)

	_, _, err = s.service.SendInnPsb(s.ctx, "u-1")
	s.Require().ErrorIs(err, sentinel.ErrInvalidState)
	s.Len(s.gateway.sendte, 1)
}

func (s *SoknadServiceSuite) TestOppdateringEtterInnsendingAvvises() {
	s.oppdater(s.komplettUtkast())
	_, _, err := s.service.SendInnPsb(s.ctx, "u-1")
	s.Require().NoError(err)

	_, err = s.service.OppdaterSoknad(s.ctx, OppdaterRequest{
		SoknadID: "u-1",
		Fragment: models.SoknadJson{"klokkeslett": "13:00"},
	})
	s.Require().ErrorIs(err, sentinel.ErrInvalidState)
}

func (s *SoknadServiceSuite) TestSendInnMotEksisterendePerioder() {
	s.gateway.perioder = []domain.Periode{{
		Fom: domain.MustParseDato("2024-03-15"),
		Tom: domain.MustParseDato("2024-04-15"),
	}}
	s.oppdater(s.komplettUtkast())

	_, feil, err := s.service.SendInnPsb(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Require().Len(feil, 1)
	s.Equal("eksisterendePeriode", feil[0].Feilkode)
	s.Empty(s.gateway.sendte)
}

func (s *SoknadServiceSuite) TestSendInnGatewayFeilPropageres() {
	s.gateway.sendFeiler = errors.New("k9-sak nede")
	s.oppdater(s.komplettUtkast())

	_, _, err := s.service.SendInnPsb(s.ctx, "u-1")
	s.Require().Error(err)

	lagret, lagretErr := s.store.Hent(s.ctx, "u-1")
	s.Require().NoError(lagretErr)
	s.False(lagret.SendtInn, "draft stays open when submission fails")
}

func (s *SoknadServiceSuite) TestSendInnOmsKorrigering() {
	_, err := s.service.OppdaterSoknad(s.ctx, OppdaterRequest{
		SoknadID:      "k-1",
		SokerIdent:    "12345678910",
		Journalposter: []domain.JournalpostID{"700"},
		Fragment: models.SoknadJson{
			"soekerId":            "12345678910",
			"mottattDato":         "2024-02-01",
			"klokkeslett":         "08:00",
			"organisasjonsnummer": "987654321",
			"fravaersperioder": []any{
				map[string]any{
					"periode":  map[string]any{"fom": "2024-01-08", "tom": "2024-01-12"},
					"tidPrDag": map[string]any{"timer": 7, "minutter": 30},
				},
			},
		},
	})
	s.Require().NoError(err)

	soknad, feil, err := s.service.SendInnOms(s.ctx, "k-1")
	s.Require().NoError(err)
	s.Empty(feil)

	oms, ok := soknad.Ytelse.(*k9format.OmsorgspengerUtbetaling)
	s.Require().True(ok)
	s.Len(oms.FravaersperioderKorrigeringIm, 1)
	s.Len(s.gateway.sendte, 1)
}

func (s *SoknadServiceSuite) TestHentUkjentUtkast() {
	_, err := s.service.Hent(s.ctx, "finnes-ikke")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
