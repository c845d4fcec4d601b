package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"punsj/internal/journalpost/models"
	"punsj/internal/journalpost/store"
	"punsj/pkg/domain"
	"punsj/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	router http.Handler
	store  *store.InMemoryStore
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.store = store.NewInMemory()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	r := chi.NewRouter()
	New(s.store, logger).Register(r)
	s.router = r
}

func (s *HandlerSuite) TestHent() {
	err := s.store.Opprett(context.Background(), models.Journalpost{
		UUID:          uuid.New(),
		JournalpostID: "466",
		AktorID:       "1000000000001",
		Ytelse:        models.YtelsePleiepengerSyktBarn,
		Type:          models.InnsendingPapirsoknad,
		Opprettet:     time.Now(),
	})
	s.Require().NoError(err)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/journalpost/466"))

	testutil.AssertStatusOK(s.T(), rr)
	respons := testutil.UnmarshalResponse[JournalpostRespons](s.T(), rr)
	s.Equal(domain.JournalpostID("466"), respons.JournalpostID)
	s.Equal(domain.AktorID("1000000000001"), respons.AktorID)
	s.Equal(models.YtelsePleiepengerSyktBarn, respons.Ytelse)
	s.Equal(models.InnsendingPapirsoknad, respons.Type)
	s.False(respons.FerdigBehandlet)
}

func (s *HandlerSuite) TestHentUkjentGir404() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/journalpost/999"))
	testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
}
