package formidling

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"punsj/pkg/domain"
	"punsj/pkg/platform/httputil"
	"punsj/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	router    http.Handler
	publisher *fakePublisher
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.publisher = &fakePublisher{}
	resolver := &fakeResolver{identer: map[domain.AktorID]domain.NorskIdent{
		"1000000000001": "12345678901",
	}}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	service := NewService(resolver, s.publisher, "punsj-brev", logger)

	r := chi.NewRouter()
	NewHandler(service, logger).Register(r)
	s.router = r
}

func (s *HandlerSuite) TestBestillGirAccepted() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/brev", DokumentbestillingDto{
		JournalpostID:    "466",
		SoekerID:         "1000000000001",
		FagsakYtelseType: "PSB",
		DokumentMal:      "HENLEG",
	})
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusAccepted)
	respons := testutil.UnmarshalResponse[Dokumentbestilling](s.T(), rr)
	s.Equal("HENLEG", respons.DokumentMal)
	s.Len(s.publisher.values, 1)
}

func (s *HandlerSuite) TestBestillMedFeilGir400() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/brev", DokumentbestillingDto{
		SoekerID:    "finnes-ikke",
		DokumentMal: "UKJENT_MAL",
	})
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	respons := testutil.UnmarshalResponse[httputil.FeilRespons](s.T(), rr)
	s.NotEmpty(respons.Feil)
	s.Empty(s.publisher.values)
}

func (s *HandlerSuite) TestBestillAvviserUgyldigJson() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/brev", "ikke json")
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertFeil(s.T(), rr, http.StatusBadRequest, "ugyldig json")
	s.Empty(s.publisher.values)
}
