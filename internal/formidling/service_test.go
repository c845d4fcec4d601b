package formidling

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"punsj/pkg/domain"
)

type fakePublisher struct {
	topics []string
	keys   []string
	values [][]byte
}

func (f *fakePublisher) Send(ctx context.Context, topic, key string, value []byte) error {
	f.topics = append(f.topics, topic)
	f.keys = append(f.keys, key)
	f.values = append(f.values, value)
	return nil
}

type ServiceSuite struct {
	suite.Suite
	publisher *fakePublisher
	service   *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.publisher = &fakePublisher{}
	resolver := &fakeResolver{identer: map[domain.AktorID]domain.NorskIdent{
		"1000000000001": "12345678901",
	}}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	s.service = NewService(resolver, s.publisher, "punsj-brev", logger)
	s.service.nyBrevID = func() BrevID { return "brev-1" }
}

func (s *ServiceSuite) TestBestillPubliserer() {
	bestilling, feil, err := s.service.Bestill(context.Background(), DokumentbestillingDto{
		JournalpostID:    "466",
		SoekerID:         "1000000000001",
		FagsakYtelseType: "PSB",
		DokumentMal:      "FRITKS",
		Dokumentdata:     map[string]any{"fritekst": "vedtak"},
	})

	s.Require().NoError(err)
	s.Empty(feil)
	s.Require().Len(s.publisher.values, 1)
	s.Equal("punsj-brev", s.publisher.topics[0])
	s.Equal("brev-1", s.publisher.keys[0])

	var publisert Dokumentbestilling
	s.Require().NoError(json.Unmarshal(s.publisher.values[0], &publisert))
	s.Equal(*bestilling, publisert)
}

func (s *ServiceSuite) TestFeilPublisererIkke() {
	bestilling, feil, err := s.service.Bestill(context.Background(), DokumentbestillingDto{
		SoekerID:    "finnes-ikke",
		DokumentMal: "UKJENT_MAL",
	})

	s.Require().NoError(err)
	s.NotEmpty(feil)
	s.NotNil(bestilling)
	s.Empty(s.publisher.values)
}
