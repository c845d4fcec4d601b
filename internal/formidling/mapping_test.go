package formidling

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"punsj/internal/k9format"
	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
)

type fakeResolver struct {
	identer map[domain.AktorID]domain.NorskIdent
}

func (f *fakeResolver) Identifikator(ctx context.Context, aktorID domain.AktorID) (domain.NorskIdent, error) {
	ident, ok := f.identer[aktorID]
	if !ok {
		return "", fmt.Errorf("aktør %s: %w", aktorID, sentinel.ErrNotFound)
	}
	return ident, nil
}

type MappingSuite struct {
	suite.Suite
	resolver *fakeResolver
}

func TestMappingSuite(t *testing.T) {
	suite.Run(t, new(MappingSuite))
}

func (s *MappingSuite) SetupTest() {
	s.resolver = &fakeResolver{identer: map[domain.AktorID]domain.NorskIdent{
		"1000000000001": "12345678901",
	}}
}

func (s *MappingSuite) komplettDto() DokumentbestillingDto {
	return DokumentbestillingDto{
		JournalpostID:    "466",
		Saksnummer:       "SAK-1",
		SoekerID:         "1000000000001",
		FagsakYtelseType: "PSB",
		DokumentMal:      "INNHEN",
		Dokumentdata:     map[string]any{"fritekst": "send inn legeerklæring"},
	}
}

func (s *MappingSuite) map_(dto DokumentbestillingDto) (*Dokumentbestilling, []k9format.Feil) {
	return MapDokumentTilK9Formidling(context.Background(), BrevID("brev-1"), dto, s.resolver)
}

func (s *MappingSuite) feilkoderPerFelt(feil []k9format.Feil) map[string]string {
	koder := make(map[string]string, len(feil))
	for _, f := range feil {
		koder[f.Felt] = f.Feilkode
	}
	return koder
}

func (s *MappingSuite) TestKomplettBestillingUtenFeil() {
	bestilling, feil := s.map_(s.komplettDto())

	s.Empty(feil)
	s.Equal(domain.JournalpostID("466"), bestilling.EksternReferanse)
	s.Equal("brev-1", bestilling.DokumentbestillingID)
	s.Equal(domain.Saksnummer("SAK-1"), bestilling.Saksnummer)
	s.Equal(domain.NorskIdent("12345678901"), bestilling.AktorID)
	s.Equal("PSB", bestilling.YtelseType)
	s.Equal("INNHEN", bestilling.DokumentMal)
	s.JSONEq(`{"fritekst":"send inn legeerklæring"}`, bestilling.Dokumentdata)
	s.Equal("K9SAK", bestilling.AvsenderApplikasjon)
	s.Nil(bestilling.OverstyrtMottaker)
}

func (s *MappingSuite) TestUkjentAktoerGirFeilPaaAktoerId() {
	dto := s.komplettDto()
	dto.SoekerID = "finnes-ikke"

	bestilling, feil := s.map_(dto)

	koder := s.feilkoderPerFelt(feil)
	s.Contains(koder, "AktørId")
	s.Empty(bestilling.AktorID)
	s.Equal("INNHEN", bestilling.DokumentMal)
}

func (s *MappingSuite) TestManglendeSaksnummerFaarGsak() {
	dto := s.komplettDto()
	dto.Saksnummer = ""

	bestilling, feil := s.map_(dto)

	s.Empty(feil)
	s.Equal(domain.Saksnummer("GSAK"), bestilling.Saksnummer)
}

func (s *MappingSuite) TestOverstyrtMottaker() {
	dto := s.komplettDto()
	dto.Mottaker = MottakerDto{Type: "orgnr", ID: "889640782"}

	bestilling, feil := s.map_(dto)

	s.Empty(feil)
	s.Require().NotNil(bestilling.OverstyrtMottaker)
	s.Equal(IdTypeOrgnr, bestilling.OverstyrtMottaker.Type)
	s.Equal("889640782", bestilling.OverstyrtMottaker.ID)
}

func (s *MappingSuite) TestUkjentMottakerTypeGirFeil() {
	dto := s.komplettDto()
	dto.Mottaker = MottakerDto{Type: "epost", ID: "a@b.c"}

	bestilling, feil := s.map_(dto)

	koder := s.feilkoderPerFelt(feil)
	s.Equal("IdType", koder["Mottaker"])
	s.Nil(bestilling.OverstyrtMottaker)
}

func (s *MappingSuite) TestUkjentDokumentMalGirFeil() {
	dto := s.komplettDto()
	dto.DokumentMal = "UKJENT_MAL"

	_, feil := s.map_(dto)

	koder := s.feilkoderPerFelt(feil)
	s.Equal("DokumentMalType", koder["DokumentMalType"])
}

func (s *MappingSuite) TestPaakrevdeFelter() {
	_, feil := s.map_(DokumentbestillingDto{SoekerID: "1000000000001"})

	koder := s.feilkoderPerFelt(feil)
	s.Equal("påkrevd", koder["eksternReferanse"])
	s.Equal("påkrevd", koder["ytelseType"])
	s.Contains(koder, "DokumentMalType")
}

func (s *MappingSuite) TestFlereFeilSamlesOpp() {
	dto := s.komplettDto()
	dto.SoekerID = "finnes-ikke"
	dto.DokumentMal = "UKJENT_MAL"
	dto.Mottaker = MottakerDto{Type: "epost", ID: "a@b.c"}

	_, feil := s.map_(dto)

	koder := s.feilkoderPerFelt(feil)
	s.Len(feil, 3)
	s.Contains(koder, "AktørId")
	s.Contains(koder, "Mottaker")
	s.Contains(koder, "DokumentMalType")
}
