package formidling

import (
	"context"
	"encoding/json"
	"fmt"

	"punsj/internal/k9format"
	"punsj/internal/pdl"
	"punsj/internal/soknad/mapping"
	"punsj/pkg/domain"
)

// avsenderApplikasjon tags which application ordered the letter.
const avsenderApplikasjon = "K9SAK"

// MapDokumentTilK9Formidling assembles a canonical letter order. Identity
// resolution happens first, as the pipeline's single blocking point; a person
// that cannot be resolved yields a field error, not a failure. Same totality
// contract as the søknad mappers.
func MapDokumentTilK9Formidling(
	ctx context.Context,
	brevID BrevID,
	dto DokumentbestillingDto,
	resolver pdl.Resolver,
) (*Dokumentbestilling, []k9format.Feil) {
	bestilling := &Dokumentbestilling{}
	feil := mapping.NewFeilsamler()

	func() {
		defer func() {
			if r := recover(); r != nil {
				feil.LeggTil(k9format.Feil{
					Felt:        "søknad",
					Feilkode:    "uventetMappingfeil",
					Feilmelding: fmt.Sprint(r),
				})
			}
		}()

		if ident, ok := mapping.MapEllerLeggTilFeil(feil, "AktørId", func() (string, error) {
			norskIdent, err := resolver.Identifikator(ctx, dto.SoekerID)
			if err != nil {
				return "", fmt.Errorf("kunne ikke finne person i pdl: %w", err)
			}
			return norskIdent.String(), nil
		}); ok {
			bestilling.AktorID = domain.NorskIdent(ident)
		}

		bestilling.EksternReferanse = dto.JournalpostID
		bestilling.DokumentbestillingID = brevID.String()
		bestilling.Saksnummer = dto.Saksnummer
		if bestilling.Saksnummer == "" {
			bestilling.Saksnummer = "GSAK"
		}

		if dto.Mottaker.ID != "" || dto.Mottaker.Type != "" {
			if mottakerType, ok := mapping.MapEllerLeggTilFeil(feil, "Mottaker", func() (IdType, error) {
				return IdTypeFraKode(dto.Mottaker.Type)
			}); ok {
				bestilling.OverstyrtMottaker = &Mottaker{Type: mottakerType, ID: dto.Mottaker.ID}
			}
		}

		bestilling.YtelseType = dto.FagsakYtelseType

		if mal, ok := mapping.MapEllerLeggTilFeil(feil, "DokumentMalType", func() (DokumentMal, error) {
			return DokumentMalFraKode(dto.DokumentMal)
		}); ok {
			bestilling.DokumentMal = string(mal)
		}

		if data, ok := mapping.MapEllerLeggTilFeil(feil, "DokumentData", func() (string, error) {
			rå, err := json.Marshal(dto.Dokumentdata)
			if err != nil {
				return "", fmt.Errorf("kunne ikke serialisere dokumentdata: %w", err)
			}
			return string(rå), nil
		}); ok {
			bestilling.Dokumentdata = data
		}

		bestilling.AvsenderApplikasjon = avsenderApplikasjon

		feil.LeggTil(validerBestilling(bestilling)...)
	}()

	return bestilling, feil.Alle()
}

func validerBestilling(bestilling *Dokumentbestilling) []k9format.Feil {
	var feil []k9format.Feil
	if !bestilling.EksternReferanse.ErSatt() {
		feil = append(feil, k9format.Feil{Felt: "eksternReferanse", Feilkode: "påkrevd", Feilmelding: "Ekstern referanse mangler"})
	}
	if bestilling.DokumentbestillingID == "" {
		feil = append(feil, k9format.Feil{Felt: "dokumentbestillingId", Feilkode: "påkrevd", Feilmelding: "Dokumentbestilling-id mangler"})
	}
	if bestilling.YtelseType == "" {
		feil = append(feil, k9format.Feil{Felt: "ytelseType", Feilkode: "påkrevd", Feilmelding: "Ytelsetype mangler"})
	}
	return feil
}
