package mapping

import (
	"fmt"
	"log/slog"
	"time"

	"punsj/internal/k9format"
	"punsj/internal/soknad/models"
	"punsj/pkg/domain"
)

// OmsValidator is the domain rule capability for utbetaling documents.
type OmsValidator interface {
	Valider(soknad *k9format.Soknad) []k9format.Feil
}

// MapOmsTilK9Format assembles the canonical omsorgspenger utbetaling document
// for a corrected income report. Same totality contract as the PSB mapper.
func MapOmsTilK9Format(
	soknadID domain.SoknadID,
	journalpostIDer []domain.JournalpostID,
	dto models.KorrigeringInntektsmeldingDto,
	validator OmsValidator,
	opsjoner ...Opsjon,
) (*k9format.Soknad, []k9format.Feil) {
	valg := innstillinger{
		naa:    func() time.Time { return time.Now().In(Oslo()) },
		logger: slog.Default(),
	}
	for _, o := range opsjoner {
		o(&valg)
	}

	m := &omsMapper{
		soknad: &k9format.Soknad{},
		oms:    k9format.NewOmsorgspengerUtbetaling(),
		feil:   NewFeilsamler(),
		logger: valg.logger,
	}
	m.kjoer(soknadID, journalpostIDer, dto, validator)
	return m.soknad, m.feil.Alle()
}

type omsMapper struct {
	soknad *k9format.Soknad
	oms    *k9format.OmsorgspengerUtbetaling
	feil   *Feilsamler
	logger *slog.Logger
}

func (m *omsMapper) kjoer(
	soknadID domain.SoknadID,
	journalpostIDer []domain.JournalpostID,
	dto models.KorrigeringInntektsmeldingDto,
	validator OmsValidator,
) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("uventet mappingfeil", "soknad_id", soknadID, "panic", r)
			m.feil.LeggTil(k9format.Feil{
				Felt:        "søknad",
				Feilkode:    "uventetMappingfeil",
				Feilmelding: fmt.Sprint(r),
			})
		}
	}()

	if soknadID.ErSatt() {
		m.soknad.SoknadID = soknadID.String()
	}
	m.soknad.Versjon = k9format.Versjon
	m.leggTilMottattDatoOgKlokkeslett(dto)
	if dto.SoekerID.ErSatt() {
		m.soknad.Soker = &k9format.Soker{NorskIdentitetsnummer: dto.SoekerID}
	}
	m.leggTilJournalposter(journalpostIDer, dto)
	m.leggTilFravaersperioder(dto)

	m.soknad.Kildesystem = k9format.Kildesystem
	m.soknad.Ytelse = m.oms

	if validator != nil {
		m.feil.LeggTil(validator.Valider(m.soknad)...)
	}
}

// leggTilMottattDatoOgKlokkeslett records a Feil for each missing half
// instead of aborting; the rest of the mapping still runs.
func (m *omsMapper) leggTilMottattDatoOgKlokkeslett(dto models.KorrigeringInntektsmeldingDto) {
	if dto.MottattDato == nil {
		m.feil.LeggTil(k9format.Feil{Felt: "søknad", Feilkode: "mottattDato", Feilmelding: "Mottatt dato mangler"})
		return
	}
	if dto.Klokkeslett == "" {
		m.feil.LeggTil(k9format.Feil{Felt: "søknad", Feilkode: "klokkeslett", Feilmelding: "Klokkeslett mangler"})
		return
	}
	if kl, ok := MapEllerLeggTilFeil(m.feil, "søknad", func() (time.Duration, error) {
		return parseKlokkeslett(dto.Klokkeslett)
	}); ok {
		mottatt := dto.MottattDato.Tidspunkt(kl, Oslo())
		m.soknad.MottattDato = &mottatt
	}
}

func (m *omsMapper) leggTilJournalposter(journalpostIDer []domain.JournalpostID, dto models.KorrigeringInntektsmeldingDto) {
	for _, journalpostID := range journalpostIDer {
		m.soknad.Journalposter = append(m.soknad.Journalposter, k9format.Journalpost{
			JournalpostID:                    journalpostID,
			InformasjonSomIkkeKanPunsjes:     dto.HarInfoSomIkkeKanPunsjes != nil && *dto.HarInfoSomIkkeKanPunsjes,
			InneholderMedisinskeOpplysninger: dto.HarMedisinskeOpplysninger != nil && *dto.HarMedisinskeOpplysninger,
		})
	}
}

// leggTilFravaersperioder splits the punched absence list three ways, in this
// order: zero-duration periods expand into one zero-duration entry per
// calendar day (withdrawal of previously reported days), full-day absences
// (no faktiskTidPrDag punched; a zero-duration period lands here too, beside
// its per-day expansion), then partial-day absences. The reported duration
// is always tidPrDag; faktiskTidPrDag only selects the split.
func (m *omsMapper) leggTilFravaersperioder(dto models.KorrigeringInntektsmeldingDto) {
	var fravaersperioder []k9format.FravaersPeriode

	nyPeriode := func(periode domain.Periode, varighet *k9format.Varighet) k9format.FravaersPeriode {
		return k9format.FravaersPeriode{
			Periode:             periode,
			VarighetPerDag:      varighet,
			AktivitetFravaer:    []k9format.AktivitetFravaer{k9format.FravaerArbeidstaker},
			Organisasjonsnummer: dto.Organisasjonsnummer,
			ArbeidsforholdID:    dto.ArbeidsforholdID,
		}
	}

	for _, fravaer := range dto.Fravaersperioder {
		if !fravaer.Periode.ErSatt() {
			continue
		}
		if fravaer.TidPrDag != nil && fravaer.TidPrDag.SomVarighet() == 0 {
			null := k9format.VarighetAv(0)
			for _, dag := range fravaer.Periode.SomEnkeltdager() {
				if enkeltdag, ok := dag.SomK9Periode(); ok {
					fravaersperioder = append(fravaersperioder, nyPeriode(enkeltdag, &null))
				}
			}
		}
	}

	for _, fravaer := range dto.Fravaersperioder {
		if !fravaer.Periode.ErSatt() || fravaer.FaktiskTidPrDag != nil {
			continue
		}
		periode, _ := fravaer.Periode.SomK9Periode()
		var varighet *k9format.Varighet
		if fravaer.TidPrDag != nil {
			v := k9format.VarighetAv(fravaer.TidPrDag.SomVarighet())
			varighet = &v
		}
		fravaersperioder = append(fravaersperioder, nyPeriode(periode, varighet))
	}

	for _, fravaer := range dto.Fravaersperioder {
		if !fravaer.Periode.ErSatt() || fravaer.FaktiskTidPrDag == nil {
			continue
		}
		if fravaer.TidPrDag != nil && fravaer.TidPrDag.SomVarighet() == 0 {
			continue
		}
		periode, _ := fravaer.Periode.SomK9Periode()
		var varighet *k9format.Varighet
		if fravaer.TidPrDag != nil {
			v := k9format.VarighetAv(fravaer.TidPrDag.SomVarighet())
			varighet = &v
		}
		fravaersperioder = append(fravaersperioder, nyPeriode(periode, varighet))
	}

	m.oms.FravaersperioderKorrigeringIm = fravaersperioder
}
