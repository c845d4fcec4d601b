package mapping

import (
	"fmt"
	"log/slog"
	"time"

	"punsj/internal/k9format"
	"punsj/internal/soknad/models"
	"punsj/pkg/domain"
)

// defaultUttakPerDag is the fallback care-hours value synthesized when no
// explicit uptake periods were punched.
const defaultUttakPerDag = 7*time.Hour + 30*time.Minute

// PsbValidator is the domain rule capability the mapper hands the assembled
// document to, together with the periods already decided in k9.
type PsbValidator interface {
	ValiderMedKjentePerioder(soknad *k9format.Soknad, kjente []domain.Periode) []k9format.Feil
}

// Opsjon tweaks a mapping invocation; used by tests to pin the clock.
type Opsjon func(*innstillinger)

type innstillinger struct {
	naa    func() time.Time
	logger *slog.Logger
}

// MedKlokke overrides the wall clock used for derived values such as
// erNyoppstartet.
func MedKlokke(naa func() time.Time) Opsjon {
	return func(i *innstillinger) { i.naa = naa }
}

// MedLogger routes the catch-all log line to the given logger.
func MedLogger(logger *slog.Logger) Opsjon {
	return func(i *innstillinger) { i.logger = logger }
}

// MapPsbTilK9Format assembles the canonical pleiepenger sykt barn document
// from a punched DTO. Always returns the (possibly partial) document together
// with every field error collected on the way; it never panics.
func MapPsbTilK9Format(
	soknadID domain.SoknadID,
	journalpostIDer []domain.JournalpostID,
	perioderSomFinnesIK9 []domain.Periode,
	dto models.PleiepengerSoknadDto,
	validator PsbValidator,
	opsjoner ...Opsjon,
) (*k9format.Soknad, []k9format.Feil) {
	valg := innstillinger{
		naa:    func() time.Time { return time.Now().In(Oslo()) },
		logger: slog.Default(),
	}
	for _, o := range opsjoner {
		o(&valg)
	}

	m := &psbMapper{
		soknad: &k9format.Soknad{},
		psb:    k9format.NewPleiepengerSyktBarn(),
		feil:   NewFeilsamler(),
		naa:    valg.naa,
		logger: valg.logger,
	}
	m.kjoer(soknadID, journalpostIDer, perioderSomFinnesIK9, dto, validator)
	return m.soknad, m.feil.Alle()
}

type psbMapper struct {
	soknad *k9format.Soknad
	psb    *k9format.PleiepengerSyktBarn
	feil   *Feilsamler
	naa    func() time.Time
	logger *slog.Logger
}

// kjoer runs the mapper chain in fixed order. The deferred recover is the
// single catch-all boundary of the whole pipeline: an unexpected failure
// becomes one synthetic Feil and the partial document is kept.
func (m *psbMapper) kjoer(
	soknadID domain.SoknadID,
	journalpostIDer []domain.JournalpostID,
	perioderSomFinnesIK9 []domain.Periode,
	dto models.PleiepengerSoknadDto,
	validator PsbValidator,
) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("uventet mappingfeil", "soknad_id", soknadID, "panic", r)
			m.feil.LeggTil(k9format.Feil{
				Felt:        "søknad",
				Feilkode:    "uventetMappingfeil",
				Feilmelding: fmt.Sprint(r),
			})
		}
	}()

	m.leggTilSoknadID(soknadID)
	m.leggTilVersjon()
	m.leggTilMottattDato(dto)
	m.leggTilSoker(dto.SoekerID)
	m.leggTilJournalposter(journalpostIDer, dto)
	m.leggTilBarn(dto.Barn)
	m.leggTilSoknadsperiode(dto.Soeknadsperiode)
	m.leggTilTrekkKravPerioder(dto.TrekkKravPerioder)
	m.leggTilUttak(dto.Uttak, dto.Soeknadsperiode)
	m.leggTilLovbestemtFerie(dto.LovbestemtFerie, dto.LovbestemtFerieSomSkalSlettes)
	m.leggTilBeredskap(dto.Beredskap)
	m.leggTilNattevaak(dto.Nattevaak)
	m.leggTilBosteder(dto.Bosteder)
	m.leggTilUtenlandsopphold(dto.Utenlandsopphold)
	m.leggTilOmsorg(dto.Omsorg)
	m.leggTilOpptjeningAktivitet(dto.OpptjeningAktivitet)
	m.leggTilArbeidstid(dto.Arbeidstid)
	m.leggTilDataBruktTilUtledning(dto.Soknadsinfo)
	m.leggTilTilsynsordning(dto.Tilsynsordning)
	m.leggTilBegrunnelseForInnsending(dto.BegrunnelseForInnsending)

	m.soknad.Kildesystem = k9format.Kildesystem
	m.soknad.Ytelse = m.psb

	if validator != nil {
		m.feil.LeggTil(validator.ValiderMedKjentePerioder(m.soknad, perioderSomFinnesIK9)...)
	}
}

func (m *psbMapper) leggTilSoknadID(soknadID domain.SoknadID) {
	if soknadID.ErSatt() {
		m.soknad.SoknadID = soknadID.String()
	}
}

func (m *psbMapper) leggTilVersjon() {
	m.soknad.Versjon = k9format.Versjon
}

func (m *psbMapper) leggTilMottattDato(dto models.PleiepengerSoknadDto) {
	if dto.MottattDato == nil || dto.Klokkeslett == "" {
		return
	}
	if kl, ok := MapEllerLeggTilFeil(m.feil, "mottattDato", func() (time.Duration, error) {
		return parseKlokkeslett(dto.Klokkeslett)
	}); ok {
		mottatt := dto.MottattDato.Tidspunkt(kl, Oslo())
		m.soknad.MottattDato = &mottatt
	}
}

func (m *psbMapper) leggTilSoker(soekerID domain.NorskIdent) {
	if soekerID.ErSatt() {
		m.soknad.Soker = &k9format.Soker{NorskIdentitetsnummer: soekerID}
	}
}

func (m *psbMapper) leggTilJournalposter(journalpostIDer []domain.JournalpostID, dto models.PleiepengerSoknadDto) {
	for _, journalpostID := range journalpostIDer {
		m.soknad.Journalposter = append(m.soknad.Journalposter, k9format.Journalpost{
			JournalpostID:                    journalpostID,
			InformasjonSomIkkeKanPunsjes:     dto.HarInfoSomIkkeKanPunsjes,
			InneholderMedisinskeOpplysninger: dto.HarMedisinskeOpplysninger,
		})
	}
}

func (m *psbMapper) leggTilBarn(barn *models.BarnDto) {
	if barn == nil {
		return
	}
	k9Barn := &k9format.Barn{}
	switch {
	case barn.NorskIdent.ErSatt():
		k9Barn.NorskIdentitetsnummer = barn.NorskIdent
	case barn.Foedselsdato != nil:
		k9Barn.Foedselsdato = barn.Foedselsdato
	}
	m.psb.Barn = k9Barn
}

func (m *psbMapper) leggTilSoknadsperiode(perioder []domain.PeriodeDto) {
	if k9Perioder := domain.SomK9Perioder(perioder); len(k9Perioder) > 0 {
		m.psb.Soknadsperiode = k9Perioder
	}
}

func (m *psbMapper) leggTilTrekkKravPerioder(perioder []domain.PeriodeDto) {
	m.psb.TrekkKravPerioder = append(m.psb.TrekkKravPerioder, domain.SomK9Perioder(perioder)...)
}

// leggTilUttak maps the explicit uptake periods, falling back to one default
// entry per claim period (7h30m per day) when none were punched at all. The
// fallback never fires for a partially populated list.
func (m *psbMapper) leggTilUttak(uttak []models.UttakDto, soknadsperiode []domain.PeriodeDto) {
	k9Uttak := map[domain.Periode]k9format.UttakPeriodeInfo{}
	for _, u := range uttak {
		k9Periode, ok := u.Periode.SomK9Periode()
		if !ok {
			continue
		}
		info := k9format.UttakPeriodeInfo{}
		if u.PleieAvBarnetPerDag != nil {
			timer := k9format.VarighetAv(u.PleieAvBarnetPerDag.SomVarighet())
			info.TimerPleieAvBarnetPerDag = &timer
		}
		k9Uttak[k9Periode] = info
	}

	if len(k9Uttak) == 0 {
		standard := k9format.VarighetAv(defaultUttakPerDag)
		for _, periode := range domain.SomK9Perioder(soknadsperiode) {
			k9Uttak[periode] = k9format.UttakPeriodeInfo{TimerPleieAvBarnetPerDag: &standard}
		}
	}

	if len(k9Uttak) > 0 {
		m.psb.Uttak = &k9format.Uttak{Perioder: k9Uttak}
	}
}

// leggTilLovbestemtFerie merges the add and remove lists into one map. The
// remove list is processed last, so removal wins when the same period appears
// in both.
func (m *psbMapper) leggTilLovbestemtFerie(leggTil, slett []domain.PeriodeDto) {
	if len(leggTil) == 0 && len(slett) == 0 {
		return
	}
	k9Ferie := map[domain.Periode]k9format.LovbestemtFeriePeriodeInfo{}
	for _, periode := range domain.SomK9Perioder(leggTil) {
		k9Ferie[periode] = k9format.LovbestemtFeriePeriodeInfo{SkalHaFerie: true}
	}
	for _, periode := range domain.SomK9Perioder(slett) {
		k9Ferie[periode] = k9format.LovbestemtFeriePeriodeInfo{SkalHaFerie: false}
	}
	m.psb.LovbestemtFerie = &k9format.LovbestemtFerie{Perioder: k9Ferie}
}

func (m *psbMapper) leggTilBeredskap(beredskap []models.TilleggsinfoDto) {
	if len(beredskap) == 0 {
		return
	}
	k9Beredskap := map[domain.Periode]k9format.BeredskapPeriodeInfo{}
	for _, b := range beredskap {
		if k9Periode, ok := b.Periode.SomK9Periode(); ok {
			k9Beredskap[k9Periode] = k9format.BeredskapPeriodeInfo{Tilleggsinformasjon: b.Tilleggsinformasjon}
		}
	}
	if len(k9Beredskap) > 0 {
		m.psb.Beredskap = &k9format.Beredskap{Perioder: k9Beredskap}
	}
}

func (m *psbMapper) leggTilNattevaak(nattevaak []models.TilleggsinfoDto) {
	if len(nattevaak) == 0 {
		return
	}
	k9Nattevaak := map[domain.Periode]k9format.NattevaakPeriodeInfo{}
	for _, n := range nattevaak {
		if k9Periode, ok := n.Periode.SomK9Periode(); ok {
			k9Nattevaak[k9Periode] = k9format.NattevaakPeriodeInfo{Tilleggsinformasjon: n.Tilleggsinformasjon}
		}
	}
	if len(k9Nattevaak) > 0 {
		m.psb.Nattevaak = &k9format.Nattevaak{Perioder: k9Nattevaak}
	}
}

func (m *psbMapper) leggTilBosteder(bosteder []models.BostedDto) {
	if len(bosteder) == 0 {
		return
	}
	k9Bosteder := map[domain.Periode]k9format.BostedPeriodeInfo{}
	for _, bosted := range bosteder {
		if k9Periode, ok := bosted.Periode.SomK9Periode(); ok {
			k9Bosteder[k9Periode] = k9format.BostedPeriodeInfo{Land: bosted.Land}
		}
	}
	if len(k9Bosteder) > 0 {
		m.psb.Bosteder = &k9format.Bosteder{Perioder: k9Bosteder}
	}
}

// leggTilUtenlandsopphold records each set period; an unknown reason code
// yields one Feil at that period's årsak field while the period itself is
// still recorded without the reason.
func (m *psbMapper) leggTilUtenlandsopphold(opphold []models.UtenlandsoppholdDto) {
	if len(opphold) == 0 {
		return
	}
	k9Opphold := map[domain.Periode]k9format.UtenlandsoppholdPeriodeInfo{}
	for _, o := range opphold {
		k9Periode, ok := o.Periode.SomK9Periode()
		if !ok {
			continue
		}
		info := k9format.UtenlandsoppholdPeriodeInfo{Land: o.Land}
		if o.Aarsak != "" {
			felt := fmt.Sprintf("ytelse.utenlandsopphold.%s.årsak", k9Periode.JSONPath())
			if aarsak, ok := MapEllerLeggTilFeil(m.feil, felt, func() (k9format.UtenlandsoppholdAarsak, error) {
				return k9format.UtenlandsoppholdAarsakFraKode(o.Aarsak)
			}); ok {
				info.Aarsak = &aarsak
			}
		}
		k9Opphold[k9Periode] = info
	}
	if len(k9Opphold) > 0 {
		m.psb.Utenlandsopphold = &k9format.Utenlandsopphold{Perioder: k9Opphold}
	}
}

func (m *psbMapper) leggTilOmsorg(omsorg *models.OmsorgDto) {
	if omsorg == nil {
		return
	}
	k9Omsorg := &k9format.Omsorg{}
	if omsorg.RelasjonTilBarnet != "" {
		if relasjon, ok := MapEllerLeggTilFeil(m.feil, "ytelse.omsorg.relasjonTilBarnet", func() (k9format.BarnRelasjon, error) {
			return k9format.BarnRelasjonFraKode(omsorg.RelasjonTilBarnet)
		}); ok {
			k9Omsorg.RelasjonTilBarnet = &relasjon
		}
	}
	k9Omsorg.BeskrivelseAvOmsorgsrollen = omsorg.BeskrivelseAvOmsorgsrollen
	m.psb.Omsorg = k9Omsorg
}

func (m *psbMapper) leggTilOpptjeningAktivitet(aktivitet *models.ArbeidAktivitetDto) {
	if aktivitet == nil {
		return
	}
	k9Aktivitet := &k9format.OpptjeningAktivitet{}
	if sn := m.mapSelvstendigNaeringsdrivende(aktivitet.SelvstendigNaeringsdrivende); sn != nil {
		k9Aktivitet.SelvstendigNaeringsdrivende = sn
	}
	if aktivitet.Frilanser != nil {
		k9Aktivitet.Frilanser = m.mapFrilanser(aktivitet.Frilanser)
	}
	m.psb.OpptjeningAktivitet = k9Aktivitet
}

// mapSelvstendigNaeringsdrivende emits a record only when at least one of
// org number, business name or period is set. erNyoppstartet is derived: the
// business started within the last four years.
func (m *psbMapper) mapSelvstendigNaeringsdrivende(sn *models.SelvstendigNaeringsdrivendeDto) *k9format.SelvstendigNaeringsdrivende {
	if sn == nil {
		return nil
	}
	harPeriode := sn.Info != nil && sn.Info.Periode.ErSatt()
	noeSatt := sn.Organisasjonsnummer.ErSatt() || sn.VirksomhetNavn != "" || harPeriode
	if !noeSatt {
		return nil
	}

	k9SN := &k9format.SelvstendigNaeringsdrivende{
		Organisasjonsnummer: sn.Organisasjonsnummer,
		VirksomhetNavn:      sn.VirksomhetNavn,
	}
	if !harPeriode {
		return k9SN
	}

	info := sn.Info
	k9Periode, _ := info.Periode.SomK9Periode()
	k9Info := k9format.SelvstendigPeriodeInfo{
		RegistrertIUtlandet: info.RegistrertIUtlandet,
		Landkode:            info.Landkode,
		RegnskapsfoererNavn: info.RegnskapsfoererNavn,
		RegnskapsfoererTlf:  info.RegnskapsfoererTlf,
		ErVarigEndring:      info.ErVarigEndring,
		EndringDato:         info.EndringDato,
		EndringBegrunnelse:  info.EndringBegrunnelse,
	}
	if info.ErVarigEndring != nil && *info.ErVarigEndring {
		k9Info.BruttoInntekt = info.EndringInntekt
	} else {
		k9Info.BruttoInntekt = info.BruttoInntekt
	}

	iDag := domain.DatoFra(m.naa(), Oslo())
	k9Info.ErNyoppstartet = k9Periode.Fom.Etter(iDag.PlussAar(-4))

	for i, virksomhetstype := range info.Virksomhetstyper {
		if virksomhetstype == "" {
			continue
		}
		felt := fmt.Sprintf("ytelse.opptjening.selvstendigNæringsdrivende.%s.virksomhetstyper[%d]", k9Periode.JSONPath(), i)
		if vt, ok := MapEllerLeggTilFeil(m.feil, felt, func() (k9format.VirksomhetType, error) {
			return k9format.VirksomhetTypeFraKode(virksomhetstype)
		}); ok {
			k9Info.VirksomhetsTyper = append(k9Info.VirksomhetsTyper, vt)
		}
	}

	k9SN.Perioder = map[domain.Periode]k9format.SelvstendigPeriodeInfo{k9Periode: k9Info}
	return k9SN
}

func (m *psbMapper) mapFrilanser(frilanser *models.FrilanserDto) *k9format.Frilanser {
	k9Frilanser := &k9format.Frilanser{}
	if frilanser.Startdato != "" {
		if dato, ok := MapEllerLeggTilFeil(m.feil, "ytelse.opptjening.frilanser.startDato", func() (domain.Dato, error) {
			return domain.ParseDato(frilanser.Startdato)
		}); ok {
			k9Frilanser.Startdato = &dato
		}
	}
	if frilanser.Sluttdato != "" {
		if dato, ok := MapEllerLeggTilFeil(m.feil, "ytelse.opptjening.frilanser.sluttDato", func() (domain.Dato, error) {
			return domain.ParseDato(frilanser.Sluttdato)
		}); ok {
			k9Frilanser.Sluttdato = &dato
		}
	}
	return k9Frilanser
}

func (m *psbMapper) leggTilArbeidstid(arbeidstid *models.ArbeidstidDto) {
	if arbeidstid == nil {
		return
	}
	k9Arbeidstid := &k9format.Arbeidstid{}
	for _, arbeidstaker := range arbeidstid.ArbeidstakerList {
		k9Arbeidstaker := k9format.Arbeidstaker{
			NorskIdentitetsnummer: arbeidstaker.NorskIdent,
			Organisasjonsnummer:   arbeidstaker.Organisasjonsnummer,
			ArbeidstidInfo:        m.mapArbeidstidInfo(arbeidstaker.ArbeidstidInfo),
		}
		noeSatt := arbeidstaker.NorskIdent.ErSatt() || arbeidstaker.Organisasjonsnummer.ErSatt() || k9Arbeidstaker.ArbeidstidInfo != nil
		if noeSatt {
			k9Arbeidstid.ArbeidstakerList = append(k9Arbeidstid.ArbeidstakerList, k9Arbeidstaker)
		}
	}
	k9Arbeidstid.FrilanserArbeidstidInfo = m.mapArbeidstidInfo(arbeidstid.FrilanserArbeidstidInfo)
	k9Arbeidstid.SelvstendigNaeringsdrivendeArbeidstidInfo = m.mapArbeidstidInfo(arbeidstid.SelvstendigNaeringsdrivendeArbeidstidInfo)
	m.psb.Arbeidstid = k9Arbeidstid
}

// mapArbeidstidInfo preserves absence: a missing duration stays nil rather
// than defaulting to zero.
func (m *psbMapper) mapArbeidstidInfo(info *models.ArbeidstidInfoDto) *k9format.ArbeidstidInfo {
	if info == nil {
		return nil
	}
	k9Perioder := map[domain.Periode]k9format.ArbeidstidPeriodeInfo{}
	for _, periode := range info.Perioder {
		k9Periode, ok := periode.Periode.SomK9Periode()
		if !ok {
			continue
		}
		k9Info := k9format.ArbeidstidPeriodeInfo{}
		if periode.FaktiskArbeidPerDag != nil {
			faktisk := k9format.VarighetAv(periode.FaktiskArbeidPerDag.SomVarighet())
			k9Info.FaktiskArbeidTimerPerDag = &faktisk
		}
		if periode.JobberNormaltPerDag != nil {
			normalt := k9format.VarighetAv(periode.JobberNormaltPerDag.SomVarighet())
			k9Info.JobberNormaltTimerPerDag = &normalt
		}
		k9Perioder[k9Periode] = k9Info
	}
	if len(k9Perioder) == 0 {
		return nil
	}
	return &k9format.ArbeidstidInfo{Perioder: k9Perioder}
}

func (m *psbMapper) leggTilDataBruktTilUtledning(info *models.SoknadsinfoDto) {
	if info == nil {
		return
	}
	m.psb.DataBruktTilUtledning = &k9format.DataBruktTilUtledning{
		SamtidigHjemme: info.SamtidigHjemme,
		HarMedsoeker:   info.HarMedsoeker,
	}
}

func (m *psbMapper) leggTilTilsynsordning(tilsynsordning *models.TilsynsordningDto) {
	if tilsynsordning == nil || len(tilsynsordning.Perioder) == 0 {
		return
	}
	k9Tilsyn := map[domain.Periode]k9format.TilsynPeriodeInfo{}
	for _, tilsyn := range tilsynsordning.Perioder {
		if k9Periode, ok := tilsyn.Periode.SomK9Periode(); ok {
			timer := domain.TimerOgMinutter{Timer: tilsyn.Timer, Minutter: tilsyn.Minutter}
			k9Tilsyn[k9Periode] = k9format.TilsynPeriodeInfo{
				EtablertTilsynTimerPerDag: k9format.VarighetAv(timer.SomVarighet()),
			}
		}
	}
	if len(k9Tilsyn) > 0 {
		m.psb.Tilsynsordning = &k9format.Tilsynsordning{Perioder: k9Tilsyn}
	}
}

func (m *psbMapper) leggTilBegrunnelseForInnsending(begrunnelse string) {
	m.soknad.BegrunnelseForInnsending = begrunnelse
}

// Oslo is the wall-clock zone of the intake pipeline.
func Oslo() *time.Location {
	return oslo
}

var oslo = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Oslo")
	if err != nil {
		return time.FixedZone("CET", 60*60)
	}
	return loc
}()

func parseKlokkeslett(kl string) (time.Duration, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, kl); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("ugyldig klokkeslett %q", kl)
}
