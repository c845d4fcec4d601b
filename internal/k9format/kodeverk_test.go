package k9format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarnRelasjonFraKode(t *testing.T) {
	relasjon, err := BarnRelasjonFraKode("mor")
	require.NoError(t, err)
	assert.Equal(t, RelasjonMor, relasjon)

	_, err = BarnRelasjonFraKode("nabo")
	var ukjent *UkjentKode
	require.ErrorAs(t, err, &ukjent)
	assert.Equal(t, "BarnRelasjon", ukjent.Feilkode())
	assert.Equal(t, "nabo", ukjent.Kode)
}

func TestUtenlandsoppholdAarsakFraKode(t *testing.T) {
	aarsak, err := UtenlandsoppholdAarsakFraKode("barnetInnlagtIHelseinstitusjonForNorskOffentligRegning")
	require.NoError(t, err)
	assert.Equal(t, BarnetInnlagtDekketNorge, aarsak)

	// Case-sensitive wire codes.
	_, err = UtenlandsoppholdAarsakFraKode("BARNETINNLAGTIHELSEINSTITUSJONFORNORSKOFFENTLIGREGNING")
	var ukjent *UkjentKode
	require.ErrorAs(t, err, &ukjent)
	assert.Equal(t, "UtenlandsoppholdÅrsak", ukjent.Feilkode())
}

func TestVirksomhetTypeFraKode(t *testing.T) {
	cases := []struct {
		kode string
		want VirksomhetType
	}{
		{"DAGMAMMA", VirksomhetDagmamma},
		{"Dagmamma i eget hjem", VirksomhetDagmamma},
		{"fiske", VirksomhetFiske},
		{"Jordbruk og skogbruk", VirksomhetJordbruk},
		{"annen næringsvirksomhet", VirksomhetAnnen},
		{"JORDBRUK_SKOGBRUK", VirksomhetJordbruk},
	}
	for _, tc := range cases {
		virksomhet, err := VirksomhetTypeFraKode(tc.kode)
		require.NoError(t, err, "kode %q", tc.kode)
		assert.Equal(t, tc.want, virksomhet, "kode %q", tc.kode)
	}

	_, err := VirksomhetTypeFraKode("butikk")
	var ukjent *UkjentKode
	require.ErrorAs(t, err, &ukjent)
	assert.Equal(t, "VirksomhetType", ukjent.Feilkode())
}
