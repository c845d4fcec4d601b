package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDato(t *testing.T) {
	dato, err := ParseDato("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, DatoAv(2024, time.March, 15), dato)
	assert.Equal(t, "2024-03-15", dato.String())

	_, err = ParseDato("15.03.2024")
	assert.Error(t, err)
}

func TestDatoSammenligning(t *testing.T) {
	a := MustParseDato("2024-03-15")
	b := MustParseDato("2024-03-16")

	assert.True(t, b.Etter(a))
	assert.True(t, a.Foer(b))
	assert.False(t, a.Etter(a))
	assert.False(t, a.Foer(a))
}

func TestDatoAritmetikk(t *testing.T) {
	a := MustParseDato("2024-02-28")

	assert.Equal(t, MustParseDato("2024-03-01"), a.PlussDager(2), "leap day counted")
	assert.Equal(t, MustParseDato("2028-02-28"), a.PlussAar(4))
	assert.Equal(t, 2, a.DagerTil(MustParseDato("2024-03-01")))
	assert.Equal(t, -1, a.DagerTil(MustParseDato("2024-02-27")))
}

func TestDatoTidspunkt(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	tidspunkt := MustParseDato("2024-03-15").Tidspunkt(12*time.Hour+15*time.Minute, oslo)
	assert.Equal(t, 12, tidspunkt.Hour())
	assert.Equal(t, 15, tidspunkt.Minute())
	assert.Equal(t, oslo, tidspunkt.Location())
}
