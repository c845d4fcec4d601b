package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soknadJson(t *testing.T, raw string) SoknadJson {
	t.Helper()
	var s SoknadJson
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

func TestMerge(t *testing.T) {
	t.Run("nye skalarer vinner", func(t *testing.T) {
		gammel := soknadJson(t, `{"klokkeslett": "08:00", "soekerId": "123"}`)
		ny := soknadJson(t, `{"klokkeslett": "12:15"}`)

		resultat := gammel.Merge(ny)

		assert.Equal(t, "12:15", resultat["klokkeslett"])
		assert.Equal(t, "123", resultat["soekerId"])
	})

	t.Run("nøstede objekter flettes feltvis", func(t *testing.T) {
		gammel := soknadJson(t, `{"barn": {"norskIdent": "456", "foedselsdato": "2020-01-01"}}`)
		ny := soknadJson(t, `{"barn": {"norskIdent": "789"}}`)

		resultat := gammel.Merge(ny)

		barn := resultat["barn"].(map[string]any)
		assert.Equal(t, "789", barn["norskIdent"])
		assert.Equal(t, "2020-01-01", barn["foedselsdato"])
	})

	t.Run("lister erstattes i sin helhet", func(t *testing.T) {
		gammel := soknadJson(t, `{"uttak": [{"a": 1}, {"b": 2}]}`)
		ny := soknadJson(t, `{"uttak": [{"c": 3}]}`)

		resultat := gammel.Merge(ny)

		assert.Len(t, resultat["uttak"], 1)
	})

	t.Run("objekt kan erstatte skalar", func(t *testing.T) {
		gammel := soknadJson(t, `{"omsorg": "ukjent"}`)
		ny := soknadJson(t, `{"omsorg": {"relasjonTilBarnet": "MOR"}}`)

		resultat := gammel.Merge(ny)

		omsorg, ok := resultat["omsorg"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "MOR", omsorg["relasjonTilBarnet"])
	})
}

func TestKopi(t *testing.T) {
	original := soknadJson(t, `{"barn": {"norskIdent": "456"}, "uttak": [1, 2]}`)
	kopi := original.Kopi()

	kopi["barn"].(map[string]any)["norskIdent"] = "999"
	kopi["uttak"].([]any)[0] = 7.0

	assert.Equal(t, "456", original["barn"].(map[string]any)["norskIdent"])
	assert.Equal(t, 1.0, original["uttak"].([]any)[0])
}
