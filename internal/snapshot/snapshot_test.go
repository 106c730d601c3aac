package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/extract"
	"github.com/agentstation/storecat/pkg/logging"
	"github.com/agentstation/storecat/pkg/sources"
)

const sample = `[
  {
    "zeta-game": {"Request": "games_ps4", "PSStore": {"Name": "Zeta"}},
    "alpha-game": {"Request": "games_ps5", "PlatPrices": {"PSNID": "EP1"}}
  },
  {"pack": {"Request": "dlcs_ps5"}},
  {"mystery": null}
]`

func TestDecode(t *testing.T) {
	snap, err := Decode([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, 4, snap.Len())

	var keys []string
	for _, doc := range snap.Documents {
		keys = append(keys, doc.Key)
	}
	assert.Equal(t, []string{"alpha-game", "zeta-game", "pack", "mystery"}, keys)

	doc, err := snap.Find("alpha-game")
	require.NoError(t, err)
	assert.Equal(t, sources.NewGen, doc.Category)
	assert.True(t, doc.Has(sources.Tracker))
	assert.False(t, doc.Has(sources.Storefront))

	mystery, err := snap.Find("mystery")
	require.NoError(t, err)
	assert.Equal(t, sources.Uncategorized, mystery.Category)

	assert.Equal(t, map[sources.Category]int{
		sources.NewGen:        1,
		sources.PrevGen:       1,
		sources.AddOn:         1,
		sources.Uncategorized: 1,
	}, snap.Categories())
}

func TestDecodeEmptyArray(t *testing.T) {
	snap, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Zero(t, snap.Len())
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"blank", "  \n"},
		{"truncated", `[{"a": {"Request": "games_ps5"}`},
		{"not an array", `{"a": {}}`},
		{"entry not an object", `[1, 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := Decode([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, snap)

			var pe *errors.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "json", pe.Format)
		})
	}

	_, err := Decode(nil)
	assert.ErrorIs(t, err, errors.ErrEmptySnapshot)
}

func TestDecodeKeepsMalformedDocuments(t *testing.T) {
	data := `[
  {"good-game": {"Request": "games_ps5", "PSStore": {"ID": "EP1", "Name": "Good"}}},
  {"bad-game": ["not", "an", "object"], "odd-game": "games_ps5", "num-game": 3}
]`
	snap, err := Decode([]byte(data))
	require.NoError(t, err)
	require.Equal(t, 4, snap.Len())
	assert.Equal(t, []string{"bad-game", "num-game", "odd-game"}, snap.Malformed)

	ex, err := extract.New()
	require.NoError(t, err)
	for _, key := range snap.Malformed {
		doc, err := snap.Find(key)
		require.NoError(t, err)
		assert.Empty(t, doc.Sources())

		out := ex.Extract(doc)
		require.NotNil(t, out.Rejection)
		assert.Equal(t, extract.ReasonMissingIdentity, out.Rejection.Reason)
	}
}

func TestFindMissing(t *testing.T) {
	snap, err := Decode([]byte(sample))
	require.NoError(t, err)

	_, err = snap.Find("nope")
	assert.True(t, errors.IsNotFound(err))
}

func TestLoad(t *testing.T) {
	logging.DisableLoggingForTest(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	snap, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, snap.Path)
	assert.Equal(t, 4, snap.Len())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{`), 0o644))
	_, err = Load(context.Background(), bad)
	var pe *errors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, bad, pe.File)

	_, err = Load(context.Background(), filepath.Join(dir, "missing.json"))
	var ioErr *errors.IOError
	assert.True(t, errors.As(err, &ioErr))
}
