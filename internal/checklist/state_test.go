package checklist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyEncodesAsPair(t *testing.T) {
	data, err := json.Marshal(Key{Region: "Forest", Name: "Wolf King"})
	require.NoError(t, err)
	assert.JSONEq(t, `["Forest","Wolf King"]`, string(data))

	var k Key
	require.NoError(t, json.Unmarshal(data, &k))
	assert.Equal(t, Key{Region: "Forest", Name: "Wolf King"}, k)
}

func TestLoadState_CreatesEmptyFileOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	state, err := LoadState(path)
	require.NoError(t, err)
	assert.Empty(t, state.Completed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"completed":[]}`, string(data))
}

func TestLoadState_FirstRunWriteFailureIsReturned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "save.json")

	_, err := LoadState(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write save file")
}

func TestLoadState_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := LoadState(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse save file")
}

func TestStateFromRows_RoundTrip(t *testing.T) {
	state := NewState()
	state.Completed[Key{Region: "Forest", Name: "Wolf King"}] = struct{}{}
	state.Completed[Key{Region: "Swamp", Name: "Bog Witch"}] = struct{}{}

	rows := BuildRows(sampleCatalog(), state)
	derived := StateFromRows(rows)
	assert.Equal(t, state.Completed, derived.Completed)
}

func TestSaveState_ToggleThenReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	catalog := []RegionEntry{{Region: "Forest", Bosses: []string{"Wolf King"}}}

	rows := BuildRows(catalog, NewState())
	rows[0].Checked = true
	require.NoError(t, SaveState(path, rows))

	state, err := LoadState(path)
	require.NoError(t, err)
	require.Len(t, state.Completed, 1)
	assert.True(t, state.Contains("Forest", "Wolf King"))
}

func TestSaveState_OverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	rows := BuildRows(sampleCatalog(), NewState())
	for i := range rows {
		rows[i].Checked = true
	}
	require.NoError(t, SaveState(path, rows))

	// unchecking must remove entries, not merge
	for i := range rows {
		rows[i].Checked = false
	}
	rows[1].Checked = true
	require.NoError(t, SaveState(path, rows))

	state, err := LoadState(path)
	require.NoError(t, err)
	require.Len(t, state.Completed, 1)
	assert.True(t, state.Contains("Forest", "Elder Treant"))
}

func TestStateKeys_SortedByRegionThenName(t *testing.T) {
	state := NewState()
	state.Completed[Key{Region: "Swamp", Name: "Bog Witch"}] = struct{}{}
	state.Completed[Key{Region: "Forest", Name: "Wolf King"}] = struct{}{}
	state.Completed[Key{Region: "Forest", Name: "Elder Treant"}] = struct{}{}

	keys := state.Keys()
	assert.Equal(t, []Key{
		{Region: "Forest", Name: "Elder Treant"},
		{Region: "Forest", Name: "Wolf King"},
		{Region: "Swamp", Name: "Bog Witch"},
	}, keys)
}
