package checklist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boss_data.json")
	content := `[
		{"region": "Forest", "bosses": ["Wolf King", "Elder Treant"]},
		{"region": "Swamp", "bosses": ["Bog Witch"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "Forest", catalog[0].Region)
	assert.Equal(t, []string{"Wolf King", "Elder Treant"}, catalog[0].Bosses)
}

func TestLoadCatalog_MissingFileIsAnError(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestLoadCatalog_MalformedIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boss_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"region": "Forest"}`), 0644))

	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog")
}
