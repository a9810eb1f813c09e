package scraper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollectionListMissingFileUsesDefault(t *testing.T) {
	entries := LoadCollectionList(filepath.Join(t.TempDir(), "absent.json"))

	assert.Equal(t, defaultCollection, entries)
	assert.Len(t, entries, 15)
}

func TestLoadCollectionListInvalidFileUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	assert.Equal(t, defaultCollection, LoadCollectionList(path))
}

func TestLoadCollectionListReadsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`[{"name": "Custom Gun", "type": "destroyer_guns"}]`), 0o644))

	entries := LoadCollectionList(path)
	require.Len(t, entries, 1)
	assert.Equal(t, "Custom Gun", entries[0].Name)
	assert.Equal(t, "destroyer_guns", entries[0].Type)
}

func TestBatchStatus(t *testing.T) {
	assert.Equal(t, "completed", batchStatus([]string{"completed", "completed"}))
	assert.Equal(t, "Mixed", batchStatus([]string{"completed", "partial"}))
	assert.Equal(t, "basic", batchStatus([]string{"basic"}))
	assert.Equal(t, "Mixed", batchStatus(nil))
}
