package layout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layers.json")

	store := NewStore(path)
	store.Replace(map[string]int{"rome": 0, "byzantium": 1, "mongol": -1})
	require.NoError(t, store.Save())

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())

	lane, ok := reloaded.Get("byzantium")
	require.True(t, ok)
	assert.Equal(t, 1, lane)
	lane, ok = reloaded.Get("mongol")
	require.True(t, ok)
	assert.Equal(t, -1, lane)
	_, ok = reloaded.Get("unknown")
	assert.False(t, ok)
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope", "layers.json"))
	require.NoError(t, store.Load())
	assert.Empty(t, store.Snapshot())
}

func TestStoreSetAndSnapshot(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "layers.json"))
	store.Set("a", 3)
	store.Set("a", 4)
	store.Set("b", -2)

	snap := store.Snapshot()
	assert.Equal(t, map[string]int{"a": 4, "b": -2}, snap)

	// Snapshot is a copy, not an alias.
	snap["a"] = 99
	lane, _ := store.Get("a")
	assert.Equal(t, 4, lane)
}

func TestStoreSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "layers.json")
	store := NewStore(path)
	store.Set("x", 1)
	require.NoError(t, store.Save())

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	lane, ok := reloaded.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, lane)
}
