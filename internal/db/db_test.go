package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	database, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestGet_MissingKey(t *testing.T) {
	database := openMemory(t)

	value, found, err := database.Get("dg_tasks_v1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSet_Overwrites(t *testing.T) {
	database := openMemory(t)

	require.NoError(t, database.Set("dg_theme", "dark"))
	require.NoError(t, database.Set("dg_theme", "light"))

	value, found, err := database.Get("dg_theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", value)
}

func TestNew_CreatesDirectoryAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("dg_theme", "light"))
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	defer second.Close()

	value, found, err := second.Get("dg_theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", value)
}

func TestDefaultDataDir_UsesXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "dgboard"), dir)
}
