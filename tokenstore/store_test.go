package tokenstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the lifecycle every Store must support.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok, "fresh store must be empty")

	require.NoError(t, s.Save("tok-1"))
	tok, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", tok)

	require.NoError(t, s.Save("tok-2"))
	tok, _, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)

	// double remove is not an error
	require.NoError(t, s.Remove())
	require.NoError(t, s.Remove())
	_, ok, err = s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s, err := NewFile(path)
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	a, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, a.Save("persisted"))

	b, err := NewFile(path)
	require.NoError(t, err)
	tok, ok, err := b.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", tok)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]string
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, map[string]string{Key: "persisted"}, m)

	require.NoError(t, b.Remove())
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotContains(t, m, Key)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	s, err := NewFile(path)
	require.NoError(t, err)
	_, _, err = s.Load()
	assert.Error(t, err)
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	exerciseStore(t, s)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for _, kind := range []string{KindMemory, KindFile, KindSQLite} {
		path := filepath.Join(dir, kind)
		s, err := Open(kind, path)
		require.NoError(t, err, kind)
		require.NotNil(t, s)
		if p, ok := s.(interface{ Path() string }); ok {
			assert.Equal(t, path, p.Path(), kind)
		} else {
			assert.Equal(t, KindMemory, kind)
		}
		if c, ok := s.(interface{ Close() error }); ok {
			_ = c.Close()
		}
	}
	_, err := Open("redis", "")
	assert.Error(t, err)
}

func TestDefaultPath_HonorsHomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envHome, dir)

	p, err := DefaultPath(KindSQLite)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "session.db"), p)

	p, err = DefaultPath(KindFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "session.json"), p)
}
