package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "runtime.json"))

	started := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	in := map[string]RuntimeRecord{
		"coevo-api": {PID: 4242, Port: 8001, Running: true, LogPath: "/tmp/coevo-api.log", StartedAt: started},
	}
	require.NoError(t, store.Save(in))

	out := store.Load()
	assert.Equal(t, in, out)
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Empty(t, store.Load())
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtime.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStore(path)
	assert.Empty(t, store.Load())
}

func TestLoadWrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtime.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0644))

	store := NewStore(path)
	assert.Empty(t, store.Load())
}

func TestUpdatePreservesOtherApps(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "runtime.json"))
	require.NoError(t, store.Save(map[string]RuntimeRecord{
		"a": {PID: 1, Running: true},
		"b": {PID: 2, Running: true},
	}))

	require.NoError(t, store.Update("a", func(rec RuntimeRecord) RuntimeRecord {
		rec.Running = false
		rec.StoppedAt = time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
		return rec
	}))

	apps := store.Load()
	assert.False(t, apps["a"].Running)
	assert.False(t, apps["a"].StoppedAt.IsZero())
	assert.True(t, apps["b"].Running, "untouched record survives the rewrite")
}
