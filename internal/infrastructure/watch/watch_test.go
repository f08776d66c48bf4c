package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case name := <-w.Events:
		return name
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return ""
	}
}

func TestWatcher_ReportsMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, ".json")
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "map_tutorial.json"), []byte("{}"), 0o644))

	assert.Equal(t, "map_tutorial", waitEvent(t, w))
}

func TestWatcher_PollIsNonBlocking(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), ".json")
	require.NoError(t, err)
	defer w.Close()

	_, ok := w.Poll()

	assert.False(t, ok)
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), ".json")
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, open := <-w.Events
	assert.False(t, open)
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"), ".json")
	assert.Error(t, err)
}
