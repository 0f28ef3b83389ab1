package prefabs

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
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
		return ""
	}
}

func TestWatcherReportsSpecFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("size: 15\n"), 0o644))

	assert.Equal(t, "player.yaml", filepath.Base(waitEvent(t, w)))
}

func TestWatcherDebounce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yml")
	w, err := newWatcher(time.Hour, dir)
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("offset_x: 1\n"), 0o644))
	}
	waitEvent(t, w)

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected second event for %s", name)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherDrain(t *testing.T) {
	w := &Watcher{Events: make(chan string, 4)}
	w.Events <- "prefabs/player.yaml"
	w.Events <- "/abs/prefabs/player.yaml"
	w.Events <- "prefabs/camera.yaml"

	assert.Equal(t, []string{"player.yaml", "camera.yaml"}, w.Drain())
	assert.Empty(t, w.Drain())
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "second close is a no-op")

	select {
	case _, ok := <-w.Events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
