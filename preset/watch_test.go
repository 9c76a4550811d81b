package preset

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case path := <-w.Events:
		return path
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return ""
}

func TestWatcherReloadsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary()
	w, err := NewWatcherDebounce(lib, 20*time.Millisecond, dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "spin.yaml")
	writeFile(t, path, "rotation: 90")
	assert.Equal(t, path, waitEvent(t, w))

	p, ok := lib.Get("spin")
	require.True(t, ok)
	assert.Equal(t, 90, p.Props[0].Value)

	writeFile(t, path, "rotation: 180")
	assert.Equal(t, path, waitEvent(t, w))
	p, _ = lib.Get("spin")
	assert.Equal(t, 180, p.Props[0].Value)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary()
	w, err := NewWatcherDebounce(lib, 10*time.Millisecond, dir)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, filepath.Join(dir, "readme.md"), "# presets")
	select {
	case path := <-w.Events:
		t.Fatalf("unexpected reload of %s", path)
	case <-time.After(100 * time.Millisecond):
	}
	assert.Empty(t, lib.Names())
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(NewLibrary(), t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, open := <-w.Events
	assert.False(t, open)
	_, open = <-w.Errors
	assert.False(t, open)
}
