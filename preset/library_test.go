package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zapata1/tween"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLibraryLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "fade.yaml"), "name: fade\nalpha: 0")
	writeFile(t, filepath.Join(dir, "slide.yml"), "x: 100")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a preset")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	lib := NewLibrary()
	require.NoError(t, lib.LoadDir(dir))
	assert.Equal(t, []string{"fade", "slide"}, lib.Names())

	cfg, err := lib.Config("slide", tween.Values{"x": 0})
	require.NoError(t, err)
	require.Len(t, cfg.Props, 1)
	assert.Equal(t, "x", cfg.Props[0].Key)

	_, err = lib.Config("missing")
	assert.Error(t, err)
}

func TestLibraryLoadDirReportsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.yaml"), "x: 1")
	writeFile(t, filepath.Join(dir, "bad.yaml"), "x: true")

	lib := NewLibrary()
	err := lib.LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
	_, ok := lib.Get("good")
	assert.True(t, ok, "valid files load even when another fails")

	assert.Error(t, NewLibrary().LoadDir(filepath.Join(dir, "absent")))
}

func TestLibraryReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bounce.yaml")
	writeFile(t, path, "y: 10")

	core, logs := observer.New(zap.InfoLevel)
	lib := NewLibrary(WithLogger(zap.New(core)))

	changed, err := lib.Reload(path)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = lib.Reload(path)
	require.NoError(t, err)
	assert.False(t, changed, "unchanged content should be skipped")
	assert.Equal(t, 1, logs.FilterMessage("preset loaded").Len())

	writeFile(t, path, "name: hop\ny: 20")
	changed, err = lib.Reload(path)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"hop"}, lib.Names(), "a renamed preset replaces the old name")

	require.NoError(t, os.Remove(path))
	changed, err = lib.Reload(path)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, lib.Names())
	assert.Equal(t, 1, logs.FilterMessage("preset removed").Len())

	changed, err = lib.Reload(path)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestLibraryRejectsDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.yaml")
	second := filepath.Join(dir, "b.yaml")
	writeFile(t, first, "name: shake\nx: 1")
	writeFile(t, second, "name: shake\nx: 2")

	lib := NewLibrary()
	_, err := lib.Reload(first)
	require.NoError(t, err)
	_, err = lib.Reload(second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")

	p, ok := lib.Get("shake")
	require.True(t, ok)
	assert.Equal(t, 1, p.Props[0].Value)
}
