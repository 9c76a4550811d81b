package preset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/zapata1/tween"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Library holds named presets loaded from files. It is safe for concurrent
// use.
type Library struct {
	mu      sync.RWMutex
	presets map[string]*Preset
	files   map[string]fileEntry
	log     *zap.Logger
}

type fileEntry struct {
	hash uint64
	name string
}

// LibraryOption configures a Library.
type LibraryOption func(*Library)

// WithLogger sets the library's logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) LibraryOption {
	return func(lib *Library) {
		if l != nil {
			lib.log = l
		}
	}
}

// NewLibrary returns an empty Library.
func NewLibrary(opts ...LibraryOption) *Library {
	lib := &Library{
		presets: map[string]*Preset{},
		files:   map[string]fileEntry{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Get returns the preset called name.
func (l *Library) Get(name string) (*Preset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.presets[name]
	return p, ok
}

// Names returns the preset names in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.presets))
	for name := range l.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config builds a tween.Config from the preset called name.
func (l *Library) Config(name string, targets ...tween.Target) (tween.Config, error) {
	p, ok := l.Get(name)
	if !ok {
		return tween.Config{}, fmt.Errorf("preset: unknown preset %q", name)
	}
	return p.Config(targets...), nil
}

// LoadDir loads every .yaml and .yml file in dir, in parallel. It returns
// the first error; files that parsed are kept either way.
func (l *Library) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("preset: read dir %s: %w", dir, err)
	}

	var g errgroup.Group
	for _, e := range entries {
		if e.IsDir() || !isPresetFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		g.Go(func() error {
			_, err := l.Reload(path)
			return err
		})
	}
	return g.Wait()
}

// Reload re-reads the preset file at path. Unchanged content is skipped
// and a missing file drops its preset. It reports whether the library
// changed.
func (l *Library) Reload(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return l.forget(path), nil
	}
	if err != nil {
		return false, fmt.Errorf("preset: load %s: %w", path, err)
	}

	sum := xxhash.Sum64(data)
	l.mu.RLock()
	prev, seen := l.files[path]
	l.mu.RUnlock()
	if seen && prev.hash == sum {
		return false, nil
	}

	p, err := Parse(data)
	if err != nil {
		return false, fmt.Errorf("preset: load %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for other, fe := range l.files {
		if other != path && fe.name == p.Name {
			return false, fmt.Errorf("preset: load %s: name %q already defined by %s", path, p.Name, other)
		}
	}
	if seen && prev.name != p.Name {
		delete(l.presets, prev.name)
	}
	l.presets[p.Name] = p
	l.files[path] = fileEntry{hash: sum, name: p.Name}
	l.log.Info("preset loaded", zap.String("name", p.Name), zap.String("path", path))
	return true, nil
}

func (l *Library) forget(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	fe, ok := l.files[path]
	if !ok {
		return false
	}
	delete(l.files, path)
	delete(l.presets, fe.name)
	l.log.Info("preset removed", zap.String("name", fe.name), zap.String("path", path))
	return true
}

func isPresetFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
