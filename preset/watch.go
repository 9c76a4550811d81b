package preset

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is reloaded.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads presets into a Library when their files change. Each
// successful reload that changed the library is reported on Events with the
// file path; failed reloads go to Errors. Both channels are closed after
// Close.
type Watcher struct {
	lib      *Library
	watcher  *fsnotify.Watcher
	debounce time.Duration

	Events chan string
	Errors chan error

	fire    chan string
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs and feeds changed preset files into lib.
func NewWatcher(lib *Library, dirs ...string) (*Watcher, error) {
	return NewWatcherDebounce(lib, DefaultDebounce, dirs...)
}

// NewWatcherDebounce is NewWatcher with a custom quiet period.
func NewWatcherDebounce(lib *Library, debounce time.Duration, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		lib:      lib,
		watcher:  w,
		debounce: debounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		fire:     make(chan string, 16),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	timers := map[string]*time.Timer{}
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isPresetFile(event.Name) {
				continue
			}
			name := event.Name
			if t, ok := timers[name]; ok {
				t.Reset(w.debounce)
				continue
			}
			timers[name] = time.AfterFunc(w.debounce, func() {
				select {
				case w.fire <- name:
				case <-w.closeCh:
				}
			})
		case path := <-w.fire:
			delete(timers, path)
			changed, err := w.lib.Reload(path)
			if err != nil {
				send(w, w.Errors, err)
				continue
			}
			if changed {
				send(w, w.Events, path)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			send(w, w.Errors, err)
		case <-w.closeCh:
			return
		}
	}
}

func send[T any](w *Watcher, ch chan T, v T) {
	select {
	case ch <- v:
	case <-w.closeCh:
	}
}
