// Package manager owns a set of tweens and steps them from a frame clock.
package manager

import (
	"sync"

	"github.com/zapata1/tween"
	"go.uber.org/zap"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithSink sets the event sink given to every added tween that has none.
func WithSink(s tween.EventSink) Option {
	return func(m *Manager) {
		m.sink = s
	}
}

// Manager keeps active tweens, steps them in insertion order and drops the
// completed ones. The manager's own bookkeeping is safe for concurrent use
// and tween callbacks may call back into it, but tweens are stepped outside
// the lock: touch a tween only from the goroutine that calls Update.
type Manager struct {
	mu     sync.Mutex
	tweens []*tween.Tween
	byID   map[string]*tween.Tween
	sink   tween.EventSink
	log    *zap.Logger

	now       float64
	lastDelta float64
	updating  bool
	scratch   []*tween.Tween
}

// New returns an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		byID: map[string]*tween.Tween{},
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add builds a tween from cfg, initialises it at the manager's current time
// and starts tracking it.
func (m *Manager) Add(cfg tween.Config) *tween.Tween {
	tw := tween.New(cfg)
	m.AddTween(tw, cfg.Sink == nil)
	return tw
}

// AddTween tracks an existing tween. When useSink is set the manager's sink
// replaces the tween's. The tween is initialised if it was not yet.
func (m *Manager) AddTween(tw *tween.Tween, useSink bool) {
	m.mu.Lock()
	if useSink && m.sink != nil {
		tw.SetSink(m.sink)
	}
	now, delta := m.now, m.lastDelta
	m.tweens = append(m.tweens, tw)
	m.byID[tw.ID()] = tw
	m.mu.Unlock()

	tw.Init(now, delta)
	m.log.Debug("tween added",
		zap.String("id", tw.ID()),
		zap.Strings("keys", tw.Keys()),
		zap.Float64("total", tw.TotalDuration()))
}

// Update steps every tracked tween once and removes those that completed.
// Tweens added by callbacks during Update are first stepped on the next one.
// A nested Update from inside a callback is ignored.
func (m *Manager) Update(timestamp, delta float64) {
	m.mu.Lock()
	if m.updating {
		m.mu.Unlock()
		m.log.Warn("nested manager update ignored", zap.Float64("timestamp", timestamp))
		return
	}
	m.updating = true
	m.now, m.lastDelta = timestamp, delta
	m.scratch = append(m.scratch[:0], m.tweens...)
	m.mu.Unlock()

	for _, tw := range m.scratch {
		tw.Step(timestamp, delta)
	}

	m.mu.Lock()
	kept := m.tweens[:0]
	for _, tw := range m.tweens {
		if tw.IsComplete() {
			delete(m.byID, tw.ID())
			m.log.Debug("tween removed", zap.String("id", tw.ID()))
			continue
		}
		kept = append(kept, tw)
	}
	clear(m.tweens[len(kept):])
	m.tweens = kept
	clear(m.scratch)
	m.updating = false
	m.mu.Unlock()
}

// Get returns the tracked tween with id.
func (m *Manager) Get(id string) (*tween.Tween, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tw, ok := m.byID[id]
	return tw, ok
}

// Remove stops the tween with id and stops tracking it.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	tw, ok := m.byID[id]
	if ok {
		delete(m.byID, id)
		for i, t := range m.tweens {
			if t == tw {
				m.tweens = append(m.tweens[:i], m.tweens[i+1:]...)
				break
			}
		}
	}
	m.mu.Unlock()

	if ok {
		tw.Stop()
		m.log.Debug("tween removed", zap.String("id", id))
	}
	return ok
}

// Len returns the number of tracked tweens.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tweens)
}

// Now returns the timestamp of the last Update.
func (m *Manager) Now() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Each calls fn for every tracked tween in insertion order.
func (m *Manager) Each(fn func(*tween.Tween)) {
	for _, tw := range m.snapshot() {
		fn(tw)
	}
}

// PauseAll pauses every active tween.
func (m *Manager) PauseAll() {
	m.Each((*tween.Tween).Pause)
}

// ResumeAll resumes every paused tween.
func (m *Manager) ResumeAll() {
	m.Each((*tween.Tween).Resume)
}

// SetTimeScale sets the time scale of every tracked tween.
func (m *Manager) SetTimeScale(s float64) {
	m.Each(func(tw *tween.Tween) { tw.SetTimeScale(s) })
}

// KillAll stops every tween and forgets them all.
func (m *Manager) KillAll() {
	m.mu.Lock()
	all := m.tweens
	m.tweens = nil
	m.byID = map[string]*tween.Tween{}
	m.mu.Unlock()

	for _, tw := range all {
		tw.Stop()
	}
	m.log.Debug("all tweens killed", zap.Int("count", len(all)))
}

func (m *Manager) snapshot() []*tween.Tween {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*tween.Tween, len(m.tweens))
	copy(out, m.tweens)
	return out
}
