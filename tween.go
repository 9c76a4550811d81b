package tween

import (
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the lifecycle state of a Tween.
type State uint8

const (
	StatePending  State = iota // built or waiting for Start
	StateActive                // advancing on every Step
	StatePaused                // frozen; Resume continues without a time skip
	StateComplete              // terminal
)

var stateNames = [...]string{"pending", "active", "paused", "complete"}

// String implements fmt.Stringer.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Tween animates named properties on a set of targets. It does not keep time
// itself: the owner calls Init once and then Step every frame.
//
// A Tween is not safe for concurrent use.
type Tween struct {
	id  string
	cfg Config

	targets []Target
	tracks  []*track

	state          State
	useFrames      bool
	autoStart      bool
	startRequested bool
	initialized    bool
	activated      bool
	timeScale      float64
	timestamp      float64

	handlers [eventKindCount]Handler
	scope    any
	sink     EventSink
}

// New returns a Pending tween for cfg. Nothing is resolved until Init.
func New(cfg Config) *Tween {
	tw := &Tween{
		id:        uuid.NewString(),
		cfg:       cfg,
		useFrames: cfg.UseFrames,
		autoStart: !cfg.Paused,
		timeScale: cfg.TimeScale,
		scope:     cfg.CallbackScope,
		sink:      cfg.Sink,
	}
	if tw.timeScale == 0 {
		tw.timeScale = 1
	}
	tw.handlers[EventStart] = cfg.OnStart
	tw.handlers[EventUpdate] = cfg.OnUpdate
	tw.handlers[EventRepeat] = cfg.OnRepeat
	tw.handlers[EventComplete] = cfg.OnComplete
	return tw
}

// Init resolves targets and builds every property track. With auto start the
// first segments are captured immediately and the next Step starts the tween;
// otherwise the tween waits for Start. A tween without targets completes
// here, dispatching start and complete so callers see a normal lifecycle.
// Calling Init more than once has no effect.
func (tw *Tween) Init(timestamp, delta float64) {
	if tw.initialized {
		return
	}
	tw.initialized = true
	tw.timestamp = timestamp

	targets := tw.cfg.Targets
	if tw.cfg.TargetsFunc != nil {
		targets = tw.cfg.TargetsFunc()
	}
	tw.targets = make([]Target, 0, len(targets))
	for _, t := range targets {
		if t != nil {
			tw.targets = append(tw.targets, t)
		}
	}

	d := defaultsFromConfig(&tw.cfg)
	tw.tracks = buildTracks(&tw.cfg, d, len(tw.targets))

	Logger().Debug("tween initialised",
		zap.String("id", tw.id),
		zap.Int("targets", len(tw.targets)),
		zap.Int("tracks", len(tw.tracks)),
		zap.Float64("delta", delta))

	if len(tw.targets) == 0 {
		tw.state = StateComplete
		tw.dispatch(EventStart, "")
		tw.dispatch(EventComplete, "")
		return
	}

	if tw.autoStart {
		tw.startRequested = true
		tw.activate()
	}
}

// activate captures the first segment of every track once.
func (tw *Tween) activate() {
	if tw.activated {
		return
	}
	tw.activated = true
	for _, tr := range tw.tracks {
		tr.activate(tw.targets, true)
	}
}

// Start asks a Pending tween to begin on its next Step.
func (tw *Tween) Start() {
	if tw.state == StatePending {
		tw.startRequested = true
	}
}

// Pause freezes an Active tween.
func (tw *Tween) Pause() {
	if tw.state == StateActive {
		tw.state = StatePaused
	}
}

// Resume continues a Paused tween from where it stopped.
func (tw *Tween) Resume() {
	if tw.state == StatePaused {
		tw.state = StateActive
	}
}

// Stop ends the tween immediately without dispatching complete. Targets keep
// whatever values were last written.
func (tw *Tween) Stop() {
	if tw.state == StateComplete {
		return
	}
	tw.state = StateComplete
	Logger().Debug("tween stopped", zap.String("id", tw.id))
}

// ID returns the tween's unique id.
func (tw *Tween) ID() string { return tw.id }

// State returns the lifecycle state.
func (tw *Tween) State() State { return tw.state }

// IsComplete reports whether the tween reached its terminal state.
func (tw *Tween) IsComplete() bool { return tw.state == StateComplete }

// TimeScale returns the delta multiplier.
func (tw *Tween) TimeScale() float64 { return tw.timeScale }

// SetTimeScale sets the delta multiplier. Non-positive values are ignored.
func (tw *Tween) SetTimeScale(s float64) {
	if s > 0 {
		tw.timeScale = s
	}
}

// Targets returns the resolved targets. Empty before Init.
func (tw *Tween) Targets() []Target { return tw.targets }

// Keys returns the tweened property keys in evaluation order.
func (tw *Tween) Keys() []string {
	keys := make([]string, len(tw.tracks))
	for i, tr := range tw.tracks {
		keys[i] = tr.key
	}
	return keys
}

// TotalDuration is the nominal time until the slowest property finishes,
// including delays, yoyos and repeats. It is +Inf if any property loops and
// zero before Init.
func (tw *Tween) TotalDuration() float64 {
	var total float64
	for _, tr := range tw.tracks {
		total = math.Max(total, spanOf(tr.queue))
	}
	return total
}

func (tw *Tween) track(key string) *track {
	for _, tr := range tw.tracks {
		if tr.key == key {
			return tr
		}
	}
	return nil
}

// TrackIndex returns the index of the active segment for key, or -1. For
// timeline keys the index counts the hold segments that pad stages the key
// does not take part in.
func (tw *Tween) TrackIndex(key string) int {
	if tr := tw.track(key); tr != nil {
		return tr.current
	}
	return -1
}

// TrackLen returns the number of segments queued for key, timeline holds
// included.
func (tw *Tween) TrackLen(key string) int {
	if tr := tw.track(key); tr != nil {
		return len(tr.queue)
	}
	return 0
}

// TrackDone reports whether every segment for key has finished.
func (tw *Tween) TrackDone(key string) bool {
	if tr := tw.track(key); tr != nil {
		return tr.done
	}
	return false
}

// Segment returns the active segment for key.
func (tw *Tween) Segment(key string) (Segment, bool) {
	if tr := tw.track(key); tr != nil {
		return *tr.segment(), true
	}
	return Segment{}, false
}

// Direction returns the direction of the active segment for key.
func (tw *Tween) Direction(key string) Direction {
	if tr := tw.track(key); tr != nil {
		return tr.segment().direction
	}
	return Forward
}

// Snapshot returns the interpolation state of key on the target at index.
func (tw *Tween) Snapshot(key string, target int) (TargetProp, bool) {
	tr := tw.track(key)
	if tr == nil || target < 0 || target >= len(tr.snapshots) {
		return TargetProp{}, false
	}
	return tr.snapshots[target], true
}
