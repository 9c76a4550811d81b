package tween

// DefaultDuration is the segment duration used when Config.Duration is zero,
// in milliseconds (or frames with UseFrames).
const DefaultDuration = 1000.0

// DefaultEase is the ease used when neither Config.Ease nor Config.EaseFunc
// is set.
const DefaultEase = "Power0"

// Config describes a tween. It is read once, by Init; later changes to the
// Config have no effect on a built Tween.
type Config struct {
	// Targets are the objects whose properties are tweened.
	Targets []Target
	// TargetsFunc, when set, is called at Init and its result is used in
	// place of Targets.
	TargetsFunc func() []Target

	// Props maps property keys to value specs, in evaluation order. A value
	// is a number, a relative string ("+100", "-=50"), a slice of values,
	// an Override or slice of Overrides, or a func() returning a number or
	// relative string.
	Props []Prop
	// Timeline plays its stages one after another. Keys named by the
	// timeline take precedence over the same keys in Props.
	Timeline []Stage

	// Duration of each segment. Zero selects DefaultDuration, so a tween-wide
	// instant segment needs a negative value; a negative duration completes
	// the segment on its first tick. Options.Duration set to zero is instant
	// too.
	Duration float64
	// Ease names the easing curve, see ResolveEase. EaseFunc wins if set.
	Ease     string
	EaseFunc EaseFunc
	Yoyo     bool
	// Repeat is the number of extra playthroughs per segment; -1 loops.
	Repeat int
	Loop   bool
	Delay  float64

	// UseFrames counts durations in steps instead of delta time.
	UseFrames bool
	// Paused keeps the tween Pending after Init until Start is called.
	Paused bool
	// TimeScale multiplies every delta. Zero means 1.
	TimeScale float64

	// CallbackScope is handed to handlers that do not set their own Scope.
	CallbackScope any
	OnStart       Handler
	OnUpdate      Handler
	OnRepeat      Handler
	OnComplete    Handler

	// Sink, if set, receives every dispatched lifecycle event.
	Sink EventSink
}

// Prop is a single keyed value spec.
type Prop struct {
	Key   string
	Value any
}

// Options are per-segment overrides. Unset fields inherit from the enclosing
// stage or Config.
type Options struct {
	Duration *float64
	Delay    *float64
	Ease     string
	EaseFunc EaseFunc
	Yoyo     *bool
	Repeat   *int
	Loop     *bool

	// StartAt, if set, is written to every target when the segment
	// activates and becomes its start value.
	StartAt *float64
}

// Override wraps a value spec with its own segment options:
//
//	tween.Override{Value: 300, Options: tween.Options{Duration: tween.Ptr(50.0)}}
type Override struct {
	Value any
	Options
}

// Stage is one step of a Timeline.
type Stage struct {
	Props []Prop
	Options
}

// Ptr returns a pointer to v, for filling Options.
func Ptr[T any](v T) *T {
	return &v
}

// segmentDefaults is the fully resolved option set a segment is made from.
type segmentDefaults struct {
	ease     EaseFunc
	duration float64
	delay    float64
	yoyo     bool
	repeat   int
	loop     bool
	startAt  *float64
}

// defaultsFromConfig resolves the tween-level defaults once.
func defaultsFromConfig(cfg *Config) segmentDefaults {
	d := segmentDefaults{
		duration: cfg.Duration,
		delay:    cfg.Delay,
		yoyo:     cfg.Yoyo,
		repeat:   cfg.Repeat,
		loop:     cfg.Loop,
	}
	if d.duration == 0 {
		d.duration = DefaultDuration
	}
	switch {
	case cfg.EaseFunc != nil:
		d.ease = cfg.EaseFunc
	case cfg.Ease != "":
		d.ease = ResolveEase(cfg.Ease)
	default:
		d.ease = ResolveEase(DefaultEase)
	}
	return normalizeRepeat(d)
}

// resolveOptions overlays the set fields of o onto d.
func resolveOptions(o Options, d segmentDefaults) segmentDefaults {
	if o.Duration != nil {
		d.duration = *o.Duration
	}
	if o.Delay != nil {
		d.delay = *o.Delay
	}
	if o.EaseFunc != nil {
		d.ease = o.EaseFunc
	} else if o.Ease != "" {
		d.ease = ResolveEase(o.Ease)
	}
	if o.Yoyo != nil {
		d.yoyo = *o.Yoyo
	}
	if o.Repeat != nil {
		d.repeat = *o.Repeat
	}
	if o.Loop != nil {
		d.loop = *o.Loop
	}
	if o.StartAt != nil {
		d.startAt = o.StartAt
	}
	return normalizeRepeat(d)
}

// normalizeRepeat folds repeat -1 into loop; loop always wins over a count.
func normalizeRepeat(d segmentDefaults) segmentDefaults {
	if d.repeat < 0 {
		d.repeat = 0
		d.loop = true
	}
	if d.delay < 0 {
		d.delay = 0
	}
	return d
}
