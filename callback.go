package tween

// EventKind identifies a tween lifecycle event.
type EventKind uint8

const (
	EventStart    EventKind = iota // first tick out of Pending
	EventUpdate                    // a tick that wrote at least one value
	EventRepeat                    // a segment started another playthrough
	EventComplete                  // every track finished
	eventKindCount
)

var eventKindNames = [eventKindCount]string{"start", "update", "repeat", "complete"}

// String implements fmt.Stringer.
func (k EventKind) String() string {
	if k < eventKindCount {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is passed to callbacks and event sinks.
type Event struct {
	Kind      EventKind
	Tween     *Tween
	Key       string // property whose segment repeated, empty otherwise
	Timestamp float64
	Scope     any
	Params    []any
}

// Callback handles a lifecycle event.
type Callback func(e Event)

// Handler binds a callback to the scope and parameters it is invoked with.
type Handler struct {
	Fn     Callback
	Scope  any
	Params []any
}

// EventSink receives every event a tween dispatches, after its callback.
// Implementations must not block; they run inside Step.
type EventSink interface {
	EmitTweenEvent(e Event)
}

// On registers fn for kind, replacing any previous handler. A nil scope
// falls back to Config.CallbackScope. Returns tw for chaining.
func (tw *Tween) On(kind EventKind, fn Callback, scope any, params ...any) *Tween {
	if kind >= eventKindCount {
		return tw
	}
	tw.handlers[kind] = Handler{Fn: fn, Scope: scope, Params: params}
	return tw
}

// SetSink replaces the event sink. Nil disables it.
func (tw *Tween) SetSink(s EventSink) {
	tw.sink = s
}

func (tw *Tween) dispatch(kind EventKind, key string) {
	h := &tw.handlers[kind]
	if h.Fn == nil && tw.sink == nil {
		return
	}
	scope := h.Scope
	if scope == nil {
		scope = tw.scope
	}
	e := Event{
		Kind:      kind,
		Tween:     tw,
		Key:       key,
		Timestamp: tw.timestamp,
		Scope:     scope,
		Params:    h.Params,
	}
	if h.Fn != nil {
		h.Fn(e)
	}
	if tw.sink != nil {
		tw.sink.EmitTweenEvent(e)
	}
}
