package tween

import (
	"reflect"
	"testing"
)

type recordingSink struct {
	events []Event
}

func (s *recordingSink) EmitTweenEvent(e Event) {
	s.events = append(s.events, e)
}

func (s *recordingSink) kinds() []EventKind {
	out := make([]EventKind, len(s.events))
	for i, e := range s.events {
		out[i] = e.Kind
	}
	return out
}

func TestEventOrder(t *testing.T) {
	sink := &recordingSink{}
	tw := New(Config{
		Targets:  []Target{Values{"x": 0}},
		Props:    []Prop{{Key: "x", Value: 10}},
		Duration: 100,
		Repeat:   1,
		Sink:     sink,
	})
	tw.Init(0, 0)
	c := &clock{}
	c.run(tw, 100, 3)

	want := []EventKind{
		EventStart, EventRepeat, EventUpdate, // first playthrough ends
		EventUpdate, EventComplete, // second playthrough ends
	}
	if got := sink.kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if sink.events[1].Key != "x" {
		t.Errorf("repeat key = %q, want x", sink.events[1].Key)
	}
	if sink.events[4].Timestamp != 200 {
		t.Errorf("complete timestamp = %v, want 200", sink.events[4].Timestamp)
	}
}

func TestUpdateOncePerTickAcrossTracks(t *testing.T) {
	updates := 0
	tw := New(Config{
		Targets: []Target{Values{"x": 0, "y": 0}, Values{"x": 0, "y": 0}},
		Props: []Prop{
			{Key: "x", Value: 10},
			{Key: "y", Value: 10},
		},
		OnUpdate: counter(&updates),
	})
	tw.Init(0, 0)
	c := &clock{}
	c.run(tw, 250, 4)
	if updates != 4 {
		t.Errorf("onUpdate fired %d times over 4 ticks, want 4", updates)
	}
}

func TestHandlerScopeAndParams(t *testing.T) {
	type owner struct{ name string }
	shared := &owner{"shared"}
	own := &owner{"own"}

	var startScope, completeScope any
	var params []any
	tw := New(Config{
		Targets:       []Target{Values{"x": 0}},
		Props:         []Prop{{Key: "x", Value: 1}},
		CallbackScope: shared,
		OnStart: Handler{Fn: func(e Event) {
			startScope = e.Scope
			params = e.Params
		}, Params: []any{"a", 2}},
		OnComplete: Handler{Fn: func(e Event) { completeScope = e.Scope }, Scope: own},
	})
	tw.Step(1000, 1000)

	if startScope != shared {
		t.Errorf("start scope = %v, want CallbackScope", startScope)
	}
	if completeScope != own {
		t.Errorf("complete scope = %v, want handler scope", completeScope)
	}
	if !reflect.DeepEqual(params, []any{"a", 2}) {
		t.Errorf("params = %v", params)
	}
}

func TestOnReplacesHandlerAndChains(t *testing.T) {
	fromConfig, fromOn := 0, 0
	var gotTween *Tween
	var gotParams []any

	tw := New(Config{
		Targets:    []Target{Values{"x": 0}},
		Props:      []Prop{{Key: "x", Value: 1}},
		OnComplete: counter(&fromConfig),
	})
	same := tw.On(EventComplete, func(e Event) {
		fromOn++
		gotTween = e.Tween
		gotParams = e.Params
	}, nil, 42).On(EventKind(99), func(Event) {}, nil)
	if same != tw {
		t.Fatal("On should return the tween")
	}

	tw.Step(1000, 1000)
	if fromConfig != 0 || fromOn != 1 {
		t.Errorf("config handler=%d, On handler=%d, want 0/1", fromConfig, fromOn)
	}
	if gotTween != tw {
		t.Error("event should carry the tween")
	}
	if !reflect.DeepEqual(gotParams, []any{42}) {
		t.Errorf("params = %v", gotParams)
	}
}

func TestRepeatHandlerCanStopTween(t *testing.T) {
	target := Values{"x": 0}
	var tw *Tween
	tw = New(Config{
		Targets:  []Target{target},
		Props:    []Prop{{Key: "x", Value: 10}},
		Duration: 100,
		Loop:     true,
		OnRepeat: Handler{Fn: func(e Event) { e.Tween.Stop() }},
	})
	tw.Step(100, 100)
	if !tw.IsComplete() {
		t.Fatal("Stop inside onRepeat should end the tween")
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventStart, "start"},
		{EventUpdate, "update"},
		{EventRepeat, "repeat"},
		{EventComplete, "complete"},
		{EventKind(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
