package tween

import "testing"

func testDefaults() segmentDefaults {
	return segmentDefaults{ease: Linear, duration: 1000}
}

func TestParseValueString(t *testing.T) {
	tests := []struct {
		in    string
		kind  specKind
		value float64
	}{
		{"+100", specRelative, 100},
		{"-50", specRelative, -50},
		{"+=10", specRelative, 10},
		{"-=2.5", specRelative, -2.5},
		{" +7 ", specRelative, 7},
		{"400", specAbsolute, 400},
		{"0.25", specAbsolute, 0.25},
		{"", specNone, 0},
		{"+", specNone, 0},
		{"-=", specNone, 0},
		{"abc", specNone, 0},
		{"*=3", specNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseValueString(tt.in)
			if got.kind != tt.kind || got.value != tt.value {
				t.Errorf("parseValueString(%q) = {%d %v}, want {%d %v}", tt.in, got.kind, got.value, tt.kind, tt.value)
			}
		})
	}
}

func TestResolveValueKinds(t *testing.T) {
	tests := []struct {
		name  string
		raw   any
		kinds []specKind
	}{
		{"int", 400, []specKind{specAbsolute}},
		{"float32", float32(1.5), []specKind{specAbsolute}},
		{"uint8", uint8(3), []specKind{specAbsolute}},
		{"delta", "+100", []specKind{specRelative}},
		{"numeric string", "12", []specKind{specAbsolute}},
		{"mixed slice", []any{200, "+1", func() any { return 1 }}, []specKind{specAbsolute, specRelative, specComputed}},
		{"float slice", []float64{1, 2, 3}, []specKind{specAbsolute, specAbsolute, specAbsolute}},
		{"int slice", []int{1, 2}, []specKind{specAbsolute, specAbsolute}},
		{"string slice", []string{"+1", "-1"}, []specKind{specRelative, specRelative}},
		{"nested slice", []any{1, []any{2, 3}}, []specKind{specAbsolute, specAbsolute, specAbsolute}},
		{"override", Override{Value: 5}, []specKind{specAbsolute}},
		{"override pointer", &Override{Value: "-5"}, []specKind{specRelative}},
		{"override wrapping slice", Override{Value: []int{1, 2}}, []specKind{specAbsolute, specAbsolute}},
		{"override slice", []Override{{Value: 1}, {Value: 2}}, []specKind{specAbsolute, specAbsolute}},
		{"map override", map[string]any{"value": 9, "duration": 5}, []specKind{specAbsolute}},
		{"func float", func() float64 { return 1 }, []specKind{specComputed}},
		{"func string", func() string { return "+1" }, []specKind{specComputed}},
		{"nil", nil, []specKind{specNone}},
		{"nil override pointer", (*Override)(nil), []specKind{specNone}},
		{"empty slice", []any{}, []specKind{specNone}},
		{"map without value", map[string]any{"duration": 5}, []specKind{specNone}},
		{"bool", true, []specKind{specNone}},
		{"bad string", "left", []specKind{specNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := resolveValue("x", tt.raw, testDefaults())
			if len(segs) != len(tt.kinds) {
				t.Fatalf("got %d segments, want %d", len(segs), len(tt.kinds))
			}
			for i, k := range tt.kinds {
				if segs[i].spec.kind != k {
					t.Errorf("segment %d kind = %d, want %d", i, segs[i].spec.kind, k)
				}
			}
		})
	}
}

func TestOverrideListInheritsDefaults(t *testing.T) {
	d := testDefaults()
	d.duration = 2000
	d.yoyo = true

	segs := resolveValue("x", []Override{
		{Value: 200},
		{Value: 300, Options: Options{Duration: Ptr(50.0)}},
		{Value: 400},
	}, d)

	wantDur := []float64{2000, 50, 2000}
	for i, s := range segs {
		if s.Duration != wantDur[i] {
			t.Errorf("segment %d duration = %v, want %v", i, s.Duration, wantDur[i])
		}
		if !s.Yoyo {
			t.Errorf("segment %d should inherit yoyo", i)
		}
	}
}

func TestResolveOptions(t *testing.T) {
	d := testDefaults()
	o := Options{
		Delay:  Ptr(25.0),
		Ease:   "Quad.easeIn",
		Yoyo:   Ptr(true),
		Repeat: Ptr(-1),
	}
	got := resolveOptions(o, d)

	if got.duration != 1000 {
		t.Errorf("duration = %v, want inherited 1000", got.duration)
	}
	if got.delay != 25 || !got.yoyo {
		t.Errorf("delay/yoyo not overridden: %+v", got)
	}
	if !got.loop || got.repeat != 0 {
		t.Errorf("repeat -1 should become loop, got repeat=%d loop=%v", got.repeat, got.loop)
	}
	if p := got.ease(0.5); p != 0.25 {
		t.Errorf("ease(0.5) = %v, want 0.25 for Quad.easeIn", p)
	}

	custom := resolveOptions(Options{Ease: "Quad.easeIn", EaseFunc: func(float64) float64 { return 1 }}, d)
	if custom.ease(0) != 1 {
		t.Error("EaseFunc should win over Ease")
	}
}

func TestMapOverrideFields(t *testing.T) {
	o, ok := overrideFromMap(map[string]any{
		"value":    "+3",
		"duration": 10,
		"delay":    2.5,
		"ease":     "Sine",
		"yoyo":     true,
		"repeat":   float64(2),
		"loop":     false,
		"startAt":  -4,
	})
	if !ok {
		t.Fatal("expected override")
	}
	if o.Value != "+3" || *o.Duration != 10 || *o.Delay != 2.5 || o.Ease != "Sine" {
		t.Errorf("override = %+v", o)
	}
	if !*o.Yoyo || *o.Repeat != 2 || *o.Loop {
		t.Errorf("override flags = %v %v %v", *o.Yoyo, *o.Repeat, *o.Loop)
	}
	if o.StartAt == nil || *o.StartAt != -4 {
		t.Errorf("startAt = %v, want -4", o.StartAt)
	}
}

func TestDefaultsFromConfig(t *testing.T) {
	d := defaultsFromConfig(&Config{})
	if d.duration != DefaultDuration {
		t.Errorf("duration = %v, want %v", d.duration, DefaultDuration)
	}
	if d.ease(0.3) != 0.3 {
		t.Error("default ease should be linear")
	}

	d = defaultsFromConfig(&Config{Duration: 20, Repeat: -1, Delay: -5})
	if d.duration != 20 || !d.loop || d.delay != 0 {
		t.Errorf("defaults = %+v", d)
	}
}
