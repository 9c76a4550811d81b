// Package tween is a property-tweening engine driven by an external clock.
//
// A [Tween] moves named numeric properties of one or more [Target] values
// towards their goals along an easing curve, with delays, yoyo, repeat
// counts, looping, per-property overrides and lifecycle callbacks. It never
// keeps time itself: the owner calls [Tween.Init] once and [Tween.Step] every
// frame with the current timestamp and delta.
//
// # Quick start
//
//	node := &Sprite{X: 0}
//	tw := tween.New(tween.Config{
//		Targets:  []tween.Target{tween.Struct(node)},
//		Props:    []tween.Prop{{Key: "x", Value: 400}},
//		Duration: 1000,
//		Ease:     "Sine.easeInOut",
//	})
//	tw.Init(0, 0)
//	for !tw.IsComplete() {
//		now += 16
//		tw.Step(now, 16)
//	}
//
// The manager subpackage owns a set of tweens and steps them for you.
//
// # Value specs
//
// Each [Prop] value is resolved once, at Init, into a queue of segments:
//
//	400                       absolute end value
//	"+100", "-=50"            delta from the value when the segment starts
//	[]any{200, 300, 400}      one segment per element, played in order
//	tween.Override{...}       a value with its own duration, ease, yoyo...
//	func() any                called per target when the segment starts
//
// Values the engine cannot interpret, and targets missing a property, turn
// into no-op segments instead of failing the tween.
//
// # Timelines
//
// [Config.Timeline] plays a list of [Stage] values one after another. A
// stage lasts as long as its slowest property; properties a stage does not
// mention hold their value until a later stage moves them.
//
// # Easing
//
// Eases are looked up by name with [ResolveEase]: "Power0" through "Power4",
// families such as "Quad", "Sine" or "Bounce" with ".easeIn", ".easeOut" and
// ".easeInOut" suffixes, and gween-style names such as "InOutCubic". The
// curves come from [gween]. Unknown names fall back to [Linear].
//
// [gween]: https://github.com/tanema/gween
package tween
