package tween

import "math"

// Direction is the interpolation direction of a segment.
type Direction uint8

const (
	Forward Direction = iota // start towards end
	Reverse                  // end back towards start (second half of a yoyo)
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// specKind tags how a segment's end value is produced.
type specKind uint8

const (
	specNone     specKind = iota // end == start
	specAbsolute                 // end == value
	specRelative                 // end == start + value
	specComputed                 // end from compute(), classified per call
	specHold                     // timeline padding: no writes, end == start
)

// valueSpec is decided once while resolving configuration.
type valueSpec struct {
	kind    specKind
	value   float64
	compute func() any
}

// resolve returns the end value for a target whose segment starts at start.
// relative reports whether end was derived from a delta, which is returned so
// repeats can re-apply it.
func (v valueSpec) resolve(start float64) (end, delta float64, relative bool) {
	switch v.kind {
	case specAbsolute:
		return v.value, 0, false
	case specRelative:
		return start + v.value, v.value, true
	case specComputed:
		if v.compute == nil {
			return start, 0, false
		}
		return classifyScalar(v.compute()).resolve(start)
	}
	return start, 0, false
}

// Segment is one interpolation unit of a property track. The exported fields
// are fixed at build time; the rest is runtime state.
type Segment struct {
	Ease     EaseFunc
	Duration float64
	Delay    float64
	Yoyo     bool
	Repeat   int
	Loop     bool
	StartAt  *float64

	spec valueSpec

	elapsed    float64
	delayLeft  float64
	progress   float64
	direction  Direction
	repeatLeft int
}

// makeSegment returns a fresh segment built from fully resolved options.
func makeSegment(d segmentDefaults, spec valueSpec) Segment {
	ease := d.ease
	if ease == nil {
		ease = Linear
	}
	return Segment{
		Ease:       ease,
		Duration:   d.duration,
		Delay:      d.delay,
		Yoyo:       d.yoyo,
		Repeat:     d.repeat,
		Loop:       d.loop,
		StartAt:    d.startAt,
		spec:       spec,
		delayLeft:  d.delay,
		repeatLeft: d.repeat,
	}
}

// makeHold returns a timeline padding segment lasting span. An infinite span
// never reaches its end, so it holds forever without repeating.
func makeHold(span float64) Segment {
	return makeSegment(segmentDefaults{ease: Linear, duration: span}, valueSpec{kind: specHold})
}

// reset rewinds the runtime state for a fresh activation.
func (s *Segment) reset() {
	s.elapsed = 0
	s.delayLeft = s.Delay
	s.progress = 0
	s.direction = Forward
	s.repeatLeft = s.Repeat
}

// Progress is the eased progress of the last evaluated tick.
func (s *Segment) Progress() float64 { return s.progress }

// Elapsed is the time spent in the current pass, excluding delay.
func (s *Segment) Elapsed() float64 { return s.elapsed }

// nominal is the time the segment takes to finish: delay plus every forward
// and yoyo pass. Loops never finish.
func (s *Segment) nominal() float64 {
	if s.Loop {
		return math.Inf(1)
	}
	d := math.Max(s.Duration, 0)
	if s.Yoyo {
		d *= 2
	}
	return s.Delay + d*float64(s.Repeat+1)
}

func spanOf(segs []Segment) float64 {
	var total float64
	for i := range segs {
		total += segs[i].nominal()
	}
	return total
}
