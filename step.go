package tween

import "go.uber.org/zap"

// Step advances the tween by delta (ignored with UseFrames, where every step
// counts as one frame). A Pending tween with a start request becomes Active
// and dispatches start before this tick's work; Pending without a request,
// Paused and Complete tweens do nothing.
func (tw *Tween) Step(timestamp, delta float64) {
	if !tw.initialized {
		tw.Init(timestamp, delta)
	}
	tw.timestamp = timestamp

	switch tw.state {
	case StatePending:
		if !tw.startRequested {
			return
		}
		tw.activate()
		tw.state = StateActive
		Logger().Debug("tween started", zap.String("id", tw.id))
		tw.dispatch(EventStart, "")
		if tw.state != StateActive {
			return
		}
	case StateActive:
	default:
		return
	}

	if tw.useFrames {
		delta = 1
	}
	delta *= tw.timeScale

	wrote := false
	running := 0
	for _, tr := range tw.tracks {
		if tr.done {
			continue
		}
		if tw.stepTrack(tr, delta) {
			wrote = true
		}
		if !tr.done {
			running++
		}
		if tw.state != StateActive {
			// a repeat handler stopped or paused the tween
			return
		}
	}

	if wrote {
		tw.dispatch(EventUpdate, "")
	}
	if running == 0 && tw.state == StateActive {
		tw.state = StateComplete
		Logger().Debug("tween complete", zap.String("id", tw.id))
		tw.dispatch(EventComplete, "")
	}
}

// stepTrack advances the active segment of tr by delta and reports whether a
// value was written to any target. At most one transition happens per tick.
func (tw *Tween) stepTrack(tr *track, delta float64) bool {
	seg := tr.segment()

	if seg.delayLeft > 0 {
		if delta < seg.delayLeft {
			seg.delayLeft -= delta
			return false
		}
		delta -= seg.delayLeft
		seg.delayLeft = 0
	}

	ratio := 1.0
	if seg.Duration > 0 {
		seg.elapsed += delta
		if seg.elapsed > seg.Duration {
			seg.elapsed = seg.Duration
		}
		ratio = clamp01(seg.elapsed / seg.Duration)
	}

	// ease(1) is 1 for every curve; pin it so the end value lands exactly.
	progress := 1.0
	if ratio < 1 {
		progress = seg.Ease(ratio)
	}
	seg.progress = progress

	write := seg.spec.kind != specHold
	wrote := false
	for i := range tr.snapshots {
		sp := &tr.snapshots[i]
		if sp.Missing {
			continue
		}
		if seg.direction == Forward {
			sp.Current = lerp(sp.Start, sp.End, progress)
		} else {
			sp.Current = lerp(sp.End, sp.Start, progress)
		}
		if write {
			tw.targets[i].SetProperty(tr.key, sp.Current)
			wrote = true
		}
	}

	if ratio < 1 {
		return wrote
	}

	switch {
	case seg.Yoyo && seg.direction == Forward:
		seg.direction = Reverse
		seg.elapsed = 0
	case seg.Loop || seg.repeatLeft > 0:
		if !seg.Loop {
			seg.repeatLeft--
		}
		seg.elapsed = 0
		seg.direction = Forward
		tr.reapplyDelta()
		tw.dispatch(EventRepeat, tr.key)
	case tr.current+1 < len(tr.queue):
		tr.current++
		tr.activate(tw.targets, false)
	default:
		tr.done = true
	}
	return wrote
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
