package tween

import "go.uber.org/zap"

// TargetProp is the per-target interpolation state of a track's active
// segment.
type TargetProp struct {
	Start   float64
	Current float64
	End     float64
	// Missing is set when the target lacks the property; it is never written.
	Missing bool

	delta    float64
	relative bool
}

// track is the ordered queue of segments driving one property.
type track struct {
	key       string
	queue     []Segment
	current   int
	snapshots []TargetProp
	done      bool
}

func (tr *track) segment() *Segment {
	return &tr.queue[tr.current]
}

// buildTracks resolves the flat props and the timeline into tracks, flat keys
// first. Timeline keys replace flat keys of the same name.
func buildTracks(cfg *Config, d segmentDefaults, targetCount int) []*track {
	var timeline []keyQueue
	inTimeline := map[string]bool{}
	if len(cfg.Timeline) > 0 {
		timeline = expandTimeline(cfg.Timeline, d)
		for _, kq := range timeline {
			inTimeline[kq.key] = true
		}
	}

	tracks := make([]*track, 0, len(cfg.Props)+len(timeline))
	index := map[string]int{}
	for _, p := range cfg.Props {
		if inTimeline[p.Key] {
			Logger().Warn("property is driven by the timeline, ignoring flat value", zap.String("key", p.Key))
			continue
		}
		tr := &track{
			key:       p.Key,
			queue:     resolveValue(p.Key, p.Value, d),
			snapshots: make([]TargetProp, targetCount),
		}
		if i, dup := index[p.Key]; dup {
			Logger().Warn("duplicate property, keeping the last", zap.String("key", p.Key))
			tracks[i] = tr
			continue
		}
		index[p.Key] = len(tracks)
		tracks = append(tracks, tr)
	}
	for _, kq := range timeline {
		tracks = append(tracks, &track{
			key:       kq.key,
			queue:     kq.segs,
			snapshots: make([]TargetProp, targetCount),
		})
	}
	return tracks
}

// activate captures start and end values of the track's current segment for
// every target. The first segment reads the targets; later ones continue from
// the last written value. A segment with StartAt jumps there first.
func (tr *track) activate(targets []Target, first bool) {
	seg := tr.segment()
	seg.reset()
	for i, t := range targets {
		sp := &tr.snapshots[i]
		if first {
			v, ok := t.Property(tr.key)
			if !ok {
				*sp = TargetProp{Missing: true}
				Logger().Debug("target has no such property, skipping", zap.String("key", tr.key), zap.Int("target", i))
				continue
			}
			sp.Start = v
		} else {
			if sp.Missing {
				continue
			}
			sp.Start = sp.Current
		}
		if seg.StartAt != nil {
			sp.Start = *seg.StartAt
			t.SetProperty(tr.key, sp.Start)
		}
		sp.Current = sp.Start
		sp.End, sp.delta, sp.relative = seg.spec.resolve(sp.Start)
	}
}

// reapplyDelta moves relative snapshots one delta further for the next
// playthrough.
func (tr *track) reapplyDelta() {
	for i := range tr.snapshots {
		sp := &tr.snapshots[i]
		if sp.Missing || !sp.relative {
			continue
		}
		sp.Start = sp.Current
		sp.End = sp.Start + sp.delta
	}
}
