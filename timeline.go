package tween

import "go.uber.org/zap"

// keyQueue is the resolved segment queue for one property key.
type keyQueue struct {
	key  string
	segs []Segment
}

// expandTimeline lays the stages out one after another. Every stage lasts as
// long as its slowest property; a key the stage does not mention, or that
// finishes early, is padded with a hold segment so that its next stage starts
// together with everybody else's. Keys are ordered by first appearance.
func expandTimeline(stages []Stage, d segmentDefaults) []keyQueue {
	type stageQueues struct {
		span  float64
		byKey map[string][]Segment
	}

	resolved := make([]stageQueues, len(stages))
	last := map[string]int{}
	var order []string

	for i, st := range stages {
		sd := resolveOptions(st.Options, d)
		sq := stageQueues{byKey: make(map[string][]Segment, len(st.Props))}
		for _, p := range st.Props {
			if _, dup := sq.byKey[p.Key]; dup {
				Logger().Warn("duplicate key in timeline stage, keeping the last",
					zap.String("key", p.Key), zap.Int("stage", i))
			}
			sq.byKey[p.Key] = resolveValue(p.Key, p.Value, sd)
			if _, seen := last[p.Key]; !seen {
				order = append(order, p.Key)
			}
			last[p.Key] = i
		}
		for _, segs := range sq.byKey {
			if s := spanOf(segs); s > sq.span {
				sq.span = s
			}
		}
		resolved[i] = sq
	}

	out := make([]keyQueue, 0, len(order))
	for _, key := range order {
		var q []Segment
		for i := 0; i <= last[key]; i++ {
			sq := resolved[i]
			segs, ok := sq.byKey[key]
			if !ok {
				if sq.span > 0 {
					q = append(q, makeHold(sq.span))
				}
				continue
			}
			q = append(q, segs...)
			if i == last[key] {
				continue
			}
			if pad := sq.span - spanOf(segs); pad > 0 {
				q = append(q, makeHold(pad))
			}
		}
		out = append(out, keyQueue{key: key, segs: q})
	}
	return out
}
