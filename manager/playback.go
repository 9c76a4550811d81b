package manager

import (
	"encoding/json"
	"fmt"
)

// playbackStep is a single action in a playback script.
type playbackStep struct {
	Action string  `json:"action"`
	Delta  float64 `json:"delta,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Scale  float64 `json:"scale,omitempty"`
}

// playbackScript is the top-level JSON structure of a playback script.
type playbackScript struct {
	Steps []playbackStep `json:"steps"`
}

// Playback drives a Manager through a scripted sequence of frames, for
// deterministic tests and headless runs. Example script:
//
//	{"steps": [
//		{"action": "tick", "delta": 16, "frames": 30},
//		{"action": "pause"},
//		{"action": "tick", "delta": 16, "frames": 10},
//		{"action": "resume"},
//		{"action": "timescale", "scale": 2},
//		{"action": "tick", "delta": 16, "frames": 60}
//	]}
//
// "kill" stops every tween. Only ticks consume frames.
type Playback struct {
	steps     []playbackStep
	cursor    int
	remaining int
	delta     float64
	now       float64
	frames    int
	done      bool
}

// LoadPlayback parses a JSON playback script.
func LoadPlayback(jsonData []byte) (*Playback, error) {
	var script playbackScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse playback: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse playback: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "tick":
			if st.Delta < 0 {
				return nil, fmt.Errorf("parse playback: step %d: negative delta %v", i, st.Delta)
			}
		case "timescale":
			if st.Scale <= 0 {
				return nil, fmt.Errorf("parse playback: step %d: scale must be positive", i)
			}
		case "pause", "resume", "kill":
		default:
			return nil, fmt.Errorf("parse playback: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Playback{steps: script.Steps}, nil
}

// Done reports whether every step has been executed.
func (p *Playback) Done() bool {
	return p.done
}

// Now returns the timestamp of the last frame.
func (p *Playback) Now() float64 {
	return p.now
}

// Frames returns the number of frames played so far.
func (p *Playback) Frames() int {
	return p.frames
}

// Step applies pending instant actions and plays at most one frame.
func (p *Playback) Step(m *Manager) {
	for !p.done {
		if p.remaining > 0 {
			p.remaining--
			p.now += p.delta
			p.frames++
			m.Update(p.now, p.delta)
			if p.remaining == 0 && p.cursor >= len(p.steps) {
				p.done = true
			}
			return
		}
		if p.cursor >= len(p.steps) {
			p.done = true
			return
		}

		st := p.steps[p.cursor]
		p.cursor++

		switch st.Action {
		case "tick":
			p.remaining = max(st.Frames, 1)
			p.delta = st.Delta
		case "pause":
			m.PauseAll()
		case "resume":
			m.ResumeAll()
		case "kill":
			m.KillAll()
		case "timescale":
			m.SetTimeScale(st.Scale)
		}
	}
}

// Run plays the whole script and returns the number of frames played.
func (p *Playback) Run(m *Manager) int {
	for !p.done {
		p.Step(m)
	}
	return p.frames
}
