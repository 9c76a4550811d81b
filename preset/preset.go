// Package preset loads tween descriptions from YAML documents.
//
// A preset mirrors tween.Config. Top-level keys that are not options are
// shorthand properties, in document order:
//
//	name: pop
//	duration: 300
//	ease: Back.easeOut
//	x: 200
//	y: "+=40"
//	alpha:
//	  value: 1
//	  duration: 100
//	scale: [1.4, 1]
//	rotation:
//	  script: |
//	    rand := import("rand")
//	    value := rand.float() * 360
//	timeline:
//	  - x: 0
//	    duration: 200
//	  - y: 0
package preset

import (
	"fmt"

	"github.com/zapata1/tween"
	"gopkg.in/yaml.v3"
)

// Preset is a parsed tween description that can be turned into any number
// of tween.Configs.
type Preset struct {
	Name string
	// Targets names the objects the preset is meant for. Config ignores it;
	// ConfigFor resolves it.
	Targets  []string
	Props    []tween.Prop
	Timeline []tween.Stage

	Duration  float64
	Ease      string
	Yoyo      bool
	Repeat    int
	Loop      bool
	Delay     float64
	UseFrames bool
	Paused    bool
	TimeScale float64
}

// header holds the top-level options decoded straight from the mapping.
type header struct {
	Name      string   `yaml:"name"`
	Targets   []string `yaml:"targets"`
	Duration  float64  `yaml:"duration"`
	Ease      string   `yaml:"ease"`
	Yoyo      bool     `yaml:"yoyo"`
	Repeat    int      `yaml:"repeat"`
	Loop      bool     `yaml:"loop"`
	Delay     float64  `yaml:"delay"`
	UseFrames bool     `yaml:"useFrames"`
	Paused    bool     `yaml:"paused"`
	TimeScale float64  `yaml:"timeScale"`
}

// optionsDoc is the YAML form of tween.Options.
type optionsDoc struct {
	Duration *float64 `yaml:"duration"`
	Delay    *float64 `yaml:"delay"`
	Ease     string   `yaml:"ease"`
	Yoyo     *bool    `yaml:"yoyo"`
	Repeat   *int     `yaml:"repeat"`
	Loop     *bool    `yaml:"loop"`
	StartAt  *float64 `yaml:"startAt"`
}

func (o optionsDoc) options() tween.Options {
	return tween.Options{
		Duration: o.Duration,
		Delay:    o.Delay,
		Ease:     o.Ease,
		Yoyo:     o.Yoyo,
		Repeat:   o.Repeat,
		Loop:     o.Loop,
		StartAt:  o.StartAt,
	}
}

var reservedKeys = map[string]bool{
	"name": true, "targets": true, "props": true, "timeline": true,
	"duration": true, "ease": true, "yoyo": true, "repeat": true,
	"loop": true, "delay": true, "useFrames": true, "paused": true,
	"timeScale": true,
}

var optionKeys = map[string]bool{
	"duration": true, "delay": true, "ease": true,
	"yoyo": true, "repeat": true, "loop": true,
	"startAt": true,
}

// Parse decodes a single YAML preset document.
func Parse(data []byte) (*Preset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("preset: empty document")
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("preset: line %d: top level must be a mapping", root.Line)
	}

	var h header
	if err := root.Decode(&h); err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	p := &Preset{
		Name:      h.Name,
		Targets:   h.Targets,
		Duration:  h.Duration,
		Ease:      h.Ease,
		Yoyo:      h.Yoyo,
		Repeat:    h.Repeat,
		Loop:      h.Loop,
		Delay:     h.Delay,
		UseFrames: h.UseFrames,
		Paused:    h.Paused,
		TimeScale: h.TimeScale,
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, resolveAlias(root.Content[i+1])
		switch {
		case key == "props":
			props, err := parseProps(val)
			if err != nil {
				return nil, err
			}
			p.Props = append(p.Props, props...)
		case key == "timeline":
			stages, err := parseTimeline(val)
			if err != nil {
				return nil, err
			}
			p.Timeline = stages
		case reservedKeys[key]:
		default:
			v, err := decodeValue(val)
			if err != nil {
				return nil, fmt.Errorf("preset: %s: %w", key, err)
			}
			p.Props = append(p.Props, tween.Prop{Key: key, Value: v})
		}
	}

	if len(p.Props) == 0 && len(p.Timeline) == 0 {
		return nil, fmt.Errorf("preset %q: no properties", p.Name)
	}
	return p, nil
}

// Config builds a tween.Config from the preset for the given targets.
func (p *Preset) Config(targets ...tween.Target) tween.Config {
	return tween.Config{
		Targets:   targets,
		Props:     append([]tween.Prop(nil), p.Props...),
		Timeline:  append([]tween.Stage(nil), p.Timeline...),
		Duration:  p.Duration,
		Ease:      p.Ease,
		Yoyo:      p.Yoyo,
		Repeat:    p.Repeat,
		Loop:      p.Loop,
		Delay:     p.Delay,
		UseFrames: p.UseFrames,
		Paused:    p.Paused,
		TimeScale: p.TimeScale,
	}
}

// ConfigFor builds a tween.Config whose targets are the preset's named
// targets, looked up with resolve. Names resolve cannot find are skipped.
func (p *Preset) ConfigFor(resolve func(name string) (tween.Target, bool)) tween.Config {
	var targets []tween.Target
	for _, name := range p.Targets {
		if t, ok := resolve(name); ok {
			targets = append(targets, t)
		}
	}
	return p.Config(targets...)
}

func parseProps(n *yaml.Node) ([]tween.Prop, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("preset: line %d: props must be a mapping", n.Line)
	}
	props := make([]tween.Prop, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		v, err := decodeValue(resolveAlias(n.Content[i+1]))
		if err != nil {
			return nil, fmt.Errorf("preset: %s: %w", key, err)
		}
		props = append(props, tween.Prop{Key: key, Value: v})
	}
	return props, nil
}

func parseTimeline(n *yaml.Node) ([]tween.Stage, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("preset: line %d: timeline must be a list", n.Line)
	}
	stages := make([]tween.Stage, 0, len(n.Content))
	for idx, item := range n.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("preset: timeline[%d]: line %d: stage must be a mapping", idx, item.Line)
		}
		var od optionsDoc
		if err := item.Decode(&od); err != nil {
			return nil, fmt.Errorf("preset: timeline[%d]: %w", idx, err)
		}
		st := tween.Stage{Options: od.options()}
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, val := item.Content[i].Value, resolveAlias(item.Content[i+1])
			switch {
			case key == "props":
				props, err := parseProps(val)
				if err != nil {
					return nil, fmt.Errorf("preset: timeline[%d]: %w", idx, err)
				}
				st.Props = append(st.Props, props...)
			case optionKeys[key]:
			default:
				v, err := decodeValue(val)
				if err != nil {
					return nil, fmt.Errorf("preset: timeline[%d]: %s: %w", idx, key, err)
				}
				st.Props = append(st.Props, tween.Prop{Key: key, Value: v})
			}
		}
		stages = append(stages, st)
	}
	return stages, nil
}

// decodeValue converts a YAML value node into a tween value spec: scalars
// stay numbers or strings, sequences become []any and mappings become
// tween.Override with a literal or scripted value.
func decodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		switch v.(type) {
		case int, int64, uint64, float64, string:
			return v, nil
		}
		return nil, fmt.Errorf("line %d: %q is not a number or relative value", n.Line, n.Value)

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := decodeValue(resolveAlias(item))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.MappingNode:
		var od optionsDoc
		if err := n.Decode(&od); err != nil {
			return nil, err
		}
		valueNode, scriptNode := mappingValue(n, "value"), mappingValue(n, "script")
		var v any
		switch {
		case valueNode != nil && scriptNode != nil:
			return nil, fmt.Errorf("line %d: value and script are mutually exclusive", n.Line)
		case valueNode != nil:
			var err error
			if v, err = decodeValue(resolveAlias(valueNode)); err != nil {
				return nil, err
			}
		case scriptNode != nil:
			fn, err := compileScript(scriptNode.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: script: %w", scriptNode.Line, err)
			}
			v = fn
		default:
			return nil, fmt.Errorf("line %d: mapping needs a value or a script", n.Line)
		}
		return tween.Override{Value: v, Options: od.options()}, nil
	}
	return nil, fmt.Errorf("line %d: unsupported value", n.Line)
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
