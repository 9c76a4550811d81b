package tween

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// resolveValue turns a raw property value into one or more segments, each
// carrying options inherited from d unless overridden. The result is never
// empty: values that cannot be interpreted yield a single no-op segment.
func resolveValue(key string, raw any, d segmentDefaults) []Segment {
	segs := appendValue(nil, key, raw, d)
	if len(segs) == 0 {
		Logger().Warn("empty value spec, property will not change", zap.String("key", key))
		segs = append(segs, makeSegment(d, valueSpec{kind: specNone}))
	}
	return segs
}

func appendValue(dst []Segment, key string, raw any, d segmentDefaults) []Segment {
	switch v := raw.(type) {
	case Override:
		return appendValue(dst, key, v.Value, resolveOptions(v.Options, d))
	case *Override:
		if v == nil {
			break
		}
		return appendValue(dst, key, v.Value, resolveOptions(v.Options, d))
	case []Override:
		for _, o := range v {
			dst = appendValue(dst, key, o, d)
		}
		return dst
	case []any:
		for _, e := range v {
			dst = appendValue(dst, key, e, d)
		}
		return dst
	case []float64:
		for _, e := range v {
			dst = append(dst, makeSegment(d, valueSpec{kind: specAbsolute, value: e}))
		}
		return dst
	case []int:
		for _, e := range v {
			dst = append(dst, makeSegment(d, valueSpec{kind: specAbsolute, value: float64(e)}))
		}
		return dst
	case []string:
		for _, e := range v {
			dst = appendValue(dst, key, e, d)
		}
		return dst
	case map[string]any:
		o, ok := overrideFromMap(v)
		if !ok {
			break
		}
		return appendValue(dst, key, o, d)
	case func() any:
		return append(dst, makeSegment(d, valueSpec{kind: specComputed, compute: v}))
	case func() float64:
		fn := v
		return append(dst, makeSegment(d, valueSpec{kind: specComputed, compute: func() any { return fn() }}))
	case func() string:
		fn := v
		return append(dst, makeSegment(d, valueSpec{kind: specComputed, compute: func() any { return fn() }}))
	default:
		spec := classifyScalar(raw)
		if spec.kind != specNone {
			return append(dst, makeSegment(d, spec))
		}
	}

	Logger().Warn("unrecognised value spec, property will not change",
		zap.String("key", key), zap.String("type", fmt.Sprintf("%T", raw)))
	return append(dst, makeSegment(d, valueSpec{kind: specNone}))
}

// classifyScalar maps a number to an absolute spec and a string to a relative
// or absolute spec. Anything else is specNone.
func classifyScalar(raw any) valueSpec {
	if f, ok := toFloat(raw); ok {
		return valueSpec{kind: specAbsolute, value: f}
	}
	if s, ok := raw.(string); ok {
		return parseValueString(s)
	}
	return valueSpec{kind: specNone}
}

// parseValueString accepts "+100", "-50", "+=100", "-=50" as deltas and an
// unsigned number as an absolute value.
func parseValueString(s string) valueSpec {
	s = strings.TrimSpace(s)
	if s == "" {
		return valueSpec{kind: specNone}
	}

	sign := 0.0
	switch s[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	}
	if sign == 0 {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return valueSpec{kind: specNone}
		}
		return valueSpec{kind: specAbsolute, value: f}
	}

	rest := strings.TrimPrefix(s[1:], "=")
	f, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return valueSpec{kind: specNone}
	}
	return valueSpec{kind: specRelative, value: sign * f}
}

// overrideFromMap reads the override fields of a decoded JSON or YAML object.
// The object must carry a "value" key.
func overrideFromMap(m map[string]any) (Override, bool) {
	v, ok := m["value"]
	if !ok {
		return Override{}, false
	}
	o := Override{Value: v}
	if f, ok := toFloat(m["duration"]); ok {
		o.Duration = Ptr(f)
	}
	if f, ok := toFloat(m["delay"]); ok {
		o.Delay = Ptr(f)
	}
	if s, ok := m["ease"].(string); ok {
		o.Ease = s
	}
	if b, ok := m["yoyo"].(bool); ok {
		o.Yoyo = Ptr(b)
	}
	if f, ok := toFloat(m["repeat"]); ok {
		o.Repeat = Ptr(int(f))
	}
	if b, ok := m["loop"].(bool); ok {
		o.Loop = Ptr(b)
	}
	if f, ok := toFloat(m["startAt"]); ok {
		o.StartAt = Ptr(f)
	}
	return o, true
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
