package tween

import (
	"strings"
	"sync"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// EaseFunc maps linear time progress in [0, 1] to eased progress. The result
// may leave [0, 1] for overshooting curves such as Back and Elastic.
type EaseFunc func(p float64) float64

// Linear is the identity ease and the fallback for unknown names.
func Linear(p float64) float64 { return p }

// FromGween adapts a gween easing function to an EaseFunc.
func FromGween(fn ease.TweenFunc) EaseFunc {
	if fn == nil {
		return Linear
	}
	return func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	}
}

var (
	easeMu       sync.RWMutex
	easeRegistry = map[string]EaseFunc{}
)

func init() {
	families := []struct {
		name           string
		in, out, inOut ease.TweenFunc
	}{
		{"quad", ease.InQuad, ease.OutQuad, ease.InOutQuad},
		{"cubic", ease.InCubic, ease.OutCubic, ease.InOutCubic},
		{"quart", ease.InQuart, ease.OutQuart, ease.InOutQuart},
		{"quint", ease.InQuint, ease.OutQuint, ease.InOutQuint},
		{"sine", ease.InSine, ease.OutSine, ease.InOutSine},
		{"expo", ease.InExpo, ease.OutExpo, ease.InOutExpo},
		{"circ", ease.InCirc, ease.OutCirc, ease.InOutCirc},
		{"elastic", ease.InElastic, ease.OutElastic, ease.InOutElastic},
		{"back", ease.InBack, ease.OutBack, ease.InOutBack},
		{"bounce", ease.InBounce, ease.OutBounce, ease.InOutBounce},
	}
	for _, f := range families {
		in, out, inOut := FromGween(f.in), FromGween(f.out), FromGween(f.inOut)

		// "Quad" alone means the ease-out variant.
		easeRegistry[f.name] = out
		easeRegistry[f.name+".easein"] = in
		easeRegistry[f.name+".easeout"] = out
		easeRegistry[f.name+".easeinout"] = inOut
		easeRegistry["in"+f.name] = in
		easeRegistry["out"+f.name] = out
		easeRegistry["inout"+f.name] = inOut
	}

	easeRegistry["linear"] = Linear
	easeRegistry["power0"] = Linear
	easeRegistry["power1"] = easeRegistry["quad"]
	easeRegistry["power2"] = easeRegistry["cubic"]
	easeRegistry["power3"] = easeRegistry["quart"]
	easeRegistry["power4"] = easeRegistry["quint"]
}

// RegisterEase adds or replaces a named ease. Names are case-insensitive.
func RegisterEase(name string, fn EaseFunc) {
	if fn == nil {
		return
	}
	easeMu.Lock()
	easeRegistry[strings.ToLower(name)] = fn
	easeMu.Unlock()
}

// LookupEase returns the ease registered under name.
func LookupEase(name string) (EaseFunc, bool) {
	easeMu.RLock()
	fn, ok := easeRegistry[strings.ToLower(strings.TrimSpace(name))]
	easeMu.RUnlock()
	return fn, ok
}

// ResolveEase returns the ease registered under name, or Linear when the name
// is empty or unknown. Accepts "Power0".."Power4", family names such as
// "Sine" or "Back.easeInOut", and gween-style names such as "InOutQuad".
func ResolveEase(name string) EaseFunc {
	if name == "" {
		return Linear
	}
	if fn, ok := LookupEase(name); ok {
		return fn
	}
	Logger().Warn("unknown ease, falling back to linear", zap.String("ease", name))
	return Linear
}
