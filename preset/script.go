package preset

import (
	"errors"
	"sync/atomic"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/zapata1/tween"
	"go.uber.org/zap"
)

// compileScript compiles a tengo program into a computed value. The program
// sees the global index, counting earlier evaluations from zero, and must
// define the global value as a number or a relative string. It is run once
// here so broken scripts fail at load time.
func compileScript(src string) (func() any, error) {
	script := tengo.NewScript([]byte(src))
	_ = script.Add("index", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	probe := compiled.Clone()
	if err := probe.Run(); err != nil {
		return nil, err
	}
	if !probe.IsDefined("value") {
		return nil, errors.New("script does not define value")
	}

	var calls atomic.Int64
	return func() any {
		c := compiled.Clone()
		if err := c.Set("index", calls.Add(1)-1); err != nil {
			tween.Logger().Warn("preset script: set index", zap.Error(err))
			return nil
		}
		if err := c.Run(); err != nil {
			tween.Logger().Warn("preset script failed", zap.Error(err))
			return nil
		}
		return c.Get("value").Value()
	}, nil
}
