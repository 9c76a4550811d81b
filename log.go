package tween

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(zap.NewNop())
}

// SetLogger installs the logger used while building tweens. The engine logs
// degraded input (unknown eases, malformed values, missing properties) and
// lifecycle transitions. Nothing is logged per tick. A nil logger restores
// the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	pkgLogger.Store(l)
}

// Logger returns the logger installed with SetLogger.
func Logger() *zap.Logger {
	return pkgLogger.Load()
}
