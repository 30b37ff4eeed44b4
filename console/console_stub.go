//go:build !(js && wasm)
// +build !js !wasm

package console

import (
	"fmt"
	"sync/atomic"

	"github.com/go-logr/logr"
)

// Outside the browser there is no devtools console, so messages are handed
// to a logr.Logger. The default discards everything, which keeps tests quiet.

var logger atomic.Pointer[logr.Logger]

func init() {
	SetLogger(logr.Discard())
}

// SetLogger routes console output to l.
func SetLogger(l logr.Logger) {
	logger.Store(&l)
}

// Logger returns the logger console output is routed to.
func Logger() logr.Logger {
	return *logger.Load()
}

// Log writes an informational message.
func Log(args ...any) {
	Logger().Info(fmt.Sprint(args...))
}

// Warn writes a warning. logr has no warning level, so it is logged at V(0)
// with a marker key.
func Warn(args ...any) {
	Logger().Info(fmt.Sprint(args...), "warning", true)
}

// Error writes an error message.
func Error(args ...any) {
	Logger().Error(nil, fmt.Sprint(args...))
}
