//go:build !(js && wasm)
// +build !js !wasm

package console

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
)

// TestConsoleRoutesToLogger verifies each level reaches the installed logr.Logger.
func TestConsoleRoutesToLogger(t *testing.T) {
	var lines []string
	SetLogger(funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{}))
	t.Cleanup(func() { SetLogger(logr.Discard()) })

	Log("mounted ", "counter")
	Warn("slow render")
	Error("mount element not found for selector: ", "#app")

	if assert.Len(t, lines, 3) {
		assert.Contains(t, lines[0], "mounted counter")
		assert.Contains(t, lines[1], "slow render")
		assert.Contains(t, lines[1], "warning")
		assert.Contains(t, lines[2], "#app")
	}
}

// TestConsoleDiscardsByDefault verifies logging works before any logger is installed.
func TestConsoleDiscardsByDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		Log("nothing listens")
		Error("still nothing")
	})
}
