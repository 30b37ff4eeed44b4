//go:build !dev
// +build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/clickcounter/console"
)

// callHook invokes a lifecycle method in production mode.
// Panics are recovered and logged so one component cannot take down the page.
func callHook(name, key string, hook func()) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error(fmt.Sprintf("ERROR: %s panic in component %s: %v", name, key, rec))
		}
	}()
	hook()
}
