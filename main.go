//go:build js && wasm
// +build js,wasm

package main

import (
	"github.com/vcrobe/clickcounter/appcomponents"
	"github.com/vcrobe/clickcounter/runtime"
)

func main() {
	// Create the counter and the renderer that owns the #app element
	counter := appcomponents.NewClickCounter()
	renderer := runtime.NewRenderer("#app")

	// Set the component and render; clicks re-render through StateHasChanged
	renderer.SetCurrentComponent(counter, "click-counter")
	renderer.RenderRoot()

	// Keep the Go program running
	select {}
}
