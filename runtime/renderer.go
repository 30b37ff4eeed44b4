package runtime

import "github.com/vcrobe/clickcounter/vdom"

// Renderer defines the minimal set of runtime operations used by Render() code.
// It has no build tags so the WASM renderer and the in-memory test renderer
// share one contract.
type Renderer interface {
	// RenderChild renders a child component.
	// The key uniquely identifies the instance so its state survives re-renders.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}
