package testcomponents

import (
	"fmt"

	"github.com/vcrobe/clickcounter/runtime"
	"github.com/vcrobe/clickcounter/vdom"
)

// TestAttr is the attribute components expose for test automation.
const TestAttr = "data-test"

const rootKey = "__root__"

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Locate nodes by their data-test attribute and simulate clicks
// - Inspect the resulting VDOM tree
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	children    map[string]runtime.Component
	mounted     bool
	renders     int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
		children:  make(map[string]runtime.Component),
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component, running its
// OnInit hook first. Call it at the start of a test to get the initial VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	if !r.mounted {
		runtime.Init(r.component, rootKey)
		r.mounted = true
	}
	r.ReRender()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.currentVDOM = r.component.Render(r)
	r.renders++
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderCount reports how many times the root has been rendered.
func (r *TestRenderer) RenderCount() int {
	return r.renders
}

// RenderChild renders a child component, keeping one instance per key.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	instance, ok := r.children[key]
	if !ok {
		instance = child
		r.children[key] = instance
	}
	instance.SetRenderer(r)
	if !ok {
		runtime.Init(instance, key)
	}
	return instance.Render(r)
}

// Unmount runs OnDestroy on every child and then the root.
func (r *TestRenderer) Unmount() {
	for key, child := range r.children {
		runtime.Destroy(child, key)
		delete(r.children, key)
	}
	if r.mounted {
		runtime.Destroy(r.component, rootKey)
		r.mounted = false
	}
	r.currentVDOM = nil
}

// FindByTestAttr returns the nodes of the current VDOM whose data-test
// attribute equals value.
func (r *TestRenderer) FindByTestAttr(value string) []*vdom.VNode {
	return vdom.FindByAttr(r.currentVDOM, TestAttr, value)
}

// Find returns the single node whose data-test attribute equals value.
func (r *TestRenderer) Find(value string) (*vdom.VNode, error) {
	nodes := r.FindByTestAttr(value)
	switch len(nodes) {
	case 0:
		return nil, fmt.Errorf("no node with %s=%q", TestAttr, value)
	case 1:
		return nodes[0], nil
	default:
		return nil, fmt.Errorf("%d nodes with %s=%q, want 1", len(nodes), TestAttr, value)
	}
}

// Click simulates a click on the node whose data-test attribute equals value.
func (r *TestRenderer) Click(value string) error {
	n, err := r.Find(value)
	if err != nil {
		return fmt.Errorf("click: %w", err)
	}
	if !n.Click() {
		return fmt.Errorf("click: %s=%q has no click handler", TestAttr, value)
	}
	return nil
}
