//go:build js && wasm
// +build js,wasm

package runtime

import (
	"github.com/vcrobe/clickcounter/vdom"
)

const rootKey = "__root__"

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the browser implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
type RendererImpl struct {
	instances        map[string]Component
	activeKeys       map[string]bool // Components rendered in the current cycle
	currentComponent Component
	currentKey       string
	rootInitialized  bool
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
}

// NewRenderer creates a renderer that mounts under the element matching mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		instances:  make(map[string]Component),
		activeKeys: make(map[string]bool),
		mountID:    mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered.
// Replacing the root destroys the previous one on the next render.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	if r.currentComponent != nil && r.currentComponent != comp {
		Destroy(r.currentComponent, rootKey)
		r.rootInitialized = false
	}
	r.currentComponent = comp
	r.currentKey = key
}

// RenderRoot starts the rendering process for the entire application.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	r.activeKeys = make(map[string]bool)

	r.currentComponent.SetRenderer(r)
	if !r.rootInitialized {
		Init(r.currentComponent, rootKey)
		r.rootInitialized = true
	}

	newVDOM := r.currentComponent.Render(r)
	if newVDOM != nil {
		newVDOM.ComponentKey = r.currentKey
	}

	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}
	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
}

// RenderChild renders a child component, reusing the instance stored under key.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	if !exists {
		instance = childWithProps
		r.instances[key] = instance
	}

	instance.SetRenderer(r)
	if !exists {
		Init(instance, key)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents destroys children that were not rendered in this cycle.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if !r.activeKeys[key] {
			Destroy(instance, key)
			delete(r.instances, key)
		}
	}
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
