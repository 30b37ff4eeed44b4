//go:build js && wasm
// +build js,wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/clickcounter/console"
)

// listener is a js.Func bound to one DOM event on one element.
type listener struct {
	event string
	fn    js.Func
}

// releaseCallbacks detaches and releases every listener stored on v.
// el may be undefined when the element is being discarded anyway.
func releaseCallbacks(el js.Value, v *VNode) {
	if v == nil {
		return
	}
	for _, cb := range v.GetEventCallbacks() {
		l, ok := cb.(listener)
		if !ok {
			continue
		}
		if el.Truthy() {
			el.Call("removeEventListener", l.event, l.fn)
		}
		l.fn.Release()
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in a discarded VNode tree.
func deepReleaseCallbacks(v *VNode) {
	Walk(v, func(n *VNode) bool {
		releaseCallbacks(js.Undefined(), n)
		return true
	})
}

func mountElement(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined()
	}
	return mount
}

// Clear empties the mount element and releases callbacks held by prevVDOM.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}
	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}
	if mount := mountElement(selector); mount.Truthy() {
		mount.Set("innerHTML", "")
	}
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	if mount := mountElement(selector); mount.Truthy() {
		RenderTo(mount, n)
	}
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	if el := createElement(n); el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes.
func setAttributeValue(el js.Value, key string, value any) {
	switch v := value.(type) {
	case bool:
		if v {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
	default:
		// Handlers are attached with addEventListener.
		if !isHandler(v) {
			el.Call("setAttribute", key, v)
		}
	}
}

// attachClick binds n.OnClick to el and records the listener on n for cleanup.
func attachClick(el js.Value, n *VNode) {
	if n.OnClick == nil {
		return
	}
	handler := n.OnClick
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})
	el.Call("addEventListener", "click", cb)
	n.AddEventCallback(listener{event: "click", fn: cb})
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	switch n.Tag {
	case TextTag:
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)

	case "div", "p", "span", "button", "h1", "h2", "h3", "h4", "h5", "h6":
		el := doc.Call("createElement", n.Tag)
		for k, v := range n.Attributes {
			setAttributeValue(el, k, v)
		}
		attachClick(el, n)

		if n.Content != "" {
			el.Set("textContent", n.Content)
		}
		for _, child := range n.Children {
			if childEl := createElement(child); childEl.Truthy() {
				el.Call("appendChild", childEl)
			}
		}
		return el

	default:
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}
	mount := mountElement(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderTo(mount, newVNode)
		return
	}
	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)
	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	if parent := domElement.Get("parentNode"); parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.ComponentKey != newVNode.ComponentKey || oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Handlers are closures over the new render, so always rebind them.
	releaseCallbacks(domElement, oldVNode)
	attachClick(domElement, newVNode)

	// Setting textContent wipes out child nodes, so only do it for leaves.
	if len(newVNode.Children) == 0 && oldVNode.Content != newVNode.Content {
		domElement.Set("textContent", newVNode.Content)
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}
	for key, value := range newAttrs {
		if old, ok := oldAttrs[key]; attrChanged(old, ok, value) {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element pairwise by position.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	domChildren := domElement.Get("childNodes")
	minLen := min(len(oldChildren), len(newChildren))

	for i := 0; i < minLen; i++ {
		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := len(oldChildren); i < len(newChildren); i++ {
		if newChild := createElement(newChildren[i]); newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := len(oldChildren) - 1; i >= len(newChildren); i-- {
		deepReleaseCallbacks(oldChildren[i])
		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
