package vdom

import (
	"fmt"
	"strings"
)

// Walk visits n and all its descendants depth-first, in document order.
// Returning false from visit stops descent into that node's children.
func Walk(n *VNode, visit func(*VNode) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, visit)
	}
}

// FindByAttr returns every node under root (root included) whose attribute
// key renders to value.
func FindByAttr(root *VNode, key, value string) []*VNode {
	var found []*VNode
	Walk(root, func(n *VNode) bool {
		if v, ok := n.Attributes[key]; ok && fmt.Sprint(v) == value {
			found = append(found, n)
		}
		return true
	})
	return found
}

// TextContent concatenates the text of the node and its descendants,
// the way the DOM textContent property does.
func (v *VNode) TextContent() string {
	var sb strings.Builder
	Walk(v, func(n *VNode) bool {
		sb.WriteString(n.Content)
		return true
	})
	return sb.String()
}

// HasClass reports whether token is one of the node's class tokens.
func (v *VNode) HasClass(token string) bool {
	if v == nil {
		return false
	}
	class, _ := v.Attributes["class"].(string)
	for _, t := range strings.Fields(class) {
		if t == token {
			return true
		}
	}
	return false
}

// Click invokes the node's click handler. It reports whether a handler was attached.
func (v *VNode) Click() bool {
	if v == nil || v.OnClick == nil {
		return false
	}
	v.OnClick()
	return true
}
