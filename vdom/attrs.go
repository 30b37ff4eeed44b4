package vdom

import "reflect"

// isHandler reports whether an attribute value is an event handler.
// Handlers are bound as listeners, never written as attributes.
func isHandler(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// attrChanged reports whether value must be written over old when patching.
// existed is false when the attribute was absent from the previous render.
// Values whose types cannot be compared are always treated as changed.
func attrChanged(old any, existed bool, value any) bool {
	if isHandler(value) {
		return false
	}
	if !existed || old == nil || value == nil {
		return !existed || old != value
	}
	if !reflect.TypeOf(old).Comparable() || !reflect.TypeOf(value).Comparable() {
		return true
	}
	return old != value
}
