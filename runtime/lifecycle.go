package runtime

// Init runs the component's OnInit hook if it has one.
// key identifies the instance in diagnostics.
func Init(c Component, key string) {
	if initializer, ok := c.(Initializer); ok {
		callHook("OnInit", key, initializer.OnInit)
	}
}

// Destroy runs the component's OnDestroy hook if it has one.
func Destroy(c Component, key string) {
	if cleaner, ok := c.(Cleaner); ok {
		callHook("OnDestroy", key, cleaner.OnDestroy)
	}
}
