package builtin

// NewDefaultRegistry returns a registry pre-loaded with the full
// default builtin set.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterControl(r)
	RegisterUnification(r)
	RegisterTypeTests(r)
	RegisterArithmetic(r)
	return r
}
