package toolchain

// A Resolver is the opaque per-build-evaluation token driver caches key on.
// This package only ever compares Resolver identity; it never inspects one.
//
// A Resolver is typically owned by a single build-graph evaluation and
// discarded with it. Cache entries keyed on it are reclaimed once nothing
// else references it.
type Resolver struct {
	label string
}

// NewResolver returns a fresh resolution context. The label is purely
// informational and carries no semantics.
func NewResolver(label string) *Resolver {
	return &Resolver{label: label}
}

// Label returns the informational label the context was created with.
func (r *Resolver) Label() string { return r.label }
