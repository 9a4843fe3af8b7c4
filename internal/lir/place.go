package lir

// Projection is one step of a place's access path: field access,
// dereference, or array indexing. v1 ships no concrete projection kinds —
// every Place used today has an empty Projection slice (spec.md §9,
// "Projections" design note) — but the interface exists so statement
// lowering has somewhere to grow without a breaking change.
type Projection interface {
	projectionNode()
}

// Place is an addressable location: a local plus an access path.
type Place struct {
	Local      Local
	Projection []Projection
}

// TryLocal returns the place's local and true if the place has no
// projections (the only case the v1 pipeline lowers).
func (p Place) TryLocal() (Local, bool) {
	return p.Local, len(p.Projection) == 0
}
