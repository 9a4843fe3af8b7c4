// Package idx provides a typed, newtype-indexed vector used across the LIR
// data model (locals, basic blocks, definitions are all dense indices into
// some table). A container built over it is owned by a single goroutine at
// a time; the package has no concurrency semantics of its own.
package idx

// Idx is satisfied by any defined type whose underlying representation is
// an int, e.g. `type Local int`. This is the Go analog of the Rust `Idx`
// trait (`new`/`idx`/`incr`/`incr_by`): instead of associated functions,
// conversion to and from the underlying int does the job, since every
// index type in this codebase is a zero-based dense position and nothing
// more.
type Idx interface {
	~int
}
