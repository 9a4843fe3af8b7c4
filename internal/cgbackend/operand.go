// Package cgbackend declares the capability contracts that isolate the
// IR-walking codegen pipeline (internal/codegen) from any one concrete
// backend (spec.md §4.F). Backend handles are opaque, lightweight,
// copyable values; Go has no associated types, so where the Rust source
// uses one trait per handle kind with an associated type, this package
// parameterizes the Context/Builder interfaces directly over the handle
// type parameters instead — following the plain-interface style production
// Go compiler backends use (see DESIGN.md's cgbackend entry) rather than a
// one-to-one transliteration of Rust's trait-per-handle shape.
package cgbackend

import "github.com/tide-fwk/tide/internal/abi"

// OperandValueKind distinguishes the three shapes an operand's value can
// take at the backend boundary.
type OperandValueKind int

const (
	// Immediate is a single SSA value.
	Immediate OperandValueKind = iota
	// Pair is two SSA values (reserved for a future ScalarPair repr;
	// spec.md §4.G's terminator-lowering pseudocode names this as a growth
	// point with no v1 backend actually producing it).
	Pair
	// Ref is a pointer to memory holding the value.
	Ref
	// Zst is the value of a zero-sized type: no backend value at all.
	Zst
)

// OperandValue is the backend-level payload of an operand.
type OperandValue[V any] struct {
	Kind  OperandValueKind
	Imm   V
	PairA V
	PairB V
	Ref   PlaceRef[V]
}

// PlaceRef is a pointer to storage for a TyAndLayout-shaped value.
type PlaceRef[V any] struct {
	Ptr    V
	Layout abi.TyAndLayout
}

// OperandRef pairs a backend-level value with the layout it was computed
// against.
type OperandRef[V any] struct {
	Value  OperandValue[V]
	Layout abi.TyAndLayout
}

// NewZstOperand returns the operand for a zero-sized-type value.
func NewZstOperand[V any](layout abi.TyAndLayout) OperandRef[V] {
	return OperandRef[V]{Value: OperandValue[V]{Kind: Zst}, Layout: layout}
}

// NewImmediateOperand returns the operand for a single SSA value.
func NewImmediateOperand[V any](v V, layout abi.TyAndLayout) OperandRef[V] {
	return OperandRef[V]{Value: OperandValue[V]{Kind: Immediate, Imm: v}, Layout: layout}
}

// LocalRefKind is the three-state machine of spec.md §4.G.
type LocalRefKind int

const (
	// LocalOperandRef is terminal: the local's SSA value is known.
	LocalOperandRef LocalRefKind = iota
	// LocalPendingOperandRef awaits its first assignment.
	LocalPendingOperandRef
	// LocalPlaceRef is terminal: the local lives in addressable storage.
	LocalPlaceRef
)

// LocalRef is the per-local dataflow state described in spec.md §4.G: a
// ZST or Scalar local starts as an operand (ZST immediately terminal,
// Scalar pending until its first assignment); a Memory local is terminal
// addressable storage from allocation onward.
type LocalRef[V any] struct {
	Kind    LocalRefKind
	Operand OperandRef[V]
	Place   PlaceRef[V]
}

// NewPendingLocalRef starts a Scalar local's dataflow-SSA lifecycle.
func NewPendingLocalRef[V any]() LocalRef[V] {
	return LocalRef[V]{Kind: LocalPendingOperandRef}
}

// NewOperandLocalRef wraps an already-resolved operand.
func NewOperandLocalRef[V any](op OperandRef[V]) LocalRef[V] {
	return LocalRef[V]{Kind: LocalOperandRef, Operand: op}
}

// NewPlaceLocalRef wraps addressable storage.
func NewPlaceLocalRef[V any](p PlaceRef[V]) LocalRef[V] {
	return LocalRef[V]{Kind: LocalPlaceRef, Place: p}
}
