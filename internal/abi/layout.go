// Package abi implements the layout and calling-convention classification
// subsystem: mapping an LIR type to its (size, align, backend
// representation), and a function's return/argument types to a FnAbi via
// PassMode classification (spec.md §4.D, §4.E).
package abi

import (
	"github.com/tide-fwk/tide/internal/lir"
	"github.com/tide-fwk/tide/internal/target"
)

// Primitive enumerates the integer/float/pointer kinds a Scalar
// BackendRepr can hold. v1 only produces the integer primitives the LirTy
// set names; Float and Pointer are named for the growth point spec.md §3
// calls out ("Extensibility is expected... but is not required for v1").
type Primitive int

const (
	PrimitiveI8 Primitive = iota
	PrimitiveI16
	PrimitiveI32
	PrimitiveI64
	PrimitiveI128
	PrimitiveFloat
	PrimitivePointer
)

// BackendReprKind distinguishes a Scalar representation (one primitive, an
// SSA value) from Memory (addressable storage). A future ScalarPair is
// reserved but not implemented in v1 (spec.md §3).
type BackendReprKind int

const (
	ReprScalar BackendReprKind = iota
	ReprMemory
)

// BackendRepr is how a type is represented at the backend boundary.
type BackendRepr struct {
	Kind      BackendReprKind
	Primitive Primitive // meaningful only when Kind == ReprScalar
	AddrSpace target.AddressSpace
}

// Layout is a type's size and alignment plus its backend representation.
type Layout struct {
	Size      target.Size
	AlignAbi  target.Align
	AlignPref target.Align
	Repr      BackendRepr
}

// IsZST reports whether this layout occupies zero storage. A Memory
// layout with size 0 is a ZST; a Scalar layout is never a ZST (spec.md
// §3's layout invariants).
func (l Layout) IsZST() bool {
	return l.Repr.Kind == ReprMemory && l.Size.Bytes() == 0
}

// TyAndLayout pairs an LirTy with its computed Layout.
type TyAndLayout struct {
	Ty     lir.LirTy
	Layout Layout
}

// ComputeLayout maps an LirTy to its TyAndLayout using the per-width
// alignments carried by the target's data layout (spec.md §4.D's table).
// The function is pure, deterministic, and total over the v1 LirTy set;
// callers that need memoization may cache by LirTy themselves (caching is
// explicitly an implementation concern, not a contract, per spec.md §4.D).
func ComputeLayout(dl target.TargetDataLayout, ty lir.LirTy) TyAndLayout {
	scalar := func(size uint64, align target.AbiAndPrefAlign, prim Primitive) TyAndLayout {
		return TyAndLayout{
			Ty: ty,
			Layout: Layout{
				Size:      target.SizeFromBytes(size),
				AlignAbi:  align.Abi,
				AlignPref: align.Pref,
				Repr:      BackendRepr{Kind: ReprScalar, Primitive: prim},
			},
		}
	}

	switch ty {
	case lir.I8:
		return scalar(1, dl.I8Align, PrimitiveI8)
	case lir.I16:
		return scalar(2, dl.I16Align, PrimitiveI16)
	case lir.I32:
		return scalar(4, dl.I32Align, PrimitiveI32)
	case lir.I64:
		return scalar(8, dl.I64Align, PrimitiveI64)
	case lir.I128:
		return scalar(16, dl.I128Align, PrimitiveI128)
	case lir.Metadata:
		one := target.MustAlignFromBytes(1)
		return TyAndLayout{
			Ty: ty,
			Layout: Layout{
				Size:      target.SizeFromBytes(0),
				AlignAbi:  one,
				AlignPref: one,
				Repr:      BackendRepr{Kind: ReprMemory},
			},
		}
	default:
		panic("abi: ComputeLayout: unhandled LirTy")
	}
}
