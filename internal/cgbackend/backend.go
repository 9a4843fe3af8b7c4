package cgbackend

import (
	"github.com/tide-fwk/tide/internal/abi"
	"github.com/tide-fwk/tide/internal/lir"
	"github.com/tide-fwk/tide/internal/target"
)

// Context owns the in-progress module, a reference to the LirCtx, and a
// DefId → FunctionValue map populated during predefine and consulted
// during define (spec.md §4.F "Codegen context"). FnVal embeds whatever a
// concrete backend considers its function-value handle; spec.md
// explicitly allows a backend to fold this into its general Value type,
// which the LLVM backend does (internal/llvmbackend uses llvm.Value for
// both).
type Context[BB, Ty, V, FnVal any] interface {
	// LayoutOf classifies ty using this context's target data layout.
	LayoutOf(ty lir.LirTy) abi.TyAndLayout

	// FnAbiOf classifies a function's return-and-argument locals.
	FnAbiOf(retAndArgs []lir.LocalData, callConv lir.CallConv) abi.FnAbi

	// GetFn looks up an already-predefined function by its DefId.
	GetFn(meta lir.BodyMetadata) (FnVal, bool)

	// GetOrDefineFn returns the function for meta, predefining it on a
	// miss.
	GetOrDefineFn(meta lir.BodyMetadata, retAndArgs []lir.LocalData) FnVal

	// PredefineBody materializes a function declaration with the body's
	// chosen linkage/visibility/unnamed-address/calling-convention and
	// registers it in the DefId → FunctionValue map.
	PredefineBody(meta lir.BodyMetadata, retAndArgs []lir.LocalData)

	// AppendBasicBlock appends a new basic block to fn.
	AppendBasicBlock(fn FnVal, name string) BB

	// NewBuilderAt returns a builder positioned at the end of bb.
	NewBuilderAt(bb BB) Builder[BB, Ty, V, FnVal]

	// Target exposes the data layout and backend kind this context was
	// constructed against.
	Target() target.Target

	// EmitOutput writes the finalized module to disk according to this
	// context's LirCtx.EmitKind/OutputDir, additionally dumping the
	// module's textual form to LirCtx.DumpTextualIRPath when set, and
	// returns the primary artifact's path (spec.md §4.F "emit_output",
	// §4.H "emit_output initializes the host triple/features..."). Backend
	// I/O failures here are fatal per spec.md §7's BackendIOFailure.
	EmitOutput(unit *lir.LirUnit) (string, error)
}

// Builder is positioned at the end of one basic block (spec.md §4.F
// "Builder").
type Builder[BB, Ty, V, FnVal any] interface {
	// Alloca emits entry-block stack storage of exactly the requested size
	// and alignment, returning the pointer value.
	Alloca(size target.Size, align target.Align) V

	// BuildReturn emits a return terminator. A nil pointer means "ret
	// void"; a non-nil pointer returns the value it points to.
	BuildReturn(value *V)

	// BuildLoad emits a load of ty from ptr with the given alignment.
	BuildLoad(ty Ty, ptr V, align target.Align) V

	// LoadOperand loads the operand a PlaceRef refers to, choosing an
	// immediate or pair load depending on the place's backend
	// representation.
	LoadOperand(place PlaceRef[V]) OperandRef[V]

	// ConstScalarToBackendValue materializes a scalar constant at the
	// given layout: an integer constant of the layout's size for integer
	// primitives, or a constant pointer in the appropriate address space
	// for pointer primitives.
	ConstScalarToBackendValue(scalar lir.ConstScalar, layout abi.TyAndLayout) V
}
