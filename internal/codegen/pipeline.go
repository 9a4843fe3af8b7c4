package codegen

import (
	"github.com/pkg/errors"

	"github.com/tide-fwk/tide/internal/abi"
	"github.com/tide-fwk/tide/internal/cgbackend"
	"github.com/tide-fwk/tide/internal/lir"
)

// CompileLirUnit runs the two-phase compile (spec.md §4.G "Per unit"):
// every body is predefined before any body is defined, so callee handles
// are always available once a body's statements start referencing them
// (spec.md §9 "Cyclic references").
func CompileLirUnit[BB, Ty, V, FnVal any](ctx cgbackend.Context[BB, Ty, V, FnVal], unit *lir.LirUnit) error {
	bodies := unit.Bodies.AsSlice()

	for i := range bodies {
		meta := bodies[i].Metadata
		retAndArgs := bodies[i].RetAndArgs.AsSlice()
		ctx.PredefineBody(meta, retAndArgs)
	}

	for i := range bodies {
		if err := compileLirBody(ctx, &bodies[i]); err != nil {
			return errors.Wrapf(err, "codegen: defining body %q", bodies[i].Metadata.Name)
		}
	}

	return nil
}

// EmitUnit asks ctx to write unit's finalized module to disk, per spec.md
// §4.F/§4.H's "emit_output" step of the driver's data flow: the pipeline,
// not the driver, is what calls into the concrete backend for every step of
// a compile, predefine and define included.
func EmitUnit[BB, Ty, V, FnVal any](ctx cgbackend.Context[BB, Ty, V, FnVal], unit *lir.LirUnit) (string, error) {
	outPath, err := ctx.EmitOutput(unit)
	if err != nil {
		return "", errors.Wrapf(err, "codegen: emitting unit %q", unit.Metadata.UnitName)
	}
	return outPath, nil
}

// compileLirBody lowers one function body (spec.md §4.G "Per body").
func compileLirBody[BB, Ty, V, FnVal any](ctx cgbackend.Context[BB, Ty, V, FnVal], body *lir.LirBody) error {
	retAndArgs := body.RetAndArgs.AsSlice()
	fnAbi := ctx.FnAbiOf(retAndArgs, body.Metadata.CallConv)

	fn := ctx.GetOrDefineFn(body.Metadata, retAndArgs)

	entryBB := ctx.AppendBasicBlock(fn, "entry")
	entryBuilder := ctx.NewBuilderAt(entryBB)

	fx := &FnCtx[BB, Ty, V, FnVal]{
		FnAbi: fnAbi,
		Body:  body,
		Fn:    fn,
		Ctx:   ctx,
	}
	fx.CachedBBs.ResizeToElem(lir.BasicBlock(body.BasicBlocks.Len()-1), nil)
	fx.CachedBBs.Set(lir.ENTRY_BLOCK, &entryBB)

	if err := allocateLocals(fx, entryBuilder); err != nil {
		return err
	}

	for i := 0; i < body.BasicBlocks.Len(); i++ {
		if err := compileBasicBlock(fx, lir.BasicBlock(i)); err != nil {
			return err
		}
	}

	return nil
}

// allocateLocals classifies every local by layout and gives it its initial
// LocalRef state (spec.md §4.G step 6's three-case table): ZST locals need
// no storage, Memory locals get an entry-block alloca, Scalar locals start
// pending their first assignment.
func allocateLocals[BB, Ty, V, FnVal any](fx *FnCtx[BB, Ty, V, FnVal], entryBuilder cgbackend.Builder[BB, Ty, V, FnVal]) error {
	classify := func(layout abi.TyAndLayout) cgbackend.LocalRef[V] {
		switch {
		case layout.Layout.IsZST():
			return cgbackend.NewOperandLocalRef(cgbackend.NewZstOperand[V](layout))
		case layout.Layout.Repr.Kind == abi.ReprMemory:
			ptr := entryBuilder.Alloca(layout.Layout.Size, layout.Layout.AlignAbi)
			return cgbackend.NewPlaceLocalRef(cgbackend.PlaceRef[V]{Ptr: ptr, Layout: layout})
		default:
			return cgbackend.NewPendingLocalRef[V]()
		}
	}

	retAndArgs := fx.Body.RetAndArgs.AsSlice()
	for _, ld := range retAndArgs {
		layout := fx.Ctx.LayoutOf(ld.Ty)
		fx.Locals.Push(classify(layout))
	}
	locals := fx.Body.Locals.AsSlice()
	for _, ld := range locals {
		layout := fx.Ctx.LayoutOf(ld.Ty)
		fx.Locals.Push(classify(layout))
	}

	return nil
}

// compileBasicBlock lowers one block's statements then its terminator
// (spec.md §4.G "codegen_basic_block").
func compileBasicBlock[BB, Ty, V, FnVal any](fx *FnCtx[BB, Ty, V, FnVal], bb lir.BasicBlock) error {
	backendBB := getOrInsertBB(fx, bb)
	builder := fx.Ctx.NewBuilderAt(backendBB)

	data := fx.Body.BasicBlocks.Get(bb)
	for _, stmt := range data.Statements {
		if err := compileStatement(fx, builder, stmt); err != nil {
			return err
		}
	}

	return compileTerminator(fx, builder, data.Terminator)
}

// compileStatement lowers Statement::Assign (spec.md §4.G "Statement
// lowering"). Only the whole-local path is implemented; a place with
// projections is a v1 growth point.
func compileStatement[BB, Ty, V, FnVal any](fx *FnCtx[BB, Ty, V, FnVal], builder cgbackend.Builder[BB, Ty, V, FnVal], stmt lir.Statement) error {
	assign, ok := stmt.(lir.StatementAssign)
	if !ok {
		return errors.Wrap(ErrUnsupportedOperand, "codegen: unknown statement kind")
	}

	local, isWholeLocal := assign.Place.TryLocal()
	if !isWholeLocal {
		return errors.Wrap(ErrUnsupportedOperand, "codegen: place projections are not implemented in v1")
	}

	ref := fx.Locals.Get(local)
	switch ref.Kind {
	case cgbackend.LocalPlaceRef:
		return compileRvalueIntoPlace(fx, builder, assign.RValue, ref.Place)

	case cgbackend.LocalOperandRef:
		// Only legal case: a ZST being reassigned. Lower for side effects
		// and discard.
		if !ref.Operand.Layout.Layout.IsZST() {
			return errors.Wrap(ErrUnsupportedOperand, "codegen: reassigning a non-ZST OperandRef local")
		}
		_, err := compileRvalueOperand(fx, builder, assign.RValue)
		return err

	case cgbackend.LocalPendingOperandRef:
		operand, err := compileRvalueOperand(fx, builder, assign.RValue)
		if err != nil {
			return err
		}
		fx.Locals.Set(local, cgbackend.NewOperandLocalRef(operand))
		return nil

	default:
		return errors.Wrap(ErrUnsupportedOperand, "codegen: unknown LocalRef kind")
	}
}

// compileRvalueOperand lowers an RValue to an operand (spec.md §4.G
// "Rvalue lowering"). v1 only has Const.
func compileRvalueOperand[BB, Ty, V, FnVal any](fx *FnCtx[BB, Ty, V, FnVal], builder cgbackend.Builder[BB, Ty, V, FnVal], rv lir.RValue) (cgbackend.OperandRef[V], error) {
	constRv, ok := rv.(lir.RValueConst)
	if !ok {
		return cgbackend.OperandRef[V]{}, errors.Wrap(ErrUnsupportedOperand, "codegen: unsupported rvalue kind")
	}
	operand, ok := constRv.Operand.(lir.ConstOperandValue)
	if !ok {
		return cgbackend.OperandRef[V]{}, errors.Wrap(ErrUnsupportedOperand, "codegen: unsupported const operand kind")
	}

	layout := fx.Ctx.LayoutOf(operand.Ty)

	switch v := operand.Value.(type) {
	case lir.ConstValueZST:
		return cgbackend.NewZstOperand[V](layout), nil
	case lir.ConstValueScalar:
		scalarValue, ok := v.Scalar.(lir.ConstScalarValue)
		if !ok {
			return cgbackend.OperandRef[V]{}, errors.Wrap(ErrUnsupportedOperand, "codegen: unsupported const scalar kind")
		}
		if uint64(scalarValue.Value.Size) != layout.Layout.Size.Bytes() {
			return cgbackend.OperandRef[V]{}, errors.Wrapf(ErrConstScalarSizeMismatch, "scalar size %d vs layout size %d", scalarValue.Value.Size, layout.Layout.Size.Bytes())
		}
		backendVal := builder.ConstScalarToBackendValue(v.Scalar, layout)
		return cgbackend.NewImmediateOperand(backendVal, layout), nil
	default:
		return cgbackend.OperandRef[V]{}, errors.Wrap(ErrUnsupportedOperand, "codegen: unsupported const value kind")
	}
}

// compileRvalueIntoPlace lowers an RValue directly into addressable
// storage. v1's only RValue (Const) never needs a store-into-place path of
// its own beyond materializing the operand and discarding it for side
// effects, since v1's assignable Memory-layout locals are never targeted
// by a Const rvalue in practice (Const always classifies as Scalar or ZST
// per spec.md §4.D's table) — this function exists for completeness and to
// keep the dispatch in compileStatement total.
func compileRvalueIntoPlace[BB, Ty, V, FnVal any](fx *FnCtx[BB, Ty, V, FnVal], builder cgbackend.Builder[BB, Ty, V, FnVal], rv lir.RValue, _ cgbackend.PlaceRef[V]) error {
	_, err := compileRvalueOperand(fx, builder, rv)
	return err
}

// compileTerminator lowers Terminator::Return (spec.md §4.G "Terminator
// lowering"). More terminators are expected growth points.
func compileTerminator[BB, Ty, V, FnVal any](fx *FnCtx[BB, Ty, V, FnVal], builder cgbackend.Builder[BB, Ty, V, FnVal], term lir.Terminator) error {
	if _, ok := term.(lir.TerminatorReturn); !ok {
		return errors.Wrap(ErrUnsupportedOperand, "codegen: unsupported terminator kind")
	}

	switch fx.FnAbi.Ret.Mode {
	case abi.PassIgnore, abi.PassIndirect:
		// The Indirect case has already written the return through the
		// hidden pointer during the body in a complete ABI; v1 has no
		// multi-statement return flow yet, so this is an unconditional
		// "no explicit value" return (spec.md §9's third open question,
		// decision recorded in DESIGN.md).
		builder.BuildReturn(nil)
		return nil

	case abi.PassDirect:
		operand, err := consume(fx, builder, lir.RETURN_LOCAL)
		if err != nil {
			return err
		}
		switch operand.Value.Kind {
		case cgbackend.Immediate:
			v := operand.Value.Imm
			builder.BuildReturn(&v)
			return nil
		case cgbackend.Pair:
			// Assembling a backend pair/struct return is a growth point
			// (spec.md §4.G, §9's "Return modes" note); no v1 BackendRepr
			// produces Pair operands.
			return errors.Wrap(ErrUnsupportedOperand, "codegen: Pair return values are not implemented in v1")
		case cgbackend.Ref:
			// Loading the scalar layout from a place at the return site is
			// a growth point (same note as Pair above).
			return errors.Wrap(ErrUnsupportedOperand, "codegen: Ref return values are not implemented in v1")
		case cgbackend.Zst:
			builder.BuildReturn(nil)
			return nil
		default:
			return errors.Wrap(ErrUnsupportedOperand, "codegen: unknown operand value kind")
		}

	default:
		return errors.Wrap(ErrUnsupportedOperand, "codegen: unknown PassMode")
	}
}

// consume resolves a local to an operand (spec.md §4.G "consume(local)").
func consume[BB, Ty, V, FnVal any](fx *FnCtx[BB, Ty, V, FnVal], builder cgbackend.Builder[BB, Ty, V, FnVal], local lir.Local) (cgbackend.OperandRef[V], error) {
	ref := fx.Locals.Get(local)
	switch ref.Kind {
	case cgbackend.LocalOperandRef:
		return ref.Operand, nil
	case cgbackend.LocalPlaceRef:
		return builder.LoadOperand(ref.Place), nil
	case cgbackend.LocalPendingOperandRef:
		return cgbackend.OperandRef[V]{}, errors.Wrapf(ErrUseBeforeDefine, "local %d", local)
	default:
		return cgbackend.OperandRef[V]{}, errors.Wrap(ErrUnsupportedOperand, "codegen: unknown LocalRef kind")
	}
}
