package lir

import "github.com/tide-fwk/tide/internal/idx"

// LocalData is the declared type and mutability of one local.
type LocalData struct {
	Ty      LirTy
	Mutable bool
}

// LirBody is a function's body in LIR: metadata, the return-and-argument
// locals, the rest of the locals, and the basic blocks (spec.md §3
// "Body"). RetAndArgs[RETURN_LOCAL] is the return slot; the remaining
// entries are formal parameters in declaration order.
type LirBody struct {
	Metadata   BodyMetadata
	RetAndArgs idx.IdxVec[Local, LocalData]
	Locals     idx.IdxVec[Local, LocalData]
	BasicBlocks idx.IdxVec[BasicBlock, BasicBlockData]
}

// NumArgs returns the number of formal parameters (RetAndArgs minus the
// return slot).
func (b *LirBody) NumArgs() int {
	return b.RetAndArgs.Len() - 1
}

// ReturnLocalData returns the LocalData of the return slot.
func (b *LirBody) ReturnLocalData() LocalData {
	return *b.RetAndArgs.Get(RETURN_LOCAL)
}

// LocalDataOf looks up a local's declared data wherever it lives: among
// RetAndArgs if its index falls in that range, otherwise among Locals.
func (b *LirBody) LocalDataOf(l Local) LocalData {
	if n := b.RetAndArgs.Len(); int(l) < n {
		return *b.RetAndArgs.Get(l)
	}
	return *b.Locals.Get(Local(int(l) - b.RetAndArgs.Len()))
}
