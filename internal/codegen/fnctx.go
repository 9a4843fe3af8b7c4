package codegen

import (
	"strconv"

	"github.com/tide-fwk/tide/internal/abi"
	"github.com/tide-fwk/tide/internal/cgbackend"
	"github.com/tide-fwk/tide/internal/idx"
	"github.com/tide-fwk/tide/internal/lir"
)

// FnCtx is the per-function state the pipeline threads through basic-block,
// statement, and terminator lowering (spec.md §4.G step 5).
type FnCtx[BB, Ty, V, FnVal any] struct {
	FnAbi     abi.FnAbi
	Body      *lir.LirBody
	Fn        FnVal
	Ctx       cgbackend.Context[BB, Ty, V, FnVal]
	Locals    idx.IdxVec[lir.Local, cgbackend.LocalRef[V]]
	CachedBBs idx.IdxVec[lir.BasicBlock, *BB]
}

// getOrInsertBB fetches the backend block for bb, creating and memoizing it
// on first reference. This prevents duplicating blocks when a terminator
// references a block that hasn't been walked to yet (spec.md §4.G
// "codegen_basic_block").
func getOrInsertBB[BB, Ty, V, FnVal any](fx *FnCtx[BB, Ty, V, FnVal], bb lir.BasicBlock) BB {
	slot := fx.CachedBBs.EnsureContainsElem(bb, func() *BB { return nil })
	if *slot == nil {
		backendBB := fx.Ctx.AppendBasicBlock(fx.Fn, blockName(bb))
		*slot = &backendBB
	}
	return **slot
}

func blockName(bb lir.BasicBlock) string {
	if bb == lir.ENTRY_BLOCK {
		return "entry"
	}
	return "bb" + strconv.Itoa(int(bb))
}
