package abi

import (
	"github.com/tide-fwk/tide/internal/lir"
	"github.com/tide-fwk/tide/internal/target"
)

// PassMode classifies how a value crosses the function boundary (spec.md
// §4.E).
type PassMode int

const (
	// PassDirect passes the value in registers/SSA.
	PassDirect PassMode = iota
	// PassIndirect means a hidden pointer carries the value: a destination
	// for the return, or a hidden-pointer argument for a large parameter.
	PassIndirect
	// PassIgnore drops the slot entirely.
	PassIgnore
)

// ArgAbi is one argument's (or the return's) layout and pass mode.
type ArgAbi struct {
	Layout TyAndLayout
	Mode   PassMode
}

func classify(l TyAndLayout) PassMode {
	if l.Layout.IsZST() {
		return PassIgnore
	}
	if l.Layout.Repr.Kind == ReprScalar {
		return PassDirect
	}
	return PassIndirect
}

// FnAbi is a function's full calling-convention classification: its return
// ABI plus each argument's ABI, alongside the call conv both are classified
// under (SPEC_FULL.md item 4: CallConv threaded through FnAbi, not just
// body metadata, so backends can cross-check the two independent copies).
type FnAbi struct {
	Ret      ArgAbi
	Args     []ArgAbi
	CallConv lir.CallConv
}

// FnAbiOf classifies a function's return-and-argument locals into a FnAbi
// (spec.md §4.E). retAndArgs[0] is the return slot; the remainder are
// formal parameters in declaration order, matching LirBody.RetAndArgs.
func FnAbiOf(dl target.TargetDataLayout, retAndArgs []lir.LocalData, callConv lir.CallConv) FnAbi {
	ret := ArgAbi{Layout: ComputeLayout(dl, retAndArgs[0].Ty)}
	ret.Mode = classify(ret.Layout)

	args := make([]ArgAbi, 0, len(retAndArgs)-1)
	for _, ld := range retAndArgs[1:] {
		l := ComputeLayout(dl, ld.Ty)
		args = append(args, ArgAbi{Layout: l, Mode: classify(l)})
	}

	return FnAbi{Ret: ret, Args: args, CallConv: callConv}
}
