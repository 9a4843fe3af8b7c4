package llvmbackend

import (
	"tinygo.org/x/go-llvm"

	"github.com/tide-fwk/tide/internal/abi"
	"github.com/tide-fwk/tide/internal/lir"
)

// llvmTypeOfLirTy maps an LIR type to its LLVM representation directly,
// independent of ABI classification. Only the scalar integer kinds and the
// zero-sized Metadata marker exist in v1 (spec.md §4.C).
func (c *Context) llvmTypeOfLirTy(ty lir.LirTy) llvm.Type {
	switch ty {
	case lir.I8:
		return c.llctx.Int8Type()
	case lir.I16:
		return c.llctx.Int16Type()
	case lir.I32:
		return c.llctx.Int32Type()
	case lir.I64:
		return c.llctx.Int64Type()
	case lir.I128:
		return c.llctx.IntType(128)
	case lir.Metadata:
		return c.llctx.StructType(nil, false)
	default:
		panic("llvmbackend: unhandled lir.LirTy")
	}
}

// llvmTypeOfLayout maps a computed layout to the LLVM type its backend
// representation should carry, which for the v1 BackendRepr set always
// tracks the underlying LirTy directly.
func (c *Context) llvmTypeOfLayout(layout abi.TyAndLayout) llvm.Type {
	return c.llvmTypeOfLirTy(layout.Ty)
}

// llvmArgTypesOf builds the LLVM parameter type list an FnAbi requires:
// Ignore args are dropped entirely, Indirect args become pointers in the
// default address space, and Direct args pass their scalar type by value
// (spec.md §4.D "PassMode").
// A full ABI also prepends a hidden pointer parameter when fnAbi.Ret.Mode
// is Indirect; internal/codegen does not synchronize writes through such a
// pointer yet (its known gap, recorded in DESIGN.md), so that parameter is
// intentionally not added here either.
func (c *Context) llvmArgTypesOf(fnAbi abi.FnAbi) []llvm.Type {
	params := make([]llvm.Type, 0, len(fnAbi.Args))
	for _, arg := range fnAbi.Args {
		switch arg.Mode {
		case abi.PassIgnore:
			continue
		case abi.PassIndirect:
			params = append(params, llvm.PointerType(c.llvmTypeOfLayout(arg.Layout), 0))
		case abi.PassDirect:
			params = append(params, c.llvmTypeOfLayout(arg.Layout))
		}
	}
	return params
}

// llvmReturnTypeOf builds the LLVM return type an FnAbi requires: Ignore
// and Indirect both return void, Direct returns the scalar type. No hidden
// return-pointer parameter is added for Indirect (see llvmArgTypesOf).
func (c *Context) llvmReturnTypeOf(fnAbi abi.FnAbi) llvm.Type {
	switch fnAbi.Ret.Mode {
	case abi.PassDirect:
		return c.llvmTypeOfLayout(fnAbi.Ret.Layout)
	default:
		return c.llctx.VoidType()
	}
}
