package llvmbackend

import (
	"tinygo.org/x/go-llvm"

	"github.com/tide-fwk/tide/internal/abi"
	"github.com/tide-fwk/tide/internal/cgbackend"
	"github.com/tide-fwk/tide/internal/lir"
	"github.com/tide-fwk/tide/internal/target"
)

// Context is the LLVM realization of cgbackend.Context[llvm.BasicBlock,
// llvm.Type, llvm.Value, llvm.Value] (spec.md §4.H). It owns one LLVM
// context/module pair, and a reference to the LirCtx it was built from, for
// the lifetime of a single LirUnit compile (spec.md §4.F "Codegen context").
type Context struct {
	llctx  llvm.Context
	module llvm.Module
	lirCtx lir.LirCtx

	fns map[lir.DefId]llvm.Value
}

var _ cgbackend.Context[llvm.BasicBlock, llvm.Type, llvm.Value, llvm.Value] = (*Context)(nil)

// NewContext creates a fresh LLVM context and an empty module named after
// the compilation unit, configured with lirCtx.Target's data layout string
// (spec.md §4.H "new_context"). It retains lirCtx so a later EmitOutput call
// can read its EmitKind/OutputDir/DumpTextualIRPath without the driver
// having to pass them again.
func NewContext(lirCtx lir.LirCtx, unitName string) *Context {
	llctx := llvm.NewContext()
	module := llctx.NewModule(unitName)
	module.SetDataLayout(lirCtx.Target.DataLayoutString())
	if triple, ok := lirCtx.Target.TripleString(); ok {
		module.SetTarget(triple)
	}

	return &Context{
		llctx:  llctx,
		module: module,
		lirCtx: lirCtx,
		fns:    make(map[lir.DefId]llvm.Value),
	}
}

// Dispose releases the underlying LLVM context. Callers own the Context's
// lifetime exactly as they own a *os.File.
func (c *Context) Dispose() {
	c.llctx.Dispose()
}

func (c *Context) LayoutOf(ty lir.LirTy) abi.TyAndLayout {
	return abi.ComputeLayout(c.lirCtx.Target.DataLayout, ty)
}

func (c *Context) FnAbiOf(retAndArgs []lir.LocalData, callConv lir.CallConv) abi.FnAbi {
	return abi.FnAbiOf(c.lirCtx.Target.DataLayout, retAndArgs, callConv)
}

func (c *Context) GetFn(meta lir.BodyMetadata) (llvm.Value, bool) {
	fn, ok := c.fns[meta.DefId]
	return fn, ok
}

func (c *Context) GetOrDefineFn(meta lir.BodyMetadata, retAndArgs []lir.LocalData) llvm.Value {
	if fn, ok := c.fns[meta.DefId]; ok {
		return fn
	}
	c.PredefineBody(meta, retAndArgs)
	return c.fns[meta.DefId]
}

// PredefineBody declares the LLVM function for meta with its LIR-derived
// signature and linkage/visibility/calling-convention metadata, before any
// body (its own or any callee's) is defined (spec.md §4.H "predefine").
func (c *Context) PredefineBody(meta lir.BodyMetadata, retAndArgs []lir.LocalData) {
	if _, ok := c.fns[meta.DefId]; ok {
		return
	}

	fnAbi := c.FnAbiOf(retAndArgs, meta.CallConv)
	fnType := llvm.FunctionType(c.llvmReturnTypeOf(fnAbi), c.llvmArgTypesOf(fnAbi), false)
	fn := llvm.AddFunction(c.module, meta.Name, fnType)

	fn.SetLinkage(llvmLinkageOf(meta.Linkage))
	fn.SetVisibility(llvmVisibilityOf(meta.Visibility))
	fn.SetUnnamedAddr(meta.UnnamedAddress != lir.UnnamedAddressNone)
	fn.SetFunctionCallConv(llvmCallConvOf(meta.CallConv))

	c.fns[meta.DefId] = fn
}

func (c *Context) AppendBasicBlock(fn llvm.Value, name string) llvm.BasicBlock {
	return c.llctx.AddBasicBlock(fn, name)
}

func (c *Context) NewBuilderAt(bb llvm.BasicBlock) cgbackend.Builder[llvm.BasicBlock, llvm.Type, llvm.Value, llvm.Value] {
	b := c.llctx.NewBuilder()
	b.SetInsertPointAtEnd(bb)
	return &Builder{ctx: c, llb: b}
}

func (c *Context) Target() target.Target {
	return c.lirCtx.Target
}

func llvmLinkageOf(l lir.Linkage) llvm.Linkage {
	switch l {
	case lir.LinkageInternal:
		return llvm.InternalLinkage
	case lir.LinkageWeak:
		return llvm.WeakAnyLinkage
	case lir.LinkageLinkOnce:
		return llvm.LinkOnceAnyLinkage
	default:
		return llvm.ExternalLinkage
	}
}

func llvmVisibilityOf(v lir.Visibility) llvm.Visibility {
	switch v {
	case lir.VisibilityHidden:
		return llvm.HiddenVisibility
	case lir.VisibilityProtected:
		return llvm.ProtectedVisibility
	default:
		return llvm.DefaultVisibility
	}
}

func llvmCallConvOf(cc lir.CallConv) llvm.CallConv {
	switch cc {
	case lir.CallConvFast:
		return llvm.FastCallConv
	case lir.CallConvCold:
		return llvm.ColdCallConv
	default:
		return llvm.CCallConv
	}
}
