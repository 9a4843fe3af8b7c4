package llvmbackend

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"tinygo.org/x/go-llvm"

	"github.com/tide-fwk/tide/internal/lir"
)

var llvmInitOnce sync.Once

func ensureTargetsInitialized() {
	llvmInitOnce.Do(func() {
		llvm.InitializeAllTargetInfos()
		llvm.InitializeAllTargets()
		llvm.InitializeAllTargetMCs()
		llvm.InitializeAllAsmParsers()
		llvm.InitializeAllAsmPrinters()
	})
}

// EmitOutput configures a target machine from c's LirCtx.Target (the host
// triple when the Target carries none) and writes
// the module to <OutputDir>/<unitName>.<ext> in the LirCtx's EmitKind,
// additionally dumping the module's textual form to DumpTextualIRPath when
// set (spec.md §4.C "LirCtx", §4.F "emit_output").
func (c *Context) EmitOutput(unit *lir.LirUnit) (string, error) {
	ensureTargetsInitialized()

	if c.lirCtx.DumpTextualIRPath != "" {
		if err := os.WriteFile(c.lirCtx.DumpTextualIRPath, []byte(DumpIR(c)), 0o644); err != nil {
			return "", errors.Wrapf(ErrBackendIO, "llvmbackend: writing textual IR to %s", c.lirCtx.DumpTextualIRPath)
		}
	}

	triple, ok := c.lirCtx.Target.TripleString()
	if !ok {
		triple = llvm.DefaultTargetTriple()
	}

	llvmTarget, err := llvm.GetTargetFromTriple(triple)
	if err != nil {
		return "", errors.Wrapf(ErrUnsupportedTriple, "llvmbackend: %s: %s", triple, err)
	}

	tm := llvmTarget.CreateTargetMachine(triple, "generic", "",
		llvm.CodeGenLevelDefault, llvm.RelocDefault, llvm.CodeModelDefault)
	defer tm.Dispose()

	var fileType llvm.CodeGenFileType
	var ext string
	switch c.lirCtx.EmitKind {
	case lir.EmitAssembly:
		fileType, ext = llvm.AssemblyFile, ".s"
	default:
		fileType, ext = llvm.ObjectFile, ".o"
	}

	buf, err := tm.EmitToMemoryBuffer(c.module, fileType)
	if err != nil {
		return "", errors.Wrapf(ErrBackendIO, "llvmbackend: emit failed: %s", err)
	}

	outPath := filepath.Join(c.lirCtx.OutputDir, unit.Metadata.UnitName+ext)
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrapf(ErrBackendIO, "llvmbackend: writing %s", outPath)
	}

	return outPath, nil
}

// VerifyModule runs LLVM's own verifier over c's module, surfacing the
// first structural defect it finds as an error instead of letting a later
// stage segfault on malformed IR.
func VerifyModule(c *Context) error {
	if err := llvm.VerifyModule(c.module, llvm.ReturnStatusAction); err != nil {
		return errors.Wrap(ErrBackendIO, err.Error())
	}
	return nil
}

// DumpIR renders the in-progress module as textual LLVM IR, primarily for
// the DumpTextualIRPath debugging knob (spec.md §4.C).
func DumpIR(c *Context) string {
	return c.module.String()
}
