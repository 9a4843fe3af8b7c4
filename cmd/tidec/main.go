// Command tidec drives the retargetable codegen pipeline end to end: it
// builds one in-process LirUnit, compiles it through internal/codegen
// against internal/llvmbackend, and writes the requested artifact.
//
// A real front end would hand tidec a LirUnit built from parsed source; this
// driver's demo unit stands in for that front end so the whole pipeline can
// be exercised from the command line.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"tinygo.org/x/go-llvm"

	"github.com/tide-fwk/tide/internal/codegen"
	"github.com/tide-fwk/tide/internal/lir"
	"github.com/tide-fwk/tide/internal/llvmbackend"
	"github.com/tide-fwk/tide/internal/target"
	"github.com/tide-fwk/tide/internal/tidelog"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tidec [flags]\n")
		fmt.Fprintf(os.Stderr, "\nCompiles a built-in demo unit and writes the result to -out.\n")
		flag.PrintDefaults()
	}

	unitName := flag.String("unit", "demo", "name of the compilation unit")
	outDir := flag.String("out", ".", "directory object/assembly output is written to")
	asm := flag.Bool("S", false, "emit textual assembly instead of an object file")
	returnValue := flag.Uint64("value", 42, "the constant the demo unit's main() returns")
	dumpIR := flag.Bool("dump-ir", false, "also write the module's textual LLVM IR alongside the emitted artifact")
	flag.Parse()

	logger, err := tidelog.Init("TIDEC")
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidec: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Infow("starting compile", "unit", *unitName)

	emitKind := lir.EmitObject
	if *asm {
		emitKind = lir.EmitAssembly
	}

	unit := demoUnit(*unitName, *returnValue)
	t := target.NewTarget(target.LLVM)

	lirCtx := lir.NewLirCtx(t, emitKind, *outDir)
	if *dumpIR {
		lirCtx.DumpTextualIRPath = filepath.Join(*outDir, *unitName+".ll")
	}

	llctx := llvmbackend.NewContext(lirCtx, *unitName)
	defer llctx.Dispose()

	if err := codegen.CompileLirUnit[llvm.BasicBlock, llvm.Type, llvm.Value, llvm.Value](llctx, &unit); err != nil {
		logger.Errorw("compilation failed", "error", err)
		os.Exit(1)
	}

	if err := llvmbackend.VerifyModule(llctx); err != nil {
		logger.Errorw("module verification failed", "error", err)
		os.Exit(1)
	}

	outPath, err := codegen.EmitUnit[llvm.BasicBlock, llvm.Type, llvm.Value, llvm.Value](llctx, &unit)
	if err != nil {
		logger.Errorw("emitting output failed", "error", err)
		os.Exit(1)
	}

	logger.Infow("wrote output", "path", outPath)
}

// demoUnit builds a single-function LirUnit: `fn main() -> i32 { return
// value; }` (spec.md §8 S1/S2), used to exercise the full predefine/define
// pipeline from the command line without a front end.
func demoUnit(unitName string, value uint64) lir.LirUnit {
	var unit lir.LirUnit
	unit.Metadata = lir.UnitMetadata{UnitName: unitName}

	defID := unit.Bodies.Push(lir.LirBody{})

	var body lir.LirBody
	body.Metadata = lir.BodyMetadata{
		DefId:   defID,
		Name:    "main",
		Kind:    lir.BodyKindFunction,
		Linkage: lir.LinkageExternal,
	}
	body.RetAndArgs.Push(lir.LocalData{Ty: lir.I32})
	body.BasicBlocks.Push(lir.BasicBlockData{
		Statements: []lir.Statement{
			lir.StatementAssign{
				Place: lir.Place{Local: lir.RETURN_LOCAL},
				RValue: lir.RValueConst{
					Operand: lir.ConstOperandValue{
						Ty: lir.I32,
						Value: lir.ConstValueScalar{
							Scalar: lir.ConstScalarValue{
								Value: lir.RawScalarValue{DataLo: value, Size: 4},
							},
						},
					},
				},
			},
		},
		Terminator: lir.TerminatorReturn{},
	})
	unit.Bodies.Set(defID, body)

	return unit
}
