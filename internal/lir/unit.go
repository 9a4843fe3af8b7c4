package lir

import (
	"github.com/tide-fwk/tide/internal/idx"
	"github.com/tide-fwk/tide/internal/target"
)

// LirUnit is a single compilation unit: its metadata and the bodies it
// defines, indexed densely by DefId (spec.md §3 "Unit"). A LirUnit is
// owned by the driver and borrowed immutably by the pipeline during
// compilation.
type LirUnit struct {
	Metadata UnitMetadata
	Bodies   idx.IdxVec[DefId, LirBody]
}

// EmitKind selects the emitted artifact kind (spec.md §6).
type EmitKind int

const (
	EmitObject EmitKind = iota
	EmitAssembly
)

// LirCtx owns the Target and emit options for the whole compile; it is
// consumed by reference (spec.md §3 "Ownership & lifecycles").
type LirCtx struct {
	Target target.Target
	// EmitKind selects object or assembly output.
	EmitKind EmitKind
	// OutputDir is the directory emitted artifacts are written to.
	OutputDir string
	// DumpTextualIRPath, if non-empty, asks the backend to also write the
	// module's textual IR there for debugging (spec.md §6).
	DumpTextualIRPath string
}

// NewLirCtx builds a LirCtx around t with the given emit kind and output
// directory.
func NewLirCtx(t target.Target, emitKind EmitKind, outputDir string) LirCtx {
	return LirCtx{Target: t, EmitKind: emitKind, OutputDir: outputDir}
}
