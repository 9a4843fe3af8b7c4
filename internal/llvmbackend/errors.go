// Package llvmbackend is the concrete reference realization of
// internal/cgbackend against the system LLVM installation, via
// tinygo.org/x/go-llvm (spec.md §4.H). BB=llvm.BasicBlock, Ty=llvm.Type,
// V=llvm.Value, FnVal=llvm.Value: a function handle is just a Value whose
// type happens to be a function pointer, so FnVal folds into V here exactly
// as internal/cgbackend's doc comment anticipates.
package llvmbackend

import "github.com/pkg/errors"

// ErrBackendIO is raised when VerifyModule rejects the module, or when
// writing the textual IR dump, emitting object/assembly, or writing the
// artifact fails. It stays its own sentinel (rather than joining internal/
// codegen's error family) because it is raised at a different phase: after
// compilation, while checking and writing output.
var ErrBackendIO = errors.New("llvmbackend: failed to emit compiled output")

// ErrUnsupportedTriple is raised when LLVM's target lookup rejects the
// triple outright.
var ErrUnsupportedTriple = errors.New("llvmbackend: target triple not supported by the installed LLVM")
