// Package codegen implements the two-phase predefine/define codegen
// pipeline (spec.md §4.G): per-unit compilation, per-function FnCtx,
// local-allocation policy, and basic-block/statement/terminator lowering
// against any backend satisfying internal/cgbackend's contracts.
package codegen

import "github.com/pkg/errors"

// These are the fatal-invariant error kinds from spec.md §7 that the
// pipeline itself can raise (AlignError and BackendIOFailure are raised by
// internal/target and internal/llvmbackend respectively; InvalidAlignment
// is a target.AlignError from that package).

// ErrUseBeforeDefine is raised when consume observes a PendingOperandRef
// whose owning local was never assigned: malformed LIR.
var ErrUseBeforeDefine = errors.New("codegen: use of local before its first assignment")

// ErrUnsupportedOperand is raised when v1 lowering encounters projections,
// unimplemented rvalues, or a non-immediate return value it has no
// lowering for yet. It signals a growth point, not a bug.
var ErrUnsupportedOperand = errors.New("codegen: unsupported operand shape for v1 lowering")

// ErrConstScalarSizeMismatch is raised when a RawScalarValue's declared
// size disagrees with the layout size it is being materialized against.
var ErrConstScalarSizeMismatch = errors.New("codegen: const scalar size does not match layout size")
