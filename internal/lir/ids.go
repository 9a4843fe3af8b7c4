package lir

// DefId is an opaque, unit-unique identifier for a body. The DefId → name
// map inside a LirUnit is a bijection (spec.md §3 invariant ii).
type DefId int

// Local is a dense index into a function's local table. RETURN_LOCAL is
// always index 0.
type Local int

// RETURN_LOCAL is the index of the return slot, always the first local.
const RETURN_LOCAL Local = 0

// BasicBlock is a dense index into a body's block table. ENTRY_BLOCK is
// always index 0.
type BasicBlock int

// ENTRY_BLOCK is the index of the entry block, always the first block.
const ENTRY_BLOCK BasicBlock = 0
