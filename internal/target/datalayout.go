package target

import "fmt"

// Endianness of the target architecture.
type Endianness int

const (
	Little Endianness = iota
	Big
)

// AddressSpace identifies the address space an operation targets. Only the
// default data address space is modeled; special address spaces (e.g.
// LLVM's alternate pointer address spaces) are a growth point.
type AddressSpace uint32

// DataAddressSpace is the default address space.
const DataAddressSpace AddressSpace = 0

// VectorAlign pairs a vector width (in bits, matching the LLVM datalayout
// `vN` tag convention) with its alignment.
type VectorAlign struct {
	WidthBits uint64
	Align     AbiAndPrefAlign
}

// TargetDataLayout describes per-width alignments, pointer size, and
// address-space configuration for a target. Grounded on
// tidec_abi::target::TargetDataLayout; see DESIGN.md's Open Question #2 for
// why DefaultTargetDataLayout is big-endian rather than host-sensed (the
// zero value's Endianness is Little), and the
// `internal/target` ledger entry for why this package's byte-valued default
// alignments differ numerically from the Rust source's literal constants
// (which read as bit-widths fed directly into a byte-based constructor).
type TargetDataLayout struct {
	Endianness Endianness

	I1Align   AbiAndPrefAlign
	I8Align   AbiAndPrefAlign
	I16Align  AbiAndPrefAlign
	I32Align  AbiAndPrefAlign
	I64Align  AbiAndPrefAlign
	I128Align AbiAndPrefAlign

	F16Align  AbiAndPrefAlign
	F32Align  AbiAndPrefAlign
	F64Align  AbiAndPrefAlign
	F128Align AbiAndPrefAlign

	// PointerSizeBits is the pointer width in bits (the LLVM datalayout `p`
	// tag's first field is likewise a bit width, not a byte count).
	PointerSizeBits uint64
	PointerAlign    AbiAndPrefAlign

	AggregateAlign AbiAndPrefAlign
	VectorAlign    []VectorAlign

	InstructionAddressSpace AddressSpace
}

// DefaultTargetDataLayout returns the big-endian, 64-bit-pointer default
// layout (spec.md §4.B, tested against §8 scenario S6).
func DefaultTargetDataLayout() TargetDataLayout {
	return TargetDataLayout{
		Endianness:              Big,
		I1Align:                 NewAbiAndPrefAlign(1, 1),
		I8Align:                 NewAbiAndPrefAlign(1, 1),
		I16Align:                NewAbiAndPrefAlign(2, 2),
		I32Align:                NewAbiAndPrefAlign(4, 4),
		I64Align:                NewAbiAndPrefAlign(4, 8),
		I128Align:               NewAbiAndPrefAlign(4, 8),
		F16Align:                NewAbiAndPrefAlign(2, 2),
		F32Align:                NewAbiAndPrefAlign(4, 4),
		F64Align:                NewAbiAndPrefAlign(8, 8),
		F128Align:               NewAbiAndPrefAlign(16, 16),
		PointerSizeBits:         64,
		PointerAlign:            NewAbiAndPrefAlign(8, 8),
		AggregateAlign:          NewAbiAndPrefAlign(0, 8),
		VectorAlign: []VectorAlign{
			{WidthBits: 64, Align: NewAbiAndPrefAlign(8, 8)},
			{WidthBits: 128, Align: NewAbiAndPrefAlign(16, 16)},
		},
		InstructionAddressSpace: DataAddressSpace,
	}
}

// AsLLVMDataLayoutString serializes the layout to LLVM's data-layout string
// schema (spec.md §4.B): endianness, pointer spec, per-width integer and
// float specs, aggregate spec, vector specs, instruction address space.
func (d TargetDataLayout) AsLLVMDataLayoutString() string {
	formatAlign := func(name string, a AbiAndPrefAlign) string {
		return fmt.Sprintf("-%s:%d:%d", name, a.Abi.Bytes(), a.Pref.Bytes())
	}

	s := ""
	if d.Endianness == Little {
		s += "e"
	} else {
		s += "E"
	}

	s += fmt.Sprintf("-p:%d:%d:%d", d.PointerSizeBits, d.PointerAlign.Abi.Bytes(), d.PointerAlign.Pref.Bytes())

	s += formatAlign("i1", d.I1Align)
	s += formatAlign("i8", d.I8Align)
	s += formatAlign("i16", d.I16Align)
	s += formatAlign("i32", d.I32Align)
	s += formatAlign("i64", d.I64Align)
	s += formatAlign("i128", d.I128Align)

	s += formatAlign("f16", d.F16Align)
	s += formatAlign("f32", d.F32Align)
	s += formatAlign("f64", d.F64Align)
	s += formatAlign("f128", d.F128Align)

	s += formatAlign("a", d.AggregateAlign)

	for _, v := range d.VectorAlign {
		s += fmt.Sprintf("-v%d:%d:%d", v.WidthBits, v.Align.Abi.Bytes(), v.Align.Pref.Bytes())
	}

	s += fmt.Sprintf("-P%d", d.InstructionAddressSpace)

	return s
}

// BackendKind names the concrete codegen backend a Target is configured
// for. Only LLVM is implemented in this module (component H); Cranelift
// and GCC are named so the data-layout/triple serialization switch in
// Target has somewhere to grow without an interface change.
type BackendKind int

const (
	LLVM BackendKind = iota
	Cranelift
	GCC
)

func (k BackendKind) String() string {
	switch k {
	case LLVM:
		return "llvm"
	case Cranelift:
		return "cranelift"
	case GCC:
		return "gcc"
	default:
		return "unknown"
	}
}
