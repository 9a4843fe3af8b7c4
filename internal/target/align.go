// Package target models the codegen target: endianness, per-width
// alignments, pointer size, address spaces, and their serialization to a
// backend's native data-layout string.
package target

import (
	"fmt"
	"math/bits"
)

// AlignError is the configuration-time failure mode of AlignFromBytes: a
// caller handed in a value that cannot be a valid alignment.
type AlignError struct {
	Value    uint64
	TooLarge bool
}

func (e *AlignError) Error() string {
	if e.TooLarge {
		return fmt.Sprintf("alignment too large: %d", e.Value)
	}
	return fmt.Sprintf("alignment is not a power of two: %d", e.Value)
}

func notPowerOfTwo(v uint64) error { return &AlignError{Value: v} }
func tooLarge(v uint64) error      { return &AlignError{Value: v, TooLarge: true} }

// Align is the alignment of a type in bytes, always a power of two, with
// one sentinel exception: Align(0) means "natural/unconstrained" (see
// DESIGN.md's Open Question decision #1).
type Align struct {
	bytes uint64
}

// AlignFromBytes constructs an Align from a byte count. 0 is accepted as a
// sentinel; any other non-power-of-two value is NotPowerOfTwo, and a value
// greater than math.MaxUint64/8 is TooLarge (mirrors
// tidec_abi::size_and_align::Align::from_bytes exactly, including its
// overflow-avoidance special case for 0).
func AlignFromBytes(align uint64) (Align, error) {
	if align == 0 {
		return Align{bytes: 0}, nil
	}
	tz := bits.TrailingZeros64(align)
	if align != (uint64(1) << uint(tz)) {
		return Align{}, notPowerOfTwo(align)
	}
	if align > ^uint64(0)/8 {
		return Align{}, tooLarge(align)
	}
	return Align{bytes: align}, nil
}

// MustAlignFromBytes panics on error; for use with compile-time-known
// constants such as the default data layout below.
func MustAlignFromBytes(align uint64) Align {
	a, err := AlignFromBytes(align)
	if err != nil {
		panic(err)
	}
	return a
}

// AlignFromBits rounds bits up to a byte count via SizeFromBits, then
// applies AlignFromBytes.
func AlignFromBits(bitCount uint64) (Align, error) {
	return AlignFromBytes(SizeFromBits(bitCount).Bytes())
}

// Bytes returns the alignment in bytes. 0 denotes "natural".
func (a Align) Bytes() uint64 { return a.bytes }

// Bits returns the alignment in bits.
func (a Align) Bits() uint64 { return a.bytes * 8 }

// AbiAndPrefAlign pairs the ABI-required alignment with the (potentially
// larger) preferred alignment for a type.
type AbiAndPrefAlign struct {
	Abi  Align
	Pref Align
}

// NewAbiAndPrefAlign builds a pair from byte counts, panicking if either is
// not a valid alignment. Mirrors tidec_abi::size_and_align::
// AbiAndPrefAlign::new, which likewise unwraps.
func NewAbiAndPrefAlign(abiBytes, prefBytes uint64) AbiAndPrefAlign {
	return AbiAndPrefAlign{
		Abi:  MustAlignFromBytes(abiBytes),
		Pref: MustAlignFromBytes(prefBytes),
	}
}

// Size is the size of a type in whole bytes.
type Size struct {
	bytes uint64
}

// SizeFromBits rounds bits up to the next byte boundary.
func SizeFromBits(bitCount uint64) Size {
	return Size{bytes: bitCount/8 + ((bitCount%8 + 7) / 8)}
}

// SizeFromBytes builds a Size directly from a byte count.
func SizeFromBytes(byteCount uint64) Size { return Size{bytes: byteCount} }

// Bytes returns the size in bytes.
func (s Size) Bytes() uint64 { return s.bytes }

// Bits returns the size in bits.
func (s Size) Bits() uint64 { return s.bytes * 8 }
