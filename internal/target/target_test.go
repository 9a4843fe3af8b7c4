package target_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tide-fwk/tide/internal/target"
)

func TestAlignFromBytesZeroIsSentinel(t *testing.T) {
	a, err := target.AlignFromBytes(0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), a.Bytes())
}

func TestAlignFromBytesNotPowerOfTwo(t *testing.T) {
	_, err := target.AlignFromBytes(3)
	require.Error(t, err)
	var alignErr *target.AlignError
	require.ErrorAs(t, err, &alignErr)
	require.False(t, alignErr.TooLarge)
}

func TestAlignFromBytesTooLarge(t *testing.T) {
	_, err := target.AlignFromBytes(uint64(1) << 63)
	require.Error(t, err)
	var alignErr *target.AlignError
	require.ErrorAs(t, err, &alignErr)
	require.True(t, alignErr.TooLarge)
}

func TestAlignFromBytesPowerOfTwoOK(t *testing.T) {
	for _, v := range []uint64{1, 2, 4, 8, 16, 32, 64, 128} {
		a, err := target.AlignFromBytes(v)
		require.NoError(t, err)
		require.Equal(t, v, a.Bytes())
	}
}

func TestSizeFromBitsRoundsUpToByteBoundary(t *testing.T) {
	require.Equal(t, uint64(1), target.SizeFromBits(7).Bytes())
	require.Equal(t, uint64(3), target.SizeFromBits(17).Bytes())
	require.Equal(t, uint64(0), target.SizeFromBits(0).Bytes())
	require.Equal(t, uint64(1), target.SizeFromBits(8).Bytes())
}

func TestDefaultDataLayoutString(t *testing.T) {
	s := target.DefaultTargetDataLayout().AsLLVMDataLayoutString()

	require.True(t, strings.HasPrefix(s, "E"), "expected big-endian prefix, got %q", s)
	require.Contains(t, s, "-p:64:8:8")
	require.Contains(t, s, "-i32:4:4")
	require.Contains(t, s, "-i64:4:8")
	require.Contains(t, s, "-v64:8:8")
	require.True(t, strings.HasSuffix(s, "-P0"), "expected -P0 suffix, got %q", s)
}

func TestTargetTripleRoundTrip(t *testing.T) {
	const s = "x86_64-unknown-linux-gnu-gnu"
	tt, err := target.ParseTargetTriple(s)
	require.NoError(t, err)
	require.Equal(t, "x86_64", tt.Arch)
	require.Equal(t, s, tt.String())
}

func TestTargetTripleParseRejectsWrongArity(t *testing.T) {
	_, err := target.ParseTargetTriple("x86_64-unknown-linux")
	require.Error(t, err)
}
