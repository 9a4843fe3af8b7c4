package abi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tide-fwk/tide/internal/abi"
	"github.com/tide-fwk/tide/internal/lir"
	"github.com/tide-fwk/tide/internal/target"
)

func TestComputeLayoutPrimitiveSizes(t *testing.T) {
	dl := target.DefaultTargetDataLayout()

	cases := []struct {
		ty   lir.LirTy
		size uint64
	}{
		{lir.I8, 1},
		{lir.I16, 2},
		{lir.I32, 4},
		{lir.I64, 8},
		{lir.I128, 16},
		{lir.Metadata, 0},
	}

	for _, c := range cases {
		l := abi.ComputeLayout(dl, c.ty)
		require.Equal(t, c.size, l.Layout.Size.Bytes(), "ty=%v", c.ty)
		require.Contains(t, []uint64{0, 1, 2, 4, 8, 16, 32, 64, 128}, l.Layout.AlignAbi.Bytes())
	}
}

func TestMetadataIsZSTWithMemoryRepr(t *testing.T) {
	dl := target.DefaultTargetDataLayout()
	l := abi.ComputeLayout(dl, lir.Metadata)
	require.True(t, l.Layout.IsZST())
	require.Equal(t, abi.ReprMemory, l.Layout.Repr.Kind)
}

func TestScalarsAreNeverZST(t *testing.T) {
	dl := target.DefaultTargetDataLayout()
	for _, ty := range []lir.LirTy{lir.I8, lir.I16, lir.I32, lir.I64, lir.I128} {
		l := abi.ComputeLayout(dl, ty)
		require.False(t, l.Layout.IsZST())
	}
}

func TestFnAbiOfArgCount(t *testing.T) {
	dl := target.DefaultTargetDataLayout()
	retAndArgs := []lir.LocalData{
		{Ty: lir.I32},
		{Ty: lir.I64},
		{Ty: lir.Metadata},
	}
	fnAbi := abi.FnAbiOf(dl, retAndArgs, lir.CallConvC)
	require.Len(t, fnAbi.Args, len(retAndArgs)-1)
	require.Equal(t, abi.PassDirect, fnAbi.Ret.Mode)
	require.Equal(t, abi.PassDirect, fnAbi.Args[0].Mode)
	require.Equal(t, abi.PassIgnore, fnAbi.Args[1].Mode)
}

func TestFnAbiOfIgnoreForZSTMemoryReturn(t *testing.T) {
	dl := target.DefaultTargetDataLayout()
	retAndArgs := []lir.LocalData{{Ty: lir.Metadata}}
	fnAbi := abi.FnAbiOf(dl, retAndArgs, lir.CallConvC)
	require.Equal(t, abi.PassIgnore, fnAbi.Ret.Mode)
}
