package llvmbackend

import (
	"testing"

	"github.com/stretchr/testify/require"
	"tinygo.org/x/go-llvm"

	"github.com/tide-fwk/tide/internal/lir"
)

func TestLlvmLinkageOfMapsEveryLirLinkage(t *testing.T) {
	require.Equal(t, llvm.ExternalLinkage, llvmLinkageOf(lir.LinkageExternal))
	require.Equal(t, llvm.InternalLinkage, llvmLinkageOf(lir.LinkageInternal))
	require.Equal(t, llvm.WeakAnyLinkage, llvmLinkageOf(lir.LinkageWeak))
	require.Equal(t, llvm.LinkOnceAnyLinkage, llvmLinkageOf(lir.LinkageLinkOnce))
}

func TestLlvmVisibilityOfMapsEveryLirVisibility(t *testing.T) {
	require.Equal(t, llvm.DefaultVisibility, llvmVisibilityOf(lir.VisibilityDefault))
	require.Equal(t, llvm.HiddenVisibility, llvmVisibilityOf(lir.VisibilityHidden))
	require.Equal(t, llvm.ProtectedVisibility, llvmVisibilityOf(lir.VisibilityProtected))
}

func TestLlvmCallConvOfMapsEveryLirCallConv(t *testing.T) {
	require.Equal(t, llvm.CCallConv, llvmCallConvOf(lir.CallConvC))
	require.Equal(t, llvm.FastCallConv, llvmCallConvOf(lir.CallConvFast))
	require.Equal(t, llvm.ColdCallConv, llvmCallConvOf(lir.CallConvCold))
}
