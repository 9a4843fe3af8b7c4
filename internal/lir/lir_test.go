package lir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tide-fwk/tide/internal/lir"
)

func TestRawScalarValueMaskedRoundTrip(t *testing.T) {
	v := lir.RawScalarValue{DataLo: 0xFFFFFFFFFFFFFFFF, DataHi: 0xFFFFFFFFFFFFFFFF, Size: 4}
	masked := v.Masked()
	require.Equal(t, uint64(0xFFFFFFFF), masked.DataLo)
	require.Equal(t, uint64(0), masked.DataHi)
}

func TestRawScalarValueMaskedFullWidth(t *testing.T) {
	v := lir.RawScalarValue{DataLo: 1, DataHi: 2, Size: 16}
	require.Equal(t, v, v.Masked())
}

func TestPlaceTryLocal(t *testing.T) {
	p := lir.Place{Local: lir.RETURN_LOCAL}
	l, ok := p.TryLocal()
	require.True(t, ok)
	require.Equal(t, lir.RETURN_LOCAL, l)
}

func TestBodyHasAtLeastOneLocalAndBlock(t *testing.T) {
	var body lir.LirBody
	body.RetAndArgs.Push(lir.LocalData{Ty: lir.I32})
	body.BasicBlocks.Push(lir.BasicBlockData{Terminator: lir.TerminatorReturn{}})

	require.GreaterOrEqual(t, body.RetAndArgs.Len(), 1)
	require.GreaterOrEqual(t, body.BasicBlocks.Len(), 1)
}

func TestUnitDefIdBijection(t *testing.T) {
	var unit lir.LirUnit
	names := map[lir.DefId]string{}

	id1 := unit.Bodies.Push(lir.LirBody{Metadata: lir.BodyMetadata{Name: "foo"}})
	id2 := unit.Bodies.Push(lir.LirBody{Metadata: lir.BodyMetadata{Name: "bar"}})
	names[id1] = "foo"
	names[id2] = "bar"

	require.NotEqual(t, id1, id2)
	require.Len(t, names, 2)
}
