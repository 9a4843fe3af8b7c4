package idx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tide-fwk/tide/internal/idx"
)

type local int

func TestIdxVecPushGet(t *testing.T) {
	var v idx.IdxVec[local, string]
	i0 := v.Push("ret")
	i1 := v.Push("arg0")

	require.Equal(t, local(0), i0)
	require.Equal(t, local(1), i1)
	require.Equal(t, "ret", *v.Get(i0))
	require.Equal(t, "arg0", *v.Get(i1))
	require.Equal(t, 2, v.Len())
}

func TestIdxVecIterEnumeratedOrder(t *testing.T) {
	v := idx.FromElems[local]([]string{"a", "b", "c"})
	var seen []local
	v.IterEnumerated(func(i local, _ string) { seen = append(seen, i) })
	require.Equal(t, []local{0, 1, 2}, seen)
}

func TestIdxVecEnsureContainsElemGrows(t *testing.T) {
	var v idx.IdxVec[local, int]
	p := v.EnsureContainsElem(local(3), func() int { return -1 })
	*p = 42
	require.Equal(t, 4, v.Len())
	require.Equal(t, -1, *v.Get(local(0)))
	require.Equal(t, 42, *v.Get(local(3)))
}

func TestIdxVecPickTwoMutDistinct(t *testing.T) {
	v := idx.FromElems[local]([]int{1, 2, 3})
	a, b := v.PickTwoMut(local(0), local(2))
	*a, *b = *b, *a
	require.Equal(t, 3, *v.Get(local(0)))
	require.Equal(t, 1, *v.Get(local(2)))
}

func TestIdxVecPickTwoMutPanicsOnAlias(t *testing.T) {
	v := idx.FromElems[local]([]int{1, 2})
	require.Panics(t, func() {
		v.PickTwoMut(local(0), local(0))
	})
}

func TestIdxVecBinarySearch(t *testing.T) {
	v := idx.FromElems[local]([]int{1, 3, 5, 7})
	i, found := v.BinarySearch(func(x int) int { return x - 5 })
	require.True(t, found)
	require.Equal(t, local(2), i)

	_, found = v.BinarySearch(func(x int) int { return x - 4 })
	require.False(t, found)
}

func TestIdxVecResizeToElem(t *testing.T) {
	var v idx.IdxVec[local, int]
	v.ResizeToElem(local(2), -1)
	require.Equal(t, 3, v.Len())
}
