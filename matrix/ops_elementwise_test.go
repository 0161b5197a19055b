// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub_Values(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]int{{5, 6}, {7, 8}})

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{6, 8}, {10, 12}}, sum.ToRows())

	diff, err := matrix.Diff(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{-4, -4}, {-4, -4}}, diff.ToRows())
}

func TestAddSub_LazyAndPresizedDestination(t *testing.T) {
	t.Parallel()
	a := RandFilledDense(t, 4, 1)
	b := RandFilledDense(t, 4, 2)

	lazy := new(matrix.Dense)
	require.NoError(t, matrix.Add(a, b, lazy))
	require.Equal(t, 4, lazy.Size())

	pre := MustDense(t, 4)
	require.NoError(t, matrix.Add(a, b, pre))
	require.True(t, pre.Equal(lazy))

	wrong := MustDense(t, 2)
	require.ErrorIs(t, matrix.Sub(a, b, wrong), matrix.ErrDimensionMismatch)
}

func TestAddSub_InPlace(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]int{{1, 1}, {1, 1}})

	require.NoError(t, matrix.Sub(a, b, a)) // a -= b
	require.Equal(t, [][]int{{0, 1}, {2, 3}}, a.ToRows())
	require.NoError(t, matrix.Add(a, b, b)) // b = a + b
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, b.ToRows())
}

func TestAddSub_AliasOperandsAndDestination(t *testing.T) {
	t.Parallel()
	parent := MustFromRows(t, [][]int{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{10, 20, 0, 0},
		{30, 40, 0, 0},
	})
	nw, err := matrix.NewAlias(parent, 0, 0, 2)
	require.NoError(t, err)
	sw, err := matrix.NewAlias(parent, 2, 0, 2)
	require.NoError(t, err)
	ne, err := matrix.NewAlias(parent, 0, 2, 2)
	require.NoError(t, err)

	require.NoError(t, matrix.Add(nw, sw, ne))
	require.Equal(t, [][]int{
		{1, 2, 11, 22},
		{3, 4, 33, 44},
		{10, 20, 0, 0},
		{30, 40, 0, 0},
	}, parent.ToRows())
}

func TestAddSub_Errors(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2)
	b := MustDense(t, 4)

	require.ErrorIs(t, matrix.Add(a, b, new(matrix.Dense)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Add(nil, a, new(matrix.Dense)), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.Add(a, a, nil), matrix.ErrNilMatrix)

	gone := MustDense(t, 2)
	gone.Destroy()
	require.ErrorIs(t, matrix.Sub(a, gone, new(matrix.Dense)), matrix.ErrReleased)
}
