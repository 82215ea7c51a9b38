// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/tensorcomp/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPermuteIndices_MovesBlocks checks that names and blocks move together
// and that coefficients stay put.
func TestPermuteIndices_MovesBlocks(t *testing.T) {
	tt := fourAxes()

	got, err := tt.PermuteIndices([]int{3, 1, 0, 2})
	require.NoError(t, err)
	assert.Same(t, tt, got)

	assert.Equal(t, []string{"d", "b", "a", "c"}, tt.AxisNames())
	assert.Equal(t, []tensor.Index{
		9, 8, 6,
		7, 7, 7,
		0, 1, 2,
		4, 5, 4,
	}, tt.Indices())
	assert.Equal(t, []int{1, 2, 3}, tt.Coefficients())
}

// TestPermuteIndices_RoundTrip applies p then p⁻¹ on random tensors.
func TestPermuteIndices_RoundTrip(t *testing.T) {
	perms := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{1, 2, 3, 4, 0},
		{2, 0, 4, 1, 3},
	}
	for i, p := range perms {
		tt := randomTensor(t, int64(i+1), 5, 40, 6)
		names, coefs, ixs := tt.AxisNames(), tt.Coefficients(), tt.Indices()

		inv, err := tensor.InversePermutation(p)
		require.NoError(t, err)

		_, err = tt.PermuteIndices(p)
		require.NoError(t, err)
		assert.Equal(t, coefs, tt.Coefficients(), "coefficients must not move")

		_, err = tt.PermuteIndices(inv)
		require.NoError(t, err)

		assert.Equal(t, names, tt.AxisNames())
		assert.Equal(t, coefs, tt.Coefficients())
		assert.Equal(t, ixs, tt.Indices())
	}
}

// TestPermuteIndices_RejectsBeforeMutating ensures invalid input is reported
// and the tensor is unchanged.
func TestPermuteIndices_RejectsBeforeMutating(t *testing.T) {
	for name, perm := range map[string][]int{
		"wrong length": {0, 1, 2},
		"repeated":     {0, 1, 1, 2},
		"out of range": {0, 1, 2, 4},
		"negative":     {0, -1, 2, 3},
	} {
		t.Run(name, func(t *testing.T) {
			tt := fourAxes()
			before := tt.Clone()

			got, err := tt.PermuteIndices(perm)
			assert.ErrorIs(t, err, tensor.ErrInvalidPermutation)
			assert.Same(t, tt, got)
			assert.Equal(t, before.AxisNames(), tt.AxisNames())
			assert.Equal(t, before.Indices(), tt.Indices())
			assert.Equal(t, before.Coefficients(), tt.Coefficients())
		})
	}
}

// TestMoveIndicesFirst_StablePartition covers the promotion example.
func TestMoveIndicesFirst_StablePartition(t *testing.T) {
	tt := fourAxes()
	tt.MoveIndicesFirst("b", "d")
	assert.Equal(t, []string{"b", "d", "a", "c"}, tt.AxisNames())
	assert.Equal(t, []tensor.Index{7, 7, 7}, tt.Indices()[0:3])
	assert.Equal(t, []tensor.Index{9, 8, 6}, tt.Indices()[3:6])

	// the order of the requested names does not matter
	other := fourAxes()
	other.MoveIndicesFirst("d", "b")
	assert.Equal(t, tt.AxisNames(), other.AxisNames())
	assert.Equal(t, tt.Indices(), other.Indices())
}

// TestMoveIndicesFirst_UnknownNames is a no-op for names that do not exist.
func TestMoveIndicesFirst_UnknownNames(t *testing.T) {
	tt := fourAxes()
	before := tt.Indices()

	tt.MoveIndicesFirst("x", "y")
	assert.Equal(t, []string{"a", "b", "c", "d"}, tt.AxisNames())
	assert.Equal(t, before, tt.Indices())

	tt.MoveIndicesFirst("zzz", "c")
	assert.Equal(t, []string{"c", "a", "b", "d"}, tt.AxisNames())

	tt.MoveIndicesFirst()
	assert.Equal(t, []string{"c", "a", "b", "d"}, tt.AxisNames())
}
