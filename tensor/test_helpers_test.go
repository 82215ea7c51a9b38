// SPDX-License-Identifier: MIT
// Package tensor_test contains shared fixtures.
//
// Purpose:
//   - Small deterministic tensors whose expected reorderings can be written
//     down by hand.
//   - A tagging helper that proves coefficients travel with their coordinates.

package tensor_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tensorcomp/tensor"
	"github.com/stretchr/testify/require"
)

// cellNode is the (cell,node) example: (1,2),(0,1),(1,1),(0,2) → 10,20,30,40.
func cellNode() *tensor.Tensor[float64] {
	return tensor.New(
		[]string{"cell", "node"},
		[]float64{10, 20, 30, 40},
		[]tensor.Index{
			1, 0, 1, 0, // cell
			2, 1, 1, 2, // node
		},
	)
}

// fourAxes builds axes a,b,c,d with cardinalities 3,1,2,3 over 3 entries.
func fourAxes() *tensor.Tensor[int] {
	return tensor.New(
		[]string{"a", "b", "c", "d"},
		[]int{1, 2, 3},
		[]tensor.Index{
			0, 1, 2, // a: 3 distinct
			7, 7, 7, // b: 1 distinct
			4, 5, 4, // c: 2 distinct
			9, 8, 6, // d: 3 distinct
		},
	)
}

// randomTensor fills k axes × n entries with labels in [0, extent) and
// unique coefficients 0..n-1 (the coefficient tags its original entry).
func randomTensor(tb testing.TB, seed int64, k, n, extent int) *tensor.Tensor[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))

	names := make([]string, k)
	for a := range names {
		names[a] = fmt.Sprintf("ax%d", a)
	}
	coefs := make([]int, n)
	for e := range coefs {
		coefs[e] = e
	}
	ixs := make([]tensor.Index, k*n)
	for i := range ixs {
		ixs[i] = rng.Intn(extent)
	}

	t := tensor.New(names, coefs, ixs)
	require.NoError(tb, t.Validate())

	return t
}

// tuplesByTag maps each coefficient (a unique tag) to its coordinate tuple.
func tuplesByTag(tb testing.TB, t *tensor.Tensor[int]) map[int][]tensor.Index {
	tb.Helper()
	out := make(map[int][]tensor.Index, t.NumEntries())
	for e := 0; e < t.NumEntries(); e++ {
		c, coords, err := t.Entry(e)
		require.NoError(tb, err)
		out[c] = coords
	}

	return out
}

// entries lists (coords..., coef) rows in storage order.
func entries[T tensor.Scalar](tb testing.TB, t *tensor.Tensor[T]) [][]any {
	tb.Helper()
	rows := make([][]any, 0, t.NumEntries())
	for e := 0; e < t.NumEntries(); e++ {
		c, coords, err := t.Entry(e)
		require.NoError(tb, err)
		row := make([]any, 0, len(coords)+1)
		for _, v := range coords {
			row = append(row, v)
		}
		rows = append(rows, append(row, c))
	}

	return rows
}
