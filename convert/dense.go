// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"

	"github.com/katalvlaran/tensorcomp/tensor"
	"gonum.org/v1/gonum/mat"
)

const methodToDense = "ToDense"

// ToDense scatters a 2-axis tensor into a gonum dense matrix of size
// NumRows×NumCols (see Triplets). Entries sharing a coordinate accumulate.
//
// Stage 1 (Validate): tensor, axis names, exactly two axes, ≥1 entry.
// Stage 2 (Execute): a[row][col] += coef for every entry.
//
// Errors: ErrNilTensor, ErrSameAxis, ErrUnknownAxis, ErrAxisCount, ErrEmpty.
// Complexity: O(numEntries + rows*cols).
func ToDense(t *tensor.Tensor[float64], rowAxis, colAxis string) (*mat.Dense, error) {
	if err := checkAxes(t, rowAxis, colAxis); err != nil {
		return nil, fmt.Errorf("%s: %w", methodToDense, err)
	}
	if t.NumAxes() != 2 {
		return nil, fmt.Errorf("%s: %d axes: %w", methodToDense, t.NumAxes(), ErrAxisCount)
	}
	if t.NumEntries() == 0 {
		return nil, fmt.Errorf("%s: %w", methodToDense, ErrEmpty)
	}

	tr, err := ToTriplets(t, rowAxis, colAxis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodToDense, err)
	}

	m := mat.NewDense(tr.NumRows, tr.NumCols, nil)
	for k, v := range tr.Values {
		i, j := tr.Rows[k], tr.Cols[k]
		m.Set(i, j, m.At(i, j)+v)
	}

	return m, nil
}
