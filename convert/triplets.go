// SPDX-License-Identifier: MIT
// Package convert: coordinate (triplet) export.
//
// Contract:
//   - One triplet per entry, in storage order; duplicates are kept.
//   - NumRows / NumCols are max label + 1 on the respective axis (0 when
//     the tensor has no entries): labels are used as 0-based positions.
//   - Axes other than the row and column axis are ignored: each entry still
//     yields exactly one triplet.

package convert

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tensorcomp/tensor"
)

const methodToTriplets = "ToTriplets"

// Triplets is a sparse matrix in coordinate form.
type Triplets[T tensor.Scalar] struct {
	NumRows, NumCols int
	Rows, Cols       []int
	Values           []T
}

// Len returns the number of stored triplets.
func (tr *Triplets[T]) Len() int {
	return len(tr.Values)
}

// ToTriplets exports t with rowAxis as row labels and colAxis as column labels.
//
// Errors: ErrNilTensor, tensor.Validate sentinels, ErrSameAxis, ErrUnknownAxis,
// ErrLabelRange.
// Complexity: O(numEntries).
func ToTriplets[T tensor.Scalar](t *tensor.Tensor[T], rowAxis, colAxis string) (*Triplets[T], error) {
	if err := checkAxes(t, rowAxis, colAxis); err != nil {
		return nil, fmt.Errorf("%s: %w", methodToTriplets, err)
	}

	rows := t.IndexValuesFor(rowAxis)
	cols := t.IndexValuesFor(colAxis)
	numRows, err := extent(rowAxis, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodToTriplets, err)
	}
	numCols, err := extent(colAxis, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodToTriplets, err)
	}

	return &Triplets[T]{
		NumRows: numRows,
		NumCols: numCols,
		Rows:    rows,
		Cols:    cols,
		Values:  t.Coefficients(),
	}, nil
}

// checkAxes validates the tensor structure and the row/column axis names.
func checkAxes[T tensor.Scalar](t *tensor.Tensor[T], rowAxis, colAxis string) error {
	if t == nil {
		return ErrNilTensor
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if rowAxis == colAxis {
		return fmt.Errorf("%q: %w", rowAxis, ErrSameAxis)
	}
	for _, name := range []string{rowAxis, colAxis} {
		if _, ok := t.AxisIndex(name); !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownAxis)
		}
	}

	return nil
}

// extent returns max(labels)+1, or 0 for no labels.
// Errors: ErrLabelRange when a label equals math.MaxInt.
func extent(axis string, labels []tensor.Index) (int, error) {
	n := 0
	for _, v := range labels {
		if v == math.MaxInt {
			return 0, fmt.Errorf("axis %q: label %d: %w", axis, v, ErrLabelRange)
		}
		if v+1 > n {
			n = v + 1
		}
	}

	return n, nil
}
