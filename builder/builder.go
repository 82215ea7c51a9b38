// SPDX-License-Identifier: MIT
// Package: builder
//
// builder.go — incremental producer for tensor.Tensor.
//
// Contract:
//   • Axis names are fixed at New; uniqueness is checked by Build.
//   • Add validates arity and sign BEFORE appending (no partial entries).
//   • Build copies the accumulated columns; the Builder stays reusable.
//
// Complexity:
//   • Add:   amortized O(numAxes).
//   • Build: O(numAxes*numEntries).

package builder

import (
	"fmt"

	"github.com/katalvlaran/tensorcomp/tensor"
)

// Method tags for builderErrorf.
const (
	methodAdd          = "Add"
	methodBuild        = "Build"
	methodRandomSparse = "RandomSparse"
)

// Builder accumulates coordinate-tensor entries one at a time.
type Builder[T tensor.Scalar] struct {
	axisNames []string
	coefs     []T
	cols      [][]tensor.Index // cols[a] holds axis a for every entry
}

// New returns an empty Builder over the given axes.
func New[T tensor.Scalar](axisNames ...string) *Builder[T] {
	names := make([]string, len(axisNames))
	copy(names, axisNames)

	return &Builder[T]{
		axisNames: names,
		cols:      make([][]tensor.Index, len(names)),
	}
}

// Add appends one entry. coords lists one index per axis, in axis order.
//
// Errors:
//   - ErrArity if len(coords) != number of axes.
//   - tensor.ErrNegativeIndex if any coordinate is negative.
func (b *Builder[T]) Add(coef T, coords ...tensor.Index) error {
	if len(coords) != len(b.axisNames) {
		return builderErrorf(methodAdd, ErrArity, "got %d coordinates for %d axes", len(coords), len(b.axisNames))
	}
	for a, v := range coords {
		if v < 0 {
			return builderErrorf(methodAdd, tensor.ErrNegativeIndex, "axis %q: %d", b.axisNames[a], v)
		}
	}

	for a, v := range coords {
		b.cols[a] = append(b.cols[a], v)
	}
	b.coefs = append(b.coefs, coef)

	return nil
}

// Len returns the number of accumulated entries.
func (b *Builder[T]) Len() int {
	return len(b.coefs)
}

// Reset drops all entries but keeps the axes (and the allocated capacity).
func (b *Builder[T]) Reset() {
	b.coefs = b.coefs[:0]
	for a := range b.cols {
		b.cols[a] = b.cols[a][:0]
	}
}

// Build emits the accumulated entries as an axis-major tensor.
//
// Errors: ErrNoAxes, tensor.ErrDuplicateAxis.
func (b *Builder[T]) Build() (*tensor.Tensor[T], error) {
	if len(b.axisNames) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNoAxes)
	}

	n := len(b.coefs)
	ixs := make([]tensor.Index, 0, n*len(b.cols))
	for _, col := range b.cols {
		ixs = append(ixs, col...) // each column becomes one contiguous block
	}

	t := tensor.New(b.axisNames, b.coefs, ixs)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return t, nil
}
