// SPDX-License-Identifier: MIT
// Package tensor: construction and read-only accessors.
//
// Ownership: New copies its inputs and every accessor returning a slice
// returns a copy, so no caller buffer ever aliases tensor storage.

package tensor

import (
	"fmt"
	"slices"
	"strings"
)

// Method tags used in wrapped errors.
const (
	methodPermuteIndices = "PermuteIndices"
	methodEntry          = "Entry"
	methodValidate       = "Validate"
)

// New builds a Tensor from axis names, coefficients and axis-major indices.
// The inputs are copied. Lengths are NOT validated here: consistent sizes are
// the caller's contract (see Validate for an explicit check).
// Complexity: O(numAxes + numAxes*numEntries).
func New[T Scalar](axisNames []string, coefs []T, ixs []Index) *Tensor[T] {
	return &Tensor[T]{
		axisNames: cloneOrEmpty(axisNames),
		coefs:     cloneOrEmpty(coefs),
		ixs:       cloneOrEmpty(ixs),
	}
}

// cloneOrEmpty copies s, mapping nil to an empty non-nil slice.
func cloneOrEmpty[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	copy(out, s)

	return out
}

// AxisNames returns a copy of the axis names in storage order.
func (t *Tensor[T]) AxisNames() []string {
	return cloneOrEmpty(t.axisNames)
}

// NumAxes returns the number of axes.
// Complexity: O(1).
func (t *Tensor[T]) NumAxes() int {
	return len(t.axisNames)
}

// NumEntries returns the number of entries (coefficients).
// Complexity: O(1).
func (t *Tensor[T]) NumEntries() int {
	return len(t.coefs)
}

// Coefficients returns a copy of the coefficients in entry order.
func (t *Tensor[T]) Coefficients() []T {
	return cloneOrEmpty(t.coefs)
}

// Indices returns a copy of the raw axis-major index array.
func (t *Tensor[T]) Indices() []Index {
	return cloneOrEmpty(t.ixs)
}

// AxisIndex reports the storage position of the named axis.
// Complexity: O(numAxes).
func (t *Tensor[T]) AxisIndex(name string) (int, bool) {
	i := slices.Index(t.axisNames, name)

	return i, i >= 0
}

// IndexValuesFor returns a copy of the index block of the named axis, in
// entry order. An unknown name yields an empty slice, not an error.
// Complexity: O(numAxes + numEntries).
func (t *Tensor[T]) IndexValuesFor(name string) []Index {
	a, ok := t.AxisIndex(name)
	if !ok {
		return []Index{}
	}

	return cloneOrEmpty(t.block(a))
}

// block returns the (aliased) index block of axis a.
func (t *Tensor[T]) block(a int) []Index {
	n := len(t.coefs)

	return t.ixs[a*n : (a+1)*n]
}

// Entry returns the coefficient and the coordinate tuple of entry e, with
// coordinates listed in current axis order.
// Errors: ErrOutOfRange when e is outside [0, NumEntries()).
// Complexity: O(numAxes).
func (t *Tensor[T]) Entry(e int) (T, []Index, error) {
	var zero T
	n := len(t.coefs)
	if e < 0 || e >= n {
		return zero, nil, tensorErrorf(methodEntry, fmt.Sprintf("e=%d, entries=%d", e, n), ErrOutOfRange)
	}

	coords := make([]Index, len(t.axisNames))
	for a := range coords {
		coords[a] = t.ixs[a*n+e] // stride by numEntries per axis
	}

	return t.coefs[e], coords, nil
}

// Clone returns a deep copy of t.
// Complexity: O(numAxes*numEntries).
func (t *Tensor[T]) Clone() *Tensor[T] {
	return New(t.axisNames, t.coefs, t.ixs)
}

// String renders the tensor one entry per line, for debugging.
// Complexity: O(numAxes*numEntries).
func (t *Tensor[T]) String() string {
	var sb strings.Builder
	n := len(t.coefs)
	fmt.Fprintf(&sb, "Tensor%v entries=%d\n", t.axisNames, n)
	for e := 0; e < n; e++ {
		sb.WriteString("(")
		for a := range t.axisNames {
			if a > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", t.ixs[a*n+e])
		}
		fmt.Fprintf(&sb, ") %v\n", t.coefs[e])
	}

	return sb.String()
}
