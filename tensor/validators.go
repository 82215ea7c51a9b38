// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Single source of truth for the structural checks of the package:
//     tensor shape, axis-name uniqueness and permutation validity.
//   - Permutation checks run BEFORE any mutation so a rejected call leaves the
//     tensor exactly as it was.
//
// Note:
//   - New never calls Validate: the construction contract is unchecked.
//     Boundaries that ingest foreign data (builder, tensorio) call it.

package tensor

import "fmt"

// Validate checks the structural invariants of t in a fixed order:
// shape → axis names → index signs.
//
// Errors: ErrShapeMismatch, ErrDuplicateAxis, ErrNegativeIndex (wrapped).
// Complexity: O(numAxes + numAxes*numEntries).
func (t *Tensor[T]) Validate() error {
	// Stage 1: sizes.
	if want := len(t.axisNames) * len(t.coefs); len(t.ixs) != want {
		return tensorErrorf(methodValidate,
			fmt.Sprintf("len(indices)=%d, want %d", len(t.ixs), want), ErrShapeMismatch)
	}

	// Stage 2: names are distinct.
	seen := make(map[string]struct{}, len(t.axisNames))
	for _, name := range t.axisNames {
		if _, dup := seen[name]; dup {
			return tensorErrorf(methodValidate, fmt.Sprintf("axis %q", name), ErrDuplicateAxis)
		}
		seen[name] = struct{}{}
	}

	// Stage 3: labels are non-negative.
	for i, v := range t.ixs {
		if v < 0 {
			return tensorErrorf(methodValidate, fmt.Sprintf("indices[%d]=%d", i, v), ErrNegativeIndex)
		}
	}

	return nil
}

// ValidatePermutation reports whether perm is a bijection onto {0..n-1}.
//
// Errors: ErrInvalidPermutation, with the first offending condition.
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("len=%d, want %d: %w", len(perm), n, ErrInvalidPermutation)
	}

	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n {
			return fmt.Errorf("perm[%d]=%d out of [0,%d): %w", i, p, n, ErrInvalidPermutation)
		}
		if seen[p] {
			return fmt.Errorf("perm[%d]=%d repeated: %w", i, p, ErrInvalidPermutation)
		}
		seen[p] = true
	}

	return nil
}

// InversePermutation returns q with q[perm[i]] == i.
// Applying perm and then q through PermuteIndices restores the original axis
// order.
// Errors: ErrInvalidPermutation.
// Complexity: O(n).
func InversePermutation(perm []int) ([]int, error) {
	if err := ValidatePermutation(perm, len(perm)); err != nil {
		return nil, err
	}

	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}

	return inv, nil
}
