// SPDX-License-Identifier: MIT
// Package tensor: axis permutation and named-axis promotion.
//
// Contract:
//   - Axis i of the result is axis perm[i] of the input: its name and its
//     whole index block move together.
//   - Coefficients never move; entries keep their positions.
//   - permute is the single primitive; every axis reordering funnels into it.
//
// Complexity:
//   - Time O(numAxes*numEntries), Space O(numAxes*numEntries) for the new block
//     layout (swapped in at the end).

package tensor

import "slices"

// PermuteIndices reorders the axes so that axis i becomes former axis perm[i].
//
// Stage 1 (Validate): perm must be a bijection onto {0..NumAxes()-1}.
// Stage 2 (Execute): copy every index block to its new slot.
// Stage 3 (Finalize): swap in the new names and blocks.
//
// Errors: ErrInvalidPermutation (wrapped); t is left untouched on error.
// Returns t so calls can be chained.
func (t *Tensor[T]) PermuteIndices(perm []int) (*Tensor[T], error) {
	if err := ValidatePermutation(perm, len(t.axisNames)); err != nil {
		return t, tensorErrorf(methodPermuteIndices, "", err)
	}
	t.permute(perm)

	return t, nil
}

// permute applies a permutation already known to be valid.
func (t *Tensor[T]) permute(perm []int) {
	n := len(t.coefs)
	names := make([]string, len(perm))
	ixs := make([]Index, len(t.ixs))
	for i, p := range perm {
		copy(ixs[i*n:(i+1)*n], t.ixs[p*n:(p+1)*n]) // whole block at once
		names[i] = t.axisNames[p]
	}

	t.axisNames = names
	t.ixs = ixs
}

// MoveIndicesFirst moves every axis named in names in front of all other
// axes. Both groups keep their current relative order (stable partition);
// the order of names itself is irrelevant. Unknown names are ignored.
//
// Example: axes [a b c d], MoveIndicesFirst("d", "b") → [b d a c].
// Complexity: O(numAxes*len(names) + numAxes*numEntries).
func (t *Tensor[T]) MoveIndicesFirst(names ...string) *Tensor[T] {
	first := make([]int, 0, len(t.axisNames))
	rest := make([]int, 0, len(t.axisNames))
	for i, name := range t.axisNames {
		if slices.Contains(names, name) {
			first = append(first, i)
		} else {
			rest = append(rest, i)
		}
	}

	t.permute(append(first, rest...))

	return t
}
