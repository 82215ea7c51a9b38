// SPDX-License-Identifier: MIT
// Package tensor: entry sorting and cardinality-based axis ordering.
//
// Entry order (SortElementsByIndex):
//   - Coordinate tuples compare lexicographically, axis 0 most significant.
//   - The comparator is a strict weak ordering: full equality is "not less".
//     Remaining ties fall back to the current entry position, which makes the
//     result a total order, hence stable and idempotent in both directions.
//   - Coefficients follow their coordinates: the sort computes one source
//     position per target slot and gathers indices and coefficients with it.
//
// Axis order (SortIndicesByNumber):
//   - Key is the axis cardinality (NumUniqueValues). Ties keep the current
//     relative axis order for ascending and descending alike.
//   - Low-cardinality axes first is the usual contraction-order heuristic:
//     looping over small axes outermost keeps intermediates small.

package tensor

import (
	"cmp"
	"slices"
)

// SortElementsByIndex reorders entries into canonical lexicographic order
// of their coordinate tuples (non-decreasing, or non-increasing when
// descending is true). Axis order is unchanged.
//
// Stage 1 (Prepare): order = [0..n) source positions.
// Stage 2 (Execute): sort order by (tuple, position).
// Stage 3 (Finalize): gather every index block and the coefficients by order.
//
// Complexity: O(n log n · numAxes) time, O(numAxes*n) extra space.
// Returns t so calls can be chained.
func (t *Tensor[T]) SortElementsByIndex(descending bool) *Tensor[T] {
	n := len(t.coefs)
	k := len(t.axisNames)
	if n < 2 {
		return t
	}

	order := make([]int, n)
	for e := range order {
		order[e] = e
	}

	slices.SortFunc(order, func(x, y int) int {
		c := t.compareEntries(x, y)
		if descending {
			c = -c
		}
		if c != 0 {
			return c
		}
		// equal tuples are not less than each other; keep storage order
		return cmp.Compare(x, y)
	})

	ixs := make([]Index, len(t.ixs))
	coefs := make([]T, n)
	for i, src := range order {
		for a := 0; a < k; a++ {
			ixs[a*n+i] = t.ixs[a*n+src]
		}
		coefs[i] = t.coefs[src]
	}

	t.ixs = ixs
	t.coefs = coefs

	return t
}

// IsSortedByIndex reports whether entries are already in canonical order
// (ascending, or descending when descending is true).
// Complexity: O(n · numAxes).
func (t *Tensor[T]) IsSortedByIndex(descending bool) bool {
	n := len(t.coefs)
	for e := 1; e < n; e++ {
		c := t.compareEntries(e-1, e)
		if descending {
			c = -c
		}
		if c > 0 {
			return false
		}
	}

	return true
}

// compareEntries compares the coordinate tuples of entries x and y.
func (t *Tensor[T]) compareEntries(x, y int) int {
	n := len(t.coefs)
	for a := range t.axisNames {
		if c := cmp.Compare(t.ixs[a*n+x], t.ixs[a*n+y]); c != 0 {
			return c
		}
	}

	return 0
}

// SortIndicesByNumber reorders axes by cardinality, ascending by default
// and descending when requested. The sort is stable: axes of equal
// cardinality keep their current relative order.
//
// Complexity: O(numAxes · n log n) for the counts plus one permute.
// Returns t so calls can be chained.
func (t *Tensor[T]) SortIndicesByNumber(descending bool) *Tensor[T] {
	k := len(t.axisNames)
	counts := make([]int, k)
	perm := make([]int, k)
	for a := 0; a < k; a++ {
		counts[a] = t.NumUniqueValues(a)
		perm[a] = a
	}

	slices.SortStableFunc(perm, func(x, y int) int {
		if descending {
			return cmp.Compare(counts[y], counts[x])
		}
		return cmp.Compare(counts[x], counts[y])
	})

	t.permute(perm)

	return t
}
