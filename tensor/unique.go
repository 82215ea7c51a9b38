// SPDX-License-Identifier: MIT

package tensor

import "slices"

// NumUniqueValues returns the cardinality of axis a: the number of distinct
// index values stored in its block. An axis position outside
// [0, NumAxes()) yields 0.
// Complexity: O(n log n) time, O(n) space with n = NumEntries().
func (t *Tensor[T]) NumUniqueValues(a int) int {
	if a < 0 || a >= len(t.axisNames) {
		return 0
	}

	return countDistinct(t.block(a))
}

// NumUniqueValuesFor is NumUniqueValues by axis name; unknown names yield 0.
func (t *Tensor[T]) NumUniqueValuesFor(name string) int {
	a, ok := t.AxisIndex(name)
	if !ok {
		return 0
	}

	return t.NumUniqueValues(a)
}

// countDistinct sorts a scratch copy and counts value changes.
func countDistinct(block []Index) int {
	if len(block) == 0 {
		return 0
	}

	scratch := slices.Clone(block)
	slices.Sort(scratch)

	count := 1
	for i := 1; i < len(scratch); i++ {
		if scratch[i] != scratch[i-1] {
			count++
		}
	}

	return count
}
