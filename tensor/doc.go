// Package tensor provides Tensor[T], a named-axis sparse coordinate tensor
// together with the in-place reordering algorithms that assembly and
// reduction code build on.
//
// 🚀 What is a coordinate tensor here?
//
//	A sequence of entries, each a coefficient plus one integer index per
//	named axis (element id, local node id, dof id, ...). Duplicated
//	coordinates are allowed; merging them is left to the consumer.
//
// Storage layout (axis-major):
//
//	axes:    [cell node]              numAxes    = 2
//	coefs:   [10 20 30 40]            numEntries = 4
//	indices: [1 0 1 0 | 2 1 1 2]
//	          └ cell ┘  └ node ┘
//
// The index of entry e on axis a lives at indices[a*numEntries+e], so every
// axis is one contiguous block and axis-local work (counting distinct
// values, extracting a column) touches only that block.
//
// ✨ Operations
//
//   - PermuteIndices      – reorder axes by an explicit permutation (validated first)
//   - MoveIndicesFirst    – stable partition: named axes first
//   - SortIndicesByNumber – order axes by distinct-value cardinality
//   - SortElementsByIndex – lexicographic (canonical) entry order
//   - NumUniqueValues(For), IndexValuesFor, AxisIndex, Entry, Clone, Validate
//
// Mutating methods work in place and return the receiver, so calls chain
// (PermuteIndices also returns an error):
//
//	t.MoveIndicesFirst("cell").SortElementsByIndex(false)
//
// Error policy:
//
//   - Malformed permutations are caller bugs: PermuteIndices rejects them with
//     ErrInvalidPermutation BEFORE touching any storage.
//   - Name lookups that miss are not errors: they yield an empty slice, a zero
//     count or a no-op.
//
// Concurrency: a Tensor carries no lock. Callers sharing one instance across
// goroutines must serialize access themselves.
package tensor
