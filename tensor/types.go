// SPDX-License-Identifier: MIT

package tensor

// Index is the integer label stored per entry and axis. Values are opaque
// dictionary codes: they need not start at zero nor be contiguous.
type Index = int

// Scalar is the set of coefficient types a Tensor can carry. The container
// itself only copies values; arithmetic is the consumer's business.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Tensor is a sparse coordinate tensor with named axes.
//
// Invariants (checked by Validate, assumed everywhere else):
//   - len(axisNames) == numAxes, names distinct;
//   - len(coefs) == numEntries;
//   - len(ixs) == numAxes*numEntries, axis-major.
type Tensor[T Scalar] struct {
	axisNames []string // axis order == storage order of index blocks
	coefs     []T      // one coefficient per entry
	ixs       []Index  // ixs[a*numEntries+e] = index of entry e on axis a
}
