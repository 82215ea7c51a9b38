// Package tensorio reads and writes coordinate tensors and their matrix
// exports. The tensor package itself performs no I/O; this package is the
// boundary where foreign data is validated.
//
// Formats:
//
//   - YAML tensor document: exactly the construction contract of
//     tensor.New, axis-major:
//
//     axes: [cell, node]
//     coefficients: [10, 20, 30, 40]
//     indices: [1, 0, 1, 0, 2, 1, 1, 2]
//
//   - Coordinate matrix file (MatrixMarket-style, 1-based), the input format
//     of block iterative solver wrappers:
//
//     %%MatrixMarket matrix coordinate real general
//     % <comment>
//     rows cols entries
//     i j value
//     ...
//
//   - Vector file (right-hand sides, per-cell results), same header style:
//
//     %%MatrixMarket matrix array real general
//     % <comment>
//     rows 1
//     value
//     ...
//
// Readers never trust header counts for allocation: a count that disagrees
// with the body is ErrMalformed.
package tensorio
