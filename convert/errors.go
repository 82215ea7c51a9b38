// SPDX-License-Identifier: MIT
// Package convert: sentinel error set. Callers branch with errors.Is.

package convert

import "errors"

var (
	// ErrNilTensor indicates a nil *tensor.Tensor argument.
	ErrNilTensor = errors.New("convert: tensor is nil")

	// ErrUnknownAxis indicates that a requested row/column axis does not
	// exist. Unlike tensor lookups, an export without its axes has no
	// meaningful empty result, so this is an error here.
	ErrUnknownAxis = errors.New("convert: unknown axis")

	// ErrSameAxis indicates that the row and column axis are the same.
	ErrSameAxis = errors.New("convert: row and column axis must differ")

	// ErrAxisCount indicates that a dense export was requested for a tensor
	// that does not have exactly two axes.
	ErrAxisCount = errors.New("convert: dense export needs exactly two axes")

	// ErrEmpty indicates a dense export of a tensor without entries.
	ErrEmpty = errors.New("convert: tensor has no entries")

	// ErrLabelRange indicates a label too large to serve as a 0-based
	// matrix position (label+1 would overflow int).
	ErrLabelRange = errors.New("convert: label too large for a matrix dimension")

	// ErrBadCellCount indicates a negative cell count.
	ErrBadCellCount = errors.New("convert: cell count must be >= 0")

	// ErrLengthMismatch indicates input vectors whose lengths disagree
	// (accumulation vs. cells, fluxes vs. faces).
	ErrLengthMismatch = errors.New("convert: vector length mismatch")

	// ErrCellOutOfRange indicates a face that references a cell outside
	// [0, nc).
	ErrCellOutOfRange = errors.New("convert: cell out of range")
)
