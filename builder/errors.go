// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with builderErrorf (method prefix + %w).
//   • Structural tensor violations (duplicate axis names, negative labels)
//     surface as the tensor package sentinels, not as copies of them.
//   • Option constructors panic on meaningless input; nothing else panics.

package builder

import (
	"errors"
	"fmt"
)

// ErrNoAxes indicates that a tensor with zero axes was requested.
var ErrNoAxes = errors.New("builder: at least one axis is required")

// ErrArity indicates that the number of coordinates (or extents) passed does
// not match the number of axes.
var ErrArity = errors.New("builder: coordinate count does not match axis count")

// ErrBadExtent indicates a non-positive axis extent for RandomSparse.
var ErrBadExtent = errors.New("builder: axis extent must be > 0")

// ErrBadSize indicates a negative entry count.
var ErrBadSize = errors.New("builder: invalid entry count")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand must be supplied).
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf returns "<method>: <formatted detail>: <err>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
