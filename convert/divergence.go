// SPDX-License-Identifier: MIT
// Package convert: per-cell divergence of face fluxes.
//
// Contract:
//   - Face f connects cells pairs[f][0] and pairs[f][1] (0-based). Its flux
//     is added to the first cell and subtracted from the second.
//   - acc, when non-empty, seeds the result and must have exactly nc values.
//   - Cells outside [0, nc) are rejected before anything is accumulated.
//
// Complexity:
//   - Time O(nc + nf), Space O(nc) for the result.

package convert

import (
	"fmt"

	"github.com/katalvlaran/tensorcomp/tensor"
)

const (
	methodDivergence       = "Divergence"
	methodTensorDivergence = "TensorDivergence"
)

// Divergence returns the per-cell sum of signed face fluxes, optionally
// on top of an accumulation term acc.
//
// Stage 1 (Validate): nc ≥ 0, len(acc) ∈ {0, nc}, len(flux) == len(pairs),
// every cell inside [0, nc).
// Stage 2 (Execute): result = acc (or zeros), then scatter-add per face.
//
// Errors: ErrBadCellCount, ErrLengthMismatch, ErrCellOutOfRange.
func Divergence(acc, flux []float64, pairs [][2]int, nc int) ([]float64, error) {
	if nc < 0 {
		return nil, fmt.Errorf("%s: nc=%d: %w", methodDivergence, nc, ErrBadCellCount)
	}
	if len(acc) != 0 && len(acc) != nc {
		return nil, fmt.Errorf("%s: len(acc)=%d, nc=%d: %w", methodDivergence, len(acc), nc, ErrLengthMismatch)
	}
	if len(flux) != len(pairs) {
		return nil, fmt.Errorf("%s: len(flux)=%d, faces=%d: %w", methodDivergence, len(flux), len(pairs), ErrLengthMismatch)
	}
	for f, p := range pairs {
		for _, c := range p {
			if c < 0 || c >= nc {
				return nil, fmt.Errorf("%s: face %d: cell %d outside [0,%d): %w", methodDivergence, f, c, nc, ErrCellOutOfRange)
			}
		}
	}

	result := make([]float64, nc)
	copy(result, acc)
	for f, p := range pairs {
		result[p[0]] += flux[f]
		result[p[1]] -= flux[f]
	}

	return result, nil
}

// TensorDivergence reads face pairs from the fromAxis and toAxis index
// blocks of t and takes its coefficients as the face fluxes.
//
// Errors: ErrNilTensor, tensor.Validate sentinels, ErrSameAxis,
// ErrUnknownAxis, and everything Divergence returns.
func TensorDivergence(t *tensor.Tensor[float64], fromAxis, toAxis string, acc []float64, nc int) ([]float64, error) {
	if err := checkAxes(t, fromAxis, toAxis); err != nil {
		return nil, fmt.Errorf("%s: %w", methodTensorDivergence, err)
	}

	from := t.IndexValuesFor(fromAxis)
	to := t.IndexValuesFor(toAxis)
	pairs := make([][2]int, len(from))
	for f := range pairs {
		pairs[f] = [2]int{from[f], to[f]}
	}

	out, err := Divergence(acc, t.Coefficients(), pairs, nc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodTensorDivergence, err)
	}

	return out, nil
}
