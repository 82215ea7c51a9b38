// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go — RandomSparse(axisNames, extents, nnz) generator.
//
// Model:
//   - nnz entries; each coordinate drawn independently and uniformly from
//     [0, extents[a]); coefficients from cfg.valueFn(cfg.rng).
//   - Duplicated coordinate tuples are possible and intentionally kept: the
//     tensor format allows them.
//
// Contract (validation order):
//   - len(axisNames) ≥ 1 (else ErrNoAxes).
//   - len(extents) == len(axisNames) (else ErrArity); every extent > 0 (else ErrBadExtent).
//   - nnz ≥ 0 (else ErrBadSize).
//   - cfg.rng non-nil when nnz > 0 (else ErrNeedRandSource).
//
// Determinism:
//   - Draw order is fixed: for each entry e asc, axes a asc, then the value.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tensorcomp/tensor"
)

// RandomSparse samples a float64 coordinate tensor with nnz entries.
// Complexity: O(nnz*len(axisNames)) time and space.
func RandomSparse(axisNames []string, extents []int, nnz int, opts ...Option) (*tensor.Tensor[float64], error) {
	// 1) Validate parameters, no side effects on failure.
	if len(axisNames) == 0 {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNoAxes)
	}
	if len(extents) != len(axisNames) {
		return nil, builderErrorf(methodRandomSparse, ErrArity, "%d extents for %d axes", len(extents), len(axisNames))
	}
	for a, ext := range extents {
		if ext <= 0 {
			return nil, builderErrorf(methodRandomSparse, ErrBadExtent, "axis %q: extent=%d", axisNames[a], ext)
		}
	}
	if nnz < 0 {
		return nil, builderErrorf(methodRandomSparse, ErrBadSize, "nnz=%d", nnz)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && nnz > 0 {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	// 2) Draw entries through the regular Builder so both producers share
	// one validation path.
	b := New[float64](axisNames...)
	coords := make([]tensor.Index, len(axisNames))
	for e := 0; e < nnz; e++ {
		for a, ext := range extents {
			coords[a] = cfg.rng.Intn(ext)
		}
		if err := b.Add(cfg.valueFn(cfg.rng), coords...); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
		}
	}

	// 3) Emit; Build rejects duplicate axis names.
	t, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}

	return t, nil
}
