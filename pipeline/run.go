// SPDX-License-Identifier: MIT
// Package: pipeline
//
// run.go — step executor.
//
// Contract:
//   • Steps run in order on the tensor in place; the first failure stops Run.
//   • Steps before the failing one stay applied; the failing step itself
//     leaves the tensor untouched (PermuteIndices validates before mutating).
//   • A nil cfg runs DefaultConfig; a nil logger logs nowhere.
//
// Complexity:
//   • One tensor operation per step, see package tensor for each cost.

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/tensorcomp/tensor"
	"go.uber.org/zap"
)

// Run applies cfg to t in place, step by step.
//
// Errors: Validate errors, tensor.ErrInvalidPermutation (wrapped with the
// step number).
func Run[T tensor.Scalar](t *tensor.Tensor[T], cfg *Config, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	for i, s := range cfg.Steps {
		log.Debug("apply step",
			zap.Int("step", i),
			zap.String("op", s.Op),
			zap.Strings("axes", s.Axes),
			zap.Ints("perm", s.Perm),
			zap.Bool("descending", s.Descending),
			zap.Int("entries", t.NumEntries()),
		)

		switch s.Op {
		case OpPermute:
			if _, err := t.PermuteIndices(s.Perm); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		case OpMoveFirst:
			t.MoveIndicesFirst(s.Axes...)
		case OpSortAxes:
			t.SortIndicesByNumber(s.Descending)
		case OpSortEntries:
			t.SortElementsByIndex(s.Descending)
		}
	}

	log.Info("pipeline done",
		zap.Int("steps", len(cfg.Steps)),
		zap.Strings("axes", t.AxisNames()),
		zap.Int("entries", t.NumEntries()),
	)

	return nil
}
