// SPDX-License-Identifier: MIT
// Package pipeline: sentinel error set. Callers branch with errors.Is;
// tensor errors raised by a step (tensor.ErrInvalidPermutation) pass
// through wrapped with the step number.

package pipeline

import "errors"

var (
	// ErrUnknownOp indicates a step whose op is not one of the Op* constants.
	ErrUnknownOp = errors.New("pipeline: unknown op")

	// ErrEmptyPipeline indicates a configuration without steps.
	ErrEmptyPipeline = errors.New("pipeline: no steps")

	// ErrMalformed indicates a pipeline file that is not valid YAML or
	// carries unknown keys.
	ErrMalformed = errors.New("pipeline: malformed config")
)
