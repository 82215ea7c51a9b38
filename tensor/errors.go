// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
//
// Every message carries the "tensor: " prefix. Methods wrap these sentinels
// with their own name via tensorErrorf; callers branch with errors.Is.
//
// Two tiers:
//   - structural contract violations (bad permutation, bad shape) are errors;
//   - missing axis names are NOT errors anywhere in this package.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPermutation indicates that a permutation is not a bijection
	// onto {0..n-1}: wrong length, repeated value or out-of-range value.
	ErrInvalidPermutation = errors.New("tensor: invalid permutation")

	// ErrShapeMismatch indicates len(indices) != numAxes*numEntries.
	ErrShapeMismatch = errors.New("tensor: indices length does not match axes×entries")

	// ErrDuplicateAxis indicates that two axes share the same name.
	ErrDuplicateAxis = errors.New("tensor: duplicate axis name")

	// ErrNegativeIndex indicates a negative index value; index values are
	// non-negative labels.
	ErrNegativeIndex = errors.New("tensor: negative index value")

	// ErrOutOfRange indicates an entry position outside [0, numEntries).
	ErrOutOfRange = errors.New("tensor: entry out of range")
)

// tensorErrorf attaches a method tag to a sentinel: "<method>: <detail>: <err>".
func tensorErrorf(method, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
