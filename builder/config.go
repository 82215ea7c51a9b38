// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil            (stochastic constructors then fail with ErrNeedRandSource)
//   • valueFn = uniformValue   (rng.Float64() in [0,1); 1.0 without an RNG)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng     *rand.Rand               // RNG for stochastic choices; nil means none
	valueFn func(*rand.Rand) float64 // coefficient generator
}

// defaultValue is the coefficient drawn when no RNG is configured.
const defaultValue = 1.0

// uniformValue draws from U[0,1) or falls back to defaultValue.
func uniformValue(r *rand.Rand) float64 {
	if r == nil {
		return defaultValue
	}

	return r.Float64()
}

// newBuilderConfig applies opts in order over the defaults (later wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		valueFn: uniformValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
