// SPDX-License-Identifier: MIT
// Package: pipeline
//
// config.go — YAML description of a reorder pipeline.
//
// Contract:
//   • Decoding is strict: unknown keys (a misspelled "step:") are errors.
//   • A document without steps (empty file, "steps: []") means DefaultConfig.
//   • Validate checks ops only; permutations are checked against the tensor
//     at Run time.

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Step operations.
const (
	OpPermute     = "permute"
	OpMoveFirst   = "move_first"
	OpSortAxes    = "sort_axes"
	OpSortEntries = "sort_entries"
)

// Step is one reordering. Only the fields relevant to Op are read.
type Step struct {
	// Op is one of OpPermute, OpMoveFirst, OpSortAxes, OpSortEntries.
	Op string `yaml:"op"`

	// Axes lists the axis names promoted by OpMoveFirst.
	Axes []string `yaml:"axes,omitempty,flow"`

	// Perm is the explicit axis permutation of OpPermute: axis i of the
	// result is former axis Perm[i].
	Perm []int `yaml:"perm,omitempty,flow"`

	// Descending flips the order of OpSortAxes and OpSortEntries.
	Descending bool `yaml:"descending,omitempty"`
}

// Config is an ordered list of steps, applied first to last.
type Config struct {
	Steps []Step `yaml:"steps"`
}

// DefaultConfig is the canonical reducer layout: low-cardinality axes
// first, then entries in ascending lexicographic order.
func DefaultConfig() *Config {
	return &Config{
		Steps: []Step{
			{Op: OpSortAxes},
			{Op: OpSortEntries},
		},
	}
}

// Validate checks that there is at least one step and every op is known.
//
// Errors: ErrEmptyPipeline, ErrUnknownOp (with the step number).
// Complexity: O(len(Steps)).
func (c *Config) Validate() error {
	if len(c.Steps) == 0 {
		return ErrEmptyPipeline
	}
	for i, s := range c.Steps {
		switch s.Op {
		case OpPermute, OpMoveFirst, OpSortAxes, OpSortEntries:
		default:
			return fmt.Errorf("step %d: %q: %w", i, s.Op, ErrUnknownOp)
		}
	}

	return nil
}

// Load reads a YAML pipeline from path. A file without steps falls back to
// DefaultConfig.
//
// Errors: file errors, ErrMalformed (bad YAML or unknown keys), Validate errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	cfg := &Config{}
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %v: %w", path, err, ErrMalformed)
	}
	if len(cfg.Steps) == 0 {
		return DefaultConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
