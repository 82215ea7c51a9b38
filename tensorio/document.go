// SPDX-License-Identifier: MIT
// Package tensorio: YAML tensor documents.
//
// Contract:
//   - Read validates what it decodes (tensor.Tensor.Validate); a document
//     that decodes cleanly but violates the tensor invariants is rejected
//     with the tensor sentinel (ErrShapeMismatch, ErrDuplicateAxis, ...).
//   - Unknown keys are rejected (ErrMalformed).
//   - Write emits flow-style lists so large tensors stay compact.

package tensorio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/tensorcomp/tensor"
	"gopkg.in/yaml.v3"
)

// Document is the YAML shape of a float64 coordinate tensor.
type Document struct {
	Axes         []string       `yaml:"axes,flow"`
	Coefficients []float64      `yaml:"coefficients,flow"`
	Indices      []tensor.Index `yaml:"indices,flow"`
}

// FromTensor captures t as a Document (copies).
func FromTensor(t *tensor.Tensor[float64]) Document {
	return Document{
		Axes:         t.AxisNames(),
		Coefficients: t.Coefficients(),
		Indices:      t.Indices(),
	}
}

// Tensor builds and validates the tensor described by d.
func (d Document) Tensor() (*tensor.Tensor[float64], error) {
	t := tensor.New(d.Axes, d.Coefficients, d.Indices)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Read decodes one YAML tensor document from r.
func Read(r io.Reader) (*tensor.Tensor[float64], error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("tensorio: empty document: %w", ErrMalformed)
		}
		return nil, fmt.Errorf("tensorio: %v: %w", err, ErrMalformed)
	}

	t, err := doc.Tensor()
	if err != nil {
		return nil, fmt.Errorf("tensorio: %w", err)
	}

	return t, nil
}

// Write encodes t as a YAML tensor document.
func Write(w io.Writer, t *tensor.Tensor[float64]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromTensor(t)); err != nil {
		return fmt.Errorf("tensorio: encode: %w", err)
	}

	return enc.Close()
}

// Load reads a YAML tensor document from path.
func Load(path string) (*tensor.Tensor[float64], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Read(bytes.NewReader(data))
}

// Save writes t to path as a YAML tensor document.
func Save(path string, t *tensor.Tensor[float64]) error {
	var buf bytes.Buffer
	if err := Write(&buf, t); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
