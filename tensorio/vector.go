// SPDX-License-Identifier: MIT
// Package tensorio: dense vector files (right-hand sides, per-cell results).
//
// Layout: two header lines, a size line "rows 1", then one value per row.
// Lines starting with '%' are comments. Values may also share a line; the
// reader only counts whitespace-separated fields.

package tensorio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header lines written by WriteVector.
const vectorBanner = "%%MatrixMarket matrix array real general"

// WriteVector writes v as a single-column array file.
// Complexity: O(len(v)).
func WriteVector(w io.Writer, v []float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, vectorBanner)
	fmt.Fprintln(bw, coordinateComment)
	fmt.Fprintf(bw, "%d 1\n", len(v))
	for _, x := range v {
		fmt.Fprintf(bw, "%.17g\n", x)
	}

	return bw.Flush()
}

// ReadVector parses a single-column array file.
//
// Errors: ErrMalformed for a missing or bad size line, a column count other
// than 1, a bad value, or a value count that differs from the header.
// Complexity: O(rows).
func ReadVector(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	line := 0
	rows := -1
	var out []float64

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		fields := strings.Fields(text)

		if rows < 0 { // size line
			sizes, err := atoiAll(fields, 2)
			if err != nil {
				return nil, malformed(line, err.Error())
			}
			if sizes[0] < 0 || sizes[1] != 1 {
				return nil, malformed(line, fmt.Sprintf("size %dx%d, want n x 1", sizes[0], sizes[1]))
			}
			rows = sizes[0]
			out = make([]float64, 0, min(rows, maxPrealloc))
			continue
		}

		for _, f := range fields {
			if len(out) == rows {
				return nil, malformed(line, fmt.Sprintf("more than the %d announced values", rows))
			}
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, malformed(line, err.Error())
			}
			out = append(out, x)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if rows < 0 {
		return nil, fmt.Errorf("tensorio: missing size line: %w", ErrMalformed)
	}
	if len(out) != rows {
		return nil, fmt.Errorf("tensorio: header announces %d values, found %d: %w", rows, len(out), ErrMalformed)
	}

	return out, nil
}
