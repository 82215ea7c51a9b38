// SPDX-License-Identifier: MIT
// Package tensorio: coordinate matrix files.
//
// Layout: two header lines, a size line "rows cols entries", then one
// "i j value" line per triplet with 1-based i and j. Lines starting with
// '%' are comments; ReadCoordinate skips them wherever they appear.
// Values are written with %.17g so float64 survives a round trip exactly.

package tensorio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tensorcomp/convert"
)

// Header lines written by WriteCoordinate.
const (
	coordinateBanner  = "%%MatrixMarket matrix coordinate real general"
	coordinateComment = "% written by tensorcomp"
)

// maxPrealloc bounds the capacity reserved from a header count.
const maxPrealloc = 1 << 16

// WriteCoordinate writes tr in coordinate format.
func WriteCoordinate(w io.Writer, tr *convert.Triplets[float64]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, coordinateBanner)
	fmt.Fprintln(bw, coordinateComment)
	fmt.Fprintf(bw, "%d %d %d\n", tr.NumRows, tr.NumCols, tr.Len())
	for k, v := range tr.Values {
		fmt.Fprintf(bw, "%d %d %.17g\n", tr.Rows[k]+1, tr.Cols[k]+1, v) // 1-based on disk
	}

	return bw.Flush()
}

// ReadCoordinate parses a coordinate matrix file into 0-based triplets.
//
// The entry count may exceed rows*cols: duplicated coordinates are legal and
// WriteCoordinate keeps them. Reading stops at the first entry beyond the
// announced count, so a bogus count never drives allocation.
//
// Errors: ErrMalformed for a missing or bad size line, bad fields, indices
// outside [1, rows]×[1, cols], or an entry count that differs from the header.
func ReadCoordinate(r io.Reader) (*convert.Triplets[float64], error) {
	sc := bufio.NewScanner(r)
	line := 0
	var tr *convert.Triplets[float64]
	want := 0

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		fields := strings.Fields(text)

		if tr == nil { // size line
			sizes, err := atoiAll(fields, 3)
			if err != nil {
				return nil, malformed(line, err.Error())
			}
			if sizes[0] < 0 || sizes[1] < 0 || sizes[2] < 0 {
				return nil, malformed(line, "negative size")
			}
			if sizes[2] > 0 && (sizes[0] == 0 || sizes[1] == 0) {
				return nil, malformed(line, fmt.Sprintf("%d entries in a %dx%d matrix", sizes[2], sizes[0], sizes[1]))
			}
			tr = &convert.Triplets[float64]{NumRows: sizes[0], NumCols: sizes[1]}
			want = sizes[2]
			n := min(want, maxPrealloc) // header is untrusted; append grows the rest
			tr.Rows = make([]int, 0, n)
			tr.Cols = make([]int, 0, n)
			tr.Values = make([]float64, 0, n)
			continue
		}

		if len(fields) != 3 {
			return nil, malformed(line, fmt.Sprintf("want 3 fields, got %d", len(fields)))
		}
		ij, err := atoiAll(fields[:2], 2)
		if err != nil {
			return nil, malformed(line, err.Error())
		}
		if ij[0] < 1 || ij[0] > tr.NumRows || ij[1] < 1 || ij[1] > tr.NumCols {
			return nil, malformed(line, fmt.Sprintf("(%d,%d) outside %dx%d", ij[0], ij[1], tr.NumRows, tr.NumCols))
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, malformed(line, err.Error())
		}
		if tr.Len() == want {
			return nil, malformed(line, fmt.Sprintf("more than the %d announced entries", want))
		}
		tr.Rows = append(tr.Rows, ij[0]-1)
		tr.Cols = append(tr.Cols, ij[1]-1)
		tr.Values = append(tr.Values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if tr == nil {
		return nil, fmt.Errorf("tensorio: missing size line: %w", ErrMalformed)
	}
	if tr.Len() != want {
		return nil, fmt.Errorf("tensorio: header announces %d entries, found %d: %w", want, tr.Len(), ErrMalformed)
	}

	return tr, nil
}

// atoiAll parses exactly n integer fields.
func atoiAll(fields []string, n int) ([]int, error) {
	if len(fields) != n {
		return nil, fmt.Errorf("want %d integers, got %d fields", n, len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func malformed(line int, detail string) error {
	return fmt.Errorf("tensorio: line %d: %s: %w", line, detail, ErrMalformed)
}
