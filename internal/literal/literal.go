// SPDX-License-Identifier: MIT

// Package literal reads and writes the compact matrix notation accepted on
// the intmat command line.
//
// Grammar:
//
//	matrix := row { ";" row }
//	row    := int { "," int }
//	int    := [ "+" | "-" ] digit { digit }
//
// Whitespace around separators and entries is ignored, so "1, 2; 3, 4" and
// "1,2;3,4" are the same 2×2 matrix. Every row must have the same length.
package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/intmatrix/matrix"
)

const (
	rowSep   = ";"
	entrySep = ","
)

// ErrSyntax indicates a malformed matrix literal.
var ErrSyntax = errors.New("literal: invalid matrix literal")

// Parse splits s into a rectangular grid of integers.
//
// Errors: ErrSyntax (wrapped with the 1-based row/column of the offending
// entry) for empty input, empty entries, non-integer entries and ragged rows.
func Parse(s string) ([][]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty input: %w", ErrSyntax)
	}

	rows := strings.Split(s, rowSep)
	grid := make([][]int, len(rows))
	width := -1
	for i, row := range rows {
		fields := strings.Split(row, entrySep)
		if width >= 0 && len(fields) != width {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i+1, len(fields), width, ErrSyntax)
		}
		width = len(fields)

		grid[i] = make([]int, width)
		for j, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				return nil, fmt.Errorf("entry (%d,%d) is empty: %w", i+1, j+1, ErrSyntax)
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("entry (%d,%d) %q: %w", i+1, j+1, f, errors.Join(ErrSyntax, err))
			}
			grid[i][j] = v
		}
	}

	return grid, nil
}

// ParseMatrix parses s and builds a *matrix.Dense from it.
func ParseMatrix(s string) (*matrix.Dense, error) {
	grid, err := Parse(s)
	if err != nil {
		return nil, err
	}

	return matrix.NewFromRows(grid)
}

// Format renders m in the notation accepted by Parse, without spaces.
// Parse(Format(m)) reproduces m exactly.
func Format(m matrix.Matrix) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", fmt.Errorf("literal.Format: %w", err)
	}

	var b strings.Builder
	var i, j, v int
	var err error
	for i = 1; i <= m.Rows(); i++ {
		if i > 1 {
			b.WriteString(rowSep)
		}
		for j = 1; j <= m.Cols(); j++ {
			if j > 1 {
				b.WriteString(entrySep)
			}
			if v, err = m.At(i, j); err != nil {
				return "", fmt.Errorf("literal.Format: %w", err)
			}
			b.WriteString(strconv.Itoa(v))
		}
	}

	return b.String(), nil
}
