// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major int buffer with the explicit index formula (i-1)*cols + (j-1).
//   - Keep the ONLY 1-based → 0-based translation in indexOf; everything above it
//     (kernels, determinant recursion) speaks 1-based coordinates.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); NewFromRows: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"           // method tag used in error wrappers
	ctxSet          = "Set"          // method tag used in error wrappers
	ctxMakeIdentity = "MakeIdentity" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: 1-based coordinates as supplied by the caller
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order.
type Dense struct {
	r, c int   // row and column counts
	data []int // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an rows×cols zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidShape.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidShape)
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewFromRows builds a Dense from a rectangular grid, copying every entry.
// MAIN DESCRIPTION:
//   - Grid constructor: grid[i][j] becomes entry (i+1, j+1).
//
// Implementation:
//   - Stage 1: reject an empty grid or an empty first row.
//   - Stage 2: allocate via NewDense using the first row's length as width.
//   - Stage 3: copy row by row, rejecting ragged rows.
//
// Behavior highlights:
//   - The result never aliases grid; later writes to grid are not observed.
//
// Errors:
//   - ErrInvalidShape for empty or ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(grid [][]int) (*Dense, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: empty grid: %w", ErrInvalidShape)
	}
	rows, cols := len(grid), len(grid[0])
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d entries, want %d: %w",
				i+1, len(row), cols, ErrInvalidShape)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf converts 1-based (row, col) into the row-major offset or returns ErrOutOfRange.
// This is the single translation point between the public 1-based contract
// and 0-based storage.
//
// Implementation:
//   - Stage 1: validate 1 ≤ row ≤ m.r and 1 ≤ col ≤ m.c.
//   - Stage 2: compute (row-1)*m.c + (col-1).
//
// Returns:
//   - (offset, nil) on success; (0, ErrOutOfRange) otherwise (unwrapped; callers add context).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 1 || row > m.r {
		return 0, ErrOutOfRange
	}
	if col < 1 || col > m.c {
		return 0, ErrOutOfRange
	}

	return (row-1)*m.c + (col - 1), nil
}

// At returns the value at 1-based (row, col) or ErrOutOfRange.
// Never panics on out-of-range coordinates.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at 1-based (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer). The dynamic type is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Rows2D returns a deep copy of the entries as a [][]int grid (0-based slices).
// Mutating the result does not affect m.
// Complexity: O(r*c).
func (m *Dense) Rows2D() [][]int {
	out := make([][]int, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		row := make([]int, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsZero reports whether every entry is 0.
// Complexity: O(r*c) worst case; stops at the first non-zero entry.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is square with ones on the diagonal and zeros elsewhere.
// Complexity: O(n²) worst case; stops at the first mismatch.
func (m *Dense) IsIdentity() bool {
	if m.r != m.c {
		return false
	}
	var i, j, want int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if m.data[i*m.c+j] != want {
				return false
			}
		}
	}

	return true
}

// MakeZero overwrites every entry with 0, in place.
// Complexity: O(r*c).
func (m *Dense) MakeZero() {
	clear(m.data)
}

// MakeIdentity turns a square m into the identity, in place.
// A non-square m is left untouched and ErrNonSquare is returned.
// Complexity: O(n²).
func (m *Dense) MakeIdentity() error {
	if m.r != m.c {
		return denseErrorf(ctxMakeIdentity, m.r, m.c, ErrNonSquare)
	}
	clear(m.data)
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return nil
}

// ScaleInPlace multiplies every entry by s, mutating m.
// Use Scale for a copy-producing variant.
// Complexity: O(r*c).
func (m *Dense) ScaleInPlace(s int) {
	for idx := range m.data {
		m.data[idx] *= s
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//     Use Fprint for the plain space-separated layout.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
