// SPDX-License-Identifier: MIT

// Package matrix - determinant engine (recursive first-row Laplace expansion).
//
// Purpose:
//   - Compute exact integer determinants of square matrices.
//   - Build every minor as an independent *Dense (no views into the parent),
//     so the input is read-only and sibling/child frames never share state.
//   - Express all index arithmetic in 1-based coordinates; storage offsets stay
//     behind (*Dense).indexOf.
//
// Base cases, checked in this order at every level:
//  1. zero matrix → 0, identity matrix → 1 (fast paths, WithShortcuts(false) disables),
//  2. order 1     → a[1,1],
//  3. order 2     → a[1,1]*a[2,2] - a[1,2]*a[2,1].
//
// Recursive case (order n ≥ 3):
//
//	det(A) = Σ_{i=1..n} (-1)^(i+1) · a[1,i] · det(M_i),  M_i = Minor(A, 1, i)
//
// Complexity quicksheet:
//   - Time O(n!) multiplications; live memory O(n²) along the current call path.
//   - Recursion depth n-2 for n ≥ 3 (0 for n ≤ 2).

package matrix

import "fmt"

const (
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
)

// Expansion reports the outcome of one determinant evaluation.
type Expansion struct {
	Value    int  // the determinant
	Depth    int  // deepest recursion level reached; the top-level call is level 0
	Minors   int  // number of minor matrices materialized
	Shortcut bool // the top-level call was answered by the zero/identity fast path
}

// Determinant returns det(m) computed by recursive cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - Exact integer determinant; the input is never mutated.
//
// Implementation:
//   - Stage 1: delegate to Expand and discard the statistics.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrInvalidShape), ErrOrderLimit,
//     or any read error reported by m.
//
// Complexity:
//   - Time O(n!), Space O(n²) live.
func Determinant(m Matrix, opts ...Option) (int, error) {
	ex, err := Expand(m, opts...)
	if err != nil {
		return 0, err
	}

	return ex.Value, nil
}

// Expand computes det(m) and reports how the expansion unfolded.
// MAIN DESCRIPTION:
//   - Same contract as Determinant, plus recursion statistics (Expansion).
//
// Implementation:
//   - Stage 1: resolve options; validate non-nil and square.
//   - Stage 2: enforce the optional order limit.
//   - Stage 3: run the recursive expander from level 0.
//
// Behavior highlights:
//   - All-or-nothing: on error no partial value is returned.
//   - Only the top-level shape is checked; minors are square by construction.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderLimit, or a wrapped read error from m.
//
// Determinism:
//   - Columns are expanded in increasing order 1..n; the sign starts at + for column 1.
func Expand(m Matrix, opts ...Option) (Expansion, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(m); err != nil {
		return Expansion{}, matrixErrorf(opDeterminant, err)
	}
	if o.maxOrder > 0 && m.Rows() > o.maxOrder {
		return Expansion{}, matrixErrorf(opDeterminant,
			fmt.Errorf("order %d > %d: %w", m.Rows(), o.maxOrder, ErrOrderLimit))
	}

	e := expander{shortcuts: o.shortcuts}
	v, err := e.det(m, 0)
	if err != nil {
		return Expansion{}, matrixErrorf(opDeterminant, err)
	}

	return Expansion{
		Value:    v,
		Depth:    e.depth,
		Minors:   e.minors,
		Shortcut: e.shortcut,
	}, nil
}

// expander carries per-evaluation bookkeeping through the recursion.
// One expander serves exactly one Expand call.
type expander struct {
	shortcuts bool
	depth     int  // max level seen
	minors    int  // minors built
	shortcut  bool // level-0 fast path hit
}

// det evaluates the determinant of the square matrix m found at recursion level.
func (e *expander) det(m Matrix, level int) (int, error) {
	if level > e.depth {
		e.depth = level
	}

	if e.shortcuts {
		switch {
		case IsZero(m):
			e.shortcut = e.shortcut || level == 0
			return 0, nil
		case IsIdentity(m):
			e.shortcut = e.shortcut || level == 0
			return 1, nil
		}
	}

	r := cellReader{m: m}
	switch m.Rows() {
	case 1:
		return m.At(1, 1)
	case 2:
		v := r.at(1, 1)*r.at(2, 2) - r.at(1, 2)*r.at(2, 1)
		return v, r.err
	}

	var (
		total int
		sign  = 1
	)
	n := m.Cols()
	for i := 1; i <= n; i++ {
		minor, err := Minor(m, 1, i)
		if err != nil {
			return 0, err
		}
		e.minors++

		sub, err := e.det(minor, level+1)
		if err != nil {
			return 0, err
		}

		total += sign * r.at(1, i) * sub
		if r.err != nil {
			return 0, r.err
		}
		sign = -sign
	}

	return total, nil
}

// cellReader reads entries of m and keeps the first error it meets; later
// reads return 0 once err is set.
type cellReader struct {
	m   Matrix
	err error
}

func (r *cellReader) at(row, col int) int {
	if r.err != nil {
		return 0
	}
	v, err := r.m.At(row, col)
	r.err = err

	return v
}

// Minor returns a fresh (r-1)×(c-1) matrix equal to m with the 1-based row and
// column removed.
// MAIN DESCRIPTION:
//   - Minor entry (j,k) is read from source row j if j < row else j+1, and from
//     source column k if k < col else k+1.
//
// Implementation:
//   - Stage 1: validate m non-nil and (row, col) inside m.
//   - Stage 2: allocate the result (fails with ErrInvalidShape if m has a single row or column).
//   - Stage 3: copy entries in fixed j→k order with the index shift above.
//
// Behavior highlights:
//   - Never aliases m; the result owns its storage.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrInvalidShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	rows, cols := m.Rows()-1, m.Cols()-1
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	var j, k, srcRow, srcCol, v int
	for j = 1; j <= rows; j++ {
		srcRow = j
		if j >= row {
			srcRow = j + 1 // skip the omitted row
		}
		for k = 1; k <= cols; k++ {
			srcCol = k
			if k >= col {
				srcCol = k + 1 // skip the omitted column
			}
			if v, err = m.At(srcRow, srcCol); err != nil {
				return nil, matrixErrorf(opMinor, err)
			}
			if err = res.Set(j, k, v); err != nil {
				return nil, matrixErrorf(opMinor, err)
			}
		}
	}

	return res, nil
}

// Cofactor returns (-1)^(row+col) · det(Minor(m, row, col)).
// m must be square of order ≥ 2; opts are forwarded to the determinant engine
// and the order limit applies to the minor.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrInvalidShape (order 1), ErrOrderLimit.
//
// Complexity:
//   - Time O((n-1)!).
func Cofactor(m Matrix, row, col int, opts ...Option) (int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	minor, err := Minor(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	d, err := Determinant(minor, opts...)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if (row+col)%2 != 0 {
		d = -d
	}

	return d, nil
}
