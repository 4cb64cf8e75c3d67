// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition and subtraction, scalar scaling, transpose,
// row/column extraction, dot product and matrix multiplication. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches. Inputs are never mutated; every result is a fresh *Dense.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDot       = "Dot"
	opRow       = "Row"
	opCol       = "Col"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, or a read error from a, b.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign int, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j, av, bv int
	for i = 1; i <= rows; i++ {
		for j = 1; j <= cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are s * m[i,j].
// The original matrix is never mutated; see (*Dense).ScaleInPlace for the
// mutating variant.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: If *Dense, flat multiply; else generic i→j At/Set scaling.
//
// Notes:
//   - s = 0 yields an explicit zero matrix with the same shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, s int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * s
		}

		return res, nil
	}

	var i, j, v int
	for i = 1; i <= rows; i++ {
		for j = 1; j <= cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, v*s); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: copy m[i,j] into res[j,i] in fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	// Fast-path for Dense → Dense: data[i*cols + j] → res.data[j*rows + i]
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v int
	for i = 1; i <= rows; i++ {
		for j = 1; j <= cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Row extracts the 1-based row i of m as a fresh 1×Cols() matrix.
//
// Errors: ErrNilMatrix, ErrOutOfRange when i∉[1,Rows()].
// Complexity: O(Cols()).
func Row(m Matrix, i int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if i < 1 || i > m.Rows() {
		return nil, matrixErrorf(opRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}

	cols := m.Cols()
	res, err := NewDense(1, cols)
	if err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if dm, ok := m.(*Dense); ok {
		copy(res.data, dm.data[(i-1)*cols:i*cols])
		return res, nil
	}

	var j, v int
	for j = 1; j <= cols; j++ {
		if v, err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opRow, err)
		}
		res.data[j-1] = v
	}

	return res, nil
}

// Col extracts the 1-based column j of m as a fresh Rows()×1 matrix.
//
// Errors: ErrNilMatrix, ErrOutOfRange when j∉[1,Cols()].
// Complexity: O(Rows()).
func Col(m Matrix, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	if j < 1 || j > m.Cols() {
		return nil, matrixErrorf(opCol, fmt.Errorf("column %d: %w", j, ErrOutOfRange))
	}

	rows := m.Rows()
	res, err := NewDense(rows, 1)
	if err != nil {
		return nil, matrixErrorf(opCol, err)
	}

	var i, v int
	for i = 1; i <= rows; i++ {
		if v, err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opCol, err)
		}
		res.data[i-1] = v
	}

	return res, nil
}

// Dot computes the dot product of a 1×n row matrix a and an n×1 column matrix b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch unless CanDot(a, b).
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b Matrix) (int, error) {
	if err := ValidateDotCompatible(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	var (
		k, av, bv int
		sum       int
		err       error
	)
	n := a.Cols()
	for k = 1; k <= n; k++ {
		if av, err = a.At(1, k); err != nil {
			return 0, matrixErrorf(opDot, err)
		}
		if bv, err = b.At(k, 1); err != nil {
			return 0, matrixErrorf(opDot, err)
		}
		sum += av * bv
	}

	return sum, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Entry C[i,j] is the dot product of row i of A with column j of B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Extract every column of B once.
//   - Stage 3: For each row i of A (fixed order), extract it and Dot it with each column.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) (result plus cached columns).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, cols := a.Rows(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	columns := make([]*Dense, cols)
	var i, j int
	for j = 1; j <= cols; j++ {
		if columns[j-1], err = Col(b, j); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
	}

	var (
		row *Dense
		v   int
	)
	for i = 1; i <= rows; i++ {
		if row, err = Row(a, i); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		for j = 1; j <= cols; j++ {
			if v, err = Dot(row, columns[j-1]); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			res.data[(i-1)*cols+(j-1)] = v
		}
	}

	return res, nil
}
