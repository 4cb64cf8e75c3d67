// SPDX-License-Identifier: MIT

// Package matrix: structural predicates over any Matrix.
// All predicates are pure, never fail, and report false for nil inputs.
// *Dense operands take a flat-slice fast path; other implementations are read
// through At in a fixed i→j order.

package matrix

// IsSquare reports whether m is non-nil and Rows() == Cols().
func IsSquare(m Matrix) bool {
	return m != nil && m.Rows() == m.Cols()
}

// IsZero reports whether every entry of m is 0.
func IsZero(m Matrix) bool {
	if m == nil {
		return false
	}
	if d, ok := m.(*Dense); ok {
		return d.IsZero()
	}

	return allEntries(m, func(_, _, v int) bool { return v == 0 })
}

// IsIdentity reports whether m is square with ones on the diagonal and zeros elsewhere.
func IsIdentity(m Matrix) bool {
	if !IsSquare(m) {
		return false
	}
	if d, ok := m.(*Dense); ok {
		return d.IsIdentity()
	}

	return allEntries(m, func(i, j, v int) bool {
		if i == j {
			return v == 1
		}
		return v == 0
	})
}

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b Matrix) bool {
	return a != nil && b != nil && a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

// OppositeShape reports whether a is r×c and b is c×r.
func OppositeShape(a, b Matrix) bool {
	return a != nil && b != nil && a.Rows() == b.Cols() && a.Cols() == b.Rows()
}

// Equal reports whether a and b have the same shape and the same entries.
func Equal(a, b Matrix) bool {
	if !SameShape(a, b) {
		return false
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}
			return true
		}
	}

	return allEntries(a, func(i, j, v int) bool {
		w, err := b.At(i, j)
		return err == nil && v == w
	})
}

// IsTransposeOf reports whether b == aᵀ, i.e. a[i,j] == b[j,i] for all i, j.
func IsTransposeOf(a, b Matrix) bool {
	if !OppositeShape(a, b) {
		return false
	}

	return allEntries(a, func(i, j, v int) bool {
		w, err := b.At(j, i)
		return err == nil && v == w
	})
}

// CanDot reports whether Dot(a, b) is defined: a is 1×n and b is n×1.
func CanDot(a, b Matrix) bool {
	return OppositeShape(a, b) && a.Rows() == 1 && b.Cols() == 1
}

// CanMultiply reports whether Mul(a, b) is defined: a.Cols() == b.Rows().
func CanMultiply(a, b Matrix) bool {
	return a != nil && b != nil && a.Cols() == b.Rows()
}

// allEntries walks m in i→j order (1-based) and stops at the first entry for
// which keep returns false. A read error counts as a failed predicate.
func allEntries(m Matrix, keep func(i, j, v int) bool) bool {
	rows, cols := m.Rows(), m.Cols()
	var i, j, v int
	var err error
	for i = 1; i <= rows; i++ {
		for j = 1; j <= cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return false
			}
			if !keep(i, j, v) {
				return false
			}
		}
	}

	return true
}
