// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for nonsensical Option arguments.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & WRAPPING
// -------------------------
// Every message is prefixed with "matrix: ..." for easy grepping.
// Shape failures form a small hierarchy: ErrNonSquare and ErrDimensionMismatch
// wrap ErrInvalidShape, so a caller that only cares about "wrong shape" can test
// errors.Is(err, ErrInvalidShape) while tests can still tell the cases apart.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> order limit.

var (
	// ErrInvalidShape is returned when a requested or supplied shape is invalid:
	// non-positive dimensions, an empty or ragged grid, or a shape an operation
	// cannot accept.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a 1-based row or column index lies outside
	// [1, Rows()] or [1, Cols()]. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix argument was supplied.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOrderLimit is returned by the determinant engine when the input order
	// exceeds the limit configured with WithMaxOrder.
	ErrOrderLimit = errors.New("matrix: order exceeds configured limit")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidShape)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidShape)
)
