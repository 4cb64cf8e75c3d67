// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface consumed by every kernel.
// Coordinates are 1-based everywhere on this surface, mirroring the usual
// mathematical notation a[i,j] with i,j starting at 1.
package matrix

// Matrix represents a two-dimensional mutable grid of int values.
// Implementations must keep Rows() and Cols() fixed for the lifetime of the
// value and must bounds-check every access.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix (always ≥ 1).
	Rows() int

	// Cols returns the number of columns in the matrix (always ≥ 1).
	Cols() int

	// At retrieves the element at 1-based position (row, col).
	// Returns ErrOutOfRange if row∉[1,Rows()] or col∉[1,Cols()].
	At(row, col int) (int, error)

	// Set assigns v at 1-based position (row, col).
	// Returns ErrOutOfRange if indices are invalid.
	Set(row, col, v int) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
