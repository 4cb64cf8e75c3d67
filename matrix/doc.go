// Package matrix offers an exact integer matrix type and the linear-algebra
// kernels that operate on it.
//
// The matrix package provides:
//
//   - Dense: a row-major int matrix with 1-based, bounds-checked At/Set.
//   - Constructors (NewDense, NewFromRows, NewIdentity) with strict shape checks.
//   - Structural predicates (IsSquare, IsZero, IsIdentity, SameShape, Equal, …).
//   - Kernels returning fresh matrices: Add, Sub, Scale, Transpose, Mul, plus Dot.
//   - The determinant engine: Determinant / Expand run a recursive first-row
//     Laplace expansion over freshly built minors (Minor), with optional
//     zero/identity fast paths and an optional order limit (see Option).
//
// All arithmetic is done in Go int; there is no rounding and no overflow
// detection. The cofactor expansion costs O(n!) multiplications, so callers
// handling untrusted input should cap the order with WithMaxOrder.
//
// Errors are sentinels (ErrInvalidShape, ErrNonSquare, ErrDimensionMismatch,
// ErrOutOfRange, ErrNilMatrix, ErrOrderLimit) wrapped with call-site context;
// match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
