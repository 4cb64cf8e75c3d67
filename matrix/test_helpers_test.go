// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep entries small so products in determinant tests stay far from int overflow.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// entrySpan bounds RandFilled entries to [-entrySpan, entrySpan].
const entrySpan = 9

// errInjected is returned by faulty for its poisoned cell.
var errInjected = errors.New("injected read failure")

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods.
//   - Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// faulty forwards to Matrix but fails reads of one cell with errInjected.
type faulty struct {
	matrix.Matrix
	row, col int
}

func (f faulty) At(row, col int) (int, error) {
	if row == f.row && col == f.col {
		return 0, errInjected
	}

	return f.Matrix.At(row, col)
}

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows BUILDS a *Dense from a literal grid or fails the test.
//
// AI-Hints:
//   - Use with CompareExact for small hand-computed fixtures.
func MustFromRows(t testing.TB, grid [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(grid)
	require.NoError(t, err, "NewFromRows(%v)", grid)

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return m
}

// MustAt READS m[i,j] (1-based) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES v to m[i,j] (1-based) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j, v int) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%d)", i, j, v)
}

// MustDet RETURNS Determinant(m, opts...) or fails the test.
func MustDet(t testing.TB, m matrix.Matrix, opts ...matrix.Option) int {
	t.Helper()
	d, err := matrix.Determinant(m, opts...)
	require.NoError(t, err)

	return d
}

// RandFilled RETURNS a new r×c Dense with deterministic entries in [-entrySpan, entrySpan].
// Implementation:
//   - Stage 1: Allocate Dense.
//   - Stage 2: Fill via seeded RNG, row-major.
//
// Determinism:
//   - Deterministic per seed.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 1; i <= r; i++ {
		for j = 1; j <= c; j++ {
			MustSet(t, m, i, j, rng.Intn(2*entrySpan+1)-entrySpan)
		}
	}

	return m
}

// CompareExact ASSERTS that m has exactly the entries of want (row-major grid).
func CompareExact(t testing.TB, want [][]int, m matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	var i, j int
	for i = 1; i <= m.Rows(); i++ {
		for j = 1; j <= m.Cols(); j++ {
			require.Equalf(t, want[i-1][j-1], MustAt(t, m, i, j), "entry [%d,%d]", i, j)
		}
	}
}

// ipow returns b^e for small non-negative e.
func ipow(b, e int) int {
	out := 1
	for ; e > 0; e-- {
		out *= b
	}

	return out
}
