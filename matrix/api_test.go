// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for the public API facades.
package matrix_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewZerosAndIdentity(t *testing.T) {
	t.Parallel()
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.True(t, z.IsZero())

	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestLikeConstructors(t *testing.T) {
	t.Parallel()
	src := RandFilled(t, 3, 2, 4)

	z, err := matrix.ZerosLike(src)
	require.NoError(t, err)
	require.True(t, matrix.SameShape(src, z))
	require.True(t, z.IsZero())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.IdentityLike(src)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	I, err := matrix.IdentityLike(MustDense(t, 4, 4))
	require.NoError(t, err)
	require.True(t, I.IsIdentity())
}

func TestCloneMatrix(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	c := matrix.CloneMatrix(m)
	require.True(t, matrix.Equal(m, c))
	MustSet(t, c, 2, 2, 0)
	require.Equal(t, 4, MustAt(t, m, 2, 2))
}

func TestFacadesDelegate(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]int{{5, 6}, {7, 8}})

	s, err := matrix.Sum(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{6, 8}, {10, 12}}, s)

	d, err := matrix.Diff(b, a)
	require.NoError(t, err)
	CompareExact(t, [][]int{{4, 4}, {4, 4}}, d)

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{19, 22}, {43, 50}}, p)

	tr, err := matrix.T(a)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 3}, {2, 4}}, tr)

	sc, err := matrix.ScaleBy(a, -1)
	require.NoError(t, err)
	CompareExact(t, [][]int{{-1, -2}, {-3, -4}}, sc)

	det, err := matrix.Det(a)
	require.NoError(t, err)
	require.Equal(t, -2, det)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errInjected }

func TestFprint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, MustFromRows(t, [][]int{{1, 2}, {3, 4}})))
	require.Equal(t, "1 2\n3 4\n", buf.String())

	buf.Reset()
	require.NoError(t, matrix.Fprint(&buf, hide{MustFromRows(t, [][]int{{-10}, {0}})}))
	require.Equal(t, "-10\n0\n", buf.String())

	require.ErrorIs(t, matrix.Fprint(&buf, nil), matrix.ErrNilMatrix)

	err := matrix.Fprint(failWriter{}, MustDense(t, 1, 1))
	require.True(t, errors.Is(err, errInjected))

	err = matrix.Fprint(&buf, faulty{Matrix: MustDense(t, 2, 2), row: 1, col: 2})
	require.ErrorIs(t, err, errInjected)
}
