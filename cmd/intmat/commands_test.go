// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/intmatrix/internal/literal"
	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command with args and returns captured stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func TestDet(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"2x2", []string{"det", "3,5;2,4"}, "2\n"},
		{"3x3", []string{"det", "2,-3,1;2,0,-1;1,4,5"}, "49\n"},
		{"identity", []string{"det", "1,0;0,1"}, "1\n"},
		{"no shortcuts", []string{"det", "--shortcuts=false", "0,0;0,0"}, "0\n"},
		{"within limit", []string{"det", "--max-order", "3", "1,2;3,4"}, "-2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestDet_Stats(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "det", "--stats", "1,0,2,-1;3,0,0,5;2,1,4,-3;1,0,5,0")
	require.NoError(t, err)
	require.Equal(t, "30\ndepth=2 minors=16 shortcut=false\n", out)
}

func TestDet_Errors(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, "det", "1,2,3;4,5,6")
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Contains(t, stderr, "Error:")

	_, _, err = execute(t, "det", "--max-order", "2", "1,2,3;4,5,6;7,8,10")
	require.ErrorIs(t, err, matrix.ErrOrderLimit)

	_, _, err = execute(t, "det", "--max-order", "-1", "1")
	require.ErrorIs(t, err, errNegativeMaxOrder)

	_, _, err = execute(t, "det", "1,2;3")
	require.ErrorIs(t, err, literal.ErrSyntax)

	_, _, err = execute(t, "det")
	require.Error(t, err)
}

func TestDet_ConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "intmat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("det:\n  max_order: 2\n"), 0o600))

	_, _, err := execute(t, "--config", path, "det", "1,2,3;4,5,6;7,8,10")
	require.ErrorIs(t, err, matrix.ErrOrderLimit)

	// Flags override the file.
	out, _, err := execute(t, "--config", path, "det", "--max-order", "0", "1,2,3;4,5,6;7,8,10")
	require.NoError(t, err)
	require.Equal(t, "-3\n", out)

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "det", "1")
	require.Error(t, err)
}

// Not parallel: t.Setenv mutates the process environment.
func TestDet_Env(t *testing.T) {
	t.Setenv("INTMAT_DET_MAX_ORDER", "2")
	_, _, err := execute(t, "det", "1,2,3;4,5,6;7,8,10")
	require.ErrorIs(t, err, matrix.ErrOrderLimit)

	out, _, err := execute(t, "det", "1,2;3,4")
	require.NoError(t, err)
	require.Equal(t, "-2\n", out)
}

func TestLogLevel(t *testing.T) {
	t.Parallel()
	_, stderr, err := execute(t, "--log-level", "debug", "det", "1,2;3,4")
	require.NoError(t, err)
	require.Contains(t, stderr, "determinant")
	require.Contains(t, stderr, "order=2")

	_, stderr, err = execute(t, "det", "1,2;3,4")
	require.NoError(t, err)
	require.NotContains(t, stderr, "determinant")

	_, _, err = execute(t, "--log-level", "loud", "det", "1")
	require.Error(t, err)
}

func TestMinor(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "minor", "1,2,3;4,5,6;7,8,9", "1", "2")
	require.NoError(t, err)
	require.Equal(t, "4 6\n7 9\n", out)

	_, _, err = execute(t, "minor", "1,2;3,4", "3", "1")
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, _, err = execute(t, "minor", "1,2;3,4", "x", "1")
	require.Error(t, err)
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "transpose", "1,2,3;4,5,6")
	require.NoError(t, err)
	require.Equal(t, "1 4\n2 5\n3 6\n", out)
}

func TestAddMulDotScale(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "add", "1,2;3,4", "5,6;7,8")
	require.NoError(t, err)
	require.Equal(t, "6 8\n10 12\n", out)

	_, _, err = execute(t, "add", "1,2", "1;2")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	out, _, err = execute(t, "mul", "1,2;3,4", "5,6;7,8")
	require.NoError(t, err)
	require.Equal(t, "19 22\n43 50\n", out)

	out, _, err = execute(t, "dot", "1,2,3", "4;5;6")
	require.NoError(t, err)
	require.Equal(t, "32\n", out)

	_, _, err = execute(t, "dot", "4;5;6", "1,2,3")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	out, _, err = execute(t, "scale", "--", "-1,2;3,4", "-3")
	require.NoError(t, err)
	require.Equal(t, "3 -6\n-9 -12\n", out)
}
