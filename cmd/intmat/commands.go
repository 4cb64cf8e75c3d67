// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/intmatrix/internal/literal"
	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/spf13/cobra"
)

var errNegativeMaxOrder = errors.New("max order must be non-negative")

// parseMatrices parses every literal in args into a *matrix.Dense.
func parseMatrices(args []string) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, len(args))
	for i, s := range args {
		m, err := literal.ParseMatrix(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = m
	}

	return out, nil
}

// printMatrix writes m to the command's stdout, one row per line.
func printMatrix(cmd *cobra.Command, m matrix.Matrix) error {
	return matrix.Fprint(cmd.OutOrStdout(), m)
}

func (a *app) newDetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "det <matrix>",
		Short: "Determinant by cofactor expansion along the first row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMatrices(args)
			if err != nil {
				return err
			}
			maxOrder := a.v.GetInt(keyMaxOrder)
			if maxOrder < 0 {
				return fmt.Errorf("%s=%d: %w", keyMaxOrder, maxOrder, errNegativeMaxOrder)
			}
			opts := []matrix.Option{
				matrix.WithShortcuts(a.v.GetBool(keyShortcuts)),
				matrix.WithMaxOrder(maxOrder),
			}

			a.log.Debug("determinant",
				slog.Int("order", ms[0].Rows()),
				slog.Bool("shortcuts", a.v.GetBool(keyShortcuts)),
				slog.Int("max_order", maxOrder))
			ex, err := matrix.Expand(ms[0], opts...)
			if err != nil {
				return err
			}
			a.log.Info("expansion finished",
				slog.Int("depth", ex.Depth),
				slog.Int("minors", ex.Minors),
				slog.Bool("shortcut", ex.Shortcut))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ex.Value)
			if stats, _ := cmd.Flags().GetBool("stats"); stats {
				fmt.Fprintf(out, "depth=%d minors=%d shortcut=%t\n", ex.Depth, ex.Minors, ex.Shortcut)
			}

			return nil
		},
	}

	cmd.Flags().Bool("shortcuts", matrix.DefaultShortcuts, "answer zero and identity matrices without expanding")
	cmd.Flags().Int("max-order", matrix.DefaultMaxOrder, "reject matrices above this order (0 = no limit)")
	cmd.Flags().Bool("stats", false, "print recursion statistics")
	a.v.SetDefault(keyShortcuts, matrix.DefaultShortcuts)
	a.v.SetDefault(keyMaxOrder, matrix.DefaultMaxOrder)
	_ = a.v.BindPFlag(keyShortcuts, cmd.Flags().Lookup("shortcuts"))
	_ = a.v.BindPFlag(keyMaxOrder, cmd.Flags().Lookup("max-order"))

	return cmd
}

func (a *app) newMinorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minor <matrix> <row> <col>",
		Short: "Matrix with one row and one column removed (1-based)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMatrices(args[:1])
			if err != nil {
				return err
			}
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("row %q: %w", args[1], err)
			}
			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("col %q: %w", args[2], err)
			}

			a.log.Debug("minor", slog.Int("row", row), slog.Int("col", col))
			sub, err := matrix.Minor(ms[0], row, col)
			if err != nil {
				return err
			}

			return printMatrix(cmd, sub)
		},
	}
}

func (a *app) newTransposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose <matrix>",
		Short: "Transpose a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMatrices(args)
			if err != nil {
				return err
			}
			a.log.Debug("transpose", slog.Int("rows", ms[0].Rows()), slog.Int("cols", ms[0].Cols()))
			t, err := matrix.Transpose(ms[0])
			if err != nil {
				return err
			}

			return printMatrix(cmd, t)
		},
	}
}

// newBinaryCmd builds a command applying op to two matrix literals.
func (a *app) newBinaryCmd(use, short string, op func(x, y matrix.Matrix) (matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMatrices(args)
			if err != nil {
				return err
			}
			a.log.Debug(use,
				slog.String("a", fmt.Sprintf("%dx%d", ms[0].Rows(), ms[0].Cols())),
				slog.String("b", fmt.Sprintf("%dx%d", ms[1].Rows(), ms[1].Cols())))
			res, err := op(ms[0], ms[1])
			if err != nil {
				return err
			}

			return printMatrix(cmd, res)
		},
	}
}

func (a *app) newAddCmd() *cobra.Command {
	return a.newBinaryCmd("add", "Element-wise sum of two matrices of equal shape", matrix.Add)
}

func (a *app) newMulCmd() *cobra.Command {
	return a.newBinaryCmd("mul", "Matrix product a×b", matrix.Mul)
}

func (a *app) newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <row> <col>",
		Short: "Dot product of a 1×n row and an n×1 column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMatrices(args)
			if err != nil {
				return err
			}
			d, err := matrix.Dot(ms[0], ms[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)

			return nil
		},
	}
}

func (a *app) newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <matrix> <s>",
		Short: "Multiply every entry by the integer s",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMatrices(args[:1])
			if err != nil {
				return err
			}
			s, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("scalar %q: %w", args[1], err)
			}
			a.log.Debug("scale", slog.Int("s", s))
			res, err := matrix.Scale(ms[0], s)
			if err != nil {
				return err
			}

			return printMatrix(cmd, res)
		},
	}
}
