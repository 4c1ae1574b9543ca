// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/matrixio"
)

const (
	orderN      = "n"
	orderZ      = "z"
	orderLinear = "linear"
)

// walkOpts holds the flags of the walk command.
type walkOpts struct {
	order   string // n, z or linear
	reverse bool   // walk from the last element back
}

func newWalkCmd() *cobra.Command {
	opts := walkOpts{order: orderN}

	cmd := &cobra.Command{
		Use:   "walk FILE",
		Short: "List matrix elements in iterator order",
		Long: `List every element on one line in the order of an iterator:

  n       row-major
  z       diagonal-major: main diagonal, then +1, -1, +2, -2, ...
  linear  legacy linear wrap (row or column, see wrap_by_row)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.order, "order", "o", opts.order, "iteration order: n, z, linear")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "use the reverse iterator")

	return cmd
}

func runWalk(ctx context.Context, out io.Writer, path string, opts walkOpts) error {
	m, err := readMatrix(ctx, path)
	if err != nil {
		return err
	}
	seq, err := walkValues(m, opts)
	if err != nil {
		return err
	}

	var vals []float64
	for v := range seq {
		vals = append(vals, v)
	}
	line, err := matrix.NewFromSlice(1, len(vals), vals)
	if err != nil {
		return err
	}
	cfg := configFromContext(ctx)

	return matrixio.Write(out, line, matrixio.FullByRow{}, cfg.writeOptions()...)
}

// walkValues selects the iterator pair for opts.
func walkValues(m *matrix.Matrix[float64], opts walkOpts) (iter.Seq[float64], error) {
	switch {
	case opts.order == orderN && !opts.reverse:
		return matrix.Values[float64](m.Begin(), m.End())
	case opts.order == orderN:
		return matrix.Values[float64](m.RBegin(), m.REnd())
	case opts.order == orderZ && !opts.reverse:
		return matrix.Values[float64](m.ZBegin(), m.ZEnd())
	case opts.order == orderZ:
		return matrix.Values[float64](m.ZRBegin(), m.ZREnd())
	case opts.order == orderLinear && !opts.reverse:
		return matrix.Values[float64](m.LinearBegin(), m.LinearEnd())
	case opts.order == orderLinear:
		return matrix.Values[float64](m.LinearRBegin(), m.LinearREnd())
	default:
		return nil, fmt.Errorf("unknown order %q (want %s, %s or %s)", opts.order, orderN, orderZ, orderLinear)
	}
}
