// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/linalg"
	"github.com/katalvlaran/lvmatrix/matrixio"
)

func newDetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE",
		Short: "Print the determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := readMatrix(ctx, args[0])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			d, err := linalg.Det(m)
			if err != nil {
				return err
			}
			prog.done("computed determinant")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), matrixio.FormatValue(d, configFromContext(ctx).Precision))
			return err
		},
	}
}

func newRankCmd() *cobra.Command {
	var tol float64

	cmd := &cobra.Command{
		Use:   "rank FILE",
		Short: "Print the numerical rank of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := readMatrix(ctx, args[0])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			r, err := linalg.Rank(m, tol)
			if err != nil {
				return err
			}
			prog.done("computed rank")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r)
			return err
		},
	}

	cmd.Flags().Float64Var(&tol, "tol", linalg.DefaultRankTolerance, "relative singular value cutoff")

	return cmd
}

func newInverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse FILE",
		Short: "Print the inverse of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := readMatrix(ctx, args[0])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			inv, err := linalg.Inverse(m)
			if err != nil {
				return err
			}
			prog.done("computed inverse")
			return matrixio.Write(cmd.OutOrStdout(), inv, matrixio.FullByRow{}, configFromContext(ctx).writeOptions()...)
		},
	}
}
