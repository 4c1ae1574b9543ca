// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/matrixio"
)

// splitOpts holds the flags of the split command.
type splitOpts struct {
	by string // row or column
	at int    // first row/column of the second half
}

func newSplitCmd() *cobra.Command {
	opts := splitOpts{by: "row", at: 1}

	cmd := &cobra.Command{
		Use:   "split FILE",
		Short: "Split a matrix in two and print both halves",
		Long:  "Split a matrix before row (or column) --at and print both halves separated by a blank line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.by, "by", opts.by, "split direction: row, column")
	cmd.Flags().IntVar(&opts.at, "at", opts.at, "index of the first row/column of the second half")

	return cmd
}

func runSplit(ctx context.Context, out io.Writer, path string, opts splitOpts) error {
	m, err := readMatrix(ctx, path)
	if err != nil {
		return err
	}
	if err = checkCanceled(ctx); err != nil {
		return err
	}

	first, second := matrix.NewEmpty[float64](), matrix.NewEmpty[float64]()
	switch opts.by {
	case "row":
		err = m.SplitByRow(first, second, opts.at)
	case "column":
		err = m.SplitByColumn(first, second, opts.at)
	default:
		return fmt.Errorf("unknown split direction %q (want row or column)", opts.by)
	}
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("split", "by", opts.by, "at", opts.at,
		"first", first.Shape(), "second", second.Shape())

	wopts := configFromContext(ctx).writeOptions()
	if err = matrixio.Write(out, first, matrixio.FullByRow{}, wopts...); err != nil {
		return err
	}
	if _, err = io.WriteString(out, "\n"); err != nil {
		return err
	}

	return matrixio.Write(out, second, matrixio.FullByRow{}, wopts...)
}
