// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/matrixio"
)

// showOpts holds the flags of the show command.
type showOpts struct {
	mode      string // traversal name, empty selects Config.DefaultMode
	index     int    // row/column index for row-at and column-at
	rowCursor int    // matrix row cursor for cursor-row
	colCursor int    // matrix column cursor for cursor-column
}

func newShowCmd() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a matrix with a traversal",
		Long: fmt.Sprintf("Print a matrix, or part of it, one line per row, column or diagonal.\n\nModes: %s.",
			strings.Join(matrixio.TraversalNames, ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "traversal (default from config, else row)")
	cmd.Flags().IntVarP(&opts.index, "index", "i", 0, "row or column index for row-at/column-at")
	cmd.Flags().IntVar(&opts.rowCursor, "row-cursor", 0, "row cursor for cursor-row")
	cmd.Flags().IntVar(&opts.colCursor, "col-cursor", 0, "column cursor for cursor-column")

	return cmd
}

func runShow(ctx context.Context, out io.Writer, path string, opts showOpts) error {
	cfg := configFromContext(ctx)
	mode := opts.mode
	if mode == "" {
		mode = cfg.DefaultMode
	}
	t, err := matrixio.ParseTraversal(mode, opts.index)
	if err != nil {
		return err
	}

	m, err := readMatrix(ctx, path)
	if err != nil {
		return err
	}
	if err = m.SetRowCursor(opts.rowCursor); err != nil {
		return err
	}
	if err = m.SetColumnCursor(opts.colCursor); err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("show", "traversal", t.String())

	return matrixio.Write(out, m, t, cfg.writeOptions()...)
}
