// SPDX-License-Identifier: MIT

// Package cli implements the lvmatrix command-line interface.
//
// Every command reads one matrix from a text file through a
// matrixio.ReadSession and prints its result on stdout. Logs go to stderr.
//
// # Commands
//
//   - show:    print a matrix with a traversal (row, column, diagonal, ...)
//   - walk:    list elements in N, Z or linear iterator order
//   - det, rank, inverse: numeric collaborator backed by gonum
//   - split:   split a matrix by rows or columns and print both halves
//
// # Configuration
//
// --config points at a TOML file (see Config). Values from the file are the
// defaults; command flags override them.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels on context.Context and is retrieved with loggerFromContext.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the command name used for usage and version output.
const appName = "lvmatrix"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) { version = v }

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand returns the root command with every subcommand registered.
// Results are written to out, logs to logOut.
func NewRootCommand(out, logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "lvmatrix inspects and transforms dense matrices stored as text",
		Long:          `lvmatrix reads whitespace-separated matrices from files and prints them in row, column, diagonal or iterator order, computes determinants, ranks and inverses, and splits matrices by rows or columns.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			logger := newLogger(logOut, level)

			cfg, err := loadConfig(configPath, logger)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(logOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newShowCmd())
	root.AddCommand(newWalkCmd())
	root.AddCommand(newDetCmd())
	root.AddCommand(newRankCmd())
	root.AddCommand(newInverseCmd())
	root.AddCommand(newSplitCmd())

	return root
}
