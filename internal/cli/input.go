// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/matrixio"
)

// readMatrix reads the first matrix block of path as float64 values.
func readMatrix(ctx context.Context, path string) (*matrix.Matrix[float64], error) {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := matrixio.NewReadSession[float64](f, nil)
	m, err := s.ReadMatrix(matrix.WithWrapByRow(cfg.WrapByRow))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("read matrix", "file", path, "rows", m.Rows(), "cols", m.Cols(), "lines", s.Line())

	return m, nil
}

// checkCanceled returns ctx.Err() once the command context is done.
func checkCanceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
