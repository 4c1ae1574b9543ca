// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with %w)
// and tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for nonsensical Option values.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap the sentinel with the
// operation name via matrixErrorf / iterErrorf so callers still match with
// errors.Is while messages carry the failing operation.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimension -> index -> aliasing -> empty result -> shape mismatch.

var (
	// ErrInvalidDimension is returned when a requested row/column count is <= 0,
	// or when an operation would remove the last row/column of a matrix.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrIndexOutOfRange indicates a row, column, diagonal or linear index outside
	// the logical bounds of the matrix.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// (concatenate, swap, element-wise arithmetic, external buffers).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAliasingNotAllowed signals that the same matrix was passed in two argument
	// positions where distinct objects are required.
	ErrAliasingNotAllowed = errors.New("matrix: aliasing not allowed")

	// ErrEmptyResultNotAllowed signals that a split would produce a zero-sized half.
	ErrEmptyResultNotAllowed = errors.New("matrix: empty result not allowed")

	// ErrInvalidIteratorUse covers dereferencing end or zero-value iterators and
	// comparing iterators that belong to different non-empty matrices.
	ErrInvalidIteratorUse = errors.New("matrix: invalid iterator use")

	// ErrNilMatrix indicates that a nil *Matrix was used as receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnsupportedScope indicates a SortScope value outside the declared set.
	ErrUnsupportedScope = errors.New("matrix: unsupported scope")
)

// ErrStaleIterator is reported by iterators whose matrix was reshaped after the
// iterator was created. It matches ErrInvalidIteratorUse under errors.Is.
var ErrStaleIterator = fmt.Errorf("%w: matrix was reshaped", ErrInvalidIteratorUse)

// ---------- error context tags ----------

const (
	opNew          = "New"
	opAt           = "At"
	opSet          = "Set"
	opLinear       = "AtLinear"
	opCursor       = "SetCursor"
	opResize       = "ResizeDiscardingContents"
	opResizeKeep   = "ResizeKeepingContents"
	opReserve      = "Reserve"
	opInsertRow    = "InsertRow"
	opInsertColumn = "InsertColumn"
	opEraseRow     = "EraseRow"
	opEraseColumn  = "EraseColumn"
	opSwapRows     = "SwapRows"
	opSwapColumns  = "SwapColumns"
	opSwapRowWith  = "SwapRowWith"
	opSplitRow     = "SplitByRow"
	opSplitColumn  = "SplitByColumn"
	opConcatRow    = "ConcatenateByRow"
	opConcatColumn = "ConcatenateByColumn"
	opCopyFrom     = "CopyFrom"
	opSort         = "Sort"
)

// matrixErrorf wraps err with the Matrix operation tag.
// Keeps the sentinel reachable through %w.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", op, err)
}

// indexErrorf wraps err with the operation tag and the offending coordinates.
func indexErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", op, row, col, err)
}
