// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Traversal names a fixed pattern of cells exchanged with a text stream.
// The set is closed: only the types declared in this package implement it.
type Traversal interface {
	fmt.Stringer
	// lines returns the cell lists, one per text line, for m.
	lines(m shape) ([][]cell, error)
}

// shape is the part of a matrix a Traversal needs to plan its cells.
type shape interface {
	Rows() int
	Cols() int
	RowCursor() int
	ColumnCursor() int
}

type cell struct{ r, c int }

type (
	// FullByRow exchanges the whole matrix, one row per line.
	FullByRow struct{}
	// FullByColumn exchanges the whole matrix, one column per line.
	FullByColumn struct{}
	// Row exchanges a single row on one line.
	Row struct{ Index int }
	// Column exchanges a single column on one line.
	Column struct{ Index int }
	// MainDiagonal exchanges cells (k,k) for k < min(Rows, Cols).
	MainDiagonal struct{}
	// AntiDiagonal exchanges cells (k, Cols-1-k) for k < min(Rows, Cols).
	AntiDiagonal struct{}
	// CursorRow exchanges the row under the matrix row cursor.
	CursorRow struct{}
	// CursorColumn exchanges the column under the matrix column cursor.
	CursorColumn struct{}
)

func (FullByRow) String() string    { return "row" }
func (FullByColumn) String() string { return "column" }
func (t Row) String() string        { return fmt.Sprintf("row[%d]", t.Index) }
func (t Column) String() string     { return fmt.Sprintf("column[%d]", t.Index) }
func (MainDiagonal) String() string { return "diagonal" }
func (AntiDiagonal) String() string { return "anti-diagonal" }
func (CursorRow) String() string    { return "cursor-row" }
func (CursorColumn) String() string { return "cursor-column" }

func (FullByRow) lines(m shape) ([][]cell, error) {
	out := make([][]cell, m.Rows())
	for i := range out {
		out[i] = rowCells(i, m.Cols())
	}

	return out, nil
}

func (FullByColumn) lines(m shape) ([][]cell, error) {
	out := make([][]cell, m.Cols())
	for j := range out {
		out[j] = colCells(j, m.Rows())
	}

	return out, nil
}

func (t Row) lines(m shape) ([][]cell, error) {
	if t.Index < 0 || t.Index >= m.Rows() {
		return nil, fmt.Errorf("%v: %w", t, matrix.ErrIndexOutOfRange)
	}

	return [][]cell{rowCells(t.Index, m.Cols())}, nil
}

func (t Column) lines(m shape) ([][]cell, error) {
	if t.Index < 0 || t.Index >= m.Cols() {
		return nil, fmt.Errorf("%v: %w", t, matrix.ErrIndexOutOfRange)
	}

	return [][]cell{colCells(t.Index, m.Rows())}, nil
}

func (MainDiagonal) lines(m shape) ([][]cell, error) {
	n := min(m.Rows(), m.Cols())
	line := make([]cell, n)
	for k := range line {
		line[k] = cell{k, k}
	}

	return [][]cell{line}, nil
}

func (AntiDiagonal) lines(m shape) ([][]cell, error) {
	n, c := min(m.Rows(), m.Cols()), m.Cols()
	line := make([]cell, n)
	for k := range line {
		line[k] = cell{k, c - 1 - k}
	}

	return [][]cell{line}, nil
}

func (CursorRow) lines(m shape) ([][]cell, error) {
	return Row{Index: m.RowCursor()}.lines(m)
}

func (CursorColumn) lines(m shape) ([][]cell, error) {
	return Column{Index: m.ColumnCursor()}.lines(m)
}

func rowCells(r, cols int) []cell {
	line := make([]cell, cols)
	for j := range line {
		line[j] = cell{r, j}
	}

	return line
}

func colCells(c, rows int) []cell {
	line := make([]cell, rows)
	for i := range line {
		line[i] = cell{i, c}
	}

	return line
}

// TraversalNames lists the names accepted by ParseTraversal.
var TraversalNames = []string{
	"row", "column", "row-at", "column-at",
	"diagonal", "anti-diagonal", "cursor-row", "cursor-column",
}

// ParseTraversal maps a name from TraversalNames to a Traversal. index is used
// by "row-at" and "column-at" only.
func ParseTraversal(name string, index int) (Traversal, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "row", "full-by-row", "":
		return FullByRow{}, nil
	case "column", "full-by-column":
		return FullByColumn{}, nil
	case "row-at":
		return Row{Index: index}, nil
	case "column-at":
		return Column{Index: index}, nil
	case "diagonal", "main-diagonal":
		return MainDiagonal{}, nil
	case "anti-diagonal":
		return AntiDiagonal{}, nil
	case "cursor-row":
		return CursorRow{}, nil
	case "cursor-column":
		return CursorColumn{}, nil
	default:
		return nil, fmt.Errorf("%q (want one of %s): %w", name, strings.Join(TraversalNames, ", "), ErrUnknownTraversal)
	}
}
