// SPDX-License-Identifier: MIT

// Package matrix - coordinate translator.
//
// Purpose:
//   - Map a logical (row, col) pair to the linear index of a traversal order and
//     back, for RowMajor ("N"), ColumnMajor and Diagonal ("Z").
//   - Provide saturating movement (Advance) that never leaves [begin, end].
//
// Formulas (R = rows, C = cols):
//   - RowMajor:    index = row*C + col
//   - ColumnMajor: index = col*R + row
//   - Diagonal:    diagonals d = col-row in [-(R-1), C-1] are visited in the order
//     0, +1, -1, +2, -2, ... (missing diagonals skipped); inside a diagonal cells
//     go in increasing row order. index = start(d) + min(row, col).
//
// The legacy linear wrap is not an order of its own: it resolves to RowMajor or
// ColumnMajor through Matrix.LinearOrder.

package matrix

import (
	"fmt"
	"sort"
)

// Order enumerates the traversal orders understood by the translator.
type Order int

const (
	// RowMajor visits (0,0),(0,1),...,(0,C-1),(1,0),... ("N" order).
	RowMajor Order = iota
	// ColumnMajor visits (0,0),(1,0),...,(R-1,0),(0,1),...
	ColumnMajor
	// Diagonal visits diagonals outward from the main one ("Z" order).
	Diagonal

	orderCount
)

// String returns a short human-readable name of the order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// valid reports whether o is one of the declared orders.
func (o Order) valid() bool { return o >= RowMajor && o < orderCount }

// Shape is a logical matrix extent.
type Shape struct {
	Rows, Cols int
}

// Size returns Rows*Cols.
func (s Shape) Size() int { return s.Rows * s.Cols }

// Contains reports whether (row, col) lies inside the shape.
func (s Shape) Contains(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < s.Cols
}

// Position is a logical cell; EndPosition is the one-past-last sentinel.
type Position struct {
	Row, Col int
}

// EndPosition is the canonical sentinel for "one past the last cell".
// It is never dereferenceable.
var EndPosition = Position{Row: -1, Col: -1}

// IsEnd reports whether p is the end sentinel.
func (p Position) IsEnd() bool { return p == EndPosition }

// ToLinear returns the index of (row, col) in order o.
// Errors: ErrIndexOutOfRange when the cell is outside the shape or o is unknown.
// Complexity: O(1) for RowMajor/ColumnMajor, O(R+C) for Diagonal (layout build).
func (s Shape) ToLinear(row, col int, o Order) (int, error) {
	if !o.valid() || !s.Contains(row, col) {
		return 0, fmt.Errorf("Shape.ToLinear(%d,%d,%s): %w", row, col, o, ErrIndexOutOfRange)
	}

	return newTranslator(s, o).linear(row, col), nil
}

// FromLinear returns the cell at index in order o. index == Size() yields
// EndPosition.
// Errors: ErrIndexOutOfRange when index is outside [0, Size()] or o is unknown.
func (s Shape) FromLinear(index int, o Order) (Position, error) {
	n := s.Size()
	if !o.valid() || index < 0 || index > n {
		return EndPosition, fmt.Errorf("Shape.FromLinear(%d,%s): %w", index, o, ErrIndexOutOfRange)
	}
	if index == n {
		return EndPosition, nil
	}
	r, c := newTranslator(s, o).cell(index)

	return Position{Row: r, Col: c}, nil
}

// Advance moves p by delta steps in order o, saturating at the first cell and
// at EndPosition. Positions outside the shape are treated as EndPosition.
func (s Shape) Advance(p Position, o Order, delta int) Position {
	n := s.Size()
	if n == 0 || !o.valid() {
		return EndPosition
	}
	tr := newTranslator(s, o)
	idx := n
	if s.Contains(p.Row, p.Col) {
		idx = tr.linear(p.Row, p.Col)
	}
	idx = saturate(idx, delta, 0, n)
	if idx == n {
		return EndPosition
	}
	r, c := tr.cell(idx)

	return Position{Row: r, Col: c}
}

// DiagonalLen returns the number of cells on diagonal d (col-row == d), or 0
// when the diagonal does not exist.
func (s Shape) DiagonalLen(d int) int { return diagLen(s.Rows, s.Cols, d) }

// DiagonalStart returns the first cell of diagonal d: (0,d) for d >= 0 and
// (-d,0) for d < 0.
// Errors: ErrIndexOutOfRange when d is outside [-(R-1), C-1].
func (s Shape) DiagonalStart(d int) (Position, error) {
	if diagLen(s.Rows, s.Cols, d) == 0 {
		return EndPosition, fmt.Errorf("Shape.DiagonalStart(%d): %w", d, ErrIndexOutOfRange)
	}
	if d >= 0 {
		return Position{Row: 0, Col: d}, nil
	}

	return Position{Row: -d, Col: 0}, nil
}

// diagLen is the length of diagonal d in a rows×cols shape.
func diagLen(rows, cols, d int) int {
	if d >= 0 {
		if d >= cols || rows == 0 {
			return 0
		}
		return min(rows, cols-d)
	}
	if -d >= rows || cols == 0 {
		return 0
	}

	return min(rows+d, cols)
}

// saturate returns pos+delta clamped to [lo, hi] without integer overflow.
// Assumes lo <= pos <= hi.
func saturate(pos, delta, lo, hi int) int {
	if delta >= 0 {
		if delta > hi-pos {
			return hi
		}
		return pos + delta
	}
	if delta < lo-pos {
		return lo
	}

	return pos + delta
}

// diagLayout caches the diagonal visiting order of one shape.
//   - order[k]:      diagonal number visited k-th.
//   - starts[k]:     linear index of the first cell of order[k]; starts[len] == R*C.
//   - ordinal[d+R-1]: k such that order[k] == d.
type diagLayout struct {
	rows, cols int
	order      []int
	starts     []int
	ordinal    []int
}

// newDiagLayout builds the outward visiting order 0, +1, -1, +2, -2, ...
// Complexity: O(R+C) time and memory.
func newDiagLayout(rows, cols int) *diagLayout {
	l := &diagLayout{rows: rows, cols: cols}
	if rows == 0 || cols == 0 {
		l.starts = []int{0}
		return l
	}
	n := rows + cols - 1
	l.order = make([]int, 0, n)
	l.starts = make([]int, 0, n+1)
	l.ordinal = make([]int, n)

	total := 0
	push := func(d int) {
		l.ordinal[d+rows-1] = len(l.order)
		l.order = append(l.order, d)
		l.starts = append(l.starts, total)
		total += diagLen(rows, cols, d)
	}
	push(0)
	for t := 1; t < rows || t < cols; t++ {
		if t < cols {
			push(t)
		}
		if t < rows {
			push(-t)
		}
	}
	l.starts = append(l.starts, total)

	return l
}

// span returns the [lo, hi) linear range of diagonal d. d must exist.
func (l *diagLayout) span(d int) (lo, hi int) {
	k := l.ordinal[d+l.rows-1]

	return l.starts[k], l.starts[k+1]
}

// linear returns the Z index of (r, c). Cell must be inside the shape.
func (l *diagLayout) linear(r, c int) int {
	k := l.ordinal[c-r+l.rows-1]

	return l.starts[k] + min(r, c)
}

// cell returns the coordinates at Z index i in [0, R*C).
// Complexity: O(log(R+C)) via binary search over starts.
func (l *diagLayout) cell(i int) (r, c int) {
	k := sort.Search(len(l.order), func(k int) bool { return l.starts[k+1] > i })
	d := l.order[k]
	off := i - l.starts[k]
	if d >= 0 {
		return off, d + off
	}

	return off - d, off
}

// translator binds one Order to one Shape. Matrices cache one translator per
// order per generation, so iterators of the same matrix and order share the
// same *translator and can be related by pointer identity.
type translator struct {
	shape Shape
	order Order
	diag  *diagLayout // non-nil only for Diagonal
}

// newTranslator builds a translator for (shape, order).
func newTranslator(shape Shape, o Order) *translator {
	t := &translator{shape: shape, order: o}
	if o == Diagonal {
		t.diag = newDiagLayout(shape.Rows, shape.Cols)
	}

	return t
}

// size returns the number of cells covered by the order.
func (t *translator) size() int { return t.shape.Size() }

// linear maps an in-range cell to its index.
func (t *translator) linear(r, c int) int {
	switch t.order {
	case ColumnMajor:
		return c*t.shape.Rows + r
	case Diagonal:
		return t.diag.linear(r, c)
	default:
		return r*t.shape.Cols + c
	}
}

// cell maps an index in [0, size) to its coordinates.
func (t *translator) cell(i int) (r, c int) {
	switch t.order {
	case ColumnMajor:
		return i % t.shape.Rows, i / t.shape.Rows
	case Diagonal:
		return t.diag.cell(i)
	default:
		return i / t.shape.Cols, i % t.shape.Cols
	}
}
