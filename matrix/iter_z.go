// SPDX-License-Identifier: MIT

// Package matrix - "Z" iterators (diagonal-major) and their factories.
//
// Every Z iterator of a matrix rides the same Diagonal translator, so
// whole-matrix, per-diagonal and per-cell Z iterators all relate to each other.
// DiagonalEnd(d) equals the begin of the diagonal visited after d.
//
// Diagonal selection:
//   - by number d = col-row, d in [-(R-1), C-1], main diagonal d = 0;
//   - by offset: DiagonalBeginAt(k, true) selects the diagonal starting at column
//     k of the first row (d = +k); DiagonalBeginAt(k, false) selects the one
//     starting at row k of the first column (d = -k).

package matrix

import "fmt"

// ZIterator walks a matrix diagonal by diagonal.
// The zero value is an unbound iterator that sits at end.
type ZIterator[T any] struct{ cursor[T] }

// Add returns a copy moved n steps (saturating).
func (it ZIterator[T]) Add(n int) ZIterator[T] {
	it.Advance(n)
	return it
}

// Sub returns a copy moved n steps back (saturating).
func (it ZIterator[T]) Sub(n int) ZIterator[T] {
	it.Advance(negate(n))
	return it
}

// Distance returns it - o in steps.
func (it ZIterator[T]) Distance(o ZIterator[T]) (int, error) {
	return it.distance("ZIterator.Distance", o.cursor)
}

// Compare returns -1, 0, +1 ordering it against o.
func (it ZIterator[T]) Compare(o ZIterator[T]) (int, error) {
	return it.compare("ZIterator.Compare", o.cursor)
}

// Equal reports whether it and o sit on the same position.
func (it ZIterator[T]) Equal(o ZIterator[T]) (bool, error) {
	c, err := it.compare("ZIterator.Equal", o.cursor)
	return c == 0, err
}

// Less reports whether it precedes o.
func (it ZIterator[T]) Less(o ZIterator[T]) (bool, error) {
	c, err := it.compare("ZIterator.Less", o.cursor)
	return c < 0, err
}

// Diagonal returns the diagonal number (col-row) of the current cell, or
// false at end.
func (it ZIterator[T]) Diagonal() (int, bool) {
	p := it.Position()
	if p.IsEnd() {
		return 0, false
	}

	return p.Col - p.Row, true
}

// ZReverseIterator walks a matrix diagonal by diagonal, backwards.
type ZReverseIterator[T any] struct{ cursor[T] }

// Add returns a copy moved n steps (saturating).
func (it ZReverseIterator[T]) Add(n int) ZReverseIterator[T] {
	it.Advance(n)
	return it
}

// Sub returns a copy moved n steps back (saturating).
func (it ZReverseIterator[T]) Sub(n int) ZReverseIterator[T] {
	it.Advance(negate(n))
	return it
}

// Distance returns it - o in steps.
func (it ZReverseIterator[T]) Distance(o ZReverseIterator[T]) (int, error) {
	return it.distance("ZReverseIterator.Distance", o.cursor)
}

// Compare returns -1, 0, +1 ordering it against o.
func (it ZReverseIterator[T]) Compare(o ZReverseIterator[T]) (int, error) {
	return it.compare("ZReverseIterator.Compare", o.cursor)
}

// Equal reports whether it and o sit on the same position.
func (it ZReverseIterator[T]) Equal(o ZReverseIterator[T]) (bool, error) {
	c, err := it.compare("ZReverseIterator.Equal", o.cursor)
	return c == 0, err
}

// Less reports whether it precedes o.
func (it ZReverseIterator[T]) Less(o ZReverseIterator[T]) (bool, error) {
	c, err := it.compare("ZReverseIterator.Less", o.cursor)
	return c < 0, err
}

// Base returns the forward Z iterator one step after the current reverse
// position.
func (it ZReverseIterator[T]) Base() ZIterator[T] {
	c := it.cursor
	c.rev = false
	c.pos = it.global() + 1 - c.lo

	return ZIterator[T]{c}
}

// ---------- factories: whole matrix ----------

// ZBegin returns a Z iterator at (0,0).
func (m *Matrix[T]) ZBegin() ZIterator[T] { return m.zAt(0) }

// ZEnd returns the Z end sentinel.
func (m *Matrix[T]) ZEnd() ZIterator[T] { return m.zAt(m.Len()) }

// ZRBegin returns a reverse Z iterator at the last cell of the Z order.
func (m *Matrix[T]) ZRBegin() ZReverseIterator[T] { return m.zrAt(m.Len() - 1) }

// ZREnd returns the reverse Z end sentinel.
func (m *Matrix[T]) ZREnd() ZReverseIterator[T] { return m.zrAt(-1) }

// ZIteratorAt returns a Z iterator at (row, col).
// Errors: ErrIndexOutOfRange when the cell is outside the matrix.
func (m *Matrix[T]) ZIteratorAt(row, col int) (ZIterator[T], error) {
	if err := m.checkCell("ZIteratorAt", row, col); err != nil {
		return ZIterator[T]{}, err
	}

	return m.zAt(m.translator(Diagonal).linear(row, col)), nil
}

// ZIteratorAtIndex returns a Z iterator at Z index i; i == Len() yields ZEnd().
func (m *Matrix[T]) ZIteratorAtIndex(i int) (ZIterator[T], error) {
	if m == nil {
		return ZIterator[T]{}, matrixErrorf("ZIteratorAtIndex", ErrNilMatrix)
	}
	if i < 0 || i > m.Len() {
		return ZIterator[T]{}, matrixErrorf("ZIteratorAtIndex", fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange))
	}

	return m.zAt(i), nil
}

// ZReverseIteratorAt returns a reverse Z iterator at (row, col).
func (m *Matrix[T]) ZReverseIteratorAt(row, col int) (ZReverseIterator[T], error) {
	if err := m.checkCell("ZReverseIteratorAt", row, col); err != nil {
		return ZReverseIterator[T]{}, err
	}

	return m.zrAt(m.translator(Diagonal).linear(row, col)), nil
}

// ---------- factories: one diagonal ----------

// DiagonalBegin returns a Z iterator at the first cell of diagonal d, scoped
// to that diagonal.
// Errors: ErrIndexOutOfRange when d is outside [-(Rows-1), Cols-1].
func (m *Matrix[T]) DiagonalBegin(d int) (ZIterator[T], error) {
	lo, hi, err := m.diagonalScope("DiagonalBegin", d)
	if err != nil {
		return ZIterator[T]{}, err
	}

	return ZIterator[T]{newCursor(m, m.translator(Diagonal), lo, hi, lo, false)}, nil
}

// DiagonalEnd returns the end sentinel of diagonal d.
func (m *Matrix[T]) DiagonalEnd(d int) (ZIterator[T], error) {
	lo, hi, err := m.diagonalScope("DiagonalEnd", d)
	if err != nil {
		return ZIterator[T]{}, err
	}

	return ZIterator[T]{newCursor(m, m.translator(Diagonal), lo, hi, hi, false)}, nil
}

// DiagonalRBegin returns a reverse Z iterator at the last cell of diagonal d.
func (m *Matrix[T]) DiagonalRBegin(d int) (ZReverseIterator[T], error) {
	lo, hi, err := m.diagonalScope("DiagonalRBegin", d)
	if err != nil {
		return ZReverseIterator[T]{}, err
	}

	return ZReverseIterator[T]{newCursor(m, m.translator(Diagonal), lo, hi, hi-1, true)}, nil
}

// DiagonalREnd returns the reverse end sentinel of diagonal d.
func (m *Matrix[T]) DiagonalREnd(d int) (ZReverseIterator[T], error) {
	lo, hi, err := m.diagonalScope("DiagonalREnd", d)
	if err != nil {
		return ZReverseIterator[T]{}, err
	}

	return ZReverseIterator[T]{newCursor(m, m.translator(Diagonal), lo, hi, lo-1, true)}, nil
}

// DiagonalBeginAt selects a diagonal by its starting offset: column offset k
// (d = +k) when columnOffset is true, row offset k (d = -k) otherwise.
// Errors: ErrIndexOutOfRange for negative or too large offsets.
func (m *Matrix[T]) DiagonalBeginAt(offset int, columnOffset bool) (ZIterator[T], error) {
	d, err := diagonalFromOffset("DiagonalBeginAt", offset, columnOffset)
	if err != nil {
		return ZIterator[T]{}, err
	}

	return m.DiagonalBegin(d)
}

// DiagonalEndAt is the end counterpart of DiagonalBeginAt.
func (m *Matrix[T]) DiagonalEndAt(offset int, columnOffset bool) (ZIterator[T], error) {
	d, err := diagonalFromOffset("DiagonalEndAt", offset, columnOffset)
	if err != nil {
		return ZIterator[T]{}, err
	}

	return m.DiagonalEnd(d)
}

// DiagonalOf returns the diagonal number of (row, col) together with a Z
// iterator at that cell scoped to its diagonal.
func (m *Matrix[T]) DiagonalOf(row, col int) (int, ZIterator[T], error) {
	if err := m.checkCell("DiagonalOf", row, col); err != nil {
		return 0, ZIterator[T]{}, err
	}
	d := col - row
	tr := m.translator(Diagonal)
	lo, hi := tr.diag.span(d)

	return d, ZIterator[T]{newCursor(m, tr, lo, hi, tr.linear(row, col), false)}, nil
}

// ---------- helpers ----------

// zAt builds a whole-matrix forward Z iterator at Z index i.
func (m *Matrix[T]) zAt(i int) ZIterator[T] {
	if m == nil {
		return ZIterator[T]{}
	}

	return ZIterator[T]{newCursor(m, m.translator(Diagonal), 0, m.Len(), i, false)}
}

// zrAt builds a whole-matrix reverse Z iterator at Z index i (i == -1 is rend).
func (m *Matrix[T]) zrAt(i int) ZReverseIterator[T] {
	if m == nil {
		return ZReverseIterator[T]{}
	}

	return ZReverseIterator[T]{newCursor(m, m.translator(Diagonal), 0, m.Len(), i, true)}
}

// diagonalScope returns the Z range [lo, hi) of diagonal d.
func (m *Matrix[T]) diagonalScope(op string, d int) (lo, hi int, err error) {
	if m == nil {
		return 0, 0, matrixErrorf(op, ErrNilMatrix)
	}
	if diagLen(m.st.rows, m.st.cols, d) == 0 {
		return 0, 0, matrixErrorf(op, fmt.Errorf("diagonal %d: %w", d, ErrIndexOutOfRange))
	}
	lo, hi = m.translator(Diagonal).diag.span(d)

	return lo, hi, nil
}

// diagonalFromOffset converts an (offset, columnOffset) pair to d.
func diagonalFromOffset(op string, offset int, columnOffset bool) (int, error) {
	if offset < 0 {
		return 0, matrixErrorf(op, fmt.Errorf("offset %d: %w", offset, ErrIndexOutOfRange))
	}
	if columnOffset {
		return offset, nil
	}

	return -offset, nil
}
