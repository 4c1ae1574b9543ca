// SPDX-License-Identifier: MIT

// Package matrix - "N" iterators (row-major) and their factories.
//
// Scopes:
//   - Whole matrix:  Begin/End, RBegin/REnd, IteratorAt, IteratorAtIndex.
//   - One row:       RowBegin/RowEnd, RowRBegin/RowREnd. Row scopes are
//     sub-ranges of the whole row-major order, so RowEnd(r) equals RowBegin(r+1)
//     and row iterators relate to whole-matrix iterators.
//   - One column:    ColumnBegin/ColumnEnd, ColumnRBegin/ColumnREnd. Columns are
//     not contiguous in row-major order; column scopes ride the column-major
//     translator and relate only to iterators of the same translator.

package matrix

import "fmt"

// NIterator walks a matrix in row-major order.
// The zero value is an unbound iterator that sits at end.
type NIterator[T any] struct{ cursor[T] }

// Add returns a copy moved n steps (saturating).
func (it NIterator[T]) Add(n int) NIterator[T] {
	it.Advance(n)
	return it
}

// Sub returns a copy moved n steps back (saturating).
func (it NIterator[T]) Sub(n int) NIterator[T] {
	it.Advance(negate(n))
	return it
}

// Distance returns it - o in steps.
func (it NIterator[T]) Distance(o NIterator[T]) (int, error) {
	return it.distance("NIterator.Distance", o.cursor)
}

// Compare returns -1, 0, +1 ordering it against o.
func (it NIterator[T]) Compare(o NIterator[T]) (int, error) {
	return it.compare("NIterator.Compare", o.cursor)
}

// Equal reports whether it and o sit on the same position.
func (it NIterator[T]) Equal(o NIterator[T]) (bool, error) {
	c, err := it.compare("NIterator.Equal", o.cursor)
	return c == 0, err
}

// Less reports whether it precedes o.
func (it NIterator[T]) Less(o NIterator[T]) (bool, error) {
	c, err := it.compare("NIterator.Less", o.cursor)
	return c < 0, err
}

// NReverseIterator walks a matrix in reverse row-major order.
type NReverseIterator[T any] struct{ cursor[T] }

// Add returns a copy moved n steps (saturating).
func (it NReverseIterator[T]) Add(n int) NReverseIterator[T] {
	it.Advance(n)
	return it
}

// Sub returns a copy moved n steps back (saturating).
func (it NReverseIterator[T]) Sub(n int) NReverseIterator[T] {
	it.Advance(negate(n))
	return it
}

// Distance returns it - o in steps.
func (it NReverseIterator[T]) Distance(o NReverseIterator[T]) (int, error) {
	return it.distance("NReverseIterator.Distance", o.cursor)
}

// Compare returns -1, 0, +1 ordering it against o.
func (it NReverseIterator[T]) Compare(o NReverseIterator[T]) (int, error) {
	return it.compare("NReverseIterator.Compare", o.cursor)
}

// Equal reports whether it and o sit on the same position.
func (it NReverseIterator[T]) Equal(o NReverseIterator[T]) (bool, error) {
	c, err := it.compare("NReverseIterator.Equal", o.cursor)
	return c == 0, err
}

// Less reports whether it precedes o.
func (it NReverseIterator[T]) Less(o NReverseIterator[T]) (bool, error) {
	c, err := it.compare("NReverseIterator.Less", o.cursor)
	return c < 0, err
}

// Base returns the forward iterator that points one step after the current
// reverse position (the element the reverse iterator refers to is Base()-1).
func (it NReverseIterator[T]) Base() NIterator[T] {
	c := it.cursor
	c.rev = false
	c.pos = it.global() + 1 - c.lo

	return NIterator[T]{c}
}

// ---------- factories: whole matrix ----------

// Begin returns an N iterator at (0,0).
func (m *Matrix[T]) Begin() NIterator[T] {
	return m.nAt(0)
}

// End returns the N end sentinel; End().Distance(Begin()) == Rows*Cols.
func (m *Matrix[T]) End() NIterator[T] {
	return m.nAt(m.Len())
}

// RBegin returns a reverse N iterator at the last cell.
func (m *Matrix[T]) RBegin() NReverseIterator[T] {
	return m.nrAt(m.Len() - 1)
}

// REnd returns the reverse N end sentinel (one before the first cell).
func (m *Matrix[T]) REnd() NReverseIterator[T] {
	return m.nrAt(-1)
}

// IteratorAt returns an N iterator at (row, col).
// Errors: ErrIndexOutOfRange when the cell is outside the matrix.
func (m *Matrix[T]) IteratorAt(row, col int) (NIterator[T], error) {
	if err := m.checkCell("IteratorAt", row, col); err != nil {
		return NIterator[T]{}, err
	}

	return m.nAt(row*m.st.cols + col), nil
}

// IteratorAtIndex returns an N iterator at row-major index i; i == Len()
// yields End().
// Errors: ErrIndexOutOfRange when i < 0 or i > Len().
func (m *Matrix[T]) IteratorAtIndex(i int) (NIterator[T], error) {
	if m == nil {
		return NIterator[T]{}, matrixErrorf("IteratorAtIndex", ErrNilMatrix)
	}
	if i < 0 || i > m.Len() {
		return NIterator[T]{}, matrixErrorf("IteratorAtIndex", fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange))
	}

	return m.nAt(i), nil
}

// ReverseIteratorAt returns a reverse N iterator at (row, col).
func (m *Matrix[T]) ReverseIteratorAt(row, col int) (NReverseIterator[T], error) {
	if err := m.checkCell("ReverseIteratorAt", row, col); err != nil {
		return NReverseIterator[T]{}, err
	}

	return m.nrAt(row*m.st.cols + col), nil
}

// ReverseIteratorAtIndex returns a reverse N iterator at reverse index i, i.e.
// RBegin().Add(i); i == Len() yields REnd().
func (m *Matrix[T]) ReverseIteratorAtIndex(i int) (NReverseIterator[T], error) {
	if m == nil {
		return NReverseIterator[T]{}, matrixErrorf("ReverseIteratorAtIndex", ErrNilMatrix)
	}
	if i < 0 || i > m.Len() {
		return NReverseIterator[T]{}, matrixErrorf("ReverseIteratorAtIndex", fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange))
	}

	return m.nrAt(m.Len() - 1 - i), nil
}

// ---------- factories: one row ----------

// RowBegin returns an N iterator at (r, 0) scoped to row r.
func (m *Matrix[T]) RowBegin(r int) (NIterator[T], error) {
	lo, hi, err := m.rowScope("RowBegin", r)
	if err != nil {
		return NIterator[T]{}, err
	}

	return NIterator[T]{newCursor(m, m.translator(RowMajor), lo, hi, lo, false)}, nil
}

// RowEnd returns the end sentinel of row r (equal to RowBegin(r+1)).
func (m *Matrix[T]) RowEnd(r int) (NIterator[T], error) {
	lo, hi, err := m.rowScope("RowEnd", r)
	if err != nil {
		return NIterator[T]{}, err
	}

	return NIterator[T]{newCursor(m, m.translator(RowMajor), lo, hi, hi, false)}, nil
}

// RowRBegin returns a reverse N iterator at (r, Cols-1) scoped to row r.
func (m *Matrix[T]) RowRBegin(r int) (NReverseIterator[T], error) {
	lo, hi, err := m.rowScope("RowRBegin", r)
	if err != nil {
		return NReverseIterator[T]{}, err
	}

	return NReverseIterator[T]{newCursor(m, m.translator(RowMajor), lo, hi, hi-1, true)}, nil
}

// RowREnd returns the reverse end sentinel of row r.
func (m *Matrix[T]) RowREnd(r int) (NReverseIterator[T], error) {
	lo, hi, err := m.rowScope("RowREnd", r)
	if err != nil {
		return NReverseIterator[T]{}, err
	}

	return NReverseIterator[T]{newCursor(m, m.translator(RowMajor), lo, hi, lo-1, true)}, nil
}

// ---------- factories: one column ----------

// ColumnBegin returns an N iterator at (0, c) that walks down column c.
func (m *Matrix[T]) ColumnBegin(c int) (NIterator[T], error) {
	lo, hi, err := m.columnScope("ColumnBegin", c)
	if err != nil {
		return NIterator[T]{}, err
	}

	return NIterator[T]{newCursor(m, m.translator(ColumnMajor), lo, hi, lo, false)}, nil
}

// ColumnEnd returns the end sentinel of column c.
func (m *Matrix[T]) ColumnEnd(c int) (NIterator[T], error) {
	lo, hi, err := m.columnScope("ColumnEnd", c)
	if err != nil {
		return NIterator[T]{}, err
	}

	return NIterator[T]{newCursor(m, m.translator(ColumnMajor), lo, hi, hi, false)}, nil
}

// ColumnRBegin returns a reverse N iterator at (Rows-1, c) walking up column c.
func (m *Matrix[T]) ColumnRBegin(c int) (NReverseIterator[T], error) {
	lo, hi, err := m.columnScope("ColumnRBegin", c)
	if err != nil {
		return NReverseIterator[T]{}, err
	}

	return NReverseIterator[T]{newCursor(m, m.translator(ColumnMajor), lo, hi, hi-1, true)}, nil
}

// ColumnREnd returns the reverse end sentinel of column c.
func (m *Matrix[T]) ColumnREnd(c int) (NReverseIterator[T], error) {
	lo, hi, err := m.columnScope("ColumnREnd", c)
	if err != nil {
		return NReverseIterator[T]{}, err
	}

	return NReverseIterator[T]{newCursor(m, m.translator(ColumnMajor), lo, hi, lo-1, true)}, nil
}

// ---------- helpers ----------

// nAt builds a whole-matrix forward N iterator at row-major index i.
// A nil matrix yields the zero value.
func (m *Matrix[T]) nAt(i int) NIterator[T] {
	if m == nil {
		return NIterator[T]{}
	}

	return NIterator[T]{newCursor(m, m.translator(RowMajor), 0, m.Len(), i, false)}
}

// nrAt builds a whole-matrix reverse N iterator at row-major index i
// (i == -1 is rend).
func (m *Matrix[T]) nrAt(i int) NReverseIterator[T] {
	if m == nil {
		return NReverseIterator[T]{}
	}

	return NReverseIterator[T]{newCursor(m, m.translator(RowMajor), 0, m.Len(), i, true)}
}

// rowScope returns the row-major range of row r.
func (m *Matrix[T]) rowScope(op string, r int) (lo, hi int, err error) {
	if m == nil {
		return 0, 0, matrixErrorf(op, ErrNilMatrix)
	}
	if r < 0 || r >= m.st.rows {
		return 0, 0, matrixErrorf(op, fmt.Errorf("row %d: %w", r, ErrIndexOutOfRange))
	}

	return r * m.st.cols, (r + 1) * m.st.cols, nil
}

// columnScope returns the column-major range of column c.
func (m *Matrix[T]) columnScope(op string, c int) (lo, hi int, err error) {
	if m == nil {
		return 0, 0, matrixErrorf(op, ErrNilMatrix)
	}
	if c < 0 || c >= m.st.cols {
		return 0, 0, matrixErrorf(op, fmt.Errorf("column %d: %w", c, ErrIndexOutOfRange))
	}

	return c * m.st.rows, (c + 1) * m.st.rows, nil
}
