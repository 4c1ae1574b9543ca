// SPDX-License-Identifier: MIT

// Package matrix - legacy linear iterators.
//
// The legacy order is the matrix's linear wrap: row wrap (row*Cols+col) or
// column wrap (col*Rows+row), chosen by WithWrapByRow / SetWrapByRow. It is the
// order of AtLinear and of Sort(SortAll, ...). Changing the wrap direction does
// not invalidate existing linear iterators; they keep the order they were
// created with but no longer relate to iterators created afterwards.
//
// LinearIterator(i) is deliberately permissive: i is wrapped modulo Len()
// (negative values included) instead of failing.

package matrix

// LinearIterator walks a matrix in its legacy linear wrap order.
// The zero value is an unbound iterator that sits at end.
type LinearIterator[T any] struct{ cursor[T] }

// Add returns a copy moved n steps (saturating).
func (it LinearIterator[T]) Add(n int) LinearIterator[T] {
	it.Advance(n)
	return it
}

// Sub returns a copy moved n steps back (saturating).
func (it LinearIterator[T]) Sub(n int) LinearIterator[T] {
	it.Advance(negate(n))
	return it
}

// Distance returns it - o in steps.
func (it LinearIterator[T]) Distance(o LinearIterator[T]) (int, error) {
	return it.distance("LinearIterator.Distance", o.cursor)
}

// Compare returns -1, 0, +1 ordering it against o.
func (it LinearIterator[T]) Compare(o LinearIterator[T]) (int, error) {
	return it.compare("LinearIterator.Compare", o.cursor)
}

// Equal reports whether it and o sit on the same position.
func (it LinearIterator[T]) Equal(o LinearIterator[T]) (bool, error) {
	c, err := it.compare("LinearIterator.Equal", o.cursor)
	return c == 0, err
}

// Less reports whether it precedes o.
func (it LinearIterator[T]) Less(o LinearIterator[T]) (bool, error) {
	c, err := it.compare("LinearIterator.Less", o.cursor)
	return c < 0, err
}

// LinearReverseIterator walks the legacy linear order backwards.
type LinearReverseIterator[T any] struct{ cursor[T] }

// Add returns a copy moved n steps (saturating).
func (it LinearReverseIterator[T]) Add(n int) LinearReverseIterator[T] {
	it.Advance(n)
	return it
}

// Sub returns a copy moved n steps back (saturating).
func (it LinearReverseIterator[T]) Sub(n int) LinearReverseIterator[T] {
	it.Advance(negate(n))
	return it
}

// Distance returns it - o in steps.
func (it LinearReverseIterator[T]) Distance(o LinearReverseIterator[T]) (int, error) {
	return it.distance("LinearReverseIterator.Distance", o.cursor)
}

// Compare returns -1, 0, +1 ordering it against o.
func (it LinearReverseIterator[T]) Compare(o LinearReverseIterator[T]) (int, error) {
	return it.compare("LinearReverseIterator.Compare", o.cursor)
}

// Equal reports whether it and o sit on the same position.
func (it LinearReverseIterator[T]) Equal(o LinearReverseIterator[T]) (bool, error) {
	c, err := it.compare("LinearReverseIterator.Equal", o.cursor)
	return c == 0, err
}

// Less reports whether it precedes o.
func (it LinearReverseIterator[T]) Less(o LinearReverseIterator[T]) (bool, error) {
	c, err := it.compare("LinearReverseIterator.Less", o.cursor)
	return c < 0, err
}

// ---------- factories ----------

// LinearBegin returns a linear iterator at linear index 0.
func (m *Matrix[T]) LinearBegin() LinearIterator[T] { return m.linAt(0) }

// LinearEnd returns the linear end sentinel.
func (m *Matrix[T]) LinearEnd() LinearIterator[T] { return m.linAt(m.Len()) }

// LinearRBegin returns a reverse linear iterator at the last linear index.
func (m *Matrix[T]) LinearRBegin() LinearReverseIterator[T] {
	if m == nil {
		return LinearReverseIterator[T]{}
	}

	return LinearReverseIterator[T]{newCursor(m, m.translator(m.LinearOrder()), 0, m.Len(), m.Len()-1, true)}
}

// LinearREnd returns the reverse linear end sentinel.
func (m *Matrix[T]) LinearREnd() LinearReverseIterator[T] {
	if m == nil {
		return LinearReverseIterator[T]{}
	}

	return LinearReverseIterator[T]{newCursor(m, m.translator(m.LinearOrder()), 0, m.Len(), -1, true)}
}

// LinearIterator returns a linear iterator at i mod Len(). The wrap is over
// the element count R*C, not the row count, and negative i counts back from
// the end. It never fails on a non-empty matrix; on an empty matrix it
// returns LinearEnd().
func (m *Matrix[T]) LinearIterator(i int) LinearIterator[T] {
	n := m.Len()
	if n == 0 {
		return m.LinearEnd()
	}
	i %= n
	if i < 0 {
		i += n
	}

	return m.linAt(i)
}

// LinearIteratorAt returns a linear iterator at (row, col).
// Errors: ErrIndexOutOfRange when the cell is outside the matrix.
func (m *Matrix[T]) LinearIteratorAt(row, col int) (LinearIterator[T], error) {
	if err := m.checkCell("LinearIteratorAt", row, col); err != nil {
		return LinearIterator[T]{}, err
	}

	return m.linAt(m.translator(m.LinearOrder()).linear(row, col)), nil
}

// linAt builds a forward linear iterator at linear index i.
func (m *Matrix[T]) linAt(i int) LinearIterator[T] {
	if m == nil {
		return LinearIterator[T]{}
	}

	return LinearIterator[T]{newCursor(m, m.translator(m.LinearOrder()), 0, m.Len(), i, false)}
}
