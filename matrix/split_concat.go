// SPDX-License-Identifier: MIT

// Package matrix - split and concatenate.
//
// Aliasing policy:
//   - Split writes into two destinations that must be distinct from each other
//     and from the source; any overlap is ErrAliasingNotAllowed.
//   - Concatenate accepts operands that are the receiver itself (m.Concatenate
//     ByRow(m, m) doubles m): such operands are snapshotted by value before the
//     receiver is overwritten.
//
// An empty operand is the neutral element of concatenation.

package matrix

import "fmt"

// SplitByRow writes rows [0,k) of m into top and rows [k,Rows()) into bottom.
// m is left unchanged.
// Errors: ErrNilMatrix, ErrAliasingNotAllowed when top == bottom or either is
// m, ErrEmptyResultNotAllowed when k <= 0 or k >= Rows().
func (m *Matrix[T]) SplitByRow(top, bottom *Matrix[T], k int) error {
	if err := m.checkSplit(opSplitRow, top, bottom, k, m.Rows()); err != nil {
		return err
	}
	rows, cols := m.st.rows, m.st.cols
	top.reshapeForOverwrite(k, cols)
	bottom.reshapeForOverwrite(rows-k, cols)
	copyRegion(top, m, 0, 0, k, cols)
	copyRegion(bottom, m, k, 0, rows-k, cols)

	return nil
}

// SplitByColumn writes columns [0,k) of m into left and [k,Cols()) into right.
// Errors: as SplitByRow, with k checked against Cols().
func (m *Matrix[T]) SplitByColumn(left, right *Matrix[T], k int) error {
	if err := m.checkSplit(opSplitColumn, left, right, k, m.Cols()); err != nil {
		return err
	}
	rows, cols := m.st.rows, m.st.cols
	left.reshapeForOverwrite(rows, k)
	right.reshapeForOverwrite(rows, cols-k)
	copyRegion(left, m, 0, 0, rows, k)
	copyRegion(right, m, 0, k, rows, cols-k)

	return nil
}

// checkSplit validates split arguments in error-priority order.
func (m *Matrix[T]) checkSplit(op string, a, b *Matrix[T], k, dim int) error {
	if m == nil || a == nil || b == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if a == b || a == m || b == m {
		return matrixErrorf(op, ErrAliasingNotAllowed)
	}
	if k <= 0 || k >= dim {
		return matrixErrorf(op, fmt.Errorf("split at %d of %d: %w", k, dim, ErrEmptyResultNotAllowed))
	}

	return nil
}

// ConcatenateByRow replaces m with a stacked on top of b.
// Errors: ErrNilMatrix, ErrDimensionMismatch when both operands are non-empty
// and their column counts differ. m is untouched on error.
func (m *Matrix[T]) ConcatenateByRow(a, b *Matrix[T]) error {
	if m == nil || a == nil || b == nil {
		return matrixErrorf(opConcatRow, ErrNilMatrix)
	}
	if !a.IsEmpty() && !b.IsEmpty() && a.st.cols != b.st.cols {
		return matrixErrorf(opConcatRow, fmt.Errorf("%d vs %d columns: %w", a.st.cols, b.st.cols, ErrDimensionMismatch))
	}
	a, b = m.snapshotOperands(a, b)
	a, b = nonEmptyFirst(a, b)
	if b.IsEmpty() {
		m.assignFrom(a)
		return nil
	}
	m.reshapeForOverwrite(a.st.rows+b.st.rows, a.st.cols)
	copyRegionAt(m, a, 0, 0, 0, 0, a.st.rows, a.st.cols)
	copyRegionAt(m, b, a.st.rows, 0, 0, 0, b.st.rows, b.st.cols)

	return nil
}

// ConcatenateByColumn replaces m with a placed left of b.
// Errors: ErrNilMatrix, ErrDimensionMismatch when both operands are non-empty
// and their row counts differ.
func (m *Matrix[T]) ConcatenateByColumn(a, b *Matrix[T]) error {
	if m == nil || a == nil || b == nil {
		return matrixErrorf(opConcatColumn, ErrNilMatrix)
	}
	if !a.IsEmpty() && !b.IsEmpty() && a.st.rows != b.st.rows {
		return matrixErrorf(opConcatColumn, fmt.Errorf("%d vs %d rows: %w", a.st.rows, b.st.rows, ErrDimensionMismatch))
	}
	a, b = m.snapshotOperands(a, b)
	a, b = nonEmptyFirst(a, b)
	if b.IsEmpty() {
		m.assignFrom(a)
		return nil
	}
	m.reshapeForOverwrite(a.st.rows, a.st.cols+b.st.cols)
	copyRegionAt(m, a, 0, 0, 0, 0, a.st.rows, a.st.cols)
	copyRegionAt(m, b, 0, a.st.cols, 0, 0, b.st.rows, b.st.cols)

	return nil
}

// snapshotOperands replaces operands that alias m with value copies.
func (m *Matrix[T]) snapshotOperands(a, b *Matrix[T]) (*Matrix[T], *Matrix[T]) {
	var snap *Matrix[T]
	if a == m || b == m {
		snap = m.Clone()
	}
	if a == m {
		a = snap
	}
	if b == m {
		b = snap
	}

	return a, b
}

// nonEmptyFirst orders the operands so that an empty one, if any, comes last.
func nonEmptyFirst[T any](a, b *Matrix[T]) (*Matrix[T], *Matrix[T]) {
	if a.IsEmpty() {
		return b, a
	}

	return a, b
}

// assignFrom overwrites m with the shape and elements of src (src != m).
func (m *Matrix[T]) assignFrom(src *Matrix[T]) {
	m.reshapeForOverwrite(src.st.rows, src.st.cols)
	copyRegion(m, src, 0, 0, src.st.rows, src.st.cols)
}

// reshapeForOverwrite gives m a rows×cols extent whose every cell the caller
// overwrites next. Capacity is reused when it suffices.
func (m *Matrix[T]) reshapeForOverwrite(rows, cols int) {
	if m.st.fits(rows, cols) {
		m.st.rows, m.st.cols = rows, cols
		m.ResetPosition()
		m.reshaped()

		return
	}
	f := m.growthFactor()
	m.replaceStorage(newStorage[T](rows, cols,
		grownCap(m.st.rowCap, rows, f),
		grownCap(m.st.colCap, cols, f)))
}

// copyRegion copies the rows×cols block of src starting at (r0, c0) into dst
// starting at (0, 0).
func copyRegion[T any](dst, src *Matrix[T], r0, c0, rows, cols int) {
	copyRegionAt(dst, src, 0, 0, r0, c0, rows, cols)
}

// copyRegionAt copies the rows×cols block of src at (sr, sc) into dst at
// (dr, dc).
func copyRegionAt[T any](dst, src *Matrix[T], dr, dc, sr, sc, rows, cols int) {
	for i := 0; i < rows; i++ {
		d := dst.st.slot(dr+i, dc)
		s := src.st.slot(sr+i, sc)
		copy(dst.st.data[d:d+cols], src.st.data[s:s+cols])
	}
}
