// SPDX-License-Identifier: MIT

// Package matrix - mutation engine: resize, reserve, insert, erase, swap.
//
// MAIN DESCRIPTION:
//   - Reshape the logical extent while keeping every surviving value at its
//     coordinates (or at the shifted coordinates for insert/erase).
//   - Reuse spare capacity when the new extent fits; otherwise reallocate with
//     the growth factor and copy the surviving region.
//
// Implementation:
//   - Stage 1: validate every precondition (nil -> dimension -> index -> shape).
//     Nothing is written before all checks pass.
//   - Stage 2: in place when the shape fits the capacity, else a fresh block.
//   - Stage 3: cells that become logical again are filled explicitly; cursors
//     are reset after a reallocation and clamped after an in-place reshape;
//     the generation is bumped so iterators created earlier turn stale.
//
// Complexity:
//   - Resize/Insert/Erase: O(R*C) worst case. SwapRows: O(C). SwapColumns: O(R).

package matrix

import "fmt"

// ResizeDiscardingContents gives m a zero-filled newRows×newCols extent.
// Capacity is reused when it suffices.
// Errors: ErrNilMatrix, ErrInvalidDimension when newRows <= 0 or newCols <= 0.
func (m *Matrix[T]) ResizeDiscardingContents(newRows, newCols int) error {
	if m == nil {
		return matrixErrorf(opResize, ErrNilMatrix)
	}
	if newRows <= 0 || newCols <= 0 {
		return matrixErrorf(opResize, fmt.Errorf("%dx%d: %w", newRows, newCols, ErrInvalidDimension))
	}
	if !m.st.fits(newRows, newCols) {
		m.replaceStorage(newStorage[T](newRows, newCols, newRows, newCols))
		return nil
	}
	var zero T
	m.st.rows, m.st.cols = newRows, newCols
	m.st.fillRect(0, newRows, 0, newCols, zero)
	m.ResetPosition()
	m.reshaped()

	return nil
}

// ResizeKeepingContents resizes m to newRows×newCols keeping the overlapping
// rectangle at its coordinates; newly exposed cells get the zero value.
func (m *Matrix[T]) ResizeKeepingContents(newRows, newCols int) error {
	var zero T
	return m.ResizeKeepingContentsFill(newRows, newCols, zero)
}

// ResizeKeepingContentsFill is ResizeKeepingContents with an explicit value
// for newly exposed cells. All four grow/shrink combinations of the two
// dimensions are supported.
// Errors: ErrNilMatrix, ErrInvalidDimension.
func (m *Matrix[T]) ResizeKeepingContentsFill(newRows, newCols int, fill T) error {
	if m == nil {
		return matrixErrorf(opResizeKeep, ErrNilMatrix)
	}
	if newRows <= 0 || newCols <= 0 {
		return matrixErrorf(opResizeKeep, fmt.Errorf("%dx%d: %w", newRows, newCols, ErrInvalidDimension))
	}
	oldRows, oldCols := m.st.rows, m.st.cols
	keepRows := min(oldRows, newRows)

	if m.st.fits(newRows, newCols) {
		m.st.rows, m.st.cols = newRows, newCols
		m.st.fillRect(0, keepRows, oldCols, newCols, fill) // widened part of kept rows
		m.st.fillRect(keepRows, newRows, 0, newCols, fill) // new rows
		m.clampCursors()
		m.reshaped()

		return nil
	}

	f := m.growthFactor()
	st := m.st.reallocated(newRows, newCols,
		grownCap(m.st.rowCap, newRows, f),
		grownCap(m.st.colCap, newCols, f))
	st.fillRect(0, keepRows, oldCols, newCols, fill)
	st.fillRect(keepRows, newRows, 0, newCols, fill)
	m.replaceStorage(st)

	return nil
}

// Reserve grows the capacity to at least rowCap×colCap without changing the
// logical extent. Smaller requests are a no-op.
// Errors: ErrNilMatrix, ErrInvalidDimension on negative capacities.
func (m *Matrix[T]) Reserve(rowCap, colCap int) error {
	if m == nil {
		return matrixErrorf(opReserve, ErrNilMatrix)
	}
	if rowCap < 0 || colCap < 0 {
		return matrixErrorf(opReserve, fmt.Errorf("capacity %dx%d: %w", rowCap, colCap, ErrInvalidDimension))
	}
	if rowCap <= m.st.rowCap && colCap <= m.st.colCap {
		return nil
	}
	m.replaceStorage(m.st.reallocated(m.st.rows, m.st.cols,
		max(rowCap, m.st.rowCap), max(colCap, m.st.colCap)))

	return nil
}

// ShrinkToFit drops spare capacity.
func (m *Matrix[T]) ShrinkToFit() {
	if m == nil || (m.st.rowCap == m.st.rows && m.st.colCap == m.st.cols) {
		return
	}
	m.replaceStorage(m.st.compact())
}

// InsertRow inserts a zero-filled row before row r; r == Rows() appends.
// Errors: ErrNilMatrix, ErrInvalidDimension on an empty matrix (no column
// count to use), ErrIndexOutOfRange when r is outside [0, Rows()].
func (m *Matrix[T]) InsertRow(r int) error {
	if m == nil {
		return matrixErrorf(opInsertRow, ErrNilMatrix)
	}
	if m.st.size() == 0 {
		return matrixErrorf(opInsertRow, fmt.Errorf("empty matrix: %w", ErrInvalidDimension))
	}
	if r < 0 || r > m.st.rows {
		return matrixErrorf(opInsertRow, fmt.Errorf("row %d: %w", r, ErrIndexOutOfRange))
	}
	var zero T
	rows, cols := m.st.rows, m.st.cols

	if rows+1 <= m.st.rowCap {
		for i := rows - 1; i >= r; i-- {
			copy(m.st.data[m.st.slot(i+1, 0):m.st.slot(i+1, cols)], m.st.row(i))
		}
		m.st.rows++
		m.st.fillRect(r, r+1, 0, cols, zero)
		m.reshaped()

		return nil
	}

	st := newStorage[T](rows+1, cols, grownCap(m.st.rowCap, rows+1, m.growthFactor()), m.st.colCap)
	for i := 0; i < rows; i++ {
		dst := i
		if i >= r {
			dst++
		}
		copy(st.row(dst), m.st.row(i))
	}
	m.replaceStorage(st)

	return nil
}

// InsertColumn inserts a zero-filled column before column c; c == Cols()
// appends.
// Errors: ErrNilMatrix, ErrInvalidDimension on an empty matrix,
// ErrIndexOutOfRange when c is outside [0, Cols()].
func (m *Matrix[T]) InsertColumn(c int) error {
	if m == nil {
		return matrixErrorf(opInsertColumn, ErrNilMatrix)
	}
	if m.st.size() == 0 {
		return matrixErrorf(opInsertColumn, fmt.Errorf("empty matrix: %w", ErrInvalidDimension))
	}
	if c < 0 || c > m.st.cols {
		return matrixErrorf(opInsertColumn, fmt.Errorf("column %d: %w", c, ErrIndexOutOfRange))
	}
	var zero T
	rows, cols := m.st.rows, m.st.cols

	if cols+1 <= m.st.colCap {
		var base int
		for i := 0; i < rows; i++ {
			base = i * m.st.colCap
			copy(m.st.data[base+c+1:base+cols+1], m.st.data[base+c:base+cols])
			m.st.data[base+c] = zero
		}
		m.st.cols++
		m.reshaped()

		return nil
	}

	st := newStorage[T](rows, cols+1, m.st.rowCap, grownCap(m.st.colCap, cols+1, m.growthFactor()))
	for i := 0; i < rows; i++ {
		src, dst := m.st.row(i), st.row(i)
		copy(dst[:c], src[:c])
		copy(dst[c+1:], src[c:])
	}
	m.replaceStorage(st)

	return nil
}

// EraseRow removes row r; later rows move up by one.
// Errors: ErrNilMatrix, ErrInvalidDimension when m has at most one row,
// ErrIndexOutOfRange when r is outside [0, Rows()).
func (m *Matrix[T]) EraseRow(r int) error {
	if m == nil {
		return matrixErrorf(opEraseRow, ErrNilMatrix)
	}
	if m.st.rows <= 1 {
		return matrixErrorf(opEraseRow, fmt.Errorf("cannot erase the only row: %w", ErrInvalidDimension))
	}
	if r < 0 || r >= m.st.rows {
		return matrixErrorf(opEraseRow, fmt.Errorf("row %d: %w", r, ErrIndexOutOfRange))
	}
	for i := r; i < m.st.rows-1; i++ {
		copy(m.st.row(i), m.st.row(i+1))
	}
	m.st.rows--
	m.clampCursors()
	m.reshaped()

	return nil
}

// EraseColumn removes column c; later columns move left by one.
// Errors: ErrNilMatrix, ErrInvalidDimension when m has at most one column,
// ErrIndexOutOfRange when c is outside [0, Cols()).
func (m *Matrix[T]) EraseColumn(c int) error {
	if m == nil {
		return matrixErrorf(opEraseColumn, ErrNilMatrix)
	}
	if m.st.cols <= 1 {
		return matrixErrorf(opEraseColumn, fmt.Errorf("cannot erase the only column: %w", ErrInvalidDimension))
	}
	if c < 0 || c >= m.st.cols {
		return matrixErrorf(opEraseColumn, fmt.Errorf("column %d: %w", c, ErrIndexOutOfRange))
	}
	for i := 0; i < m.st.rows; i++ {
		row := m.st.row(i)
		copy(row[c:], row[c+1:])
	}
	m.st.cols--
	m.clampCursors()
	m.reshaped()

	return nil
}

// SwapRows exchanges rows i and j. The shape does not change, so iterators
// stay valid and observe the swapped values.
func (m *Matrix[T]) SwapRows(i, j int) error {
	if m == nil {
		return matrixErrorf(opSwapRows, ErrNilMatrix)
	}
	if i < 0 || i >= m.st.rows || j < 0 || j >= m.st.rows {
		return matrixErrorf(opSwapRows, fmt.Errorf("rows %d,%d: %w", i, j, ErrIndexOutOfRange))
	}
	if i == j {
		return nil
	}
	a, b := m.st.row(i), m.st.row(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}

	return nil
}

// SwapColumns exchanges columns i and j.
func (m *Matrix[T]) SwapColumns(i, j int) error {
	if m == nil {
		return matrixErrorf(opSwapColumns, ErrNilMatrix)
	}
	if i < 0 || i >= m.st.cols || j < 0 || j >= m.st.cols {
		return matrixErrorf(opSwapColumns, fmt.Errorf("columns %d,%d: %w", i, j, ErrIndexOutOfRange))
	}
	if i == j {
		return nil
	}
	for r := 0; r < m.st.rows; r++ {
		row := m.st.row(r)
		row[i], row[j] = row[j], row[i]
	}

	return nil
}

// SwapRowWith exchanges row r of m with row otherRow of other.
// Errors: ErrNilMatrix, ErrIndexOutOfRange, ErrDimensionMismatch when the
// column counts differ.
func (m *Matrix[T]) SwapRowWith(other *Matrix[T], r, otherRow int) error {
	if m == nil || other == nil {
		return matrixErrorf(opSwapRowWith, ErrNilMatrix)
	}
	if other == m {
		return m.SwapRows(r, otherRow)
	}
	if r < 0 || r >= m.st.rows || otherRow < 0 || otherRow >= other.st.rows {
		return matrixErrorf(opSwapRowWith, fmt.Errorf("rows %d,%d: %w", r, otherRow, ErrIndexOutOfRange))
	}
	if m.st.cols != other.st.cols {
		return matrixErrorf(opSwapRowWith, fmt.Errorf("%d vs %d columns: %w", m.st.cols, other.st.cols, ErrDimensionMismatch))
	}
	a, b := m.st.row(r), other.st.row(otherRow)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}

	return nil
}
