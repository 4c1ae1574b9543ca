// SPDX-License-Identifier: MIT

// Package matrix - Matrix façade.
//
// MAIN DESCRIPTION:
//   - Matrix[T] owns one storage block, a generation counter, the legacy
//     row/column cursors, the linear wrap flag and a per-generation cache of
//     coordinate translators.
//   - Every public accessor validates (row, col) against the logical extent and
//     never touches slots that lie in spare capacity.
//
// Implementation:
//   - Stage 1: constructors validate dimensions and allocate through newStorage.
//   - Stage 2: reshapes call reshaped(), which bumps gen and drops cached
//     translators, so every iterator created earlier turns stale.
//   - Stage 3: element access and copies work on the logical region only.
//
// Complexity:
//   - At/Set/Ptr/AtLinear: O(1). Clone/CopyFrom/Equal/Fill: O(R*C).

package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a dense R×C container with spare capacity in both dimensions.
// The zero value is an empty 0×0 matrix ready to use.
type Matrix[T any] struct {
	st        storage[T]
	gen       uint64
	rowCursor int
	colCursor int
	colWrap   bool    // false: row wrap (default)
	growth    float64 // 0: DefaultGrowthFactor
	trCache   [orderCount]*translator
}

// ---------- constructors ----------

// NewEmpty returns a 0×0 matrix. Only capacity-related options apply.
func NewEmpty[T any](opts ...Option) *Matrix[T] {
	o := gatherOptions(opts...)
	m := &Matrix[T]{}
	m.applyOptions(o)
	m.st = newStorage[T](0, 0, o.rowReserve, o.colReserve)

	return m
}

// New returns a zero-filled rows×cols matrix.
// Errors: ErrInvalidDimension when rows <= 0 or cols <= 0.
func New[T any](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimension))
	}
	o := gatherOptions(opts...)
	m := &Matrix[T]{}
	m.applyOptions(o)
	m.st = newStorage[T](rows, cols, o.rowReserve, o.colReserve)

	return m, nil
}

// NewFilled returns a rows×cols matrix with every cell set to v.
func NewFilled[T any](rows, cols int, v T, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	m.st.fillRect(0, rows, 0, cols, v)

	return m, nil
}

// NewFromSlice copies data (row-major, len rows*cols) into a new matrix.
// Errors: ErrInvalidDimension, ErrDimensionMismatch when len(data) != rows*cols.
func NewFromSlice[T any](rows, cols int, data []T, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNew, fmt.Errorf("len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch))
	}
	for i := 0; i < rows; i++ {
		copy(m.st.row(i), data[i*cols:(i+1)*cols])
	}

	return m, nil
}

// NewFromRows builds a matrix from row slices.
// Errors: ErrInvalidDimension on empty input, ErrDimensionMismatch on ragged rows.
func NewFromRows[T any](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("no rows: %w", ErrInvalidDimension))
	}
	m, err := New[T](len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != m.st.cols {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d has %d values, want %d: %w", i, len(r), m.st.cols, ErrDimensionMismatch))
		}
		copy(m.st.row(i), r)
	}

	return m, nil
}

// NewDiagonal returns an n×n matrix with v on the main diagonal and zero
// values elsewhere.
func NewDiagonal[T any](n int, v T, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.st.data[m.st.slot(i, i)] = v
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity[T Number](n int, opts ...Option) (*Matrix[T], error) {
	return NewDiagonal[T](n, T(1), opts...)
}

// applyOptions copies the option values the matrix keeps after construction.
func (m *Matrix[T]) applyOptions(o Options) {
	m.colWrap = !o.wrapByRow
	m.growth = o.growthFactor
}

// ---------- shape ----------

// Rows returns the logical row count. A nil matrix has 0 rows.
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.st.rows
}

// Cols returns the logical column count. A nil matrix has 0 columns.
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.st.cols
}

// Shape returns the logical extent.
func (m *Matrix[T]) Shape() Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

// Len returns Rows*Cols.
func (m *Matrix[T]) Len() int {
	if m == nil {
		return 0
	}

	return m.st.size()
}

// IsEmpty reports whether the matrix has no elements.
func (m *Matrix[T]) IsEmpty() bool { return m.Len() == 0 }

// Capacity returns the physical row and column capacity.
func (m *Matrix[T]) Capacity() (rowCap, colCap int) {
	if m == nil {
		return 0, 0
	}

	return m.st.rowCap, m.st.colCap
}

// WrapByRow reports the legacy linear wrap direction.
func (m *Matrix[T]) WrapByRow() bool { return !m.colWrap }

// SetWrapByRow switches the legacy linear wrap direction. Linear iterators
// created before the switch keep walking their old order.
func (m *Matrix[T]) SetWrapByRow(byRow bool) { m.colWrap = !byRow }

// LinearOrder returns the order used by AtLinear, linear iterators and
// Sort(SortAll, ...).
func (m *Matrix[T]) LinearOrder() Order {
	if m != nil && m.colWrap {
		return ColumnMajor
	}

	return RowMajor
}

// growthFactor returns the effective growth factor.
func (m *Matrix[T]) growthFactor() float64 {
	if m.growth < 1 {
		return DefaultGrowthFactor
	}

	return m.growth
}

// ---------- element access ----------

// At returns the element at (row, col).
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := m.checkCell(opAt, row, col); err != nil {
		var zero T
		return zero, err
	}

	return m.st.data[m.st.slot(row, col)], nil
}

// Set writes v at (row, col).
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := m.checkCell(opSet, row, col); err != nil {
		return err
	}
	m.st.data[m.st.slot(row, col)] = v

	return nil
}

// Ptr returns a mutable reference to (row, col). The pointer is valid until
// the next reshape.
func (m *Matrix[T]) Ptr(row, col int) (*T, error) {
	if err := m.checkCell("Ptr", row, col); err != nil {
		return nil, err
	}

	return &m.st.data[m.st.slot(row, col)], nil
}

// AtLinear returns the element at legacy linear index i (row or column wrap).
// Errors: ErrIndexOutOfRange when i is outside [0, Len()).
func (m *Matrix[T]) AtLinear(i int) (T, error) {
	p, err := m.linearPtr(opLinear, i)
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// SetLinear writes v at legacy linear index i.
func (m *Matrix[T]) SetLinear(i int, v T) error {
	p, err := m.linearPtr("SetLinear", i)
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// linearPtr resolves a legacy linear index to its slot.
func (m *Matrix[T]) linearPtr(op string, i int) (*T, error) {
	if m == nil {
		return nil, matrixErrorf(op, ErrNilMatrix)
	}
	if i < 0 || i >= m.Len() {
		return nil, matrixErrorf(op, fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange))
	}
	r, c := m.translator(m.LinearOrder()).cell(i)

	return &m.st.data[m.st.slot(r, c)], nil
}

// Row returns a copy of row r.
func (m *Matrix[T]) Row(r int) ([]T, error) {
	if _, _, err := m.rowScope("Row", r); err != nil {
		return nil, err
	}

	return append([]T(nil), m.st.row(r)...), nil
}

// Column returns a copy of column c.
func (m *Matrix[T]) Column(c int) ([]T, error) {
	if _, _, err := m.columnScope("Column", c); err != nil {
		return nil, err
	}
	out := make([]T, m.st.rows)
	for i := range out {
		out[i] = m.st.data[m.st.slot(i, c)]
	}

	return out, nil
}

// checkCell validates (row, col) against the logical extent.
func (m *Matrix[T]) checkCell(op string, row, col int) error {
	if m == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if row < 0 || row >= m.st.rows || col < 0 || col >= m.st.cols {
		return indexErrorf(op, row, col, ErrIndexOutOfRange)
	}

	return nil
}

// ---------- legacy cursors ----------

// RowCursor returns the current row cursor.
func (m *Matrix[T]) RowCursor() int { return m.rowCursor }

// ColumnCursor returns the current column cursor.
func (m *Matrix[T]) ColumnCursor() int { return m.colCursor }

// SetRowCursor moves the row cursor.
// Errors: ErrIndexOutOfRange when r is outside [0, Rows()).
func (m *Matrix[T]) SetRowCursor(r int) error {
	if r < 0 || r >= m.Rows() {
		return matrixErrorf(opCursor, fmt.Errorf("row %d: %w", r, ErrIndexOutOfRange))
	}
	m.rowCursor = r

	return nil
}

// SetColumnCursor moves the column cursor.
// Errors: ErrIndexOutOfRange when c is outside [0, Cols()).
func (m *Matrix[T]) SetColumnCursor(c int) error {
	if c < 0 || c >= m.Cols() {
		return matrixErrorf(opCursor, fmt.Errorf("column %d: %w", c, ErrIndexOutOfRange))
	}
	m.colCursor = c

	return nil
}

// ResetPosition moves both cursors back to (0,0).
func (m *Matrix[T]) ResetPosition() {
	m.rowCursor, m.colCursor = 0, 0
}

// clampCursors keeps the cursors inside the logical extent after an in-place
// reshape.
func (m *Matrix[T]) clampCursors() {
	if m.rowCursor >= m.st.rows {
		m.rowCursor = max(m.st.rows-1, 0)
	}
	if m.colCursor >= m.st.cols {
		m.colCursor = max(m.st.cols-1, 0)
	}
}

// ---------- generation & translators ----------

// translator returns the cached translator of order o for the current shape.
func (m *Matrix[T]) translator(o Order) *translator {
	shape := Shape{Rows: m.st.rows, Cols: m.st.cols}
	if t := m.trCache[o]; t != nil && t.shape == shape {
		return t
	}
	t := newTranslator(shape, o)
	m.trCache[o] = t

	return t
}

// reshaped marks every existing iterator stale.
func (m *Matrix[T]) reshaped() {
	m.gen++
	m.trCache = [orderCount]*translator{}
}

// replaceStorage installs st as the new block, resetting the cursors.
func (m *Matrix[T]) replaceStorage(st storage[T]) {
	m.st = st
	m.ResetPosition()
	m.reshaped()
}

// ---------- copy, move, swap ----------

// Clone returns a deep copy with the same options and an exact-fit capacity.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}

	return &Matrix[T]{
		st:        m.st.compact(),
		rowCursor: m.rowCursor,
		colCursor: m.colCursor,
		colWrap:   m.colWrap,
		growth:    m.growth,
	}
}

// CopyFrom makes m a deep copy of src's shape and elements. m keeps its own
// options. Copying a matrix onto itself is a no-op.
// Errors: ErrNilMatrix.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if m == nil || src == nil {
		return matrixErrorf(opCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	m.assignFrom(src)

	return nil
}

// Move transfers the storage of m to a new matrix and leaves m empty (0×0).
// Iterators of m become stale.
func (m *Matrix[T]) Move() *Matrix[T] {
	if m == nil {
		return nil
	}
	out := &Matrix[T]{
		st:        m.st,
		rowCursor: m.rowCursor,
		colCursor: m.colCursor,
		colWrap:   m.colWrap,
		growth:    m.growth,
	}
	m.replaceStorage(storage[T]{})

	return out
}

// Swap exchanges the contents of m and o. Iterators of both turn stale.
// Errors: ErrNilMatrix.
func (m *Matrix[T]) Swap(o *Matrix[T]) error {
	if m == nil || o == nil {
		return matrixErrorf("Swap", ErrNilMatrix)
	}
	if m == o {
		return nil
	}
	m.st, o.st = o.st, m.st
	m.rowCursor, o.rowCursor = o.rowCursor, m.rowCursor
	m.colCursor, o.colCursor = o.colCursor, m.colCursor
	m.reshaped()
	o.reshaped()

	return nil
}

// Equal reports whether a and b have the same shape and elements.
// Two nil matrices are equal; nil equals any empty matrix.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		ra, rb := a.st.row(i), b.st.row(i)
		for j := range ra {
			if ra[j] != rb[j] {
				return false
			}
		}
	}

	return true
}

// ---------- whole-matrix helpers ----------

// Fill sets every logical cell to v.
func (m *Matrix[T]) Fill(v T) {
	if m == nil {
		return
	}
	m.st.fillRect(0, m.st.rows, 0, m.st.cols, v)
}

// Apply replaces every element x at (i, j) with fn(i, j, x), in row-major order.
func (m *Matrix[T]) Apply(fn func(i, j int, x T) T) {
	if m == nil {
		return
	}
	for i := 0; i < m.st.rows; i++ {
		r := m.st.row(i)
		for j := range r {
			r[j] = fn(i, j, r[j])
		}
	}
}

// Do calls fn for every element in row-major order and stops early when fn
// returns false.
func (m *Matrix[T]) Do(fn func(i, j int, x T) bool) {
	if m == nil {
		return
	}
	for i := 0; i < m.st.rows; i++ {
		for j, x := range m.st.row(i) {
			if !fn(i, j, x) {
				return
			}
		}
	}
}

// ToRows returns a deep copy of the logical region as row slices.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = append([]T(nil), m.st.row(i)...)
	}

	return out
}

// Data returns a row-major copy of the logical region.
func (m *Matrix[T]) Data() []T {
	out := make([]T, 0, m.Len())
	for i := 0; i < m.Rows(); i++ {
		out = append(out, m.st.row(i)...)
	}

	return out
}

// String renders the matrix row by row with tab-separated values.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		for j, x := range m.st.row(i) {
			if j > 0 {
				b.WriteByte('\t')
			}
			fmt.Fprint(&b, x)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
