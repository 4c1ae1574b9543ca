// SPDX-License-Identifier: MIT

// Package matrix - storage block with logical size and spare capacity.
//
// Purpose:
//   - One contiguous buffer addressed as data[r*colCap + c]; the logical extent
//     rows×cols may be smaller than rowCap×colCap so that growing a dimension
//     does not always reallocate.
//   - Slots outside the logical region are stale. Every code path that makes a
//     region logical again fills it explicitly; no accessor reads stale slots.
//
// Complexity quicksheet:
//   - slot: O(1); reallocated: O(rows*cols); fillRect: O(area).

package matrix

// storage is the owned buffer behind a Matrix.
//   - rows, cols:     logical extent (R, C).
//   - rowCap, colCap: physical extent (Rc >= R, Cc >= C).
//   - data:           len == rowCap*colCap, row stride == colCap.
type storage[T any] struct {
	rows, cols     int
	rowCap, colCap int
	data           []T
}

// newStorage allocates a zero-filled block with the requested logical shape and
// at least the requested capacities.
func newStorage[T any](rows, cols, rowCap, colCap int) storage[T] {
	if rowCap < rows {
		rowCap = rows
	}
	if colCap < cols {
		colCap = cols
	}

	return storage[T]{
		rows:   rows,
		cols:   cols,
		rowCap: rowCap,
		colCap: colCap,
		data:   make([]T, rowCap*colCap),
	}
}

// size returns the number of logical cells.
func (s *storage[T]) size() int { return s.rows * s.cols }

// slot returns the buffer offset of logical cell (r, c). No bounds check.
func (s *storage[T]) slot(r, c int) int { return r*s.colCap + c }

// row returns the logical part of row r as a sub-slice of the buffer.
func (s *storage[T]) row(r int) []T {
	base := r * s.colCap

	return s.data[base : base+s.cols]
}

// fits reports whether a rows×cols logical shape fits the current capacity.
func (s *storage[T]) fits(rows, cols int) bool {
	return rows <= s.rowCap && cols <= s.colCap
}

// fillRect writes v into the logical rectangle [r0,r1)×[c0,c1).
func (s *storage[T]) fillRect(r0, r1, c0, c1 int, v T) {
	var i, j, base int
	for i = r0; i < r1; i++ {
		base = i * s.colCap
		for j = c0; j < c1; j++ {
			s.data[base+j] = v
		}
	}
}

// reallocated returns a fresh block of logical shape rows×cols with the given
// capacities, holding the overlapping rectangle of s at the same coordinates.
// Cells outside the overlap are zero values; callers fill them when needed.
func (s *storage[T]) reallocated(rows, cols, rowCap, colCap int) storage[T] {
	dst := newStorage[T](rows, cols, rowCap, colCap)
	keepR := min(s.rows, rows)
	keepC := min(s.cols, cols)
	for i := 0; i < keepR; i++ {
		copy(dst.data[i*dst.colCap:i*dst.colCap+keepC], s.data[i*s.colCap:i*s.colCap+keepC])
	}

	return dst
}

// compact returns an exact-fit deep copy of the logical region.
func (s *storage[T]) compact() storage[T] {
	return s.reallocated(s.rows, s.cols, s.rows, s.cols)
}

// clone returns a deep copy that keeps the capacities of s.
func (s *storage[T]) clone() storage[T] {
	return s.reallocated(s.rows, s.cols, s.rowCap, s.colCap)
}

// grownCap returns the capacity to allocate for a dimension that must hold
// need entries and currently holds cur. factor < 1 falls back to the default.
func grownCap(cur, need int, factor float64) int {
	if need <= cur {
		return cur
	}
	if factor < 1 {
		factor = DefaultGrowthFactor
	}
	g := int(float64(cur) * factor)
	if g < need {
		g = need
	}

	return g
}
