// Package matrix provides Matrix[T], a generic dense two-dimensional container
// with spare capacity, structural editing and a family of random-access iterators.
//
// 🚀 What is in the box?
//
//	A contiguous storage block addressed as data[r*colCap + c], where the logical
//	extent (Rows × Cols) may be smaller than the allocated capacity. On top of it:
//	  • Element access: At / Set / Ptr, plus the legacy linear index (AtLinear).
//	  • Mutation engine: ResizeKeepingContents, ResizeDiscardingContents,
//	    InsertRow/InsertColumn, EraseRow/EraseColumn, Split*/Concatenate*.
//	  • Iterators in three traversal orders, forward and reverse:
//	      N (row-major)        NIterator, NReverseIterator
//	      Z (diagonal-major)   ZIterator, ZReverseIterator
//	      linear wrap (legacy) LinearIterator, LinearReverseIterator
//	  • Range algorithms over any iterator pair: Sort, Find, Count, Fill, Values.
//
// ✨ Iterator contract:
//
//   - Next/Prev/Advance saturate at begin and end; they never fail.
//   - Distance, Compare, Equal and Less fail with ErrInvalidIteratorUse when the
//     two iterators belong to different non-empty matrices. Zero-value iterators
//     and iterators of empty matrices are interchangeable.
//   - Value/Ptr/Set fail on the end position and on zero-value iterators.
//   - An iterator remembers the generation of its matrix. Once the matrix is
//     reshaped (resize, insert, erase, concatenate, move) the iterator is stale
//     and reports ErrStaleIterator instead of reading reshaped storage.
//
// Z order:
//
//	Diagonals of constant d = col-row are visited outward from the main diagonal
//	(0, +1, -1, +2, -2, ...), cells inside a diagonal in increasing row order.
//	For a 4×3 matrix:
//
//	    (0,0)→(1,1)→(2,2) │ (0,1)→(1,2) │ (1,0)→(2,1)→(3,2) │ (0,2) │ (2,0)→(3,1) │ (3,0)
//	        d=0               d=+1            d=-1             d=+2      d=-2       d=-3
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewFromSlice(2, 3, []int{1, 2, 3, 4, 5, 6})
//	for it := m.Begin(); !it.IsEnd(); it.Next() {
//		v, _ := it.Value()
//		fmt.Println(it.Row(), it.Col(), v)
//	}
//
// The package is single-goroutine: no locks, no blocking calls.
package matrix
