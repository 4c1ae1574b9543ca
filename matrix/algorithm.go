// SPDX-License-Identifier: MIT

// Package matrix - range algorithms over iterators.
//
// Every iterator kind satisfies RandomAccess, so the helpers below work on
// whole-matrix, row, column, diagonal and reverse ranges alike:
//
//	matrix.Sort(m.RowBegin(1), m.RowEnd(1), cmp.Compare[int])
//	matrix.Sort(m.RBegin(), m.REnd(), cmp.Compare[int]) // descending
//
// A range is [first, last) where last is reachable from first; both must be
// related (same matrix, generation and traversal). Errors from Distance or
// PtrAt are returned unchanged.

package matrix

import (
	"fmt"
	"iter"
	"slices"
)

// RandomAccess is the iterator contract the range algorithms rely on.
type RandomAccess[T, I any] interface {
	Distance(I) (int, error)
	PtrAt(int) (*T, error)
	Add(int) I
}

// rangePtrs resolves [first, last) to element pointers.
func rangePtrs[T any, I RandomAccess[T, I]](op string, first, last I) ([]*T, error) {
	n, err := last.Distance(first)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, iterErrorf(op, fmt.Errorf("%w: last precedes first by %d", ErrInvalidIteratorUse, -n))
	}
	ptrs := make([]*T, n)
	for k := range ptrs {
		if ptrs[k], err = first.PtrAt(k); err != nil {
			return nil, err
		}
	}

	return ptrs, nil
}

// sortRange sorts values through their pointers with the given slices sorter.
func sortRange[T any](ptrs []*T, sorter func([]T)) {
	vals := make([]T, len(ptrs))
	for k, p := range ptrs {
		vals[k] = *p
	}
	sorter(vals)
	for k, p := range ptrs {
		*p = vals[k]
	}
}

// Sort orders [first, last) ascending by cmp.
// Complexity: O(n log n) time, O(n) extra memory.
func Sort[T any, I RandomAccess[T, I]](first, last I, cmp func(a, b T) int) error {
	ptrs, err := rangePtrs[T]("Sort", first, last)
	if err != nil {
		return err
	}
	sortRange(ptrs, func(v []T) { slices.SortFunc(v, cmp) })

	return nil
}

// SortStable is Sort keeping the relative order of equal elements.
func SortStable[T any, I RandomAccess[T, I]](first, last I, cmp func(a, b T) int) error {
	ptrs, err := rangePtrs[T]("SortStable", first, last)
	if err != nil {
		return err
	}
	sortRange(ptrs, func(v []T) { slices.SortStableFunc(v, cmp) })

	return nil
}

// Find returns the first iterator in [first, last) whose element satisfies
// pred, or last when none does.
func Find[T any, I RandomAccess[T, I]](first, last I, pred func(T) bool) (I, error) {
	ptrs, err := rangePtrs[T]("Find", first, last)
	if err != nil {
		return last, err
	}
	for k, p := range ptrs {
		if pred(*p) {
			return first.Add(k), nil
		}
	}

	return last, nil
}

// FindValue returns the first iterator in [first, last) whose element equals v.
func FindValue[T comparable, I RandomAccess[T, I]](first, last I, v T) (I, error) {
	return Find(first, last, func(x T) bool { return x == v })
}

// Count returns how many elements of [first, last) satisfy pred.
func Count[T any, I RandomAccess[T, I]](first, last I, pred func(T) bool) (int, error) {
	ptrs, err := rangePtrs[T]("Count", first, last)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range ptrs {
		if pred(*p) {
			n++
		}
	}

	return n, nil
}

// CountValue returns how many elements of [first, last) equal v.
func CountValue[T comparable, I RandomAccess[T, I]](first, last I, v T) (int, error) {
	return Count(first, last, func(x T) bool { return x == v })
}

// Fill writes v into every element of [first, last).
func Fill[T any, I RandomAccess[T, I]](first, last I, v T) error {
	ptrs, err := rangePtrs[T]("Fill", first, last)
	if err != nil {
		return err
	}
	for _, p := range ptrs {
		*p = v
	}

	return nil
}

// Reverse reverses the elements of [first, last) in place.
func Reverse[T any, I RandomAccess[T, I]](first, last I) error {
	ptrs, err := rangePtrs[T]("Reverse", first, last)
	if err != nil {
		return err
	}
	for i, j := 0, len(ptrs)-1; i < j; i, j = i+1, j-1 {
		*ptrs[i], *ptrs[j] = *ptrs[j], *ptrs[i]
	}

	return nil
}

// Values returns a sequence over the elements of [first, last). The range is
// resolved up front; the sequence reads the live elements when iterated.
func Values[T any, I RandomAccess[T, I]](first, last I) (iter.Seq[T], error) {
	ptrs, err := rangePtrs[T]("Values", first, last)
	if err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		for _, p := range ptrs {
			if !yield(*p) {
				return
			}
		}
	}, nil
}

// Sort orders the elements selected by scope. SortAll follows the legacy
// linear order (row or column wrap); the other scopes sort each row or column
// on its own.
// Errors: ErrNilMatrix, ErrUnsupportedScope.
func (m *Matrix[T]) Sort(scope SortScope, cmp func(a, b T) int) error {
	if m == nil {
		return matrixErrorf(opSort, ErrNilMatrix)
	}
	switch scope {
	case SortAll:
		return Sort(m.LinearBegin(), m.LinearEnd(), cmp)
	case SortEachRow:
		for r := 0; r < m.st.rows; r++ {
			slices.SortFunc(m.st.row(r), cmp)
		}
		return nil
	case SortEachColumn:
		for c := 0; c < m.st.cols; c++ {
			first, err := m.ColumnBegin(c)
			if err != nil {
				return err
			}
			last, err := m.ColumnEnd(c)
			if err != nil {
				return err
			}
			if err = Sort(first, last, cmp); err != nil {
				return err
			}
		}
		return nil
	default:
		return matrixErrorf(opSort, fmt.Errorf("%s: %w", scope, ErrUnsupportedScope))
	}
}
