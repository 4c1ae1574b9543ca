// SPDX-License-Identifier: MIT

package matrix_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// TestSortRanges sorts whole-matrix, row, diagonal and reverse ranges.
func TestSortRanges(t *testing.T) {
	m := mustRows(t, [][]int{{9, 3, 7}, {1, 8, 2}, {6, 4, 5}})
	require.NoError(t, matrix.Sort(m.Begin(), m.End(), cmp.Compare[int]))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Data())

	require.NoError(t, matrix.Sort(m.RBegin(), m.REnd(), cmp.Compare[int]))
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, m.Data(), "reverse range sorts descending")

	first, err := m.RowBegin(1)
	require.NoError(t, err)
	last, err := m.RowEnd(1)
	require.NoError(t, err)
	require.NoError(t, matrix.Sort(first, last, cmp.Compare[int]))
	assert.Equal(t, [][]int{{9, 8, 7}, {4, 5, 6}, {3, 2, 1}}, m.ToRows())

	db, err := m.DiagonalBegin(0)
	require.NoError(t, err)
	de, err := m.DiagonalEnd(0)
	require.NoError(t, err)
	require.NoError(t, matrix.Sort(db, de, cmp.Compare[int]))
	assert.Equal(t, [][]int{{1, 8, 7}, {4, 5, 6}, {3, 2, 9}}, m.ToRows())

	require.ErrorIs(t, matrix.Sort(m.End(), m.Begin(), cmp.Compare[int]), matrix.ErrInvalidIteratorUse)
}

// TestSortStableKeepsTies sorts by a key with ties.
func TestSortStableKeepsTies(t *testing.T) {
	type item struct{ key, seq int }
	m, err := matrix.NewFromRows([][]item{{{2, 0}, {1, 1}, {2, 2}, {1, 3}}})
	require.NoError(t, err)
	byKey := func(a, b item) int { return cmp.Compare(a.key, b.key) }
	require.NoError(t, matrix.SortStable(m.Begin(), m.End(), byKey))
	assert.Equal(t, []item{{1, 1}, {1, 3}, {2, 0}, {2, 2}}, m.Data())
}

// TestFindCountFill covers the search and fill helpers.
func TestFindCountFill(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2, 3}, {2, 2, 5}})

	it, err := matrix.FindValue(m.Begin(), m.End(), 5)
	require.NoError(t, err)
	assert.Equal(t, p(1, 2), it.Position())

	it, err = matrix.FindValue(m.Begin(), m.End(), 42)
	require.NoError(t, err)
	assert.True(t, it.IsEnd())

	zit, err := matrix.Find(m.ZBegin(), m.ZEnd(), func(x int) bool { return x > 2 })
	require.NoError(t, err)
	assert.Equal(t, p(1, 2), zit.Position(), "Z order visits (1,2) before (0,2)")

	n, err := matrix.CountValue(m.Begin(), m.End(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = matrix.Count(m.LinearBegin(), m.LinearEnd(), func(x int) bool { return x%2 == 1 })
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	cb, err := m.ColumnBegin(0)
	require.NoError(t, err)
	ce, err := m.ColumnEnd(0)
	require.NoError(t, err)
	require.NoError(t, matrix.Fill(cb, ce, 0))
	assert.Equal(t, [][]int{{0, 2, 3}, {0, 2, 5}}, m.ToRows())
}

// TestReverseAndValues covers Reverse and the iter.Seq adapter.
func TestReverseAndValues(t *testing.T) {
	m := mustMatrix(t, 2, 2)
	require.NoError(t, matrix.Reverse[int](m.Begin(), m.End()))
	assert.Equal(t, []int{11, 10, 1, 0}, m.Data())

	seq, err := matrix.Values[int](m.ZBegin(), m.ZEnd())
	require.NoError(t, err)
	assert.Equal(t, []int{11, 0, 10, 1}, slices.Collect(seq))

	var zero matrix.NIterator[int]
	seq, err = matrix.Values[int](zero, zero)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))

	other := mustMatrix(t, 2, 2)
	_, err = matrix.Values[int](m.Begin(), other.End())
	require.ErrorIs(t, err, matrix.ErrInvalidIteratorUse)
}

// TestMatrixSortScopes covers every SortScope and the closed-enum guard.
func TestMatrixSortScopes(t *testing.T) {
	rows := [][]int{{3, 1, 2}, {9, 7, 8}, {6, 4, 5}}

	m := mustRows(t, rows)
	require.NoError(t, m.Sort(matrix.SortEachRow, cmp.Compare[int]))
	assert.Equal(t, [][]int{{1, 2, 3}, {7, 8, 9}, {4, 5, 6}}, m.ToRows())

	m = mustRows(t, rows)
	require.NoError(t, m.Sort(matrix.SortEachColumn, cmp.Compare[int]))
	assert.Equal(t, [][]int{{3, 1, 2}, {6, 4, 5}, {9, 7, 8}}, m.ToRows())

	m = mustRows(t, rows)
	require.NoError(t, m.Sort(matrix.SortAll, cmp.Compare[int]))
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, m.ToRows())

	m = mustRows(t, rows, matrix.WithWrapByRow(false))
	require.NoError(t, m.Sort(matrix.SortAll, cmp.Compare[int]))
	assert.Equal(t, [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, m.ToRows())

	require.ErrorIs(t, m.Sort(matrix.SortScope(7), cmp.Compare[int]), matrix.ErrUnsupportedScope)
	assert.Equal(t, "each-column", matrix.SortEachColumn.String())
}
