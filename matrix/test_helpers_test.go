// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the iterator, mutation
//     and façade tests.
//   • Keep values distinct (cell (r,c) holds r*10+c) so that any misplaced
//     element is visible in a failure message.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// mustMatrix ALLOCATES an r×c matrix with cell (i,j) = i*10+j or fails the test.
func mustMatrix(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Matrix[int] {
	tb.Helper()
	m, err := matrix.New[int](r, c, opts...)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}
	m.Apply(func(i, j, _ int) int { return i*10 + j })

	return m
}

// mustRows builds a matrix from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]int, opts ...matrix.Option) *matrix.Matrix[int] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(tb testing.TB, m *matrix.Matrix[int], i, j int) int {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// cellIter is the read-only part shared by every iterator kind.
type cellIter interface {
	IsEnd() bool
	Position() matrix.Position
	Value() (int, error)
}

// walk drains an iterator through next, collecting positions and values.
func walk[I cellIter](tb testing.TB, it I, next func(*I)) ([]matrix.Position, []int) {
	tb.Helper()
	var (
		pos  []matrix.Position
		vals []int
	)
	for guard := 0; !it.IsEnd(); guard++ {
		if guard > 10_000 {
			tb.Fatalf("iterator did not reach end")
		}
		v, err := it.Value()
		if err != nil {
			tb.Fatalf("Value: %v", err)
		}
		pos = append(pos, it.Position())
		vals = append(vals, v)
		next(&it)
	}

	return pos, vals
}

// p is a compact Position literal.
func p(r, c int) matrix.Position { return matrix.Position{Row: r, Col: c} }

// arith is the value-receiver arithmetic every iterator kind I provides.
type arith[I any] interface {
	Add(n int) I
	Sub(n int) I
	Equal(o I) (bool, error)
	IsBegin() bool
	IsEnd() bool
}

// mover is the in-place movement *I provides.
type mover[I any] interface {
	*I
	Next()
	Prev()
	Advance(n int)
}

// checkIterLaws asserts, for the scope [begin, end) of length n, that
// (it+k)-k == it for every k keeping it+k inside the scope, and that moving
// past either end saturates idempotently.
func checkIterLaws[I arith[I], P mover[I]](t *testing.T, begin, end I, n int) {
	t.Helper()
	for i := 0; i <= n; i++ {
		it := begin.Add(i)
		for k := -i; k <= n-i; k++ {
			eq, err := it.Add(k).Sub(k).Equal(it)
			require.NoError(t, err)
			require.True(t, eq, "i=%d k=%d", i, k)
		}
	}

	pastEnd := end
	for i := 0; i < 5; i++ {
		P(&pastEnd).Next()
	}
	eq, err := pastEnd.Equal(end)
	require.NoError(t, err)
	require.True(t, eq)
	require.True(t, pastEnd.IsEnd())

	beforeBegin := begin
	for i := 0; i < 5; i++ {
		P(&beforeBegin).Prev()
	}
	eq, err = beforeBegin.Equal(begin)
	require.NoError(t, err)
	require.True(t, eq)
	require.True(t, beforeBegin.IsBegin())

	far := begin
	P(&far).Advance(math.MaxInt)
	require.True(t, far.IsEnd())
	P(&far).Advance(math.MinInt)
	require.True(t, far.IsBegin())
}
