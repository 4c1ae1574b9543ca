// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// MutationSuite exercises the reshaping operations on a fresh 3×4 fixture.
type MutationSuite struct {
	suite.Suite
	m *matrix.Matrix[int]
}

// SetupTest rebuilds the fixture: cell (r,c) = r*10+c.
func (s *MutationSuite) SetupTest() {
	s.m = mustMatrix(s.T(), 3, 4)
}

// TestEraseRowOnlyRow checks that the last remaining row cannot be erased.
func (s *MutationSuite) TestEraseRowOnlyRow() {
	one := mustMatrix(s.T(), 1, 3)
	require.ErrorIs(s.T(), one.EraseRow(0), matrix.ErrInvalidDimension)
	require.Equal(s.T(), 1, one.Rows())

	one = mustMatrix(s.T(), 3, 1)
	require.ErrorIs(s.T(), one.EraseColumn(0), matrix.ErrInvalidDimension)
}

// TestEraseRowKeepsOrder checks that the remaining rows keep their order.
func (s *MutationSuite) TestEraseRowKeepsOrder() {
	require.NoError(s.T(), s.m.EraseRow(1))
	require.Equal(s.T(), 2, s.m.Rows())
	require.Equal(s.T(), [][]int{{0, 1, 2, 3}, {20, 21, 22, 23}}, s.m.ToRows())

	require.ErrorIs(s.T(), s.m.EraseRow(2), matrix.ErrIndexOutOfRange)
	require.ErrorIs(s.T(), s.m.EraseRow(-1), matrix.ErrIndexOutOfRange)
}

// TestEraseColumn checks column removal.
func (s *MutationSuite) TestEraseColumn() {
	require.NoError(s.T(), s.m.EraseColumn(0))
	require.Equal(s.T(), [][]int{{1, 2, 3}, {11, 12, 13}, {21, 22, 23}}, s.m.ToRows())
	require.ErrorIs(s.T(), s.m.EraseColumn(3), matrix.ErrIndexOutOfRange)
}

// TestInsertEraseRoundTrip checks insert followed by erase at every valid index.
func (s *MutationSuite) TestInsertEraseRoundTrip() {
	want := s.m.Clone()
	for r := 0; r <= want.Rows(); r++ {
		require.NoError(s.T(), s.m.InsertRow(r))
		require.Equal(s.T(), 4, s.m.Rows())
		row, err := s.m.Row(r)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []int{0, 0, 0, 0}, row)
		require.NoError(s.T(), s.m.EraseRow(r))
		require.True(s.T(), matrix.Equal(want, s.m), "row %d", r)
	}
	for c := 0; c <= want.Cols(); c++ {
		require.NoError(s.T(), s.m.InsertColumn(c))
		col, err := s.m.Column(c)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []int{0, 0, 0}, col)
		require.NoError(s.T(), s.m.EraseColumn(c))
		require.True(s.T(), matrix.Equal(want, s.m), "column %d", c)
	}
}

// TestInsertInPlaceAndGrow checks both the spare-capacity and reallocation
// paths of InsertRow/InsertColumn, including stale cells in spare capacity.
func (s *MutationSuite) TestInsertInPlaceAndGrow() {
	m := mustMatrix(s.T(), 2, 2, matrix.WithReserve(3, 3))
	require.NoError(s.T(), m.ResizeKeepingContentsFill(3, 3, 7))
	require.NoError(s.T(), m.ResizeKeepingContents(2, 2)) // leaves 7s in spare slots

	require.NoError(s.T(), m.InsertRow(1))
	require.Equal(s.T(), [][]int{{0, 1}, {0, 0}, {10, 11}}, m.ToRows())
	rc, _ := m.Capacity()
	require.Equal(s.T(), 3, rc)

	require.NoError(s.T(), m.InsertColumn(0))
	require.Equal(s.T(), [][]int{{0, 0, 1}, {0, 0, 0}, {0, 10, 11}}, m.ToRows())

	require.NoError(s.T(), m.InsertRow(3)) // outgrows rowCap
	rc, cc := m.Capacity()
	require.GreaterOrEqual(s.T(), rc, 4)
	require.Equal(s.T(), 3, cc)
	require.Equal(s.T(), [][]int{{0, 0, 1}, {0, 0, 0}, {0, 10, 11}, {0, 0, 0}}, m.ToRows())
}

// TestInsertErrors covers empty matrices and bad indices.
func (s *MutationSuite) TestInsertErrors() {
	empty := matrix.NewEmpty[int]()
	require.ErrorIs(s.T(), empty.InsertRow(0), matrix.ErrInvalidDimension)
	require.ErrorIs(s.T(), empty.InsertColumn(0), matrix.ErrInvalidDimension)

	require.ErrorIs(s.T(), s.m.InsertRow(4), matrix.ErrIndexOutOfRange)
	require.ErrorIs(s.T(), s.m.InsertColumn(-1), matrix.ErrIndexOutOfRange)

	var nilM *matrix.Matrix[int]
	require.ErrorIs(s.T(), nilM.InsertRow(0), matrix.ErrNilMatrix)
}

// TestResizeKeepingFourCases covers every grow/shrink combination.
func (s *MutationSuite) TestResizeKeepingFourCases() {
	cases := []struct {
		name       string
		rows, cols int
		want       [][]int
	}{
		{"grow both", 4, 5, [][]int{
			{0, 1, 2, 3, -1}, {10, 11, 12, 13, -1}, {20, 21, 22, 23, -1}, {-1, -1, -1, -1, -1},
		}},
		{"grow rows shrink cols", 4, 2, [][]int{{0, 1}, {10, 11}, {20, 21}, {-1, -1}}},
		{"shrink rows grow cols", 2, 5, [][]int{{0, 1, 2, 3, -1}, {10, 11, 12, 13, -1}}},
		{"shrink both", 2, 2, [][]int{{0, 1}, {10, 11}}},
	}
	for _, tc := range cases {
		m := mustMatrix(s.T(), 3, 4)
		require.NoError(s.T(), m.ResizeKeepingContentsFill(tc.rows, tc.cols, -1), tc.name)
		require.Equal(s.T(), tc.want, m.ToRows(), tc.name)

		d, err := m.End().Distance(m.Begin())
		require.NoError(s.T(), err)
		require.Equal(s.T(), tc.rows*tc.cols, d, tc.name)
		d, err = m.ZEnd().Distance(m.ZBegin())
		require.NoError(s.T(), err)
		require.Equal(s.T(), tc.rows*tc.cols, d, tc.name)
	}
}

// TestResizeReusesCapacity checks that shrinking then growing stays in place
// and refills cells that were hidden in spare capacity.
func (s *MutationSuite) TestResizeReusesCapacity() {
	require.NoError(s.T(), s.m.ResizeKeepingContents(1, 1))
	rc, cc := s.m.Capacity()
	require.Equal(s.T(), 3, rc)
	require.Equal(s.T(), 4, cc)

	require.NoError(s.T(), s.m.ResizeKeepingContents(3, 4))
	require.Equal(s.T(), [][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, s.m.ToRows())
	rc, cc = s.m.Capacity()
	require.Equal(s.T(), 3, rc)
	require.Equal(s.T(), 4, cc)
}

// TestResizeDiscarding checks zeroing, cursor reset and argument validation.
func (s *MutationSuite) TestResizeDiscarding() {
	require.NoError(s.T(), s.m.SetRowCursor(2))
	require.NoError(s.T(), s.m.ResizeDiscardingContents(5, 2))
	require.Equal(s.T(), 5, s.m.Rows())
	require.Equal(s.T(), 2, s.m.Cols())
	require.Equal(s.T(), 0, s.m.RowCursor())
	s.m.Do(func(i, j, x int) bool {
		require.Zero(s.T(), x, "(%d,%d)", i, j)
		return true
	})

	require.ErrorIs(s.T(), s.m.ResizeDiscardingContents(0, 2), matrix.ErrInvalidDimension)
	require.ErrorIs(s.T(), s.m.ResizeKeepingContents(2, -1), matrix.ErrInvalidDimension)
	require.Equal(s.T(), 5, s.m.Rows(), "failed resize must not mutate")
}

// TestCursorsClampAfterErase checks the cursor invariant after shrinking.
func (s *MutationSuite) TestCursorsClampAfterErase() {
	require.NoError(s.T(), s.m.SetRowCursor(2))
	require.NoError(s.T(), s.m.SetColumnCursor(3))
	require.NoError(s.T(), s.m.EraseRow(2))
	require.NoError(s.T(), s.m.EraseColumn(3))
	require.Equal(s.T(), 1, s.m.RowCursor())
	require.Equal(s.T(), 2, s.m.ColumnCursor())

	require.ErrorIs(s.T(), s.m.SetRowCursor(2), matrix.ErrIndexOutOfRange)
	s.m.ResetPosition()
	require.Zero(s.T(), s.m.ColumnCursor())
}

// TestReserveAndShrink checks explicit capacity management.
func (s *MutationSuite) TestReserveAndShrink() {
	require.NoError(s.T(), s.m.Reserve(10, 6))
	rc, cc := s.m.Capacity()
	require.Equal(s.T(), 10, rc)
	require.Equal(s.T(), 6, cc)
	require.Equal(s.T(), 23, mustAt(s.T(), s.m, 2, 3))

	require.NoError(s.T(), s.m.Reserve(1, 1))
	rc, _ = s.m.Capacity()
	require.Equal(s.T(), 10, rc)

	s.m.ShrinkToFit()
	rc, cc = s.m.Capacity()
	require.Equal(s.T(), 3, rc)
	require.Equal(s.T(), 4, cc)
	require.Equal(s.T(), 23, mustAt(s.T(), s.m, 2, 3))

	require.ErrorIs(s.T(), s.m.Reserve(-1, 0), matrix.ErrInvalidDimension)
}

// TestSwaps covers row/column swaps inside one matrix and across two.
func (s *MutationSuite) TestSwaps() {
	require.NoError(s.T(), s.m.SwapRows(0, 2))
	require.NoError(s.T(), s.m.SwapColumns(0, 3))
	require.Equal(s.T(), [][]int{{23, 21, 22, 20}, {13, 11, 12, 10}, {3, 1, 2, 0}}, s.m.ToRows())
	require.ErrorIs(s.T(), s.m.SwapRows(0, 3), matrix.ErrIndexOutOfRange)
	require.ErrorIs(s.T(), s.m.SwapColumns(-1, 0), matrix.ErrIndexOutOfRange)

	other := mustRows(s.T(), [][]int{{-1, -2, -3, -4}})
	require.NoError(s.T(), s.m.SwapRowWith(other, 1, 0))
	row, err := s.m.Row(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{-1, -2, -3, -4}, row)
	require.Equal(s.T(), [][]int{{13, 11, 12, 10}}, other.ToRows())

	narrow := mustRows(s.T(), [][]int{{1, 2}})
	require.ErrorIs(s.T(), s.m.SwapRowWith(narrow, 0, 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(s.T(), s.m.SwapRowWith(nil, 0, 0), matrix.ErrNilMatrix)
}

// TestSplitConcatRoundTrip splits at every k and concatenates back.
func (s *MutationSuite) TestSplitConcatRoundTrip() {
	for k := 1; k < s.m.Rows(); k++ {
		a, b, out := matrix.NewEmpty[int](), matrix.NewEmpty[int](), matrix.NewEmpty[int]()
		require.NoError(s.T(), s.m.SplitByRow(a, b, k))
		require.Equal(s.T(), k, a.Rows())
		require.Equal(s.T(), s.m.Rows()-k, b.Rows())
		require.NoError(s.T(), out.ConcatenateByRow(a, b))
		require.True(s.T(), matrix.Equal(s.m, out), "k=%d", k)
	}
	for k := 1; k < s.m.Cols(); k++ {
		a, b, out := matrix.NewEmpty[int](), matrix.NewEmpty[int](), matrix.NewEmpty[int]()
		require.NoError(s.T(), s.m.SplitByColumn(a, b, k))
		require.Equal(s.T(), k, a.Cols())
		require.NoError(s.T(), out.ConcatenateByColumn(a, b))
		require.True(s.T(), matrix.Equal(s.m, out), "k=%d", k)
	}
}

// TestSplitErrors covers empty halves and every aliasing pattern.
func (s *MutationSuite) TestSplitErrors() {
	a, b := matrix.NewEmpty[int](), matrix.NewEmpty[int]()

	require.ErrorIs(s.T(), s.m.SplitByRow(a, b, 0), matrix.ErrEmptyResultNotAllowed)
	require.ErrorIs(s.T(), s.m.SplitByRow(a, b, s.m.Rows()), matrix.ErrEmptyResultNotAllowed)
	require.ErrorIs(s.T(), s.m.SplitByColumn(a, b, 4), matrix.ErrEmptyResultNotAllowed)

	require.ErrorIs(s.T(), s.m.SplitByRow(a, a, 1), matrix.ErrAliasingNotAllowed)
	require.ErrorIs(s.T(), s.m.SplitByRow(s.m, b, 1), matrix.ErrAliasingNotAllowed)
	require.ErrorIs(s.T(), s.m.SplitByColumn(a, s.m, 1), matrix.ErrAliasingNotAllowed)
	require.ErrorIs(s.T(), s.m.SplitByRow(nil, b, 1), matrix.ErrNilMatrix)

	require.True(s.T(), a.IsEmpty(), "failed split must not write destinations")
}

// TestConcatenateAliasing checks the snapshot policy for aliased operands.
func (s *MutationSuite) TestConcatenateAliasing() {
	orig := s.m.Clone()
	require.NoError(s.T(), s.m.ConcatenateByRow(s.m, s.m))
	require.Equal(s.T(), 6, s.m.Rows())
	top, bottom := matrix.NewEmpty[int](), matrix.NewEmpty[int]()
	require.NoError(s.T(), s.m.SplitByRow(top, bottom, 3))
	require.True(s.T(), matrix.Equal(orig, top))
	require.True(s.T(), matrix.Equal(orig, bottom))

	m := mustRows(s.T(), [][]int{{1}, {2}})
	tail := mustRows(s.T(), [][]int{{3}, {4}})
	require.NoError(s.T(), m.ConcatenateByColumn(m, tail))
	require.Equal(s.T(), [][]int{{1, 3}, {2, 4}}, m.ToRows())
	require.NoError(s.T(), m.ConcatenateByColumn(tail, m))
	require.Equal(s.T(), [][]int{{3, 1, 3}, {4, 2, 4}}, m.ToRows())
}

// TestConcatenateMismatchAndNeutral checks shape errors and empty operands.
func (s *MutationSuite) TestConcatenateMismatchAndNeutral() {
	before := s.m.Clone()
	wide := mustMatrix(s.T(), 2, 5)
	require.ErrorIs(s.T(), s.m.ConcatenateByRow(before, wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(s.T(), s.m.ConcatenateByColumn(before, wide), matrix.ErrDimensionMismatch)
	require.True(s.T(), matrix.Equal(before, s.m), "failed concatenate must not mutate")

	empty := matrix.NewEmpty[int]()
	require.NoError(s.T(), s.m.ConcatenateByRow(empty, wide))
	require.True(s.T(), matrix.Equal(wide, s.m))
	require.NoError(s.T(), s.m.ConcatenateByColumn(before, empty))
	require.True(s.T(), matrix.Equal(before, s.m))
	require.NoError(s.T(), s.m.ConcatenateByRow(empty, matrix.NewEmpty[int]()))
	require.True(s.T(), s.m.IsEmpty())
}

// TestMutationSuite runs the suite.
func TestMutationSuite(t *testing.T) {
	suite.Run(t, new(MutationSuite))
}
