// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/linalg"
	"github.com/katalvlaran/lvmatrix/matrix"
)

// TestCentering checks column and row centering with the returned means.
func TestCentering(t *testing.T) {
	X := rows(t, [][]float64{{1, 2}, {3, 6}, {5, 10}})

	Xc, means, err := linalg.CenterColumns(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, means)
	assert.Equal(t, [][]float64{{-2, -4}, {0, 0}, {2, 4}}, Xc.ToRows())

	Xr, rmeans, err := linalg.CenterRows(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 4.5, 7.5}, rmeans)
	assert.Equal(t, [][]float64{{-0.5, 0.5}, {-1.5, 1.5}, {-2.5, 2.5}}, Xr.ToRows())
	assert.Equal(t, [][]float64{{1, 2}, {3, 6}, {5, 10}}, X.ToRows(), "input untouched")

	empty, m, err := linalg.CenterColumns(matrix.NewEmpty[float64]())
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.Empty(t, m)
}

// TestNormalizeRows checks L1/L2 scaling and the zero-row policy.
func TestNormalizeRows(t *testing.T) {
	X := rows(t, [][]float64{{3, -4}, {0, 0}})

	l1, n1, err := linalg.NormalizeRowsL1(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 0}, n1)
	assert.InDelta(t, 3.0/7, mustAt(t, l1, 0, 0), 1e-12)
	assert.Equal(t, []float64{0, 0}, mustRow(t, l1, 1))

	l2, n2, err := linalg.NormalizeRowsL2(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0}, n2)
	assert.Equal(t, []float64{0.6, -0.8}, mustRow(t, l2, 0))
}

// TestCovarianceCorrelation checks a perfectly correlated pair and a
// constant column.
func TestCovarianceCorrelation(t *testing.T) {
	X := rows(t, [][]float64{{1, 2, 7}, {2, 4, 7}, {3, 6, 7}})

	cov, means, err := linalg.Covariance(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 7}, means)
	assert.True(t, linalg.Equal(cov, rows(t, [][]float64{{1, 2, 0}, {2, 4, 0}, {0, 0, 0}}), 1e-12), "got %v", cov)

	corr, _, stds, err := linalg.Correlation(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 0}, stds, 1e-12)
	assert.True(t, linalg.Equal(corr, rows(t, [][]float64{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}}), 1e-12), "got %v", corr)

	_, _, err = linalg.Covariance(rows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, _, _, err = linalg.Correlation(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestClipReplaceAllClose covers the element-wise sanitizers.
func TestClipReplaceAllClose(t *testing.T) {
	X := rows(t, [][]float64{{-5, 0.5}, {math.NaN(), math.Inf(1)}})

	clean, err := linalg.ReplaceInfNaN(X, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-5, 0.5}, {0, 0}}, clean.ToRows())

	clipped, err := linalg.Clip(clean, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-1, 0.5}, {0, 0}}, clipped.ToRows())

	_, err = linalg.Clip(clean, math.NaN(), 1)
	require.ErrorIs(t, err, linalg.ErrNaNInf)
	_, err = linalg.ReplaceInfNaN(X, math.Inf(-1))
	require.ErrorIs(t, err, linalg.ErrNaNInf)

	ok, err := linalg.AllClose(clipped, rows(t, [][]float64{{-1.001, 0.5}, {0, 0}}), 0, 0.01)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = linalg.AllClose(clipped, rows(t, [][]float64{{-1.1, 0.5}, {0, 0}}), 0.01, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = linalg.AllClose(clipped, rows(t, [][]float64{{1}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func mustAt(tb testing.TB, m *matrix.Matrix[float64], r, c int) float64 {
	tb.Helper()
	v, err := m.At(r, c)
	require.NoError(tb, err)

	return v
}

func mustRow(tb testing.TB, m *matrix.Matrix[float64], r int) []float64 {
	tb.Helper()
	row, err := m.Row(r)
	require.NoError(tb, err)

	return row
}
