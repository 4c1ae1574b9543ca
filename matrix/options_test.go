// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// 1) TestDefaultOptions_Documented verifies the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	if o.WrapByRow != matrix.DefaultWrapByRow {
		t.Fatalf("wrapByRow default mismatch: got %v, want %v", o.WrapByRow, matrix.DefaultWrapByRow)
	}
	if o.GrowthFactor != matrix.DefaultGrowthFactor {
		t.Fatalf("growthFactor default mismatch: got %v, want %v", o.GrowthFactor, matrix.DefaultGrowthFactor)
	}
	if o.RowReserve != 0 || o.ColReserve != 0 {
		t.Fatalf("reserve default mismatch: got %dx%d, want 0x0", o.RowReserve, o.ColReserve)
	}
}

// 2) TestOptions_LastWriterWins ensures later options override earlier ones
// and nil options are skipped.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithWrapByRow(false),
		nil,
		matrix.WithGrowthFactor(3),
		matrix.WithReserve(4, 5),
		matrix.WithWrapByRow(true),
		matrix.WithReserve(6, 7),
	)
	assert.True(t, o.WrapByRow)
	assert.Equal(t, 3.0, o.GrowthFactor)
	assert.Equal(t, 6, o.RowReserve)
	assert.Equal(t, 7, o.ColReserve)
}

// 3) TestOptions_ApplyToMatrix checks the options reach the constructed matrix.
func TestOptions_ApplyToMatrix(t *testing.T) {
	m, err := matrix.New[int](2, 3, matrix.WithReserve(5, 1), matrix.WithWrapByRow(false))
	require.NoError(t, err)
	rc, cc := m.Capacity()
	assert.Equal(t, 5, rc)
	assert.Equal(t, 3, cc, "reserve below the logical size is ignored")
	assert.False(t, m.WrapByRow())

	exact, err := matrix.New[int](2, 2, matrix.WithGrowthFactor(1))
	require.NoError(t, err)
	require.NoError(t, exact.InsertRow(2))
	rc, _ = exact.Capacity()
	assert.Equal(t, 3, rc, "growth factor 1 allocates exactly")

	doubling, err := matrix.New[int](2, 2)
	require.NoError(t, err)
	require.NoError(t, doubling.InsertRow(2))
	rc, _ = doubling.Capacity()
	assert.Equal(t, 4, rc)
}

// 4) TestPanics_Messages validates guards in WithGrowthFactor and WithReserve.
func TestPanics_Messages(t *testing.T) {
	assert.PanicsWithValue(t, matrix.PanicGrowthFactorInvalid_TestOnly, func() { _ = matrix.WithGrowthFactor(math.NaN()) })
	assert.PanicsWithValue(t, matrix.PanicGrowthFactorInvalid_TestOnly, func() { _ = matrix.WithGrowthFactor(math.Inf(1)) })
	assert.PanicsWithValue(t, matrix.PanicGrowthFactorInvalid_TestOnly, func() { _ = matrix.WithGrowthFactor(0.5) })
	assert.PanicsWithValue(t, matrix.PanicReserveInvalid_TestOnly, func() { _ = matrix.WithReserve(-1, 0) })
	assert.PanicsWithValue(t, matrix.PanicReserveInvalid_TestOnly, func() { _ = matrix.WithReserve(0, -1) })
}
