// SPDX-License-Identifier: MIT

package linalg

// Statistical transforms over float64 matrices whose rows are observations
// and columns are features. They are compositions of the kernels in
// arith.go plus the per-row/per-column helpers below, so loops stay in a
// fixed i→j order.
//
// Zero-size policy: centering and normalization of an empty matrix return an
// empty copy; Covariance and Correlation need at least two rows.

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ColumnMeans returns Σ_i X[i,j] / Rows for every column j. Each column is
// read through its column iterator range.
func ColumnMeans(X *matrix.Matrix[float64]) ([]float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, err
	}
	means := make([]float64, X.Cols())
	for j := range means {
		first, err := X.ColumnBegin(j)
		if err != nil {
			return nil, err
		}
		last, err := X.ColumnEnd(j)
		if err != nil {
			return nil, err
		}
		seq, err := matrix.Values[float64](first, last)
		if err != nil {
			return nil, err
		}
		var s float64
		for v := range seq {
			s += v
		}
		means[j] = s / float64(X.Rows())
	}

	return means, nil
}

// RowMeans returns Σ_j X[i,j] / Cols for every row i.
func RowMeans(X *matrix.Matrix[float64]) ([]float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, err
	}
	means := make([]float64, X.Rows())
	for i := range means {
		row, err := X.Row(i)
		if err != nil {
			return nil, err
		}
		var s float64
		for _, v := range row {
			s += v
		}
		means[i] = s / float64(X.Cols())
	}

	return means, nil
}

// CenterColumns subtracts each column mean from its column.
// Returns the centered copy and the means.
func CenterColumns(X *matrix.Matrix[float64]) (*matrix.Matrix[float64], []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, linalgErrorf(opCenterColumns, err)
	}
	out := X.Clone()
	out.Apply(func(_, j int, v float64) float64 { return v - means[j] })

	return out, means, nil
}

// CenterRows subtracts each row mean from its row.
func CenterRows(X *matrix.Matrix[float64]) (*matrix.Matrix[float64], []float64, error) {
	means, err := RowMeans(X)
	if err != nil {
		return nil, nil, linalgErrorf(opCenterRows, err)
	}
	out := X.Clone()
	out.Apply(func(i, _ int, v float64) float64 { return v - means[i] })

	return out, means, nil
}

// NormalizeRowsL1 divides each row by its L1 norm. Rows with norm 0 are left
// unchanged. Returns the normalized copy and the original norms.
func NormalizeRowsL1(X *matrix.Matrix[float64]) (*matrix.Matrix[float64], []float64, error) {
	return normalizeRows(opNormalizeRowsL1, X, func(row []float64) float64 {
		var s float64
		for _, v := range row {
			s += math.Abs(v)
		}
		return s
	})
}

// NormalizeRowsL2 divides each row by its Euclidean norm. Rows with norm 0
// are left unchanged.
func NormalizeRowsL2(X *matrix.Matrix[float64]) (*matrix.Matrix[float64], []float64, error) {
	return normalizeRows(opNormalizeRowsL2, X, func(row []float64) float64 {
		var sq float64
		for _, v := range row {
			sq += v * v
		}
		return math.Sqrt(sq)
	})
}

func normalizeRows(tag string, X *matrix.Matrix[float64], norm func([]float64) float64) (*matrix.Matrix[float64], []float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, linalgErrorf(tag, err)
	}
	norms := make([]float64, X.Rows())
	for i := range norms {
		row, err := X.Row(i)
		if err != nil {
			return nil, nil, linalgErrorf(tag, err)
		}
		norms[i] = norm(row)
	}
	out := X.Clone()
	out.Apply(func(i, _ int, v float64) float64 {
		if norms[i] > 0 {
			return v / norms[i]
		}
		return v
	})

	return out, norms, nil
}

// Covariance returns the sample covariance of the columns,
// (Xcᵀ·Xc)/(Rows-1), and the column means.
// Errors: matrix.ErrDimensionMismatch when X has fewer than two rows.
func Covariance(X *matrix.Matrix[float64]) (*matrix.Matrix[float64], []float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, linalgErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, nil, linalgErrorf(opCovariance, fmt.Errorf("%d observations: %w", X.Rows(), matrix.ErrDimensionMismatch))
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, linalgErrorf(opCovariance, err)
	}
	cov, err := gram(Xc, 1/float64(X.Rows()-1))
	if err != nil {
		return nil, nil, linalgErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// Correlation returns the Pearson correlation of the columns together with
// the column means and sample standard deviations. A column with zero
// variance is zeroed before the product, so its row and column of the result
// are 0.
func Correlation(X *matrix.Matrix[float64]) (*matrix.Matrix[float64], []float64, []float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, nil, linalgErrorf(opCorrelation, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, nil, linalgErrorf(opCorrelation, fmt.Errorf("%d observations: %w", r, matrix.ErrDimensionMismatch))
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, nil, linalgErrorf(opCorrelation, err)
	}

	sumsq := make([]float64, X.Cols())
	Xc.Do(func(_, j int, v float64) bool {
		sumsq[j] += v * v
		return true
	})
	stds := make([]float64, len(sumsq))
	invStd := make([]float64, len(sumsq))
	for j, s := range sumsq {
		stds[j] = math.Sqrt(s / float64(r-1))
		if stds[j] > 0 {
			invStd[j] = 1 / stds[j]
		}
	}
	Xc.Apply(func(_, j int, v float64) float64 { return v * invStd[j] })

	corr, err := gram(Xc, 1/float64(r-1))
	if err != nil {
		return nil, nil, nil, linalgErrorf(opCorrelation, err)
	}

	return corr, means, stds, nil
}

// gram returns alpha·(Xᵀ·X).
func gram(X *matrix.Matrix[float64], alpha float64) (*matrix.Matrix[float64], error) {
	Xt, err := Transpose(X)
	if err != nil {
		return nil, err
	}
	G, err := Mul(Xt, X)
	if err != nil {
		return nil, err
	}

	return Scale(G, alpha)
}

// Clip clamps every element into [lo, hi]. Bounds given in reverse order are
// swapped. Errors: ErrNaNInf for non-finite bounds.
func Clip(X *matrix.Matrix[float64], lo, hi float64) (*matrix.Matrix[float64], error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, linalgErrorf(opClip, err)
	}
	if !finite(lo) || !finite(hi) {
		return nil, linalgErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	out := X.Clone()
	out.Apply(func(_, _ int, v float64) float64 { return min(max(v, lo), hi) })

	return out, nil
}

// ReplaceInfNaN returns a copy with every NaN and ±Inf replaced by val.
// Errors: ErrNaNInf when val itself is not finite.
func ReplaceInfNaN(X *matrix.Matrix[float64], val float64) (*matrix.Matrix[float64], error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, linalgErrorf(opReplaceInfNaN, err)
	}
	if !finite(val) {
		return nil, linalgErrorf(opReplaceInfNaN, ErrNaNInf)
	}
	out := X.Clone()
	out.Apply(func(_, _ int, v float64) float64 {
		if !finite(v) {
			return val
		}
		return v
	})

	return out, nil
}

// AllClose reports whether |a-b| <= atol + rtol·|b| holds for every pair of
// elements. Negative tolerances are taken by absolute value.
// Errors: ErrNaNInf for non-finite tolerances, shape errors from the
// matrix validators.
func AllClose(a, b *matrix.Matrix[float64], rtol, atol float64) (bool, error) {
	if !finite(rtol) || !finite(atol) {
		return false, linalgErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return false, linalgErrorf(opAllClose, err)
	}
	x, y := a.Data(), b.Data()
	for i := range x {
		if math.Abs(x[i]-y[i]) > atol+rtol*math.Abs(y[i]) {
			return false, nil
		}
	}

	return true, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
