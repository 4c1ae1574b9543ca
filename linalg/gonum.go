// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Dense adapts a *matrix.Matrix[T] to gonum's mat.Matrix interface without
// copying. Reads go straight to the wrapped matrix, so the adapter observes
// later writes. Out-of-range reads panic with mat.ErrIndexOutOfRange, the
// convention gonum expects from every mat.Matrix.
type Dense[T Real] struct {
	m *matrix.Matrix[T]
}

var _ mat.Matrix = Dense[float64]{}

// NewDense wraps m. A nil m behaves as a 0×0 matrix.
func NewDense[T Real](m *matrix.Matrix[T]) Dense[T] { return Dense[T]{m: m} }

// Dims returns the logical shape of the wrapped matrix.
func (d Dense[T]) Dims() (r, c int) { return d.m.Rows(), d.m.Cols() }

// At returns the element at (i, j) as float64.
func (d Dense[T]) At(i, j int) float64 {
	v, err := d.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return float64(v)
}

// T returns the implicit transpose.
func (d Dense[T]) T() mat.Matrix { return mat.Transpose{Matrix: d} }

// ToGonum copies m into a freshly allocated *mat.Dense.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimension for an empty m
// (gonum has no zero-sized Dense constructor).
func ToGonum[T Real](m *matrix.Matrix[T]) (*mat.Dense, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, linalgErrorf(opToGonum, err)
	}
	x := m.Data()
	buf := make([]float64, len(x))
	for i, v := range x {
		buf[i] = float64(v)
	}

	return mat.NewDense(m.Rows(), m.Cols(), buf), nil
}

// FromGonum copies any gonum matrix into a new *matrix.Matrix[T]. Values are
// converted with T(v); for integer T this truncates toward zero.
func FromGonum[T Real](a mat.Matrix) (*matrix.Matrix[T], error) {
	if a == nil {
		return nil, linalgErrorf(opFromGonum, matrix.ErrNilMatrix)
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return matrix.NewEmpty[T](), nil
	}
	out, err := matrix.New[T](r, c)
	if err != nil {
		return nil, linalgErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, T(a.At(i, j))); err != nil {
				return nil, linalgErrorf(opFromGonum, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return out, nil
}

// square validates that m is non-nil, non-empty and square. A shape error
// from matrix.ValidateSquare is reported as ErrNotSquare.
func square[T Real](tag string, m *matrix.Matrix[T]) error {
	err := matrix.ValidateSquare(m)
	if errors.Is(err, matrix.ErrDimensionMismatch) {
		return linalgErrorf(tag, fmt.Errorf("%dx%d: %w: %w", m.Rows(), m.Cols(), ErrNotSquare, err))
	}
	if err != nil {
		return linalgErrorf(tag, err)
	}

	return nil
}

// Det returns the determinant of a square matrix, computed by gonum's LU
// factorisation.
func Det[T Real](m *matrix.Matrix[T]) (float64, error) {
	if err := square(opDet, m); err != nil {
		return 0, err
	}

	return mat.Det(NewDense(m)), nil
}

// Rank returns the numerical rank of m: the number of singular values greater
// than tol times the largest one. A non-positive tol selects
// DefaultRankTolerance. An empty matrix has rank 0.
func Rank[T Real](m *matrix.Matrix[T], tol float64) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, linalgErrorf(opRank, err)
	}
	if m.IsEmpty() {
		return 0, nil
	}
	if tol <= 0 || math.IsNaN(tol) {
		tol = DefaultRankTolerance
	}
	var svd mat.SVD
	if ok := svd.Factorize(NewDense(m), mat.SVDNone); !ok {
		return 0, linalgErrorf(opRank, errors.New("SVD did not converge"))
	}

	return svd.Rank(tol), nil
}

// Inverse returns m⁻¹ as a float64 matrix.
// Errors: ErrNotSquare, ErrSingular when gonum reports the matrix as exactly
// singular or too ill-conditioned (mat.Condition above mat.ConditionTolerance).
func Inverse[T Real](m *matrix.Matrix[T]) (*matrix.Matrix[float64], error) {
	if err := square(opInverse, m); err != nil {
		return nil, err
	}
	var inv mat.Dense
	if err := inv.Inverse(NewDense(m)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, linalgErrorf(opInverse, fmt.Errorf("condition %g: %w", float64(cond), ErrSingular))
		}

		return nil, linalgErrorf(opInverse, err)
	}

	return FromGonum[float64](&inv)
}
