// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// fromFlat builds a rows×cols result from a row-major buffer. A zero-sized
// shape yields an empty matrix instead of ErrInvalidDimension, so kernels
// applied to empty operands return an empty result.
func fromFlat[T Real](rows, cols int, data []T) (*matrix.Matrix[T], error) {
	if rows == 0 || cols == 0 {
		return matrix.NewEmpty[T](), nil
	}

	return matrix.NewFromSlice(rows, cols, data)
}

// Add returns a + b. Operands must share a shape.
func Add[T Real](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub returns a - b. Operands must share a shape.
func Sub[T Real](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return addSub(a, b, true, opSub)
}

// addSub shares validation and the flat walk between Add and Sub.
func addSub[T Real](a, b *matrix.Matrix[T], negate bool, tag string) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return nil, linalgErrorf(tag, err)
	}
	x, y := a.Data(), b.Data()
	for i := range x {
		if negate {
			x[i] -= y[i]
		} else {
			x[i] += y[i]
		}
	}
	out, err := fromFlat(a.Rows(), a.Cols(), x)
	if err != nil {
		return nil, linalgErrorf(tag, err)
	}

	return out, nil
}

// Hadamard returns the element-wise product of a and b.
func Hadamard[T Real](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return nil, linalgErrorf(opHadamard, err)
	}
	x, y := a.Data(), b.Data()
	for i := range x {
		x[i] *= y[i]
	}
	out, err := fromFlat(a.Rows(), a.Cols(), x)
	if err != nil {
		return nil, linalgErrorf(opHadamard, err)
	}

	return out, nil
}

// Scale returns alpha*m.
func Scale[T Real](m *matrix.Matrix[T], alpha T) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, linalgErrorf(opScale, err)
	}
	x := m.Data()
	for i := range x {
		x[i] *= alpha
	}
	out, err := fromFlat(m.Rows(), m.Cols(), x)
	if err != nil {
		return nil, linalgErrorf(opScale, err)
	}

	return out, nil
}

// Mul returns the matrix product a×b. Requires a.Cols() == b.Rows().
//
// Loop order is i→k→j over row-major snapshots; zero entries of a are
// skipped, which keeps sparse-ish inputs cheap without changing the result.
func Mul[T Real](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, linalgErrorf(opMul, err)
	}
	r, n, c := a.Rows(), a.Cols(), b.Cols()
	x, y := a.Data(), b.Data()
	res := make([]T, r*c)
	for i := 0; i < r; i++ {
		ri := res[i*c : (i+1)*c]
		for k := 0; k < n; k++ {
			av := x[i*n+k]
			if av == 0 {
				continue
			}
			yk := y[k*c : (k+1)*c]
			for j := range ri {
				ri[j] += av * yk[j]
			}
		}
	}
	out, err := fromFlat(r, c, res)
	if err != nil {
		return nil, linalgErrorf(opMul, err)
	}

	return out, nil
}

// Transpose returns mᵀ. The result keeps no capacity beyond its shape.
func Transpose[T Real](m *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	x := m.Data()
	res := make([]T, len(x))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			res[j*r+i] = x[i*c+j]
		}
	}
	out, err := fromFlat(c, r, res)
	if err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}

	return out, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
// The diagonal is read through the matrix's diagonal iterator.
func Trace[T Real](m *matrix.Matrix[T]) (T, error) {
	var sum T
	if err := square(opTrace, m); err != nil {
		return sum, err
	}
	first, err := m.DiagonalBegin(0)
	if err != nil {
		return sum, linalgErrorf(opTrace, err)
	}
	last, err := m.DiagonalEnd(0)
	if err != nil {
		return sum, linalgErrorf(opTrace, err)
	}
	seq, err := matrix.Values[T](first, last)
	if err != nil {
		return sum, linalgErrorf(opTrace, err)
	}
	for v := range seq {
		sum += v
	}

	return sum, nil
}

// MatVec returns m·x. Requires len(x) == m.Cols().
func MatVec[T Real](m *matrix.Matrix[T], x []T) ([]T, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	if err := matrix.ValidateVecLen(x, m.Cols()); err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	y := make([]T, m.Rows())
	for i := range y {
		row, err := m.Row(i)
		if err != nil {
			return nil, linalgErrorf(opMatVec, fmt.Errorf("Row(%d): %w", i, err))
		}
		var acc T
		for j, v := range row {
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Equal reports whether a and b share a shape and every pair of cells differs
// by at most tol. A nil matrix equals an empty one.
func Equal[T Real](a, b *matrix.Matrix[T], tol float64) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	x, y := a.Data(), b.Data()
	for i := range x {
		if math.Abs(float64(x[i])-float64(y[i])) > tol {
			return false
		}
	}

	return true
}
