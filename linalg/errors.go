// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare is returned by Trace, Det and Inverse for non-square input.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned by Inverse when the matrix has no inverse or its
	// condition number exceeds gonum's tolerance.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrNaNInf is returned when a bound, tolerance or replacement value is
	// NaN or ±Inf.
	ErrNaNInf = errors.New("linalg: NaN or Inf not allowed")
)

// Operation name constants used to tag wrapped errors.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
	opTrace     = "Trace"
	opMatVec    = "MatVec"
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
	opDet       = "Det"
	opRank      = "Rank"
	opInverse   = "Inverse"

	opCenterColumns   = "CenterColumns"
	opCenterRows      = "CenterRows"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
	opClip            = "Clip"
	opReplaceInfNaN   = "ReplaceInfNaN"
	opAllClose        = "AllClose"
)

// linalgErrorf wraps err with an operation tag, keeping it matchable via %w.
// Callers must pass a non-nil err.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("linalg: %s: %w", tag, err)
}
