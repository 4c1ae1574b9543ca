// SPDX-License-Identifier: MIT

// Package linalg is the numeric collaborator of the matrix package.
//
// It provides two layers:
//
//   - Generic kernels over *matrix.Matrix[T] for any Real element type:
//     Add, Sub, Mul, Scale, Hadamard, Transpose, Trace, Equal and MatVec.
//     Every kernel validates its operands first, allocates a fresh result and
//     walks cells in a fixed i→j order, so results are deterministic and the
//     operands are never mutated.
//   - A gonum bridge: Dense adapts a matrix to gonum's mat.Matrix interface,
//     ToGonum/FromGonum copy across the boundary, and Det, Rank and Inverse
//     delegate the factorisations to gonum.org/v1/gonum/mat.
//
// Errors follow the matrix package conventions: sentinels matched with
// errors.Is and wrapped with the failing operation's name. Shape problems
// surface as matrix.ErrNilMatrix, matrix.ErrInvalidDimension or
// matrix.ErrDimensionMismatch; the factorisations add ErrNotSquare and
// ErrSingular.
package linalg
