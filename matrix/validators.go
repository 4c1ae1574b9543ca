// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape checks shared by the façade and
//     by collaborators (linalg, matrixio).
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     match them with errors.Is.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil -> Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every matrix is non-nil.
// Returns ErrNilMatrix otherwise.
func ValidateNotNil[T any](ms ...*Matrix[T]) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateNonEmpty ensures m is non-nil and holds at least one element.
func ValidateNonEmpty[T any](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.IsEmpty() {
		return validatorErrorf("ValidateNonEmpty", ErrInvalidDimension)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
func ValidateSameShape[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
func ValidateMulCompatible[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil, non-empty and square.
func ValidateSquare[T any](m *Matrix[T]) error {
	if err := ValidateNonEmpty(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches n.
func ValidateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
