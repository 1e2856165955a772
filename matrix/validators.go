// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/orientation/index checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can add
//    their operation tag on top (errors.Is still matches).
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Orientation → Shape).

package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every matrix reference is non-nil.
// Returns ErrNilMatrix on the first nil. Complexity: O(k).
func ValidateNotNil[F constraints.Float](ms ...*Matrix[F]) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateVectorNotNil ensures every vector reference is non-nil.
// Returns ErrNilMatrix on the first nil. Complexity: O(k).
func ValidateVectorNotNil[F constraints.Float](vs ...*Vector[F]) error {
	for _, v := range vs {
		if v == nil {
			return validatorErrorf("ValidateVectorNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(1).
func ValidateSameShape[F constraints.Float](a, b *Matrix[F]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for the product a×b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible[F constraints.Float](a, b *Matrix[F]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateQuadratic ensures m is non-nil and square.
// Errors: ErrNilMatrix, ErrNotQuadratic. Complexity: O(1).
func ValidateQuadratic[F constraints.Float](m *Matrix[F]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.rows != m.cols {
		return validatorErrorf("ValidateQuadratic", ErrNotQuadratic)
	}

	return nil
}

// ValidateSameVectorShape ensures a and b share orientation and size, the
// precondition of vector addition and subtraction.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(1).
func ValidateSameVectorShape[F constraints.Float](a, b *Vector[F]) error {
	if err := ValidateVectorNotNil(a, b); err != nil {
		return err
	}
	if a.orientation != b.orientation {
		return validatorErrorf("ValidateSameVectorShape: Orientation", ErrShapeMismatch)
	}
	if a.size != b.size {
		return validatorErrorf("ValidateSameVectorShape: Size", ErrShapeMismatch)
	}

	return nil
}

// ValidateContractible ensures a and b have complementary orientations and equal
// size, the precondition of the inner product.
// Errors: ErrNilMatrix, ErrIncompatibleOrientation, ErrShapeMismatch.
func ValidateContractible[F constraints.Float](a, b *Vector[F]) error {
	if err := ValidateVectorNotNil(a, b); err != nil {
		return err
	}
	if a.orientation == b.orientation {
		return validatorErrorf("ValidateContractible", ErrIncompatibleOrientation)
	}
	if a.size != b.size {
		return validatorErrorf("ValidateContractible: Size", ErrShapeMismatch)
	}

	return nil
}

// validateIndex checks 0 ≤ i < n. The upper bound is exclusive: i == n is rejected.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfBounds
	}

	return nil
}

// validateShape rejects negative dimensions.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("validateShape", ErrInvalidDimension)
	}

	return nil
}
