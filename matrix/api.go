// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Offer value-returning variants of the in-place unary transforms for callers
//     that must keep their operand intact.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/cmatrix/cplx"
)

// ---------- Binary algebra (new values, operands untouched) ----------

// Sum returns a + b. Alias of a.Add(b).
func Sum[F constraints.Float](a, b *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.Add(b)
}

// Diff returns a - b. Alias of a.Sub(b).
func Diff[F constraints.Float](a, b *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return a.Sub(b)
}

// Product returns a×b. Alias of a.Multiply(b).
func Product[F constraints.Float](a, b *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return a.Multiply(b)
}

// Kron returns a⊗b. Alias of a.KroneckerProduct(b).
func Kron[F constraints.Float](a, b *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	return a.KroneckerProduct(b)
}

// ---------- Value-returning unary transforms ----------

// AdjointOf returns the conjugate transpose of m as a new matrix; m is untouched.
func AdjointOf[F constraints.Float](m *Matrix[F]) *Matrix[F] {
	out := m.Clone()
	out.Adjoint()

	return out
}

// TransposeOf returns the transpose of m as a new matrix; m is untouched.
func TransposeOf[F constraints.Float](m *Matrix[F]) *Matrix[F] {
	out := m.Clone()
	out.Transpose()

	return out
}

// Normalized returns a unit-norm copy of v; v is untouched.
func Normalized[F constraints.Float](v *Vector[F]) *Vector[F] {
	out := v.Clone()
	out.Normalize()

	return out
}

// ---------- Decompositions ----------

// Orthonormalize returns the Gram-Schmidt orthonormalization of the columns of m
// as a matrix of the same shape. Alias over GramSchmidtDecomposition(m.Columns()).
func Orthonormalize[F constraints.Float](m *Matrix[F], opts ...Option) (*Matrix[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGS, err)
	}
	if m.cols == 0 {
		return newMatrix[F](m.rows, 0), nil
	}

	basis, err := GramSchmidtDecomposition(m.Columns(), opts...)
	if err != nil {
		return nil, err
	}

	return FromColumns(basis)
}

// EigenValues returns the eigenvalues of m. Alias of m.CalculateEigenvalues(opts...).
func EigenValues[F constraints.Float](m *Matrix[F], opts ...Option) ([]cplx.Complex[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	return m.CalculateEigenvalues(opts...)
}

// EigenPairs returns eigenvalues and unit-norm eigenvectors of m. Alias of m.Eigen(opts...).
func EigenPairs[F constraints.Float](m *Matrix[F], opts ...Option) ([]cplx.Complex[F], []*Vector[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	return m.Eigen(opts...)
}

// ---------- Comparison ----------

// AllClose reports whether a and b share a shape and agree element-wise within |tol|.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func AllClose[F constraints.Float](a, b *Matrix[F], tol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	return a.ApproxEqual(b, tol), nil
}
