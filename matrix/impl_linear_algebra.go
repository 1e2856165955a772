// SPDX-License-Identifier: MIT
// Package matrix provides the shape-aware algebra over Matrix values:
// element-wise addition/subtraction, matrix multiplication, matrix×vector
// product, Kronecker product, and the in-place transpose/conjugate/adjoint/scale.
// All binary kernels perform strict fail-fast validation and return new values.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/cmatrix/cplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Multiply"
	opMatVec    = "MultiplyVector"
	opKronecker = "KroneckerProduct"
	opEigen     = "Eigen"
	opQR        = "QR"
	opGS        = "GramSchmidt"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Matrix is allocated; operands are not mutated.
// Internal helper for Add/Sub to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate the result.
//   - Stage 2: fixed i→j loop over the row vectors.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[F constraints.Float](a, b *Matrix[F], sign F, opTag string) (*Matrix[F], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newMatrix[F](a.rows, a.cols)
	for i := 0; i < a.rows; i++ {
		lhs, rhs, out := a.elements[i].numbers, b.elements[i].numbers, res.elements[i].numbers
		for j := 0; j < a.cols; j++ {
			out[j] = lhs[j].Add(rhs[j].Scale(sign))
		}
	}

	return res, nil
}

// Add returns m + other. Both operands must share one shape.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (m *Matrix[F]) Add(other *Matrix[F]) (*Matrix[F], error) {
	return addSub(m, other, 1, opAdd)
}

// Sub returns m - other. Both operands must share one shape.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (m *Matrix[F]) Sub(other *Matrix[F]) (*Matrix[F], error) {
	return addSub(m, other, -1, opSub)
}

// Multiply returns the matrix product m×other of shape m.Rows()×other.Cols().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.cols == other.rows).
//   - Stage 2: triple loop i→j→k; each cell accumulates from 0+0i and the
//     accumulator is reassigned on every step.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix[F]) Multiply(other *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := newMatrix[F](m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		lhs := m.elements[i].numbers
		out := res.elements[i].numbers
		for j := 0; j < other.cols; j++ {
			acc := cplx.Zero[F]()
			for k := 0; k < m.cols; k++ {
				acc = acc.Add(lhs[k].Mul(other.elements[k].numbers[j]))
			}
			out[j] = acc
		}
	}

	return res, nil
}

// MultiplyVector returns m·v as a new Column vector of length Rows().
// Every result entry is the inner product of a Row-oriented matrix row with v,
// so v must be a Column vector.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrIncompatibleOrientation if v is a Row vector.
//   - ErrDimensionMismatch if v.Size() != Cols().
//
// Complexity: Time O(r*c), Space O(r).
func (m *Matrix[F]) MultiplyVector(v *Vector[F]) (*Vector[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if v.orientation != Column {
		return nil, matrixErrorf(opMatVec, ErrIncompatibleOrientation)
	}
	if v.size != m.cols {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}

	numbers := make([]cplx.Complex[F], m.rows)
	for i, row := range m.elements {
		value, err := row.InnerProduct(v)
		if err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
		numbers[i] = value
	}

	return &Vector[F]{size: m.rows, orientation: Column, numbers: numbers}, nil
}

// KroneckerProduct returns the (m·p)×(n·q) block matrix m⊗other, where m is m×n
// and other is p×q. With 0-based indices:
//
//	result[i][j] = m[i/p][j/q] · other[i%p][j%q]
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimension if any operand dimension is zero.
//
// Complexity: Time O(m*n*p*q), Space O(m*n*p*q).
func (m *Matrix[F]) KroneckerProduct(other *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateNotNil(m, other); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if m.rows == 0 || m.cols == 0 || other.rows == 0 || other.cols == 0 {
		return nil, matrixErrorf(opKronecker, ErrInvalidDimension)
	}

	p, q := other.rows, other.cols
	res := newMatrix[F](m.rows*p, m.cols*q)
	for i := 0; i < res.rows; i++ {
		out := res.elements[i].numbers
		outer := m.elements[i/p].numbers
		inner := other.elements[i%p].numbers
		for j := 0; j < res.cols; j++ {
			out[j] = outer[j/q].Mul(inner[j%q])
		}
	}

	return res, nil
}

// Transpose swaps the shape in place and rebuilds the rows from the former columns.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[F]) Transpose() {
	elements := make([]*Vector[F], m.cols)
	for j := 0; j < m.cols; j++ {
		col := m.column(j)
		col.orientation = Row
		elements[j] = col
	}
	m.rows, m.cols = m.cols, m.rows
	m.elements = elements
}

// Conjugate conjugates every element of every row in place.
func (m *Matrix[F]) Conjugate() {
	for _, row := range m.elements {
		row.Conjugate()
	}
}

// Adjoint replaces m with its conjugate transpose: Conjugate() then Transpose().
func (m *Matrix[F]) Adjoint() {
	m.Conjugate()
	m.Transpose()
}

// Scale multiplies every element by a real factor in place.
func (m *Matrix[F]) Scale(factor F) {
	for _, row := range m.elements {
		row.Scale(factor)
	}
}

// IsQuadratic reports whether Rows() == Cols().
func (m *Matrix[F]) IsQuadratic() bool { return m.rows == m.cols }
