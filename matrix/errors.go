// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf("<Op>", err) so the
// rendered error reads "<Op>: matrix: ..." while errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> orientation -> shape/dimension -> index -> numeric
// (linear dependence, non-convergence).

var (
	// ErrNilMatrix indicates that a nil *Matrix or *Vector operand was used.
	ErrNilMatrix = errors.New("matrix: nil matrix or vector operand")

	// ErrShapeMismatch indicates that two operands of an element-wise operation
	// (vector add/sub, matrix add/sub, inner/outer product, Gram-Schmidt input set)
	// disagree in size or orientation.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDimensionMismatch indicates that a constructor input disagrees with the
	// requested shape, or that a product has incompatible inner dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfBounds indicates that a row, column or vector index is outside the
	// valid range [0, n).
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrIncompatibleOrientation indicates an inner product between two vectors of
	// the same orientation (both rows or both columns).
	ErrIncompatibleOrientation = errors.New("matrix: incompatible vector orientation")

	// ErrInvalidDimension indicates a negative dimension at construction or a
	// zero-sized operand where the operation needs a non-empty one (Kronecker).
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrNotQuadratic signals that a square matrix was required but the input wasn't.
	ErrNotQuadratic = errors.New("matrix: matrix is not quadratic")

	// ErrNonConvergence indicates that the QR iteration exhausted its iteration
	// budget before the iterate became upper-triangular within tolerance.
	ErrNonConvergence = errors.New("matrix: QR iteration did not converge")

	// ErrLinearlyDependent indicates that Gram-Schmidt met a residual with
	// (near-)zero norm, i.e. an input vector lies in the span of its predecessors.
	ErrLinearlyDependent = errors.New("matrix: linearly dependent input vectors")
)
