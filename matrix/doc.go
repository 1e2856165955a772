// Package matrix offers a generic Vector and Matrix over the complex field.
//
// The matrix package provides:
//
//   - Vector: a row or column vector of cplx.Complex values with element-wise
//     arithmetic, bra-ket style inner product, outer product, L2 norm,
//     conjugate/transpose/adjoint and normalization.
//   - Matrix: a dense grid stored as row vectors with shape-checked addition,
//     multiplication, matrix×vector product, Kronecker product and in-place
//     transpose/conjugate/adjoint/scale.
//   - GramSchmidtDecomposition: classical orthonormalization of a vector set.
//   - QRDecomposition, CalculateEigenvalues, CalculateEigenvectors: QR iteration
//     (optionally Wilkinson-shifted) towards the Schur form.
//
// Discipline: binary operations (Add, Multiply, KroneckerProduct, ...) return new
// values and never mutate their operands; unary shape/sign transforms (Transpose,
// Conjugate, Adjoint, Scale, Normalize) work in place.
//
// Errors are package sentinels matched with errors.Is; see errors.go.
//
// Quick example:
//
//	a, _ := matrix.FromArray(2, 2, []cplx.Complex[float64]{
//		cplx.From(2.0, 0.0), cplx.From(1.0, 0.0),
//		cplx.From(1.0, 0.0), cplx.From(3.0, 0.0),
//	})
//	values, err := a.CalculateEigenvalues() // ≈ 3.618, 1.382
package matrix
