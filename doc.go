// Package cmatrix is a small linear-algebra engine over the complex field:
// complex scalars, row/column vectors, dense matrices and the two classic
// decompositions built on them.
//
// What is inside?
//
//	• cplx/        — Complex[F] scalar: arithmetic, conjugate, modulus, polar helpers
//	• matrix/      — Vector[F] and Matrix[F]: add, scale, adjoint, products,
//	                 Kronecker product, Gram-Schmidt, QR decomposition and the
//	                 QR-iteration eigen-solver (plain or Wilkinson-shifted)
//	• cmd/cmatrix/ — command-line front end (demo, eigen, kron, gram-schmidt)
//
// Everything is generic over float32 and float64. Fallible operations return
// sentinel errors wrapped with context, so callers test them with errors.Is.
//
// Quick example:
//
//	a, _ := matrix.FromArray(2, 2, []cplx.Complex[float64]{
//		cplx.From(2.0, 0.0), cplx.From(1.0, 0.0),
//		cplx.From(1.0, 0.0), cplx.From(3.0, 0.0),
//	})
//	values, vectors, err := a.Eigen(matrix.WithShift(true))
//
//	go install github.com/katalvlaran/cmatrix/cmd/cmatrix@latest
package cmatrix
