// Package cplx defines the Complex scalar used by the cmatrix engine.
//
// Complex is generic over the floating-point width (float32 or float64) and is a
// plain value type: every operation returns a fresh value, except Conjugate which
// flips the sign of the imaginary part in place.
//
// Operations at a glance:
//
//	Add, Sub, Mul      — field arithmetic
//	Div                — (a·conj(b)) / |b|², fails with ErrDivisionByZero for |b|² < 1e-5
//	Conjugate, Adjoint — in-place and value-returning conjugation
//	Norm, Scale        — modulus and real scaling
//	FromPolar, ToPolar — polar conversion (real = r·sin θ, imaginary = r·cos θ)
//	Sqrt               — principal square root
//
// Quick example:
//
//	a := cplx.From(4.0, 5.0)
//	b := cplx.From(2.0, 3.0)
//	q, err := a.Div(b) // (23/13) - (2/13)i
package cplx
