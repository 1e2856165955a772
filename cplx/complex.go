// SPDX-License-Identifier: MIT

// Package cplx - Complex value type & field arithmetic.
//
// Purpose:
//   - Provide a two-field complex scalar parameterized over float32/float64.
//   - Keep every operation a pure function of its operands (Conjugate is the only mutator).
//
// Determinism:
//   - No hidden state; results depend only on inputs and the float width F.

package cplx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DivisionEpsilon is the absolute threshold on |b|² below which Div refuses to divide.
// The threshold is absolute, not relative: divisors with tiny modulus are rejected
// even when the dividend is equally tiny.
const DivisionEpsilon = 1e-5

// Complex is a complex number with real and imaginary parts of float type F.
// The zero value is 0+0i and ready to use.
type Complex[F constraints.Float] struct {
	Real      F // real part
	Imaginary F // imaginary part
}

// From returns re + im·i.
func From[F constraints.Float](re, im F) Complex[F] {
	return Complex[F]{Real: re, Imaginary: im}
}

// Zero returns 0+0i.
func Zero[F constraints.Float]() Complex[F] { return Complex[F]{} }

// One returns 1+0i.
func One[F constraints.Float]() Complex[F] { return Complex[F]{Real: 1} }

// Add returns c + other.
// Complexity: O(1).
func (c Complex[F]) Add(other Complex[F]) Complex[F] {
	return Complex[F]{
		Real:      c.Real + other.Real,
		Imaginary: c.Imaginary + other.Imaginary,
	}
}

// Sub returns c - other.
// Complexity: O(1).
func (c Complex[F]) Sub(other Complex[F]) Complex[F] {
	return Complex[F]{
		Real:      c.Real - other.Real,
		Imaginary: c.Imaginary - other.Imaginary,
	}
}

// Mul returns c · other using (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
// Complexity: O(1).
func (c Complex[F]) Mul(other Complex[F]) Complex[F] {
	return Complex[F]{
		Real:      c.Real*other.Real - c.Imaginary*other.Imaginary,
		Imaginary: c.Real*other.Imaginary + c.Imaginary*other.Real,
	}
}

// Div returns c / other computed as (c·conj(other)) / |other|².
// Implementation:
//   - Stage 1: compute the squared modulus of the divisor.
//   - Stage 2: reject |other|² < DivisionEpsilon with ErrDivisionByZero.
//   - Stage 3: multiply by the conjugate and divide both parts by |other|².
//
// Errors:
//   - ErrDivisionByZero (|other|² below the absolute threshold).
//
// Complexity:
//   - Time O(1), Space O(1).
func (c Complex[F]) Div(other Complex[F]) (Complex[F], error) {
	denominator := other.Real*other.Real + other.Imaginary*other.Imaginary
	if math.Abs(float64(denominator)) < DivisionEpsilon {
		return Complex[F]{}, ErrDivisionByZero
	}

	numerator := c.Mul(other.Adjoint())

	return Complex[F]{
		Real:      numerator.Real / denominator,
		Imaginary: numerator.Imaginary / denominator,
	}, nil
}

// Conjugate negates the imaginary part in place.
func (c *Complex[F]) Conjugate() {
	c.Imaginary = -c.Imaginary
}

// Adjoint returns the complex conjugate of c without touching c.
// For a scalar the adjoint and the conjugate coincide.
func (c Complex[F]) Adjoint() Complex[F] {
	return Complex[F]{Real: c.Real, Imaginary: -c.Imaginary}
}

// Norm returns the modulus sqrt(real² + imaginary²) as a scalar.
func (c Complex[F]) Norm() F {
	return F(math.Sqrt(float64(c.Real*c.Real + c.Imaginary*c.Imaginary)))
}

// Scale multiplies both parts by a real factor.
func (c Complex[F]) Scale(factor F) Complex[F] {
	return Complex[F]{Real: c.Real * factor, Imaginary: c.Imaginary * factor}
}

// Neg returns -c.
func (c Complex[F]) Neg() Complex[F] {
	return Complex[F]{Real: -c.Real, Imaginary: -c.Imaginary}
}

// IsNaN reports whether either part is NaN.
func (c Complex[F]) IsNaN() bool {
	return math.IsNaN(float64(c.Real)) || math.IsNaN(float64(c.Imaginary))
}
