// SPDX-License-Identifier: MIT

package cplx

import (
	"fmt"
	"math"
)

// ApproxEqual reports whether both parts of c and other differ by at most tol.
// NaN never compares equal; tol is taken as |tol|.
func (c Complex[F]) ApproxEqual(other Complex[F], tol float64) bool {
	tol = math.Abs(tol)

	return math.Abs(float64(c.Real-other.Real)) <= tol &&
		math.Abs(float64(c.Imaginary-other.Imaginary)) <= tol
}

// IsZero reports whether the modulus of c is at most tol.
func (c Complex[F]) IsZero(tol float64) bool {
	return float64(c.Norm()) <= math.Abs(tol)
}

// String renders c as "(re+imi)" with %g formatting, e.g. "(2-3.5i)".
func (c Complex[F]) String() string {
	return fmt.Sprintf("(%g%+gi)", float64(c.Real), float64(c.Imaginary))
}
