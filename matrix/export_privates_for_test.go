// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose UNEXPORTED numeric kernels (width-dependent epsilon, Wilkinson and exceptional
//     shifts, back-substitution) to matrix_test ONLY.
//   - The _test.go suffix keeps this file out of production builds.

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/cmatrix/cplx"
)

// EpsilonFor_TestOnly resolves the effective tolerance for float width F.
func EpsilonFor_TestOnly[F constraints.Float](opts ...Option) float64 {
	return epsilonFor[F](gatherOptions(opts...))
}

// WilkinsonShift_TestOnly returns the shift taken from the trailing 2×2 block ending at hi.
func WilkinsonShift_TestOnly[F constraints.Float](a *Matrix[F], hi int) cplx.Complex[F] {
	return wilkinsonShift(a, hi)
}

// ExceptionalShift_TestOnly returns the shift used when row hi stalls.
func ExceptionalShift_TestOnly[F constraints.Float](a *Matrix[F], hi int) cplx.Complex[F] {
	return exceptionalShift(a, hi)
}

// BackSubstitute_TestOnly solves (T − T[k][k]·I)·y = 0 with y_k = 1.
func BackSubstitute_TestOnly[F constraints.Float](t *Matrix[F], k int, floor float64) *Vector[F] {
	return backSubstitute(t, k, floor)
}
