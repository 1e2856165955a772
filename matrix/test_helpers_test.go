// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmatrix/cplx"
	"github.com/katalvlaran/cmatrix/matrix"
)

// tol is the default absolute tolerance for float64 comparisons.
const tol = 1e-6

// c is shorthand for cplx.From over float64.
func c(re, im float64) cplx.Complex[float64] { return cplx.From(re, im) }

// r is shorthand for a real float64 complex number.
func r(re float64) cplx.Complex[float64] { return cplx.From(re, 0) }

// MustMatrix builds a matrix from nested rows or fails the test.
func MustMatrix(t *testing.T, rows [][]cplx.Complex[float64]) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustReal builds a matrix from real nested rows or fails the test.
func MustReal(t *testing.T, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	lifted := make([][]cplx.Complex[float64], len(rows))
	for i, row := range rows {
		lifted[i] = make([]cplx.Complex[float64], len(row))
		for j, v := range row {
			lifted[i][j] = r(v)
		}
	}

	return MustMatrix(t, lifted)
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix[float64], i, j int) cplx.Complex[float64] {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// col builds a Column vector.
func col(values ...cplx.Complex[float64]) *matrix.Vector[float64] {
	return matrix.NewVector(values, matrix.Column)
}

// row builds a Row vector.
func row(values ...cplx.Complex[float64]) *matrix.Vector[float64] {
	return matrix.NewVector(values, matrix.Row)
}

// RequireComplex asserts |want-got| ≤ tol in both parts.
func RequireComplex(t *testing.T, want, got cplx.Complex[float64], tol float64) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got, tol), "want %s, got %s", want, got)
}

// RequireMatrix asserts shape equality and element-wise closeness.
func RequireMatrix(t *testing.T, want, got *matrix.Matrix[float64], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.Truef(t, want.ApproxEqual(got, tol), "want\n%s\ngot\n%s", want, got)
}

// RandomMatrix fills an r×c matrix with entries from [-1, 1) + i[-1, 1).
func RandomMatrix(t *testing.T, rng *rand.Rand, rows, cols int) *matrix.Matrix[float64] {
	t.Helper()
	flat := make([]cplx.Complex[float64], rows*cols)
	for i := range flat {
		flat[i] = c(2*rng.Float64()-1, 2*rng.Float64()-1)
	}
	m, err := matrix.FromArray(rows, cols, flat)
	require.NoError(t, err)

	return m
}

// RequireEigenPair asserts A·x ≈ λ·x and |x| ≈ 1.
func RequireEigenPair(t *testing.T, a *matrix.Matrix[float64], lambda cplx.Complex[float64], x *matrix.Vector[float64], tol float64) {
	t.Helper()
	require.InDelta(t, 1.0, x.NormL2(), tol, "eigenvector must have unit norm")
	ax, err := a.MultiplyVector(x)
	require.NoError(t, err)
	lx := make([]cplx.Complex[float64], x.Size())
	for i, v := range x.All() {
		lx[i] = lambda.Mul(v)
	}
	require.Truef(t, ax.ApproxEqual(col(lx...), tol), "A·x = %s, λ·x = %s", ax, col(lx...))
}
