// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Matrix algebra kernels.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmatrix/cplx"
	"github.com/katalvlaran/cmatrix/matrix"
)

func TestAdd_ComplexScenario(t *testing.T) {
	a := MustMatrix(t, [][]cplx.Complex[float64]{
		{c(2, 1), c(3, 8)},
		{c(6, 5), c(5, 2)},
	})
	b := MustMatrix(t, [][]cplx.Complex[float64]{
		{c(3, 1), c(8, 2)},
		{c(2, 9), c(-3, 8)},
	})
	want := MustMatrix(t, [][]cplx.Complex[float64]{
		{c(5, 2), c(11, 10)},
		{c(8, 14), c(2, 10)},
	})

	sum, err := a.Add(b)
	require.NoError(t, err)
	RequireMatrix(t, want, sum, 0)

	back, err := sum.Sub(b)
	require.NoError(t, err)
	RequireMatrix(t, a, back, tol)
}

func TestAddSub_ShapeMismatch(t *testing.T) {
	a := MustReal(t, [][]float64{{1, 2}, {3, 4}})
	b := MustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMultiply(t *testing.T) {
	a := MustMatrix(t, [][]cplx.Complex[float64]{
		{c(1, 1), c(2, 0)},
		{c(0, 0), c(0, -1)},
	})
	b := MustMatrix(t, [][]cplx.Complex[float64]{
		{c(1, 0), c(0, 1)},
		{c(3, 0), c(1, 1)},
	})
	// row0: (1+i)(1) + 2·3 = 7+i ; (1+i)(i) + 2(1+i) = (-1+i) + (2+2i) = 1+3i
	// row1: 0 + (-i)(3) = -3i ; (-i)(1+i) = 1-i
	want := MustMatrix(t, [][]cplx.Complex[float64]{
		{c(7, 1), c(1, 3)},
		{c(0, -3), c(1, -1)},
	})

	got, err := a.Multiply(b)
	require.NoError(t, err)
	RequireMatrix(t, want, got, tol)

	_, err = a.Multiply(MustReal(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMultiply_RectangularShape(t *testing.T) {
	a := MustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustReal(t, [][]float64{{1}, {0}, {-1}})

	got, err := a.Multiply(b)
	require.NoError(t, err)
	RequireMatrix(t, MustReal(t, [][]float64{{-2}, {-2}}), got, 0)
}

func TestMultiply_Associativity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		m, n, p, q := 1+rng.Intn(4), 1+rng.Intn(4), 1+rng.Intn(4), 1+rng.Intn(4)
		a := RandomMatrix(t, rng, m, n)
		b := RandomMatrix(t, rng, n, p)
		cc := RandomMatrix(t, rng, p, q)

		ab, err := a.Multiply(b)
		require.NoError(t, err)
		left, err := ab.Multiply(cc)
		require.NoError(t, err)

		bc, err := b.Multiply(cc)
		require.NoError(t, err)
		right, err := a.Multiply(bc)
		require.NoError(t, err)

		RequireMatrix(t, left, right, 1e-9)
	}
}

// TestMultiplyVector_RowByColumn checks a 2×3 matrix against a 3-element column.
func TestMultiplyVector_RowByColumn(t *testing.T) {
	m := MustMatrix(t, [][]cplx.Complex[float64]{
		{c(1, 0), c(2, 1), c(0, -1)},
		{c(-1, 0), c(0, 0), c(3, 2)},
	})
	v := col(c(2, 0), c(1, 1), c(0, 1))

	// row0: 2 + (2+i)(1+i) + (-i)(i) = 2 + (1+3i) + 1 = 4+3i
	// row1: -2 + 0 + (3+2i)(i) = -2 + (-2+3i) = -4+3i
	got, err := m.MultiplyVector(v)
	require.NoError(t, err)
	require.Equal(t, 2, got.Size())
	require.Equal(t, matrix.Column, got.Orientation())
	require.True(t, got.ApproxEqual(col(c(4, 3), c(-4, 3)), tol), "got %s", got)

	t.Run("row vector rejected", func(t *testing.T) {
		_, err := m.MultiplyVector(row(c(2, 0), c(1, 1), c(0, 1)))
		require.ErrorIs(t, err, matrix.ErrIncompatibleOrientation)
	})
	t.Run("size mismatch", func(t *testing.T) {
		_, err := m.MultiplyVector(col(c(1, 0), c(1, 0)))
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})
	t.Run("nil vector", func(t *testing.T) {
		_, err := m.MultiplyVector(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
	})
}

// TestKronecker_BlockStructure: every 2×2 block (a,b) equals src[a][b]·[[i,0],[i,0]].
func TestKronecker_BlockStructure(t *testing.T) {
	src := MustReal(t, [][]float64{{2, 1}, {3, 5}})
	other := MustMatrix(t, [][]cplx.Complex[float64]{
		{c(0, 1), c(0, 0)},
		{c(0, 1), c(0, 0)},
	})

	k, err := src.KroneckerProduct(other)
	require.NoError(t, err)
	require.Equal(t, 4, k.Rows())
	require.Equal(t, 4, k.Cols())

	want := MustMatrix(t, [][]cplx.Complex[float64]{
		{c(0, 2), c(0, 0), c(0, 1), c(0, 0)},
		{c(0, 2), c(0, 0), c(0, 1), c(0, 0)},
		{c(0, 3), c(0, 0), c(0, 5), c(0, 0)},
		{c(0, 3), c(0, 0), c(0, 5), c(0, 0)},
	})
	RequireMatrix(t, want, k, 0)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			s := MustAt(t, src, a, b)
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					RequireComplex(t, s.Mul(MustAt(t, other, i, j)), MustAt(t, k, 2*a+i, 2*b+j), 0)
				}
			}
		}
	}
}

func TestKronecker_RectangularShape(t *testing.T) {
	a := MustReal(t, [][]float64{{1, 2, 3}})
	b := MustReal(t, [][]float64{{1}, {10}})

	k, err := a.KroneckerProduct(b)
	require.NoError(t, err)
	RequireMatrix(t, MustReal(t, [][]float64{{1, 2, 3}, {10, 20, 30}}), k, 0)
}

func TestKronecker_ZeroDimension(t *testing.T) {
	a := MustReal(t, [][]float64{{1, 2}, {3, 4}})
	for _, shape := range [][2]int{{0, 2}, {2, 0}, {0, 0}} {
		t.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func(t *testing.T) {
			empty, err := matrix.Zeros[float64](shape[0], shape[1])
			require.NoError(t, err)
			_, err = a.KroneckerProduct(empty)
			require.ErrorIs(t, err, matrix.ErrInvalidDimension)
			_, err = empty.KroneckerProduct(a)
			require.ErrorIs(t, err, matrix.ErrInvalidDimension)
		})
	}
}

func TestTranspose_InPlace(t *testing.T) {
	m := MustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	m.Transpose()
	RequireMatrix(t, MustReal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), m, 0)

	r0, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, matrix.Row, r0.Orientation(), "rebuilt rows keep Row orientation")
}

func TestConjugateAndAdjoint(t *testing.T) {
	m := MustMatrix(t, [][]cplx.Complex[float64]{
		{c(1, 2), c(3, -4)},
		{c(0, 1), c(5, 0)},
	})

	conj := m.Clone()
	conj.Conjugate()
	RequireMatrix(t, MustMatrix(t, [][]cplx.Complex[float64]{
		{c(1, -2), c(3, 4)},
		{c(0, -1), c(5, 0)},
	}), conj, 0)

	adj := m.Clone()
	adj.Adjoint()
	RequireMatrix(t, MustMatrix(t, [][]cplx.Complex[float64]{
		{c(1, -2), c(0, -1)},
		{c(3, 4), c(5, 0)},
	}), adj, 0)
}

func TestAdjoint_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 10; trial++ {
		m := RandomMatrix(t, rng, 1+rng.Intn(5), 1+rng.Intn(5))
		twice := m.Clone()
		twice.Adjoint()
		twice.Adjoint()
		RequireMatrix(t, m, twice, 0)
	}
}

func TestScaleAndIsQuadratic(t *testing.T) {
	m := MustMatrix(t, [][]cplx.Complex[float64]{{c(1, -1), c(2, 0)}})
	m.Scale(3)
	RequireMatrix(t, MustMatrix(t, [][]cplx.Complex[float64]{{c(3, -3), c(6, 0)}}), m, 0)
	assert.False(t, m.IsQuadratic())
	assert.True(t, MustReal(t, [][]float64{{1}}).IsQuadratic())
}
