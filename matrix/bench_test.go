// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cmatrix/cplx"
	"github.com/katalvlaran/cmatrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{8, 32, 64}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkV []cplx.Complex[float64]
)

func benchMatrix(b *testing.B, rng *rand.Rand, n int) *matrix.Matrix[float64] {
	b.Helper()
	flat := make([]cplx.Complex[float64], n*n)
	for i := range flat {
		flat[i] = cplx.From(rng.Float64(), rng.Float64())
	}
	m, err := matrix.FromArray(n, n, flat)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			x, y := benchMatrix(b, rng, n), benchMatrix(b, rng, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, _ = x.Multiply(y)
			}
		})
	}
}

func BenchmarkKroneckerProduct(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(2))
	x, y := benchMatrix(b, rng, 8), benchMatrix(b, rng, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM, _ = x.KroneckerProduct(y)
	}
}

func BenchmarkQRDecomposition(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchMatrix(b, rand.New(rand.NewSource(3)), n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, _, _ = x.QRDecomposition()
			}
		})
	}
}

func BenchmarkEigenvaluesShifted(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes[:2] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchMatrix(b, rand.New(rand.NewSource(4)), n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV, _ = x.CalculateEigenvalues(matrix.WithShift(true), matrix.WithMaxIterations(1000))
			}
		})
	}
}
