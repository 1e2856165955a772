package cplx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmatrix/cplx"
)

func TestFromPolar_SinCosOrder(t *testing.T) {
	t.Parallel()

	// real = r·sin θ, imaginary = r·cos θ
	c := cplx.FromPolar(2.0, math.Pi/6)
	requireComplex(t, cplx.From(1.0, math.Sqrt(3)), c, 1e-12)

	c = cplx.FromPolar(3.0, 0.0)
	requireComplex(t, cplx.From(0.0, 3.0), c, 1e-12)

	c32 := cplx.FromPolar[float32](1, math.Pi/2)
	requireComplex(t, cplx.From[float32](1, 0), c32, 1e-6)
}

func TestToPolar(t *testing.T) {
	t.Parallel()

	norm, angle := cplx.From(3.0, 4.0).ToPolar()
	require.InDelta(t, 5.0, norm, 1e-12)
	require.InDelta(t, math.Atan(4.0/3.0), angle, 1e-12)

	// A zero real part maps to ±π/2 through atan(±Inf).
	norm, angle = cplx.From(0.0, 2.0).ToPolar()
	require.InDelta(t, 2.0, norm, 1e-12)
	require.InDelta(t, math.Pi/2, angle, 1e-12)

	_, angle = cplx.From(0.0, -2.0).ToPolar()
	require.InDelta(t, -math.Pi/2, angle, 1e-12)

	_, angle = cplx.Zero[float64]().ToPolar()
	require.True(t, math.IsNaN(angle))
}

func TestSqrt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want cplx.Complex[float64]
	}{
		{cplx.From(-4.0, 0.0), cplx.From(0.0, 2.0)},
		{cplx.From(3.0, 4.0), cplx.From(2.0, 1.0)},
		{cplx.From(3.0, -4.0), cplx.From(2.0, -1.0)},
		{cplx.From(9.0, 0.0), cplx.From(3.0, 0.0)},
		{cplx.Zero[float64](), cplx.Zero[float64]()},
	}
	for _, tc := range cases {
		got := tc.in.Sqrt()
		requireComplex(t, tc.want, got, 1e-12)
		requireComplex(t, tc.in, got.Mul(got), 1e-12)
	}
}
