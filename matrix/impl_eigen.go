// SPDX-License-Identifier: MIT
// Package matrix - eigen-decomposition by QR iteration.
//
// Purpose:
//   - Drive a square matrix towards its (complex) Schur form T = adjoint(Z)·A·Z
//     by repeated QR factorization and recombination, A_{k+1} = R_k·Q_k.
//   - Read eigenvalues off diag(T); recover eigenvectors by back-substitution on
//     T and the accumulated Z = Q_1⋯Q_k.
//
// Convergence:
//   - Unshifted (default): stop once every strictly-lower entry has modulus ≤ eps.
//     Real matrices with complex eigenvalue pairs never get there; they surface
//     ErrNonConvergence after MaxIterations steps.
//   - WithShift(true): Wilkinson shift on the trailing active 2×2 block with
//     deflation of converged trailing rows, and an exceptional shift after
//     every 10 steps that fail to deflate.
//
// Complexity:
//   - O(n³) per iteration, at most MaxIterations iterations.

package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/cmatrix/cplx"
)

const (
	logMsgConverged        = "qr iteration converged"
	logMsgNoConvergence    = "qr iteration exhausted its budget"
	logMsgExceptionalShift = "qr iteration applied exceptional shift"
)

const (
	// exceptionalShiftPeriod is the number of steps without deflation after
	// which the shifted iteration swaps in an exceptional shift.
	exceptionalShiftPeriod = 10
	exceptionalShiftFactor = 0.75
)

// CalculateEigenvalues returns the n eigenvalues of the square matrix m in the
// order they appear on the diagonal of the converged iterate. m is not modified.
//
// Errors:
//   - ErrNilMatrix, ErrNotQuadratic, ErrNonConvergence.
//
// Options:
//   - WithMaxIterations, WithEpsilon, WithShift.
//
// Convergence:
//   - The default unshifted iteration tests every strictly-lower entry against an
//     absolute eps (1e-9 for float64) and stops after 100 steps. Matrices whose
//     eigenvalues are close in modulus converge linearly and slowly, so even
//     well-conditioned symmetric inputs may return ErrNonConvergence. Use
//     WithShift(true) for such inputs, or raise WithMaxIterations / WithEpsilon.
func (m *Matrix[F]) CalculateEigenvalues(opts ...Option) ([]cplx.Complex[F], error) {
	t, _, err := m.schur(false, opts...)
	if err != nil {
		return nil, err
	}

	return t.Diagonal(), nil
}

// CalculateEigenvectors returns one unit-norm Column eigenvector per eigenvalue,
// in the order of CalculateEigenvalues for the same options.
//
// Errors:
//   - ErrNilMatrix, ErrNotQuadratic, ErrNonConvergence.
func (m *Matrix[F]) CalculateEigenvectors(opts ...Option) ([]*Vector[F], error) {
	_, vectors, err := m.Eigen(opts...)

	return vectors, err
}

// Eigen returns eigenvalues and matching unit-norm eigenvectors from a single
// QR iteration run.
//
// Implementation:
//   - Stage 1: iterate to the Schur form T while accumulating Z.
//   - Stage 2: for each k solve (T − λ_k I)·y = 0 with y_k = 1 and y_i = 0 for i > k
//     by back-substitution; a vanishing pivot (repeated eigenvalue) is replaced
//     by eps·max|T| so the solve stays finite.
//   - Stage 3: x_k = Z·y, normalized.
//
// Errors:
//   - ErrNilMatrix, ErrNotQuadratic, ErrNonConvergence.
func (m *Matrix[F]) Eigen(opts ...Option) ([]cplx.Complex[F], []*Vector[F], error) {
	t, z, err := m.schur(true, opts...)
	if err != nil {
		return nil, nil, err
	}

	eps := epsilonFor[F](gatherOptions(opts...))
	floor := eps * math.Max(1, maxModulus(t))
	n := t.rows
	values := t.Diagonal()
	vectors := make([]*Vector[F], n)
	for k := 0; k < n; k++ {
		y := backSubstitute(t, k, floor)
		x, err := z.MultiplyVector(y)
		if err != nil {
			return nil, nil, matrixErrorf(opEigen, err)
		}
		x.Normalize()
		vectors[k] = x
	}

	return values, vectors, nil
}

// schur runs the QR iteration on a copy of m. z is nil unless withZ.
func (m *Matrix[F]) schur(withZ bool, opts ...Option) (t, z *Matrix[F], err error) {
	if err = ValidateQuadratic(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	o := gatherOptions(opts...)
	eps := epsilonFor[F](o)
	t = m.Clone()
	if withZ {
		z, _ = Identity[F](m.rows)
	}

	if o.shift {
		err = iterateShifted(t, &z, eps, o.maxIter)
	} else {
		err = iteratePlain(t, &z, eps, o.maxIter)
	}
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	return t, z, nil
}

// iteratePlain performs A ← R·Q in place on a until it is upper-triangular within eps.
func iteratePlain[F constraints.Float](a *Matrix[F], z **Matrix[F], eps float64, maxIter int) error {
	n := a.rows
	for it := 0; ; it++ {
		if maxLowerModulus(a) <= eps {
			log.Debugw(logMsgConverged, "iterations", it, "size", n, "shift", false)

			return nil
		}
		if it == maxIter {
			return nonConvergence(a, maxIter, false)
		}

		q, r := qrDecompose(a, eps)
		next, err := r.Multiply(q)
		if err != nil {
			return err
		}
		a.elements = next.elements
		if err = accumulate(z, q); err != nil {
			return err
		}
	}
}

// iterateShifted performs A ← adjoint(Q)·A·Q in place on a, where Q is the QR
// factor of the active window minus the Wilkinson shift μ. Restricted to the
// window this is exactly A_{k+1} = R·Q + μI. Converged trailing rows are deflated.
// Every exceptionalShiftPeriod steps without a deflation an exceptional shift
// replaces μ, which breaks cycles such as the cyclic permutation matrix where
// the Wilkinson shift leaves the iterate unchanged.
func iterateShifted[F constraints.Float](a *Matrix[F], z **Matrix[F], eps float64, maxIter int) error {
	n := a.rows
	it, stall := 0, 0
	for hi := n - 1; hi > 0; {
		if rowLowerModulus(a, hi) <= eps {
			hi--
			stall = 0

			continue
		}
		if it == maxIter {
			return nonConvergence(a, maxIter, true)
		}

		stall++
		var mu cplx.Complex[F]
		if stall%exceptionalShiftPeriod == 0 {
			mu = exceptionalShift(a, hi)
			log.Debugw(logMsgExceptionalShift, "iteration", it, "row", hi)
		} else {
			mu = wilkinsonShift(a, hi)
		}
		window := leadingBlock(a, hi+1)
		for i := 0; i <= hi; i++ {
			window.elements[i].numbers[i] = window.elements[i].numbers[i].Sub(mu)
		}
		q, _ := qrDecompose(window, eps)
		full := embed(q, n)

		qh := full.Clone()
		qh.Adjoint()
		left, err := qh.Multiply(a)
		if err != nil {
			return err
		}
		next, err := left.Multiply(full)
		if err != nil {
			return err
		}
		a.elements = next.elements
		if err = accumulate(z, full); err != nil {
			return err
		}
		it++
	}
	log.Debugw(logMsgConverged, "iterations", it, "size", n, "shift", true)

	return nil
}

func nonConvergence[F constraints.Float](a *Matrix[F], maxIter int, shift bool) error {
	residual := maxLowerModulus(a)
	log.Warnw(logMsgNoConvergence, "iterations", maxIter, "size", a.rows, "shift", shift, "residual", residual)

	return fmt.Errorf("after %d iterations (max lower modulus %g): %w", maxIter, residual, ErrNonConvergence)
}

// accumulate sets *z ← *z·q when eigenvectors are requested.
func accumulate[F constraints.Float](z **Matrix[F], q *Matrix[F]) error {
	if *z == nil {
		return nil
	}
	next, err := (*z).Multiply(q)
	if err != nil {
		return err
	}
	*z = next

	return nil
}

// wilkinsonShift returns the eigenvalue of a[hi-1:hi+1, hi-1:hi+1] closest to a[hi][hi].
func wilkinsonShift[F constraints.Float](a *Matrix[F], hi int) cplx.Complex[F] {
	p, q := a.elements[hi-1].numbers, a.elements[hi].numbers
	w, x, y, d := p[hi-1], p[hi], q[hi-1], q[hi]

	mean := w.Add(d).Scale(0.5)
	half := w.Sub(d).Scale(0.5)
	root := half.Mul(half).Add(x.Mul(y)).Sqrt()
	plus, minus := mean.Add(root), mean.Sub(root)
	if minus.Sub(d).Norm() < plus.Sub(d).Norm() {
		return minus
	}

	return plus
}

// exceptionalShift returns a[hi][hi] + 0.75·max|a[hi][:hi]|.
func exceptionalShift[F constraints.Float](a *Matrix[F], hi int) cplx.Complex[F] {
	d := a.elements[hi].numbers[hi]

	return d.Add(cplx.From(F(exceptionalShiftFactor*rowLowerModulus(a, hi)), 0))
}

// leadingBlock returns a copy of a[0:k, 0:k].
func leadingBlock[F constraints.Float](a *Matrix[F], k int) *Matrix[F] {
	out := newMatrix[F](k, k)
	for i := 0; i < k; i++ {
		copy(out.elements[i].numbers, a.elements[i].numbers[:k])
	}

	return out
}

// embed returns diag(q, I) of size n×n.
func embed[F constraints.Float](q *Matrix[F], n int) *Matrix[F] {
	out, _ := Identity[F](n)
	for i := 0; i < q.rows; i++ {
		copy(out.elements[i].numbers, q.elements[i].numbers)
	}

	return out
}

// backSubstitute solves (T − T[k][k]·I)·y = 0 for the upper-triangular t with
// y_k = 1 and y_i = 0 for i > k. Pivots smaller than floor are replaced by floor.
func backSubstitute[F constraints.Float](t *Matrix[F], k int, floor float64) *Vector[F] {
	n := t.rows
	lambda := t.elements[k].numbers[k]
	y := &Vector[F]{size: n, orientation: Column, numbers: make([]cplx.Complex[F], n)}
	y.numbers[k] = cplx.One[F]()
	for i := k - 1; i >= 0; i-- {
		row := t.elements[i].numbers
		sum := cplx.Zero[F]()
		for j := i + 1; j <= k; j++ {
			sum = sum.Add(row[j].Mul(y.numbers[j]))
		}
		pivot := row[i].Sub(lambda)
		if float64(pivot.Norm()) < floor {
			pivot = cplx.From(F(floor), 0)
		}
		y.numbers[i] = quotient(sum.Neg(), pivot)
	}

	return y
}

// quotient returns a/b without the absolute near-zero guard of cplx.Div; b ≠ 0.
func quotient[F constraints.Float](a, b cplx.Complex[F]) cplx.Complex[F] {
	denominator := b.Real*b.Real + b.Imaginary*b.Imaginary

	return a.Mul(b.Adjoint()).Scale(1 / denominator)
}
