// SPDX-License-Identifier: MIT
// Package matrix - Gram-Schmidt orthonormalization & QR decomposition.
//
// Purpose:
//   - GramSchmidtDecomposition: classical (unmodified) Gram-Schmidt over an ordered
//     vector set, each projection realized as the projector u⊗adjoint(u) applied
//     to the input vector.
//   - QRDecomposition / qrDecompose: A = Q·R for square A, Q with orthonormal
//     columns and R upper-triangular; the kernel behind the QR iteration.
//
// Determinism:
//   - Input order is processed left to right; no pivoting.
//
// Complexity:
//   - GramSchmidtDecomposition: O(k²·n²) (projector matrices are materialized).
//   - qrDecompose: O(n³).

package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/cmatrix/cplx"
)

// reorthogonalizationPasses is the number of projection sweeps qrDecompose runs
// per column ("twice is enough").
const reorthogonalizationPasses = 2

// GramSchmidtDecomposition orthonormalizes vectors in input order.
//
// Implementation:
//   - Stage 1: validate non-nil inputs that share the size of vectors[0].
//   - Stage 2: for each v_k (a Row input is transposed, not conjugated, on a copy)
//     subtract Σ_i P_i·v_k with P_i = u_i ⊗ adjoint(u_i), over the already
//     produced u_1..u_{k-1}.
//   - Stage 3: reject a residual with NormL2 ≤ eps·max(1, |v_k|), else normalize
//     and append.
//
// Returns:
//   - len(vectors) unit-norm, pairwise Hermitian-orthogonal Column vectors.
//     An empty input yields an empty result.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (size differs from the first vector),
//     ErrLinearlyDependent (residual collapsed).
//
// Options:
//   - WithEpsilon: degenerate-residual tolerance (relative to |v_k| when |v_k| > 1).
func GramSchmidtDecomposition[F constraints.Float](vectors []*Vector[F], opts ...Option) ([]*Vector[F], error) {
	if len(vectors) == 0 {
		return []*Vector[F]{}, nil
	}
	if err := ValidateVectorNotNil(vectors...); err != nil {
		return nil, matrixErrorf(opGS, err)
	}
	size := vectors[0].size
	for k, v := range vectors {
		if v.size != size {
			return nil, fmt.Errorf("%s: vector %d has size %d, want %d: %w", opGS, k, v.size, size, ErrShapeMismatch)
		}
	}

	eps := epsilonFor[F](gatherOptions(opts...))
	basis := make([]*Vector[F], 0, len(vectors))
	for k, input := range vectors {
		v := input.Clone()
		if v.orientation == Row {
			v.Transpose()
		}

		residual := v.Clone()
		for _, u := range basis {
			proj, err := project(u, v)
			if err != nil {
				return nil, matrixErrorf(opGS, err)
			}
			if residual, err = residual.Sub(proj); err != nil {
				return nil, matrixErrorf(opGS, err)
			}
		}

		if float64(residual.NormL2()) <= eps*math.Max(1, float64(v.NormL2())) {
			return nil, fmt.Errorf("%s: vector %d: %w", opGS, k, ErrLinearlyDependent)
		}
		residual.Normalize()
		basis = append(basis, residual)
	}

	return basis, nil
}

// project returns (u ⊗ adjoint(u))·v, the projection of v onto the unit vector u.
func project[F constraints.Float](u, v *Vector[F]) (*Vector[F], error) {
	bra := u.Clone()
	bra.Adjoint()
	projector, err := u.OuterProduct(bra)
	if err != nil {
		return nil, err
	}

	return projector.MultiplyVector(v)
}

// QRDecomposition factors the square matrix m as Q·R.
//
// Q's columns are the Gram-Schmidt orthonormalization of m's columns; a column
// that is (numerically) dependent on its predecessors is replaced by the
// standard basis vector with the largest residual, so Q is always unitary.
// R = adjoint(Q)·m with its strict lower triangle set to exact zero.
//
// Errors:
//   - ErrNilMatrix, ErrNotQuadratic.
//
// Complexity: Time O(n³), Space O(n²).
func (m *Matrix[F]) QRDecomposition(opts ...Option) (q, r *Matrix[F], err error) {
	if err = ValidateQuadratic(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	q, r = qrDecompose(m, epsilonFor[F](gatherOptions(opts...)))

	return q, r, nil
}

// qrDecompose is the unchecked QR kernel for a square a.
//
// Implementation:
//   - Stage 1: classical Gram-Schmidt in coefficient form, w ← w − ⟨u|w⟩u, run
//     reorthogonalizationPasses times per column.
//   - Stage 2: degenerate columns are completed from the standard basis.
//   - Stage 3: R = adjoint(Q)·a, strict lower triangle zeroed.
func qrDecompose[F constraints.Float](a *Matrix[F], eps float64) (q, r *Matrix[F]) {
	n := a.rows
	basis := make([]*Vector[F], 0, n)
	for _, col := range a.Columns() {
		w := orthogonalize(col, basis)
		if float64(w.NormL2()) <= eps*math.Max(1, float64(col.NormL2())) {
			w = completeBasis(n, basis)
		}
		w.Normalize()
		basis = append(basis, w)
	}

	q, _ = FromColumns(basis)
	qh := q.Clone()
	qh.Adjoint()
	r, _ = qh.Multiply(a)
	for i := 1; i < n; i++ {
		row := r.elements[i].numbers
		for j := 0; j < i; j++ {
			row[j] = cplx.Zero[F]()
		}
	}

	return q, r
}

// orthogonalize returns a copy of v with its components along basis removed.
func orthogonalize[F constraints.Float](v *Vector[F], basis []*Vector[F]) *Vector[F] {
	w := v.Clone()
	for pass := 0; pass < reorthogonalizationPasses; pass++ {
		for _, u := range basis {
			axpyInPlace(w, hermitianDot(u, w), u)
		}
	}

	return w
}

// completeBasis returns the residual of the standard basis vector e_i that keeps
// the most norm after orthogonalization against basis. len(basis) < n guarantees
// a residual of norm ≥ sqrt((n-len(basis))/n).
func completeBasis[F constraints.Float](n int, basis []*Vector[F]) *Vector[F] {
	var best *Vector[F]
	bestNorm := -1.0
	for i := 0; i < n; i++ {
		e := &Vector[F]{size: n, orientation: Column, numbers: make([]cplx.Complex[F], n)}
		e.numbers[i] = cplx.One[F]()
		w := orthogonalize(e, basis)
		if norm := float64(w.NormL2()); norm > bestNorm {
			best, bestNorm = w, norm
		}
	}

	return best
}
