// SPDX-License-Identifier: MIT
// Package matrix - element-wise comparison kernels.
//
// Purpose:
//   - Approximate equality for Vector and Matrix under an absolute tolerance.
//   - Triangularity probes shared by the QR iteration (convergence & deflation).
//
// Determinism:
//   - Fixed i→j loop order; early exit on the first violation.

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/cmatrix/cplx"
)

// ApproxEqual reports whether v and other share orientation and size and every
// pair of elements differs by at most |tol| in both parts. NaN never compares equal.
func (v *Vector[F]) ApproxEqual(other *Vector[F], tol float64) bool {
	if ValidateSameVectorShape(v, other) != nil {
		return false
	}

	return allClose(v.numbers, other.numbers, tol)
}

// ApproxEqual reports whether m and other share a shape and every pair of
// elements differs by at most |tol| in both parts.
func (m *Matrix[F]) ApproxEqual(other *Matrix[F], tol float64) bool {
	if ValidateSameShape(m, other) != nil {
		return false
	}
	for i := 0; i < m.rows; i++ {
		if !allClose(m.elements[i].numbers, other.elements[i].numbers, tol) {
			return false
		}
	}

	return true
}

// IsUpperTriangular reports whether every strictly-lower entry has modulus ≤ |tol|.
// Non-square matrices are judged on their leading min(rows, cols) columns.
func (m *Matrix[F]) IsUpperTriangular(tol float64) bool {
	return maxLowerModulus(m) <= math.Abs(tol)
}

func allClose[F constraints.Float](a, b []cplx.Complex[F], tol float64) bool {
	for i := range a {
		if !a[i].ApproxEqual(b[i], tol) {
			return false
		}
	}

	return true
}

// maxLowerModulus returns max |m[i][j]| over i > j (0 for empty or 1×1 inputs).
func maxLowerModulus[F constraints.Float](m *Matrix[F]) float64 {
	var worst float64
	for i := 1; i < m.rows; i++ {
		if w := rowLowerModulus(m, i); w > worst || math.IsNaN(w) {
			worst = w
		}
	}

	return worst
}

// rowLowerModulus returns max |m[i][j]| over j < min(i, cols).
func rowLowerModulus[F constraints.Float](m *Matrix[F], i int) float64 {
	var worst float64
	row := m.elements[i].numbers
	for j := 0; j < i && j < m.cols; j++ {
		if n := float64(row[j].Norm()); n > worst || math.IsNaN(n) {
			worst = n
		}
	}

	return worst
}

// maxModulus returns the largest element modulus of m.
func maxModulus[F constraints.Float](m *Matrix[F]) float64 {
	var worst float64
	for _, row := range m.elements {
		for _, c := range row.numbers {
			if n := float64(c.Norm()); n > worst {
				worst = n
			}
		}
	}

	return worst
}
