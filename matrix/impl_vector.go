// SPDX-License-Identifier: MIT

// Package matrix - Vector construction, accessors & algebra.
//
// Purpose:
//   - Own a fixed-length sequence of complex numbers tagged Row or Column.
//   - Binary operations (Add, Sub, InnerProduct, OuterProduct) return new values.
//   - Unary transforms (Scale, Normalize, Conjugate, Transpose, Adjoint) work in place
//     on the owned storage.
//
// Complexity quicksheet:
//   - constructors/Clone: O(n); At/Set: O(1); arithmetic & norms: O(n); OuterProduct: O(n²).

package matrix

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/cmatrix/cplx"
)

// ---------- operation tags ----------

const (
	opVecAdd      = "Vector.Add"
	opVecSub      = "Vector.Sub"
	opVecInner    = "Vector.InnerProduct"
	opVecOuter    = "Vector.OuterProduct"
	opVecAt       = "Vector.At"
	opVecSet      = "Vector.Set"
	opZeroVector  = "ZeroVector"
	_fmtVecSep    = ", "
	_fmtVecOpen   = "["
	_fmtVecClose  = "]"
	_fmtVecLabels = "%s%s"
)

// NewVector returns a vector holding a copy of numbers with the given orientation.
// Complexity: O(n).
func NewVector[F constraints.Float](numbers []cplx.Complex[F], orientation Orientation) *Vector[F] {
	owned := make([]cplx.Complex[F], len(numbers))
	copy(owned, numbers)

	return &Vector[F]{size: len(owned), orientation: orientation, numbers: owned}
}

// VectorFromSlice returns a Column vector holding a copy of numbers.
func VectorFromSlice[F constraints.Float](numbers []cplx.Complex[F]) *Vector[F] {
	return NewVector(numbers, Column)
}

// ZeroVector returns a Column vector of n zeros.
// Errors: ErrInvalidDimension if n < 0.
func ZeroVector[F constraints.Float](n int) (*Vector[F], error) {
	if n < 0 {
		return nil, matrixErrorf(opZeroVector, ErrInvalidDimension)
	}

	return &Vector[F]{size: n, orientation: Column, numbers: make([]cplx.Complex[F], n)}, nil
}

// Size returns the element count.
func (v *Vector[F]) Size() int { return v.size }

// Orientation returns Row or Column.
func (v *Vector[F]) Orientation() Orientation { return v.orientation }

// At returns the i-th element.
// Errors: ErrOutOfBounds unless 0 ≤ i < Size().
func (v *Vector[F]) At(i int) (cplx.Complex[F], error) {
	if err := validateIndex(i, v.size); err != nil {
		return cplx.Complex[F]{}, fmt.Errorf("%s(%d): %w", opVecAt, i, err)
	}

	return v.numbers[i], nil
}

// Set assigns the i-th element.
// Errors: ErrOutOfBounds unless 0 ≤ i < Size().
func (v *Vector[F]) Set(i int, value cplx.Complex[F]) error {
	if err := validateIndex(i, v.size); err != nil {
		return fmt.Errorf("%s(%d): %w", opVecSet, i, err)
	}
	v.numbers[i] = value

	return nil
}

// Values returns a copy of the elements in index order.
func (v *Vector[F]) Values() []cplx.Complex[F] {
	out := make([]cplx.Complex[F], v.size)
	copy(out, v.numbers)

	return out
}

// Clone returns an independent deep copy.
func (v *Vector[F]) Clone() *Vector[F] { return NewVector(v.numbers, v.orientation) }

// All yields (index, value) pairs in index order over a read-only view.
// The sequence is lazy, finite and restartable: each range starts from index 0.
// Mutating the vector during a range is visible to the remaining steps.
func (v *Vector[F]) All() iter.Seq2[int, cplx.Complex[F]] {
	return func(yield func(int, cplx.Complex[F]) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.numbers[i]) {
				return
			}
		}
	}
}

// Add returns v + other element-wise.
// Errors: ErrNilMatrix, ErrShapeMismatch (orientation or size differ).
// Complexity: O(n).
func (v *Vector[F]) Add(other *Vector[F]) (*Vector[F], error) {
	if err := ValidateSameVectorShape(v, other); err != nil {
		return nil, matrixErrorf(opVecAdd, err)
	}

	out := &Vector[F]{size: v.size, orientation: v.orientation, numbers: make([]cplx.Complex[F], v.size)}
	for i := 0; i < v.size; i++ {
		out.numbers[i] = v.numbers[i].Add(other.numbers[i])
	}

	return out, nil
}

// Sub returns v - other, computed as v + (-1)·other on a copy of other.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (v *Vector[F]) Sub(other *Vector[F]) (*Vector[F], error) {
	if err := ValidateVectorNotNil(v, other); err != nil {
		return nil, matrixErrorf(opVecSub, err)
	}

	negated := other.Clone()
	negated.Scale(-1)
	out, err := v.Add(negated)
	if err != nil {
		return nil, matrixErrorf(opVecSub, err)
	}

	return out, nil
}

// Scale multiplies every element's real and imaginary parts by factor, in place.
func (v *Vector[F]) Scale(factor F) {
	for i := range v.numbers {
		v.numbers[i] = v.numbers[i].Scale(factor)
	}
}

// InnerProduct returns Σ v[i]·other[i].
//
// The contraction is bra-ket style: it is legal only between a Row and a Column
// vector. No operand is conjugated here; to obtain the Hermitian product ⟨u|w⟩
// take the Adjoint of u first (see hermitianDot).
//
// Errors: ErrNilMatrix, ErrIncompatibleOrientation, ErrShapeMismatch.
// Complexity: O(n).
func (v *Vector[F]) InnerProduct(other *Vector[F]) (cplx.Complex[F], error) {
	if err := ValidateContractible(v, other); err != nil {
		return cplx.Complex[F]{}, matrixErrorf(opVecInner, err)
	}

	return dot(v.numbers, other.numbers), nil
}

// OuterProduct returns the square matrix M[i][j] = v[i]·other[j].
// Orientation is not checked; sizes must match.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(n²).
func (v *Vector[F]) OuterProduct(other *Vector[F]) (*Matrix[F], error) {
	if err := ValidateVectorNotNil(v, other); err != nil {
		return nil, matrixErrorf(opVecOuter, err)
	}
	if v.size != other.size {
		return nil, matrixErrorf(opVecOuter, ErrShapeMismatch)
	}

	out := newMatrix[F](v.size, v.size)
	for i := 0; i < v.size; i++ {
		row := out.elements[i].numbers
		for j := 0; j < other.size; j++ {
			row[j] = v.numbers[i].Mul(other.numbers[j])
		}
	}

	return out, nil
}

// NormL2 returns sqrt(Σ |v[i]|²).
func (v *Vector[F]) NormL2() F {
	var sum float64
	for _, c := range v.numbers {
		sum += float64(c.Real*c.Real + c.Imaginary*c.Imaginary)
	}

	return F(math.Sqrt(sum))
}

// Normalize scales v in place to unit L2 norm.
// The zero vector turns into NaN entries; callers must rule it out beforehand.
func (v *Vector[F]) Normalize() {
	v.Scale(1 / v.NormL2())
}

// Conjugate conjugates every element in place.
func (v *Vector[F]) Conjugate() {
	for i := range v.numbers {
		v.numbers[i].Conjugate()
	}
}

// Transpose flips the orientation in place; elements are untouched.
func (v *Vector[F]) Transpose() {
	v.orientation = v.orientation.Flip()
}

// Adjoint transposes and then conjugates v in place.
func (v *Vector[F]) Adjoint() {
	v.Transpose()
	v.Conjugate()
}

// String renders v as "row[(1+2i), (3-1i)]" or "column[...]".
func (v *Vector[F]) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(_fmtVecLabels, v.orientation, _fmtVecOpen))
	for i, c := range v.numbers {
		if i > 0 {
			b.WriteString(_fmtVecSep)
		}
		b.WriteString(c.String())
	}
	b.WriteString(_fmtVecClose)

	return b.String()
}

// dot returns Σ a[i]·b[i] over equal-length slices (no conjugation).
func dot[F constraints.Float](a, b []cplx.Complex[F]) cplx.Complex[F] {
	acc := cplx.Zero[F]()
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}

	return acc
}

// hermitianDot returns ⟨u|w⟩ = Σ conj(u[i])·w[i] over equal-length vectors.
func hermitianDot[F constraints.Float](u, w *Vector[F]) cplx.Complex[F] {
	acc := cplx.Zero[F]()
	for i := range u.numbers {
		acc = acc.Add(u.numbers[i].Adjoint().Mul(w.numbers[i]))
	}

	return acc
}

// axpyInPlace computes w ← w − coef·u on equal-length vectors.
func axpyInPlace[F constraints.Float](w *Vector[F], coef cplx.Complex[F], u *Vector[F]) {
	for i := range w.numbers {
		w.numbers[i] = w.numbers[i].Sub(coef.Mul(u.numbers[i]))
	}
}
