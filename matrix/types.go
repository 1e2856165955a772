// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the domain-facing types (Orientation, Vector, Matrix).
// Behavior lives in impl_* files; errors and options live in dedicated files.
package matrix

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/cmatrix/cplx"
)

// Orientation tags a Vector as a column (direct-sum element) or a row (linear
// functional). It decides which binary vector operations are legal.
type Orientation uint8

const (
	// Column is the default orientation of constructed vectors.
	Column Orientation = iota
	// Row marks a vector used as a linear functional.
	Row
)

// String returns "column" or "row".
func (o Orientation) String() string {
	if o == Row {
		return "row"
	}

	return "column"
}

// Flip returns the complementary orientation.
func (o Orientation) Flip() Orientation {
	if o == Row {
		return Column
	}

	return Row
}

// Vector is a fixed-length sequence of complex numbers with an orientation.
// Invariant: len(numbers) == size.
type Vector[F constraints.Float] struct {
	size        int               // element count
	orientation Orientation       // Row or Column
	numbers     []cplx.Complex[F] // owned storage, never aliased by constructors
}

// Matrix is a rows×cols grid of complex numbers stored as one Vector per row.
// Invariants:
//   - len(elements) == rows;
//   - every row has size == cols and Row orientation, so a row contracts with a
//     Column vector under InnerProduct.
type Matrix[F constraints.Float] struct {
	rows, cols int          // shape
	elements   []*Vector[F] // owned row vectors
}
