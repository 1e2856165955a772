// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row vectors) & safe accessors.
//
// Purpose:
//   - Hold a rows×cols grid as one Row-oriented Vector per row.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - Zeros/FromArray/FromRows/Identity/Clone: O(r*c); At/Set: O(1); Column: O(r).

package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/cmatrix/cplx"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxColumn    = "Column"
	ctxZeros     = "Zeros"
	ctxFromArray = "FromArray"
	ctxFromRows  = "FromRows"
	ctxIdentity  = "Identity"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// newMatrix allocates a zero rows×cols matrix without validation.
// Internal: callers guarantee rows, cols ≥ 0.
func newMatrix[F constraints.Float](rows, cols int) *Matrix[F] {
	elements := make([]*Vector[F], rows)
	for i := range elements {
		elements[i] = &Vector[F]{size: cols, orientation: Row, numbers: make([]cplx.Complex[F], cols)}
	}

	return &Matrix[F]{rows: rows, cols: cols, elements: elements}
}

// Zeros creates a rows×cols zero matrix.
// Zero-sized shapes (0×n, n×0) are legal; negative ones are not.
//
// Errors:
//   - ErrInvalidDimension if rows < 0 or cols < 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func Zeros[F constraints.Float](rows, cols int) (*Matrix[F], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxZeros, err)
	}

	return newMatrix[F](rows, cols), nil
}

// FromArray builds a rows×cols matrix from a flat row-major slice:
// element (i, j) is numbers[i*cols + j]. The input is copied.
//
// Errors:
//   - ErrInvalidDimension if rows < 0 or cols < 0.
//   - ErrDimensionMismatch if len(numbers) != rows*cols.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromArray[F constraints.Float](rows, cols int, numbers []cplx.Complex[F]) (*Matrix[F], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxFromArray, err)
	}
	if len(numbers) != rows*cols {
		return nil, matrixErrorf(ctxFromArray, ErrDimensionMismatch)
	}

	m := newMatrix[F](rows, cols)
	for i := 0; i < rows; i++ {
		copy(m.elements[i].numbers, numbers[i*cols:(i+1)*cols])
	}

	return m, nil
}

// FromRows builds a matrix from nested row slices. All rows must share one length.
// An empty outer slice yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch if the rows are ragged.
func FromRows[F constraints.Float](rows [][]cplx.Complex[F]) (*Matrix[F], error) {
	if len(rows) == 0 {
		return newMatrix[F](0, 0), nil
	}

	cols := len(rows[0])
	m := newMatrix[F](len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				ctxFromRows, i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.elements[i].numbers, row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimension if n < 0.
func Identity[F constraints.Float](n int) (*Matrix[F], error) {
	if err := validateShape(n, n); err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}

	m := newMatrix[F](n, n)
	for i := 0; i < n; i++ {
		m.elements[i].numbers[i] = cplx.One[F]()
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[F]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[F]) Cols() int { return m.cols }

// At returns the element at (row, col).
// Errors: ErrOutOfBounds unless 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Complexity: O(1).
func (m *Matrix[F]) At(row, col int) (cplx.Complex[F], error) {
	if err := m.checkCell(row, col); err != nil {
		return cplx.Complex[F]{}, denseErrorf(ctxAt, row, col, err)
	}

	return m.elements[row].numbers[col], nil
}

// Set assigns the element at (row, col).
// Errors: ErrOutOfBounds unless 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Complexity: O(1).
func (m *Matrix[F]) Set(row, col int, value cplx.Complex[F]) error {
	if err := m.checkCell(row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.elements[row].numbers[col] = value

	return nil
}

func (m *Matrix[F]) checkCell(row, col int) error {
	if err := validateIndex(row, m.rows); err != nil {
		return err
	}

	return validateIndex(col, m.cols)
}

// Clone returns a deep copy; mutating the clone never affects m.
func (m *Matrix[F]) Clone() *Matrix[F] {
	out := &Matrix[F]{rows: m.rows, cols: m.cols, elements: make([]*Vector[F], m.rows)}
	for i, row := range m.elements {
		out.elements[i] = row.Clone()
	}

	return out
}

// Row returns a copy of row i as a Row vector.
// Errors: ErrOutOfBounds.
func (m *Matrix[F]) Row(i int) (*Vector[F], error) {
	if err := validateIndex(i, m.rows); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, err)
	}

	return m.elements[i].Clone(), nil
}

// Column returns a copy of column j as a Column vector.
// Errors: ErrOutOfBounds.
func (m *Matrix[F]) Column(j int) (*Vector[F], error) {
	if err := validateIndex(j, m.cols); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxColumn, j, err)
	}

	return m.column(j), nil
}

func (m *Matrix[F]) column(j int) *Vector[F] {
	numbers := make([]cplx.Complex[F], m.rows)
	for i := 0; i < m.rows; i++ {
		numbers[i] = m.elements[i].numbers[j]
	}

	return &Vector[F]{size: m.rows, orientation: Column, numbers: numbers}
}

// Columns returns copies of every column, left to right, as Column vectors.
func (m *Matrix[F]) Columns() []*Vector[F] {
	out := make([]*Vector[F], m.cols)
	for j := range out {
		out[j] = m.column(j)
	}

	return out
}

// FromColumns assembles a matrix whose j-th column is vectors[j].
// Orientation of the inputs is ignored; all sizes must match.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func FromColumns[F constraints.Float](vectors []*Vector[F]) (*Matrix[F], error) {
	if len(vectors) == 0 {
		return newMatrix[F](0, 0), nil
	}
	if err := ValidateVectorNotNil(vectors...); err != nil {
		return nil, err
	}

	n := vectors[0].size
	m := newMatrix[F](n, len(vectors))
	for j, v := range vectors {
		if v.size != n {
			return nil, fmt.Errorf("FromColumns: column %d: %w", j, ErrShapeMismatch)
		}
		for i := 0; i < n; i++ {
			m.elements[i].numbers[j] = v.numbers[i]
		}
	}

	return m, nil
}

// Diagonal returns the main diagonal entries (min(rows, cols) of them).
func (m *Matrix[F]) Diagonal() []cplx.Complex[F] {
	n := min(m.rows, m.cols)
	out := make([]cplx.Complex[F], n)
	for i := 0; i < n; i++ {
		out[i] = m.elements[i].numbers[i]
	}

	return out
}

// String renders one bracketed row per line, e.g. "[(1+0i), (0+2i)]\n".
func (m *Matrix[F]) String() string {
	var sb strings.Builder
	for _, row := range m.elements {
		sb.WriteString(_fmtRowOpen)
		for j, c := range row.numbers {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(c.String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
