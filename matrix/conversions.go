// SPDX-License-Identifier: MIT

// Package matrix: adapters to gonum's mat package. Factorizations and
// decompositions live there; these bridges keep that boundary cheap in both
// directions.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// Operation tags for wrapped errors.
const (
	opAsGonum   = "AsGonum"
	opToDense   = "ToDense"
	opFromDense = "FromDense"
)

// gonumView adapts a Matrix to gonum's read-only mat.Matrix contract.
type gonumView struct{ m Matrix }

var _ mat.Matrix = gonumView{}

// Dims returns (rows, cols).
func (g gonumView) Dims() (int, int) { return g.m.Rows(), g.m.Cols() }

// At returns the cell value. gonum's contract is panic-based, so the only
// error an in-range read can surface here (a strict operand under a larger
// view) becomes a panic, matching mat's own misuse behavior.
func (g gonumView) At(i, j int) float64 {
	v, err := g.m.At(i, j)
	if err != nil {
		panic(err)
	}

	return v
}

// T returns the transpose in gonum's own lazy form.
func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// AsGonum wraps m as a read-only mat.Matrix without copying; later mutations
// of m are visible through the wrapper.
func AsGonum(m Matrix) (mat.Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opAsGonum, err)
	}

	return gonumView{m: m}, nil
}

// ToDense copies m into a fresh gonum dense matrix. Degenerate shapes (zero
// rows or columns, possible on translate views) fail with
// ErrInvalidDimensions.
func ToDense(m Matrix) (*mat.Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	out := mat.NewDense(rows, cols, nil)
	var (
		v    float64
		i, j int
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, coordErrorf(opToDense, i, j, err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FromDense copies a gonum dense matrix into a Full; options select the
// buffer strategy and padding policy of the result.
func FromDense(d *mat.Dense, opts ...Option) (*Full, error) {
	if d == nil {
		return nil, matrixErrorf(opFromDense, ErrNilMatrix)
	}
	rows, cols := d.Dims()
	out, err := NewFull(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = out.Set(i, j, d.At(i, j)); err != nil {
				return nil, coordErrorf(opFromDense, i, j, err)
			}
		}
	}

	return out, nil
}
