// SPDX-License-Identifier: MIT
// Package: sigmat/matrix
//
// reduce.go - reductions and vector extraction over the Matrix interface.
//
// Purpose:
//   - Sum/RowSums/ColSums and Row/Col are defined generically through At, so
//     every storage kind and view gets them for free.
//   - Storage-aware fast paths keep sparse layouts proportional to occupancy
//     (stored entries only) and let Float-backed dense storage sum its flat
//     buffer via gonum.
//
// Determinism:
//   - Sparse fast paths iterate Go maps; addition order varies between runs,
//     so float totals may differ in the last ulp across runs. The generic
//     path is strictly row-major.

package matrix

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sigmat/buffer"
)

// Operation tags for wrapped errors.
const (
	opSum     = "Sum"
	opRowSums = "RowSums"
	opColSums = "ColSums"
	opRow     = "Row"
	opCol     = "Col"
)

// Sum returns the total of every cell of m.
func Sum(m Matrix) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}
	// Storage-aware fast paths.
	switch t := m.(type) {
	case *Sparse:
		return t.sum(), nil
	case *SparseRow:
		return t.sum(), nil
	case *SparseCol:
		return t.sum(), nil
	case *Full:
		if fb, ok := t.buf.(*buffer.Float); ok {
			return floats.Sum(fb.Raw()), nil
		}
	}
	// Generic fallback via the read interface.
	var (
		total, v float64
		i, j     int
		err      error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, coordErrorf(opSum, i, j, err)
			}
			total += v
		}
	}

	return total, nil
}

// RowSums returns the per-row totals of m as a vector of length Rows.
func RowSums(m Matrix) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	switch t := m.(type) {
	case *Sparse:
		return t.rowSums(), nil
	case *SparseRow:
		return t.rowSums(), nil
	case *SparseCol:
		return t.rowSums(), nil
	}
	out := make([]float64, m.Rows())
	var (
		v    float64
		i, j int
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, coordErrorf(opRowSums, i, j, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns the per-column totals of m as a vector of length Cols.
func ColSums(m Matrix) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	switch t := m.(type) {
	case *Sparse:
		return t.colSums(), nil
	case *SparseRow:
		return t.colSums(), nil
	case *SparseCol:
		return t.colSums(), nil
	}
	out := make([]float64, m.Cols())
	var (
		v    float64
		i, j int
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, coordErrorf(opColSums, i, j, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// Row extracts row i of m as a fresh vector of length Cols. Requests beyond
// the shape follow the zero-padding contract: a padded matrix yields zeros, a
// strict one fails with ErrOutOfRange.
func Row(m Matrix, i int) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if t, ok := m.(*SparseRow); ok {
		return t.row(i) // touches stored entries only
	}
	out := make([]float64, m.Cols())
	var (
		v   float64
		j   int
		err error
	)
	for j = 0; j < m.Cols(); j++ {
		if v, err = m.At(i, j); err != nil {
			return nil, coordErrorf(opRow, i, j, err)
		}
		out[j] = v
	}

	return out, nil
}

// Col extracts column j of m as a fresh vector of length Rows, with Row's
// out-of-range semantics.
func Col(m Matrix, j int) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	if t, ok := m.(*SparseCol); ok {
		return t.col(j) // touches stored entries only
	}
	out := make([]float64, m.Rows())
	var (
		v   float64
		i   int
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, j); err != nil {
			return nil, coordErrorf(opCol, i, j, err)
		}
		out[i] = v
	}

	return out, nil
}
