// SPDX-License-Identifier: MIT

// Package matrix: shared bulk-write kernels.
// Every MutableMatrix implementation delegates Fill/Load/CopyFrom/CopyRegion/
// SetRow/SetCol to these package-level kernels, which express the bulk
// operations through the per-cell Set contract. Storage kinds with a cheaper
// path (sparse row/column layouts) override the relevant method locally.
//
// The kernels are intentionally non-transactional: a failed write (e.g. an
// out-of-band cell on a band matrix) stops the loop and leaves earlier writes
// applied.

package matrix

// Operation tags for wrapped errors.
const (
	opFill       = "Fill"
	opLoad       = "Load"
	opCopyFrom   = "CopyFrom"
	opCopyRegion = "CopyRegion"
	opSetRow     = "SetRow"
	opSetCol     = "SetCol"
)

// fillCells stores v in every cell of m.
func fillCells(m MutableMatrix, v float64) error {
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, v); err != nil {
				return matrixErrorf(opFill, err)
			}
		}
	}

	return nil
}

// loadRowMajor copies a row-major slice of length Rows*Cols into m.
func loadRowMajor(m MutableMatrix, values []float64) error {
	rows, cols := m.Rows(), m.Cols()
	if err := validateVecLen(len(values), rows*cols); err != nil {
		return matrixErrorf(opLoad, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err := m.Set(i, j, values[i*cols+j]); err != nil {
				return matrixErrorf(opLoad, err)
			}
		}
	}

	return nil
}

// copyInto copies src into dst cell by cell; shapes must match exactly.
func copyInto(dst MutableMatrix, src Matrix) error {
	if err := validateNotNil(src); err != nil {
		return matrixErrorf(opCopyFrom, err)
	}
	if err := validateSameShape(dst, src); err != nil {
		return matrixErrorf(opCopyFrom, err)
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < dst.Rows(); i++ {
		for j = 0; j < dst.Cols(); j++ {
			if v, err = src.At(i, j); err != nil {
				return coordErrorf(opCopyFrom, i, j, err)
			}
			if err = dst.Set(i, j, v); err != nil {
				return coordErrorf(opCopyFrom, i, j, err)
			}
		}
	}

	return nil
}

// copyRegionInto copies a rows×cols region of src starting at (fromRow,
// fromCol) into dst starting at (toRow, toCol). Reads go through src.At, so a
// zero-padded source supplies zeros beyond its bounds; writes stay strict.
func copyRegionInto(dst MutableMatrix, src Matrix, fromRow, fromCol, toRow, toCol, rows, cols int) error {
	if err := validateNotNil(src); err != nil {
		return matrixErrorf(opCopyRegion, err)
	}
	if rows < 0 || cols < 0 {
		return matrixErrorf(opCopyRegion, ErrInvalidDimensions)
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(fromRow+i, fromCol+j); err != nil {
				return coordErrorf(opCopyRegion, fromRow+i, fromCol+j, err)
			}
			if err = dst.Set(toRow+i, toCol+j, v); err != nil {
				return coordErrorf(opCopyRegion, toRow+i, toCol+j, err)
			}
		}
	}

	return nil
}

// setRowCells replaces row i of m with the given values (length Cols).
func setRowCells(m MutableMatrix, i int, row []float64) error {
	if err := validateVecLen(len(row), m.Cols()); err != nil {
		return matrixErrorf(opSetRow, err)
	}
	var j int
	for j = 0; j < m.Cols(); j++ {
		if err := m.Set(i, j, row[j]); err != nil {
			return coordErrorf(opSetRow, i, j, err)
		}
	}

	return nil
}

// setColCells replaces column j of m with the given values (length Rows).
func setColCells(m MutableMatrix, j int, col []float64) error {
	if err := validateVecLen(len(col), m.Rows()); err != nil {
		return matrixErrorf(opSetCol, err)
	}
	var i int
	for i = 0; i < m.Rows(); i++ {
		if err := m.Set(i, j, col[i]); err != nil {
			return coordErrorf(opSetCol, i, j, err)
		}
	}

	return nil
}
