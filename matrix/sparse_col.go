// SPDX-License-Identifier: MIT

package matrix

import (
	"maps"

	"github.com/katalvlaran/sigmat/buffer"
)

// Operation tags for wrapped errors.
const (
	opSparseColNew    = "NewSparseCol"
	opSparseColAt     = "SparseCol.At"
	opSparseColSet    = "SparseCol.Set"
	opSparseColSetCol = "SparseCol.SetCol"
	opSparseColBuffer = "SparseCol.Buffer"
	opSparseColCol    = "SparseCol.Col"
)

// SparseCol stores non-zero cells grouped by column: an outer map from column
// index to an inner row→value map. Column extraction and replacement touch
// only stored entries; emptied inner maps are pruned so occupancy mirrors
// content.
type SparseCol struct {
	rows, cols int
	padded     bool
	data       map[int]map[int]float64
}

// Compile-time interface checks.
var (
	_ Matrix        = (*SparseCol)(nil)
	_ MutableMatrix = (*SparseCol)(nil)
)

// NewSparseCol constructs a rows×cols column-grouped sparse matrix. The
// WithBuffer option does not apply and is rejected with ErrUnsupported.
func NewSparseCol(rows, cols int, opts ...Option) (*SparseCol, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opSparseColNew, err)
	}
	o := gatherOptions(opts...)
	if o.buf != nil {
		return nil, matrixErrorf(opSparseColNew, ErrUnsupported)
	}

	return &SparseCol{
		rows:   rows,
		cols:   cols,
		padded: o.zeroPadded,
		data:   make(map[int]map[int]float64),
	}, nil
}

// Rows returns the number of rows.
func (s *SparseCol) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *SparseCol) Cols() int { return s.cols }

// ZeroPadded reports whether out-of-range reads yield zero.
func (s *SparseCol) ZeroPadded() bool { return s.padded }

// Occupancy returns the number of explicitly stored (non-zero) cells.
func (s *SparseCol) Occupancy() int {
	var total int
	for _, c := range s.data {
		total += len(c)
	}

	return total
}

// At returns the element at (i, j); absent cells read as 0.
func (s *SparseCol) At(i, j int) (float64, error) {
	pad, err := readGuard(s.rows, s.cols, i, j, s.padded)
	if err != nil {
		return 0, coordErrorf(opSparseColAt, i, j, err)
	}
	if pad {
		return 0, nil
	}

	return s.data[j][i], nil
}

// Set stores v at (i, j); storing 0 removes the entry and prunes the column
// map when it empties.
func (s *SparseCol) Set(i, j int, v float64) error {
	if err := writeGuard(s.rows, s.cols, i, j); err != nil {
		return coordErrorf(opSparseColSet, i, j, err)
	}
	if v == 0 {
		if c, ok := s.data[j]; ok {
			delete(c, i)
			if len(c) == 0 {
				delete(s.data, j)
			}
		}

		return nil
	}
	c, ok := s.data[j]
	if !ok {
		c = make(map[int]float64)
		s.data[j] = c
	}
	c[i] = v

	return nil
}

// Fill stores v in every cell; Fill(0) empties the maps.
func (s *SparseCol) Fill(v float64) error { return fillCells(s, v) }

// Load copies a row-major slice; zeros stay unstored.
func (s *SparseCol) Load(values []float64) error { return loadRowMajor(s, values) }

// CopyFrom copies src cell by cell; shapes must match exactly.
func (s *SparseCol) CopyFrom(src Matrix) error { return copyInto(s, src) }

// CopyRegion copies a rows×cols region of src into this matrix.
func (s *SparseCol) CopyRegion(src Matrix, fromRow, fromCol, toRow, toCol, rows, cols int) error {
	return copyRegionInto(s, src, fromRow, fromCol, toRow, toCol, rows, cols)
}

// SetRow replaces row i cell by cell (no row fast path in a column-grouped
// layout).
func (s *SparseCol) SetRow(i int, row []float64) error { return setRowCells(s, i, row) }

// SetCol replaces column j in one shot: the old column map is dropped and
// only the non-zero values of the replacement are stored.
func (s *SparseCol) SetCol(j int, col []float64) error {
	if j < 0 || j >= s.cols {
		return coordErrorf(opSparseColSetCol, 0, j, ErrOutOfRange)
	}
	if err := validateVecLen(len(col), s.rows); err != nil {
		return matrixErrorf(opSparseColSetCol, err)
	}
	delete(s.data, j)
	var i int
	var c map[int]float64
	for i = 0; i < s.rows; i++ {
		if col[i] == 0 {
			continue
		}
		if c == nil {
			c = make(map[int]float64)
			s.data[j] = c
		}
		c[i] = col[i]
	}

	return nil
}

// Buffer fails with ErrUnsupported: map-backed storage has no linear buffer.
func (s *SparseCol) Buffer() (buffer.Buffer, error) {
	return nil, matrixErrorf(opSparseColBuffer, ErrUnsupported)
}

// Clone returns an independent deep copy; inner column maps are copied, not
// shared. Map-backed cloning cannot fail.
func (s *SparseCol) Clone() *SparseCol {
	data := make(map[int]map[int]float64, len(s.data))
	for j, c := range s.data {
		data[j] = maps.Clone(c)
	}

	return &SparseCol{rows: s.rows, cols: s.cols, padded: s.padded, data: data}
}

// col extracts column j touching stored entries only. Out-of-range columns
// follow the zero-padding contract.
func (s *SparseCol) col(j int) ([]float64, error) {
	out := make([]float64, s.rows)
	if j < 0 || j >= s.cols {
		if s.padded {
			return out, nil
		}

		return nil, coordErrorf(opSparseColCol, 0, j, ErrOutOfRange)
	}
	for i, v := range s.data[j] {
		out[i] = v
	}

	return out, nil
}

// sum totals the stored entries only.
func (s *SparseCol) sum() float64 {
	var total float64
	for _, c := range s.data {
		for _, v := range c {
			total += v
		}
	}

	return total
}

// rowSums accumulates per-row totals over stored entries only.
func (s *SparseCol) rowSums() []float64 {
	out := make([]float64, s.rows)
	for _, c := range s.data {
		for i, v := range c {
			out[i] += v
		}
	}

	return out
}

// colSums accumulates per-column totals over stored entries only.
func (s *SparseCol) colSums() []float64 {
	out := make([]float64, s.cols)
	for j, c := range s.data {
		for _, v := range c {
			out[j] += v
		}
	}

	return out
}
