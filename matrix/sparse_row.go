// SPDX-License-Identifier: MIT

package matrix

import (
	"maps"

	"github.com/katalvlaran/sigmat/buffer"
)

// Operation tags for wrapped errors.
const (
	opSparseRowNew    = "NewSparseRow"
	opSparseRowAt     = "SparseRow.At"
	opSparseRowSet    = "SparseRow.Set"
	opSparseRowSetRow = "SparseRow.SetRow"
	opSparseRowBuffer = "SparseRow.Buffer"
	opSparseRowRow    = "SparseRow.Row"
)

// SparseRow stores non-zero cells grouped by row: an outer map from row index
// to an inner column→value map. Row extraction and row replacement touch only
// stored entries; emptied inner maps are pruned so occupancy mirrors content.
type SparseRow struct {
	rows, cols int
	padded     bool
	data       map[int]map[int]float64
}

// Compile-time interface checks.
var (
	_ Matrix        = (*SparseRow)(nil)
	_ MutableMatrix = (*SparseRow)(nil)
)

// NewSparseRow constructs a rows×cols row-grouped sparse matrix. The
// WithBuffer option does not apply and is rejected with ErrUnsupported.
func NewSparseRow(rows, cols int, opts ...Option) (*SparseRow, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opSparseRowNew, err)
	}
	o := gatherOptions(opts...)
	if o.buf != nil {
		return nil, matrixErrorf(opSparseRowNew, ErrUnsupported)
	}

	return &SparseRow{
		rows:   rows,
		cols:   cols,
		padded: o.zeroPadded,
		data:   make(map[int]map[int]float64),
	}, nil
}

// Rows returns the number of rows.
func (s *SparseRow) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *SparseRow) Cols() int { return s.cols }

// ZeroPadded reports whether out-of-range reads yield zero.
func (s *SparseRow) ZeroPadded() bool { return s.padded }

// Occupancy returns the number of explicitly stored (non-zero) cells.
func (s *SparseRow) Occupancy() int {
	var total int
	for _, r := range s.data {
		total += len(r)
	}

	return total
}

// At returns the element at (i, j); absent cells read as 0.
func (s *SparseRow) At(i, j int) (float64, error) {
	pad, err := readGuard(s.rows, s.cols, i, j, s.padded)
	if err != nil {
		return 0, coordErrorf(opSparseRowAt, i, j, err)
	}
	if pad {
		return 0, nil
	}

	return s.data[i][j], nil
}

// Set stores v at (i, j); storing 0 removes the entry and prunes the row map
// when it empties.
func (s *SparseRow) Set(i, j int, v float64) error {
	if err := writeGuard(s.rows, s.cols, i, j); err != nil {
		return coordErrorf(opSparseRowSet, i, j, err)
	}
	if v == 0 {
		if r, ok := s.data[i]; ok {
			delete(r, j)
			if len(r) == 0 {
				delete(s.data, i)
			}
		}

		return nil
	}
	r, ok := s.data[i]
	if !ok {
		r = make(map[int]float64)
		s.data[i] = r
	}
	r[j] = v

	return nil
}

// Fill stores v in every cell; Fill(0) empties the maps.
func (s *SparseRow) Fill(v float64) error { return fillCells(s, v) }

// Load copies a row-major slice; zeros stay unstored.
func (s *SparseRow) Load(values []float64) error { return loadRowMajor(s, values) }

// CopyFrom copies src cell by cell; shapes must match exactly.
func (s *SparseRow) CopyFrom(src Matrix) error { return copyInto(s, src) }

// CopyRegion copies a rows×cols region of src into this matrix.
func (s *SparseRow) CopyRegion(src Matrix, fromRow, fromCol, toRow, toCol, rows, cols int) error {
	return copyRegionInto(s, src, fromRow, fromCol, toRow, toCol, rows, cols)
}

// SetRow replaces row i in one shot: the old row map is dropped and only the
// non-zero values of the replacement are stored.
func (s *SparseRow) SetRow(i int, row []float64) error {
	if i < 0 || i >= s.rows {
		return coordErrorf(opSparseRowSetRow, i, 0, ErrOutOfRange)
	}
	if err := validateVecLen(len(row), s.cols); err != nil {
		return matrixErrorf(opSparseRowSetRow, err)
	}
	delete(s.data, i)
	var j int
	var r map[int]float64
	for j = 0; j < s.cols; j++ {
		if row[j] == 0 {
			continue
		}
		if r == nil {
			r = make(map[int]float64)
			s.data[i] = r
		}
		r[j] = row[j]
	}

	return nil
}

// SetCol replaces column j cell by cell (no columnar fast path in a
// row-grouped layout).
func (s *SparseRow) SetCol(j int, col []float64) error { return setColCells(s, j, col) }

// Buffer fails with ErrUnsupported: map-backed storage has no linear buffer.
func (s *SparseRow) Buffer() (buffer.Buffer, error) {
	return nil, matrixErrorf(opSparseRowBuffer, ErrUnsupported)
}

// Clone returns an independent deep copy; inner row maps are copied, not
// shared. Map-backed cloning cannot fail.
func (s *SparseRow) Clone() *SparseRow {
	data := make(map[int]map[int]float64, len(s.data))
	for i, r := range s.data {
		data[i] = maps.Clone(r)
	}

	return &SparseRow{rows: s.rows, cols: s.cols, padded: s.padded, data: data}
}

// row extracts row i touching stored entries only. Out-of-range rows follow
// the zero-padding contract.
func (s *SparseRow) row(i int) ([]float64, error) {
	out := make([]float64, s.cols)
	if i < 0 || i >= s.rows {
		if s.padded {
			return out, nil
		}

		return nil, coordErrorf(opSparseRowRow, i, 0, ErrOutOfRange)
	}
	for j, v := range s.data[i] {
		out[j] = v
	}

	return out, nil
}

// sum totals the stored entries only.
func (s *SparseRow) sum() float64 {
	var total float64
	for _, r := range s.data {
		for _, v := range r {
			total += v
		}
	}

	return total
}

// rowSums accumulates per-row totals over stored entries only.
func (s *SparseRow) rowSums() []float64 {
	out := make([]float64, s.rows)
	for i, r := range s.data {
		for _, v := range r {
			out[i] += v
		}
	}

	return out
}

// colSums accumulates per-column totals over stored entries only.
func (s *SparseRow) colSums() []float64 {
	out := make([]float64, s.cols)
	for _, r := range s.data {
		for j, v := range r {
			out[j] += v
		}
	}

	return out
}
