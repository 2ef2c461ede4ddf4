// SPDX-License-Identifier: MIT

package matrix

import (
	"maps"

	"github.com/katalvlaran/sigmat/buffer"
)

// Operation tags for wrapped errors.
const (
	opSparseNew    = "NewSparse"
	opSparseAt     = "Sparse.At"
	opSparseSet    = "Sparse.Set"
	opSparseBuffer = "Sparse.Buffer"
)

// cell is the value-type key identifying one stored coordinate. Plain struct
// equality makes map lookups exact; no identity tricks.
type cell struct{ i, j int }

// Sparse stores only non-zero cells in a single map keyed by coordinate.
// Absent cells read as 0; writing 0 deletes the entry. There is no backing
// buffer: Buffer access fails with ErrUnsupported.
type Sparse struct {
	rows, cols int
	padded     bool
	data       map[cell]float64
}

// Compile-time interface checks.
var (
	_ Matrix        = (*Sparse)(nil)
	_ MutableMatrix = (*Sparse)(nil)
)

// NewSparse constructs a rows×cols map-backed sparse matrix. The WithBuffer
// option does not apply and is rejected with ErrUnsupported.
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opSparseNew, err)
	}
	o := gatherOptions(opts...)
	if o.buf != nil {
		return nil, matrixErrorf(opSparseNew, ErrUnsupported)
	}

	return &Sparse{
		rows:   rows,
		cols:   cols,
		padded: o.zeroPadded,
		data:   make(map[cell]float64),
	}, nil
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.cols }

// ZeroPadded reports whether out-of-range reads yield zero.
func (s *Sparse) ZeroPadded() bool { return s.padded }

// Occupancy returns the number of explicitly stored (non-zero) cells.
func (s *Sparse) Occupancy() int { return len(s.data) }

// At returns the element at (i, j); absent cells read as 0.
func (s *Sparse) At(i, j int) (float64, error) {
	pad, err := readGuard(s.rows, s.cols, i, j, s.padded)
	if err != nil {
		return 0, coordErrorf(opSparseAt, i, j, err)
	}
	if pad {
		return 0, nil
	}

	return s.data[cell{i, j}], nil
}

// Set stores v at (i, j); storing 0 removes the entry.
func (s *Sparse) Set(i, j int, v float64) error {
	if err := writeGuard(s.rows, s.cols, i, j); err != nil {
		return coordErrorf(opSparseSet, i, j, err)
	}
	if v == 0 {
		delete(s.data, cell{i, j})
		return nil
	}
	s.data[cell{i, j}] = v

	return nil
}

// Fill stores v in every cell; Fill(0) empties the map.
func (s *Sparse) Fill(v float64) error { return fillCells(s, v) }

// Load copies a row-major slice; zeros stay unstored.
func (s *Sparse) Load(values []float64) error { return loadRowMajor(s, values) }

// CopyFrom copies src cell by cell; shapes must match exactly.
func (s *Sparse) CopyFrom(src Matrix) error { return copyInto(s, src) }

// CopyRegion copies a rows×cols region of src into this matrix.
func (s *Sparse) CopyRegion(src Matrix, fromRow, fromCol, toRow, toCol, rows, cols int) error {
	return copyRegionInto(s, src, fromRow, fromCol, toRow, toCol, rows, cols)
}

// SetRow replaces row i with the given values (length Cols).
func (s *Sparse) SetRow(i int, row []float64) error { return setRowCells(s, i, row) }

// SetCol replaces column j with the given values (length Rows).
func (s *Sparse) SetCol(j int, col []float64) error { return setColCells(s, j, col) }

// Buffer fails with ErrUnsupported: map-backed storage has no linear buffer.
func (s *Sparse) Buffer() (buffer.Buffer, error) {
	return nil, matrixErrorf(opSparseBuffer, ErrUnsupported)
}

// Clone returns an independent deep copy. Map-backed cloning cannot fail.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{rows: s.rows, cols: s.cols, padded: s.padded, data: maps.Clone(s.data)}
}

// sum totals the stored entries only.
func (s *Sparse) sum() float64 {
	var total float64
	for _, v := range s.data {
		total += v
	}

	return total
}

// rowSums accumulates per-row totals over stored entries only.
func (s *Sparse) rowSums() []float64 {
	out := make([]float64, s.rows)
	for c, v := range s.data {
		out[c.i] += v
	}

	return out
}

// colSums accumulates per-column totals over stored entries only.
func (s *Sparse) colSums() []float64 {
	out := make([]float64, s.cols)
	for c, v := range s.data {
		out[c.j] += v
	}

	return out
}
