// SPDX-License-Identifier: MIT
// Package: sigmat/matrix
//
// full.go - general-purpose dense matrix over a pluggable backing buffer.
//
// Purpose:
//   - Full is the workhorse rows×cols matrix; cells live in a linear buffer
//     at offset i*cols + j (row-major).
//   - The storage strategy is swappable at construction (WithBuffer): exact
//     float64, rounded, quantized 8-bit, half precision or sparse-backed.
//
// Contract:
//   - NewFull validates the shape, then readies the buffer exactly once: an
//     unallocated buffer is allocated to rows*cols, an allocated one is
//     adopted when its size matches.
//   - Reads follow the zero-padding contract; writes are always strict.
//   - O(1) cell access on dense buffers. No locking, no goroutines.
//
// AI-Hints:
//   - Pick the buffer for the data, not the API: SignedByte for normalized
//     audio frames, Half for bulk spectra, Sparse for mostly-empty grids.
//   - Need a snapshot of any Matrix (views included)? Use Materialize.

package matrix

import "github.com/katalvlaran/sigmat/buffer"

// Operation tags for wrapped errors.
const (
	opFullNew     = "NewFull"
	opFullAt      = "Full.At"
	opFullSet     = "Full.Set"
	opFullClone   = "Full.Clone"
	opMaterialize = "Materialize"
)

// Full is a dense rows×cols matrix backed by a linear buffer.
type Full struct {
	rows, cols int
	padded     bool
	buf        buffer.Buffer
}

// Compile-time interface checks.
var (
	_ Matrix        = (*Full)(nil)
	_ MutableMatrix = (*Full)(nil)
)

// NewFull constructs a rows×cols matrix. The default backing store is an
// exact float64 buffer; WithBuffer swaps the storage strategy and
// WithZeroPadding relaxes out-of-range reads.
func NewFull(rows, cols int, opts ...Option) (*Full, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFullNew, err)
	}
	o := gatherOptions(opts...)
	buf, err := resolveBuffer(o.buf, rows*cols)
	if err != nil {
		return nil, matrixErrorf(opFullNew, err)
	}

	return &Full{rows: rows, cols: cols, padded: o.zeroPadded, buf: buf}, nil
}

// Rows returns the number of rows.
func (f *Full) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Full) Cols() int { return f.cols }

// ZeroPadded reports whether out-of-range reads yield zero.
func (f *Full) ZeroPadded() bool { return f.padded }

// index maps (i, j) to the row-major linear offset.
func (f *Full) index(i, j int) int { return i*f.cols + j }

// At returns the element at (i, j), applying the zero-padding contract.
func (f *Full) At(i, j int) (float64, error) {
	pad, err := readGuard(f.rows, f.cols, i, j, f.padded)
	if err != nil {
		return 0, coordErrorf(opFullAt, i, j, err)
	}
	if pad {
		return 0, nil
	}
	v, err := f.buf.At(f.index(i, j))
	if err != nil {
		return 0, coordErrorf(opFullAt, i, j, err)
	}

	return v, nil
}

// Set stores v at (i, j); out-of-range writes fail even when padded. The
// buffer may transform the value on storage (rounding, quantization) or
// reject it (quantized domain violations).
func (f *Full) Set(i, j int, v float64) error {
	if err := writeGuard(f.rows, f.cols, i, j); err != nil {
		return coordErrorf(opFullSet, i, j, err)
	}
	if err := f.buf.Set(f.index(i, j), v); err != nil {
		return coordErrorf(opFullSet, i, j, err)
	}

	return nil
}

// Fill stores v in every cell.
func (f *Full) Fill(v float64) error { return fillCells(f, v) }

// Load copies a row-major slice of length Rows*Cols into the matrix.
func (f *Full) Load(values []float64) error { return loadRowMajor(f, values) }

// CopyFrom copies src cell by cell; shapes must match exactly.
func (f *Full) CopyFrom(src Matrix) error { return copyInto(f, src) }

// CopyRegion copies a rows×cols region of src starting at (fromRow, fromCol)
// into this matrix starting at (toRow, toCol).
func (f *Full) CopyRegion(src Matrix, fromRow, fromCol, toRow, toCol, rows, cols int) error {
	return copyRegionInto(f, src, fromRow, fromCol, toRow, toCol, rows, cols)
}

// SetRow replaces row i with the given values (length Cols).
func (f *Full) SetRow(i int, row []float64) error { return setRowCells(f, i, row) }

// SetCol replaces column j with the given values (length Rows).
func (f *Full) SetCol(j int, col []float64) error { return setColCells(f, j, col) }

// Buffer exposes the backing storage.
func (f *Full) Buffer() (buffer.Buffer, error) { return f.buf, nil }

// Clone returns an independent deep copy preserving the storage strategy,
// unlike Materialize, which always snapshots into exact float64 cells.
// Cloning fails only when the backing buffer is a foreign implementation.
func (f *Full) Clone() (*Full, error) {
	buf, err := buffer.Clone(f.buf)
	if err != nil {
		return nil, matrixErrorf(opFullClone, err)
	}

	return &Full{rows: f.rows, cols: f.cols, padded: f.padded, buf: buf}, nil
}

// Materialize copies any Matrix, views included, into a fresh Full backed by
// an exact float64 buffer. The zero-padding flag carries over from the
// source. This is the explicit duplication path: views stay lazy until a
// caller asks for a snapshot.
//
// Degenerate sources (zero rows or columns, possible on translate views)
// cannot be materialized and fail with ErrInvalidDimensions.
func Materialize(m Matrix) (*Full, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMaterialize, err)
	}
	var opts []Option
	if m.ZeroPadded() {
		opts = append(opts, WithZeroPadding())
	}
	out, err := NewFull(m.Rows(), m.Cols(), opts...)
	if err != nil {
		return nil, matrixErrorf(opMaterialize, err)
	}
	if err = out.CopyFrom(m); err != nil {
		return nil, matrixErrorf(opMaterialize, err)
	}

	return out, nil
}
