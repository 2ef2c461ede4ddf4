// SPDX-License-Identifier: MIT
// Package: sigmat/matrix
//
// band.go - symmetric band matrix with configurable outside-band reads.
//
// Purpose:
//   - SymmetricBand stores an n×n symmetric matrix whose non-default cells
//     cluster within k of the diagonal (bandwidth 2k+1). Only the upper
//     half-band is stored, in n rows of min(k+1, n) cells.
//   - Reads outside the band yield a configurable band value (0 unless
//     WithBandValue); writes outside the band fail with ErrOutOfRange.
//
// Layout:
//   - offset(i, j) = i*columnsPerRow + (j − i) for mirrored i ≤ j ≤ i+k.
//   - Storage is over-allocated for the trailing rows (their bands are
//     shorter than columnsPerRow); the tail cells are simply never addressed.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/sigmat/buffer"
)

// Operation tags for wrapped errors.
const (
	opBandNew   = "NewSymmetricBand"
	opBandAt    = "SymmetricBand.At"
	opBandSet   = "SymmetricBand.Set"
	opBandClone = "SymmetricBand.Clone"
)

// SymmetricBand is an n×n symmetric matrix storing only a diagonal band.
type SymmetricBand struct {
	n      int
	k      int     // half-bandwidth: cells with |i-j| <= k are stored
	perRow int     // stored cells per row: min(k+1, n)
	def    float64 // reported for reads outside the band
	padded bool
	buf    buffer.Buffer
}

// Compile-time interface checks.
var (
	_ Matrix        = (*SymmetricBand)(nil)
	_ MutableMatrix = (*SymmetricBand)(nil)
)

// NewSymmetricBand constructs an n×n symmetric matrix that stores only a band
// of the given width around the diagonal. The bandwidth counts both band
// halves plus the diagonal and must be a positive odd number (2k+1), or
// construction fails with ErrBadBandwidth.
func NewSymmetricBand(n, bandwidth int, opts ...Option) (*SymmetricBand, error) {
	if err := validateDims(n, n); err != nil {
		return nil, matrixErrorf(opBandNew, err)
	}
	if bandwidth < 1 || bandwidth%2 == 0 {
		return nil, matrixErrorf(opBandNew,
			fmt.Errorf("bandwidth %d: %w", bandwidth, ErrBadBandwidth))
	}
	k := (bandwidth - 1) / 2
	perRow := min(k+1, n)
	o := gatherOptions(opts...)
	buf, err := resolveBuffer(o.buf, n*perRow)
	if err != nil {
		return nil, matrixErrorf(opBandNew, err)
	}

	return &SymmetricBand{
		n:      n,
		k:      k,
		perRow: perRow,
		def:    o.bandValue,
		padded: o.zeroPadded,
		buf:    buf,
	}, nil
}

// Rows returns the matrix order n.
func (m *SymmetricBand) Rows() int { return m.n }

// Cols returns the matrix order n.
func (m *SymmetricBand) Cols() int { return m.n }

// ZeroPadded reports whether out-of-range reads yield zero.
func (m *SymmetricBand) ZeroPadded() bool { return m.padded }

// Bandwidth returns the full band width 2k+1.
func (m *SymmetricBand) Bandwidth() int { return 2*m.k + 1 }

// BandValue returns the value reported for reads outside the band.
func (m *SymmetricBand) BandValue() float64 { return m.def }

// index maps a mirrored in-band coordinate (i ≤ j ≤ i+k) to its offset.
func (m *SymmetricBand) index(i, j int) int { return i*m.perRow + (j - i) }

// At returns the element at (i, j). In-range reads outside the band yield the
// band value; out-of-range reads follow the zero-padding contract.
func (m *SymmetricBand) At(i, j int) (float64, error) {
	pad, err := readGuard(m.n, m.n, i, j, m.padded)
	if err != nil {
		return 0, coordErrorf(opBandAt, i, j, err)
	}
	if pad {
		return 0, nil
	}
	if i > j {
		i, j = j, i // mirror into the stored half-band
	}
	if j-i > m.k {
		return m.def, nil
	}
	v, err := m.buf.At(m.index(i, j))
	if err != nil {
		return 0, coordErrorf(opBandAt, i, j, err)
	}

	return v, nil
}

// Set stores v at (i, j) and, through the shared band cell, at (j, i).
// Writes outside the band fail with ErrOutOfRange regardless of the value.
func (m *SymmetricBand) Set(i, j int, v float64) error {
	if err := writeGuard(m.n, m.n, i, j); err != nil {
		return coordErrorf(opBandSet, i, j, err)
	}
	if i > j {
		i, j = j, i // mirror into the stored half-band
	}
	if j-i > m.k {
		return coordErrorf(opBandSet, i, j, ErrOutOfRange)
	}
	if err := m.buf.Set(m.index(i, j), v); err != nil {
		return coordErrorf(opBandSet, i, j, err)
	}

	return nil
}

// Fill stores v in every cell. Once n exceeds the band, some cells cannot be
// written and Fill fails with ErrOutOfRange; band matrices are bulk-filled
// only when the band covers the whole matrix.
func (m *SymmetricBand) Fill(v float64) error { return fillCells(m, v) }

// Load copies a row-major n×n slice; out-of-band cells in the source cannot
// be stored and fail the load with ErrOutOfRange.
func (m *SymmetricBand) Load(values []float64) error { return loadRowMajor(m, values) }

// CopyFrom copies src cell by cell; out-of-band writes fail.
func (m *SymmetricBand) CopyFrom(src Matrix) error { return copyInto(m, src) }

// CopyRegion copies a rows×cols region of src into this matrix; out-of-band
// writes fail.
func (m *SymmetricBand) CopyRegion(src Matrix, fromRow, fromCol, toRow, toCol, rows, cols int) error {
	return copyRegionInto(m, src, fromRow, fromCol, toRow, toCol, rows, cols)
}

// SetRow replaces row i; cells of the row outside the band fail the write.
func (m *SymmetricBand) SetRow(i int, row []float64) error { return setRowCells(m, i, row) }

// SetCol replaces column j; cells of the column outside the band fail the
// write.
func (m *SymmetricBand) SetCol(j int, col []float64) error { return setColCells(m, j, col) }

// Buffer exposes the half-band backing storage.
func (m *SymmetricBand) Buffer() (buffer.Buffer, error) { return m.buf, nil }

// Clone returns an independent deep copy preserving the storage strategy,
// the band geometry, and the outside-band read value.
func (m *SymmetricBand) Clone() (*SymmetricBand, error) {
	buf, err := buffer.Clone(m.buf)
	if err != nil {
		return nil, matrixErrorf(opBandClone, err)
	}

	return &SymmetricBand{
		n:      m.n,
		k:      m.k,
		perRow: m.perRow,
		def:    m.def,
		padded: m.padded,
		buf:    buf,
	}, nil
}
