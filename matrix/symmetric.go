// SPDX-License-Identifier: MIT
// Package: sigmat/matrix
//
// symmetric.go - triangular-compact storage for symmetric matrices.
//
// Purpose:
//   - Symmetric stores an n×n symmetric matrix's upper triangle in a linear
//     buffer of n(n+1)/2 cells, roughly halving dense memory.
//   - Reads and writes mirror (i, j) to (j, i) when i > j, so both halves
//     stay consistent by construction: writing one cell updates its mirror.
//
// Layout:
//   - Row i of the triangle starts after the i(i+1)/2 cells the triangle
//     skips: offset(i, j) = i*n + j − i(i+1)/2 for i ≤ j.

package matrix

import "github.com/katalvlaran/sigmat/buffer"

// Operation tags for wrapped errors.
const (
	opSymNew   = "NewSymmetric"
	opSymAt    = "Symmetric.At"
	opSymSet   = "Symmetric.Set"
	opSymClone = "Symmetric.Clone"
)

// Symmetric is an n×n matrix storing only the upper triangle.
type Symmetric struct {
	n      int
	padded bool
	buf    buffer.Buffer
}

// Compile-time interface checks.
var (
	_ Matrix        = (*Symmetric)(nil)
	_ MutableMatrix = (*Symmetric)(nil)
)

// NewSymmetric constructs an n×n symmetric matrix over a triangular-compact
// buffer of n(n+1)/2 cells.
func NewSymmetric(n int, opts ...Option) (*Symmetric, error) {
	if err := validateDims(n, n); err != nil {
		return nil, matrixErrorf(opSymNew, err)
	}
	o := gatherOptions(opts...)
	buf, err := resolveBuffer(o.buf, n*(n+1)/2)
	if err != nil {
		return nil, matrixErrorf(opSymNew, err)
	}

	return &Symmetric{n: n, padded: o.zeroPadded, buf: buf}, nil
}

// Rows returns the matrix order n.
func (s *Symmetric) Rows() int { return s.n }

// Cols returns the matrix order n.
func (s *Symmetric) Cols() int { return s.n }

// ZeroPadded reports whether out-of-range reads yield zero.
func (s *Symmetric) ZeroPadded() bool { return s.padded }

// index maps an upper-triangle coordinate (i ≤ j) to its linear offset.
func (s *Symmetric) index(i, j int) int { return i*s.n + j - i*(i+1)/2 }

// At returns the element at (i, j), reading the mirrored cell when i > j.
func (s *Symmetric) At(i, j int) (float64, error) {
	pad, err := readGuard(s.n, s.n, i, j, s.padded)
	if err != nil {
		return 0, coordErrorf(opSymAt, i, j, err)
	}
	if pad {
		return 0, nil
	}
	if i > j {
		i, j = j, i // mirror into the stored triangle
	}
	v, err := s.buf.At(s.index(i, j))
	if err != nil {
		return 0, coordErrorf(opSymAt, i, j, err)
	}

	return v, nil
}

// Set stores v at (i, j) and, through the shared triangle cell, at (j, i).
func (s *Symmetric) Set(i, j int, v float64) error {
	if err := writeGuard(s.n, s.n, i, j); err != nil {
		return coordErrorf(opSymSet, i, j, err)
	}
	if i > j {
		i, j = j, i // mirror into the stored triangle
	}
	if err := s.buf.Set(s.index(i, j), v); err != nil {
		return coordErrorf(opSymSet, i, j, err)
	}

	return nil
}

// Fill stores v in every cell (each triangle cell is written twice through
// the mirror, which is harmless).
func (s *Symmetric) Fill(v float64) error { return fillCells(s, v) }

// Load copies a row-major n×n slice; mirrored cells must agree with their
// counterparts or the later value wins.
func (s *Symmetric) Load(values []float64) error { return loadRowMajor(s, values) }

// CopyFrom copies src cell by cell; shapes must match exactly. An asymmetric
// source leaves the last-written mirror value in each triangle cell.
func (s *Symmetric) CopyFrom(src Matrix) error { return copyInto(s, src) }

// CopyRegion copies a rows×cols region of src into this matrix.
func (s *Symmetric) CopyRegion(src Matrix, fromRow, fromCol, toRow, toCol, rows, cols int) error {
	return copyRegionInto(s, src, fromRow, fromCol, toRow, toCol, rows, cols)
}

// SetRow replaces row i (and by symmetry column i) with the given values.
func (s *Symmetric) SetRow(i int, row []float64) error { return setRowCells(s, i, row) }

// SetCol replaces column j (and by symmetry row j) with the given values.
func (s *Symmetric) SetCol(j int, col []float64) error { return setColCells(s, j, col) }

// Buffer exposes the triangular-compact backing storage.
func (s *Symmetric) Buffer() (buffer.Buffer, error) { return s.buf, nil }

// Clone returns an independent deep copy preserving the storage strategy.
func (s *Symmetric) Clone() (*Symmetric, error) {
	buf, err := buffer.Clone(s.buf)
	if err != nil {
		return nil, matrixErrorf(opSymClone, err)
	}

	return &Symmetric{n: s.n, padded: s.padded, buf: buf}, nil
}
