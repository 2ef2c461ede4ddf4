// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/sigmat/buffer"

// Matrix is the read-only capability: shape, padding policy and cell reads.
//
// At follows the zero-padding contract: out-of-range coordinates yield 0 on a
// zero-padded matrix and ErrOutOfRange otherwise. Implementations are
// single-goroutine values.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// ZeroPadded reports whether out-of-range reads yield 0 instead of failing.
	ZeroPadded() bool
	// At returns the element at row i, column j.
	At(i, j int) (float64, error)
}

// MutableMatrix extends Matrix with writes and bulk loads. Writes never pad:
// an out-of-range Set fails even on a zero-padded matrix. Bulk operations
// copy cell by cell; a failed write leaves earlier writes applied.
type MutableMatrix interface {
	Matrix
	// Set stores v at row i, column j.
	Set(i, j int, v float64) error
	// Fill stores v in every cell.
	Fill(v float64) error
	// Load copies a row-major slice of length Rows()*Cols() into the matrix.
	Load(values []float64) error
	// CopyFrom copies src cell by cell; shapes must match exactly.
	CopyFrom(src Matrix) error
	// CopyRegion copies a rows×cols region of src starting at (fromRow,
	// fromCol) into this matrix starting at (toRow, toCol).
	CopyRegion(src Matrix, fromRow, fromCol, toRow, toCol, rows, cols int) error
	// SetRow replaces row i with the given values (length Cols()).
	SetRow(i int, row []float64) error
	// SetCol replaces column j with the given values (length Rows()).
	SetCol(j int, col []float64) error
	// Buffer exposes the backing storage. Map-based sparse matrices have none
	// and fail with ErrUnsupported.
	Buffer() (buffer.Buffer, error)
}
