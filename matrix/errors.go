// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add operation context via
// matrixErrorf/coordErrorf; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds: a read on a non-padded matrix, any out-of-range write, or a
	// write outside a band matrix's band.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols() != b.Rows(), a bulk load whose slice length does
	// not match the target shape, or an adopted buffer of the wrong size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadBandwidth signals a band matrix constructed with a bandwidth that
	// is not a positive odd number; bands are symmetric around the diagonal.
	ErrBadBandwidth = errors.New("matrix: bandwidth must be a positive odd number")

	// ErrUnsupported marks an intentionally unsupported operation on the
	// matrix surface (e.g. buffer access on a map-based sparse matrix).
	ErrUnsupported = errors.New("matrix: operation not supported")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
