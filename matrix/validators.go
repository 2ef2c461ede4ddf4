// SPDX-License-Identifier: MIT

// Package matrix: shared validation helpers.
// Validators return wrapped sentinels from errors.go; call sites add their
// own operation tag via matrixErrorf/coordErrorf. Keeping the checks central
// guarantees every storage kind and view enforces identical bounds semantics.

package matrix

import "fmt"

// matrixErrorf tags err with the failing operation for error context.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// coordErrorf tags err with the failing operation and coordinate.
func coordErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}

// validateDims rejects non-positive shapes before any allocation.
func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("dims %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// validateNotNil rejects nil operands to views and reductions.
func validateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validatePair rejects a nil operand on either side of a binary view.
func validatePair(a, b Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return nil
}

// inBounds reports whether (i, j) lies inside a rows×cols shape.
func inBounds(rows, cols, i, j int) bool {
	return i >= 0 && j >= 0 && i < rows && j < cols
}

// readGuard implements the shared zero-padding read contract: in-range reads
// proceed (false, nil); out-of-range reads on a padded matrix substitute zero
// (true, nil); anything else fails with ErrOutOfRange.
func readGuard(rows, cols, i, j int, padded bool) (bool, error) {
	if inBounds(rows, cols, i, j) {
		return false, nil
	}
	if padded {
		return true, nil
	}

	return false, ErrOutOfRange
}

// writeGuard rejects out-of-range writes; padding never applies to writes.
func writeGuard(rows, cols, i, j int) error {
	if !inBounds(rows, cols, i, j) {
		return ErrOutOfRange
	}

	return nil
}

// validateMulCompatible checks the inner-dimension rule for multiplication.
func validateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return fmt.Errorf("inner dims %d vs %d: %w", a.Cols(), b.Rows(), ErrDimensionMismatch)
	}

	return nil
}

// validateVecLen checks a slice length against an expected dimension.
func validateVecLen(got, want int) error {
	if got != want {
		return fmt.Errorf("length %d, want %d: %w", got, want, ErrDimensionMismatch)
	}

	return nil
}

// validateSameShape checks that two operands share exact dimensions.
func validateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("shape %dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}
