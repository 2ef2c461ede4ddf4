// SPDX-License-Identifier: MIT

package distance

import "errors"

var (
	// ErrLengthMismatch is returned when a pointwise metric receives
	// sequences of different lengths.
	ErrLengthMismatch = errors.New("distance: sequence lengths differ")

	// ErrEmptyInput is returned when an operation receives an empty
	// sequence.
	ErrEmptyInput = errors.New("distance: input sequence must be non-empty")

	// ErrBadOrder is returned when a Minkowski distance is requested with
	// order p < 1.
	ErrBadOrder = errors.New("distance: order must be >= 1")

	// ErrZeroVector is returned when a cosine distance involves an all-zero
	// vector, where the angle is undefined.
	ErrZeroVector = errors.New("distance: cosine of a zero vector is undefined")

	// ErrBadInput is returned when an option carries a value outside its
	// documented domain.
	ErrBadInput = errors.New("distance: invalid option value")

	// ErrPathNeedsMatrix is returned when warping-path recovery is requested
	// without FullMatrix memory.
	ErrPathNeedsMatrix = errors.New("distance: path recovery requires FullMatrix memory")
)
