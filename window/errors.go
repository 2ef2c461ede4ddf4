// SPDX-License-Identifier: MIT

package window

import "errors"

var (
	// ErrInvalidLength is returned when a generator is asked for fewer than
	// one sample.
	ErrInvalidLength = errors.New("window: length must be >= 1")

	// ErrInvalidSigma is returned when a Gaussian window is requested with a
	// non-positive width.
	ErrInvalidSigma = errors.New("window: sigma must be > 0")

	// ErrLengthMismatch is returned when a window and a frame have different
	// lengths.
	ErrLengthMismatch = errors.New("window: slice lengths differ")
)
