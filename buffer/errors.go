// SPDX-License-Identifier: MIT

package buffer

import "errors"

var (
	// ErrNotAllocated indicates At or Set before the one-shot Allocate call.
	ErrNotAllocated = errors.New("buffer: not allocated")
	// ErrAlreadyAllocated indicates a second Allocate call on the same buffer.
	ErrAlreadyAllocated = errors.New("buffer: already allocated")
	// ErrInvalidSize indicates Allocate with a non-positive size.
	ErrInvalidSize = errors.New("buffer: size must be positive")
	// ErrOutOfRange indicates a linear index outside [0, Size).
	ErrOutOfRange = errors.New("buffer: index out of range")
	// ErrValueOutOfRange indicates a value outside a quantized buffer's domain.
	ErrValueOutOfRange = errors.New("buffer: value outside storable range")
	// ErrUnsupported indicates a Buffer implementation this package cannot
	// operate on, such as cloning a foreign type.
	ErrUnsupported = errors.New("buffer: unsupported buffer implementation")
)
