// SPDX-License-Identifier: MIT

package buffer

import (
	"fmt"
	"math"
)

const (
	kindSigned   = "SignedByte"
	kindUnsigned = "UnsignedByte"

	// signedScale is the signed byte's maximum magnitude.
	signedScale = 127
	// unsignedScale is the unsigned byte's full range.
	unsignedScale = 255
)

// SignedByte quantizes the domain [-1, 1] into 8 signed bits. Set scales by
// the signed maximum magnitude and truncates toward zero, so a round-trip
// differs from the original value by at most 1/127. Values outside [-1, 1]
// (NaN included) are rejected with ErrValueOutOfRange.
type SignedByte struct {
	lifecycle
	data []int8
}

var _ Buffer = (*SignedByte)(nil)

// NewSignedByte returns an unallocated signed 8-bit quantizing buffer.
func NewSignedByte() *SignedByte { return &SignedByte{} }

// Allocate reserves size zero-valued cells.
func (b *SignedByte) Allocate(size int) error {
	if err := b.begin(kindSigned, size); err != nil {
		return err
	}
	b.data = make([]int8, size)
	return nil
}

// At returns the dequantized value at linear index i.
func (b *SignedByte) At(i int) (float64, error) {
	if err := b.access(kindSigned, opAt, i); err != nil {
		return 0, err
	}
	return float64(b.data[i]) / signedScale, nil
}

// Set quantizes v into [-127, 127] and stores it at linear index i.
func (b *SignedByte) Set(i int, v float64) error {
	if err := b.access(kindSigned, opSet, i); err != nil {
		return err
	}
	if math.IsNaN(v) || v < -1 || v > 1 {
		return fmt.Errorf("%s.%s(i=%d, v=%g): %w", kindSigned, opSet, i, v, ErrValueOutOfRange)
	}
	b.data[i] = int8(v * signedScale)
	return nil
}

// UnsignedByte quantizes the domain [0, 1] into 8 unsigned bits, mapping the
// full range onto [0, 255]. Values outside [0, 1] (NaN included) are rejected
// with ErrValueOutOfRange.
type UnsignedByte struct {
	lifecycle
	data []uint8
}

var _ Buffer = (*UnsignedByte)(nil)

// NewUnsignedByte returns an unallocated unsigned 8-bit quantizing buffer.
func NewUnsignedByte() *UnsignedByte { return &UnsignedByte{} }

// Allocate reserves size zero-valued cells.
func (b *UnsignedByte) Allocate(size int) error {
	if err := b.begin(kindUnsigned, size); err != nil {
		return err
	}
	b.data = make([]uint8, size)
	return nil
}

// At returns the dequantized value at linear index i.
func (b *UnsignedByte) At(i int) (float64, error) {
	if err := b.access(kindUnsigned, opAt, i); err != nil {
		return 0, err
	}
	return float64(b.data[i]) / unsignedScale, nil
}

// Set quantizes v into [0, 255] and stores it at linear index i.
func (b *UnsignedByte) Set(i int, v float64) error {
	if err := b.access(kindUnsigned, opSet, i); err != nil {
		return err
	}
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%s.%s(i=%d, v=%g): %w", kindUnsigned, opSet, i, v, ErrValueOutOfRange)
	}
	b.data[i] = uint8(v * unsignedScale)
	return nil
}
