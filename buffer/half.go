// SPDX-License-Identifier: MIT

package buffer

import "github.com/x448/float16"

const kindHalf = "Half"

// Half stores values as IEEE 754 half-precision words, halving dense float
// memory at the cost of precision (~3 significant decimal digits). Conversion
// rounds to nearest-even; magnitudes above ~65504 overflow to infinity.
type Half struct {
	lifecycle
	data []float16.Float16
}

var _ Buffer = (*Half)(nil)

// NewHalf returns an unallocated half-precision buffer.
func NewHalf() *Half { return &Half{} }

// Allocate reserves size zero-valued cells.
func (h *Half) Allocate(size int) error {
	if err := h.begin(kindHalf, size); err != nil {
		return err
	}
	h.data = make([]float16.Float16, size)
	return nil
}

// At returns the value at linear index i widened to float64.
func (h *Half) At(i int) (float64, error) {
	if err := h.access(kindHalf, opAt, i); err != nil {
		return 0, err
	}
	return float64(h.data[i].Float32()), nil
}

// Set stores v narrowed to half precision at linear index i.
func (h *Half) Set(i int, v float64) error {
	if err := h.access(kindHalf, opSet, i); err != nil {
		return err
	}
	h.data[i] = float16.Fromfloat32(float32(v))
	return nil
}
