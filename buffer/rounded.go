// SPDX-License-Identifier: MIT

package buffer

import "math"

const kindRounded = "Rounded"

// Rounded stores every value rounded to the nearest whole number. Ties round
// away from zero. Reads return the stored whole number as a float64.
type Rounded struct {
	lifecycle
	data []float64
}

var _ Buffer = (*Rounded)(nil)

// NewRounded returns an unallocated whole-number buffer.
func NewRounded() *Rounded { return &Rounded{} }

// Allocate reserves size zero-valued cells.
func (r *Rounded) Allocate(size int) error {
	if err := r.begin(kindRounded, size); err != nil {
		return err
	}
	r.data = make([]float64, size)
	return nil
}

// At returns the rounded value at linear index i.
func (r *Rounded) At(i int) (float64, error) {
	if err := r.access(kindRounded, opAt, i); err != nil {
		return 0, err
	}
	return r.data[i], nil
}

// Set stores v rounded to the nearest whole number at linear index i.
func (r *Rounded) Set(i int, v float64) error {
	if err := r.access(kindRounded, opSet, i); err != nil {
		return err
	}
	r.data[i] = math.Round(v)
	return nil
}
