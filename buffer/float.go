// SPDX-License-Identifier: MIT

package buffer

const kindFloat = "Float"

// Float stores values exactly as float64.
//
// The zero value is an unallocated buffer. NewFloatFrom adopts an existing
// slice without copying, which leaves allocation lifetime and memory locality
// under caller control.
type Float struct {
	lifecycle
	data []float64
}

var _ Buffer = (*Float)(nil)

// NewFloat returns an unallocated exact float64 buffer.
func NewFloat() *Float { return &Float{} }

// NewFloatFrom returns a Float that adopts data as its storage without
// copying. The result is already allocated, so a later Allocate fails with
// ErrAlreadyAllocated. An empty slice is rejected with ErrInvalidSize.
func NewFloatFrom(data []float64) (*Float, error) {
	f := &Float{}
	if err := f.begin(kindFloat, len(data)); err != nil {
		return nil, err
	}
	f.data = data
	return f, nil
}

// Allocate reserves size zero-valued cells.
func (f *Float) Allocate(size int) error {
	if err := f.begin(kindFloat, size); err != nil {
		return err
	}
	f.data = make([]float64, size)
	return nil
}

// At returns the value at linear index i.
func (f *Float) At(i int) (float64, error) {
	if err := f.access(kindFloat, opAt, i); err != nil {
		return 0, err
	}
	return f.data[i], nil
}

// Set stores v at linear index i.
func (f *Float) Set(i int, v float64) error {
	if err := f.access(kindFloat, opSet, i); err != nil {
		return err
	}
	f.data[i] = v
	return nil
}

// Raw exposes the underlying slice for flat fast paths. Callers must not
// resize it. Nil before allocation.
func (f *Float) Raw() []float64 { return f.data }
