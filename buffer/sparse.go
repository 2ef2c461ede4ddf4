// SPDX-License-Identifier: MIT

package buffer

const kindSparse = "Sparse"

// Sparse stores only cells that differ from a default value. Reading an
// absent cell yields the default; storing the default deletes the cell.
// Allocation fixes the valid index range but reserves no per-cell memory.
type Sparse struct {
	lifecycle
	def  float64
	data map[int]float64
}

var _ Buffer = (*Sparse)(nil)

// NewSparse returns an unallocated sparse buffer whose absent cells read as
// def.
func NewSparse(def float64) *Sparse { return &Sparse{def: def} }

// Allocate fixes the valid index range [0, size).
func (s *Sparse) Allocate(size int) error {
	if err := s.begin(kindSparse, size); err != nil {
		return err
	}
	s.data = make(map[int]float64)
	return nil
}

// At returns the stored value at linear index i, or the default when absent.
func (s *Sparse) At(i int) (float64, error) {
	if err := s.access(kindSparse, opAt, i); err != nil {
		return 0, err
	}
	if v, ok := s.data[i]; ok {
		return v, nil
	}
	return s.def, nil
}

// Set stores v at linear index i. Storing the default value removes the cell.
func (s *Sparse) Set(i int, v float64) error {
	if err := s.access(kindSparse, opSet, i); err != nil {
		return err
	}
	if v == s.def {
		delete(s.data, i)
		return nil
	}
	s.data[i] = v
	return nil
}

// Default returns the value absent cells read as.
func (s *Sparse) Default() float64 { return s.def }

// Occupancy returns the number of explicitly stored cells.
func (s *Sparse) Occupancy() int { return len(s.data) }
