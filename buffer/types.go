// SPDX-License-Identifier: MIT

package buffer

import "fmt"

// Operation names used in wrapped error context.
const (
	opAllocate = "Allocate"
	opAt       = "At"
	opSet      = "Set"
	opClone    = "Clone"
)

// Buffer is a linear float64 store with a one-shot allocation lifecycle.
//
// Allocate must be called exactly once before any At or Set. Implementations
// report ErrNotAllocated for early access, ErrAlreadyAllocated for repeated
// allocation, and ErrOutOfRange for indices outside [0, Size()).
type Buffer interface {
	// Allocate reserves storage for size cells. It succeeds at most once.
	Allocate(size int) error
	// IsAllocated reports whether Allocate has succeeded.
	IsAllocated() bool
	// Size returns the allocated cell count, 0 before allocation.
	Size() int
	// At returns the value stored at linear index i.
	At(i int) (float64, error)
	// Set stores v at linear index i.
	Set(i int, v float64) error
}

// lifecycle carries the one-shot allocation state shared by all buffers.
type lifecycle struct {
	size      int
	allocated bool
}

// IsAllocated reports whether the one-shot allocation has happened.
func (l *lifecycle) IsAllocated() bool { return l.allocated }

// Size returns the allocated cell count, 0 before allocation.
func (l *lifecycle) Size() int {
	if !l.allocated {
		return 0
	}
	return l.size
}

// begin validates an Allocate call and records the allocated size.
func (l *lifecycle) begin(kind string, size int) error {
	if l.allocated {
		return fmt.Errorf("%s.%s: %w", kind, opAllocate, ErrAlreadyAllocated)
	}
	if size <= 0 {
		return fmt.Errorf("%s.%s(size=%d): %w", kind, opAllocate, size, ErrInvalidSize)
	}
	l.size = size
	l.allocated = true
	return nil
}

// access validates a linear read or write against the allocated range.
func (l *lifecycle) access(kind, op string, i int) error {
	if !l.allocated {
		return fmt.Errorf("%s.%s: %w", kind, op, ErrNotAllocated)
	}
	if i < 0 || i >= l.size {
		return fmt.Errorf("%s.%s(i=%d, size=%d): %w", kind, op, i, l.size, ErrOutOfRange)
	}
	return nil
}
