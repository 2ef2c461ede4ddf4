// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults,
//   - resolveBuffer helper shared by the buffer-backed constructors.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); user-triggered failures surface as errors from constructors.
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sigmat/buffer"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultZeroPadded keeps out-of-range reads strict unless opted in via
	// WithZeroPadding.
	DefaultZeroPadded = false

	// DefaultBandValue is reported for reads outside a band matrix's band.
	DefaultBandValue = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilBuffer          = "matrix: WithBuffer: buffer must be non-nil"
	panicBandValueNonFinite = "matrix: WithBandValue: value must be finite"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer
// wins). Constructors MUST panic only on nonsensical values (programmer
// error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported field-wise to prevent external mutation;
// public entry points accept `...Option` and resolve via gatherOptions.
type Options struct {
	zeroPadded bool          // DefaultZeroPadded
	buf        buffer.Buffer // nil means the constructor allocates a fresh buffer.Float
	bandValue  float64       // DefaultBandValue; band constructors only
}

// ---------- Constructors (WithX) ----------

// WithZeroPadding makes out-of-range reads yield 0 instead of ErrOutOfRange.
// Writes remain strict: an out-of-range Set fails regardless of padding.
func WithZeroPadding() Option {
	return func(o *Options) { o.zeroPadded = true }
}

// WithBuffer selects the backing storage strategy for buffer-backed matrices
// (Full, Symmetric, SymmetricBand). An unallocated buffer is allocated by the
// constructor; an allocated one is adopted when its size matches the shape.
// The map-based sparse constructors reject this option with ErrUnsupported.
//
// Panics when b is nil (programmer error).
func WithBuffer(b buffer.Buffer) Option {
	if b == nil {
		panic(panicNilBuffer)
	}

	return func(o *Options) { o.buf = b }
}

// WithBandValue sets the value reported for reads outside a band matrix's
// band. Only the band constructor consults it.
//
// Panics when v is NaN or ±Inf (programmer error).
func WithBandValue(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicBandValueNonFinite)
	}

	return func(o *Options) { o.bandValue = v }
}

// ---------- Internal resolution ----------

// gatherOptions resolves defaults and applies user options in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		zeroPadded: DefaultZeroPadded,
		buf:        nil, // resolved per-constructor via resolveBuffer
		bandValue:  DefaultBandValue,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// resolveBuffer returns a ready storage of exactly size cells: a nil choice
// allocates a fresh exact float64 buffer, an unallocated one is allocated in
// place, and a pre-allocated one is adopted when its size matches.
func resolveBuffer(b buffer.Buffer, size int) (buffer.Buffer, error) {
	if b == nil {
		b = buffer.NewFloat()
	}
	if !b.IsAllocated() {
		if err := b.Allocate(size); err != nil {
			return nil, err
		}

		return b, nil
	}
	if b.Size() != size {
		return nil, fmt.Errorf("adopted buffer size %d, want %d: %w", b.Size(), size, ErrDimensionMismatch)
	}

	return b, nil
}
