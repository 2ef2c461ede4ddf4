// SPDX-License-Identifier: MIT

// Package matrix implements the numeric matrix capability layer: a read-only
// Matrix interface, a MutableMatrix extension, storage implementations over
// pluggable buffers (full, symmetric, symmetric band, three sparse layouts)
// and lazy composition views (add, subtract, scale, multiply, Hadamard,
// transpose, translate, enlarge).
//
// Reads follow the zero-padding contract: an out-of-range At on a zero-padded
// matrix yields 0, on a strict matrix it yields ErrOutOfRange. Writes out of
// range always fail, padded or not. Views hold operand references, never
// buffers: every read recomputes from current operand state, so mutations of
// an operand are visible through every view built on it.
//
// All types are single-goroutine values: no locking, no goroutines,
// deterministic results.
package matrix
