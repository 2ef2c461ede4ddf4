// SPDX-License-Identifier: MIT

// Package buffer provides linear numeric storage decoupled from matrix shape.
//
// A Buffer is a one-dimensional float64 container with a one-shot allocation
// lifecycle: Allocate is called exactly once before any At/Set; using a buffer
// before allocation, or allocating twice, fails fast with a sentinel error.
//
// Implementations trade precision for memory:
//
//	Float        — exact float64 storage (optionally adopting a caller slice)
//	Rounded      — rounds every stored value to the nearest whole number
//	SignedByte   — quantizes [-1, 1] to 8 signed bits (round-trip within 1/127)
//	UnsignedByte — quantizes [0, 1] to 8 unsigned bits
//	Half         — IEEE 754 half-precision storage
//	Sparse       — map-backed storage with a default value for absent cells
//
// All buffers are single-goroutine values: no locking, no goroutines.
package buffer
