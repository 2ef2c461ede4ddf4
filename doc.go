// SPDX-License-Identifier: MIT

// Package sigmat is an in-memory numeric matrix layer for signal-processing
// pipelines — storage strategies, lazy algebra views, and the sequence helpers
// that surround them.
//
// 🚀 What is sigmat?
//
//	A small, deterministic library that brings together:
//		• Backing buffers: dense, rounded, quantized 8-bit, half-precision, sparse
//		• Storage matrices: full, symmetric, symmetric band, three sparse layouts
//		• Lazy views: add, subtract, scale, multiply, Hadamard, transpose,
//		  translate, enlarge — recomputed on access, never materialized
//		• Sequence helpers: window functions, distances & aggregates, DTW
//
// ✨ Why choose sigmat?
//
//   - Predictable – single-goroutine semantics, no locks, no hidden state
//   - Honest errors – sentinel errors matched with errors.Is, no panics
//   - Pluggable storage – swap a matrix's buffer without touching call sites
//   - Interoperable – adapters to gonum/mat for decompositions and beyond
//
// Under the hood, everything is organized under four subpackages:
//
//	buffer/   — linear numeric storage with one-shot allocation
//	matrix/   — Matrix/MutableMatrix capability layer, views, reductions
//	window/   — analysis windows (Hann, Hamming, Blackman, Gaussian)
//	distance/ — distances, aggregates and dynamic time warping
//
// Quick ASCII example:
//
//	    [1 2]      [1 3]
//	    [3 4]  T→  [2 4]
//
//	a 2×2 full matrix and its lazy transpose view.
//
//	go get github.com/katalvlaran/sigmat
package sigmat
