// SPDX-License-Identifier: MIT

// Package window generates analysis windows for spectral work as plain
// []float64 slices and applies them to sample frames.
//
// What this package offers:
//
//   - 🪟 Shapes: Rectangular, Hann, Hamming, Blackman, and Gaussian, all
//     symmetric and peaking at 1.
//   - ✖️ Application: Apply returns a fresh windowed frame, ApplyTo scales a
//     frame in place; both delegate the elementwise product to gonum.
//   - 🔒 Determinism: every generator is a pure O(n) function of its
//     arguments. No global state, no panics.
//
// Errors are sentinel values (ErrInvalidLength, ErrInvalidSigma,
// ErrLengthMismatch) tested with errors.Is.
package window
