// SPDX-License-Identifier: MIT

// Package distance measures similarity between numeric sequences.
//
// What this package offers:
//
//   - 📏 Pointwise metrics: Euclidean, SquaredEuclidean, Manhattan,
//     Chebyshev, Minkowski, and Cosine over equal-length []float64.
//   - 📊 Aggregates: Mean, Variance, RMS, and Energy of a single sequence.
//   - 🌀 Warp: dynamic-time-warping distance for sequences that drift in
//     time or speed, with a Sakoe-Chiba band, slope penalty, selectable
//     memory modes, and optional warping-path recovery.
//   - 🔗 BetweenRows: apply any metric to two rows of a matrix.Matrix.
//
// Norm-based metrics delegate to gonum's floats kernels; aggregates build on
// gonum/stat. Errors are sentinel values tested with errors.Is; pointwise
// metrics require equal-length, non-empty inputs.
package distance
