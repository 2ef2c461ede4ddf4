// SPDX-License-Identifier: MIT
// Package: sigmat/distance
//
// metrics.go - pointwise distance metrics over equal-length sequences.
//
// Purpose:
//   - Norm-family metrics (Euclidean, Manhattan, Chebyshev, Minkowski) as
//     thin fronts over gonum's floats.Distance kernel.
//   - Cosine distance (1 − cosine similarity) with explicit zero-vector
//     rejection.
//   - BetweenRows lifts any Metric onto two rows of a matrix.Matrix.
//
// Contract:
//   - Inputs must be non-empty and of equal length; violations surface as
//     ErrEmptyInput / ErrLengthMismatch, never as panics.
//   - O(n) time, O(1) extra memory for every metric; BetweenRows adds the
//     two extracted row vectors.

package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sigmat/matrix"
)

// Operation tags for wrapped errors.
const (
	opEuclidean        = "Euclidean"
	opSquaredEuclidean = "SquaredEuclidean"
	opManhattan        = "Manhattan"
	opChebyshev        = "Chebyshev"
	opMinkowski        = "Minkowski"
	opCosine           = "Cosine"
	opBetweenRows      = "BetweenRows"
)

// Metric is a pointwise distance over two equal-length sequences, as
// accepted by BetweenRows.
type Metric func(a, b []float64) (float64, error)

// validateSeqPair rejects empty inputs and length disagreement.
func validateSeqPair(op string, a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("%s(len(a)=%d, len(b)=%d): %w", op, len(a), len(b), ErrEmptyInput)
	}
	if len(a) != len(b) {
		return fmt.Errorf("%s(len(a)=%d, len(b)=%d): %w", op, len(a), len(b), ErrLengthMismatch)
	}

	return nil
}

// Euclidean returns the L2 distance between a and b.
func Euclidean(a, b []float64) (float64, error) {
	if err := validateSeqPair(opEuclidean, a, b); err != nil {
		return 0, err
	}

	return floats.Distance(a, b, 2), nil
}

// SquaredEuclidean returns the squared L2 distance, avoiding the final root
// where only relative ordering matters.
func SquaredEuclidean(a, b []float64) (float64, error) {
	if err := validateSeqPair(opSquaredEuclidean, a, b); err != nil {
		return 0, err
	}
	d := floats.Distance(a, b, 2)

	return d * d, nil
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b []float64) (float64, error) {
	if err := validateSeqPair(opManhattan, a, b); err != nil {
		return 0, err
	}

	return floats.Distance(a, b, 1), nil
}

// Chebyshev returns the L∞ distance: the largest absolute coordinate
// difference.
func Chebyshev(a, b []float64) (float64, error) {
	if err := validateSeqPair(opChebyshev, a, b); err != nil {
		return 0, err
	}

	return floats.Distance(a, b, math.Inf(1)), nil
}

// Minkowski returns the Lp distance for order p >= 1.
func Minkowski(a, b []float64, p float64) (float64, error) {
	if err := validateSeqPair(opMinkowski, a, b); err != nil {
		return 0, err
	}
	if p < 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("%s(p=%g): %w", opMinkowski, p, ErrBadOrder)
	}

	return floats.Distance(a, b, p), nil
}

// Cosine returns 1 − cos(a, b): 0 for parallel vectors, 1 for orthogonal,
// 2 for opposite. Either vector having zero magnitude fails with
// ErrZeroVector. Rounding may leave results a few ulp outside [0, 2].
func Cosine(a, b []float64) (float64, error) {
	if err := validateSeqPair(opCosine, a, b); err != nil {
		return 0, err
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0, fmt.Errorf("%s: %w", opCosine, ErrZeroVector)
	}

	return 1 - floats.Dot(a, b)/(na*nb), nil
}

// BetweenRows applies metric to rows i and j of m. Row extraction follows
// m's zero-padding contract, so out-of-shape rows on a padded matrix compare
// as zero vectors.
func BetweenRows(m matrix.Matrix, i, j int, metric Metric) (float64, error) {
	if metric == nil {
		return 0, fmt.Errorf("%s: metric must be non-nil: %w", opBetweenRows, ErrBadInput)
	}
	ri, err := matrix.Row(m, i)
	if err != nil {
		return 0, fmt.Errorf("%s(i=%d): %w", opBetweenRows, i, err)
	}
	rj, err := matrix.Row(m, j)
	if err != nil {
		return 0, fmt.Errorf("%s(j=%d): %w", opBetweenRows, j, err)
	}

	return metric(ri, rj)
}
