// SPDX-License-Identifier: MIT
// Package: sigmat/distance
//
// aggregate.go - scalar summaries of one sequence.
//
// Contract:
//   - Every aggregate requires a non-empty input and returns ErrEmptyInput
//     otherwise.
//   - Variance is the unbiased sample variance; a single observation yields 0.

package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Operation tags for wrapped errors.
const (
	opMean     = "Mean"
	opVariance = "Variance"
	opRMS      = "RMS"
	opEnergy   = "Energy"
)

// validateSeq rejects empty inputs.
func validateSeq(op string, x []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyInput)
	}

	return nil
}

// Mean returns the arithmetic mean of x.
func Mean(x []float64) (float64, error) {
	if err := validateSeq(opMean, x); err != nil {
		return 0, err
	}

	return stat.Mean(x, nil), nil
}

// Variance returns the unbiased sample variance of x.
func Variance(x []float64) (float64, error) {
	if err := validateSeq(opVariance, x); err != nil {
		return 0, err
	}
	if len(x) == 1 {
		return 0, nil
	}

	return stat.Variance(x, nil), nil
}

// RMS returns the root mean square of x.
func RMS(x []float64) (float64, error) {
	if err := validateSeq(opRMS, x); err != nil {
		return 0, err
	}

	return math.Sqrt(floats.Dot(x, x) / float64(len(x))), nil
}

// Energy returns the sum of squares of x.
func Energy(x []float64) (float64, error) {
	if err := validateSeq(opEnergy, x); err != nil {
		return 0, err
	}

	return floats.Dot(x, x), nil
}
