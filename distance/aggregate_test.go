// SPDX-License-Identifier: MIT

package distance_test

import (
	"testing"

	"github.com/katalvlaran/sigmat/distance"
	"github.com/stretchr/testify/assert"
)

// TestAggregates_EmptyInput ensures every aggregate rejects an empty
// sequence.
func TestAggregates_EmptyInput(t *testing.T) {
	aggregates := map[string]func([]float64) (float64, error){
		"mean":     distance.Mean,
		"variance": distance.Variance,
		"rms":      distance.RMS,
		"energy":   distance.Energy,
	}
	for name, agg := range aggregates {
		t.Run(name, func(t *testing.T) {
			_, err := agg(nil)
			assert.ErrorIs(t, err, distance.ErrEmptyInput, "nil input")
			_, err = agg([]float64{})
			assert.ErrorIs(t, err, distance.ErrEmptyInput, "empty input")
		})
	}
}

// TestMean verifies the arithmetic mean.
func TestMean(t *testing.T) {
	v, err := distance.Mean([]float64{1, 2, 3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 2.5, v)

	v, err = distance.Mean([]float64{-7})
	assert.NoError(t, err)
	assert.Equal(t, -7.0, v, "single sample is its own mean")
}

// TestVariance verifies the unbiased sample variance and the single-sample
// convention.
func TestVariance(t *testing.T) {
	v, err := distance.Variance([]float64{1, 2, 3, 4})
	assert.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, v, 1e-12, "sum of squared deviations over n-1")

	v, err = distance.Variance([]float64{2, 2, 2})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v, "constant sequence has no spread")

	v, err = distance.Variance([]float64{42})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v, "single sample reports zero spread")
}

// TestRMS verifies the root mean square.
func TestRMS(t *testing.T) {
	v, err := distance.RMS([]float64{2, 2, 2})
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v, "constant sequence")

	v, err = distance.RMS([]float64{3, 4})
	assert.NoError(t, err)
	assert.InDelta(t, 3.5355339059327378, v, 1e-12, "sqrt(25/2)")

	v, err = distance.RMS([]float64{-3, 3})
	assert.NoError(t, err)
	assert.Equal(t, 3.0, v, "sign does not matter")
}

// TestEnergy verifies the sum of squares.
func TestEnergy(t *testing.T) {
	v, err := distance.Energy([]float64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 14.0, v)

	v, err = distance.Energy([]float64{0, 0})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v, "silence carries no energy")
}
