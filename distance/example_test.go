// SPDX-License-Identifier: MIT

package distance_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sigmat/distance"
	"github.com/katalvlaran/sigmat/matrix"
)

// Warp aligns sequences of unequal length; a perfect alignment costs zero
// and the path lists the matched index pairs.
func ExampleWarp() {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}

	dist, path, _ := distance.Warp(a, b, distance.WithPath())
	fmt.Println(dist)
	fmt.Println(path)
	// Output:
	// 0
	// [{0 0} {1 1} {1 2} {2 3}]
}

// A Sakoe-Chiba window of zero admits only the diagonal, so sequences of
// different lengths cannot be aligned at all.
func ExampleWarp_window() {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3, 4}

	dist, _, _ := distance.Warp(a, b, distance.WithWindow(0))
	fmt.Println(math.IsInf(dist, 1))
	// Output: true
}

func ExampleEuclidean() {
	d, _ := distance.Euclidean([]float64{0, 0}, []float64{3, 4})
	fmt.Println(d)
	// Output: 5
}

// Cosine distance ignores magnitude: orthogonal vectors are maximally far
// apart no matter how long they are.
func ExampleCosine() {
	d, _ := distance.Cosine([]float64{5, 0}, []float64{0, 3})
	fmt.Println(d)
	// Output: 1
}

// BetweenRows compares two rows of a matrix without copying them out first.
func ExampleBetweenRows() {
	m, _ := matrix.NewFull(2, 2)
	_ = m.Load([]float64{0, 0, 3, 4})

	d, _ := distance.BetweenRows(m, 0, 1, distance.Euclidean)
	fmt.Println(d)
	// Output: 5
}
