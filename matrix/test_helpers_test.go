// SPDX-License-Identifier: MIT

// Package matrix_test: shared constructors for the test suite. Helpers fail
// the test immediately on construction errors so individual tests read as
// straight-line scenarios.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sigmat/matrix"
	"github.com/stretchr/testify/require"
)

// mustFull builds a Full matrix or fails the test.
func mustFull(tb testing.TB, rows, cols int, opts ...matrix.Option) *matrix.Full {
	tb.Helper()
	m, err := matrix.NewFull(rows, cols, opts...)
	require.NoError(tb, err)

	return m
}

// mustLoaded builds a Full matrix preloaded with row-major values.
func mustLoaded(tb testing.TB, rows, cols int, values []float64, opts ...matrix.Option) *matrix.Full {
	tb.Helper()
	m := mustFull(tb, rows, cols, opts...)
	require.NoError(tb, m.Load(values))

	return m
}

// mustSymmetric builds a Symmetric matrix or fails the test.
func mustSymmetric(tb testing.TB, n int, opts ...matrix.Option) *matrix.Symmetric {
	tb.Helper()
	m, err := matrix.NewSymmetric(n, opts...)
	require.NoError(tb, err)

	return m
}

// mustBand builds a SymmetricBand matrix or fails the test.
func mustBand(tb testing.TB, n, bandwidth int, opts ...matrix.Option) *matrix.SymmetricBand {
	tb.Helper()
	m, err := matrix.NewSymmetricBand(n, bandwidth, opts...)
	require.NoError(tb, err)

	return m
}

// mustSparse builds a map-backed Sparse matrix or fails the test.
func mustSparse(tb testing.TB, rows, cols int, opts ...matrix.Option) *matrix.Sparse {
	tb.Helper()
	m, err := matrix.NewSparse(rows, cols, opts...)
	require.NoError(tb, err)

	return m
}

// mustSparseRow builds a row-grouped sparse matrix or fails the test.
func mustSparseRow(tb testing.TB, rows, cols int, opts ...matrix.Option) *matrix.SparseRow {
	tb.Helper()
	m, err := matrix.NewSparseRow(rows, cols, opts...)
	require.NoError(tb, err)

	return m
}

// mustSparseCol builds a column-grouped sparse matrix or fails the test.
func mustSparseCol(tb testing.TB, rows, cols int, opts ...matrix.Option) *matrix.SparseCol {
	tb.Helper()
	m, err := matrix.NewSparseCol(rows, cols, opts...)
	require.NoError(tb, err)

	return m
}

// mustAt reads a cell or fails the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// fillRand fills every cell with deterministic pseudo-random values in [-1, 1].
func fillRand(tb testing.TB, m matrix.MutableMatrix, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}
