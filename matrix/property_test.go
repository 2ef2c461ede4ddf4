// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sigmat/matrix"
	"pgregory.net/rapid"
)

// TestPropFullRoundTrip checks that dense storage preserves arbitrary finite
// values at arbitrary in-range coordinates.
func TestPropFullRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 16).Draw(t, "rows")
		cols := rapid.IntRange(1, 16).Draw(t, "cols")
		i := rapid.IntRange(0, rows-1).Draw(t, "i")
		j := rapid.IntRange(0, cols-1).Draw(t, "j")
		v := rapid.Float64Range(-1e9, 1e9).Draw(t, "v")

		m, err := matrix.NewFull(rows, cols)
		if err != nil {
			t.Fatalf("NewFull(%d, %d): %v", rows, cols, err)
		}
		if err = m.Set(i, j, v); err != nil {
			t.Fatalf("Set(%d, %d, %g): %v", i, j, v, err)
		}
		got, err := m.At(i, j)
		if err != nil {
			t.Fatalf("At(%d, %d): %v", i, j, err)
		}
		if got != v {
			t.Fatalf("round-trip mismatch: stored %g, read %g", v, got)
		}
	})
}

// TestPropSymmetricMirror checks that any single write is visible at both
// coordinate orders.
func TestPropSymmetricMirror(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		i := rapid.IntRange(0, n-1).Draw(t, "i")
		j := rapid.IntRange(0, n-1).Draw(t, "j")
		v := rapid.Float64Range(-1e6, 1e6).Draw(t, "v")

		m, err := matrix.NewSymmetric(n)
		if err != nil {
			t.Fatalf("NewSymmetric(%d): %v", n, err)
		}
		if err = m.Set(i, j, v); err != nil {
			t.Fatalf("Set(%d, %d, %g): %v", i, j, v, err)
		}
		direct, err := m.At(i, j)
		if err != nil {
			t.Fatalf("At(%d, %d): %v", i, j, err)
		}
		mirror, err := m.At(j, i)
		if err != nil {
			t.Fatalf("At(%d, %d): %v", j, i, err)
		}
		if direct != v || mirror != v {
			t.Fatalf("mirror mismatch: wrote %g, read %g and %g", v, direct, mirror)
		}
	})
}

// TestPropSparseElision checks that a zero write always removes the entry a
// non-zero write created, at any coordinate.
func TestPropSparseElision(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 64).Draw(t, "rows")
		cols := rapid.IntRange(1, 64).Draw(t, "cols")
		i := rapid.IntRange(0, rows-1).Draw(t, "i")
		j := rapid.IntRange(0, cols-1).Draw(t, "j")
		v := rapid.Float64Range(-100, 100).Filter(func(x float64) bool { return x != 0 }).Draw(t, "v")

		m, err := matrix.NewSparse(rows, cols)
		if err != nil {
			t.Fatalf("NewSparse(%d, %d): %v", rows, cols, err)
		}
		if err = m.Set(i, j, v); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if m.Occupancy() != 1 {
			t.Fatalf("expected 1 stored cell, got %d", m.Occupancy())
		}
		if err = m.Set(i, j, 0); err != nil {
			t.Fatalf("Set zero: %v", err)
		}
		if m.Occupancy() != 0 {
			t.Fatalf("zero write must elide the cell, occupancy %d", m.Occupancy())
		}
	})
}

// TestPropTransposeInvolution checks that transposing twice restores the
// original matrix cell for cell.
func TestPropTransposeInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 10).Draw(t, "rows")
		cols := rapid.IntRange(1, 10).Draw(t, "cols")
		values := rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), rows*cols, rows*cols).Draw(t, "values")

		m, err := matrix.NewFull(rows, cols)
		if err != nil {
			t.Fatalf("NewFull: %v", err)
		}
		if err = m.Load(values); err != nil {
			t.Fatalf("Load: %v", err)
		}
		tr, err := matrix.Transpose(m)
		if err != nil {
			t.Fatalf("Transpose: %v", err)
		}
		back, err := matrix.Transpose(tr)
		if err != nil {
			t.Fatalf("Transpose twice: %v", err)
		}
		if !matrix.Equal(m, back) {
			t.Fatalf("double transpose must restore the original")
		}
	})
}

// TestPropAddCommutes checks elementwise addition is order-independent on
// same-shape operands.
func TestPropAddCommutes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 8).Draw(t, "rows")
		cols := rapid.IntRange(1, 8).Draw(t, "cols")
		av := rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), rows*cols, rows*cols).Draw(t, "av")
		bv := rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), rows*cols, rows*cols).Draw(t, "bv")

		a, err := matrix.NewFull(rows, cols)
		if err != nil {
			t.Fatalf("NewFull a: %v", err)
		}
		b, err := matrix.NewFull(rows, cols)
		if err != nil {
			t.Fatalf("NewFull b: %v", err)
		}
		if err = a.Load(av); err != nil {
			t.Fatalf("Load a: %v", err)
		}
		if err = b.Load(bv); err != nil {
			t.Fatalf("Load b: %v", err)
		}
		ab, err := matrix.Add(a, b)
		if err != nil {
			t.Fatalf("Add(a, b): %v", err)
		}
		ba, err := matrix.Add(b, a)
		if err != nil {
			t.Fatalf("Add(b, a): %v", err)
		}
		if !matrix.Equal(ab, ba) {
			t.Fatalf("a+b must equal b+a cell for cell")
		}
	})
}

// TestPropTranslateRoundTrip checks that shifting out and back crops to the
// original matrix for non-negative shifts.
func TestPropTranslateRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 8).Draw(t, "rows")
		cols := rapid.IntRange(1, 8).Draw(t, "cols")
		dr := rapid.IntRange(0, 6).Draw(t, "dr")
		dc := rapid.IntRange(0, 6).Draw(t, "dc")
		values := rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), rows*cols, rows*cols).Draw(t, "values")

		m, err := matrix.NewFull(rows, cols, matrix.WithZeroPadding())
		if err != nil {
			t.Fatalf("NewFull: %v", err)
		}
		if err = m.Load(values); err != nil {
			t.Fatalf("Load: %v", err)
		}
		out, err := matrix.Translate(m, dr, dc)
		if err != nil {
			t.Fatalf("Translate out: %v", err)
		}
		back, err := matrix.Translate(out, -dr, -dc)
		if err != nil {
			t.Fatalf("Translate back: %v", err)
		}
		if !matrix.Equal(m, back) {
			t.Fatalf("shift out and back must restore the original")
		}
	})
}
