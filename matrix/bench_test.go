// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for storage access paths, lazy
// view traversal, and reductions, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sigmat/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkV []float64
	sinkM matrix.Matrix
)

func BenchmarkFullAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustFull(b, n, n)
			fillRand(b, m, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.At(i%n, (i*7+3)%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkFullSet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustFull(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := m.Set(i%n, (i*13+1)%n, float64(i)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSymmetricAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustSymmetric(b, n)
			fillRand(b, m, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.At(i%n, (i*3+5)%n) // half the reads hit the mirrored triangle
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkSparseSet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustSparse(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Every other write is zero, alternating insert and elide.
				if err := m.Set(i%n, (i*11+2)%n, float64(i%2)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAddViewTraversal(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustFull(b, n, n)
			y := mustFull(b, n, n)
			fillRand(b, x, 1337)
			fillRand(b, y, 4242)
			sum, err := matrix.Add(x, y)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				total, err := matrix.Sum(sum) // full recompute through the view
				if err != nil {
					b.Fatal(err)
				}
				sinkF = total
			}
		})
	}
}

func BenchmarkMulViewAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 96, 128} { // O(n) per cell keeps larger orders out
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustFull(b, n, n)
			y := mustFull(b, n, n)
			fillRand(b, x, 101)
			fillRand(b, y, 202)
			prod, err := matrix.Mul(x, y)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := prod.At(i%n, (i*5+1)%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkMaterializeAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustFull(b, n, n)
			y := mustFull(b, n, n)
			fillRand(b, x, 11)
			fillRand(b, y, 22)
			sum, err := matrix.Add(x, y)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				snap, err := matrix.Materialize(sum)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = snap
			}
		})
	}
}

func BenchmarkSumFlatBuffer(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustFull(b, n, n)
			fillRand(b, m, 12)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				total, err := matrix.Sum(m) // flat Float buffer path
				if err != nil {
					b.Fatal(err)
				}
				sinkF = total
			}
		})
	}
}

func BenchmarkSumGeneric(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustFull(b, n, n)
			fillRand(b, m, 12)
			sc, err := matrix.Scale(m, 1) // forces the per-cell path
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				total, err := matrix.Sum(sc)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = total
			}
		})
	}
}

func BenchmarkRowSumsSparse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustSparseRow(b, n, n)
			for i := 0; i < n; i++ {
				if err := m.Set(i, i, float64(i+1)); err != nil { // diagonal occupancy only
					b.Fatal(err)
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sums, err := matrix.RowSums(m) // proportional to stored entries
				if err != nil {
					b.Fatal(err)
				}
				sinkV = sums
			}
		})
	}
}
