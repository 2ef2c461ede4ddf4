// SPDX-License-Identifier: MIT
// Package: sigmat/matrix
//
// compare.go - equality and hashing over the Matrix interface.
//
// Purpose:
//   - Equal/EqualApprox compare shape first, then every cell through At; the
//     comparison never fails, it reports false on any mismatch or unreadable
//     cell.
//   - Hash digests the shape plus a bounded diagonal sample, so hashing stays
//     cheap on huge matrices while Equal matrices always hash equal.

package matrix

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// hashDiagonalSpan caps how many leading diagonal cells feed the hash.
const hashDiagonalSpan = 100

// Equal reports whether a and b have identical shape and cells. It never
// fails: nil operands, shape mismatch or an unreadable cell all report false.
// The element comparison is exact; use EqualApprox for tolerance.
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	var (
		av, bv float64
		i, j   int
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports whether a and b have identical shape and cells within
// an absolute tolerance eps per cell. Negative eps always reports false.
func EqualApprox(a, b Matrix, eps float64) bool {
	if eps < 0 || a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	var (
		av, bv float64
		i, j   int
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if !scalar.EqualWithinAbs(av, bv, eps) {
				return false
			}
		}
	}

	return true
}

// Hash returns an FNV-1a digest of m's shape and its leading diagonal (at
// most hashDiagonalSpan cells). Matrices equal under Equal hash equal; the
// converse does not hold. Unreadable diagonal cells contribute zero so Hash
// never fails; nil hashes to 0.
func Hash(m Matrix) uint64 {
	if m == nil {
		return 0
	}
	h := fnv.New64a()
	var scratch [8]byte

	binary.LittleEndian.PutUint64(scratch[:], uint64(m.Rows()))
	_, _ = h.Write(scratch[:])
	binary.LittleEndian.PutUint64(scratch[:], uint64(m.Cols()))
	_, _ = h.Write(scratch[:])

	span := min(hashDiagonalSpan, min(m.Rows(), m.Cols()))
	var (
		v   float64
		d   int
		err error
	)
	for d = 0; d < span; d++ {
		if v, err = m.At(d, d); err != nil {
			v = 0
		}
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
		_, _ = h.Write(scratch[:])
	}

	return h.Sum64()
}
