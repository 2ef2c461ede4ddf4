// SPDX-License-Identifier: MIT

package buffer_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sigmat/buffer"
	"github.com/stretchr/testify/require"
)

// factories enumerates every buffer kind for shared lifecycle tests.
var factories = map[string]func() buffer.Buffer{
	"Float":        func() buffer.Buffer { return buffer.NewFloat() },
	"Rounded":      func() buffer.Buffer { return buffer.NewRounded() },
	"SignedByte":   func() buffer.Buffer { return buffer.NewSignedByte() },
	"UnsignedByte": func() buffer.Buffer { return buffer.NewUnsignedByte() },
	"Half":         func() buffer.Buffer { return buffer.NewHalf() },
	"Sparse":       func() buffer.Buffer { return buffer.NewSparse(0) },
}

// TestLifecycleUseBeforeAllocate verifies At/Set fail fast on a fresh buffer.
func TestLifecycleUseBeforeAllocate(t *testing.T) {
	for name, mk := range factories {
		t.Run(name, func(t *testing.T) {
			buf := mk()
			require.False(t, buf.IsAllocated(), "fresh buffer must report unallocated")
			require.Zero(t, buf.Size(), "fresh buffer must report size 0")

			_, err := buf.At(0) // read before allocation
			require.ErrorIs(t, err, buffer.ErrNotAllocated)

			err = buf.Set(0, 1) // write before allocation
			require.ErrorIs(t, err, buffer.ErrNotAllocated)
		})
	}
}

// TestLifecycleAllocateExactlyOnce verifies the one-shot allocation contract.
func TestLifecycleAllocateExactlyOnce(t *testing.T) {
	for name, mk := range factories {
		t.Run(name, func(t *testing.T) {
			buf := mk()
			require.NoError(t, buf.Allocate(8), "first Allocate must succeed")
			require.True(t, buf.IsAllocated())
			require.Equal(t, 8, buf.Size())

			err := buf.Allocate(8) // second allocation is forbidden
			require.ErrorIs(t, err, buffer.ErrAlreadyAllocated)
		})
	}
}

// TestLifecycleInvalidSize verifies non-positive sizes are rejected.
func TestLifecycleInvalidSize(t *testing.T) {
	for name, mk := range factories {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, mk().Allocate(0), buffer.ErrInvalidSize)
			require.ErrorIs(t, mk().Allocate(-3), buffer.ErrInvalidSize)
		})
	}
}

// TestLifecycleIndexOutOfRange verifies linear bounds checking on every kind.
func TestLifecycleIndexOutOfRange(t *testing.T) {
	for name, mk := range factories {
		t.Run(name, func(t *testing.T) {
			buf := mk()
			require.NoError(t, buf.Allocate(4))

			_, err := buf.At(-1)
			require.ErrorIs(t, err, buffer.ErrOutOfRange)
			_, err = buf.At(4)
			require.ErrorIs(t, err, buffer.ErrOutOfRange)
			require.ErrorIs(t, buf.Set(4, 1), buffer.ErrOutOfRange)
		})
	}
}

// TestFloatRoundTrip verifies exact storage semantics.
func TestFloatRoundTrip(t *testing.T) {
	buf := buffer.NewFloat()
	require.NoError(t, buf.Allocate(3))

	require.NoError(t, buf.Set(0, 1.25))
	require.NoError(t, buf.Set(2, -math.Pi))

	got, err := buf.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.25, got, "Float must store exactly")

	got, err = buf.At(2)
	require.NoError(t, err)
	require.Equal(t, -math.Pi, got)

	got, err = buf.At(1) // untouched cell reads zero
	require.NoError(t, err)
	require.Zero(t, got)
}

// TestFloatFromAdoptsSlice verifies NewFloatFrom shares the caller's storage.
func TestFloatFromAdoptsSlice(t *testing.T) {
	data := []float64{1, 2, 3}
	buf, err := buffer.NewFloatFrom(data)
	require.NoError(t, err)
	require.True(t, buf.IsAllocated(), "adopted buffer is allocated on construction")
	require.Equal(t, 3, buf.Size())

	// Mutation through the buffer is visible in the adopted slice.
	require.NoError(t, buf.Set(1, 42))
	require.Equal(t, 42.0, data[1])

	// Allocation after adoption is forbidden.
	require.ErrorIs(t, buf.Allocate(3), buffer.ErrAlreadyAllocated)

	// Empty slices cannot back a buffer.
	_, err = buffer.NewFloatFrom(nil)
	require.ErrorIs(t, err, buffer.ErrInvalidSize)
}

// TestFloatRaw verifies the flat accessor mirrors the stored cells.
func TestFloatRaw(t *testing.T) {
	buf := buffer.NewFloat()
	require.Nil(t, buf.Raw(), "Raw is nil before allocation")

	require.NoError(t, buf.Allocate(2))
	require.NoError(t, buf.Set(0, 7))
	require.Equal(t, []float64{7, 0}, buf.Raw())
}

// TestRoundedStoresWholeNumbers verifies rounding on write, ties away from zero.
func TestRoundedStoresWholeNumbers(t *testing.T) {
	buf := buffer.NewRounded()
	require.NoError(t, buf.Allocate(4))

	cases := []struct{ in, want float64 }{
		{2.4, 2},   // rounds down
		{2.5, 3},   // tie rounds away from zero
		{-2.5, -3}, // negative tie rounds away from zero
		{-0.4, 0},  // rounds toward zero
	}
	var got float64
	var err error
	for i, tc := range cases {
		require.NoError(t, buf.Set(i, tc.in))
		got, err = buf.At(i)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "Set(%g) must store %g", tc.in, tc.want)
	}
}

// TestHalfPrecision verifies half-precision storage keeps representable values
// exact and bounds the error on others.
func TestHalfPrecision(t *testing.T) {
	buf := buffer.NewHalf()
	require.NoError(t, buf.Allocate(2))

	require.NoError(t, buf.Set(0, 1.5)) // exactly representable in binary16
	got, err := buf.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.5, got)

	require.NoError(t, buf.Set(1, math.Pi))
	got, err = buf.At(1)
	require.NoError(t, err)
	require.InDelta(t, math.Pi, got, 1e-2, "half precision keeps ~3 decimal digits")
}
