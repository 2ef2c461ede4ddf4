// SPDX-License-Identifier: MIT
// Package: sigmat/window
//
// window.go - symmetric analysis window generators and frame application.
//
// Purpose:
//   - Produce standard window shapes as []float64 for spectral analysis and
//     filter design.
//   - Apply a window to a sample frame, out of place or in place.
//
// Contract:
//   - Every generator returns a slice of exactly n samples or an error.
//   - n == 1 degenerates to [1] for every shape (the limit of the formulas).
//   - O(n) time, O(n) memory. No panics. No global state.
//
// Model (generalized cosine family, 0 <= i < n, N = n-1):
//   - w[i] = a0 − a1·cos(τ·i/N) + a2·cos(2τ·i/N)     (τ = 2π)
//   - Hann (0.5, 0.5, 0), Hamming (0.54, 0.46, 0), Blackman (0.42, 0.5, 0.08).
//   - Gaussian: w[i] = exp(−½·((i − N/2) / (σ·N/2))²), σ relative half-width.

package window

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Generalized-cosine coefficients.
const (
	hannA0     = 0.50
	hannA1     = 0.50
	hammingA0  = 0.54
	hammingA1  = 0.46
	blackmanA0 = 0.42
	blackmanA1 = 0.50
	blackmanA2 = 0.08
)

// tau is 2π, precomputed for the phase terms.
const tau = 2.0 * math.Pi

// Operation tags for wrapped errors.
const (
	opRectangular = "Rectangular"
	opHann        = "Hann"
	opHamming     = "Hamming"
	opBlackman    = "Blackman"
	opGaussian    = "Gaussian"
	opApply       = "Apply"
	opApplyTo     = "ApplyTo"
)

// cosineWindow evaluates the three-term generalized cosine family.
func cosineWindow(op string, n int, a0, a1, a2 float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(n=%d): %w", op, n, ErrInvalidLength)
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1

		return out, nil
	}
	var (
		phase float64
		den   = float64(n - 1)
		i     int
	)
	for i = 0; i < n; i++ {
		phase = tau * float64(i) / den
		out[i] = a0 - a1*math.Cos(phase) + a2*math.Cos(2*phase)
	}

	return out, nil
}

// Rectangular returns n ones: the identity window.
func Rectangular(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(n=%d): %w", opRectangular, n, ErrInvalidLength)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = 1
	}

	return out, nil
}

// Hann returns the raised-cosine window: zero at both edges, 1 at the center.
func Hann(n int) ([]float64, error) {
	return cosineWindow(opHann, n, hannA0, hannA1, 0)
}

// Hamming returns the Hamming window: raised edges (0.08) suppress the first
// sidelobe harder than Hann.
func Hamming(n int) ([]float64, error) {
	return cosineWindow(opHamming, n, hammingA0, hammingA1, 0)
}

// Blackman returns the three-term Blackman window with the classic
// (0.42, 0.5, 0.08) coefficients.
func Blackman(n int) ([]float64, error) {
	return cosineWindow(opBlackman, n, blackmanA0, blackmanA1, blackmanA2)
}

// Gaussian returns a Gaussian window with relative width sigma: the standard
// deviation is sigma times the half-width (n−1)/2. Typical sigma is 0.4;
// sigma must be positive.
func Gaussian(n int, sigma float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(n=%d): %w", opGaussian, n, ErrInvalidLength)
	}
	if sigma <= 0 || math.IsNaN(sigma) {
		return nil, fmt.Errorf("%s(sigma=%g): %w", opGaussian, sigma, ErrInvalidSigma)
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1

		return out, nil
	}
	var (
		half = float64(n-1) / 2
		z    float64
		i    int
	)
	for i = 0; i < n; i++ {
		z = (float64(i) - half) / (sigma * half)
		out[i] = math.Exp(-0.5 * z * z)
	}

	return out, nil
}

// Apply returns a fresh frame w·x (elementwise). The inputs are not modified.
func Apply(w, x []float64) ([]float64, error) {
	if len(w) != len(x) {
		return nil, fmt.Errorf("%s(len(w)=%d, len(x)=%d): %w", opApply, len(w), len(x), ErrLengthMismatch)
	}
	out := make([]float64, len(x))
	floats.MulTo(out, w, x)

	return out, nil
}

// ApplyTo scales dst by w in place (dst[i] *= w[i]).
func ApplyTo(dst, w []float64) error {
	if len(dst) != len(w) {
		return fmt.Errorf("%s(len(dst)=%d, len(w)=%d): %w", opApplyTo, len(dst), len(w), ErrLengthMismatch)
	}
	floats.Mul(dst, w)

	return nil
}
