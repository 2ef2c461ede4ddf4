// SPDX-License-Identifier: MIT
// Package: sigmat/distance
//
// warp.go - dynamic-time-warping distance with optional path recovery.
//
// Purpose:
//   - Align two sequences that drift in tempo and return the accumulated
//     pointwise cost along the optimal monotone alignment.
//
// Model (DP over (n+1)x(m+1), 1-based over the sequences):
//   - D[0][0] = 0; D[i][0] = D[0][j] = +Inf elsewhere on the border.
//   - D[i][j] = |a[i-1] − b[j-1]| + min(D[i-1][j] + penalty,
//     D[i][j-1] + penalty,
//     D[i-1][j-1])
//   - distance = D[n][m]. Cells with |i−j| beyond the band are +Inf.
//
// Memory modes:
//   - FullMatrix keeps all of D and supports path recovery. O(n·m) memory.
//   - TwoRows keeps the current and previous row. O(m) memory, no path.
//   - NoMemory keeps one row plus a diagonal carry. O(m) memory with half
//     the row storage of TwoRows, no path.
//
// Complexity:
//   - Time O(n·m) in every mode; the band does not shrink the asymptotics
//     but skips the cost evaluation outside it.

package distance

import (
	"fmt"
	"math"
)

// MemoryMode selects the DP storage strategy for Warp.
type MemoryMode int

const (
	// FullMatrix stores the whole DP table and enables path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows stores two DP rows; distance only.
	TwoRows

	// NoMemory stores a single DP row plus a diagonal carry; distance only.
	NoMemory
)

// Coord is one step of a warping path: indices into the first and second
// sequence respectively.
type Coord struct {
	I int
	J int
}

// UnlimitedWindow disables the Sakoe-Chiba band.
const UnlimitedWindow = -1

// Defaults applied by Warp before options run.
const (
	DefaultWindow       = UnlimitedWindow
	DefaultSlopePenalty = 0.0
	DefaultMemoryMode   = FullMatrix
)

// Panic message for the programmer-error path of WithSlopePenalty.
const panicSlopePenaltyNonFinite = "distance: WithSlopePenalty: penalty must be finite"

// warpConfig is the resolved option set for one Warp call.
type warpConfig struct {
	window  int
	penalty float64
	path    bool
	memory  MemoryMode
}

// WarpOption mutates the Warp configuration.
type WarpOption func(*warpConfig)

// WithWindow constrains the alignment to |i-j| <= w (Sakoe-Chiba band).
// w == UnlimitedWindow disables the band; w == 0 pins the alignment to the
// diagonal. Values below UnlimitedWindow fail Warp with ErrBadInput.
func WithWindow(w int) WarpOption {
	return func(c *warpConfig) { c.window = w }
}

// WithSlopePenalty adds a fixed cost to every non-diagonal step, biasing
// the alignment toward the diagonal. The penalty must be finite.
func WithSlopePenalty(p float64) WarpOption {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		panic(panicSlopePenaltyNonFinite)
	}

	return func(c *warpConfig) { c.penalty = p }
}

// WithPath requests recovery of the optimal warping path. Requires
// FullMatrix memory.
func WithPath() WarpOption {
	return func(c *warpConfig) { c.path = true }
}

// WithMemoryMode selects the DP storage strategy.
func WithMemoryMode(m MemoryMode) WarpOption {
	return func(c *warpConfig) { c.memory = m }
}

// gatherWarpOptions applies opts over the defaults.
func gatherWarpOptions(opts ...WarpOption) warpConfig {
	cfg := warpConfig{
		window:  DefaultWindow,
		penalty: DefaultSlopePenalty,
		path:    false,
		memory:  DefaultMemoryMode,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Warp returns the dynamic-time-warping distance between a and b, and the
// optimal warping path when WithPath is set. A band narrower than the
// length difference leaves the corner unreachable, yielding +Inf distance
// with no error.
func Warp(a, b []float64, opts ...WarpOption) (float64, []Coord, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, fmt.Errorf("Warp(len(a)=%d, len(b)=%d): %w", len(a), len(b), ErrEmptyInput)
	}
	cfg := gatherWarpOptions(opts...)
	if cfg.window < UnlimitedWindow {
		return 0, nil, fmt.Errorf("Warp(window=%d): %w", cfg.window, ErrBadInput)
	}
	if cfg.memory < FullMatrix || cfg.memory > NoMemory {
		return 0, nil, fmt.Errorf("Warp(memory=%d): %w", cfg.memory, ErrBadInput)
	}
	if cfg.path && cfg.memory != FullMatrix {
		return 0, nil, fmt.Errorf("Warp: %w", ErrPathNeedsMatrix)
	}

	switch cfg.memory {
	case TwoRows:
		return warpTwoRows(a, b, cfg), nil, nil
	case NoMemory:
		return warpSingleRow(a, b, cfg), nil, nil
	default:
		dp := warpFull(a, b, cfg)
		dist := dp[len(a)][len(b)]
		if !cfg.path {
			return dist, nil, nil
		}

		return dist, backtrack(dp, cfg.penalty), nil
	}
}

// outsideBand reports whether DP cell (i, j) lies beyond the configured band.
func outsideBand(cfg warpConfig, i, j int) bool {
	if cfg.window == UnlimitedWindow {
		return false
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d > cfg.window
}

// warpFull fills and returns the whole DP table.
func warpFull(a, b []float64, cfg warpConfig) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	var i, j int
	for i = range dp {
		dp[i] = make([]float64, m+1)
	}
	for i = 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j = 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			if outsideBand(cfg, i, j) {
				dp[i][j] = inf

				continue
			}
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + min3(
				dp[i-1][j]+cfg.penalty,
				dp[i][j-1]+cfg.penalty,
				dp[i-1][j-1])
		}
	}

	return dp
}

// warpTwoRows computes the distance with two rolling DP rows.
func warpTwoRows(a, b []float64, cfg warpConfig) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	var i, j int
	for j = 1; j <= m; j++ {
		prev[j] = inf
	}

	for i = 1; i <= n; i++ {
		curr[0] = inf
		for j = 1; j <= m; j++ {
			if outsideBand(cfg, i, j) {
				curr[j] = inf

				continue
			}
			curr[j] = math.Abs(a[i-1]-b[j-1]) + min3(
				prev[j]+cfg.penalty,
				curr[j-1]+cfg.penalty,
				prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m] // the swap leaves the last filled row in prev
}

// warpSingleRow computes the distance in one DP row plus a diagonal carry.
func warpSingleRow(a, b []float64, cfg warpConfig) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	row := make([]float64, m+1)
	var (
		diag, tmp float64
		i, j      int
	)
	for j = 1; j <= m; j++ {
		row[j] = inf
	}

	for i = 1; i <= n; i++ {
		diag = row[0] // D[i-1][0]
		row[0] = inf  // D[i][0]
		for j = 1; j <= m; j++ {
			tmp = row[j] // D[i-1][j]
			if outsideBand(cfg, i, j) {
				row[j] = inf
			} else {
				row[j] = math.Abs(a[i-1]-b[j-1]) + min3(
					tmp+cfg.penalty,
					row[j-1]+cfg.penalty,
					diag)
			}
			diag = tmp
		}
	}

	return row[m]
}

// backtrack recovers the warping path from a filled DP table, preferring
// diagonal steps on ties.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)

	var diag, up, left float64
	for i > 1 || j > 1 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		diag = dp[i-1][j-1]
		up = dp[i-1][j] + penalty
		left = dp[i][j-1] + penalty
		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}
	path = append(path, Coord{I: 0, J: 0})

	// Reverse in place: the walk collected the path end-first.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// min3 returns the smallest of three values.
func min3(a, b, c float64) float64 {
	return min(a, min(b, c))
}
