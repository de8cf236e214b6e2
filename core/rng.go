// Package core - deterministic RNG utilities shared by all engines.
//
// This file centralizes random generation for every stochastic rule in the
// colony engines (ant draws, teleports, pick-up/drop tests, placements).
//
// Goals:
//   - Determinism: same seed ⇒ identical assignment arrays across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - One stream per run: the colony owns one *rand.Rand and threads it through
//     every call site; ants never instantiate their own streams.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; give each worker its own seeded stream via NewRand.
package core

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// ShuffleInts performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleInts(a []int, rng *rand.Rand) {
	var n = len(a)
	if n <= 1 {
		return
	}
	var r = rng
	if r == nil {
		r = NewRand(0)
	}
	var (
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
