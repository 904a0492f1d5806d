// SPDX-License-Identifier: MIT

// Package dnagen - RNG utilities shared by the generator and the mutator.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequences across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each Generator and Mutator owns one.
package dnagen

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// Stream identifiers keep the generator and the mutator on independent
// streams even when both are built from the same seed.
const (
	streamGenerate uint64 = iota + 1
	streamMutate
)

// rngFromSeed returns a deterministic *rand.Rand for (seed, stream).
// Policy: seed==0 ⇒ defaultSeed.
//
// Complexity: O(1).
func rngFromSeed(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// deriveSeed mixes a parent seed and a stream identifier (SplitMix64 finalizer).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// pick draws an index from the cumulative distribution cdf (last entry 1).
func pick(r *rand.Rand, cdf *[4]float64) int {
	u := r.Float64()
	for i, c := range cdf {
		if u < c {
			return i
		}
	}

	return len(cdf) - 1
}
