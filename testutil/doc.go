// Package testutil provides testing utilities for capped.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for property-style tests over capped
// numbers, strings and sequences.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Uint64()             // full-width value, including extremes
//	s := rng.UTF8String(16)       // 16 runes of 1 to 4 bytes each
//	xs := rng.Ints(8, 100)        // 8 values in [0, 100)
package testutil
