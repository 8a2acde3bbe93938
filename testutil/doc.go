// Package testutil provides testing utilities for runemap.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for code point workloads and a brute-force
// reference map used as ground truth.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	c := rng.CodePointIn(0, 0x2FF)
//	lo, hi := rng.RangeIn(0, 0x2FF, 32)
//	v := values[rng.Zipf(len(values), 1.5)]
//
// # Ground Truth
//
//	ref := testutil.NewReference[string]()
//	ref.SetRange(lo, hi, v)
//	want := ref.CodePoints(v)
package testutil
