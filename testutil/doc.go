// Package testutil provides reference implementations and random inputs for
// subint tests.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Patterns
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Pattern(16, 5) // 5 random bits set within the low 16
//
// # Reference Enumeration
//
//	want := testutil.BruteForce(10, 4) // every 10-bit value with 4 ones, ascending
//	n := testutil.Binomial(32, 16)
package testutil
