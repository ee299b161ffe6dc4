// Package testutil provides testing utilities for pointstore.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe random number generator and
// helpers for generating random points of either element type.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := testutil.UniformPoints[float32](rng, 100, 3) // uniform [0, 1)
//	point := testutil.UniformPoint[float64](rng, 3)
package testutil
