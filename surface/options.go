// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Options only affect entries whose Deterministic() is false.

package surface

import "math/rand"

// Option customises a Build call.
type Option func(*buildConfig)

// WithSeed makes stochastic evaluators reproducible: the same seed, the same
// sampling order and the same binding give the same heights.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		c.rng = &lockedRand{r: rand.New(rand.NewSource(seed))}
	}
}

// WithRand supplies an explicit RNG for stochastic evaluators. Draws are
// serialised internally, so r must not be used elsewhere concurrently.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("surface: WithRand(nil)")
	}
	lr := &lockedRand{r: r}

	return func(c *buildConfig) {
		c.rng = lr
	}
}
