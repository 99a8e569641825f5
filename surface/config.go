// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// config.go — build-time configuration and deterministic defaults.
//
// Defaults:
//   • rng = nil → stochastic entries draw from the global math/rand source.
//
// Deterministic entries ignore the configuration entirely.

package surface

import (
	"math/rand"
	"sync"
)

// buildConfig aggregates the knobs resolved from Options. Passed by value.
type buildConfig struct {
	rng *lockedRand // nil means "global source"
}

// lockedRand serialises draws so one *rand.Rand can back several evaluators
// that are sampled from different goroutines.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Float64()
}

// newBuildConfig applies opts in order; later options win.
func newBuildConfig(opts ...Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns the draw function handed to stochastic factories.
func (c buildConfig) source() Source {
	if c.rng == nil {
		return rand.Float64
	}

	return c.rng.Float64
}
