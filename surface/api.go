// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// api.go — the canonical registry and package-level shortcuts.
//
// Design contract:
//   • defaultRegistry is built once at package load and never mutated, so any
//     goroutine that can call into the package observes it fully initialised.
//   • Shortcuts delegate to Default(); they add no behaviour of their own.

package surface

import "math"

var defaultRegistry = mustRegistry(
	mountains(),
	sinCosSumWave(),
	sinCosProductWave(),
	sinProductWave(),
	saddle(),
	sphere(),
	torus(),
	wave(),
	diagonalWave(),
	interference(),
	gaussian(),
	perlinTerrain(),
	randomTerrain(),
)

func mustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}

	return r
}

// Default returns the canonical registry of built-in families.
func Default() *Registry { return defaultRegistry }

// Keys lists the built-in keys in declaration order.
func Keys() []string { return defaultRegistry.Keys() }

// Lookup returns the built-in entry registered under key.
func Lookup(key string) (Entry, error) { return defaultRegistry.Get(key) }

// Descriptors returns the descriptors of a built-in family.
func Descriptors(key string) ([]Descriptor, error) { return defaultRegistry.Descriptors(key) }

// Build returns an evaluator for a built-in family.
func Build(key string, params Params, opts ...Option) (EvalFunc, error) {
	return defaultRegistry.Build(key, params, opts...)
}

// Evaluate calls fn at (x, y). A nil fn yields NaN rather than a panic.
func Evaluate(fn EvalFunc, x, y float64) float64 {
	if fn == nil {
		return math.NaN()
	}

	return fn(x, y)
}
