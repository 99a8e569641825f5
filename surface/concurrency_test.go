// SPDX-License-Identifier: MIT
// Package surface_test exercises concurrent registry reads and evaluation.
// Run with -race.
package surface_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/zsurface/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentBuildAndEvaluate builds and samples every key from many
// goroutines at once.
func TestConcurrentBuildAndEvaluate(t *testing.T) {
	const workers = 16

	keys := surface.Keys()
	var wg sync.WaitGroup
	errs := make(chan error, workers*len(keys))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for _, key := range keys {
				fn, err := surface.Build(key, surface.Params{"amplitude": float64(w + 1)})
				if err != nil {
					errs <- err
					continue
				}
				for i := 0; i < 64; i++ {
					_ = fn(float64(i)*0.1, float64(w)*0.1)
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

// TestConcurrentSharedEvaluator shares one evaluator per key across goroutines
// and compares against a sequential reference.
func TestConcurrentSharedEvaluator(t *testing.T) {
	fn, err := surface.Build(surface.KeyMountains, nil)
	require.NoError(t, err)

	const n = 256
	want := make([]float64, n)
	for i := range want {
		want[i] = fn(float64(i)*0.05, -float64(i)*0.05)
	}

	got := make([]float64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = fn(float64(i)*0.05, -float64(i)*0.05)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, want, got)

	// A seeded stochastic evaluator must also survive concurrent draws.
	noisy, err := surface.Build(surface.KeyRandomTerrain, nil, surface.WithSeed(11))
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = noisy(float64(i), 0)
		}(i)
	}
	wg.Wait()
}
