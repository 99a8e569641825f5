// SPDX-License-Identifier: MIT
// Package: zsurface/heightfield
//
// sample.go — grid sampling on a bounded errgroup of row workers.

package heightfield

import (
	"fmt"
	"math"

	"github.com/katalvlaran/zsurface/surface"
	"golang.org/x/sync/errgroup"
)

// Sample evaluates fn at every point of g.
//
// Rows are scheduled on an errgroup limited to min(workers, Rows) concurrent
// goroutines; each row is written by exactly one goroutine, so no locking is
// needed. Cancellation is checked before a row is scheduled and again when it
// starts; on cancellation the partial field is discarded.
//
// Errors: ErrNilFunc, ErrBadGrid, or the wrapped context error.
// Complexity: O(Cols×Rows) evaluations, O(Cols×Rows) memory.
func Sample(fn surface.EvalFunc, g Grid, opts ...Option) (*Field, error) {
	if fn == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilFunc)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}

	o := defaultSampleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers > g.Rows {
		o.workers = g.Rows
	}

	z := make([][]float64, g.Rows)
	grp, ctx := errgroup.WithContext(o.ctx)
	grp.SetLimit(o.workers)

	var err error
	for r := 0; r < g.Rows; r++ {
		if err = ctx.Err(); err != nil {
			break
		}
		r := r
		grp.Go(func() error {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			line := make([]float64, g.Cols)
			y := g.Y(r)
			for c := range line {
				line[c] = fn(g.X(c), y)
			}
			z[r] = line
			return nil
		})
	}
	if werr := grp.Wait(); werr != nil {
		err = werr
	}
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}

	f := &Field{Grid: g, Z: z}
	f.Min, f.Max = finiteRange(z)

	return f, nil
}

// finiteRange returns min/max over finite values; (0,0) if there are none.
func finiteRange(z [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, line := range z {
		for _, v := range line {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 0
	}

	return lo, hi
}
