// Package heightfield defines grids, fields, options and sentinel errors.
package heightfield

import (
	"context"
	"errors"
	"runtime"
)

// Sentinel errors for heightfield operations.
var (
	// ErrBadGrid indicates an unusable Grid (resolution < 2 or bad bounds).
	ErrBadGrid = errors.New("heightfield: invalid grid")
	// ErrNilFunc indicates a nil evaluator was passed to Sample.
	ErrNilFunc = errors.New("heightfield: evaluator is nil")
	// ErrOutOfRange indicates a column/row index outside the field.
	ErrOutOfRange = errors.New("heightfield: index out of range")
)

// MinSamples is the smallest per-axis resolution: both edges must be sampled.
const MinSamples = 2

// Grid is a rectangular sampling lattice. Samples include both edges, so
// column c maps to x = XMin + c·(XMax−XMin)/(Cols−1).
type Grid struct {
	XMin, XMax float64
	YMin, YMax float64
	Cols, Rows int
}

// DefaultGrid returns [−10,10]×[−10,10] sampled 64×64.
func DefaultGrid() Grid {
	return Grid{XMin: -10, XMax: 10, YMin: -10, YMax: 10, Cols: 64, Rows: 64}
}

// Point is one renderer vertex.
type Point struct {
	X, Y, Z float64
}

// Field is a sampled height field. Z is indexed Z[row][col]. Min and Max
// cover finite samples only; both are 0 when no sample is finite.
type Field struct {
	Grid     Grid
	Z        [][]float64
	Min, Max float64
}

// Option configures Sample.
type Option func(*sampleOptions)

// sampleOptions holds resolved Sample knobs.
type sampleOptions struct {
	ctx     context.Context
	workers int
}

// defaultSampleOptions: background context, one worker per CPU.
func defaultSampleOptions() sampleOptions {
	return sampleOptions{ctx: context.Background(), workers: runtime.GOMAXPROCS(0)}
}

// WithContext makes Sample stop between rows once ctx is done.
// A nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *sampleOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines sampling rows. n < 1 means 1.
func WithWorkers(n int) Option {
	return func(o *sampleOptions) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
