package heightfield

import (
	"fmt"
	"math"
)

// At returns the sampled height at (col,row).
func (f *Field) At(col, row int) (float64, error) {
	if !f.Grid.InBounds(col, row) {
		return 0, fmt.Errorf("At(%d,%d): %w", col, row, ErrOutOfRange)
	}

	return f.Z[row][col], nil
}

// Coord returns the (x, y) world coordinate of (col,row).
func (f *Field) Coord(col, row int) (x, y float64, err error) {
	if !f.Grid.InBounds(col, row) {
		return 0, 0, fmt.Errorf("Coord(%d,%d): %w", col, row, ErrOutOfRange)
	}

	return f.Grid.X(col), f.Grid.Y(row), nil
}

// Normalized returns a copy with finite heights mapped linearly into [0,1].
// A flat field maps to all zeros; non-finite samples are copied unchanged.
func (f *Field) Normalized() *Field {
	span := f.Max - f.Min
	out := &Field{Grid: f.Grid, Z: make([][]float64, len(f.Z))}
	for r, line := range f.Z {
		nl := make([]float64, len(line))
		for c, v := range line {
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				nl[c] = v
			case span == 0:
				nl[c] = 0
			default:
				nl[c] = (v - f.Min) / span
			}
		}
		out.Z[r] = nl
	}
	out.Min, out.Max = finiteRange(out.Z)

	return out
}

// Points flattens the field into renderer vertices, row-major.
func (f *Field) Points() []Point {
	pts := make([]Point, 0, f.Grid.Cols*f.Grid.Rows)
	for r, line := range f.Z {
		y := f.Grid.Y(r)
		for c, v := range line {
			pts = append(pts, Point{X: f.Grid.X(c), Y: y, Z: v})
		}
	}

	return pts
}
