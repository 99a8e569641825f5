package heightfield

import (
	"fmt"
	"math"
)

// Validate reports ErrBadGrid for a resolution below MinSamples, non-finite
// bounds or spans, or bounds that are inverted or empty.
func (g Grid) Validate() error {
	if g.Cols < MinSamples || g.Rows < MinSamples {
		return fmt.Errorf("Validate: need ≥ %d samples per axis, got %d×%d: %w", MinSamples, g.Cols, g.Rows, ErrBadGrid)
	}
	for _, v := range [...]float64{g.XMin, g.XMax, g.YMin, g.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("Validate: non-finite bound %v: %w", v, ErrBadGrid)
		}
	}
	if g.XMin >= g.XMax || g.YMin >= g.YMax {
		return fmt.Errorf("Validate: bounds [%g,%g]×[%g,%g] are empty or inverted: %w",
			g.XMin, g.XMax, g.YMin, g.YMax, ErrBadGrid)
	}
	if math.IsInf(g.XMax-g.XMin, 0) || math.IsInf(g.YMax-g.YMin, 0) {
		return fmt.Errorf("Validate: span of [%g,%g]×[%g,%g] overflows: %w",
			g.XMin, g.XMax, g.YMin, g.YMax, ErrBadGrid)
	}

	return nil
}

// X returns the x coordinate of column c. No bounds check.
func (g Grid) X(c int) float64 {
	return g.XMin + float64(c)*(g.XMax-g.XMin)/float64(g.Cols-1)
}

// Y returns the y coordinate of row r. No bounds check.
func (g Grid) Y(r int) float64 {
	return g.YMin + float64(r)*(g.YMax-g.YMin)/float64(g.Rows-1)
}

// InBounds reports whether (col,row) lies inside the grid.
func (g Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}
