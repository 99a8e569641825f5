// Package heightfield samples a surface.EvalFunc over a rectangular grid,
// producing the height field a renderer turns into a mesh.
//
// What:
//
//   - Grid describes the sampled rectangle [XMin,XMax]×[YMin,YMax] and its
//     resolution (Cols×Rows samples, edges inclusive).
//   - Sample evaluates the function once per grid point, optionally fanning
//     rows out to several goroutines (WithWorkers) and honouring a context
//     (WithContext) between rows.
//   - Field stores Z[row][col] together with the finite Min/Max, and offers
//     At, Coord, Normalized and Points for renderers.
//
// Why:
//
//   - Evaluators are pure and re-entrant, so rows are independent and can be
//     computed in any order; results never depend on the worker count.
//
// Complexity:
//
//   - Sample:     O(Cols×Rows) evaluations, Memory: O(Cols×Rows).
//   - Normalized: O(Cols×Rows).
//   - Points:     O(Cols×Rows).
//
// Errors:
//
//   - ErrBadGrid:    fewer than 2 samples per axis, inverted or non-finite bounds.
//   - ErrNilFunc:    nil evaluator.
//   - ErrOutOfRange: At/Coord index outside the grid.
//   - context errors (Canceled/DeadlineExceeded) are wrapped and returned.
package heightfield
