// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// binding.go — merging caller parameters with descriptor defaults.

package surface

import "math"

// Bind produces a complete Binding for descs: every declared name gets the
// caller's value when present, else its descriptor default. Names in params
// that are not declared are ignored, whatever their value.
//
// Errors:
//   - *ParamError (errors.Is → ErrInvalidParameter) for the first declared
//     name, in descriptor order, whose supplied value is NaN or ±Inf.
//
// params is never mutated; a nil params means "all defaults".
// Complexity: O(len(descs)) time and space.
func Bind(descs []Descriptor, params Params) (Binding, error) {
	b := make(Binding, len(descs))
	for _, d := range descs {
		v, ok := params[d.Name]
		if !ok {
			b[d.Name] = d.Default
			continue
		}
		if err := validateFinite(d.Name, v); err != nil {
			return nil, err
		}
		b[d.Name] = v
	}

	return b, nil
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Param: name, Value: v}
	}

	return nil
}
