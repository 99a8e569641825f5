// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// errors.go — sentinel errors for the surface package.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); never compare strings.
//   • Context is attached with %w at the call site ("Build(\"torus\"): ...").
//   • Invalid parameter values additionally surface as *ParamError so the
//     offending name is available through errors.As.
//   • Nothing here panics at runtime; Define* and WithRand(nil) panic on
//     programmer errors only.

package surface

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotFound indicates that the requested registry key does not exist.
// Retrying with the same key is deterministic and will not succeed.
var ErrNotFound = errors.New("surface: function not found")

// ErrInvalidParameter indicates that a supplied parameter value is NaN or ±Inf.
var ErrInvalidParameter = errors.New("surface: invalid parameter")

// ErrDuplicateKey indicates that two entries passed to NewRegistry share a key.
var ErrDuplicateKey = errors.New("surface: duplicate key")

// ErrEmptyKey indicates that an entry passed to NewRegistry has no key.
var ErrEmptyKey = errors.New("surface: empty key")

// ParamError reports a rejected parameter value. It unwraps to
// ErrInvalidParameter.
type ParamError struct {
	Key   string  // registry key, empty when produced by Bind directly
	Param string  // offending descriptor name
	Value float64 // the rejected value
}

// Error implements error.
func (e *ParamError) Error() string {
	v := strconv.FormatFloat(e.Value, 'g', -1, 64)
	if e.Key == "" {
		return fmt.Sprintf("%v: %q = %s", ErrInvalidParameter, e.Param, v)
	}

	return fmt.Sprintf("%v: %s.%s = %s", ErrInvalidParameter, e.Key, e.Param, v)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

// surfaceErrorf prefixes err with the method context, keeping it matchable.
func surfaceErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
