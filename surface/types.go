// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// types.go — descriptors, bindings and the Entry value.

package surface

import (
	"golang.org/x/exp/slices"
)

// ValueType names the numeric kind of a parameter. Both kinds are float64 on
// the wire; TypeInteger tells UIs to offer whole numbers and factories to round.
type ValueType string

const (
	// TypeNumber is a real-valued parameter.
	TypeNumber ValueType = "number"
	// TypeInteger is a whole-number parameter (octaves, seeds).
	TypeInteger ValueType = "integer"
)

// Descriptor is the display metadata of one parameter. Immutable once defined.
type Descriptor struct {
	Name    string    // unique within an entry, key of Params/Binding
	Label   string    // human readable label for editing controls
	Type    ValueType // numeric kind
	Default float64   // used whenever the caller omits Name
}

// EvalFunc maps a 2D coordinate to a height.
type EvalFunc func(x, y float64) float64

// Params is a caller-supplied, possibly partial, parameter record.
type Params map[string]float64

// Binding is a fully resolved parameter record: one value per declared
// descriptor. Produced by Bind; treat as read-only.
type Binding map[string]float64

// Source yields uniform draws in [0,1). Only stochastic entries receive one.
type Source func() float64

// Entry pairs a function's descriptors with its construction factory.
// Build entries with Define or DefineStochastic; the zero Entry is unusable.
type Entry struct {
	key           string
	summary       string
	deterministic bool
	descriptors   []Descriptor
	build         func(b Binding, cfg buildConfig) EvalFunc
}

// Key returns the registry key of the entry.
func (e Entry) Key() string { return e.key }

// Summary returns the formula of the entry in plain text.
func (e Entry) Summary() string { return e.summary }

// Deterministic reports whether equal (x, y) and equal bindings always yield
// bit-identical heights. Callers caching by parameters must check it.
func (e Entry) Deterministic() bool { return e.deterministic }

// Descriptors returns a copy of the ordered parameter descriptors.
func (e Entry) Descriptors() []Descriptor {
	return slices.Clone(e.descriptors)
}

// Descriptor returns the descriptor called name, if declared.
func (e Entry) Descriptor(name string) (Descriptor, bool) {
	i := slices.IndexFunc(e.descriptors, func(d Descriptor) bool { return d.Name == name })
	if i < 0 {
		return Descriptor{}, false
	}

	return e.descriptors[i], true
}
