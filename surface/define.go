// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// define.go — typed construction of registry entries.
//
// Contract:
//   • A family declares its parameters as a struct P whose fields are all
//     float64 and tagged:
//         Amplitude float64 `param:"amplitude" label:"Amplitude" default:"1"`
//     Optional `type:"integer"` marks whole-number parameters.
//   • Descriptors are derived from P in field order; the factory receives a
//     populated P, so it cannot read anything that is not declared.
//   • Define/DefineStochastic panic on malformed P (programmer error, same
//     policy as option constructors). Build never panics.

package surface

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Struct tag names recognised on parameter structs.
const (
	tagParam   = "param"
	tagLabel   = "label"
	tagDefault = "default"
	tagType    = "type"
)

// Define builds a deterministic Entry from a typed factory.
// Panics if P is not a struct of tagged float64 fields.
// Complexity: O(#fields) once, at definition time.
func Define[P any](key, summary string, factory func(P) EvalFunc) Entry {
	if factory == nil {
		panic(fmt.Sprintf("surface: Define(%q) with nil factory", key))
	}
	descs, fields := describe[P](key)

	return Entry{
		key:           key,
		summary:       summary,
		deterministic: true,
		descriptors:   descs,
		build: func(b Binding, _ buildConfig) EvalFunc {
			return factory(populate[P](descs, fields, b))
		},
	}
}

// DefineStochastic builds an Entry whose evaluator draws from a Source.
// The entry reports Deterministic() == false. Panics like Define.
func DefineStochastic[P any](key, summary string, factory func(P, Source) EvalFunc) Entry {
	if factory == nil {
		panic(fmt.Sprintf("surface: DefineStochastic(%q) with nil factory", key))
	}
	descs, fields := describe[P](key)

	return Entry{
		key:           key,
		summary:       summary,
		deterministic: false,
		descriptors:   descs,
		build: func(b Binding, cfg buildConfig) EvalFunc {
			return factory(populate[P](descs, fields, b), cfg.source())
		},
	}
}

// describe reflects over P and returns its descriptors together with the
// struct field index backing each one.
func describe[P any](key string) ([]Descriptor, []int) {
	t := reflect.TypeOf((*P)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("surface: %q parameters must be a struct, got %s", key, t.Kind()))
	}

	var (
		descs  = make([]Descriptor, 0, t.NumField())
		fields = make([]int, 0, t.NumField())
		seen   = make(map[string]struct{}, t.NumField())
	)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type.Kind() != reflect.Float64 {
			panic(fmt.Sprintf("surface: %q field %s must be an exported float64", key, f.Name))
		}
		name := f.Tag.Get(tagParam)
		if name == "" {
			panic(fmt.Sprintf("surface: %q field %s has no %s tag", key, f.Name, tagParam))
		}
		if _, dup := seen[name]; dup {
			panic(fmt.Sprintf("surface: %q declares %q twice", key, name))
		}
		seen[name] = struct{}{}

		d := Descriptor{Name: name, Label: f.Tag.Get(tagLabel), Type: TypeNumber}
		if d.Label == "" {
			d.Label = name
		}
		switch vt := ValueType(f.Tag.Get(tagType)); vt {
		case "", TypeNumber:
		case TypeInteger:
			d.Type = TypeInteger
		default:
			panic(fmt.Sprintf("surface: %q.%s has unknown type %q", key, name, vt))
		}

		def, err := strconv.ParseFloat(f.Tag.Get(tagDefault), 64)
		if err != nil || math.IsNaN(def) || math.IsInf(def, 0) {
			panic(fmt.Sprintf("surface: %q.%s needs a finite default, got %q", key, name, f.Tag.Get(tagDefault)))
		}
		if d.Type == TypeInteger && def != math.Trunc(def) {
			panic(fmt.Sprintf("surface: %q.%s integer default %v is not whole", key, name, def))
		}
		d.Default = def

		descs = append(descs, d)
		fields = append(fields, i)
	}

	return descs, fields
}

// populate copies a binding into a fresh P. Missing names (impossible after
// Bind) fall back to the descriptor default.
func populate[P any](descs []Descriptor, fields []int, b Binding) P {
	var p P
	v := reflect.ValueOf(&p).Elem()
	for i, d := range descs {
		val, ok := b[d.Name]
		if !ok {
			val = d.Default
		}
		v.Field(fields[i]).SetFloat(val)
	}

	return p
}
