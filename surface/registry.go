// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// registry.go — ordered, read-only mapping from key to Entry.

package surface

import (
	"errors"

	"golang.org/x/exp/slices"
)

// Registry maps keys to entries and remembers declaration order.
// It is immutable after NewRegistry and safe for concurrent readers.
type Registry struct {
	entries map[string]Entry
	order   []string
}

// NewRegistry indexes entries in the given order.
//
// Errors:
//   - ErrEmptyKey     if an entry has an empty key (e.g. the zero Entry).
//   - ErrDuplicateKey if two entries share a key.
//
// Complexity: O(len(entries)).
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]Entry, len(entries)),
		order:   make([]string, 0, len(entries)),
	}
	for i, e := range entries {
		if e.key == "" || e.build == nil {
			return nil, surfaceErrorf(MethodNewRegistry, "entry %d: %w", i, ErrEmptyKey)
		}
		if _, dup := r.entries[e.key]; dup {
			return nil, surfaceErrorf(MethodNewRegistry, "%q: %w", e.key, ErrDuplicateKey)
		}
		r.entries[e.key] = e
		r.order = append(r.order, e.key)
	}

	return r, nil
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.order) }

// Keys returns the keys in declaration order. The slice is a fresh copy.
func (r *Registry) Keys() []string {
	return slices.Clone(r.order)
}

// Get returns the entry registered under key (exact match).
func (r *Registry) Get(key string) (Entry, error) {
	e, ok := r.entries[key]
	if !ok {
		return Entry{}, surfaceErrorf(MethodGet, "%q: %w", key, ErrNotFound)
	}

	return e, nil
}

// Descriptors returns a copy of the ordered descriptors of key.
func (r *Registry) Descriptors(key string) ([]Descriptor, error) {
	e, ok := r.entries[key]
	if !ok {
		return nil, surfaceErrorf(MethodDescriptors, "%q: %w", key, ErrNotFound)
	}

	return e.Descriptors(), nil
}

// Build resolves params against the descriptors of key and returns a fresh
// evaluator. It is the single entry point for obtaining a sampler.
//
// Errors: ErrNotFound, or *ParamError wrapping ErrInvalidParameter.
func (r *Registry) Build(key string, params Params, opts ...Option) (EvalFunc, error) {
	e, ok := r.entries[key]
	if !ok {
		return nil, surfaceErrorf(MethodBuild, "%q: %w", key, ErrNotFound)
	}

	return e.Build(params, opts...)
}

// Build binds params and runs the factory. Each call yields an independent
// evaluator; params is not retained.
func (e Entry) Build(params Params, opts ...Option) (EvalFunc, error) {
	if e.build == nil {
		return nil, surfaceErrorf(MethodBuild, "zero entry: %w", ErrEmptyKey)
	}
	b, err := Bind(e.descriptors, params)
	if err != nil {
		var pe *ParamError
		if errors.As(err, &pe) {
			pe.Key = e.key
		}
		return nil, surfaceErrorf(MethodBuild, "%w", err)
	}

	return e.build(b, newBuildConfig(opts...)), nil
}
