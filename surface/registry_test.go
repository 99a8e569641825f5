// SPDX-License-Identifier: MIT
// Package surface_test covers registry construction, ordering and lookup.
package surface_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/zsurface/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ampParams struct {
	Amplitude float64 `param:"amplitude" label:"Amplitude" default:"1"`
}

func flat(key string) surface.Entry {
	return surface.Define(key, "A", func(p ampParams) surface.EvalFunc {
		return func(_, _ float64) float64 { return p.Amplitude }
	})
}

// TestNewRegistry_Errors verifies that empty and duplicate keys are rejected.
func TestNewRegistry_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		entries []surface.Entry
		want    error
	}{
		{"ZeroEntry", []surface.Entry{{}}, surface.ErrEmptyKey},
		{"EmptyKey", []surface.Entry{flat("")}, surface.ErrEmptyKey},
		{"Duplicate", []surface.Entry{flat("a"), flat("b"), flat("a")}, surface.ErrDuplicateKey},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, err := surface.NewRegistry(tc.entries...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, r)
		})
	}
}

// TestRegistry_KeysDeclarationOrder checks that Keys mirrors declaration order
// and that callers cannot reorder the registry through the returned slice.
func TestRegistry_KeysDeclarationOrder(t *testing.T) {
	t.Parallel()

	r, err := surface.NewRegistry(flat("zeta"), flat("alpha"), flat("mid"))
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	keys := r.Keys()
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)

	keys[0] = "mutated"
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Keys(), "Keys must return a copy")
}

// TestDefault_KeysStable verifies the canonical key list and its stability.
func TestDefault_KeysStable(t *testing.T) {
	t.Parallel()

	want := []string{
		surface.KeyMountains,
		surface.KeySinCosSumWave,
		surface.KeySinCosProductWave,
		surface.KeySinProductWave,
		surface.KeySaddle,
		surface.KeySphere,
		surface.KeyTorus,
		surface.KeyWave,
		surface.KeyDiagonalWave,
		surface.KeyInterference,
		surface.KeyGaussian,
		surface.KeyPerlinTerrain,
		surface.KeyRandomTerrain,
	}
	first := surface.Keys()
	second := surface.Keys()
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, first, second, "Keys() must be stable across calls")
	assert.NotContains(t, first, "mountains_2")
}

// TestRegistry_NotFound checks every lookup path for an unknown key.
func TestRegistry_NotFound(t *testing.T) {
	t.Parallel()

	_, err := surface.Lookup("doesNotExist")
	assert.ErrorIs(t, err, surface.ErrNotFound)

	_, err = surface.Descriptors("doesNotExist")
	assert.ErrorIs(t, err, surface.ErrNotFound)

	fn, err := surface.Build("doesNotExist", surface.Params{})
	assert.ErrorIs(t, err, surface.ErrNotFound)
	assert.Nil(t, fn)

	// Exact match only: no case folding.
	_, err = surface.Lookup("Torus")
	assert.ErrorIs(t, err, surface.ErrNotFound)
}

// TestDescriptors_Torus checks descriptor metadata and that the returned
// slice is a defensive copy.
func TestDescriptors_Torus(t *testing.T) {
	t.Parallel()

	got, err := surface.Descriptors(surface.KeyTorus)
	require.NoError(t, err)

	want := []surface.Descriptor{
		{Name: "R", Label: "Major Radius", Type: surface.TypeNumber, Default: 2},
		{Name: "r", Label: "Minor Radius", Type: surface.TypeNumber, Default: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Descriptors(torus) mismatch (-want +got):\n%s", diff)
	}

	got[0].Default = 99
	again, err := surface.Descriptors(surface.KeyTorus)
	require.NoError(t, err)
	assert.Equal(t, 2.0, again[0].Default)
}

// TestDescriptors_MountainsDeclaresMaxHeight ensures maxHeight is discoverable.
func TestDescriptors_MountainsDeclaresMaxHeight(t *testing.T) {
	t.Parallel()

	e, err := surface.Lookup(surface.KeyMountains)
	require.NoError(t, err)

	d, ok := e.Descriptor("maxHeight")
	require.True(t, ok, "maxHeight must be declared")
	assert.Equal(t, 10.0, d.Default)
	assert.Equal(t, "Max Height", d.Label)
	assert.Len(t, e.Descriptors(), 8)

	_, ok = e.Descriptor("bogus")
	assert.False(t, ok)
}

// TestEntry_ZeroBuild ensures the zero Entry fails instead of panicking.
func TestEntry_ZeroBuild(t *testing.T) {
	t.Parallel()

	var e surface.Entry
	fn, err := e.Build(nil)
	assert.ErrorIs(t, err, surface.ErrEmptyKey)
	assert.Nil(t, fn)
}

// TestParamError_Wrapping checks errors.As access to the offending name.
func TestParamError_Wrapping(t *testing.T) {
	t.Parallel()

	_, err := surface.Build(surface.KeyTorus, surface.Params{"r": posInf()})
	require.ErrorIs(t, err, surface.ErrInvalidParameter)

	var pe *surface.ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, surface.KeyTorus, pe.Key)
	assert.Equal(t, "r", pe.Param)
	assert.Contains(t, err.Error(), "torus.r")
}
