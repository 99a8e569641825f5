// Package surface is a registry of parametric scalar-field functions
// z = f(x, y) used to drive 3D surface visualizations.
//
// What:
//
//   - Registry maps a string key to an Entry: an ordered list of parameter
//     Descriptors (name, display label, numeric type, default) plus a factory
//     that closes over a resolved Binding and returns an EvalFunc.
//   - Bind merges a caller's partial Params with descriptor defaults.
//   - Define / DefineStochastic build an Entry from a typed parameter struct,
//     so every value a factory reads is a declared, discoverable descriptor.
//   - Default() is the canonical registry (mountains, sinCosSumWave,
//     sinCosProductWave, sinProductWave, saddle, sphere, torus, wave,
//     diagonalWave, interference, gaussian, perlinTerrain, randomTerrain).
//
// Flow:
//
//	keys := surface.Keys()                         // selector UI
//	descs, _ := surface.Descriptors("torus")       // parameter controls
//	fn, err := surface.Build("torus", surface.Params{"R": 5})
//	z := fn(x, y)                                  // once per grid sample
//
// Guarantees:
//
//   - Keys are listed in declaration order; every call returns the same order.
//   - Lookup is exact string match; no aliases, no fuzzy resolution.
//   - Unknown parameter names are ignored; NaN/±Inf values for declared
//     names fail with ErrInvalidParameter (see ParamError for the name).
//   - Evaluators are pure and re-entrant, except entries whose
//     Deterministic() is false (randomTerrain), which add a random jitter.
//   - Registries are read-only after construction and safe for concurrent use.
//
// Errors:
//
//   - ErrNotFound:          registry key does not exist.
//   - ErrInvalidParameter:  supplied parameter value is not finite.
//   - ErrDuplicateKey, ErrEmptyKey: rejected by NewRegistry.
//
// Complexity: every operation is O(1) in the grid size; Bind is O(#params),
// Keys is O(#entries).
package surface
