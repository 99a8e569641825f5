// Package zsurface is a small registry of parametric height functions
// z = f(x, y) for 3D surface previews: terrain, waves, quadrics and noise.
//
// What is inside?
//
//	surface/     — Registry, Descriptor metadata, Bind (defaults + validation),
//	               Define/DefineStochastic typed factories, built-in families
//	heightfield/ — caller-side sampling of an EvalFunc over a rectangular grid
//	examples/    — runnable ASCII relief preview
//
// Why?
//
//   - One table pairs human-readable parameter metadata with the closure that
//     computes heights, so UIs can enumerate surfaces and build controls
//     without knowing any formula.
//   - Every parameter a factory reads is declared, discoverable and
//     overridable; nothing hides behind an undeclared default.
//   - Evaluators are pure and re-entrant; the one stochastic family says so.
//
// Quick start:
//
//	fn, err := surface.Build("torus", surface.Params{"R": 5})
//	field, err := heightfield.Sample(fn, heightfield.DefaultGrid())
//
//	go get github.com/katalvlaran/zsurface
package zsurface
