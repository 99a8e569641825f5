// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// impl_waves.go — trigonometric families.
//
// All members are total over the reals; no boundary handling is needed.

package surface

import "math"

// waveParams is shared by the three parametrised wave families.
type waveParams struct {
	Amplitude float64 `param:"amplitude" label:"Amplitude" default:"1"`
	Frequency float64 `param:"frequency" label:"Frequency" default:"1"`
	Phase     float64 `param:"phase" label:"Phase" default:"0"`
}

// noParams is the parameter struct of fixed-shape families.
type noParams struct{}

func sinCosSumWave() Entry {
	return Define(KeySinCosSumWave, "A·(sin(f·x+p) + cos(f·y+p))",
		func(p waveParams) EvalFunc {
			return func(x, y float64) float64 {
				return p.Amplitude * (math.Sin(p.Frequency*x+p.Phase) + math.Cos(p.Frequency*y+p.Phase))
			}
		})
}

func sinCosProductWave() Entry {
	return Define(KeySinCosProductWave, "A·sin(f·x+p)·cos(f·y+p)",
		func(p waveParams) EvalFunc {
			return func(x, y float64) float64 {
				return p.Amplitude * math.Sin(p.Frequency*x+p.Phase) * math.Cos(p.Frequency*y+p.Phase)
			}
		})
}

func sinProductWave() Entry {
	return Define(KeySinProductWave, "A·sin(f·x·y+p)",
		func(p waveParams) EvalFunc {
			return func(x, y float64) float64 {
				return p.Amplitude * math.Sin(p.Frequency*x*y+p.Phase)
			}
		})
}

func wave() Entry {
	return Define(KeyWave, "sin(x)·sin(y)",
		func(noParams) EvalFunc {
			return func(x, y float64) float64 {
				return math.Sin(x) * math.Sin(y)
			}
		})
}

func diagonalWave() Entry {
	return Define(KeyDiagonalWave, "cos(x + y)",
		func(noParams) EvalFunc {
			return func(x, y float64) float64 {
				return math.Cos(x + y)
			}
		})
}

func interference() Entry {
	return Define(KeyInterference, "sin(x)·sin(y) + cos(x + y)",
		func(noParams) EvalFunc {
			return func(x, y float64) float64 {
				return math.Sin(x)*math.Sin(y) + math.Cos(x+y)
			}
		})
}
