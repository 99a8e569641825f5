// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// impl_quadrics.go — polynomial and radial families.

package surface

import "math"

type torusParams struct {
	Major float64 `param:"R" label:"Major Radius" default:"2"`
	Minor float64 `param:"r" label:"Minor Radius" default:"1"`
}

type gaussianParams struct {
	Amplitude float64 `param:"amplitude" label:"Amplitude" default:"1"`
	Spread    float64 `param:"spread" label:"Spread" default:"0.1"`
}

func saddle() Entry {
	return Define(KeySaddle, "x² − y²",
		func(noParams) EvalFunc {
			return func(x, y float64) float64 {
				return x*x - y*y
			}
		})
}

func sphere() Entry {
	return Define(KeySphere, "sin(√(x²+y²))",
		func(noParams) EvalFunc {
			return func(x, y float64) float64 {
				return math.Sin(math.Sqrt(x*x + y*y))
			}
		})
}

// torus is the height profile of a torus cross-section: positive inside the
// tube, negative outside.
func torus() Entry {
	return Define(KeyTorus, "r² − (√(x²+y²) − R)²",
		func(p torusParams) EvalFunc {
			return func(x, y float64) float64 {
				d := math.Sqrt(x*x+y*y) - p.Major
				return p.Minor*p.Minor - d*d
			}
		})
}

// gaussian with a negative spread grows without bound; exp overflows to +Inf
// for large radii, which is returned as is.
func gaussian() Entry {
	return Define(KeyGaussian, "A·exp(−spread·(x²+y²))",
		func(p gaussianParams) EvalFunc {
			return func(x, y float64) float64 {
				return p.Amplitude * math.Exp(-p.Spread*(x*x+y*y))
			}
		})
}
