// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// impl_noise.go — noise-driven terrain families.
//
// perlinTerrain is deterministic for a fixed binding (the seed is a
// parameter). randomTerrain is not: every call adds a fresh jitter draw, so
// it is registered through DefineStochastic and reports Deterministic()=false.

package surface

import (
	"math"

	"github.com/aquilax/go-perlin"
)

type perlinParams struct {
	Amplitude float64 `param:"amplitude" label:"Amplitude" default:"1"`
	Scale     float64 `param:"scale" label:"Scale" default:"10"`
	Alpha     float64 `param:"alpha" label:"Octave Falloff" default:"2"`
	Beta      float64 `param:"beta" label:"Octave Frequency" default:"2"`
	Octaves   float64 `param:"octaves" label:"Octaves" default:"3" type:"integer"`
	Seed      float64 `param:"seed" label:"Seed" default:"0" type:"integer"`
}

// Domain boundaries of perlinTerrain. Out-of-range values are replaced, not
// rejected, so Build still never fails for finite input:
//   - octaves is rounded and clamped to [perlinMinOctaves, perlinMaxOctaves].
//   - scale below perlinMinScale (including <= 0) becomes perlinUnitScale.
//   - alpha <= 0, or an alpha whose last octave weight alpha^(octaves-1)
//     underflows to 0 or overflows, becomes perlinDefaultAlpha.
//   - beta whose last octave frequency |beta|^(octaves-1) overflows becomes
//     perlinDefaultBeta.
//   - seed is rounded and clamped to ±perlinMaxSeed before conversion.
//   - a sample whose scaled coordinates overflow evaluates to 0.
const (
	perlinMinOctaves   = 1
	perlinMaxOctaves   = 16
	perlinMinScale     = 1e-6
	perlinUnitScale    = 1.0
	perlinDefaultAlpha = 2.0
	perlinDefaultBeta  = 2.0
	perlinMaxSeed      = 1 << 53 // largest range of exactly representable integers
)

// octaveFactorOK reports whether v^(octaves-1) is a usable non-zero finite weight.
func octaveFactorOK(v, octaves float64) bool {
	w := math.Pow(math.Abs(v), octaves-1)
	return w != 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

func perlinTerrain() Entry {
	return Define(KeyPerlinTerrain, "A·perlin2D(x/scale, y/scale)",
		func(p perlinParams) EvalFunc {
			octaves := math.Round(p.Octaves)
			octaves = math.Max(perlinMinOctaves, math.Min(perlinMaxOctaves, octaves))

			scale := p.Scale
			if scale < perlinMinScale {
				scale = perlinUnitScale
			}
			alpha := p.Alpha
			if alpha <= 0 || !octaveFactorOK(alpha, octaves) {
				alpha = perlinDefaultAlpha
			}
			beta := p.Beta
			if beta != 0 && !octaveFactorOK(beta, octaves) {
				beta = perlinDefaultBeta
			}
			seed := math.Max(-perlinMaxSeed, math.Min(perlinMaxSeed, math.Round(p.Seed)))

			// Perlin only reads its permutation tables after construction, so
			// the evaluator stays safe for concurrent sampling.
			noise := perlin.NewPerlin(alpha, beta, int32(octaves), int64(seed))

			return func(x, y float64) float64 {
				n := noise.Noise2D(x/scale, y/scale)
				if math.IsNaN(n) || math.IsInf(n, 0) {
					return 0
				}
				return p.Amplitude * n
			}
		})
}

type randomTerrainParams struct {
	SineAmplitude   float64 `param:"sineAmplitude" label:"Sine Amplitude" default:"0.5"`
	CosineAmplitude float64 `param:"cosineAmplitude" label:"Cosine Amplitude" default:"0.3"`
	Slope           float64 `param:"slope" label:"Slope" default:"0.05"`
	SineFrequency   float64 `param:"sineFrequency" label:"Sine Frequency" default:"5"`
	CosineFrequency float64 `param:"cosineFrequency" label:"Cosine Frequency" default:"3"`
	Jitter          float64 `param:"jitter" label:"Randomness" default:"0.1"`
}

// jitterCenter recentres uniform draws on zero.
const jitterCenter = 0.5

func randomTerrain() Entry {
	return DefineStochastic(KeyRandomTerrain,
		"slope·(x²+y²) + sA·sin(sF·π·x) + cA·cos(cF·π·y) + jitter·(u − 0.5)",
		func(p randomTerrainParams, draw Source) EvalFunc {
			return func(x, y float64) float64 {
				poly := p.Slope * (x*x + y*y)
				sine := p.SineAmplitude * math.Sin(p.SineFrequency*math.Pi*x)
				cosine := p.CosineAmplitude * math.Cos(p.CosineFrequency*math.Pi*y)

				return poly + sine + cosine + p.Jitter*(draw()-jitterCenter)
			}
		})
}
