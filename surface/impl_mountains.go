// SPDX-License-Identifier: MIT
// Package: zsurface/surface
//
// impl_mountains.go — asymmetric mountain range.
//
// maxHeight is a declared descriptor like every other knob, so callers
// following the descriptor list can discover and override it.

package surface

import "math"

type mountainParams struct {
	BaseHeight           float64 `param:"baseHeight" label:"Base Height" default:"0.2"`
	MountainAmplitude    float64 `param:"mountainAmplitude" label:"Mountain Amplitude" default:"0.3"`
	AsymmetryX           float64 `param:"asymmetryX" label:"Asymmetry X" default:"0.9"`
	AsymmetryY           float64 `param:"asymmetryY" label:"Asymmetry Y" default:"1.3"`
	DetailAmplitude      float64 `param:"detailAmplitude" label:"Detail Amplitude" default:"0.1"`
	DetailFrequency      float64 `param:"detailFrequency" label:"Detail Frequency" default:"3"`
	NonlinearCombination float64 `param:"nonlinearCombination" label:"Nonlinear Combination" default:"0.1"`
	MaxHeight            float64 `param:"maxHeight" label:"Max Height" default:"10"`
}

// Fixed shape constants of the range.
const (
	ridgeFreq  = 0.3 // base undulation along both axes
	asymFreqX  = 0.7
	asymFreqY  = 0.5
	asymPhaseY = 0.3
	crossFreq  = 0.5 // sin(0.5x)·cos(0.5y) coupling term
)

func mountains() Entry {
	return Define(KeyMountains,
		"maxHeight·[base + mA·sin(0.3x + aX·sin(0.7x)) + mA·cos(0.3y + aY·cos(0.5y+0.3)) + dA·sin(dF·x + dF·y) + nC·sin(0.5x)·cos(0.5y)]",
		func(p mountainParams) EvalFunc {
			return func(x, y float64) float64 {
				asymX := p.AsymmetryX * math.Sin(x*asymFreqX)
				asymY := p.AsymmetryY * math.Cos(y*asymFreqY+asymPhaseY)

				mountain := p.BaseHeight +
					p.MountainAmplitude*math.Sin(x*ridgeFreq+asymX) +
					p.MountainAmplitude*math.Cos(y*ridgeFreq+asymY)
				detail := p.DetailAmplitude * math.Sin(x*p.DetailFrequency+y*p.DetailFrequency)
				cross := p.NonlinearCombination * math.Sin(x*crossFreq) * math.Cos(y*crossFreq)

				return (mountain + detail + cross) * p.MaxHeight
			}
		})
}
