// Package colorutil provides shared color utilities for the analyzer's plots.
package colorutil

import (
	"image/color"
	"math"
)

// Common colors used throughout the application.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray  = color.RGBA{R: 127, G: 127, B: 127, A: 255}

	// PaleYellow is the distinct color reserved for the zero-degree series.
	PaleYellow = color.RGBA{R: 255, G: 240, B: 171, A: 255}
)

// ylOrRd anchors the light-yellow to dark-red sequential ramp used for the
// per-angle series.
var ylOrRd = []color.RGBA{
	{R: 255, G: 255, B: 204, A: 255},
	{R: 254, G: 217, B: 118, A: 255},
	{R: 253, G: 141, B: 60, A: 255},
	{R: 227, G: 26, B: 28, A: 255},
	{R: 128, G: 0, B: 38, A: 255},
}

// Lerp linearly interpolates between two colors; t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// YlOrRd returns the ramp color at position t in [0, 1].
func YlOrRd(t float64) color.RGBA {
	t = clamp01(t)
	segs := len(ylOrRd) - 1
	pos := t * float64(segs)
	i := int(pos)
	if i >= segs {
		return ylOrRd[segs]
	}
	return Lerp(ylOrRd[i], ylOrRd[i+1], pos-float64(i))
}

// Sequential returns n ramp colors sampled at i/n, light to dark.
func Sequential(n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = YlOrRd(float64(i) / float64(n))
	}
	return out
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
