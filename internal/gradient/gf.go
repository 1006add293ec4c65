// Package gradient implements the gradient-factor engine: the GF-low-depth
// anchor and the sloped gradient factor between GF-low (at depth) and
// GF-high (at the surface).
package gradient

// Compartment is the minimal surface gradient needs from a tissue
// compartment, to avoid importing internal/tissue and keep this package a
// leaf.
type Compartment interface {
	AmbientAtGradient(g float64) float64
}

// LowDepth computes the GF-low-depth anchor: the deepest depth at which
// the fraction g = gfLow/100 just satisfies every compartment.
func LowDepth[C Compartment](compartments []C, gfLow, surfacePressureBar float64) float64 {
	g := gfLow / 100
	maxDepth := 0.0
	for _, c := range compartments {
		pAmb := c.AmbientAtGradient(g)
		d := 10 * (pAmb - surfacePressureBar)
		if d < 0 {
			d = 0
		}
		if d > maxDepth {
			maxDepth = d
		}
	}
	return maxDepth
}

// Sloped returns the maxGF to apply at depthM, given a cached gf-low-depth
// of lowDepthM and the configured GF pair. When gfLow == gfHigh there is
// no slope: maxGF is always gfHigh. When lowDepthM <= 0 (not in deco, or
// the anchor has not been established) maxGF is gfHigh.
func Sloped(depthM, gfLow, gfHigh, lowDepthM float64) float64 {
	if gfLow == gfHigh {
		return gfHigh
	}
	if lowDepthM <= 0 {
		return gfHigh
	}
	if depthM >= lowDepthM {
		return gfLow
	}
	if depthM <= 0 {
		return gfHigh
	}
	return gfHigh - (gfHigh-gfLow)*depthM/lowDepthM
}
