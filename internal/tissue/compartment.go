// Package tissue implements the per-compartment Bühlmann inert-gas
// loading state: the Haldane update, the gradient-factor-weighted M-value,
// and the derived ceiling and supersaturation queries.
package tissue

import (
	"math"

	"github.com/depthcurve/decoplan/internal/gas"
	"github.com/depthcurve/decoplan/internal/zhl16"
)

// Compartment holds one tissue compartment's constants and inert-gas
// loading state.
type Compartment struct {
	// Index is the compartment number, 1..16.
	Index int

	consts zhl16.Tuple

	// PN2, PHe are the inert-gas partial tissue pressures in bar.
	PN2, PHe float64
}

// New constructs compartment i (1..16), equilibrated with air at the
// given surface pressure (bar).
func New(index int, surfacePressureBar float64) Compartment {
	consts := zhl16.Compartments[index-1]
	pN2 := gas.AirFractionN2 * (surfacePressureBar - gas.WaterVapourPressureBar)
	return Compartment{Index: index, consts: consts, PN2: pN2, PHe: 0}
}

// PTotal is the sum of the two inert-gas partial pressures.
func (c Compartment) PTotal() float64 {
	return c.PN2 + c.PHe
}

// haldane applies the Haldane equation to one species.
func haldane(p, pInsp, dtMin, ht float64) float64 {
	if dtMin == 0 {
		return p
	}
	return p + (pInsp-p)*(1-math.Pow(2, -dtMin/ht))
}

// Update applies the Haldane equation to both N2 and He over dtMin
// minutes at the given inspired partial pressures.
func (c *Compartment) Update(pInspN2, pInspHe, dtMin float64) {
	c.PN2 = haldane(c.PN2, pInspN2, dtMin, c.consts.HtN2)
	c.PHe = haldane(c.PHe, pInspHe, dtMin, c.consts.HtHe)
}

// WeightedAB returns the tissue-ratio-weighted Bühlmann a/b coefficients.
// Falls back to the pure-N2 coefficients when PTotal is zero.
func (c Compartment) WeightedAB() (aw, bw float64) {
	total := c.PTotal()
	if total == 0 {
		return c.consts.AN2, c.consts.BN2
	}
	aw = (c.consts.AHe*c.PHe + c.consts.AN2*c.PN2) / total
	bw = (c.consts.BHe*c.PHe + c.consts.BN2*c.PN2) / total
	return aw, bw
}

// adjustedAB applies the gradient-factor adjustment g = maxGF/100 to the
// weighted coefficients.
func adjustedAB(aw, bw, maxGF float64) (aAdj, bAdj float64) {
	g := maxGF / 100
	aAdj = aw * g
	bAdj = bw / (g - g*bw + bw)
	return aAdj, bAdj
}

// MValueAt returns the M-value (maximum tolerated inert-gas partial
// pressure) at ambient pressure pAmbBar, for the given maxGF (0-100).
func (c Compartment) MValueAt(pAmbBar, maxGF float64) float64 {
	aw, bw := c.WeightedAB()
	aAdj, bAdj := adjustedAB(aw, bw, maxGF)
	return aAdj + pAmbBar/bAdj
}

// MValueRaw is MValueAt at 100% GF — the unadjusted M-value.
func (c Compartment) MValueRaw(pAmbBar float64) float64 {
	return c.MValueAt(pAmbBar, 100)
}

// MinTolerableAmbient returns the minimum ambient pressure (bar) this
// compartment can tolerate at the given maxGF.
func (c Compartment) MinTolerableAmbient(maxGF float64) float64 {
	aw, bw := c.WeightedAB()
	aAdj, bAdj := adjustedAB(aw, bw, maxGF)
	return (c.PTotal() - aAdj) * bAdj
}

// CeilingMeters returns this compartment's ceiling in meters at the given
// surface pressure (bar) and maxGF.
func (c Compartment) CeilingMeters(surfacePressureBar, maxGF float64) float64 {
	ceil := 10 * (c.MinTolerableAmbient(maxGF) - surfacePressureBar)
	if ceil < 0 {
		return 0
	}
	return ceil
}

// AmbientAtGradient returns the ambient pressure (bar) at which this
// compartment would exactly satisfy gradient g (0-1), per the GF-low-depth
// anchor derivation.
func (c Compartment) AmbientAtGradient(g float64) float64 {
	aw, bw := c.WeightedAB()
	denom := 1 - g + g/bw
	return (c.PTotal() - g*aw) / denom
}

// Supersaturation returns gf99 (at the current ambient pressure) and
// gfSurf (as if ascending to the surface immediately), both evaluated
// against the unadjusted (100% GF) M-value per spec.md §4.1.
//
// Negative raw values (tissue under-saturated relative to ambient, e.g.
// the oxygen-window gap present even at full air-equilibrium) are floored
// at zero: a negative gradient factor carries no decompression meaning,
// and every consumer of this value (NDL/ceiling/deco) treats "no
// supersaturation" and "negative supersaturation" identically, so there
// is nothing for a caller to distinguish by keeping the sign.
func (c Compartment) Supersaturation(surfacePressureBar, depthM float64) (gf99, gfSurf float64) {
	pAmb := surfacePressureBar + depthM/10
	mRaw := c.MValueRaw(pAmb)
	gf99 = clampNonNegative((c.PTotal() - pAmb) / (mRaw - pAmb) * 100)

	mRawSurf := c.MValueRaw(surfacePressureBar)
	gfSurf = clampNonNegative((c.PTotal() - surfacePressureBar) / (mRawSurf - surfacePressureBar) * 100)
	return gf99, gfSurf
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Clone returns an independent value copy. Compartment has no reference
// fields, so a plain copy already suffices; Model.Fork relies on that and
// copies compartments by plain struct assignment rather than calling Clone.
func (c Compartment) Clone() Compartment {
	return c
}
