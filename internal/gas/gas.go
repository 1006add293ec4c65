// Package gas provides the immutable breathing-gas triple and its
// pressure/depth-limit queries. This is the "gas-mix construction and
// validation" collaborator: straightforward, and specified fully by its
// contract rather than by an elaborate design.
package gas

import "math"

// WaterVapourPressureBar is the alveolar water-vapor pressure at 37 °C.
const WaterVapourPressureBar = 0.0627

// BarPerMeterSeawater is the pressure increase per meter of seawater.
const BarPerMeterSeawater = 0.1

// AirFractionN2 is the nitrogen fraction of surface air.
const AirFractionN2 = 0.79

// SwitchPPO2Bar is the ppO2 used to bound gas-switch MOD decisions.
const SwitchPPO2Bar = 1.6

// Gas is an immutable (fO2, fHe, fN2) triple. fN2 is derived and rounded
// to four decimals. Equality is component-wise exact.
type Gas struct {
	FO2 float64
	FHe float64
	FN2 float64
}

// New constructs a validated Gas. fN2 is derived as 1 - fO2 - fHe, rounded
// to four decimal places.
func New(fO2, fHe float64) (Gas, error) {
	if fO2 < 0 || fO2 > 1 {
		return Gas{}, &InvalidGasError{FO2: fO2, FHe: fHe, Reason: "fO2 out of [0,1]"}
	}
	if fHe < 0 || fHe > 1 {
		return Gas{}, &InvalidGasError{FO2: fO2, FHe: fHe, Reason: "fHe out of [0,1]"}
	}
	if fO2+fHe > 1 {
		return Gas{}, &InvalidGasError{FO2: fO2, FHe: fHe, Reason: "fO2 + fHe exceeds 1"}
	}
	fN2 := round4(1 - fO2 - fHe)
	return Gas{FO2: fO2, FHe: fHe, FN2: fN2}, nil
}

// MustNew is New, panicking on error. Intended for package-level presets
// and tests where the mix is a known-valid constant.
func MustNew(fO2, fHe float64) Gas {
	g, err := New(fO2, fHe)
	if err != nil {
		panic(err)
	}
	return g
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// PartialPressures holds the ambient partial pressure of each component,
// in bar.
type PartialPressures struct {
	PN2, PHe, PO2 float64
}

// ambientPressureBar returns absolute ambient pressure at depth d and
// surface pressure surfPmbar (millibar).
func ambientPressureBar(depthM, surfPmbar float64) float64 {
	return surfPmbar/1000 + depthM/10
}

// PartialPressures returns the ambient partial pressures of this gas at
// depthM meters and surface pressure surfPmbar millibar.
func (g Gas) PartialPressures(depthM, surfPmbar float64) PartialPressures {
	amb := ambientPressureBar(depthM, surfPmbar)
	return PartialPressures{
		PN2: g.FN2 * amb,
		PHe: g.FHe * amb,
		PO2: g.FO2 * amb,
	}
}

// InspiredPartialPressures is PartialPressures with the alveolar
// water-vapor pressure subtracted from ambient before splitting by
// fraction.
func (g Gas) InspiredPartialPressures(depthM, surfPmbar float64) PartialPressures {
	amb := ambientPressureBar(depthM, surfPmbar) - WaterVapourPressureBar
	if amb < 0 {
		amb = 0
	}
	return PartialPressures{
		PN2: g.FN2 * amb,
		PHe: g.FHe * amb,
		PO2: g.FO2 * amb,
	}
}

// MaxOperatingDepth returns the deepest depth, in meters, at which this
// gas's oxygen partial pressure remains within ppO2Limit bar.
func (g Gas) MaxOperatingDepth(ppO2Limit float64) float64 {
	if g.FO2 <= 0 {
		return math.Inf(1)
	}
	return 10 * (ppO2Limit/g.FO2 - 1)
}

// EquivalentNarcoticDepth returns the depth of air with the same narcotic
// potency as this gas at depthM meters.
func (g Gas) EquivalentNarcoticDepth(depthM float64) float64 {
	end := (depthM+10)*(1-g.FHe) - 10
	if end < 0 {
		return 0
	}
	return end
}

// Equal reports exact component-wise equality.
func (g Gas) Equal(o Gas) bool {
	return g.FO2 == o.FO2 && g.FHe == o.FHe && g.FN2 == o.FN2
}
