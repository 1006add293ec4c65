// Package oxtox tracks oxygen-toxicity exposure: CNS percent via the NOAA
// piecewise-linear rate table, and OTU via the standard pulmonary-toxicity
// exponent. This is the "oxygen-toxicity (CNS/OTU) accounting" collaborator
// named as out-of-scope-for-the-hard-part in spec.md §1 — implemented here
// fully, per its contract in spec.md §6.
package oxtox

import "math"

// rateRow is one row of the NOAA CNS single-exposure-limit rate table,
// expressed as rate(ppO2) = slope*ppO2 + intercept.
type rateRow struct {
	lo, hi, slope, intercept float64
}

// rateTable is the NOAA piecewise-linear CNS rate table from spec.md §6.
var rateTable = []rateRow{
	{lo: 0.5, hi: 0.6, slope: -1800, intercept: 1800},
	{lo: 0.6, hi: 0.7, slope: -1500, intercept: 1620},
	{lo: 0.7, hi: 0.8, slope: -1200, intercept: 1410},
	{lo: 0.8, hi: 0.9, slope: -900, intercept: 1170},
	{lo: 0.9, hi: 1.1, slope: -600, intercept: 900},
	{lo: 1.1, hi: 1.5, slope: -300, intercept: 570},
	{lo: 1.5, hi: 1.65, slope: -750, intercept: 1245},
}

// OTUExponent is the exponent in the OTU formula: OTU-per-minute =
// ((ppO2-0.5)/0.5)^OTUExponent for ppO2 > 0.5.
const OTUExponent = 0.83

// Tracker accumulates CNS (percent) and OTU exposure across a dive.
type Tracker struct {
	CNSPercent float64
	OTU        float64
}

// AddExposure accumulates CNS and OTU for minutes of exposure at the
// given oxygen partial pressure (bar). ppO2 below 0.5 bar contributes
// nothing to either accumulator.
func (t *Tracker) AddExposure(ppO2, minutes float64) {
	if ppO2 < 0.5 {
		return
	}
	if rate, ok := cnsRate(ppO2); ok {
		t.CNSPercent += minutes / rate * 100
	}
	t.OTU += math.Pow((ppO2-0.5)/0.5, OTUExponent) * minutes
}

// cnsRate returns the NOAA rate (minutes to 100% CNS) at ppO2, clamping
// to the last row's coefficients above 1.65 bar.
func cnsRate(ppO2 float64) (float64, bool) {
	if ppO2 > 1.65 {
		last := rateTable[len(rateTable)-1]
		return last.slope*ppO2 + last.intercept, true
	}
	for _, row := range rateTable {
		if ppO2 >= row.lo && ppO2 <= row.hi {
			return row.slope*ppO2 + row.intercept, true
		}
	}
	return 0, false
}

// Clone returns an independent value copy for model forking.
func (t Tracker) Clone() Tracker {
	return t
}
