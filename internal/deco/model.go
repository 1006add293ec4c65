// Package deco implements the dive-state integrator, the ceiling and NDL
// engines, and the decompression-schedule planner described in spec.md
// §3–§4. It is the coupled numerical/state-machine core this module
// exists to build.
package deco

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/depthcurve/decoplan/internal/gas"
	"github.com/depthcurve/decoplan/internal/gradient"
	"github.com/depthcurve/decoplan/internal/oxtox"
	"github.com/depthcurve/decoplan/internal/tissue"
	"github.com/depthcurve/decoplan/internal/units"
)

// NDLCutoffMinutes is the forward-simulation cutoff beyond which NDL is
// reported as unlimited-for-practical-purposes (spec.md §4.5).
const NDLCutoffMinutes = 99

// MaxDepthMeters is the deepest depth Record will accept.
const MaxDepthMeters = 200

// DiveState is a read-only snapshot of the dive in progress.
type DiveState struct {
	Depth  units.Depth
	Time   units.Time
	Gas    gas.Gas
	InDeco bool

	// GFLowDepth and GFLowDepthCached report the cached GF-low-depth
	// anchor (spec.md §4.2), when one has been established.
	GFLowDepth       units.Depth
	GFLowDepthCached bool
}

// Model owns the configuration, the sixteen compartments, and the
// current dive state. The zero value is not usable; construct with New.
type Model struct {
	config       Config
	compartments [16]tissue.Compartment
	state        dynamicState
	gfCache      gradient.LowDepthCache
	oxTox        oxtox.Tracker

	// simulated marks a forked model: ceiling forces actual mode, and
	// oxygen-toxicity accumulation is suppressed (spec.md §3, §5).
	simulated bool

	// SessionID correlates log lines and reports for one planning
	// session. Forks inherit the parent's SessionID unchanged — a fork
	// is the same session observed speculatively, not a new one
	// (SPEC_FULL.md §4.14).
	SessionID uuid.UUID
}

// dynamicState is the mutable part of DiveState (no InDeco — that is
// derived on every read, not stored).
type dynamicState struct {
	Depth units.Depth
	Time  units.Time
	Gas   gas.Gas
}

// New constructs a Model from a validated configuration. Compartments are
// born equilibrated with air at the configured surface pressure.
func New(config Config) (*Model, error) {
	if err := config.Validate(); err != nil {
		slog.Warn("configuration rejected", "error", err)
		return nil, err
	}

	m := &Model{config: config, SessionID: uuid.New()}
	surfBar := config.SurfacePressureBar()
	for i := 0; i < len(m.compartments); i++ {
		m.compartments[i] = tissue.New(i+1, surfBar)
	}
	m.state = dynamicState{Depth: units.Zero, Time: units.ZeroTime, Gas: gas.Air()}

	slog.Debug("model created", "session", m.SessionID, "gf_low", config.GradientFactors.Low,
		"gf_high", config.GradientFactors.High, "surface_mbar", config.SurfacePressureMbar)
	return m, nil
}

// Fork produces an independent, value-semantic deep copy marked
// simulated. Model has no pointer/slice/map fields, so a plain struct
// copy already yields a deep copy (spec.md §5, §9).
func (m *Model) Fork() *Model {
	clone := *m
	clone.simulated = true
	return &clone
}

// DiveState returns a read-only snapshot of the current dive.
func (m *Model) DiveState() DiveState {
	lowDepth, cached := m.gfCache.Get()
	return DiveState{
		Depth:            m.state.Depth,
		Time:             m.state.Time,
		Gas:              m.state.Gas,
		InDeco:           m.InDeco(),
		GFLowDepth:       units.FromMeters(lowDepth),
		GFLowDepthCached: cached,
	}
}

// validateDepth enforces the 0–200 m recording range.
func validateDepth(d units.Depth) error {
	if d.Meters() < 0 || d.Meters() > MaxDepthMeters {
		return &DepthError{DepthM: d.Meters(), MinM: 0, MaxM: MaxDepthMeters}
	}
	return nil
}

// Record integrates one dive segment at depth for dt at the given gas.
// spec.md §4.3.
func (m *Model) Record(depth units.Depth, dt units.Time, g gas.Gas) error {
	if err := validateDepth(depth); err != nil {
		return err
	}

	wasInDeco := m.InDeco()

	dtMin := dt.Minutes()
	insp := g.InspiredPartialPressures(depth.Meters(), m.config.SurfacePressureMbar)
	for i := range m.compartments {
		m.compartments[i].Update(insp.PN2, insp.PHe, dtMin)
	}
	if !m.simulated {
		m.oxTox.AddExposure(insp.PO2, dtMin)
	}

	m.state = dynamicState{Depth: depth, Time: m.state.Time.Add(dt), Gas: g}

	nowInDeco := m.InDeco()
	if wasInDeco && !nowInDeco {
		m.gfCache.Invalidate()
	}

	if !m.simulated {
		slog.Debug("record", "session", m.SessionID, "depth_m", depth.Meters(),
			"dt_min", dtMin, "gas_fo2", g.FO2, "gas_fhe", g.FHe, "in_deco", nowInDeco)
		if wasInDeco != nowInDeco {
			slog.Info("deco obligation changed", "session", m.SessionID, "in_deco", nowInDeco)
		}
	}
	return nil
}

// RecordTravel discretizes travel to target over dt into one-second
// steps, linearly interpolating depth, invoking Record once per second.
// spec.md §4.3.
func (m *Model) RecordTravel(target units.Depth, dt units.Time, g gas.Gas) error {
	if err := validateDepth(target); err != nil {
		return err
	}

	totalSeconds := dt.Seconds()
	if totalSeconds <= 0 {
		return m.Record(target, units.ZeroTime, g)
	}

	steps := int(math.Round(totalSeconds))
	if steps < 1 {
		steps = 1
	}
	startM := m.state.Depth.Meters()
	targetM := target.Meters()
	ratePerSecond := (targetM - startM) / totalSeconds

	for s := 1; s <= steps; s++ {
		depthM := startM + ratePerSecond*float64(s)
		if s == steps {
			depthM = targetM
		}
		if err := m.Record(units.FromMeters(depthM), units.FromSeconds(1), g); err != nil {
			return err
		}
	}
	return nil
}

// RecordTravelWithRate derives dt = |target-current|/rate (minutes) and
// delegates to RecordTravel. spec.md §4.3; spec.md §9 notes the rate is
// always positive meters/minute regardless of travel direction.
func (m *Model) RecordTravelWithRate(target units.Depth, rateMPerMin float64, g gas.Gas) error {
	if rateMPerMin <= 0 {
		return &DepthError{DepthM: target.Meters(), MinM: 0, MaxM: MaxDepthMeters}
	}
	deltaM := math.Abs(target.Meters() - m.state.Depth.Meters())
	return m.RecordTravel(target, units.FromMinutes(deltaM/rateMPerMin), g)
}

// leadingIndex returns the index of the compartment with the greatest
// min-tolerable-ambient pressure at the given maxGF — the leading
// compartment (spec.md §4.3).
func (m *Model) leadingIndex(maxGF float64) int {
	best := 0
	bestVal := m.compartments[0].MinTolerableAmbient(maxGF)
	for i := 1; i < len(m.compartments); i++ {
		v := m.compartments[i].MinTolerableAmbient(maxGF)
		if v > bestVal {
			bestVal = v
			best = i
		}
	}
	return best
}

// ceilingAtGF returns the leading compartment's ceiling (unrounded) at
// the given maxGF.
func (m *Model) ceilingAtGF(maxGF float64) float64 {
	idx := m.leadingIndex(maxGF)
	return m.compartments[idx].CeilingMeters(m.config.SurfacePressureBar(), maxGF)
}

// maxGFAtCurrentDepth resolves the gradient factor to use for ceiling
// computations: GF-high when not in deco or when there is no slope,
// otherwise the sloped GF anchored on the cached (or freshly computed)
// gf-low-depth. spec.md §4.2.
func (m *Model) maxGFAtCurrentDepth() float64 {
	gfLow, gfHigh := m.config.GradientFactors.Low, m.config.GradientFactors.High
	rawCeiling := m.ceilingAtGF(gfHigh)
	if gfLow == gfHigh || rawCeiling <= 0 {
		return gfHigh
	}

	lowDepth, ok := m.gfCache.Get()
	if !ok {
		lowDepth = gradient.LowDepth(m.compartments[:], gfLow, m.config.SurfacePressureBar())
		m.gfCache.Set(lowDepth)
	}
	return gradient.Sloped(m.state.Depth.Meters(), gfLow, gfHigh, lowDepth)
}

// ActualCeiling is the leading compartment's ceiling (spec.md §4.4),
// optionally rounded up to the next whole meter.
func (m *Model) ActualCeiling() units.Depth {
	maxGF := m.maxGFAtCurrentDepth()
	ceilM := m.ceilingAtGF(maxGF)
	if m.config.RoundCeiling {
		ceilM = math.Ceil(ceilM)
	}
	return units.FromMeters(ceilM)
}

// AdaptiveCeiling iterates a fork toward the ceiling at the configured
// deco ascent rate until it converges, hits the surface, or after 50
// iterations (spec.md §4.4). A fork always uses actual-ceiling mode
// internally, so this never recurses.
func (m *Model) AdaptiveCeiling() units.Depth {
	fork := m.Fork()
	c := fork.ActualCeiling()
	for i := 0; i < 50; i++ {
		depthM := fork.state.Depth.Meters()
		if depthM <= 0 || depthM <= c.Meters() {
			break
		}
		if err := fork.RecordTravelWithRate(c, m.config.DecoAscentRateMPerMin, fork.state.Gas); err != nil {
			break
		}
		c = fork.ActualCeiling()
	}
	return c
}

// Ceiling returns the current ceiling per the configured CeilingType. A
// simulated (forked) model always uses actual mode, regardless of
// configuration (spec.md §4.4, §9).
func (m *Model) Ceiling() units.Depth {
	if m.simulated || m.config.CeilingType == CeilingActual {
		return m.ActualCeiling()
	}
	return m.AdaptiveCeiling()
}

// InDeco reports whether the dive currently carries a decompression
// obligation, evaluated at GF-high (spec.md §4.2).
func (m *Model) InDeco() bool {
	return m.ceilingAtGF(m.config.GradientFactors.High) > 0
}

// NDL computes the no-decompression limit by forward simulation, capped
// at NDLCutoffMinutes (spec.md §4.5).
func (m *Model) NDL() units.Time {
	if m.InDeco() {
		return units.ZeroTime
	}

	fork := m.Fork()
	depth := fork.state.Depth
	g := fork.state.Gas
	for i := 0; i < NDLCutoffMinutes; i++ {
		if err := fork.Record(depth, units.FromMinutes(1), g); err != nil {
			break
		}
		if fork.InDeco() {
			return units.FromMinutes(float64(i))
		}
	}
	return units.FromMinutes(NDLCutoffMinutes)
}

// CNS returns the accumulated central-nervous-system oxygen-toxicity
// percentage.
func (m *Model) CNS() float64 {
	return m.oxTox.CNSPercent
}

// OTU returns the accumulated pulmonary oxygen-toxicity units.
func (m *Model) OTU() float64 {
	return m.oxTox.OTU
}

// Supersaturation returns the maximum gf99 and gfSurf over all
// compartments.
func (m *Model) Supersaturation() (gf99, gfSurf float64) {
	surfBar := m.config.SurfacePressureBar()
	depthM := m.state.Depth.Meters()
	for _, c := range m.compartments {
		g99, gSurf := c.Supersaturation(surfBar, depthM)
		if g99 > gf99 {
			gf99 = g99
		}
		if gSurf > gfSurf {
			gfSurf = gSurf
		}
	}
	return gf99, gfSurf
}

// CompartmentSupersaturation is one compartment's gf99/gfSurf pair.
type CompartmentSupersaturation struct {
	Compartment int
	GF99        float64
	GFSurf      float64
}

// SupersaturationAll returns the gf99/gfSurf pair for every compartment.
func (m *Model) SupersaturationAll() []CompartmentSupersaturation {
	surfBar := m.config.SurfacePressureBar()
	depthM := m.state.Depth.Meters()
	out := make([]CompartmentSupersaturation, len(m.compartments))
	for i, c := range m.compartments {
		g99, gSurf := c.Supersaturation(surfBar, depthM)
		out[i] = CompartmentSupersaturation{Compartment: c.Index, GF99: g99, GFSurf: gSurf}
	}
	return out
}

// TissuePressure is one compartment's current inert-gas loading.
type TissuePressure struct {
	Compartment    int
	N2, He, Total float64
}

// TissuePressures returns the current N2/He/total partial pressures of
// every compartment.
func (m *Model) TissuePressures() []TissuePressure {
	out := make([]TissuePressure, len(m.compartments))
	for i, c := range m.compartments {
		out[i] = TissuePressure{Compartment: c.Index, N2: c.PN2, He: c.PHe, Total: c.PTotal()}
	}
	return out
}
