package deco

import (
	"log/slog"
	"math"

	"github.com/depthcurve/decoplan/internal/gas"
	"github.com/depthcurve/decoplan/internal/units"
)

// StageType classifies one segment of a decompression schedule.
type StageType int

const (
	// Ascent is travel toward the surface (or toward a stop).
	Ascent StageType = iota
	// DecoStop is one second of held depth at a mandatory stop.
	DecoStop
	// GasSwitch is an instantaneous change of breathing gas.
	GasSwitch
)

func (t StageType) String() string {
	switch t {
	case Ascent:
		return "ascent"
	case DecoStop:
		return "deco_stop"
	case GasSwitch:
		return "gas_switch"
	default:
		return "unknown"
	}
}

// DecoStage is one (possibly coalesced) segment of a decompression
// schedule.
type DecoStage struct {
	StageType  StageType
	StartDepth units.Depth
	EndDepth   units.Depth
	Duration   units.Time
	Gas        gas.Gas
}

// DecoRuntime is the result of planning a decompression schedule.
// TTSSurface equals TTS in this design — there is no separate
// surface-interval accounting (spec.md §4.6).
type DecoRuntime struct {
	Stages     []DecoStage
	TTS        units.Time
	TTSSurface units.Time
	Sim        bool
}

// maxPlannerIterations bounds the planner loop defensively. A valid
// starting state always terminates well under this via ascent time plus
// stop time (spec.md §5); the cap only guards against a decision-logic
// bug looping forever.
const maxPlannerIterations = 100000

// stopDepth rounds a ceiling up to the next multiple of the 3 m
// deco-stop window (spec.md §4.6).
func stopDepth(ceilingM float64) float64 {
	if ceilingM <= 0 {
		return 0
	}
	return math.Ceil(ceilingM/3) * 3
}

// bestSwitchCandidate returns the least-rich gas among those in gases
// whose O2 partial pressure at depthM exceeds the current gas's —
// "the smallest fO2 among gases that are an improvement" (spec.md §4.6
// step 4).
func bestSwitchCandidate(gases []gas.Gas, current gas.Gas, depthM, surfMbar float64) (gas.Gas, bool) {
	currentPO2 := current.PartialPressures(depthM, surfMbar).PO2
	var best gas.Gas
	found := false
	for _, g := range gases {
		po2 := g.PartialPressures(depthM, surfMbar).PO2
		if po2 <= currentPO2 {
			continue
		}
		if !found || g.FO2 < best.FO2 {
			best = g
			found = true
		}
	}
	return best, found
}

// appendStage adds s to stages, coalescing into the last stage when
// coalesce is true and the last stage shares stageType, gas, and abuts
// s's start depth. Ascent stages are always appended as-is (spec.md
// §4.6).
func appendStage(stages *[]DecoStage, s DecoStage, coalesce bool) {
	if coalesce && len(*stages) > 0 {
		last := &(*stages)[len(*stages)-1]
		if last.StageType == s.StageType && last.Gas.Equal(s.Gas) && last.EndDepth.Meters() == s.StartDepth.Meters() {
			last.Duration = last.Duration.Add(s.Duration)
			last.EndDepth = s.EndDepth
			return
		}
	}
	*stages = append(*stages, s)
}

// ascendStage travels the fork to targetM at the configured deco ascent
// rate on g, appending an un-coalesced Ascent stage.
func ascendStage(fork *Model, stages *[]DecoStage, g gas.Gas, targetM float64) error {
	pre := fork.DiveState()
	if err := fork.RecordTravelWithRate(units.FromMeters(targetM), fork.config.DecoAscentRateMPerMin, g); err != nil {
		return err
	}
	post := fork.DiveState()
	appendStage(stages, DecoStage{
		StageType: Ascent, StartDepth: pre.Depth, EndDepth: post.Depth,
		Duration: post.Time.Sub(pre.Time), Gas: g,
	}, false)
	return nil
}

// decoStopStage holds current depth for one second on g, appending a
// coalescable DecoStop stage.
func decoStopStage(fork *Model, stages *[]DecoStage, g gas.Gas) error {
	pre := fork.DiveState()
	if err := fork.Record(pre.Depth, units.FromSeconds(1), g); err != nil {
		return err
	}
	post := fork.DiveState()
	appendStage(stages, DecoStage{
		StageType: DecoStop, StartDepth: pre.Depth, EndDepth: pre.Depth,
		Duration: post.Time.Sub(pre.Time), Gas: g,
	}, true)
	return nil
}

// gasSwitchStage swaps to newGas, first ascending on oldGas to newGas's
// MOD if the current depth exceeds it (spec.md §4.6).
func gasSwitchStage(fork *Model, stages *[]DecoStage, oldGas, newGas gas.Gas) error {
	pre := fork.DiveState()
	modNext := newGas.MaxOperatingDepth(gas.SwitchPPO2Bar)
	if pre.Depth.Meters() > modNext {
		if err := ascendStage(fork, stages, oldGas, modNext); err != nil {
			return err
		}
		pre = fork.DiveState()
	}
	if err := fork.Record(pre.Depth, units.ZeroTime, newGas); err != nil {
		return err
	}
	post := fork.DiveState()
	appendStage(stages, DecoStage{
		StageType: GasSwitch, StartDepth: pre.Depth, EndDepth: post.Depth,
		Duration: post.Time.Sub(pre.Time), Gas: newGas,
	}, true)
	return nil
}

// Deco synthesizes a full decompression schedule over gases, run on a
// forked, simulated clone. spec.md §4.6.
func (m *Model) Deco(gases []gas.Gas) (DecoRuntime, error) {
	if len(gases) == 0 {
		return DecoRuntime{}, &DecoError{Kind: EmptyGasList}
	}

	current := m.state.Gas
	foundCurrent := false
	for _, g := range gases {
		if g.Equal(current) {
			foundCurrent = true
			break
		}
	}
	if !foundCurrent {
		return DecoRuntime{}, &DecoError{Kind: CurrentGasNotInList}
	}

	fork := m.Fork()
	currentGas := current
	var stages []DecoStage

	for iter := 0; iter < maxPlannerIterations; iter++ {
		depthM := fork.state.Depth.Meters()
		if depthM <= 0 {
			break
		}

		ceilM := fork.ActualCeiling().Meters()
		sd := stopDepth(ceilM)

		switch {
		case ceilM <= 0:
			if err := ascendStage(fork, &stages, currentGas, sd); err != nil {
				return DecoRuntime{}, err
			}
		case depthM < sd:
			if err := ascendStage(fork, &stages, currentGas, sd); err != nil {
				return DecoRuntime{}, err
			}
		default:
			gNext, found := bestSwitchCandidate(gases, currentGas, depthM, fork.config.SurfacePressureMbar)
			switch {
			case found && !gNext.Equal(currentGas) && depthM <= gNext.MaxOperatingDepth(gas.SwitchPPO2Bar):
				if err := gasSwitchStage(fork, &stages, currentGas, gNext); err != nil {
					return DecoRuntime{}, err
				}
				currentGas = gNext
			case depthM == sd:
				if err := decoStopStage(fork, &stages, currentGas); err != nil {
					return DecoRuntime{}, err
				}
			case found && gNext.MaxOperatingDepth(gas.SwitchPPO2Bar) >= ceilM:
				if err := gasSwitchStage(fork, &stages, currentGas, gNext); err != nil {
					return DecoRuntime{}, err
				}
				currentGas = gNext
			default:
				if err := ascendStage(fork, &stages, currentGas, sd); err != nil {
					return DecoRuntime{}, err
				}
			}
		}
	}

	var tts units.Time
	for _, s := range stages {
		tts = tts.Add(s.Duration)
	}

	if !m.simulated {
		slog.Info("deco plan complete", "session", m.SessionID, "stages", len(stages), "tts_s", tts.Seconds())
	}
	return DecoRuntime{Stages: stages, TTS: tts, TTSSurface: tts, Sim: true}, nil
}
