package deco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depthcurve/decoplan/internal/gas"
	"github.com/depthcurve/decoplan/internal/units"
)

func TestDecoRejectsEmptyGasList(t *testing.T) {
	m := newTestModel(t, 100, 100)
	_, err := m.Deco(nil)
	require.Error(t, err)
	var decoErr *DecoError
	require.ErrorAs(t, err, &decoErr)
	assert.Equal(t, EmptyGasList, decoErr.Kind)
}

func TestDecoRejectsCurrentGasNotInList(t *testing.T) {
	m := newTestModel(t, 100, 100)
	require.NoError(t, m.Record(units.FromMeters(40), units.FromMinutes(20), gas.Air()))

	ean50 := gas.MustNew(0.5, 0)
	_, err := m.Deco([]gas.Gas{ean50})
	require.Error(t, err)
	var decoErr *DecoError
	require.ErrorAs(t, err, &decoErr)
	assert.Equal(t, CurrentGasNotInList, decoErr.Kind)
}

// With no obligation the ceiling is zero, so the planner emits a single
// direct ascent to the surface: 10 m at 10 m/min takes 60 s.
func TestDecoNoObligationAscendsDirectly(t *testing.T) {
	m := newTestModel(t, 100, 100)
	require.NoError(t, m.Record(units.FromMeters(10), units.FromMinutes(5), gas.Air()))

	runtime, err := m.Deco([]gas.Gas{gas.Air()})
	require.NoError(t, err)
	require.Len(t, runtime.Stages, 1)
	assert.Equal(t, Ascent, runtime.Stages[0].StageType)
	assert.Equal(t, 0.0, runtime.Stages[0].EndDepth.Meters())
	assert.Equal(t, 60.0, runtime.TTS.Seconds())
}

func decoFixture(t *testing.T, gfLow, gfHigh, rate float64) *Model {
	t.Helper()
	cfg := DefaultConfig()
	cfg.GradientFactors = GradientFactors{Low: gfLow, High: gfHigh}
	cfg.DecoAscentRateMPerMin = rate
	m, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, m.Record(units.FromMeters(40), units.FromMinutes(20), gas.Air()))
	return m
}

// P5, P6, P7 over a single-gas deco run.
func TestDecoInvariantsSingleGas(t *testing.T) {
	m := decoFixture(t, 100, 100, 9)
	runtime, err := m.Deco([]gas.Gas{gas.Air()})
	require.NoError(t, err)
	require.NotEmpty(t, runtime.Stages)

	var sum units.Time
	for _, s := range runtime.Stages {
		sum = sum.Add(s.Duration)
		assert.Truef(t, s.Gas.Equal(gas.Air()), "stage gas must be in the supplied list")
		if s.StageType == DecoStop {
			mod3 := s.StartDepth.Meters() / 3
			assert.InDelta(t, mod3, float64(int(mod3+0.5)), 1e-6, "stop depth must be a multiple of 3 m")
		}
	}
	assert.InDelta(t, sum.Seconds(), runtime.TTS.Seconds(), 1e-9)
	assert.Equal(t, runtime.TTS.Seconds(), runtime.TTSSurface.Seconds())
	assert.True(t, runtime.Sim)

	last := runtime.Stages[len(runtime.Stages)-1]
	assert.Equal(t, 0.0, last.EndDepth.Meters())
}

// P6 with a two-gas list: every stage's gas must be drawn from the list.
func TestDecoInvariantsGasListClosure(t *testing.T) {
	ean50 := gas.MustNew(0.5, 0)
	m := decoFixture(t, 100, 100, 9)
	gases := []gas.Gas{gas.Air(), ean50}
	runtime, err := m.Deco(gases)
	require.NoError(t, err)

	for _, s := range runtime.Stages {
		inList := false
		for _, g := range gases {
			if s.Gas.Equal(g) {
				inList = true
				break
			}
		}
		assert.True(t, inList, "stage gas %+v not in supplied list", s.Gas)
	}
}

// A richer deco gas should switch in and shorten (or at least not
// lengthen) total time to surface relative to staying on air alone.
func TestDecoRicherGasReducesOrMatchesTTS(t *testing.T) {
	ean50 := gas.MustNew(0.5, 0)

	airOnly := decoFixture(t, 100, 100, 9)
	airOnlyRuntime, err := airOnly.Deco([]gas.Gas{gas.Air()})
	require.NoError(t, err)

	withEAN50 := decoFixture(t, 100, 100, 9)
	withEAN50Runtime, err := withEAN50.Deco([]gas.Gas{gas.Air(), ean50})
	require.NoError(t, err)

	assert.LessOrEqual(t, withEAN50Runtime.TTS.Seconds(), airOnlyRuntime.TTS.Seconds())

	switched := false
	for _, s := range withEAN50Runtime.Stages {
		if s.StageType == GasSwitch && s.Gas.Equal(ean50) {
			switched = true
		}
	}
	assert.True(t, switched, "expected a gas switch to the richer deco mix")
}

// Adjacent deco stops that share gas and abut in depth should already
// have been merged by appendStage — none should survive in the final
// result. (Ascent stages are never coalesced, so they are not checked.)
func TestDecoStageCoalescing(t *testing.T) {
	m := decoFixture(t, 100, 100, 9)
	runtime, err := m.Deco([]gas.Gas{gas.Air()})
	require.NoError(t, err)

	for i := 1; i < len(runtime.Stages); i++ {
		prev, cur := runtime.Stages[i-1], runtime.Stages[i]
		if cur.StageType == DecoStop && prev.StageType == cur.StageType && prev.Gas.Equal(cur.Gas) {
			assert.NotEqual(t, prev.EndDepth.Meters(), cur.StartDepth.Meters(),
				"adjacent same-type same-gas abutting deco stops should have coalesced")
		}
	}
}

func TestStopDepthIsMultipleOfThree(t *testing.T) {
	for _, c := range []float64{0, 0.5, 2.9, 3, 3.1, 11.9, 12, 12.1} {
		sd := stopDepth(c)
		q := sd / 3
		assert.InDelta(t, q, float64(int(q+0.5)), 1e-9)
	}
}
