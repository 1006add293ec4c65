package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depthcurve/decoplan/internal/deco"
)

func TestSaveThenLoadRoundTrips(t *testing.T) {
	cfg := deco.DefaultConfig()
	cfg.GradientFactors = deco.GradientFactors{Low: 30, High: 70}
	cfg.RoundCeiling = true

	path := filepath.Join(t.TempDir(), "decoplan.yaml")
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.GradientFactors, loaded.GradientFactors)
	assert.True(t, loaded.RoundCeiling)
}

func TestLoadFillsDefaultsForUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gradient_factors:\n  low: 50\n  high: 80\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, deco.DefaultConfig().SurfacePressureMbar, cfg.SurfacePressureMbar)
	assert.Equal(t, deco.DefaultConfig().DecoAscentRateMPerMin, cfg.DecoAscentRateMPerMin)
	assert.Equal(t, 50.0, cfg.GradientFactors.Low)
	assert.Equal(t, 80.0, cfg.GradientFactors.High)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gradient_factors:\n  low: 200\n  high: 80\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
