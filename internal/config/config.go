// Package config loads and saves an internal/deco.Config as YAML,
// filling unset fields from deco.DefaultConfig before validating.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/depthcurve/decoplan/internal/deco"
)

// Load reads a YAML configuration file at path, applies defaults for
// fields the document does not set, and validates the result. A field
// set explicitly to zero keeps that value.
func Load(path string) (deco.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return deco.Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	// Seeding c with defaults before Unmarshal means a file that only
	// sets gradient_factors still gets a sane surface pressure and
	// ascent rate — yaml.Unmarshal only overwrites keys present in the
	// document.
	c := deco.DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return deco.Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return deco.Config{}, err
	}
	return c, nil
}

// Save marshals cfg as YAML to path.
func Save(cfg deco.Config, path string) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
