// Package config loads named sets of fractal generator parameters from a
// YAML file, the same struct-tag-driven style the pack's item template
// registries use for their own YAML-backed configuration. The preset
// constructors in package noise do not read these values; they take their
// parameters as arguments.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GeneratorPreset holds the fractal parameters (as used by Perlin, Billow
// and RidgedMulti) for one named preset.
type GeneratorPreset struct {
	Seed        int32   `yaml:"seed"`
	Frequency   float64 `yaml:"frequency"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Persistence float64 `yaml:"persistence"`
	OctaveCount int     `yaml:"octave_count"`
	Quality     string  `yaml:"quality"`
}

// PresetFile is the root document loaded from a preset YAML file: a
// named set of GeneratorPreset overrides, keyed by preset name
// ("marble", "wood", "clouds", ...).
type PresetFile struct {
	Presets map[string]GeneratorPreset `yaml:"presets"`
}

// Load reads and parses a preset file from disk.
func Load(path string) (*PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var pf PresetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &pf, nil
}

// Get returns the preset named by key, and whether it was present.
func (pf *PresetFile) Get(key string) (GeneratorPreset, bool) {
	p, ok := pf.Presets[key]
	return p, ok
}
