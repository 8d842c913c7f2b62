package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/konbassmio/gearbox/train"
)

// designParams is the YAML schema of a --params file. Tolerance is percent
// and torque is N·m, matching the flags and the interactive prompt.
type designParams struct {
	Solutions    int     `yaml:"solutions"`
	TargetRatio  float64 `yaml:"target_ratio"`
	TolerancePct float64 `yaml:"tolerance_pct"`
	MinStages    int     `yaml:"min_stages"`
	MaxStages    int     `yaml:"max_stages"`
	TeethMin     int     `yaml:"teeth_min"`
	TeethMax     int     `yaml:"teeth_max"`
	TorqueNm     float64 `yaml:"input_torque_nm"`
	ShearMPa     float64 `yaml:"shear_mpa"`
	TensileMPa   float64 `yaml:"tensile_mpa"`

	// Optional tuning knobs; zero means engine defaults.
	RatioPlaces  int `yaml:"ratio_places"`
	MaxPerLength int `yaml:"max_per_length"`
}

// loadDesignConfig reads and strictly decodes a YAML parameter file.
// Unknown keys are input errors — a typoed parameter must not silently
// fall back to a default.
func loadDesignConfig(path string) (train.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return train.Config{}, fmt.Errorf("input: read params: %w", err)
	}

	var p designParams
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&p); err != nil {
		return train.Config{}, fmt.Errorf("input: parse %s: %w", path, err)
	}

	return train.Config{
		MaxSolutions:  p.Solutions,
		TargetRatio:   p.TargetRatio,
		Tolerance:     p.TolerancePct / 100,
		MinStages:     p.MinStages,
		MaxStages:     p.MaxStages,
		ZMin:          p.TeethMin,
		ZMax:          p.TeethMax,
		InputTorqueNm: p.TorqueNm,
		ShearMPa:      p.ShearMPa,
		TensileMPa:    p.TensileMPa,
		RatioPlaces:   p.RatioPlaces,
		MaxPerLength:  p.MaxPerLength,
	}, nil
}
