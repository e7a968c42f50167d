// Package config loads and validates the YAML run configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"demandsim/internal/data"
	"demandsim/internal/model"
	"demandsim/internal/pricing"
	"demandsim/internal/sim"
)

// ConfigurationError rejects an invalid run configuration before the
// run starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Target     TargetConfig     `yaml:"target"`
	Prices     PricesConfig     `yaml:"prices"`
	Data       DataConfig       `yaml:"data"`
	Output     OutputConfig     `yaml:"output"`
}

type SimulationConfig struct {
	StartDate      string `yaml:"start_date"` // YYYY-MM-DD
	LengthDays     int    `yaml:"length_days"`
	HouseholdCount int    `yaml:"household_count"`
	StepMinutes    int    `yaml:"step_minutes"`
	Seed           int64  `yaml:"seed"`
	Workers        int    `yaml:"workers"`
}

type TargetConfig struct {
	Kind   string  `yaml:"kind"` // flat | follow | flatten
	FlatKW float64 `yaml:"flat_kw"`
}

type PricesConfig struct {
	Lower  float64 `yaml:"lower"`  // money per kWh
	Higher float64 `yaml:"higher"` // money per kWh
}

type DataConfig struct {
	// DemandCSV points at a recorded regional demand series. Empty
	// selects the built-in synthetic archive.
	DemandCSV string `yaml:"demand_csv"`
	// ArchiveHouseholds is the household count behind the CSV series.
	ArchiveHouseholds int `yaml:"archive_households"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults fills the optional fields the way a minimal config
// expects them.
func (c *Config) ApplyDefaults() {
	if c.Simulation.StepMinutes == 0 {
		c.Simulation.StepMinutes = 15
	}
	if c.Simulation.Seed == 0 {
		c.Simulation.Seed = 1
	}
	if c.Target.Kind == "" {
		c.Target.Kind = "flatten"
	}
	if c.Prices.Lower == 0 && c.Prices.Higher == 0 {
		c.Prices.Lower = 0.10
		c.Prices.Higher = 0.30
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "results"
	}
}

// Validate rejects configurations the engine would refuse anyway, with
// field-level messages.
func (c *Config) Validate() error {
	if _, err := c.StartTime(); err != nil {
		return &ConfigurationError{Field: "simulation.start_date", Reason: err.Error()}
	}
	if c.Simulation.LengthDays <= 0 {
		return &ConfigurationError{Field: "simulation.length_days", Reason: "must be > 0"}
	}
	if c.Simulation.HouseholdCount <= 0 {
		return &ConfigurationError{Field: "simulation.household_count", Reason: "must be > 0"}
	}
	if c.Simulation.StepMinutes <= 0 || (24*60)%c.Simulation.StepMinutes != 0 {
		return &ConfigurationError{Field: "simulation.step_minutes", Reason: "must divide evenly into one day"}
	}
	if err := c.TargetProfile().Validate(); err != nil {
		return &ConfigurationError{Field: "target", Reason: err.Error()}
	}
	if c.Prices.Lower < 0 || c.Prices.Higher < c.Prices.Lower {
		return &ConfigurationError{Field: "prices", Reason: "need 0 <= lower <= higher"}
	}
	if c.Data.DemandCSV != "" && c.Data.ArchiveHouseholds <= 0 {
		return &ConfigurationError{Field: "data.archive_households", Reason: "required with demand_csv"}
	}
	return nil
}

// StartTime parses the configured start date at midnight UTC.
func (c *Config) StartTime() (time.Time, error) {
	return time.Parse("2006-01-02", c.Simulation.StartDate)
}

// TargetProfile maps the target section to the pricing profile.
func (c *Config) TargetProfile() pricing.TargetProfile {
	return pricing.TargetProfile{
		Kind:   pricing.ProfileKind(c.Target.Kind),
		FlatKW: c.Target.FlatKW,
	}
}

// Params assembles validated engine parameters.
func (c *Config) Params() (sim.Params, error) {
	start, err := c.StartTime()
	if err != nil {
		return sim.Params{}, &ConfigurationError{Field: "simulation.start_date", Reason: err.Error()}
	}
	tl, err := model.NewTimeline(start, time.Duration(c.Simulation.StepMinutes)*time.Minute, c.Simulation.LengthDays)
	if err != nil {
		return sim.Params{}, &ConfigurationError{Field: "simulation", Reason: err.Error()}
	}
	return sim.Params{
		Timeline:    tl,
		Households:  c.Simulation.HouseholdCount,
		Target:      c.TargetProfile(),
		LowerPrice:  c.Prices.Lower,
		HigherPrice: c.Prices.Higher,
		Seed:        c.Simulation.Seed,
		Workers:     c.Simulation.Workers,
	}, nil
}

// Archive opens the configured historical archive: the demand CSV when
// given, otherwise a synthetic archive covering the run.
func (c *Config) Archive() (*data.Archive, error) {
	if c.Data.DemandCSV != "" {
		return data.LoadDemandCSV(c.Data.DemandCSV, c.Data.ArchiveHouseholds)
	}
	start, err := c.StartTime()
	if err != nil {
		return nil, err
	}
	return data.NewSyntheticArchive(start, c.Simulation.LengthDays, c.Simulation.HouseholdCount, c.Simulation.Seed), nil
}
