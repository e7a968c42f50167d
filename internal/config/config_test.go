package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandsim/internal/pricing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation:
  start_date: "2018-01-01"
  length_days: 7
  household_count: 200
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15, c.Simulation.StepMinutes)
	assert.Equal(t, int64(1), c.Simulation.Seed)
	assert.Equal(t, "flatten", c.Target.Kind)
	assert.Equal(t, 0.10, c.Prices.Lower)
	assert.Equal(t, 0.30, c.Prices.Higher)
	assert.Equal(t, "results", c.Output.Dir)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
simulation:
  start_date: "2018-06-15"
  length_days: 3
  household_count: 50
  step_minutes: 30
  seed: 7
  workers: 2
target:
  kind: flat
  flat_kw: 120
prices:
  lower: 0.08
  higher: 0.40
output:
  dir: out
`)
	c, err := Load(path)
	require.NoError(t, err)

	p, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 6, 15, 0, 0, 0, 0, time.UTC), p.Timeline.Start)
	assert.Equal(t, 30*time.Minute, p.Timeline.Step)
	assert.Equal(t, 3*48, p.Timeline.Count)
	assert.Equal(t, 50, p.Households)
	assert.Equal(t, pricing.TargetProfile{Kind: pricing.ProfileFlat, FlatKW: 120}, p.Target)
	assert.Equal(t, int64(7), p.Seed)
	assert.Equal(t, 2, p.Workers)
}

func TestValidateRejections(t *testing.T) {
	base := func() *Config {
		c := &Config{}
		c.Simulation.StartDate = "2018-01-01"
		c.Simulation.LengthDays = 1
		c.Simulation.HouseholdCount = 10
		c.ApplyDefaults()
		return c
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad start date", func(c *Config) { c.Simulation.StartDate = "01/02/2018" }, "simulation.start_date"},
		{"zero length", func(c *Config) { c.Simulation.LengthDays = 0 }, "simulation.length_days"},
		{"zero households", func(c *Config) { c.Simulation.HouseholdCount = 0 }, "simulation.household_count"},
		{"uneven step", func(c *Config) { c.Simulation.StepMinutes = 7 }, "simulation.step_minutes"},
		{"unknown target", func(c *Config) { c.Target.Kind = "peaky" }, "target"},
		{"inverted prices", func(c *Config) { c.Prices.Lower = 0.50 }, "prices"},
		{"csv without count", func(c *Config) { c.Data.DemandCSV = "demand.csv" }, "data.archive_households"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			require.NoError(t, c.Validate())
			tc.mutate(c)

			err := c.Validate()
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestArchiveFallsBackToSynthetic(t *testing.T) {
	c := &Config{}
	c.Simulation.StartDate = "2018-01-01"
	c.Simulation.LengthDays = 1
	c.Simulation.HouseholdCount = 20
	c.ApplyDefaults()

	a, err := c.Archive()
	require.NoError(t, err)

	start, err := c.StartTime()
	require.NoError(t, err)
	assert.NoError(t, a.Covers(start, start.Add(24*time.Hour)))
	assert.Equal(t, 20, a.HouseholdCount)
}

func TestArchiveFromCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "demand.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"2018-01-01 00:00:00,120.5\n2018-01-01 00:15:00,118.0\n"), 0o644))

	c := &Config{}
	c.Simulation.StartDate = "2018-01-01"
	c.Simulation.LengthDays = 1
	c.Simulation.HouseholdCount = 20
	c.Data.DemandCSV = csvPath
	c.Data.ArchiveHouseholds = 100
	c.ApplyDefaults()
	require.NoError(t, c.Validate())

	a, err := c.Archive()
	require.NoError(t, err)
	assert.Equal(t, 100, a.HouseholdCount)
}
