package data

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDemandCSV(t *testing.T) {
	in := strings.NewReader(`timestamp,demand_kw,household_draw_kw
2018-01-01 00:00:00,120.5,0.21
2018-01-01 00:15:00,118.0,0.20
2018-01-01 00:30:00,117.2,0.19
`)
	a, err := readDemandCSV(in, 100)
	require.NoError(t, err)

	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, start, a.Start())
	assert.Equal(t, start.Add(45*time.Minute), a.End())
	assert.Equal(t, 100, a.HouseholdCount)

	v, err := a.DemandAt(start.Add(20 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 118.0, v)

	d, err := a.HouseholdDrawAt(start)
	require.NoError(t, err)
	assert.Equal(t, 0.21, d)
}

func TestReadDemandCSVWithoutDrawColumn(t *testing.T) {
	in := strings.NewReader(`2018-01-01T00:00:00Z,120.5
2018-01-01T01:00:00Z,118.0
`)
	a, err := readDemandCSV(in, 100)
	require.NoError(t, err)

	d, err := a.HouseholdDrawAt(a.Start())
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestReadDemandCSVUnevenSpacing(t *testing.T) {
	in := strings.NewReader(`2018-01-01 00:00:00,120.5
2018-01-01 00:15:00,118.0
2018-01-01 00:45:00,117.2
`)
	_, err := readDemandCSV(in, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evenly spaced")
}

func TestReadDemandCSVTooShort(t *testing.T) {
	in := strings.NewReader("2018-01-01 00:00:00,120.5\n")
	_, err := readDemandCSV(in, 100)
	var gap *DataGapError
	require.ErrorAs(t, err, &gap)
}

func TestArchiveCoverage(t *testing.T) {
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewArchive(start, 15*time.Minute, 50, []float64{1, 2, 3, 4}, nil)
	require.NoError(t, err)

	assert.NoError(t, a.Covers(start, start.Add(time.Hour)))

	var gap *DataGapError
	err = a.Covers(start.Add(-time.Minute), start.Add(time.Hour))
	require.ErrorAs(t, err, &gap)

	err = a.Covers(start, start.Add(time.Hour+time.Minute))
	assert.ErrorAs(t, err, &gap)

	_, err = a.DemandAt(start.Add(2 * time.Hour))
	assert.ErrorAs(t, err, &gap)
}

func TestRegionalDemandResampling(t *testing.T) {
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewArchive(start, 15*time.Minute, 50, []float64{1, 2, 3, 4}, nil)
	require.NoError(t, err)

	// Same step: straight copy.
	got, err := a.RegionalDemand(start, start.Add(time.Hour), 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, got)

	// Coarser step samples the containing interval.
	got, err = a.RegionalDemand(start, start.Add(time.Hour), 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, got)
}

func TestSyntheticArchiveDeterministic(t *testing.T) {
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

	a := NewSyntheticArchive(start, 2, 100, 7)
	b := NewSyntheticArchive(start, 2, 100, 7)

	require.NoError(t, a.Covers(start, start.Add(48*time.Hour)))
	assert.True(t, a.Start().Before(start), "coverage extends before the run start")

	for _, off := range []time.Duration{0, 6 * time.Hour, 30 * time.Hour} {
		va, err := a.DemandAt(start.Add(off))
		require.NoError(t, err)
		vb, err := b.DemandAt(start.Add(off))
		require.NoError(t, err)
		assert.Equal(t, va, vb)
		assert.Positive(t, va)
	}

	// A different seed perturbs the series.
	c := NewSyntheticArchive(start, 2, 100, 8)
	va, _ := a.DemandAt(start)
	vc, err := c.DemandAt(start)
	require.NoError(t, err)
	assert.NotEqual(t, va, vc)

	// Coverage ends two margin days past the run.
	assert.Equal(t, start.Add(96*time.Hour), a.End())
	var gap *DataGapError
	assert.ErrorAs(t, a.Covers(start, start.Add(97*time.Hour)), &gap)
}
