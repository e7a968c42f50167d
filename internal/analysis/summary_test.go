package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandsim/internal/model"
)

func TestSummarize(t *testing.T) {
	in := Input{
		Rows: []model.ResultRow{
			{SmartDemand: 10, UncontrolledDemand: 40, SpreadOutDemand: 20},
			{SmartDemand: 30, UncontrolledDemand: 0, SpreadOutDemand: 20},
			{SmartDemand: 20, UncontrolledDemand: 20, SpreadOutDemand: 20},
			{SmartDemand: 0, UncontrolledDemand: 0, SpreadOutDemand: 0},
		},
		Costs: map[string]float64{
			"smart":        4.5,
			"uncontrolled": 6.0,
			"spreadout":    5.1,
		},
		StepHours: 0.25,
	}

	summaries := Summarize(in)
	require.Len(t, summaries, 3)

	byName := map[string]StrategySummary{}
	for _, s := range summaries {
		byName[s.Strategy] = s
	}

	smart := byName["smart"]
	assert.Equal(t, 30.0, smart.PeakKW)
	assert.Equal(t, 15.0, smart.MeanKW)
	assert.InDelta(t, 15.0, smart.EnergyKWh, 1e-9)
	assert.InDelta(t, 0.5, smart.LoadFactor, 1e-9)
	assert.InDelta(t, 25.0, smart.PeakReductionPct, 1e-9) // from 40 down to 30
	assert.Equal(t, 4.5, smart.TotalCost)

	uncontrolled := byName["uncontrolled"]
	assert.Equal(t, 40.0, uncontrolled.PeakKW)
	assert.Zero(t, uncontrolled.PeakReductionPct)

	spreadout := byName["spreadout"]
	assert.Equal(t, 20.0, spreadout.PeakKW)
	assert.InDelta(t, 50.0, spreadout.PeakReductionPct, 1e-9)
	assert.InDelta(t, 0.75, spreadout.LoadFactor, 1e-9)
}

func TestSummarizeEmptyRun(t *testing.T) {
	summaries := Summarize(Input{StepHours: 0.25})
	require.Len(t, summaries, 3)
	for _, s := range summaries {
		assert.Zero(t, s.PeakKW)
		assert.Zero(t, s.MeanKW)
		assert.Zero(t, s.LoadFactor)
		assert.Zero(t, s.PeakReductionPct)
	}
}
