// Package analysis computes side-by-side summaries of the strategy
// comparison series produced by a run.
package analysis

import (
	"demandsim/internal/model"
	"demandsim/internal/strategy"
)

// Input is the slice of a finished run the analysis needs. Declared
// here so the package depends only on model types, not on the engine.
type Input struct {
	Rows      []model.ResultRow
	Costs     map[string]float64
	StepHours float64
}

// StrategySummary is a strategy-level roll-up of one run's demand series.
type StrategySummary struct {
	Strategy string

	PeakKW    float64
	MeanKW    float64
	EnergyKWh float64

	// LoadFactor is mean over peak; closer to 1 means a flatter curve.
	LoadFactor float64

	// PeakReductionPct compares this strategy's peak against the
	// uncontrolled peak for the same usage events.
	PeakReductionPct float64

	// TotalCost is the fleet's electricity cost under the
	// per-household price assignment, when the run recorded one.
	TotalCost float64
}

// Summarize builds one summary per strategy variant.
func Summarize(in Input) []StrategySummary {
	uncontrolledPeak := seriesPeak(in.Rows, strategy.Uncontrolled)

	out := make([]StrategySummary, 0, len(strategy.Variants()))
	for _, v := range strategy.Variants() {
		var sum, peak float64
		for _, r := range in.Rows {
			kw := rowDemand(r, v)
			sum += kw
			if kw > peak {
				peak = kw
			}
		}
		s := StrategySummary{
			Strategy:  v.String(),
			PeakKW:    peak,
			EnergyKWh: sum * in.StepHours,
			TotalCost: in.Costs[v.String()],
		}
		if n := float64(len(in.Rows)); n > 0 {
			s.MeanKW = sum / n
		}
		if peak > 0 {
			s.LoadFactor = s.MeanKW / peak
		}
		if uncontrolledPeak > 0 {
			s.PeakReductionPct = 100 * (uncontrolledPeak - peak) / uncontrolledPeak
		}
		out = append(out, s)
	}
	return out
}

func rowDemand(r model.ResultRow, v strategy.Variant) float64 {
	switch v {
	case strategy.SpreadOut:
		return r.SpreadOutDemand
	case strategy.Smart:
		return r.SmartDemand
	default:
		return r.UncontrolledDemand
	}
}

func seriesPeak(rows []model.ResultRow, v strategy.Variant) float64 {
	peak := 0.0
	for _, r := range rows {
		if kw := rowDemand(r, v); kw > peak {
			peak = kw
		}
	}
	return peak
}
