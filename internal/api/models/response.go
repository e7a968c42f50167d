package models

import (
	"demandsim/internal/analysis"
	"demandsim/internal/model"
	"demandsim/internal/sim"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SimulateResponse is the body for a completed run.
type SimulateResponse struct {
	Description   DescriptionJSON            `json:"description"`
	Summaries     []analysis.StrategySummary `json:"summaries"`
	DroppedEvents int                        `json:"dropped_events"`
	RowCount      int                        `json:"row_count"`
	Rows          []RowJSON                  `json:"rows,omitempty"`
}

type DescriptionJSON struct {
	StartingDatetime string  `json:"starting_datetime"`
	SimulationLength int     `json:"simulation_length"`
	HouseCount       int     `json:"house_count"`
	LowerPrice       float64 `json:"lower_price"`
	HigherPrice      float64 `json:"higher_price"`
}

type RowJSON struct {
	Datetime            string  `json:"datetime"`
	PredictedBaseDemand float64 `json:"predicted_base_demand"`
	ActualBaseDemand    float64 `json:"actual_base_demand"`
	TargetDemand        float64 `json:"target_demand"`
	SmartDemand         float64 `json:"smart_demand"`
	UncontrolledDemand  float64 `json:"uncontrolled_demand"`
	SpreadOutDemand     float64 `json:"spread_out_demand"`
	PriceRatio          float64 `json:"price_ratio"`
}

const datetimeLayout = "2006-01-02 15:04:05"

// NewSimulateResponse maps a finished run into the wire shape.
func NewSimulateResponse(res *sim.Result, stepHours float64, includeRows bool) SimulateResponse {
	out := SimulateResponse{
		Description: DescriptionJSON{
			StartingDatetime: res.Description.StartingDatetime.Format(datetimeLayout),
			SimulationLength: res.Description.SimulationLength,
			HouseCount:       res.Description.HouseCount,
			LowerPrice:       res.Description.LowerPrice,
			HigherPrice:      res.Description.HigherPrice,
		},
		Summaries: analysis.Summarize(analysis.Input{
			Rows:      res.Rows,
			Costs:     res.Costs,
			StepHours: stepHours,
		}),
		DroppedEvents: res.DroppedEvents,
		RowCount:      len(res.Rows),
	}
	if includeRows {
		out.Rows = make([]RowJSON, 0, len(res.Rows))
		for _, r := range res.Rows {
			out.Rows = append(out.Rows, newRowJSON(r))
		}
	}
	return out
}

func newRowJSON(r model.ResultRow) RowJSON {
	return RowJSON{
		Datetime:            r.Datetime.Format(datetimeLayout),
		PredictedBaseDemand: r.PredictedBaseDemand,
		ActualBaseDemand:    r.ActualBaseDemand,
		TargetDemand:        r.TargetDemand,
		SmartDemand:         r.SmartDemand,
		UncontrolledDemand:  r.UncontrolledDemand,
		SpreadOutDemand:     r.SpreadOutDemand,
		PriceRatio:          r.PriceRatio,
	}
}
