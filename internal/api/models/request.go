package models

// SimulateRequest is the request body for running a simulation.
type SimulateRequest struct {
	StartDate      string `json:"start_date" binding:"required"` // YYYY-MM-DD
	LengthDays     int    `json:"length_days" binding:"required"`
	HouseholdCount int    `json:"household_count" binding:"required"`
	StepMinutes    int    `json:"step_minutes,omitempty"`
	Seed           int64  `json:"seed,omitempty"`

	Target  TargetSpec      `json:"target,omitempty"`
	Prices  PricesSpec      `json:"prices,omitempty"`
	Options SimulateOptions `json:"options,omitempty"`
}

// TargetSpec selects the distributor's total demand profile.
type TargetSpec struct {
	Kind   string  `json:"kind,omitempty"` // flat | follow | flatten
	FlatKW float64 `json:"flat_kw,omitempty"`
}

// PricesSpec carries the two broadcast price levels.
type PricesSpec struct {
	Lower  float64 `json:"lower,omitempty"`
	Higher float64 `json:"higher,omitempty"`
}

// SimulateOptions tunes the response shape, not the simulation.
type SimulateOptions struct {
	IncludeRows bool `json:"include_rows,omitempty"`
	Workers     int  `json:"workers,omitempty"`
}
