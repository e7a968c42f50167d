package model

import "time"

// ResultRow is one finalized interval of simulation output.
// This is the primary artifact for "what happened" in a run.
// All demand columns are kW, PriceRatio is in [0,1].
type ResultRow struct {
	Datetime            time.Time
	PredictedBaseDemand float64
	ActualBaseDemand    float64
	TargetDemand        float64
	SmartDemand         float64
	UncontrolledDemand  float64
	SpreadOutDemand     float64
	PriceRatio          float64
}

// RunDescription records the parameters a result set was produced with.
// Fixed at run start, immutable.
type RunDescription struct {
	StartingDatetime time.Time
	SimulationLength int // days
	HouseCount       int
	LowerPrice       float64 // money per kWh
	HigherPrice      float64 // money per kWh
}
