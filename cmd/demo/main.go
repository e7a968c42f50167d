package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"demandsim/internal/data"
	"demandsim/internal/model"
	"demandsim/internal/pricing"
	"demandsim/internal/sim"
)

// Demo:
// - Build a one-day synthetic demand archive
// - Run all three strategies for a small household fleet
// - Print a few result rows to show how the pieces fit together
func main() {
	houses := flag.Int("houses", 50, "Number of simulated households")
	n := flag.Int("n", 12, "Number of result rows to print")
	flag.Parse()

	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	tl, err := model.NewTimeline(start, 15*time.Minute, 1)
	if err != nil {
		panic(err)
	}

	archive := data.NewSyntheticArchive(start, 1, *houses, 42)

	engine := sim.New(sim.Params{
		Timeline:    tl,
		Households:  *houses,
		Target:      pricing.TargetProfile{Kind: pricing.ProfileFlatten},
		LowerPrice:  0.10,
		HigherPrice: 0.30,
		Seed:        42,
	}, archive)

	res, err := engine.Run(context.Background())
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-20s %10s %10s %8s %8s %8s %8s %6s\n",
		"datetime", "predicted", "actual", "target", "smart", "uncntrl", "spread", "ratio")
	for i, r := range res.Rows {
		if i >= *n {
			break
		}
		fmt.Printf("%-20s %10.2f %10.2f %8.2f %8.2f %8.2f %8.2f %6.3f\n",
			r.Datetime.Format("2006-01-02 15:04"),
			r.PredictedBaseDemand, r.ActualBaseDemand, r.TargetDemand,
			r.SmartDemand, r.UncontrolledDemand, r.SpreadOutDemand, r.PriceRatio)
	}
	fmt.Printf("... %d rows total\n", len(res.Rows))
}
