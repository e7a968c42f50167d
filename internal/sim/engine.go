// Package sim drives a complete simulation run: it wires the demand
// predictor, target allocator, price signal and household fleet
// together, advances the clock interval by interval and collects the
// comparison series for the three strategies.
package sim

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"demandsim/internal/data"
	"demandsim/internal/household"
	"demandsim/internal/model"
	"demandsim/internal/predictor"
	"demandsim/internal/pricing"
	"demandsim/internal/strategy"
)

// Phase is the run lifecycle. A run either completes or fails; there is
// no retry or resume.
type Phase int

const (
	Initialized Phase = iota
	Running
	Completed
	Failed
)

// Params is the already-validated configuration of one run.
type Params struct {
	Timeline   model.Timeline
	Households int
	Target     pricing.TargetProfile

	LowerPrice  float64 // money per kWh
	HigherPrice float64 // money per kWh

	// Seed drives every random draw in the run; identical seeds and
	// inputs yield identical result rows.
	Seed int64

	// Workers bounds the parallel household scheduling. 0 means
	// one per CPU.
	Workers int

	// Logf, when set, receives progress and warning lines.
	Logf func(format string, args ...any)
}

// Result is the finished output of a run.
type Result struct {
	Description model.RunDescription
	Rows        []model.ResultRow

	// Costs is the fleet's total electricity cost per strategy under
	// the per-household price assignment.
	Costs map[string]float64

	// DroppedEvents counts usage events discarded for inconsistent
	// flexibility windows.
	DroppedEvents int
}

// Engine runs one simulation. Each engine owns its households and
// clock; it is single-use.
type Engine struct {
	params  Params
	archive *data.Archive
	phase   Phase
}

func New(params Params, archive *data.Archive) *Engine {
	return &Engine{params: params, archive: archive}
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

func (e *Engine) logf(format string, args ...any) {
	if e.params.Logf != nil {
		e.params.Logf(format, args...)
	}
}

// Run executes the simulation to completion. Any data gap or
// computation error aborts the run without publishing partial rows.
// Cancellation is honored between ticks; no interval is left
// half-written.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.phase != Initialized {
		return nil, fmt.Errorf("engine already ran (phase %d)", e.phase)
	}
	e.phase = Running
	res, err := e.run(ctx)
	if err != nil {
		e.phase = Failed
		return nil, err
	}
	e.phase = Completed
	return res, nil
}

func (e *Engine) run(ctx context.Context) (*Result, error) {
	p := e.params
	tl := p.Timeline

	pred, err := predictor.New(e.archive, tl, p.Households)
	if err != nil {
		return nil, fmt.Errorf("base demand prediction: %w", err)
	}

	alloc, err := pricing.NewAllocator(p.Target, tl, pred.Predicted())
	if err != nil {
		return nil, fmt.Errorf("target allocation: %w", err)
	}

	signal, err := pricing.NewSignal(p.Households, data.ExpectedPeakKW())
	if err != nil {
		return nil, fmt.Errorf("price signal: %w", err)
	}

	// The ratio series is derived purely from predicted demand, so it
	// is known for the whole horizon before any household schedules.
	ratioVals := make([]float64, tl.Count)
	targetVals := make([]float64, tl.Count)
	for i := 0; i < tl.Count; i++ {
		targetVals[i] = alloc.Target(i)
		ratioVals[i] = signal.Ratio(targetVals[i])
	}
	ratios := model.NewProfile(0, ratioVals)

	patterns, err := data.HouseholdPatterns(p.Households, p.Seed)
	if err != nil {
		return nil, fmt.Errorf("household usage patterns: %w", err)
	}

	e.logf("creating %d households", p.Households)
	houses := make([]*household.Household, p.Households)
	for i := range houses {
		houses[i] = household.Generate(i, patterns[i], tl)
	}

	// Household scheduling is independent and runs in parallel; each
	// goroutine writes only its own slot. The fold below runs in
	// household order so results do not depend on worker scheduling.
	type houseResult struct {
		demand household.Demand
		prices *model.Profile
	}
	results := make([]houseResult, len(houses))

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	e.logf("scheduling appliances under %d strategies", len(strategy.Variants()))
	for i, h := range houses {
		i, h := i, h
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = houseResult{
				demand: h.Schedule(tl, ratios),
				prices: h.Prices(tl, ratios, p.LowerPrice, p.HigherPrice, p.Households),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fleet := household.Demand{
		Smart:        &model.Profile{},
		Uncontrolled: &model.Profile{},
		SpreadOut:    &model.Profile{},
	}
	costs := map[string]float64{}
	dropped := 0
	for i, r := range results {
		for _, v := range strategy.Variants() {
			fleet.ByVariant(v).Add(0, r.demand.ByVariant(v).Slice(0, tl.Count))
			costs[v.String()] += household.Cost(r.demand.ByVariant(v), r.prices, tl)
		}
		dropped += len(houses[i].Violations)
	}
	if dropped > 0 {
		e.logf("warning: dropped %d usage events with inconsistent windows", dropped)
	}

	agg := NewAggregator(tl.Count)
	for i := 0; i < tl.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sample, err := pred.Sample(i)
		if err != nil {
			return nil, err
		}
		row := model.ResultRow{
			Datetime:            tl.Time(i),
			PredictedBaseDemand: sample.PredictedKW,
			ActualBaseDemand:    sample.ActualKW,
			TargetDemand:        targetVals[i],
			SmartDemand:         fleet.Smart.At(i),
			UncontrolledDemand:  fleet.Uncontrolled.At(i),
			SpreadOutDemand:     fleet.SpreadOut.At(i),
			PriceRatio:          ratioVals[i],
		}
		if err := agg.Append(i, row); err != nil {
			return nil, err
		}
	}

	rows, err := agg.Finalize(tl.Count)
	if err != nil {
		return nil, err
	}

	return &Result{
		Description: model.RunDescription{
			StartingDatetime: tl.Start,
			SimulationLength: tl.Count / tl.IntervalsPerDay(),
			HouseCount:       p.Households,
			LowerPrice:       p.LowerPrice,
			HigherPrice:      p.HigherPrice,
		},
		Rows:          rows,
		Costs:         costs,
		DroppedEvents: dropped,
	}, nil
}
