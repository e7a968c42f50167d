// Package strategy implements the three appliance scheduling policies
// compared by a run. The set is closed: every appliance is evaluated
// under all three variants against the identical usage events, so the
// output series are directly comparable counterfactuals.
package strategy

import (
	"fmt"

	"demandsim/internal/model"
)

// Variant identifies one scheduling policy.
type Variant int

const (
	// Uncontrolled starts every event as soon as its window opens.
	Uncontrolled Variant = iota
	// SpreadOut spreads each event's energy evenly across its whole
	// flexibility window.
	SpreadOut
	// Smart places each event where the broadcast price ratio series
	// is cheapest within its window.
	Smart
)

// Variants returns the fixed variant set in output-column order.
func Variants() []Variant {
	return []Variant{Smart, Uncontrolled, SpreadOut}
}

func (v Variant) String() string {
	switch v {
	case Uncontrolled:
		return "uncontrolled"
	case SpreadOut:
		return "spreadout"
	case Smart:
		return "smart"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant maps a name to its Variant.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "uncontrolled":
		return Uncontrolled, nil
	case "spreadout":
		return SpreadOut, nil
	case "smart":
		return Smart, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// Schedule places ev on the timeline under variant v and accumulates
// its draw into dst. ratios is the public price ratio series; only
// Smart reads it. Draws are recorded only for intervals inside
// [0, horizon) and never outside the event's own window
// [EarliestStart, LatestStart+Duration).
//
// If the horizon closes before the window does, the event is forced to
// the last start that still fits, or to its earliest start when nothing
// fits; load is scheduled either way, never dropped.
func Schedule(v Variant, ev model.UsageEvent, horizon int, ratios *model.Profile, dst *model.Profile) {
	switch v {
	case SpreadOut:
		scheduleSpreadOut(ev, horizon, dst)
	case Smart:
		recordRun(dst, smartStart(ev, horizon, ratios), ev, horizon)
	default:
		recordRun(dst, ev.EarliestStart, ev, horizon)
	}
}

// lastValidStart returns the latest start keeping the whole run inside
// both the window and the horizon. May be below EarliestStart when the
// horizon cuts the window short.
func lastValidStart(ev model.UsageEvent, horizon int) int {
	last := ev.LatestStart
	if fit := horizon - ev.Duration; fit < last {
		last = fit
	}
	return last
}

func smartStart(ev model.UsageEvent, horizon int, ratios *model.Profile) int {
	last := lastValidStart(ev, horizon)
	if last < ev.EarliestStart {
		return ev.EarliestStart
	}
	best := ev.EarliestStart
	bestCost := runCost(ratios, ev.EarliestStart, ev.Duration)
	for s := ev.EarliestStart + 1; s <= last; s++ {
		// Strict inequality keeps the earliest start on ties.
		if c := runCost(ratios, s, ev.Duration); c < bestCost {
			best, bestCost = s, c
		}
	}
	return best
}

// runCost is the price exposure of starting at s: the sum of the public
// ratio over the occupied intervals.
func runCost(ratios *model.Profile, s, duration int) float64 {
	cost := 0.0
	for t := s; t < s+duration; t++ {
		cost += ratios.At(t)
	}
	return cost
}

func recordRun(dst *model.Profile, start int, ev model.UsageEvent, horizon int) {
	for t := start; t < start+ev.Duration; t++ {
		if t >= 0 && t < horizon {
			dst.AddAt(t, ev.PowerKW)
		}
	}
}

func scheduleSpreadOut(ev model.UsageEvent, horizon int, dst *model.Profile) {
	end := ev.WindowEnd()
	if end > horizon {
		// The horizon closes before the window does: spread over the
		// remaining intervals so no energy is dropped.
		end = horizon
	}
	span := end - ev.EarliestStart
	if span <= ev.Duration {
		// No flexibility: identical to an immediate start.
		recordRun(dst, ev.EarliestStart, ev, horizon)
		return
	}
	// Same total energy, lower power, spread across the usable window.
	level := ev.PowerKW * float64(ev.Duration) / float64(span)
	for t := ev.EarliestStart; t < end; t++ {
		if t >= 0 {
			dst.AddAt(t, level)
		}
	}
}
