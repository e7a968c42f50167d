// Package household models the controllable side of the grid: houses
// holding flexible appliances whose usage events get scheduled under
// each strategy variant. A household owns no cross-household state;
// the only external input it reads is the broadcast price signal.
package household

import (
	"demandsim/internal/data"
	"demandsim/internal/model"
	"demandsim/internal/pricing"
	"demandsim/internal/strategy"
)

type Household struct {
	ID         int
	Appliances []*Appliance

	// Violations are the usage events dropped for inconsistent
	// flexibility windows, kept for the run's warning log.
	Violations []*model.ConstraintViolation
}

// Generate instantiates a household from its sampled appliance
// templates. Deterministic for a given template set and timeline.
func Generate(id int, templates []data.ApplianceTemplate, tl model.Timeline) *Household {
	h := &Household{ID: id}
	for _, tmpl := range templates {
		a, dropped := GenerateAppliance(tmpl, tl)
		h.Appliances = append(h.Appliances, a)
		h.Violations = append(h.Violations, dropped...)
	}
	return h
}

// New builds a household from explicit appliances, recording any
// dropped events.
func New(id int, appliances []*Appliance, violations []*model.ConstraintViolation) *Household {
	return &Household{ID: id, Appliances: appliances, Violations: violations}
}

// Demand is the household's per-strategy draw over the horizon, all
// three computed from the identical event set.
type Demand struct {
	Smart        *model.Profile
	Uncontrolled *model.Profile
	SpreadOut    *model.Profile
}

// ByVariant returns the profile for one variant.
func (d Demand) ByVariant(v strategy.Variant) *model.Profile {
	switch v {
	case strategy.SpreadOut:
		return d.SpreadOut
	case strategy.Smart:
		return d.Smart
	default:
		return d.Uncontrolled
	}
}

// Schedule places every appliance event under every variant. ratios is
// the broadcast price ratio series for the horizon.
func (h *Household) Schedule(tl model.Timeline, ratios *model.Profile) Demand {
	d := Demand{
		Smart:        &model.Profile{},
		Uncontrolled: &model.Profile{},
		SpreadOut:    &model.Profile{},
	}
	for _, a := range h.Appliances {
		for _, ev := range a.Events {
			for _, v := range strategy.Variants() {
				strategy.Schedule(v, ev, tl.Count, ratios, d.ByVariant(v))
			}
		}
	}
	return d
}

// Prices materializes the household's own price level series from the
// broadcast ratio and the fair-partition assignment.
func (h *Household) Prices(tl model.Timeline, ratios *model.Profile, lower, higher float64, fleet int) *model.Profile {
	levels := make([]float64, tl.Count)
	for i := 0; i < tl.Count; i++ {
		if pricing.AssignHigh(ratios.At(i), h.ID, i, fleet) {
			levels[i] = higher
		} else {
			levels[i] = lower
		}
	}
	return model.NewProfile(0, levels)
}

// Cost prices a demand profile against a price level series.
func Cost(demand, prices *model.Profile, tl model.Timeline) float64 {
	total := 0.0
	for i := 0; i < tl.Count; i++ {
		total += demand.At(i) * prices.At(i) * tl.StepHours()
	}
	return total
}
