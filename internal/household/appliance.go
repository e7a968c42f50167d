package household

import (
	"math"
	"math/rand"

	"demandsim/internal/data"
	"demandsim/internal/model"
)

// Appliance is one flexible load in a household: a rated power and the
// usage events it will run over the horizon. Events are fixed at
// construction and shared verbatim by all three strategy variants.
type Appliance struct {
	Name    string
	PowerKW float64
	Events  []model.UsageEvent
}

// NewAppliance validates events and keeps the consistent ones. Events
// with an inconsistent flexibility window are returned as violations
// for the caller to record; one malformed record does not invalidate
// the appliance.
func NewAppliance(name string, powerKW float64, events []model.UsageEvent) (*Appliance, []*model.ConstraintViolation) {
	a := &Appliance{Name: name, PowerKW: powerKW}
	var dropped []*model.ConstraintViolation
	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			dropped = append(dropped, err.(*model.ConstraintViolation))
			continue
		}
		a.Events = append(a.Events, ev)
	}
	return a, dropped
}

// GenerateAppliance draws one usage event per active day from the
// template's class statistics. The template seed fully determines the
// result. Events with an inconsistent window are returned as
// violations for the run's warning log.
func GenerateAppliance(tmpl data.ApplianceTemplate, tl model.Timeline) (*Appliance, []*model.ConstraintViolation) {
	rng := rand.New(rand.NewSource(tmpl.Seed))
	class := tmpl.Class
	perDay := tl.IntervalsPerDay()
	stepsPerHour := float64(perDay) / 24
	days := tl.Count / perDay

	var events []model.UsageEvent
	for day := 0; day < days; day++ {
		if rng.Float64() >= class.DailyUse {
			continue
		}
		startH := class.EarliestHour + rng.Float64()*(class.LatestHour-class.EarliestHour)
		durationH := class.MinDurationH + rng.Float64()*(class.MaxDurationH-class.MinDurationH)
		flexH := class.MinFlexHours + rng.Float64()*(class.FlexHours-class.MinFlexHours)

		earliest := day*perDay + int(startH*stepsPerHour)
		duration := int(math.Ceil(durationH * stepsPerHour))
		if duration < 1 {
			duration = 1
		}
		events = append(events, model.UsageEvent{
			EarliestStart: earliest,
			LatestStart:   earliest + int(flexH*stepsPerHour),
			Duration:      duration,
			PowerKW:       tmpl.PowerKW,
		})
	}

	return NewAppliance(class.Name, tmpl.PowerKW, events)
}
