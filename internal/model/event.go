package model

import "fmt"

// UsageEvent is one planned run of an appliance: it draws PowerKW for
// Duration consecutive intervals, and may start anywhere in
// [EarliestStart, LatestStart]. All fields are interval indexes on the
// run's timeline except PowerKW.
type UsageEvent struct {
	EarliestStart int
	LatestStart   int
	Duration      int
	PowerKW       float64
}

// ConstraintViolation reports an internally inconsistent flexibility
// window. The affected event is dropped with a warning; it does not
// abort the run.
type ConstraintViolation struct {
	Event  UsageEvent
	Reason string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("scheduling constraint violated: %s (earliest=%d latest=%d duration=%d)",
		e.Reason, e.Event.EarliestStart, e.Event.LatestStart, e.Event.Duration)
}

// Validate checks the window invariants.
func (ev UsageEvent) Validate() error {
	if ev.LatestStart < ev.EarliestStart {
		return &ConstraintViolation{Event: ev, Reason: "latest start before earliest start"}
	}
	if ev.Duration <= 0 {
		return &ConstraintViolation{Event: ev, Reason: "non-positive duration"}
	}
	if ev.PowerKW < 0 {
		return &ConstraintViolation{Event: ev, Reason: "negative power"}
	}
	return nil
}

// WindowEnd returns the first interval after the latest possible draw,
// i.e. the exclusive end of [EarliestStart, LatestStart+Duration).
func (ev UsageEvent) WindowEnd() int {
	return ev.LatestStart + ev.Duration
}

// EnergyKWh returns the total energy of the event given the interval length.
func (ev UsageEvent) EnergyKWh(stepHours float64) float64 {
	return ev.PowerKW * float64(ev.Duration) * stepHours
}
