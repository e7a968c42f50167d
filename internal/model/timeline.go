package model

import (
	"errors"
	"time"
)

// Timeline is the discrete clock shared by every entity in a run.
// Interval i covers [Start + i*Step, Start + (i+1)*Step).
type Timeline struct {
	Start time.Time
	Step  time.Duration
	Count int
}

func NewTimeline(start time.Time, step time.Duration, days int) (Timeline, error) {
	tl := Timeline{Start: start, Step: step}
	if step <= 0 {
		return tl, errors.New("step must be > 0")
	}
	if time.Duration(24)*time.Hour%step != 0 {
		return tl, errors.New("step must divide evenly into one day")
	}
	if days <= 0 {
		return tl, errors.New("days must be > 0")
	}
	tl.Count = days * tl.IntervalsPerDay()
	return tl, nil
}

// IntervalsPerDay returns how many intervals fit in 24 hours.
func (tl Timeline) IntervalsPerDay() int {
	return int(time.Duration(24) * time.Hour / tl.Step)
}

// Time returns the start of interval i. Valid for any i, including
// indexes past the horizon (used when clamping event windows).
func (tl Timeline) Time(i int) time.Time {
	return tl.Start.Add(time.Duration(i) * tl.Step)
}

// Index returns the interval containing t, which may be negative or
// past the horizon if t is outside the run.
func (tl Timeline) Index(t time.Time) int {
	d := t.Sub(tl.Start)
	i := int(d / tl.Step)
	if d < 0 && d%tl.Step != 0 {
		i--
	}
	return i
}

// End returns the first instant after the horizon.
func (tl Timeline) End() time.Time {
	return tl.Time(tl.Count)
}

// StepHours returns the interval length in hours, for kW<->kWh conversion.
func (tl Timeline) StepHours() float64 {
	return tl.Step.Hours()
}

// Contains reports whether interval i is inside the horizon.
func (tl Timeline) Contains(i int) bool {
	return i >= 0 && i < tl.Count
}
