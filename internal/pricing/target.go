// Package pricing turns predicted base demand into the target demand
// households should absorb, and the target into the broadcast price
// signal that steers them there.
package pricing

import (
	"errors"
	"fmt"

	"demandsim/internal/model"
)

// ProfileKind selects how the distributor's desired total demand curve
// is shaped.
type ProfileKind string

const (
	// ProfileFlat targets a constant total demand.
	ProfileFlat ProfileKind = "flat"
	// ProfileFollow targets exactly the predicted base demand, i.e.
	// zero controllable demand.
	ProfileFollow ProfileKind = "follow"
	// ProfileFlatten targets each day's mean predicted base demand,
	// filling valleys and shaving peaks.
	ProfileFlatten ProfileKind = "flatten"
)

// TargetProfile is the distributor-chosen total demand profile.
type TargetProfile struct {
	Kind   ProfileKind
	FlatKW float64 // only for ProfileFlat
}

func (p TargetProfile) Validate() error {
	switch p.Kind {
	case ProfileFlat:
		if p.FlatKW < 0 {
			return errors.New("flat target must be >= 0 kW")
		}
		return nil
	case ProfileFollow, ProfileFlatten:
		return nil
	default:
		return fmt.Errorf("unknown target profile kind %q", p.Kind)
	}
}

// Allocator computes per-interval target demand: the distributor's
// desired total minus the predicted base. Pure with respect to its
// construction inputs.
type Allocator struct {
	profile    TargetProfile
	tl         model.Timeline
	predicted  []float64
	dailyMeans []float64
}

func NewAllocator(profile TargetProfile, tl model.Timeline, predicted []float64) (*Allocator, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if len(predicted) != tl.Count {
		return nil, fmt.Errorf("predicted series length %d does not match horizon %d", len(predicted), tl.Count)
	}
	a := &Allocator{profile: profile, tl: tl, predicted: predicted}
	if profile.Kind == ProfileFlatten {
		perDay := tl.IntervalsPerDay()
		days := tl.Count / perDay
		a.dailyMeans = make([]float64, days)
		for d := 0; d < days; d++ {
			sum := 0.0
			for i := d * perDay; i < (d+1)*perDay; i++ {
				sum += predicted[i]
			}
			a.dailyMeans[d] = sum / float64(perDay)
		}
	}
	return a, nil
}

// Total returns the desired total demand for interval i.
func (a *Allocator) Total(i int) float64 {
	switch a.profile.Kind {
	case ProfileFlat:
		return a.profile.FlatKW
	case ProfileFollow:
		return a.predicted[i]
	default: // ProfileFlatten
		return a.dailyMeans[i/a.tl.IntervalsPerDay()]
	}
}

// Target returns the controllable demand households should absorb in
// interval i. Negative means households should hold back demand.
func (a *Allocator) Target(i int) float64 {
	return a.Total(i) - a.predicted[i]
}
