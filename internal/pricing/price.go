package pricing

import (
	"fmt"
	"math"
)

// Signal maps target demand to the broadcast price ratio: the fraction
// of households assigned the high price for an interval.
//
// Calibration is linear against the fleet's expected maximum
// controllable power, clamped to [0,1]:
//
//	ratio = clamp(0.5 - target / (2 * fleetMaxKW))
//
// so target 0 gives 0.5, a target of +fleetMaxKW gives 0 (everyone
// cheap, pull demand in) and -fleetMaxKW gives 1 (everyone expensive,
// push demand away). The ratio is non-increasing in target and carries
// no per-household information.
type Signal struct {
	fleetMaxKW float64
}

// NewSignal calibrates the signal for a fleet. perHouseholdPeakKW is
// the expected simultaneous controllable draw of one household.
func NewSignal(households int, perHouseholdPeakKW float64) (*Signal, error) {
	if households <= 0 {
		return nil, fmt.Errorf("households must be > 0")
	}
	if perHouseholdPeakKW <= 0 {
		return nil, fmt.Errorf("per-household peak must be > 0 kW")
	}
	return &Signal{fleetMaxKW: float64(households) * perHouseholdPeakKW}, nil
}

// Ratio returns the high-price household fraction for a target demand.
func (s *Signal) Ratio(targetKW float64) float64 {
	r := 0.5 - targetKW/(2*s.fleetMaxKW)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// AssignHigh reports whether the given household sees the high price in
// the given interval, under a deterministic fair partition: exactly
// round(ratio*households) households are high each interval, and the
// partition rotates with the interval index so no household is
// permanently favored. The aggregate fraction matches the ratio to
// within one household.
func AssignHigh(ratio float64, household, interval, households int) bool {
	if households <= 0 {
		return false
	}
	k := int(math.Round(ratio * float64(households)))
	rank := (household + interval) % households
	if rank < 0 {
		rank += households
	}
	return rank < k
}
