// Package predictor reconstructs the base demand of the simulated
// region: the portion of total grid demand not attributable to the
// controllable household appliances.
package predictor

import (
	"fmt"
	"time"

	"demandsim/internal/data"
	"demandsim/internal/model"
)

// smoothingHalfWidth is the half-width of the centered moving average
// that produces the predicted curve from the recorded series.
const smoothingHalfWidth = 2 * time.Hour

// Sample is the pair of base demand values for one interval.
// Predicted is the deterministic forecast; Actual is the realized
// (noisy) value from the archive. Both are kW and non-negative.
type Sample struct {
	Interval    int
	PredictedKW float64
	ActualKW    float64
}

// Predictor supplies per-interval base demand samples, scaled from the
// archive's recorded fleet down to the simulated household count. All
// archive reads happen at construction; Sample never does I/O.
type Predictor struct {
	tl        model.Timeline
	predicted []float64
	actual    []float64
}

// New bulk-computes predicted and actual base demand over the whole
// timeline. Returns a DataGapError before any row is emitted if the
// archive does not cover the horizon plus the smoothing margin.
func New(archive *data.Archive, tl model.Timeline, households int) (*Predictor, error) {
	if households <= 0 {
		return nil, fmt.Errorf("households must be > 0")
	}
	if err := archive.Covers(tl.Start.Add(-smoothingHalfWidth), tl.End().Add(smoothingHalfWidth)); err != nil {
		return nil, err
	}

	scale := float64(households) / float64(archive.HouseholdCount)
	halfSteps := int(smoothingHalfWidth / tl.Step)

	// baseAt is the realized base demand at interval i: total regional
	// demand scaled to the simulated fleet, minus what the fleet's own
	// households were drawing.
	baseAt := func(i int) (float64, error) {
		t := tl.Time(i)
		total, err := archive.DemandAt(t)
		if err != nil {
			return 0, err
		}
		draw, err := archive.HouseholdDrawAt(t)
		if err != nil {
			return 0, err
		}
		base := total*scale - draw*float64(households)
		if base < 0 {
			base = 0
		}
		return base, nil
	}

	p := &Predictor{
		tl:        tl,
		predicted: make([]float64, tl.Count),
		actual:    make([]float64, tl.Count),
	}
	for i := 0; i < tl.Count; i++ {
		v, err := baseAt(i)
		if err != nil {
			return nil, err
		}
		p.actual[i] = v
	}
	for i := 0; i < tl.Count; i++ {
		sum := 0.0
		n := 0
		for j := i - halfSteps; j <= i+halfSteps; j++ {
			v, err := baseAt(j)
			if err != nil {
				return nil, err
			}
			sum += v
			n++
		}
		p.predicted[i] = sum / float64(n)
	}
	return p, nil
}

// Sample returns the base demand pair for interval i.
func (p *Predictor) Sample(i int) (Sample, error) {
	if !p.tl.Contains(i) {
		return Sample{}, fmt.Errorf("interval %d outside horizon [0,%d)", i, p.tl.Count)
	}
	return Sample{Interval: i, PredictedKW: p.predicted[i], ActualKW: p.actual[i]}, nil
}

// Predicted returns the full predicted base demand series.
func (p *Predictor) Predicted() []float64 {
	out := make([]float64, len(p.predicted))
	copy(out, p.predicted)
	return out
}
