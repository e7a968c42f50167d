package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Archive holds a bulk-loaded regional demand record: the total grid
// demand series for a known number of households, plus the average
// per-household draw over the same period. It is loaded once before a
// run starts; reads during the run never touch I/O.
type Archive struct {
	// HouseholdCount is how many households are behind the recorded
	// regional series. Engine-side values are scaled by the simulated
	// fleet size over this count.
	HouseholdCount int

	start time.Time
	step  time.Duration

	demandKW        []float64
	householdDrawKW []float64
}

// NewArchive builds an archive from already-decoded series. demandKW is
// required; householdDrawKW may be nil (treated as zero draw).
func NewArchive(start time.Time, step time.Duration, householdCount int, demandKW, householdDrawKW []float64) (*Archive, error) {
	if step <= 0 {
		return nil, fmt.Errorf("archive step must be > 0")
	}
	if householdCount <= 0 {
		return nil, fmt.Errorf("archive household count must be > 0")
	}
	if len(demandKW) == 0 {
		return nil, &DataGapError{What: "empty regional demand series"}
	}
	if householdDrawKW != nil && len(householdDrawKW) != len(demandKW) {
		return nil, fmt.Errorf("household draw series length %d does not match demand series length %d",
			len(householdDrawKW), len(demandKW))
	}
	return &Archive{
		HouseholdCount:  householdCount,
		start:           start,
		step:            step,
		demandKW:        demandKW,
		householdDrawKW: householdDrawKW,
	}, nil
}

// Start returns the first covered instant.
func (a *Archive) Start() time.Time { return a.start }

// End returns the first instant past the coverage.
func (a *Archive) End() time.Time {
	return a.start.Add(time.Duration(len(a.demandKW)) * a.step)
}

// Covers returns a DataGapError unless [from, to) lies inside the archive.
func (a *Archive) Covers(from, to time.Time) error {
	if from.Before(a.start) || to.After(a.End()) {
		return &DataGapError{What: "regional demand coverage", From: from, To: to}
	}
	return nil
}

func (a *Archive) index(t time.Time) (int, error) {
	d := t.Sub(a.start)
	if d < 0 {
		return 0, &DataGapError{What: "regional demand coverage", From: t, To: t}
	}
	i := int(d / a.step)
	if i >= len(a.demandKW) {
		return 0, &DataGapError{What: "regional demand coverage", From: t, To: t}
	}
	return i, nil
}

// DemandAt returns the recorded regional demand (kW) for the archive
// interval containing t.
func (a *Archive) DemandAt(t time.Time) (float64, error) {
	i, err := a.index(t)
	if err != nil {
		return 0, err
	}
	return a.demandKW[i], nil
}

// HouseholdDrawAt returns the recorded average per-household draw (kW)
// for the archive interval containing t.
func (a *Archive) HouseholdDrawAt(t time.Time) (float64, error) {
	i, err := a.index(t)
	if err != nil {
		return 0, err
	}
	if a.householdDrawKW == nil {
		return 0, nil
	}
	return a.householdDrawKW[i], nil
}

// RegionalDemand returns the demand series sampled at the given step
// over [from, to), erroring on any coverage gap.
func (a *Archive) RegionalDemand(from, to time.Time, step time.Duration) ([]float64, error) {
	if err := a.Covers(from, to); err != nil {
		return nil, err
	}
	n := int(to.Sub(from) / step)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := a.DemandAt(from.Add(time.Duration(i) * step))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var csvTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// LoadDemandCSV reads a (timestamp, demand_kw [, household_draw_kw])
// series from a CSV file. Rows must be contiguous with a fixed step; a
// header row is skipped if present.
func LoadDemandCSV(path string, householdCount int) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readDemandCSV(f, householdCount)
}

func readDemandCSV(r io.Reader, householdCount int) (*Archive, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var (
		start   time.Time
		prev    time.Time
		step    time.Duration
		demand  []float64
		draw    []float64
		hasDraw bool
	)

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read demand csv: %w", err)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("demand csv row has %d columns, want at least 2", len(rec))
		}
		ts, err := parseCSVTime(rec[0])
		if err != nil {
			if len(demand) == 0 {
				// header row
				continue
			}
			return nil, err
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("demand csv value %q: %w", rec[1], err)
		}

		if len(demand) == 0 {
			start = ts
			hasDraw = len(rec) >= 3
		} else {
			d := ts.Sub(prev)
			if step == 0 {
				step = d
			} else if d != step {
				return nil, fmt.Errorf("demand csv rows not evenly spaced at %s", ts.Format(time.RFC3339))
			}
		}
		demand = append(demand, v)
		if hasDraw {
			dv, err := strconv.ParseFloat(rec[2], 64)
			if err != nil {
				return nil, fmt.Errorf("demand csv draw value %q: %w", rec[2], err)
			}
			draw = append(draw, dv)
		}
		prev = ts
	}

	if len(demand) < 2 {
		return nil, &DataGapError{What: "demand csv has fewer than two rows"}
	}
	if !hasDraw {
		draw = nil
	}
	return NewArchive(start, step, householdCount, demand, draw)
}

func parseCSVTime(s string) (time.Time, error) {
	for _, layout := range csvTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
