package model

// Profile is a float series indexed by interval number. It is the
// working representation for every per-interval quantity in a run:
// demand curves, target demand, price ratios, price levels.
// Reads outside the stored range return zero.
type Profile struct {
	start  int
	values []float64
}

// NewProfile returns a profile whose first stored value is at interval start.
func NewProfile(start int, values []float64) *Profile {
	p := &Profile{start: start, values: make([]float64, len(values))}
	copy(p.values, values)
	return p
}

// At returns the value at interval i, zero when i is outside the stored range.
func (p *Profile) At(i int) float64 {
	if p == nil {
		return 0
	}
	idx := i - p.start
	if idx < 0 || idx >= len(p.values) {
		return 0
	}
	return p.values[idx]
}

// Slice returns the values for intervals [from, to), zero-filled where
// the profile has no data.
func (p *Profile) Slice(from, to int) []float64 {
	if to < from {
		to = from
	}
	out := make([]float64, to-from)
	if p == nil {
		return out
	}
	for i := from; i < to; i++ {
		out[i-from] = p.At(i)
	}
	return out
}

// Set writes values starting at interval from, growing the profile as needed.
func (p *Profile) Set(from int, values []float64) {
	p.ensure(from, from+len(values))
	copy(p.values[from-p.start:], values)
}

// Add accumulates values into the profile starting at interval from.
func (p *Profile) Add(from int, values []float64) {
	p.ensure(from, from+len(values))
	base := from - p.start
	for i, v := range values {
		p.values[base+i] += v
	}
}

// AddAt accumulates a single value at interval i.
func (p *Profile) AddAt(i int, v float64) {
	p.ensure(i, i+1)
	p.values[i-p.start] += v
}

// Total returns the sum of values over [from, to).
func (p *Profile) Total(from, to int) float64 {
	sum := 0.0
	for i := from; i < to; i++ {
		sum += p.At(i)
	}
	return sum
}

// Scale multiplies every stored value by f.
func (p *Profile) Scale(f float64) {
	for i := range p.values {
		p.values[i] *= f
	}
}

// Len returns the number of stored values.
func (p *Profile) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values)
}

func (p *Profile) ensure(from, to int) {
	if len(p.values) == 0 {
		p.start = from
		p.values = make([]float64, to-from)
		return
	}
	if from < p.start {
		grown := make([]float64, p.start-from+len(p.values))
		copy(grown[p.start-from:], p.values)
		p.values = grown
		p.start = from
	}
	if need := to - p.start; need > len(p.values) {
		grown := make([]float64, need)
		copy(grown, p.values)
		p.values = grown
	}
}
