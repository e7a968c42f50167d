package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignalValidation(t *testing.T) {
	_, err := NewSignal(0, 3.0)
	assert.Error(t, err)
	_, err = NewSignal(100, 0)
	assert.Error(t, err)
	_, err = NewSignal(100, 3.0)
	assert.NoError(t, err)
}

func TestRatioCalibration(t *testing.T) {
	s, err := NewSignal(100, 3.0) // fleet max 300 kW
	require.NoError(t, err)

	assert.Equal(t, 0.5, s.Ratio(0))
	assert.Equal(t, 0.0, s.Ratio(300))
	assert.Equal(t, 1.0, s.Ratio(-300))

	// Saturates beyond the calibration range.
	assert.Equal(t, 0.0, s.Ratio(1000))
	assert.Equal(t, 1.0, s.Ratio(-1000))

	// Non-increasing in target.
	prev := s.Ratio(-400)
	for target := -350.0; target <= 400; target += 50 {
		r := s.Ratio(target)
		assert.LessOrEqual(t, r, prev, "ratio must not rise with target %v", target)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
		prev = r
	}
}

func TestAssignHighAggregateFraction(t *testing.T) {
	const households = 200

	for _, ratio := range []float64{0, 0.1, 0.5, 0.73, 1} {
		for _, interval := range []int{0, 1, 17} {
			high := 0
			for h := 0; h < households; h++ {
				if AssignHigh(ratio, h, interval, households) {
					high++
				}
			}
			assert.InDelta(t, ratio*households, float64(high), 0.5,
				"ratio %v interval %d", ratio, interval)
		}
	}
}

func TestAssignHighRotates(t *testing.T) {
	const households = 10

	// At ratio 0.5, half are high each interval, and the set shifts
	// with the interval so every household takes turns.
	highAtZero := AssignHigh(0.5, 0, 0, households)
	flipped := false
	for interval := 1; interval < households; interval++ {
		if AssignHigh(0.5, 0, interval, households) != highAtZero {
			flipped = true
			break
		}
	}
	assert.True(t, flipped, "household 0 should not stay on one side forever")
}
