package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageEventValidate(t *testing.T) {
	valid := UsageEvent{EarliestStart: 4, LatestStart: 10, Duration: 3, PowerKW: 2.0}
	assert.NoError(t, valid.Validate())

	var cv *ConstraintViolation

	err := UsageEvent{EarliestStart: 10, LatestStart: 4, Duration: 3, PowerKW: 2.0}.Validate()
	require.ErrorAs(t, err, &cv)
	assert.Contains(t, cv.Reason, "latest start")

	err = UsageEvent{EarliestStart: 4, LatestStart: 10, Duration: 0, PowerKW: 2.0}.Validate()
	require.ErrorAs(t, err, &cv)
	assert.Contains(t, cv.Reason, "duration")

	err = UsageEvent{EarliestStart: 4, LatestStart: 10, Duration: 3, PowerKW: -1}.Validate()
	require.ErrorAs(t, err, &cv)
	assert.Contains(t, cv.Reason, "power")
}

func TestUsageEventWindowAndEnergy(t *testing.T) {
	ev := UsageEvent{EarliestStart: 4, LatestStart: 10, Duration: 3, PowerKW: 2.0}
	assert.Equal(t, 13, ev.WindowEnd())
	// 2 kW for 3 quarter-hour intervals.
	assert.InDelta(t, 1.5, ev.EnergyKWh(0.25), 1e-12)
}
