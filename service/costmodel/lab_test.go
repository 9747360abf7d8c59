package costmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLab(t *testing.T) {
	lab, err := NewLab()
	require.NoError(t, err)

	assert.Equal(t, 6, lab.Production.Len())
	assert.Equal(t, 4, lab.Development.Len())
	assert.InDelta(t, 1231.98, lab.Production.TotalCost(DefaultHours), 1e-6)
	assert.InDelta(t, 107.698, lab.Development.TotalCost(DefaultHours), 1e-6)
	assert.InDelta(t, 1339.678, lab.TotalCost(DefaultHours), 1e-6)
}

func TestLabOptimize(t *testing.T) {
	lab, err := NewLab()
	require.NoError(t, err)

	before := lab.TotalCost(DefaultHours)
	steps := lab.Optimize(DefaultHours)
	after := lab.TotalCost(DefaultHours)

	require.Len(t, steps, 6)
	for _, s := range steps {
		assert.NoError(t, s.Err, s.Resource)
	}

	assert.Equal(t, "vm-web-prod-01", steps[0].Resource)
	require.NotNil(t, steps[0].Change)
	assert.InDelta(t, 70.08, steps[0].Change.Savings(), 1e-9)

	require.NotNil(t, steps[1].Change)
	assert.InDelta(t, 45.05, steps[1].Change.Savings(), 1e-9)

	// dev app and SQL are already at their smallest settings
	assert.Zero(t, steps[2].Change.Savings())
	assert.Zero(t, steps[3].Change.Savings())

	assert.Equal(t, 4, steps[4].Phase)
	assert.InDelta(t, 30.368, steps[4].Change.Savings(), 1e-9)

	assert.Equal(t, 5, steps[5].Phase)
	assert.Nil(t, steps[5].Change)
	assert.Contains(t, steps[5].Message, "2-5")

	assert.InDelta(t, 1339.678, before, 1e-6)
	assert.InDelta(t, 1194.18, after, 1e-6)
}

func TestLabOptimizeRecordsFailures(t *testing.T) {
	lab, err := NewLab()
	require.NoError(t, err)
	require.NoError(t, lab.Production.Remove("stprodbackup001"))

	steps := lab.Optimize(DefaultHours)
	require.Len(t, steps, 6)
	assert.ErrorIs(t, steps[1].Err, ErrNotFound)
	assert.NoError(t, steps[4].Err)

	// stopping twice is reported without error
	steps = lab.Optimize(DefaultHours)
	assert.Nil(t, steps[4].Change)
	assert.Contains(t, steps[4].Message, "already stopped")
}

func TestLabOptimizeHonoursHours(t *testing.T) {
	lab, err := NewLab()
	require.NoError(t, err)

	const hours = 100.0
	before := lab.TotalCost(hours)
	steps := lab.Optimize(hours)
	after := lab.TotalCost(hours)

	var saved float64
	for _, s := range steps {
		require.NoError(t, s.Err, s.Resource)
		if s.Change != nil {
			saved += s.Change.Savings()
		}
	}

	assert.InDelta(t, 9.6, steps[0].Change.Savings(), 1e-9)
	assert.InDelta(t, 4.16, steps[4].Change.Savings(), 1e-9)
	assert.InDelta(t, 58.81, saved, 1e-6)
	assert.InDelta(t, before-after, saved, 1e-6)
}
