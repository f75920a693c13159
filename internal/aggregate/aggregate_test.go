package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorGroupsSorted(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(90, 0.6, 12)
	acc.Add(0, 0.5, 40)
	acc.Add(40, 0.6, 20)
	acc.Add(0, 0.2, 55)
	acc.Add(40, 0.2, 33)

	groups := acc.Groups()
	require.Len(t, groups, 3)

	// Angles ascending.
	assert.Equal(t, 0, groups[0].Angle)
	assert.Equal(t, 40, groups[1].Angle)
	assert.Equal(t, 90, groups[2].Angle)

	// Points sorted by field strength, parallel slices kept in step.
	assert.Equal(t, []float64{0.2, 0.5}, groups[0].FieldStrengths)
	assert.Equal(t, []float64{55, 40}, groups[0].CriticalCurrents)
	assert.Equal(t, []float64{0.2, 0.6}, groups[1].FieldStrengths)
	assert.Equal(t, []float64{33, 20}, groups[1].CriticalCurrents)
}

func TestAccumulatorKeepsNaN(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(0, 0.2, 50)
	acc.Add(0, 0.4, math.NaN())

	groups := acc.Groups()
	require.Len(t, groups, 1)
	require.Len(t, groups[0].CriticalCurrents, 2)
	assert.True(t, math.IsNaN(groups[0].CriticalCurrents[1]))
}

func TestFilterMatch(t *testing.T) {
	angle := 40
	field := 0.6

	assert.True(t, Filter{}.Match(90, 1.25))
	assert.True(t, Filter{Angle: &angle}.Match(40, 1.25))
	assert.False(t, Filter{Angle: &angle}.Match(90, 1.25))
	assert.True(t, Filter{Field: &field}.Match(90, 0.6))
	assert.False(t, Filter{Field: &field}.Match(90, 0.2))
	assert.True(t, Filter{Angle: &angle, Field: &field}.Match(40, 0.6))
	assert.False(t, Filter{Angle: &angle, Field: &field}.Match(40, 0.2))
}
