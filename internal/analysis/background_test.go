package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func TestFitBackgroundRecoversLine(t *testing.T) {
	x := linspace(0, 10, 101)
	y := make([]float64, len(x))
	for i := range x {
		y[i] = 3 + 0.5*x[i]
	}

	bg, err := FitBackground(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 3, bg.Intercept, 1e-9)
	assert.InDelta(t, 0.5, bg.Slope, 1e-9)
	assert.Equal(t, x[len(x)/2], bg.Estimate)
}

func TestCorrectVoltageLinearInput(t *testing.T) {
	// A purely ohmic signal must correct to ~0 across the full range, not
	// just the background window.
	x := linspace(0, 10, 101)
	y := make([]float64, len(x))
	for i := range x {
		y[i] = -1.5 + 2*x[i]
	}

	bg, err := FitBackground(x, y)
	require.NoError(t, err)

	for i, c := range CorrectVoltage(x, y, bg) {
		assert.InDelta(t, 0, c, 1e-6, "sample %d", i)
	}
}

func TestFitBackgroundErrors(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		_, err := FitBackground([]float64{1, 2, 3}, []float64{1, 2})
		assert.Error(t, err)
	})

	t.Run("too few samples", func(t *testing.T) {
		_, err := FitBackground([]float64{1}, []float64{1})
		assert.Error(t, err)
	})

	t.Run("no samples below midpoint", func(t *testing.T) {
		// Constant current: nothing is strictly below the midpoint value.
		_, err := FitBackground([]float64{5, 5, 5, 5}, []float64{1, 2, 3, 4})
		assert.Error(t, err)
	})
}
