package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerLawMonotonic(t *testing.T) {
	prev := PowerLaw(1, 50, 20)
	for i := 2.0; i <= 100; i++ {
		cur := PowerLaw(i, 50, 20)
		assert.Greater(t, cur, prev, "at I=%g", i)
		prev = cur
	}
}

func TestPowerLawAtCriticalCurrent(t *testing.T) {
	// By construction E(Ic) = Ec, up to the tiny epsilon offset.
	assert.InDelta(t, Ec, PowerLaw(50, 50, 20), 1e-6)
	assert.InDelta(t, Ec, PowerLaw(0.3, 0.3, 8), 1e-6)
}

func TestPowerLawNegativeCurrent(t *testing.T) {
	// The model acts on |I|.
	assert.Equal(t, PowerLaw(-10, 50, 20), PowerLaw(10, 50, 20))
}
