package stablemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCurrentAmp_BeforeStart(t *testing.T) {
	assert.Equal(t, uint64(100), GetCurrentAmp(100, 200, 1000, 2000, 1000))
	assert.Equal(t, uint64(100), GetCurrentAmp(100, 200, 1000, 2000, 500))
}

func TestGetCurrentAmp_AfterEnd(t *testing.T) {
	assert.Equal(t, uint64(200), GetCurrentAmp(100, 200, 1000, 2000, 2000))
	assert.Equal(t, uint64(200), GetCurrentAmp(100, 200, 1000, 2000, 5000))
}

func TestGetCurrentAmp_Midpoint(t *testing.T) {
	assert.Equal(t, uint64(150), GetCurrentAmp(100, 200, 1000, 2000, 1500))
}

func TestGetCurrentAmp_MonotoneIncreasing(t *testing.T) {
	prev := GetCurrentAmp(100, 500, 0, 1000, 0)
	for _, now := range []int64{100, 250, 400, 600, 800, 1000} {
		cur := GetCurrentAmp(100, 500, 0, 1000, now)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestGetCurrentAmp_DegenerateRamp(t *testing.T) {
	assert.Equal(t, uint64(200), GetCurrentAmp(100, 200, 1000, 1000, 1000))
}

func TestRampState_Transitions(t *testing.T) {
	assert.Equal(t, AmpStateStable, RampState(100, 200, 1000, 2000, 500))
	assert.Equal(t, AmpStateRamping, RampState(100, 200, 1000, 2000, 1500))
	assert.Equal(t, AmpStateTerminal, RampState(100, 200, 1000, 2000, 2000))
	assert.Equal(t, AmpStateTerminal, RampState(100, 200, 1000, 2000, 9000))
}
