package stablemath

// GetCurrentAmp returns the effective amplification coefficient at time
// now, linearly interpolating amp toward target over [rampStart, rampEnd]
// per spec.md §4.C. Degenerate ramps (rampEnd == rampStart, or now past
// either edge) collapse to the boundary values without interpolating.
func GetCurrentAmp(amp, target uint64, rampStart, rampEnd, now int64) uint64 {
	if now >= rampEnd || rampEnd == rampStart {
		return target
	}
	if now <= rampStart {
		return amp
	}

	elapsed := now - rampStart
	duration := rampEnd - rampStart

	if target > amp {
		delta := target - amp
		return amp + uint64(int64(delta)*elapsed/duration)
	}
	delta := amp - target
	return amp - uint64(int64(delta)*elapsed/duration)
}

// AmpRampState is the time-driven ramp state machine of spec.md §4.C.
type AmpRampState int

const (
	AmpStateStable AmpRampState = iota
	AmpStateRamping
	AmpStateTerminal
)

// RampState classifies the ramp at time now. Terminal is absorbing: once
// now reaches rampEnd the ramp never returns to Ramping.
func RampState(initAmp, targetAmp uint64, rampStart, rampEnd, now int64) AmpRampState {
	if initAmp == targetAmp {
		return AmpStateStable
	}
	if now >= rampEnd {
		return AmpStateTerminal
	}
	if now >= rampStart {
		return AmpStateRamping
	}
	return AmpStateStable
}
