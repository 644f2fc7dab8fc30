package stablemath

import "github.com/solstable/stableamm/internal/bigmath"

// TWAP is the decoded form of the packed u64 time-weighted-average-price
// result: price (scaled 1e6) in bits [0,32), samples in bits [32,48),
// confidence (percentage x100) in bits [48,64).
type TWAP struct {
	Price      uint32
	Samples    uint16
	Confidence uint16
}

// Accumulator observes (price, slot-duration) pairs and derives a TWAP
// from their 128-bit-safe weighted sum, the way an on-chain oracle would
// fold trades into its running accumulator between reads.
type Accumulator struct {
	acc   bigmath.PriceAccumulator
	slots uint64
}

// Observe folds one trade's price, held for the given number of slots,
// into the accumulator.
func (a *Accumulator) Observe(price uint32, slots uint64) {
	a.acc.Accumulate(uint64(price), slots)
	a.slots += slots
}

// Snapshot derives a TWAP from everything observed so far. Confidence is
// the percentage (x100) of the maximum sample count the pool tracks that
// has actually been observed, capped at 100.00%.
func (a *Accumulator) Snapshot(maxSamples uint16, samples uint16) TWAP {
	confidence := uint16(10_000)
	if maxSamples > 0 && samples < maxSamples {
		confidence = uint16(uint32(samples) * 10_000 / uint32(maxSamples))
	}
	return TWAP{
		Price:      uint32(a.acc.Average(a.slots)),
		Samples:    samples,
		Confidence: confidence,
	}
}

// PackTWAP encodes a TWAP into the single u64 the chain returns.
func PackTWAP(t TWAP) uint64 {
	return uint64(t.Price) | uint64(t.Samples)<<32 | uint64(t.Confidence)<<48
}

// UnpackTWAP decodes the packed u64 form back into its three fields.
func UnpackTWAP(raw uint64) TWAP {
	return TWAP{
		Price:      uint32(raw),
		Samples:    uint16(raw >> 32),
		Confidence: uint16(raw >> 48),
	}
}
