package bigmath

import "lukechampine.com/uint128"

// PriceAccumulator tracks a cumulative price*slot-duration sum the way an
// on-chain oracle would, wide enough that it never needs to reset across
// a pool's lifetime the way a plain uint64 running total eventually
// would. It is the 128-bit building block stablemath.TWAP is packed
// from before being narrowed to its wire-size fields.
type PriceAccumulator struct {
	total uint128.Uint128
}

// Accumulate adds price (in the pool's fixed-point units) weighted by
// the number of slots it held, and returns the running total.
func (a *PriceAccumulator) Accumulate(price, slots uint64) uint128.Uint128 {
	weighted := uint128.From64(price).Mul64(slots)
	a.total = a.total.Add(weighted)
	return a.total
}

// Total returns the accumulator's current value.
func (a *PriceAccumulator) Total() uint128.Uint128 {
	return a.total
}

// Average divides the accumulated total by the number of elapsed slots,
// saturating at MaxUint64 rather than overflowing if the caller mixes up
// units.
func (a *PriceAccumulator) Average(slots uint64) uint64 {
	if slots == 0 {
		return 0
	}
	q := a.total.Div64(slots)
	if !q.Equals64(0) && q.Cmp(uint128.From64(^uint64(0))) > 0 {
		return ^uint64(0)
	}
	return q.Big().Uint64()
}
