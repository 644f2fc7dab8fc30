package stablemath

import "cosmossdk.io/math"

// SwapResult is the secondary simulate-swap entry point's return shape:
// the net amount out after fees, the fee withheld, and a display-only
// price-impact ratio against the naive spot quote.
type SwapResult struct {
	AmountOut    uint64
	Fee          uint64
	PriceImpact  float64
}

// SimulateSwap runs the StableSwap swap simulation of spec.md §4.C: it
// recomputes the invariant D from the current balances, solves for the
// new output balance Y after amountIn is added to the input side, and
// applies the fee (in basis points, floor-divided) to the gross amount
// removed from the output side.
func SimulateSwap(balIn, balOut, amountIn, amp, feeBps uint64) (uint64, error) {
	if amountIn == 0 {
		return 0, ErrZeroInput
	}

	d, err := CalcD(balIn, balOut, amp)
	if err != nil {
		return 0, err
	}

	y, err := CalcY(balIn+amountIn, d, amp)
	if err != nil {
		return 0, err
	}

	bigBalOut := math.NewIntFromUint64(balOut)
	gross := bigBalOut.Sub(y)
	if gross.IsNegative() {
		gross = math.ZeroInt()
	}

	fee := gross.MulRaw(int64(feeBps)).QuoRaw(10_000)
	net := gross.Sub(fee)
	if net.IsNegative() {
		net = math.ZeroInt()
	}

	return net.Uint64(), nil
}

// SimulateSwapDetailed is SimulateSwap's secondary entry point: it
// additionally reports the fee withheld and the price impact against the
// naive constant-price quote amountIn*balOut/balIn. PriceImpact is 0 when
// the naive quote is 0 — there's no meaningful relative impact to report.
func SimulateSwapDetailed(balIn, balOut, amountIn, amp, feeBps uint64) (SwapResult, error) {
	if amountIn == 0 {
		return SwapResult{}, ErrZeroInput
	}

	d, err := CalcD(balIn, balOut, amp)
	if err != nil {
		return SwapResult{}, err
	}

	y, err := CalcY(balIn+amountIn, d, amp)
	if err != nil {
		return SwapResult{}, err
	}

	bigBalOut := math.NewIntFromUint64(balOut)
	gross := bigBalOut.Sub(y)
	if gross.IsNegative() {
		gross = math.ZeroInt()
	}

	fee := gross.MulRaw(int64(feeBps)).QuoRaw(10_000)
	net := gross.Sub(fee)
	if net.IsNegative() {
		net = math.ZeroInt()
	}

	impact := CalcPriceImpact(balIn, balOut, amountIn, net.Uint64())

	return SwapResult{
		AmountOut:   net.Uint64(),
		Fee:         fee.Uint64(),
		PriceImpact: impact,
	}, nil
}

// CalcSpotPrice returns the naive constant-price ratio balOut/balIn as a
// float64. Display-only; must never be used on a consensus-sensitive path.
func CalcSpotPrice(balIn, balOut uint64) float64 {
	if balIn == 0 {
		return 0
	}
	return float64(balOut) / float64(balIn)
}

// CalcPriceImpact returns (expectedOut-actualOut)/expectedOut where
// expectedOut is the naive spot quote amountIn*balOut/balIn. Returns 0
// when expectedOut is 0. Display-only.
func CalcPriceImpact(balIn, balOut, amountIn, actualOut uint64) float64 {
	if balIn == 0 {
		return 0
	}
	expected := float64(amountIn) * float64(balOut) / float64(balIn)
	if expected == 0 {
		return 0
	}
	return (expected - float64(actualOut)) / expected
}
