package stablemath

import "cosmossdk.io/math"

// CalcLPMintAmount computes the LP tokens minted for a deposit of amt0,
// amt1 into a pool currently holding bal0, bal1 with lpSupply outstanding
// LP tokens, per spec.md §4.C. The first deposit (lpSupply == 0) mints
// isqrt(amt0*amt1); subsequent deposits mint proportionally to the growth
// of the invariant D.
func CalcLPMintAmount(bal0, bal1, amt0, amt1, lpSupply, amp uint64) (uint64, error) {
	if lpSupply == 0 {
		product := math.NewIntFromUint64(amt0).Mul(math.NewIntFromUint64(amt1))
		return IsqrtBig(product).Uint64(), nil
	}

	d0, err := CalcD(bal0, bal1, amp)
	if err != nil {
		return 0, err
	}
	if d0.IsZero() {
		return 0, ErrZeroInvariant
	}

	d1, err := CalcD(bal0+amt0, bal1+amt1, amp)
	if err != nil {
		return 0, err
	}

	lp := math.NewIntFromUint64(lpSupply).Mul(d1.Sub(d0)).Quo(d0)
	if lp.IsNegative() {
		lp = math.ZeroInt()
	}
	return lp.Uint64(), nil
}

// CalcWithdrawAmounts computes the proportional withdrawal of both pool
// balances for a burn of lpAmount LP tokens against lpSupply outstanding.
func CalcWithdrawAmounts(bal0, bal1, lpAmount, lpSupply uint64) (amount0, amount1 uint64, err error) {
	if lpSupply == 0 {
		return 0, 0, ErrZeroSupply
	}

	bigLPAmount := math.NewIntFromUint64(lpAmount)
	bigLPSupply := math.NewIntFromUint64(lpSupply)

	a0 := math.NewIntFromUint64(bal0).Mul(bigLPAmount).Quo(bigLPSupply)
	a1 := math.NewIntFromUint64(bal1).Mul(bigLPAmount).Quo(bigLPSupply)

	return a0.Uint64(), a1.Uint64(), nil
}

// VirtualPrice returns D*1e18/lpSupply, the LP share price used by
// callers to value their position without a live swap quote.
func VirtualPrice(d math.Int, lpSupply uint64) (math.Int, error) {
	if lpSupply == 0 {
		return math.Int{}, ErrZeroSupply
	}
	scale := math.NewInt(1_000_000_000_000_000_000)
	return d.Mul(scale).Quo(math.NewIntFromUint64(lpSupply)), nil
}

// Isqrt returns floor(sqrt(n)) via Newton's method over integers, per
// spec.md §4.C: starting from y = (n+1)/2, iterate y = (y + n/y) / 2
// until y*y <= n < (y+1)*(y+1).
func Isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// IsqrtBig is Isqrt's arbitrary-precision counterpart, used where the
// radicand (e.g. amt0*amt1 for a first LP deposit) can exceed 64 bits.
func IsqrtBig(n math.Int) math.Int {
	if n.IsZero() {
		return math.ZeroInt()
	}
	two := math.NewInt(2)
	x := n
	y := n.Add(math.OneInt()).Quo(two)
	for y.LT(x) {
		x = y
		y = x.Add(n.Quo(x)).Quo(two)
	}
	return x
}
