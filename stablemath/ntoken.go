package stablemath

import (
	"fmt"

	"cosmossdk.io/math"
)

// CalcDN generalizes CalcD to an arbitrary token count n = len(balances)
// (2..8 per constants.MaxTokens), per spec.md §4.C's N-token form:
// ann = A*n^n, d_p = D * Π(D/(bal_i*n)).
func CalcDN(balances []uint64, amp uint64) (math.Int, error) {
	n := len(balances)
	if n == 0 {
		return math.Int{}, ErrZeroInput
	}

	s := math.ZeroInt()
	bigBalances := make([]math.Int, n)
	for i, b := range balances {
		if b == 0 {
			return math.ZeroInt(), nil
		}
		bigBalances[i] = math.NewIntFromUint64(b)
		s = s.Add(bigBalances[i])
	}

	nn := int64(1)
	for i := 0; i < n; i++ {
		nn *= int64(n)
	}

	ann := math.NewIntFromUint64(amp).MulRaw(nn)
	if ann.IsZero() {
		return math.Int{}, ErrZeroAmp
	}

	d := s
	one := math.OneInt()
	nPlus1 := math.NewInt(int64(n + 1))
	nInt := math.NewInt(int64(n))

	for iter := 0; iter < NewtonIterationCap; iter++ {
		dP := d
		for _, bal := range bigBalances {
			dP = dP.Mul(d).Quo(bal.Mul(nInt))
		}

		num := ann.Mul(s).Add(dP.Mul(nInt)).Mul(d)
		denom := ann.Sub(one).Mul(d).Add(nPlus1.Mul(dP))

		if denom.IsZero() {
			return math.Int{}, ErrZeroDenom
		}

		dNew := num.Quo(denom)

		if absDiffLE1(dNew, d) {
			return dNew, nil
		}
		d = dNew
	}

	return math.Int{}, fmt.Errorf("%w: D_n did not converge within %d iterations", ErrFailedToConverge, NewtonIterationCap)
}

// SimulateSwapN runs an N-token swap: it updates the input slot, holds D
// fixed at its pre-swap value, and recomputes the output slot by Newton's
// method on the N-token polynomial before applying the flat fee.
func SimulateSwapN(balances []uint64, fromIdx, toIdx int, amountIn, amp, feeBps uint64) (uint64, error) {
	if amountIn == 0 {
		return 0, ErrZeroInput
	}
	n := len(balances)
	if fromIdx < 0 || fromIdx >= n || toIdx < 0 || toIdx >= n || fromIdx == toIdx {
		return 0, fmt.Errorf("stablemath: invalid token index pair (%d, %d) for %d tokens", fromIdx, toIdx, n)
	}

	d, err := CalcDN(balances, amp)
	if err != nil {
		return 0, err
	}

	newBalances := make([]uint64, n)
	copy(newBalances, balances)
	newBalances[fromIdx] += amountIn

	y, err := calcYN(newBalances, toIdx, d, amp)
	if err != nil {
		return 0, err
	}

	bigBalOut := math.NewIntFromUint64(balances[toIdx])
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

// calcYN solves for the new balance of slot outIdx given every other
// slot in balances is already updated, the invariant D, and amp — the
// N-token counterpart of CalcY.
func calcYN(balances []uint64, outIdx int, d math.Int, amp uint64) (math.Int, error) {
	n := len(balances)

	nn := int64(1)
	for i := 0; i < n; i++ {
		nn *= int64(n)
	}
	ann := math.NewIntFromUint64(amp).MulRaw(nn)
	if ann.IsZero() {
		return math.Int{}, ErrZeroAmp
	}

	c := d
	s := math.ZeroInt()
	nInt := math.NewInt(int64(n))
	for i, b := range balances {
		if i == outIdx {
			continue
		}
		bigB := math.NewIntFromUint64(b)
		s = s.Add(bigB)
		c = c.Mul(d).Quo(bigB.Mul(nInt))
	}
	c = c.Mul(d).Quo(ann.MulRaw(int64(n)))

	b := s.Add(d.Quo(ann))

	two := math.NewInt(2)
	y := d
	for iter := 0; iter < NewtonIterationCap; iter++ {
		denom := y.Mul(two).Add(b).Sub(d)
		if denom.IsZero() {
			return math.Int{}, ErrZeroDenom
		}

		yNew := y.Mul(y).Add(c).Quo(denom)

		if absDiffLE1(yNew, y) {
			return yNew, nil
		}
		y = yNew
	}

	return math.Int{}, fmt.Errorf("%w: Y_n did not converge within %d iterations", ErrFailedToConverge, NewtonIterationCap)
}
