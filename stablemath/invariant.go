package stablemath

import (
	"fmt"

	"cosmossdk.io/math"
)

// nTokens is the fixed token count the two-token invariant is defined
// over (spec.md §4.C: n = 2).
const nTokens = 2

// CalcD computes the StableSwap invariant D for a two-token pool with
// balances x, y and amplification coefficient amp, following spec.md
// §4.C's fixed-point iteration exactly — including its parenthesization,
// which is not algebraically equivalent to the collapsed D^3/(4xy) form
// and must be preserved so that truncating division matches on-chain
// rounding bit-for-bit.
func CalcD(x, y, amp uint64) (math.Int, error) {
	if x == 0 || y == 0 {
		return math.ZeroInt(), nil
	}

	bigX := math.NewIntFromUint64(x)
	bigY := math.NewIntFromUint64(y)
	s := bigX.Add(bigY)

	ann := math.NewIntFromUint64(amp).MulRaw(nTokens * nTokens)
	if ann.IsZero() {
		return math.Int{}, ErrZeroAmp
	}

	d := s
	two := math.NewInt(2)
	three := math.NewInt(3)
	one := math.OneInt()

	for i := 0; i < NewtonIterationCap; i++ {
		dP := d.Mul(d).Quo(bigX.Mul(two))
		dP = dP.Mul(d).Quo(bigY.Mul(two))

		num := ann.Mul(s).Add(dP.Mul(two)).Mul(d)
		denom := ann.Sub(one).Mul(d).Add(dP.Mul(three))

		if denom.IsZero() {
			return math.Int{}, ErrZeroDenom
		}

		dNew := num.Quo(denom)

		if absDiffLE1(dNew, d) {
			return dNew, nil
		}
		d = dNew
	}

	return math.Int{}, fmt.Errorf("%w: D did not converge within %d iterations", ErrFailedToConverge, NewtonIterationCap)
}

// CalcY solves for the new balance of the output token given the new
// balance of the input token xNew, the invariant D, and amp, following
// spec.md §4.C's Y iteration.
func CalcY(xNew uint64, d math.Int, amp uint64) (math.Int, error) {
	ann := math.NewIntFromUint64(amp).MulRaw(nTokens * nTokens)
	if ann.IsZero() {
		return math.Int{}, ErrZeroAmp
	}

	bigXNew := math.NewIntFromUint64(xNew)
	two := math.NewInt(2)

	c := d.Mul(d).Quo(bigXNew.Mul(two))
	c = c.Mul(d).Quo(ann.Mul(two))

	b := bigXNew.Add(d.Quo(ann))

	y := d
	for i := 0; i < NewtonIterationCap; i++ {
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

	return math.Int{}, fmt.Errorf("%w: Y did not converge within %d iterations", ErrFailedToConverge, NewtonIterationCap)
}

// absDiffLE1 reports whether |a-b| <= 1, the convergence test both the D
// and Y fixed-point loops use.
func absDiffLE1(a, b math.Int) bool {
	diff := a.Sub(b)
	if diff.IsNegative() {
		diff = diff.Neg()
	}
	return diff.LTE(math.OneInt())
}

// NewtonIterationCap is the maximum number of fixed-point iterations
// CalcD, CalcY, CalcDN, and SimulateSwapN will run before failing with
// ErrFailedToConverge.
const NewtonIterationCap = 255
