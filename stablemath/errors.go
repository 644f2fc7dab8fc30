package stablemath

import "errors"

// Sentinel errors returned by the math engine. Every fallible entry point
// returns either a success value or exactly one of these, wrapped with
// fmt.Errorf where a caller needs more context; tests assert by errors.Is.
// The one exception is SimulateSwapN's rejection of an invalid token index
// pair, which is a plain error that matches none of these sentinels.
var (
	ErrZeroInput        = errors.New("stablemath: zero input")
	ErrZeroAmp          = errors.New("stablemath: amplification coefficient is zero")
	ErrZeroDenom        = errors.New("stablemath: denominator is zero")
	ErrZeroInvariant    = errors.New("stablemath: invariant D is zero")
	ErrZeroSupply       = errors.New("stablemath: LP supply is zero")
	ErrFailedToConverge = errors.New("stablemath: Newton iteration failed to converge")
)
