package pda

import "errors"

// Sentinel errors returned by address derivation.
var (
	// ErrNoValidBump is returned when every bump in [0,255] produces an
	// on-curve digest.
	ErrNoValidBump = errors.New("pda: no valid bump found")

	// ErrOnCurve is returned by CreateProgramAddress when the caller's
	// fixed bump happens to land on the curve.
	ErrOnCurve = errors.New("pda: digest is a valid Ed25519 curve point")
)
