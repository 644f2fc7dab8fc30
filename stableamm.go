// Package stableamm is the client-side SDK for the hybrid StableSwap AMM
// program: it decodes its accounts, builds its instructions, and runs
// its invariant math locally, without ever talking to a cluster itself.
// It is a thin flat re-export over constants, codec, stablemath, and
// pda, mirroring the way the teacher's pkg.Pool interface flattens
// several protocol-specific packages into one surface.
package stableamm

import (
	"github.com/gagliardetto/solana-go"

	"github.com/solstable/stableamm/codec"
	"github.com/solstable/stableamm/constants"
	"github.com/solstable/stableamm/pda"
	"github.com/solstable/stableamm/stablemath"
)

// ProgramID is the default on-chain program this SDK targets.
var ProgramID = constants.DefaultProgramID

// Pool decodes a two-token pool account blob.
func Pool(data []byte) (*codec.Pool, error) { return codec.DecodePool(data) }

// NPool decodes an N-token pool account blob.
func NPool(data []byte) (*codec.NPool, error) { return codec.DecodeNPool(data) }

// DerivePool derives the PDA for a two-token pool's seed pair.
func DerivePool(mint0, mint1 solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return pda.DerivePool(mint0, mint1, programID)
}

// DeriveVault derives the PDA for one of a pool's token vaults.
func DeriveVault(pool, mint solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return pda.DeriveVault(pool, mint, programID)
}

// SimulateSwap runs the two-token invariant locally and returns the
// amount a swap would output, net of fees.
func SimulateSwap(balIn, balOut, amountIn, amp, feeBps uint64) (uint64, error) {
	return stablemath.SimulateSwap(balIn, balOut, amountIn, amp, feeBps)
}

// SimulateSwapN runs the N-token invariant locally.
func SimulateSwapN(balances []uint64, fromIdx, toIdx int, amountIn, amp, feeBps uint64) (uint64, error) {
	return stablemath.SimulateSwapN(balances, fromIdx, toIdx, amountIn, amp, feeBps)
}

// BuildSwapSimple builds a two-token swap instruction payload.
func BuildSwapSimple(amountIn, minOut uint64) ([]byte, error) {
	return codec.BuildSwapSimple(codec.SwapSimpleArgs{AmountIn: amountIn, MinOut: minOut})
}

// GetCurrentAmp returns the amplification coefficient in effect at now,
// linearly interpolated across an in-progress ramp.
func GetCurrentAmp(initAmp, targetAmp uint64, rampStart, rampEnd, now int64) uint64 {
	return stablemath.GetCurrentAmp(initAmp, targetAmp, rampStart, rampEnd, now)
}
