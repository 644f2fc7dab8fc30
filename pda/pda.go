// Package pda derives program-controlled addresses the same way the
// chain does: concatenate seeds with a bump byte, hash with SHA-256, and
// accept only digests that fail the Ed25519 point-validity test.
package pda

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/gagliardetto/solana-go"
)

// pdaMarker is appended to every hash input per the chain's derivation
// scheme (spec.md §4.D).
const pdaMarker = "ProgramDerivedAddress"

// FindProgramAddress searches bumps 255 down to 0 for the first digest
// that is off the Ed25519 curve, returning that digest and the bump that
// produced it.
func FindProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		digest := hashSeeds(seeds, byte(bump), programID)
		if !isOnCurve(digest) {
			return solana.PublicKeyFromBytes(digest), uint8(bump), nil
		}
	}
	return solana.PublicKey{}, 0, ErrNoValidBump
}

// CreateProgramAddress skips the bump search: it hashes seeds and bump
// once and fails ErrOnCurve if the resulting digest happens to be a
// valid Ed25519 point.
func CreateProgramAddress(seeds [][]byte, bump uint8, programID solana.PublicKey) (solana.PublicKey, error) {
	digest := hashSeeds(seeds, bump, programID)
	if isOnCurve(digest) {
		return solana.PublicKey{}, ErrOnCurve
	}
	return solana.PublicKeyFromBytes(digest), nil
}

func hashSeeds(seeds [][]byte, bump byte, programID solana.PublicKey) []byte {
	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write([]byte{bump})
	h.Write(programID.Bytes())
	h.Write([]byte(pdaMarker))
	return h.Sum(nil)
}

// isOnCurve reports whether point decodes to a valid compressed Ed25519
// point. This replaces the "simplified" heuristic spec.md's REDESIGN
// FLAG calls out as a defect: Point.SetBytes performs the full
// decompression — recovering x from y and the sign bit via the curve
// equation y^2-1 = (d*y^2+1)*x^2 mod p — and only succeeds when a valid
// x exists, so a false positive here is not possible the way a
// heuristic bit-pattern check would allow.
func isOnCurve(point []byte) bool {
	if len(point) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(point)
	return err == nil
}

// fmtSeed is a small helper the labelled wrappers use to turn a uint64
// id into its little-endian seed bytes (seeds are always raw byte
// strings on the wire).
func fmtSeed(id uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(id >> (8 * i))
	}
	return b
}
