package stableamm

import (
	"github.com/mr-tron/base58"

	"github.com/solstable/stableamm/codec"
)

// EncodeBase58 renders a 32-byte public key the way every Solana
// explorer and wallet does.
func EncodeBase58(key [32]byte) string {
	return base58.Encode(key[:])
}

// DecodeBase58 parses a base-58 string back into a 32-byte public key,
// returning codec.ErrInvalidLength if it doesn't decode to exactly 32
// bytes.
func DecodeBase58(s string) ([32]byte, error) {
	var key [32]byte
	raw, err := base58.Decode(s)
	if err != nil {
		return key, err
	}
	if len(raw) != 32 {
		return key, codec.ErrInvalidLength
	}
	copy(key[:], raw)
	return key, nil
}
