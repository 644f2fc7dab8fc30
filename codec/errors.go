// Package codec parses the on-chain program's fixed-offset account blobs
// into typed records and builds the binary payloads for its instructions.
// Every offset, width, and endianness choice here is a wire contract with
// the chain — see spec.md §4.B and §6.
package codec

import "errors"

var (
	// ErrInsufficientData is returned when a blob is shorter than the
	// kind's documented minimum prefix.
	ErrInsufficientData = errors.New("codec: insufficient data")

	// ErrInvalidDiscriminator is returned when the leading 8 bytes don't
	// match the kind's expected discriminator.
	ErrInvalidDiscriminator = errors.New("codec: invalid discriminator")

	// ErrInvalidFormat is returned when a blob passes the discriminator
	// check but is shorter than the kind's full declared size.
	ErrInvalidFormat = errors.New("codec: invalid format")

	// ErrInvalidLength is returned by base58 helpers when a decoded or
	// input key is not exactly 32 bytes.
	ErrInvalidLength = errors.New("codec: invalid length")
)
