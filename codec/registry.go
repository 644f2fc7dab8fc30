package codec

import (
	"encoding/binary"

	"github.com/solstable/stableamm/constants"
)

// registryHeaderSize is Registry's fixed prefix, before the
// variable-length registered-pool table.
const registryHeaderSize = 8 + 32 + 4 + 1 + 3

// Registry is the decoded form of a variable-length registry account: a
// fixed header followed by PoolCount 32-byte pool addresses.
type Registry struct {
	Authority solana32
	Bump      uint8
	Pools     []solana32
}

// DecodeRegistry parses a registry account blob.
func DecodeRegistry(data []byte) (*Registry, error) {
	if len(data) < registryHeaderSize {
		return nil, ErrInsufficientData
	}
	if string(data[0:8]) != constants.RegistryDiscriminator {
		return nil, ErrInvalidDiscriminator
	}

	r := &Registry{}
	off := 8
	copy(r.Authority[:], data[off:off+32])
	off += 32

	count := int(binary.LittleEndian.Uint32(data[off : off+4]))
	off += 4
	r.Bump = data[off]
	off++
	off += 3

	if len(data) < off+count*32 {
		return nil, ErrInvalidFormat
	}
	r.Pools = make([]solana32, count)
	for i := 0; i < count; i++ {
		copy(r.Pools[i][:], data[off:off+32])
		off += 32
	}

	return r, nil
}

// Serialize writes r back to its variable-length wire form.
func (r *Registry) Serialize() []byte {
	size := registryHeaderSize + len(r.Pools)*32
	buf := make([]byte, size)
	copy(buf[0:8], constants.RegistryDiscriminator)
	off := 8
	copy(buf[off:off+32], r.Authority[:])
	off += 32

	binary.LittleEndian.PutUint32(buf[off:off+4], uint32(len(r.Pools)))
	off += 4
	buf[off] = r.Bump
	off++
	off += 3

	for _, p := range r.Pools {
		copy(buf[off:off+32], p[:])
		off += 32
	}

	return buf
}
