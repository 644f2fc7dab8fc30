package codec

import (
	"encoding/binary"

	"github.com/solstable/stableamm/constants"
)

// NPool is the decoded form of the fixed 2048-byte N-token pool account
// blob (spec.md §3). Unused mint/vault/balance slots past NTokens are
// zero, per the account's wire contract.
type NPool struct {
	Authority solana32
	NTokens   uint8
	Paused    bool
	Bump      uint8

	Amp      uint64
	Fee      uint64
	AdminFee uint64
	LPSupply uint64

	Mints    [constants.MaxTokens]solana32
	Vaults   [constants.MaxTokens]solana32
	LPMint   solana32
	Balances [constants.MaxTokens]uint64
	AdminFeeAccum [constants.MaxTokens]uint64

	TotalVolume   uint64
	TradeCount    uint64
	LastTradeSlot uint64
}

const npoolMinPrefix = 8 + 32 + 1 + 1 + 1 + 5

// Span returns NPool's fixed wire size.
func (n *NPool) Span() uint64 { return uint64(constants.NPoolAccountSize) }

// Offset returns the byte offset of field within a serialized NPool
// blob, or 0 if field is unknown.
func (n *NPool) Offset(field string) uint64 {
	switch field {
	case "Authority":
		return 8
	case "Amp":
		return npoolMinPrefix
	case "Mints":
		return npoolMinPrefix + 8*4
	case "Vaults":
		return npoolMinPrefix + 8*4 + 32*constants.MaxTokens
	}
	return 0
}

// DecodeNPool parses a 2048-byte N-token pool account blob with the
// same reject/ignore rules as DecodePool.
func DecodeNPool(data []byte) (*NPool, error) {
	if len(data) < npoolMinPrefix {
		return nil, ErrInsufficientData
	}
	if string(data[0:8]) != constants.NPoolDiscriminator {
		return nil, ErrInvalidDiscriminator
	}
	if len(data) < constants.NPoolAccountSize {
		return nil, ErrInvalidFormat
	}

	n := &NPool{}
	off := 8

	copy(n.Authority[:], data[off:off+32])
	off += 32

	n.NTokens = data[off]
	off++
	n.Paused = data[off] != 0
	off++
	n.Bump = data[off]
	off++
	off += 5 // reserved padding

	readU64 := func() uint64 {
		v := binary.LittleEndian.Uint64(data[off : off+8])
		off += 8
		return v
	}

	n.Amp = readU64()
	n.Fee = readU64()
	n.AdminFee = readU64()
	n.LPSupply = readU64()

	for i := 0; i < constants.MaxTokens; i++ {
		copy(n.Mints[i][:], data[off:off+32])
		off += 32
	}
	for i := 0; i < constants.MaxTokens; i++ {
		copy(n.Vaults[i][:], data[off:off+32])
		off += 32
	}
	copy(n.LPMint[:], data[off:off+32])
	off += 32

	for i := 0; i < constants.MaxTokens; i++ {
		n.Balances[i] = readU64()
	}
	for i := 0; i < constants.MaxTokens; i++ {
		n.AdminFeeAccum[i] = readU64()
	}

	n.TotalVolume = readU64()
	n.TradeCount = readU64()
	n.LastTradeSlot = readU64()

	return n, nil
}

// Serialize writes n back to its full NPoolAccountSize wire form.
func (n *NPool) Serialize() []byte {
	buf := make([]byte, constants.NPoolAccountSize)
	copy(buf[0:8], constants.NPoolDiscriminator)
	off := 8

	copy(buf[off:off+32], n.Authority[:])
	off += 32

	buf[off] = n.NTokens
	off++
	if n.Paused {
		buf[off] = 1
	}
	off++
	buf[off] = n.Bump
	off++
	off += 5

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[off:off+8], v)
		off += 8
	}

	writeU64(n.Amp)
	writeU64(n.Fee)
	writeU64(n.AdminFee)
	writeU64(n.LPSupply)

	for i := 0; i < constants.MaxTokens; i++ {
		copy(buf[off:off+32], n.Mints[i][:])
		off += 32
	}
	for i := 0; i < constants.MaxTokens; i++ {
		copy(buf[off:off+32], n.Vaults[i][:])
		off += 32
	}
	copy(buf[off:off+32], n.LPMint[:])
	off += 32

	for i := 0; i < constants.MaxTokens; i++ {
		writeU64(n.Balances[i])
	}
	for i := 0; i < constants.MaxTokens; i++ {
		writeU64(n.AdminFeeAccum[i])
	}

	writeU64(n.TotalVolume)
	writeU64(n.TradeCount)
	writeU64(n.LastTradeSlot)

	return buf
}
