package codec

import (
	"encoding/binary"

	"github.com/solstable/stableamm/constants"
)

// Pool is the decoded form of the fixed 1024-byte pool account blob
// (spec.md §3). Field order and widths below are the wire contract;
// trailing reserved bytes past the last candle are never read.
type Pool struct {
	Authority solana32
	Mint0     solana32
	Mint1     solana32
	Vault0    solana32
	Vault1    solana32
	LPMint    solana32

	Amp        uint64
	InitAmp    uint64
	TargetAmp  uint64
	RampStart  int64
	RampStop   int64
	FeeBps     uint64
	AdminFeePct uint64
	Bal0       uint64
	Bal1       uint64
	LPSupply   uint64
	AdminFeesAccumulated uint64
	CumulativeVolume0    uint64
	CumulativeVolume1    uint64

	Paused bool
	Bumps  [5]byte

	PendingAuthority           solana32
	PendingAuthorityEffective  int64
	PendingAmp                 uint64
	PendingAmpEffective        int64

	TradeCount     uint64
	TradeSum       uint64
	MaxPrice       uint32
	MinPrice       uint32
	HourSlotAnchor uint32
	DaySlotAnchor  uint32
	HourIdx        uint8
	DayIdx         uint8

	Bloom [constants.BloomSize]byte

	HourlyCandles [constants.HourlyCandles]Candle
	DailyCandles  [constants.DailyCandles]Candle
}

// solana32 is a raw 32-byte key field — a program address, mint, or
// vault — read verbatim with no interpretation by codec.
type solana32 [32]byte

// Span returns Pool's fixed wire size.
func (p *Pool) Span() uint64 { return uint64(constants.PoolAccountSize) }

// Offset returns the byte offset of field within a serialized Pool
// blob, or 0 if field is unknown. Offsets count from the start of the
// blob, discriminator included.
func (p *Pool) Offset(field string) uint64 {
	switch field {
	case "Authority":
		return 8
	case "Mint0":
		return 8 + 32
	case "Mint1":
		return 8 + 32*2
	case "Vault0":
		return 8 + 32*3
	case "Vault1":
		return 8 + 32*4
	case "LPMint":
		return 8 + 32*5
	case "Amp":
		return 8 + 32*6
	case "Bal0":
		return 8 + 32*6 + 8*7
	case "Bal1":
		return 8 + 32*6 + 8*8
	case "LPSupply":
		return 8 + 32*6 + 8*9
	}
	return 0
}

// poolMinPrefix is the minimum length DecodePool will accept before it
// even checks the discriminator: 8 bytes of tag plus the six key fields.
const poolMinPrefix = 8 + 32*6

// DecodePool parses a 1024-byte pool account blob. It rejects a blob
// shorter than poolMinPrefix with ErrInsufficientData, a mismatched
// discriminator with ErrInvalidDiscriminator, and a blob that is long
// enough for the prefix but short of the full declared size with
// ErrInvalidFormat. Bytes beyond PoolAccountSize are ignored.
func DecodePool(data []byte) (*Pool, error) {
	if len(data) < poolMinPrefix {
		return nil, ErrInsufficientData
	}
	if string(data[0:8]) != constants.PoolDiscriminator {
		return nil, ErrInvalidDiscriminator
	}
	if len(data) < constants.PoolAccountSize {
		return nil, ErrInvalidFormat
	}

	p := &Pool{}
	off := 8

	readKey := func() solana32 {
		var k solana32
		copy(k[:], data[off:off+32])
		off += 32
		return k
	}
	readU64 := func() uint64 {
		v := binary.LittleEndian.Uint64(data[off : off+8])
		off += 8
		return v
	}
	readI64 := func() int64 {
		return int64(readU64())
	}
	readU32 := func() uint32 {
		v := binary.LittleEndian.Uint32(data[off : off+4])
		off += 4
		return v
	}

	p.Authority = readKey()
	p.Mint0 = readKey()
	p.Mint1 = readKey()
	p.Vault0 = readKey()
	p.Vault1 = readKey()
	p.LPMint = readKey()

	p.Amp = readU64()
	p.InitAmp = readU64()
	p.TargetAmp = readU64()
	p.RampStart = readI64()
	p.RampStop = readI64()
	p.FeeBps = readU64()
	p.AdminFeePct = readU64()
	p.Bal0 = readU64()
	p.Bal1 = readU64()
	p.LPSupply = readU64()
	p.AdminFeesAccumulated = readU64()
	p.CumulativeVolume0 = readU64()
	p.CumulativeVolume1 = readU64()

	p.Paused = data[off] != 0
	off++
	copy(p.Bumps[:], data[off:off+5])
	off += 5
	off += 3 // reserved padding

	p.PendingAuthority = readKey()
	p.PendingAuthorityEffective = readI64()
	p.PendingAmp = readU64()
	p.PendingAmpEffective = readI64()

	p.TradeCount = readU64()
	p.TradeSum = readU64()
	p.MaxPrice = readU32()
	p.MinPrice = readU32()
	p.HourSlotAnchor = readU32()
	p.DaySlotAnchor = readU32()
	p.HourIdx = data[off]
	off++
	p.DayIdx = data[off]
	off++
	off += 6 // reserved padding

	copy(p.Bloom[:], data[off:off+constants.BloomSize])
	off += constants.BloomSize

	hourly, n, err := decodeCandleArray(data, off, constants.HourlyCandles)
	if err != nil {
		return nil, err
	}
	copy(p.HourlyCandles[:], hourly)
	off += n

	daily, n, err := decodeCandleArray(data, off, constants.DailyCandles)
	if err != nil {
		return nil, err
	}
	copy(p.DailyCandles[:], daily)
	off += n

	return p, nil
}

// Serialize writes p back to its full PoolAccountSize wire form,
// zero-padding every reserved gap.
func (p *Pool) Serialize() []byte {
	buf := make([]byte, constants.PoolAccountSize)
	copy(buf[0:8], constants.PoolDiscriminator)
	off := 8

	writeKey := func(k solana32) {
		copy(buf[off:off+32], k[:])
		off += 32
	}
	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[off:off+8], v)
		off += 8
	}
	writeI64 := func(v int64) { writeU64(uint64(v)) }
	writeU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[off:off+4], v)
		off += 4
	}

	writeKey(p.Authority)
	writeKey(p.Mint0)
	writeKey(p.Mint1)
	writeKey(p.Vault0)
	writeKey(p.Vault1)
	writeKey(p.LPMint)

	writeU64(p.Amp)
	writeU64(p.InitAmp)
	writeU64(p.TargetAmp)
	writeI64(p.RampStart)
	writeI64(p.RampStop)
	writeU64(p.FeeBps)
	writeU64(p.AdminFeePct)
	writeU64(p.Bal0)
	writeU64(p.Bal1)
	writeU64(p.LPSupply)
	writeU64(p.AdminFeesAccumulated)
	writeU64(p.CumulativeVolume0)
	writeU64(p.CumulativeVolume1)

	if p.Paused {
		buf[off] = 1
	}
	off++
	copy(buf[off:off+5], p.Bumps[:])
	off += 5
	off += 3

	writeKey(p.PendingAuthority)
	writeI64(p.PendingAuthorityEffective)
	writeU64(p.PendingAmp)
	writeI64(p.PendingAmpEffective)

	writeU64(p.TradeCount)
	writeU64(p.TradeSum)
	writeU32(p.MaxPrice)
	writeU32(p.MinPrice)
	writeU32(p.HourSlotAnchor)
	writeU32(p.DaySlotAnchor)
	buf[off] = p.HourIdx
	off++
	buf[off] = p.DayIdx
	off++
	off += 6

	copy(buf[off:off+constants.BloomSize], p.Bloom[:])
	off += constants.BloomSize

	copy(buf[off:], encodeCandleArray(p.HourlyCandles[:], constants.HourlyCandles))
	off += constants.HourlyCandles * CandleSize

	copy(buf[off:], encodeCandleArray(p.DailyCandles[:], constants.DailyCandles))
	off += constants.DailyCandles * CandleSize

	return buf
}
