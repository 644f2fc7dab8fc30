package codec

import (
	"encoding/binary"

	"github.com/solstable/stableamm/constants"
)

// lotteryHeaderSize is Lottery's fixed prefix, before the variable-length
// draw-history table.
const lotteryHeaderSize = 8 + 32 + 8 + 8 + 8 + 1 + 1 + 6

// drawRecordSize is the wire size of one past-draw record: a slot and a
// winner key.
const drawRecordSize = 8 + 32

// DrawRecord is one past draw of a lottery: the slot it was drawn at and
// the winning address.
type DrawRecord struct {
	DrawSlot int64
	Winner   solana32
}

// Lottery is the decoded form of a variable-length lottery account: a
// fixed header followed by DrawCount draw records.
type Lottery struct {
	Pool        solana32
	TicketPrice uint64
	PrizePool   uint64
	DrawTime    int64
	Bump        uint8
	Draws       []DrawRecord
}

// DecodeLottery parses a lottery account blob.
func DecodeLottery(data []byte) (*Lottery, error) {
	if len(data) < lotteryHeaderSize {
		return nil, ErrInsufficientData
	}
	if string(data[0:8]) != constants.LotteryDiscriminator {
		return nil, ErrInvalidDiscriminator
	}

	l := &Lottery{}
	off := 8

	copy(l.Pool[:], data[off:off+32])
	off += 32
	l.TicketPrice = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	l.PrizePool = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	l.DrawTime = int64(binary.LittleEndian.Uint64(data[off : off+8]))
	off += 8

	l.Bump = data[off]
	off++
	count := int(data[off])
	off++
	off += 6

	if len(data) < off+count*drawRecordSize {
		return nil, ErrInvalidFormat
	}
	l.Draws = make([]DrawRecord, count)
	for i := 0; i < count; i++ {
		l.Draws[i].DrawSlot = int64(binary.LittleEndian.Uint64(data[off : off+8]))
		off += 8
		copy(l.Draws[i].Winner[:], data[off:off+32])
		off += 32
	}

	return l, nil
}

// Serialize writes l back to its variable-length wire form.
func (l *Lottery) Serialize() []byte {
	size := lotteryHeaderSize + len(l.Draws)*drawRecordSize
	buf := make([]byte, size)
	copy(buf[0:8], constants.LotteryDiscriminator)
	off := 8

	copy(buf[off:off+32], l.Pool[:])
	off += 32
	binary.LittleEndian.PutUint64(buf[off:off+8], l.TicketPrice)
	off += 8
	binary.LittleEndian.PutUint64(buf[off:off+8], l.PrizePool)
	off += 8
	binary.LittleEndian.PutUint64(buf[off:off+8], uint64(l.DrawTime))
	off += 8

	buf[off] = l.Bump
	off++
	buf[off] = byte(len(l.Draws))
	off++
	off += 6

	for _, d := range l.Draws {
		binary.LittleEndian.PutUint64(buf[off:off+8], uint64(d.DrawSlot))
		off += 8
		copy(buf[off:off+32], d.Winner[:])
		off += 32
	}

	return buf
}

// lotteryEntrySize is LotteryEntry's fixed size.
const lotteryEntrySize = 8 + 32 + 32 + 4 + 8 + 1 + 7

// LotteryEntry is the decoded form of a fixed-size per-user lottery
// ticket record.
type LotteryEntry struct {
	Lottery     solana32
	User        solana32
	TicketCount uint32
	EntrySlot   uint64
	Bump        uint8
}

// DecodeLotteryEntry parses a lottery-entry account blob.
func DecodeLotteryEntry(data []byte) (*LotteryEntry, error) {
	if len(data) < 8+64 {
		return nil, ErrInsufficientData
	}
	if string(data[0:8]) != constants.LotteryEntryDiscriminator {
		return nil, ErrInvalidDiscriminator
	}
	if len(data) < lotteryEntrySize {
		return nil, ErrInvalidFormat
	}

	e := &LotteryEntry{}
	off := 8
	copy(e.Lottery[:], data[off:off+32])
	off += 32
	copy(e.User[:], data[off:off+32])
	off += 32
	e.TicketCount = binary.LittleEndian.Uint32(data[off : off+4])
	off += 4
	e.EntrySlot = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	e.Bump = data[off]

	return e, nil
}

// Serialize writes e back to its fixed-size wire form.
func (e *LotteryEntry) Serialize() []byte {
	buf := make([]byte, lotteryEntrySize)
	copy(buf[0:8], constants.LotteryEntryDiscriminator)
	off := 8
	copy(buf[off:off+32], e.Lottery[:])
	off += 32
	copy(buf[off:off+32], e.User[:])
	off += 32
	binary.LittleEndian.PutUint32(buf[off:off+4], e.TicketCount)
	off += 4
	binary.LittleEndian.PutUint64(buf[off:off+8], e.EntrySlot)
	off += 8
	buf[off] = e.Bump
	return buf
}
