package codec

import "encoding/binary"

// CandleSize is the fixed wire size of a single delta-encoded OHLCV
// candle (spec.md §3).
const CandleSize = 12

// Candle is the decoded form of a 12-byte delta-encoded OHLCV record.
// High, Low, and Close are reconstructed from Open plus the stored
// deltas; Volume is stored directly. Prices are scaled by 1e6, volumes
// by 1e9.
type Candle struct {
	Open   uint32
	HighD  uint16
	LowD   uint16
	CloseD int16
	Volume uint16
}

// High returns Open + HighD.
func (c Candle) High() uint32 { return c.Open + uint32(c.HighD) }

// Low returns Open - LowD.
func (c Candle) Low() uint32 { return c.Open - uint32(c.LowD) }

// Close returns Open + CloseD.
func (c Candle) Close() int64 { return int64(c.Open) + int64(c.CloseD) }

// DecodeCandle reads a single 12-byte candle from data at offset 0. The
// caller is responsible for slicing the right 12-byte window out of a
// larger blob.
func DecodeCandle(data []byte) (Candle, error) {
	if len(data) < CandleSize {
		return Candle{}, ErrInsufficientData
	}
	return Candle{
		Open:   binary.LittleEndian.Uint32(data[0:4]),
		HighD:  binary.LittleEndian.Uint16(data[4:6]),
		LowD:   binary.LittleEndian.Uint16(data[6:8]),
		CloseD: int16(binary.LittleEndian.Uint16(data[8:10])),
		Volume: binary.LittleEndian.Uint16(data[10:12]),
	}, nil
}

// EncodeCandle serializes a Candle to its 12-byte wire form.
func EncodeCandle(c Candle) []byte {
	buf := make([]byte, CandleSize)
	binary.LittleEndian.PutUint32(buf[0:4], c.Open)
	binary.LittleEndian.PutUint16(buf[4:6], c.HighD)
	binary.LittleEndian.PutUint16(buf[6:8], c.LowD)
	binary.LittleEndian.PutUint16(buf[8:10], uint16(c.CloseD))
	binary.LittleEndian.PutUint16(buf[10:12], c.Volume)
	return buf
}

// decodeCandleArray reads count consecutive candles starting at offset
// and returns them along with the number of bytes consumed.
func decodeCandleArray(data []byte, offset, count int) ([]Candle, int, error) {
	candles := make([]Candle, count)
	for i := 0; i < count; i++ {
		start := offset + i*CandleSize
		end := start + CandleSize
		if end > len(data) {
			return nil, 0, ErrInvalidFormat
		}
		c, err := DecodeCandle(data[start:end])
		if err != nil {
			return nil, 0, err
		}
		candles[i] = c
	}
	return candles, count * CandleSize, nil
}

func encodeCandleArray(candles []Candle, expected int) []byte {
	buf := make([]byte, expected*CandleSize)
	for i := 0; i < expected; i++ {
		var c Candle
		if i < len(candles) {
			c = candles[i]
		}
		copy(buf[i*CandleSize:(i+1)*CandleSize], EncodeCandle(c))
	}
	return buf
}
