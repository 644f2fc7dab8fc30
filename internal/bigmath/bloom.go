// Package bigmath holds 128-bit-safe integer helpers shared by stablemath
// and codec: bloom-filter word operations over the pool's fixed 128-byte
// filter, and wide accumulator arithmetic for TWAP bookkeeping.
// It exists so neither caller has to hand-roll uint128 carries itself,
// the way the teacher's orca and raydium CLMM pools lean on
// lukechampine.com/uint128 for their X64 fields.
package bigmath

import "lukechampine.com/uint128"

// bloomWords is the number of 16-byte words a 128-byte bloom filter
// splits into.
const bloomWords = 128 / 16

// words reinterprets a 128-byte bloom filter as 8 big-endian uint128
// words, matching the orca pool's FromBytes convention for wire fields.
func words(bloom *[128]byte) [bloomWords]uint128.Uint128 {
	var w [bloomWords]uint128.Uint128
	for i := 0; i < bloomWords; i++ {
		w[i] = uint128.FromBytesBE(bloom[i*16 : i*16+16])
	}
	return w
}

func putWords(bloom *[128]byte, w [bloomWords]uint128.Uint128) {
	for i := 0; i < bloomWords; i++ {
		w[i].PutBytesBE(bloom[i*16 : i*16+16])
	}
}

// SetBit sets bit idx (0..1023) of bloom in place.
func SetBit(bloom *[128]byte, idx uint32) {
	idx %= 1024
	byteIdx := idx / 8
	bitIdx := idx % 8
	bloom[byteIdx] |= 1 << bitIdx
}

// TestBit reports whether bit idx (0..1023) of bloom is set.
func TestBit(bloom *[128]byte, idx uint32) bool {
	idx %= 1024
	byteIdx := idx / 8
	bitIdx := idx % 8
	return bloom[byteIdx]&(1<<bitIdx) != 0
}

// Merge ORs src into dst word-by-word using uint128 arithmetic, the way
// a bloom filter union is defined.
func Merge(dst *[128]byte, src *[128]byte) {
	dw := words(dst)
	sw := words(src)
	for i := 0; i < bloomWords; i++ {
		dw[i] = dw[i].Or(sw[i])
	}
	putWords(dst, dw)
}

// PopCount returns the number of set bits across the whole filter.
func PopCount(bloom *[128]byte) int {
	n := 0
	for _, b := range bloom {
		for b != 0 {
			n += int(b & 1)
			b >>= 1
		}
	}
	return n
}
