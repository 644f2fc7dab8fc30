package codec

import "github.com/solstable/stableamm/internal/bigmath"

// traderSlot hashes a trader's public key bytes down to a bit index in
// the pool's 1024-bit bloom filter. It is deliberately simple: the
// filter is an approximate recent-trader membership check, not a
// cryptographic structure.
func traderSlot(traderKey [32]byte) uint32 {
	var h uint32 = 2166136261
	for _, b := range traderKey {
		h ^= uint32(b)
		h *= 16777619
	}
	return h
}

// MarkTrader records trader in the pool's recent-trader bloom filter.
func (p *Pool) MarkTrader(trader solana32) {
	bigmath.SetBit(&p.Bloom, traderSlot(trader))
}

// SeenTrader reports whether trader may have traded recently, per the
// bloom filter's one-sided guarantee: false means definitely not seen,
// true means possibly seen.
func (p *Pool) SeenTrader(trader solana32) bool {
	return bigmath.TestBit(&p.Bloom, traderSlot(trader))
}

// MergeBloom folds other's bloom filter into p's, as when combining a
// replayed event log with the pool's live state.
func (p *Pool) MergeBloom(other *Pool) {
	bigmath.Merge(&p.Bloom, &other.Bloom)
}

// TraderPressure returns the fraction (0..1) of the bloom filter's bits
// that are set, a cheap proxy for how saturated the recent-trader window
// is.
func (p *Pool) TraderPressure() float64 {
	return float64(bigmath.PopCount(&p.Bloom)) / 1024.0
}
