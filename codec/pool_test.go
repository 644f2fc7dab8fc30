package codec

import (
	"testing"

	"github.com/solstable/stableamm/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePool() *Pool {
	p := &Pool{}
	p.Authority = solana32{1}
	p.Mint0 = solana32{2}
	p.Mint1 = solana32{3}
	p.Vault0 = solana32{4}
	p.Vault1 = solana32{5}
	p.LPMint = solana32{6}
	p.Amp = 100
	p.InitAmp = 100
	p.TargetAmp = 100
	p.FeeBps = 30
	p.AdminFeePct = 5000
	p.Bal0 = 1_000_000
	p.Bal1 = 1_000_000
	p.LPSupply = 2_000_000
	p.Paused = false
	p.Bumps = [5]byte{9, 8, 7, 6, 5}
	p.HourIdx = 3
	p.DayIdx = 1
	return p
}

func TestPoolSerializeRoundTrip(t *testing.T) {
	p := samplePool()
	blob := p.Serialize()
	require.Len(t, blob, constants.PoolAccountSize)

	got, err := DecodePool(blob)
	require.NoError(t, err)
	assert.Equal(t, p.Authority, got.Authority)
	assert.Equal(t, p.Amp, got.Amp)
	assert.Equal(t, p.Bal0, got.Bal0)
	assert.Equal(t, p.Bal1, got.Bal1)
	assert.Equal(t, p.Bumps, got.Bumps)
	assert.Equal(t, p.HourIdx, got.HourIdx)
}

func TestDecodePool_AmpFieldOffset(t *testing.T) {
	// spec.md §8: a pool blob with amp byte 0x64 at its offset decodes to amp=100.
	p := samplePool()
	p.Amp = 0x64
	blob := p.Serialize()
	got, err := DecodePool(blob)
	require.NoError(t, err)
	assert.EqualValues(t, 100, got.Amp)
}

func TestDecodePool_RejectsShortBlob(t *testing.T) {
	_, err := DecodePool(make([]byte, 10))
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestDecodePool_RejectsBadDiscriminator(t *testing.T) {
	blob := samplePool().Serialize()
	blob[0] = 'X'
	_, err := DecodePool(blob)
	assert.ErrorIs(t, err, ErrInvalidDiscriminator)
}

func TestDecodePool_RejectsTruncatedFullBlob(t *testing.T) {
	blob := samplePool().Serialize()
	_, err := DecodePool(blob[:poolMinPrefix+1])
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecodePool_IgnoresTrailingBytes(t *testing.T) {
	blob := append(samplePool().Serialize(), []byte{1, 2, 3}...)
	got, err := DecodePool(blob)
	require.NoError(t, err)
	assert.EqualValues(t, 100, got.Amp)
}

func TestPool_SpanAndOffset(t *testing.T) {
	p := samplePool()
	blob := p.Serialize()

	assert.EqualValues(t, constants.PoolAccountSize, p.Span())
	ampOff := p.Offset("Amp")
	assert.EqualValues(t, p.Amp, leU64(blob[ampOff:ampOff+8]))
	assert.EqualValues(t, 0, p.Offset("NotAField"))
}

func TestPool_BloomTraderTracking(t *testing.T) {
	p := samplePool()
	trader := solana32{0xde, 0xad, 0xbe, 0xef}
	other := solana32{0xca, 0xfe}

	assert.False(t, p.SeenTrader(trader))
	p.MarkTrader(trader)
	assert.True(t, p.SeenTrader(trader))
	assert.Greater(t, p.TraderPressure(), 0.0)

	q := samplePool()
	q.MarkTrader(other)
	p.MergeBloom(q)
	assert.True(t, p.SeenTrader(other))
}
