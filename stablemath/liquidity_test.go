package stablemath

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsqrt_KnownValues(t *testing.T) {
	assert.Equal(t, uint64(0), Isqrt(0))
	assert.Equal(t, uint64(3), Isqrt(15))
	assert.Equal(t, uint64(4), Isqrt(16))
	assert.Equal(t, uint64(1_000_000_000), Isqrt(1_000_000_000_000_000_000))
}

func TestIsqrtBig_MatchesIsqrtWithinRange(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 15, 16, 1_000_000, 1_000_000_000_000} {
		got := IsqrtBig(math.NewIntFromUint64(n))
		assert.Equal(t, Isqrt(n), got.Uint64())
	}
}

func TestCalcLPMintAmount_FirstDeposit(t *testing.T) {
	lp, err := CalcLPMintAmount(0, 0, 1_000_000, 4_000_000, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(2_000_000), lp)
}

func TestCalcLPMintAmount_SubsequentDepositGrowsProportionally(t *testing.T) {
	lp, err := CalcLPMintAmount(1_000_000_000, 1_000_000_000, 100_000_000, 100_000_000, 2_000_000_000, 100)
	require.NoError(t, err)
	assert.Greater(t, lp, uint64(0))
}

func TestCalcWithdrawAmounts_Proportional(t *testing.T) {
	a0, a1, err := CalcWithdrawAmounts(1_000_000_000, 2_000_000_000, 100_000_000, 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000_000), a0)
	assert.Equal(t, uint64(200_000_000), a1)
}

func TestCalcWithdrawAmounts_ZeroSupply(t *testing.T) {
	_, _, err := CalcWithdrawAmounts(1_000, 1_000, 1, 0)
	assert.ErrorIs(t, err, ErrZeroSupply)
}

func TestVirtualPrice_ZeroSupply(t *testing.T) {
	_, err := VirtualPrice(math.NewInt(1_000), 0)
	assert.ErrorIs(t, err, ErrZeroSupply)
}

func TestVirtualPrice_Scales(t *testing.T) {
	vp, err := VirtualPrice(math.NewInt(2_000_000_000), 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000", vp.String())
}
