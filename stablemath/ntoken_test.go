package stablemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcDN_TwoTokenMatchesCalcD(t *testing.T) {
	dn, err := CalcDN([]uint64{1_000_000_000, 1_000_000_000}, 100)
	require.NoError(t, err)

	d2, err := CalcD(1_000_000_000, 1_000_000_000, 100)
	require.NoError(t, err)

	assert.True(t, dn.Equal(d2))
}

func TestCalcDN_EightTokenConverges(t *testing.T) {
	balances := []uint64{
		1_000_000_000, 1_100_000_000, 900_000_000, 1_050_000_000,
		950_000_000, 1_000_000_000, 1_020_000_000, 980_000_000,
	}
	d, err := CalcDN(balances, 500)
	require.NoError(t, err)
	assert.True(t, d.IsPositive())
}

func TestCalcDN_ZeroBalanceReturnsZero(t *testing.T) {
	d, err := CalcDN([]uint64{0, 1_000_000, 2_000_000}, 100)
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestCalcDN_EmptyBalancesIsZeroInput(t *testing.T) {
	_, err := CalcDN(nil, 100)
	assert.ErrorIs(t, err, ErrZeroInput)
}

func TestSimulateSwapN_InvalidIndexPair(t *testing.T) {
	_, err := SimulateSwapN([]uint64{1_000_000, 1_000_000, 1_000_000}, 0, 0, 1_000, 100, 30)
	assert.Error(t, err)
}

func TestSimulateSwapN_ProducesPositiveOutput(t *testing.T) {
	balances := []uint64{1_000_000_000, 1_000_000_000, 1_000_000_000}
	out, err := SimulateSwapN(balances, 0, 1, 10_000_000, 200, 30)
	require.NoError(t, err)
	assert.Greater(t, out, uint64(0))
	assert.Less(t, out, uint64(10_000_000))
}

func TestSimulateSwapN_TwoTokenMatchesSimulateSwap(t *testing.T) {
	nOut, err := SimulateSwapN([]uint64{1_000_000_000, 1_000_000_000}, 0, 1, 100_000_000, 100, 30)
	require.NoError(t, err)

	twoOut, err := SimulateSwap(1_000_000_000, 1_000_000_000, 100_000_000, 100, 30)
	require.NoError(t, err)

	assert.Equal(t, twoOut, nOut)
}

func TestSimulateSwapN_BalancedThreeTokenGolden(t *testing.T) {
	balances := []uint64{1_000_000_000, 1_000_000_000, 1_000_000_000}
	out, err := SimulateSwapN(balances, 0, 1, 100_000_000, 100, 30)
	require.NoError(t, err)
	assert.Equal(t, uint64(99_688_825), out)
}
