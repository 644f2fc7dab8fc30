package codec

import (
	"testing"

	"github.com/solstable/stableamm/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSwapSimple_MatchesScenario(t *testing.T) {
	data, err := BuildSwapSimple(SwapSimpleArgs{AmountIn: 1000, MinOut: 990})
	require.NoError(t, err)
	require.Len(t, data, 24)

	disc, ok := constants.InstructionDiscriminator(constants.InstrSwapSimple)
	require.True(t, ok)
	assert.Equal(t, disc[:], data[0:8])
	assert.EqualValues(t, 1000, leU64(data[8:16]))
	assert.EqualValues(t, 990, leU64(data[16:24]))
}

func TestBuildSwapSimple_DiscriminatorPerturbationRejected(t *testing.T) {
	data, err := BuildSwapSimple(SwapSimpleArgs{AmountIn: 1, MinOut: 1})
	require.NoError(t, err)

	corrupted := append([]byte{}, data...)
	corrupted[0] ^= 0xFF

	disc, _ := constants.InstructionDiscriminator(constants.InstrSwapSimple)
	assert.NotEqual(t, disc[:], corrupted[0:8])
}

func TestBuildCreatePool_Length(t *testing.T) {
	data, err := BuildCreatePool(CreatePoolArgs{Amp: 100, Bump: 5})
	require.NoError(t, err)
	assert.Len(t, data, 17)
	assert.EqualValues(t, 100, leU64(data[8:16]))
	assert.EqualValues(t, 5, data[16])
}

func TestBuildSwapIndexed_Length(t *testing.T) {
	data, err := BuildSwapIndexed(SwapIndexedArgs{FromIdx: 1, ToIdx: 2, AmountIn: 500, MinOut: 480, Deadline: 123})
	require.NoError(t, err)
	assert.Len(t, data, 34)
}

func TestBuildAddLiquidityBalanced_Length(t *testing.T) {
	data, err := BuildAddLiquidityBalanced(AddLiquidityBalancedArgs{Amt0: 1, Amt1: 2, MinLPOut: 3})
	require.NoError(t, err)
	assert.Len(t, data, 32)
}

func TestBuildRemoveLiquidityBalanced_Length(t *testing.T) {
	data, err := BuildRemoveLiquidityBalanced(RemoveLiquidityBalancedArgs{LPAmount: 1, MinOut0: 2, MinOut1: 3})
	require.NoError(t, err)
	assert.Len(t, data, 32)
}

func TestBuildSetPause_Length(t *testing.T) {
	data, err := BuildSetPause(SetPauseArgs{Paused: true})
	require.NoError(t, err)
	assert.Len(t, data, 9)
	assert.EqualValues(t, 1, data[8])
}

func TestBuildDrawLottery_OnlyDiscriminator(t *testing.T) {
	data, err := BuildDrawLottery()
	require.NoError(t, err)
	assert.Len(t, data, 8)
}

func TestBuildGovernancePropose_TruncatesDescription(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	data, err := BuildGovernancePropose(GovernanceProposeArgs{Description: string(long)})
	require.NoError(t, err)
	require.Len(t, data, 8+governanceDescriptionSize)
	assert.Len(t, data[8:], governanceDescriptionSize)
}

func TestBuildGovernancePropose_PadsShortDescription(t *testing.T) {
	data, err := BuildGovernancePropose(GovernanceProposeArgs{Description: "hi"})
	require.NoError(t, err)
	assert.Equal(t, byte('h'), data[8])
	assert.Equal(t, byte('i'), data[9])
	assert.Equal(t, byte(0), data[10])
	assert.Equal(t, byte(0), data[len(data)-1])
}

func TestBuildGovernanceVote_Length(t *testing.T) {
	data, err := BuildGovernanceVote(GovernanceVoteArgs{ProposalID: 7, VoteFor: true})
	require.NoError(t, err)
	assert.Len(t, data, 17)
}

func leU64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
