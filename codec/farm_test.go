package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFarmSerializeRoundTrip(t *testing.T) {
	f := &Farm{
		Pool:        solana32{1},
		Authority:   solana32{2},
		StartTime:   1000,
		EndTime:     2000,
		RewardRate:  50,
		TotalStaked: 12345,
		Bump:        3,
		RewardTokens: []solana32{
			{9, 9},
			{8, 8},
		},
	}
	blob := f.Serialize()
	require.Len(t, blob, farmHeaderSize+2*32)

	got, err := DecodeFarm(blob)
	require.NoError(t, err)
	assert.Equal(t, f.StartTime, got.StartTime)
	assert.Equal(t, f.EndTime, got.EndTime)
	assert.Equal(t, f.RewardTokens, got.RewardTokens)
}

func TestDecodeFarm_RejectsShortBlob(t *testing.T) {
	_, err := DecodeFarm(make([]byte, 3))
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestDecodeFarm_RejectsTruncatedRewardTable(t *testing.T) {
	f := &Farm{RewardTokens: []solana32{{1}, {2}}}
	blob := f.Serialize()
	_, err := DecodeFarm(blob[:len(blob)-10])
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestUserFarmSerializeRoundTrip(t *testing.T) {
	u := &UserFarm{
		Farm:           solana32{1},
		User:           solana32{2},
		StakedAmount:   777,
		RewardDebt:     11,
		LastUpdateSlot: 99,
		Bump:           4,
	}
	blob := u.Serialize()
	require.Len(t, blob, userFarmSize)

	got, err := DecodeUserFarm(blob)
	require.NoError(t, err)
	assert.Equal(t, u.StakedAmount, got.StakedAmount)
	assert.Equal(t, u.Bump, got.Bump)
}
