package codec

import (
	"encoding/binary"

	"github.com/solstable/stableamm/constants"
)

// farmHeaderSize is Farm's fixed prefix, before the variable-length
// reward-token mint table.
const farmHeaderSize = 8 + 32 + 32 + 8 + 8 + 8 + 8 + 1 + 1 + 6

// Farm is the decoded form of a variable-length farm account: a fixed
// header followed by RewardTokenCount 32-byte reward mint keys.
type Farm struct {
	Pool         solana32
	Authority    solana32
	StartTime    int64
	EndTime      int64
	RewardRate   uint64
	TotalStaked  uint64
	Bump         uint8
	RewardTokens []solana32
}

// DecodeFarm parses a farm account blob.
func DecodeFarm(data []byte) (*Farm, error) {
	if len(data) < farmHeaderSize {
		return nil, ErrInsufficientData
	}
	if string(data[0:8]) != constants.FarmDiscriminator {
		return nil, ErrInvalidDiscriminator
	}

	f := &Farm{}
	off := 8

	copy(f.Pool[:], data[off:off+32])
	off += 32
	copy(f.Authority[:], data[off:off+32])
	off += 32

	f.StartTime = int64(binary.LittleEndian.Uint64(data[off : off+8]))
	off += 8
	f.EndTime = int64(binary.LittleEndian.Uint64(data[off : off+8]))
	off += 8
	f.RewardRate = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	f.TotalStaked = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8

	f.Bump = data[off]
	off++
	count := int(data[off])
	off++
	off += 6 // reserved padding

	if len(data) < off+count*32 {
		return nil, ErrInvalidFormat
	}
	f.RewardTokens = make([]solana32, count)
	for i := 0; i < count; i++ {
		copy(f.RewardTokens[i][:], data[off:off+32])
		off += 32
	}

	return f, nil
}

// Serialize writes f back to its variable-length wire form.
func (f *Farm) Serialize() []byte {
	size := farmHeaderSize + len(f.RewardTokens)*32
	buf := make([]byte, size)
	copy(buf[0:8], constants.FarmDiscriminator)
	off := 8

	copy(buf[off:off+32], f.Pool[:])
	off += 32
	copy(buf[off:off+32], f.Authority[:])
	off += 32

	binary.LittleEndian.PutUint64(buf[off:off+8], uint64(f.StartTime))
	off += 8
	binary.LittleEndian.PutUint64(buf[off:off+8], uint64(f.EndTime))
	off += 8
	binary.LittleEndian.PutUint64(buf[off:off+8], f.RewardRate)
	off += 8
	binary.LittleEndian.PutUint64(buf[off:off+8], f.TotalStaked)
	off += 8

	buf[off] = f.Bump
	off++
	buf[off] = byte(len(f.RewardTokens))
	off++
	off += 6

	for _, rt := range f.RewardTokens {
		copy(buf[off:off+32], rt[:])
		off += 32
	}

	return buf
}

// userFarmSize is UserFarm's fixed size — a per-user record with no
// variable tail.
const userFarmSize = 8 + 32 + 32 + 8 + 8 + 8 + 1 + 7

// UserFarm is the decoded form of a fixed-size per-user farm position.
type UserFarm struct {
	Farm           solana32
	User           solana32
	StakedAmount   uint64
	RewardDebt     uint64
	LastUpdateSlot uint64
	Bump           uint8
}

// DecodeUserFarm parses a user-farm account blob.
func DecodeUserFarm(data []byte) (*UserFarm, error) {
	if len(data) < 8+64 {
		return nil, ErrInsufficientData
	}
	if string(data[0:8]) != constants.UserFarmDiscriminator {
		return nil, ErrInvalidDiscriminator
	}
	if len(data) < userFarmSize {
		return nil, ErrInvalidFormat
	}

	u := &UserFarm{}
	off := 8
	copy(u.Farm[:], data[off:off+32])
	off += 32
	copy(u.User[:], data[off:off+32])
	off += 32
	u.StakedAmount = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	u.RewardDebt = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	u.LastUpdateSlot = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	u.Bump = data[off]

	return u, nil
}

// Serialize writes u back to its fixed-size wire form.
func (u *UserFarm) Serialize() []byte {
	buf := make([]byte, userFarmSize)
	copy(buf[0:8], constants.UserFarmDiscriminator)
	off := 8
	copy(buf[off:off+32], u.Farm[:])
	off += 32
	copy(buf[off:off+32], u.User[:])
	off += 32
	binary.LittleEndian.PutUint64(buf[off:off+8], u.StakedAmount)
	off += 8
	binary.LittleEndian.PutUint64(buf[off:off+8], u.RewardDebt)
	off += 8
	binary.LittleEndian.PutUint64(buf[off:off+8], u.LastUpdateSlot)
	off += 8
	buf[off] = u.Bump
	return buf
}
