package codec

import (
	"bytes"
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
	"github.com/solstable/stableamm/constants"
)

// discriminatorBytes returns the 8-byte little-endian discriminator for
// name, panicking if name is not in constants' table — every builder in
// this file calls it with a name it owns, so an unknown name here is a
// programming error, not a runtime condition callers need to handle.
func discriminatorBytes(name constants.InstructionName) []byte {
	d, ok := constants.InstructionDiscriminator(name)
	if !ok {
		panic("codec: unknown instruction name " + string(name))
	}
	return d[:]
}

// writeArgs writes a discriminator followed by a sequence of little-endian
// primitives, using gagliardetto/binary's borsh encoder the way
// RayCLMMSwapInstruction.Data does for its own args.
func writeArgs(name constants.InstructionName, write func(enc *bin.Encoder) error) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(discriminatorBytes(name))
	enc := bin.NewBorshEncoder(buf)
	if err := write(enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CreatePoolArgs builds the create_pool instruction payload (17 bytes:
// 8-byte discriminator, u64 amp, u8 bump).
type CreatePoolArgs struct {
	Amp  uint64
	Bump uint8
}

func BuildCreatePool(a CreatePoolArgs) ([]byte, error) {
	return writeArgs(constants.InstrCreatePool, func(enc *bin.Encoder) error {
		if err := enc.WriteUint64(a.Amp, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteUint8(a.Bump)
	})
}

// SwapSimpleArgs builds the two-token swap instruction payload (24 bytes:
// discriminator, u64 amount_in, u64 min_out). See spec.md §8 scenario 5.
type SwapSimpleArgs struct {
	AmountIn uint64
	MinOut   uint64
}

func BuildSwapSimple(a SwapSimpleArgs) ([]byte, error) {
	return writeArgs(constants.InstrSwapSimple, func(enc *bin.Encoder) error {
		if err := enc.WriteUint64(a.AmountIn, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteUint64(a.MinOut, binary.LittleEndian)
	})
}

// SwapIndexedArgs builds the N-token indexed swap instruction payload
// (34 bytes: discriminator, u8 from_idx, u8 to_idx, u64 amount_in,
// u64 min_out, i64 deadline).
type SwapIndexedArgs struct {
	FromIdx  uint8
	ToIdx    uint8
	AmountIn uint64
	MinOut   uint64
	Deadline int64
}

func BuildSwapIndexed(a SwapIndexedArgs) ([]byte, error) {
	return writeArgs(constants.InstrSwapIndexed, func(enc *bin.Encoder) error {
		if err := enc.WriteUint8(a.FromIdx); err != nil {
			return err
		}
		if err := enc.WriteUint8(a.ToIdx); err != nil {
			return err
		}
		if err := enc.WriteUint64(a.AmountIn, binary.LittleEndian); err != nil {
			return err
		}
		if err := enc.WriteUint64(a.MinOut, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteInt64(a.Deadline, binary.LittleEndian)
	})
}

// AddLiquidityBalancedArgs builds the balanced-deposit instruction
// payload (32 bytes: discriminator, u64 amt0, u64 amt1, u64 min_lp_out).
type AddLiquidityBalancedArgs struct {
	Amt0     uint64
	Amt1     uint64
	MinLPOut uint64
}

func BuildAddLiquidityBalanced(a AddLiquidityBalancedArgs) ([]byte, error) {
	return writeArgs(constants.InstrAddLiquidityBalanced, func(enc *bin.Encoder) error {
		if err := enc.WriteUint64(a.Amt0, binary.LittleEndian); err != nil {
			return err
		}
		if err := enc.WriteUint64(a.Amt1, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteUint64(a.MinLPOut, binary.LittleEndian)
	})
}

// AddLiquiditySingleArgs builds the single-sided deposit instruction
// payload (25 bytes: discriminator, u8 token_idx, u64 amount, u64 min_lp_out).
type AddLiquiditySingleArgs struct {
	TokenIdx uint8
	Amount   uint64
	MinLPOut uint64
}

func BuildAddLiquiditySingle(a AddLiquiditySingleArgs) ([]byte, error) {
	return writeArgs(constants.InstrAddLiquiditySingle, func(enc *bin.Encoder) error {
		if err := enc.WriteUint8(a.TokenIdx); err != nil {
			return err
		}
		if err := enc.WriteUint64(a.Amount, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteUint64(a.MinLPOut, binary.LittleEndian)
	})
}

// RemoveLiquidityBalancedArgs builds the balanced-withdraw instruction
// payload (32 bytes: discriminator, u64 lp_amount, u64 min_out0, u64 min_out1).
type RemoveLiquidityBalancedArgs struct {
	LPAmount uint64
	MinOut0  uint64
	MinOut1  uint64
}

func BuildRemoveLiquidityBalanced(a RemoveLiquidityBalancedArgs) ([]byte, error) {
	return writeArgs(constants.InstrRemoveLiquidityBalanced, func(enc *bin.Encoder) error {
		if err := enc.WriteUint64(a.LPAmount, binary.LittleEndian); err != nil {
			return err
		}
		if err := enc.WriteUint64(a.MinOut0, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteUint64(a.MinOut1, binary.LittleEndian)
	})
}

// SetPauseArgs builds the pause/unpause instruction payload (9 bytes:
// discriminator, bool paused).
type SetPauseArgs struct {
	Paused bool
}

func BuildSetPause(a SetPauseArgs) ([]byte, error) {
	return writeArgs(constants.InstrSetPause, func(enc *bin.Encoder) error {
		return enc.WriteBool(a.Paused)
	})
}

// CreateFarmArgs builds the create_farm instruction payload (32 bytes:
// discriminator, i64 start_time, i64 end_time, u64 reward_rate).
type CreateFarmArgs struct {
	StartTime  int64
	EndTime    int64
	RewardRate uint64
}

func BuildCreateFarm(a CreateFarmArgs) ([]byte, error) {
	return writeArgs(constants.InstrCreateFarm, func(enc *bin.Encoder) error {
		if err := enc.WriteInt64(a.StartTime, binary.LittleEndian); err != nil {
			return err
		}
		if err := enc.WriteInt64(a.EndTime, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteUint64(a.RewardRate, binary.LittleEndian)
	})
}

// StakeArgs builds the stake instruction payload (16 bytes: discriminator, u64 amount).
type StakeArgs struct {
	Amount uint64
}

func BuildStake(a StakeArgs) ([]byte, error) {
	return writeArgs(constants.InstrStake, func(enc *bin.Encoder) error {
		return enc.WriteUint64(a.Amount, binary.LittleEndian)
	})
}

// LockArgs builds the lock instruction payload (24 bytes: discriminator,
// u64 amount, i64 lock_seconds).
type LockArgs struct {
	Amount      uint64
	LockSeconds int64
}

func BuildLock(a LockArgs) ([]byte, error) {
	return writeArgs(constants.InstrLock, func(enc *bin.Encoder) error {
		if err := enc.WriteUint64(a.Amount, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteInt64(a.LockSeconds, binary.LittleEndian)
	})
}

// CreateLotteryArgs builds the create_lottery instruction payload (24
// bytes: discriminator, u64 ticket_price, i64 draw_time).
type CreateLotteryArgs struct {
	TicketPrice uint64
	DrawTime    int64
}

func BuildCreateLottery(a CreateLotteryArgs) ([]byte, error) {
	return writeArgs(constants.InstrCreateLottery, func(enc *bin.Encoder) error {
		if err := enc.WriteUint64(a.TicketPrice, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteInt64(a.DrawTime, binary.LittleEndian)
	})
}

// EnterLotteryArgs builds the enter_lottery instruction payload (12
// bytes: discriminator, u32 ticket_count).
type EnterLotteryArgs struct {
	TicketCount uint32
}

func BuildEnterLottery(a EnterLotteryArgs) ([]byte, error) {
	return writeArgs(constants.InstrEnterLottery, func(enc *bin.Encoder) error {
		return enc.WriteUint32(a.TicketCount, binary.LittleEndian)
	})
}

// BuildDrawLottery builds the draw_lottery instruction payload (8 bytes:
// just the discriminator — the draw is seeded from on-chain state).
func BuildDrawLottery() ([]byte, error) {
	return writeArgs(constants.InstrDrawLottery, func(enc *bin.Encoder) error { return nil })
}

// UpdateFeeArgs builds the update_fee instruction payload (16 bytes:
// discriminator, u64 new_fee_bps).
type UpdateFeeArgs struct {
	NewFeeBps uint64
}

func BuildUpdateFee(a UpdateFeeArgs) ([]byte, error) {
	return writeArgs(constants.InstrUpdateFee, func(enc *bin.Encoder) error {
		return enc.WriteUint64(a.NewFeeBps, binary.LittleEndian)
	})
}

// CommitAmpArgs builds the commit_amp instruction payload (24 bytes:
// discriminator, u64 new_amp, i64 effective_time).
type CommitAmpArgs struct {
	NewAmp        uint64
	EffectiveTime int64
}

func BuildCommitAmp(a CommitAmpArgs) ([]byte, error) {
	return writeArgs(constants.InstrCommitAmp, func(enc *bin.Encoder) error {
		if err := enc.WriteUint64(a.NewAmp, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteInt64(a.EffectiveTime, binary.LittleEndian)
	})
}

// RampAmpArgs builds the ramp_amp instruction payload (24 bytes:
// discriminator, u64 target_amp, i64 ramp_stop).
type RampAmpArgs struct {
	TargetAmp uint64
	RampStop  int64
}

func BuildRampAmp(a RampAmpArgs) ([]byte, error) {
	return writeArgs(constants.InstrRampAmp, func(enc *bin.Encoder) error {
		if err := enc.WriteUint64(a.TargetAmp, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteInt64(a.RampStop, binary.LittleEndian)
	})
}

// governanceDescriptionSize is the fixed width of a governance proposal's
// description field (spec.md §4.B): right-padded with NUL, truncated on
// overlong input.
const governanceDescriptionSize = 64

// GovernanceProposeArgs builds the governance_propose instruction
// payload (72 bytes: discriminator, 64-byte NUL-padded description).
type GovernanceProposeArgs struct {
	Description string
}

func BuildGovernancePropose(a GovernanceProposeArgs) ([]byte, error) {
	return writeArgs(constants.InstrGovernancePropose, func(enc *bin.Encoder) error {
		var desc [governanceDescriptionSize]byte
		copy(desc[:], a.Description) // copy truncates at len(desc) automatically
		return enc.WriteBytes(desc[:], false)
	})
}

// GovernanceVoteArgs builds the governance_vote instruction payload (17
// bytes: discriminator, u64 proposal_id, bool vote_for).
type GovernanceVoteArgs struct {
	ProposalID uint64
	VoteFor    bool
}

func BuildGovernanceVote(a GovernanceVoteArgs) ([]byte, error) {
	return writeArgs(constants.InstrGovernanceVote, func(enc *bin.Encoder) error {
		if err := enc.WriteUint64(a.ProposalID, binary.LittleEndian); err != nil {
			return err
		}
		return enc.WriteBool(a.VoteFor)
	})
}
