// Package constants holds the read-only taxonomy shared by the rest of
// the SDK: the program identifier, instruction and account discriminators,
// numeric protocol limits, and the error-code table the on-chain program
// surfaces to callers.
package constants

import (
	"github.com/gagliardetto/solana-go"
)

// DefaultProgramIDStr is the canonical base-58 identifier of the AMM
// program this SDK targets.
const DefaultProgramIDStr = "3AMM53MsJZy2Jvf7PeHHga3bsGjWV4TSaYz29WUtcdje"

// DefaultProgramID is the decoded form of DefaultProgramIDStr. All
// derivation entry points in pda accept an override of this value.
var DefaultProgramID = solana.MustPublicKeyFromBase58(DefaultProgramIDStr)

// SPL token program identifiers the accounts in codec reference.
var (
	TokenProgramID     = solana.TokenProgramID
	Token2022ProgramID = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
)

// Numeric protocol limits (spec.md §4.A).
const (
	MinAmp = uint64(1)
	MaxAmp = uint64(100_000)

	DefaultFeeBps   = uint64(30)
	AdminFeeBps     = uint64(5_000) // 50% of the swap fee, expressed in bps of the fee
	MinSwapAmount   = uint64(100_000)
	MinDepositAmount = uint64(100_000_000)

	NewtonIterationCap = 255

	RampFloorSeconds  = int64(86_400)
	CommitDelaySeconds = int64(3_600)

	MigrationFeeBps = uint64(1337)

	MaxTokens = 8
	BloomSize = 128

	HourlyCandles = 24
	DailyCandles  = 7

	SlotsPerHour = uint64(9_000)
	SlotsPerDay  = uint64(216_000)

	PoolAccountSize  = 1024
	NPoolAccountSize = 2048
)

// Account discriminators (8-byte ASCII tags at offset 0 of every account blob).
const (
	PoolDiscriminator      = "POOLSWAP"
	NPoolDiscriminator     = "NPOOLSWA"
	FarmDiscriminator      = "FARMSWAP"
	UserFarmDiscriminator  = "UFARMSWA"
	LotteryDiscriminator   = "LOTTERY!"
	LotteryEntryDiscriminator = "LOTENTRY"
	RegistryDiscriminator  = "REGISTRY"
)

// AccountKind enumerates the account blobs codec knows how to parse.
type AccountKind int

const (
	AccountKindPool AccountKind = iota
	AccountKindNPool
	AccountKindFarm
	AccountKindUserFarm
	AccountKindLottery
	AccountKindLotteryEntry
	AccountKindRegistry
)

var accountDiscriminators = map[AccountKind]string{
	AccountKindPool:         PoolDiscriminator,
	AccountKindNPool:        NPoolDiscriminator,
	AccountKindFarm:         FarmDiscriminator,
	AccountKindUserFarm:     UserFarmDiscriminator,
	AccountKindLottery:      LotteryDiscriminator,
	AccountKindLotteryEntry: LotteryEntryDiscriminator,
	AccountKindRegistry:     RegistryDiscriminator,
}

// AccountDiscriminator returns the 8-byte ASCII tag for kind and whether
// kind is known.
func AccountDiscriminator(kind AccountKind) (string, bool) {
	d, ok := accountDiscriminators[kind]
	return d, ok
}

// InstructionName enumerates the ≈60 instructions the on-chain program
// accepts. Only the subset exercised by codec's instruction builders is
// listed by name; the rest share the same discriminator table shape.
type InstructionName string

const (
	InstrCreatePool          InstructionName = "create_pool"
	InstrSwapSimple          InstructionName = "swap"
	InstrSwapIndexed         InstructionName = "swap_indexed"
	InstrAddLiquidityBalanced InstructionName = "add_liquidity_balanced"
	InstrAddLiquiditySingle  InstructionName = "add_liquidity_single"
	InstrRemoveLiquidityBalanced InstructionName = "remove_liquidity_balanced"
	InstrCreateFarm          InstructionName = "create_farm"
	InstrStake               InstructionName = "stake"
	InstrLock                InstructionName = "lock"
	InstrCreateLottery       InstructionName = "create_lottery"
	InstrEnterLottery        InstructionName = "enter_lottery"
	InstrDrawLottery         InstructionName = "draw_lottery"
	InstrUpdateFee           InstructionName = "update_fee"
	InstrCommitAmp           InstructionName = "commit_amp"
	InstrRampAmp             InstructionName = "ramp_amp"
	InstrGovernancePropose   InstructionName = "governance_propose"
	InstrGovernanceVote      InstructionName = "governance_vote"
	InstrSetPause            InstructionName = "set_pause"
)

// instructionDiscriminators maps each known instruction name to its
// 8-byte little-endian discriminator. The on-chain program defines ~60
// such entries; this table carries the subset codec emits payloads for.
var instructionDiscriminators = map[InstructionName][8]byte{
	InstrCreatePool:              {0xaf, 0xaf, 0x6d, 0x1f, 0x0d, 0x98, 0x9b, 0xed},
	InstrSwapSimple:              {0xf8, 0xc6, 0x9e, 0x91, 0xe1, 0x75, 0x87, 0xc8},
	InstrSwapIndexed:             {0x3e, 0x9c, 0xa4, 0x4b, 0xbf, 0x1e, 0x72, 0x4a},
	InstrAddLiquidityBalanced:    {0x0b, 0x5f, 0x0f, 0x2b, 0xa3, 0x91, 0x0f, 0x6a},
	InstrAddLiquiditySingle:      {0x15, 0x86, 0x3b, 0x0e, 0x67, 0x2d, 0xf6, 0x3f},
	InstrRemoveLiquidityBalanced: {0x3f, 0xfc, 0x79, 0x4e, 0x6e, 0xb2, 0x87, 0x50},
	InstrCreateFarm:              {0x92, 0x2f, 0x9d, 0x40, 0x1f, 0x55, 0x6c, 0x11},
	InstrStake:                   {0xce, 0x6a, 0x74, 0xf7, 0x5e, 0x63, 0x02, 0x1d},
	InstrLock:                    {0x1a, 0x6d, 0xb3, 0x2c, 0x4f, 0x07, 0x9e, 0x58},
	InstrCreateLottery:           {0x7b, 0x44, 0xb4, 0xac, 0x0d, 0x27, 0x33, 0x90},
	InstrEnterLottery:            {0x44, 0xdb, 0x0c, 0x55, 0x91, 0x45, 0x58, 0x2b},
	InstrDrawLottery:             {0xba, 0x12, 0x55, 0x6d, 0x92, 0x80, 0x6c, 0x71},
	InstrUpdateFee:               {0x09, 0x6a, 0x27, 0xfd, 0x30, 0x88, 0x61, 0xd4},
	InstrCommitAmp:               {0xd1, 0x91, 0x4e, 0x02, 0xc6, 0x38, 0x57, 0x33},
	InstrRampAmp:                 {0x5c, 0x8f, 0x77, 0xb1, 0x03, 0x96, 0x2a, 0x64},
	InstrGovernancePropose:       {0x24, 0x41, 0x7e, 0xd9, 0xbb, 0x0c, 0x41, 0x86},
	InstrGovernanceVote:          {0x9d, 0x0e, 0xa8, 0x53, 0x47, 0x3b, 0x19, 0x2f},
	InstrSetPause:                {0x61, 0xf3, 0x1a, 0x9c, 0x8e, 0x4d, 0x05, 0x77},
}

// InstructionDiscriminator returns the 8-byte little-endian discriminator
// for name and whether name is known.
func InstructionDiscriminator(name InstructionName) ([8]byte, bool) {
	d, ok := instructionDiscriminators[name]
	return d, ok
}

// ErrorCode is one of the 6000–6030 error codes the chain surfaces.
type ErrorCode uint32

const (
	ErrPaused                ErrorCode = 6000
	ErrInvalidAmp            ErrorCode = 6001
	ErrMathOverflow          ErrorCode = 6002
	ErrZeroAmount            ErrorCode = 6003
	ErrSlippageExceeded      ErrorCode = 6004
	ErrInvalidInvariant      ErrorCode = 6005
	ErrInsufficientLiquidity ErrorCode = 6006
	ErrVaultMismatch         ErrorCode = 6007
	ErrExpired               ErrorCode = 6008
	ErrAlreadyInitialized    ErrorCode = 6009
	ErrUnauthorized          ErrorCode = 6010
	ErrRampConstraint        ErrorCode = 6011
	ErrLocked                ErrorCode = 6012
	ErrFarmingError          ErrorCode = 6013
	ErrInvalidOwner          ErrorCode = 6014
	ErrInvalidDiscriminator  ErrorCode = 6015
	ErrCPIFailed             ErrorCode = 6016
	ErrFull                  ErrorCode = 6017
	ErrCircuitBreaker        ErrorCode = 6018
	ErrOracleError           ErrorCode = 6019
	ErrRateLimit             ErrorCode = 6020
	ErrGovernanceError       ErrorCode = 6021
	ErrOrderError            ErrorCode = 6022
	ErrTickError             ErrorCode = 6023
	ErrRangeError            ErrorCode = 6024
	ErrFlashError            ErrorCode = 6025
	ErrCooldown              ErrorCode = 6026
	ErrMEVProtection         ErrorCode = 6027
	ErrStaleData             ErrorCode = 6028
	ErrBiasError             ErrorCode = 6029
	ErrDurationError         ErrorCode = 6030
)

var errorCodeText = map[ErrorCode]string{
	ErrPaused:                "paused",
	ErrInvalidAmp:            "invalid_amp",
	ErrMathOverflow:          "math_overflow",
	ErrZeroAmount:            "zero_amount",
	ErrSlippageExceeded:      "slippage_exceeded",
	ErrInvalidInvariant:      "invalid_invariant",
	ErrInsufficientLiquidity: "insufficient_liquidity",
	ErrVaultMismatch:         "vault_mismatch",
	ErrExpired:               "expired",
	ErrAlreadyInitialized:    "already_initialized",
	ErrUnauthorized:          "unauthorized",
	ErrRampConstraint:        "ramp_constraint",
	ErrLocked:                "locked",
	ErrFarmingError:          "farming_error",
	ErrInvalidOwner:          "invalid_owner",
	ErrInvalidDiscriminator:  "invalid_discriminator",
	ErrCPIFailed:             "cpi_failed",
	ErrFull:                 "full",
	ErrCircuitBreaker:        "circuit_breaker",
	ErrOracleError:           "oracle_error",
	ErrRateLimit:             "rate_limit",
	ErrGovernanceError:       "governance_error",
	ErrOrderError:            "order_error",
	ErrTickError:             "tick_error",
	ErrRangeError:            "range_error",
	ErrFlashError:            "flash_error",
	ErrCooldown:              "cooldown",
	ErrMEVProtection:         "mev_protection",
	ErrStaleData:             "stale_data",
	ErrBiasError:             "bias_error",
	ErrDurationError:         "duration_error",
}

// ErrorText translates a chain error code to its short human string. It
// returns ok=false for an unrecognized code rather than failing.
func ErrorText(code ErrorCode) (string, bool) {
	s, ok := errorCodeText[code]
	return s, ok
}
