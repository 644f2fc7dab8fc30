package pda

import "github.com/gagliardetto/solana-go"

// The fourteen labelled wrappers of spec.md §4.D. Each fixes the seed prefix
// for a frequently-derived address and leaves the bump search to
// FindProgramAddress.

func DerivePool(mint0, mint1 solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("pool"), mint0.Bytes(), mint1.Bytes()}, programID)
}

func DeriveVault(pool, mint solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("vault"), pool.Bytes(), mint.Bytes()}, programID)
}

func DeriveLPMint(pool solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("lp_mint"), pool.Bytes()}, programID)
}

func DeriveFarm(pool solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("farm"), pool.Bytes()}, programID)
}

func DeriveUserFarm(farm, user solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("user_farm"), farm.Bytes(), user.Bytes()}, programID)
}

func DeriveLottery(pool solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("lottery"), pool.Bytes()}, programID)
}

func DeriveLotteryEntry(lottery, user solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("lottery_entry"), lottery.Bytes(), user.Bytes()}, programID)
}

func DeriveRegistry(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("registry")}, programID)
}

func DeriveMLBrain(pool solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("ml_brain"), pool.Bytes()}, programID)
}

func DeriveGovernanceProposal(pool solana.PublicKey, id uint64, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("gov_proposal"), pool.Bytes(), fmtSeed(id)}, programID)
}

func DeriveGovernanceVote(proposal, voter solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("gov_vote"), proposal.Bytes(), voter.Bytes()}, programID)
}

func DeriveCLPool(pool solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("cl_pool"), pool.Bytes()}, programID)
}

func DeriveCLPosition(clPool solana.PublicKey, id uint64, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("cl_position"), clPool.Bytes(), fmtSeed(id)}, programID)
}

func DeriveOrderbook(pool solana.PublicKey, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{[]byte("orderbook"), pool.Bytes()}, programID)
}
