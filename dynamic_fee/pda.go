package dynamicfee

import solanago "github.com/gagliardetto/solana-go"

// DeriveFeeStatePDA derives the per-pool fee state account.
func DeriveFeeStatePDA(pool solanago.PublicKey) (solanago.PublicKey, error) {
	seeds := [][]byte{[]byte("dynamic_fee_state"), pool.Bytes()}
	pda, _, err := solanago.FindProgramAddress(seeds, ProgramID)
	if err != nil {
		return solanago.PublicKey{}, err
	}
	return pda, nil
}

// DeriveFeeConfigPDA derives the pool-type fee configuration account.
func DeriveFeeConfigPDA(poolType uint8) (solanago.PublicKey, error) {
	seeds := [][]byte{[]byte("dynamic_fee_config"), {poolType}}
	pda, _, err := solanago.FindProgramAddress(seeds, ProgramID)
	if err != nil {
		return solanago.PublicKey{}, err
	}
	return pda, nil
}
