package math

import "math/big"

// ClampFee restricts fee to [minFee, maxFee] and narrows it to u64. The
// narrowing is safe: the result is always one of the two bounds or a value
// between them, and validated bounds fit u64 by construction.
func ClampFee(fee *big.Int, minFee, maxFee uint64) uint64 {
	if fee.Cmp(new(big.Int).SetUint64(minFee)) < 0 {
		return minFee
	}
	if fee.Cmp(new(big.Int).SetUint64(maxFee)) > 0 {
		return maxFee
	}
	return fee.Uint64()
}
