package math

import (
	"math/big"

	"github.com/halcyonfi/dynfee-go/dynamic_fee/shared"
)

// Ema advances the target ratio toward currentRatio with smoothing constant
// alpha = 2*One/(lookbackPeriod+1). A larger lookback gives a smaller alpha
// and a slower-moving target. The result lies weakly between oldTargetRatio
// and currentRatio and equals currentRatio only when lookbackPeriod == 1.
func Ema(currentRatio, oldTargetRatio *big.Int, lookbackPeriod uint64) *big.Int {
	alpha := new(big.Int).Mul(big.NewInt(2), shared.One)
	alpha.Div(alpha, new(big.Int).SetUint64(lookbackPeriod+1))

	if currentRatio.Cmp(oldTargetRatio) >= 0 {
		step := new(big.Int).Sub(currentRatio, oldTargetRatio)
		step = mulDiv(step, alpha, shared.One, shared.RoundingDown)
		return new(big.Int).Add(oldTargetRatio, step)
	}
	step := new(big.Int).Sub(oldTargetRatio, currentRatio)
	step = mulDiv(step, alpha, shared.One, shared.RoundingDown)
	return new(big.Int).Sub(oldTargetRatio, step)
}
