package math

import (
	"errors"
	"math/big"

	"github.com/halcyonfi/dynfee-go/dynamic_fee/shared"
)

// ValidatePoolTypeParams reports whether params respects every global bound.
// Configuration that passes here keeps all downstream fee arithmetic inside
// the u64 fee representation.
func ValidatePoolTypeParams(params shared.PoolTypeParams) bool {
	if err := ValidateFeeBounds(params.MinFee, params.MaxFee); err != nil {
		return false
	}
	if params.BaseMaxFeeDelta == 0 {
		return false
	}
	if params.LookbackPeriod < shared.MinLookbackPeriod || params.LookbackPeriod > shared.MaxLookbackPeriod {
		return false
	}
	if params.MinPeriod < shared.MinAdjustmentPeriod || params.MinPeriod > shared.MaxAdjustmentPeriod {
		return false
	}
	if params.RatioTolerance == nil || params.RatioTolerance.Cmp(shared.MinRatioTolerance) < 0 {
		return false
	}
	if params.LinearSlope == nil || params.LinearSlope.Cmp(shared.MinLinearSlope) < 0 {
		return false
	}
	if params.MaxCurrentRatio == nil || params.MaxCurrentRatio.Sign() <= 0 || params.MaxCurrentRatio.Cmp(shared.MaxCurrentRatio) > 0 {
		return false
	}
	if params.UpperSideFactor == nil || params.UpperSideFactor.Sign() <= 0 {
		return false
	}
	if params.LowerSideFactor == nil || params.LowerSideFactor.Sign() <= 0 {
		return false
	}
	return true
}

// ValidateFeeBounds checks a per-pool-type fee interval against the global
// fee limits.
func ValidateFeeBounds(minFee, maxFee uint64) error {
	if minFee > maxFee {
		return errors.New("invalid fee bounds: minFee must not exceed maxFee")
	}
	if minFee < shared.MinFeeNumerator {
		return errors.New("invalid fee bounds: minFee below global minimum")
	}
	if maxFee > shared.MaxFeeNumerator {
		return errors.New("invalid fee bounds: maxFee above global maximum")
	}
	return nil
}

// ValidateAdjustmentRate reports whether a protocol-wide adjustment-rate
// ceiling is usable by ComputeNewFee.
func ValidateAdjustmentRate(maxAdjustmentRate *big.Int) bool {
	return maxAdjustmentRate != nil && maxAdjustmentRate.Sign() > 0 && maxAdjustmentRate.Cmp(shared.MaxAdjustmentRate) <= 0
}

// ValidateFeeUpdateFrequency reports whether enough time has passed since
// the last update for another poke. Cooldown enforcement belongs to the
// orchestration layer; this is the shared definition of "too soon".
func ValidateFeeUpdateFrequency(lastUpdateAt, currentPoint *big.Int, minPeriod uint64) bool {
	if currentPoint.Cmp(lastUpdateAt) < 0 {
		return false
	}
	elapsed := new(big.Int).Sub(currentPoint, lastUpdateAt)
	return elapsed.Cmp(new(big.Int).SetUint64(minPeriod)) >= 0
}
