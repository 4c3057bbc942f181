package math

import (
	"math/big"

	"github.com/halcyonfi/dynfee-go/dynamic_fee/shared"
)

// WithinBounds classifies currentRatio against the tolerance band around
// targetRatio. ratioTolerance is a One-scaled fraction giving the half-width
// of the band. The lower bound saturates at zero, so the function is total
// over all unsigned inputs.
func WithinBounds(targetRatio, ratioTolerance, currentRatio *big.Int) (isUpper bool, inBand bool) {
	delta := mulDiv(targetRatio, ratioTolerance, shared.One, shared.RoundingDown)
	lowerBound := big.NewInt(0)
	if targetRatio.Cmp(delta) > 0 {
		lowerBound = new(big.Int).Sub(targetRatio, delta)
	}
	upperBound := new(big.Int).Add(targetRatio, delta)
	isUpper = currentRatio.Cmp(upperBound) > 0
	inBand = currentRatio.Cmp(lowerBound) >= 0 && currentRatio.Cmp(upperBound) <= 0
	return isUpper, inBand
}

// ComputeNewFee runs one poke of the fee-adjustment engine: it classifies
// currentRatio against the band around targetRatio, advances the out-of-band
// streak, and moves currentFee by a streak-throttled, side-scaled delta.
// maxAdjustmentRate is the protocol-wide One-scaled ceiling on the
// adjustment rate, applied on top of the per-type LinearSlope.
//
// The function is total: identical inputs always produce identical outputs
// and no input combination fails. The division by targetRatio is only
// reached after the zero-target/in-band branch has excluded targetRatio == 0.
func ComputeNewFee(currentFee uint64, currentRatio, targetRatio, maxAdjustmentRate *big.Int, params shared.PoolTypeParams, oob shared.OobState) (uint64, shared.OobState) {
	isUpper, inBand := WithinBounds(targetRatio, params.RatioTolerance, currentRatio)

	if targetRatio.Sign() == 0 || inBand {
		oob.ConsecutiveHits = 0
		return ClampFee(new(big.Int).SetUint64(currentFee), params.MinFee, params.MaxFee), oob
	}

	if isUpper != oob.LastWasUpper {
		oob.ConsecutiveHits = 1
	} else if oob.ConsecutiveHits < shared.MaxOobHits {
		oob.ConsecutiveHits++
	}
	oob.LastWasUpper = isUpper

	deviation := new(big.Int)
	if isUpper {
		deviation.Sub(currentRatio, targetRatio)
	} else {
		deviation.Sub(targetRatio, currentRatio)
	}

	adjustmentRate := mulDiv(deviation, params.LinearSlope, targetRatio, shared.RoundingDown)
	adjustmentRate = minBig(adjustmentRate, maxAdjustmentRate)

	feeDelta := mulDiv(new(big.Int).SetUint64(currentFee), adjustmentRate, shared.One, shared.RoundingDown)
	maxFeeDelta := new(big.Int).Mul(
		new(big.Int).SetUint64(params.BaseMaxFeeDelta),
		new(big.Int).SetUint64(uint64(oob.ConsecutiveHits)),
	)
	feeDelta = minBig(feeDelta, maxFeeDelta)

	fee := new(big.Int).SetUint64(currentFee)
	if isUpper {
		scaledDelta := mulDiv(feeDelta, params.UpperSideFactor, shared.One, shared.RoundingDown)
		fee.Add(fee, scaledDelta)
	} else {
		scaledDelta := mulDiv(feeDelta, params.LowerSideFactor, shared.One, shared.RoundingDown)
		if scaledDelta.Cmp(fee) >= 0 {
			// A decrease larger than the whole fee floors at MinFee.
			return params.MinFee, oob
		}
		fee.Sub(fee, scaledDelta)
	}
	return ClampFee(fee, params.MinFee, params.MaxFee), oob
}
