package shared

import "math/big"

// Enums and common types shared by math and helpers.
type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)

// PoolTypeParams is the per-pool-type fee configuration. It is set once by
// governance and passed by value on every poke. Ratio-valued fields
// (RatioTolerance, LinearSlope, MaxCurrentRatio, side factors) are
// fixed-point fractions scaled by One.
type PoolTypeParams struct {
	MinFee          uint64
	MaxFee          uint64
	BaseMaxFeeDelta uint64
	LookbackPeriod  uint64
	MinPeriod       uint64
	RatioTolerance  *big.Int
	LinearSlope     *big.Int
	MaxCurrentRatio *big.Int
	UpperSideFactor *big.Int
	LowerSideFactor *big.Int
}

// OobState tracks the current out-of-band streak for one pool. The caller
// persists it between pokes; ComputeNewFee returns the updated value.
// ConsecutiveHits saturates at MaxOobHits and resets to zero when the
// observed ratio returns inside the tolerance band.
type OobState struct {
	LastWasUpper    bool
	ConsecutiveHits uint32
}

const (
	BasisPointMax  = 10_000
	FeeDenominator = 1_000_000_000

	// Global fee bounds. Per-pool-type MinFee/MaxFee must stay inside
	// [MinFeeNumerator, MaxFeeNumerator] so a clamped fee always fits u64.
	MinFeeNumerator = 100_000
	MaxFeeNumerator = 990_000_000

	MinLookbackPeriod = 1
	MaxLookbackPeriod = 65_535

	MinAdjustmentPeriod = 1
	MaxAdjustmentPeriod = 604_800

	// ConsecutiveHits saturates here; the streak-scaled delta cap stops
	// growing once a run is this long.
	MaxOobHits = 65_535
)

var (
	// One is the fixed-point scaling constant: 1.0 == 10^18.
	One = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	// MaxCurrentRatio is the protocol-wide ceiling on observed ratios
	// (1000x the target scale). Per-pool MaxCurrentRatio must not exceed it.
	MaxCurrentRatio = new(big.Int).Mul(big.NewInt(1000), One)

	// MinRatioTolerance and MinLinearSlope are floors of 0.001 (0.1%).
	MinRatioTolerance = new(big.Int).Exp(big.NewInt(10), big.NewInt(15), nil)
	MinLinearSlope    = new(big.Int).Exp(big.NewInt(10), big.NewInt(15), nil)

	// MaxAdjustmentRate caps the protocol-wide adjustment-rate ceiling at
	// 100x per poke.
	MaxAdjustmentRate = new(big.Int).Mul(big.NewInt(100), One)
)
