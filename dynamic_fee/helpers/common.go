package helpers

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/halcyonfi/dynfee-go/dynamic_fee/shared"
)

func BpsToFeeNumerator(bps uint16) uint64 {
	fee := new(big.Int).Mul(big.NewInt(int64(bps)), big.NewInt(shared.FeeDenominator))
	return fee.Div(fee, big.NewInt(shared.BasisPointMax)).Uint64()
}

func FeeNumeratorToBps(feeNumerator uint64) uint16 {
	val := new(big.Int).Mul(new(big.Int).SetUint64(feeNumerator), big.NewInt(shared.BasisPointMax))
	val.Div(val, big.NewInt(shared.FeeDenominator))
	return uint16(val.Uint64())
}

// FeePercent renders a fee numerator as a percentage, e.g. 300_000_000 -> 30.
func FeePercent(feeNumerator uint64) decimal.Decimal {
	return decimal.NewFromUint64(feeNumerator).
		Div(decimal.NewFromInt(shared.FeeDenominator)).
		Mul(decimal.NewFromInt(100))
}

// RatioDecimal renders a One-scaled ratio as a plain decimal, e.g.
// 1.3e18 -> 1.3.
func RatioDecimal(ratio *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(ratio, -18)
}

// AlphaDecimal previews the EMA smoothing constant 2/(lookbackPeriod+1) a
// given lookback produces.
func AlphaDecimal(lookbackPeriod uint64) decimal.Decimal {
	return decimal.NewFromInt(2).Div(decimal.NewFromUint64(lookbackPeriod + 1))
}

// ParsePoolTypeParamsJSON parses a governance config document into
// PoolTypeParams. Ratio-valued fields are One-scaled integers encoded as
// JSON strings to avoid precision loss.
func ParsePoolTypeParamsJSON(doc []byte) (shared.PoolTypeParams, error) {
	root := gjson.ParseBytes(doc)
	for _, field := range []string{
		"min_fee", "max_fee", "base_max_fee_delta", "lookback_period", "min_period",
		"ratio_tolerance", "linear_slope", "max_current_ratio",
		"upper_side_factor", "lower_side_factor",
	} {
		if !root.Get(field).Exists() {
			return shared.PoolTypeParams{}, fmt.Errorf("missing field %q", field)
		}
	}
	ratioTolerance, err := parseRatio(root.Get("ratio_tolerance"))
	if err != nil {
		return shared.PoolTypeParams{}, err
	}
	linearSlope, err := parseRatio(root.Get("linear_slope"))
	if err != nil {
		return shared.PoolTypeParams{}, err
	}
	maxCurrentRatio, err := parseRatio(root.Get("max_current_ratio"))
	if err != nil {
		return shared.PoolTypeParams{}, err
	}
	upperSideFactor, err := parseRatio(root.Get("upper_side_factor"))
	if err != nil {
		return shared.PoolTypeParams{}, err
	}
	lowerSideFactor, err := parseRatio(root.Get("lower_side_factor"))
	if err != nil {
		return shared.PoolTypeParams{}, err
	}
	return shared.PoolTypeParams{
		MinFee:          root.Get("min_fee").Uint(),
		MaxFee:          root.Get("max_fee").Uint(),
		BaseMaxFeeDelta: root.Get("base_max_fee_delta").Uint(),
		LookbackPeriod:  root.Get("lookback_period").Uint(),
		MinPeriod:       root.Get("min_period").Uint(),
		RatioTolerance:  ratioTolerance,
		LinearSlope:     linearSlope,
		MaxCurrentRatio: maxCurrentRatio,
		UpperSideFactor: upperSideFactor,
		LowerSideFactor: lowerSideFactor,
	}, nil
}

func parseRatio(result gjson.Result) (*big.Int, error) {
	out, ok := new(big.Int).SetString(result.String(), 10)
	if !ok || out.Sign() < 0 {
		return nil, errors.New("invalid ratio value: " + result.String())
	}
	return out, nil
}
