package math

import (
	"math/big"
	"testing"

	"github.com/halcyonfi/dynfee-go/dynamic_fee/shared"
)

func validParams(t *testing.T) shared.PoolTypeParams {
	return shared.PoolTypeParams{
		MinFee:          shared.MinFeeNumerator,
		MaxFee:          300_000_000,
		BaseMaxFeeDelta: 1_000_000,
		LookbackPeriod:  30,
		MinPeriod:       600,
		RatioTolerance:  ratio(t, "100000000000000000"),
		LinearSlope:     ratio(t, "500000000000000000"),
		MaxCurrentRatio: ratio(t, "10000000000000000000"),
		UpperSideFactor: ratio(t, "1000000000000000000"),
		LowerSideFactor: ratio(t, "1000000000000000000"),
	}
}

func TestValidatePoolTypeParams(t *testing.T) {
	if !ValidatePoolTypeParams(validParams(t)) {
		t.Fatal("valid params rejected")
	}

	tests := []struct {
		name   string
		mutate func(*shared.PoolTypeParams)
	}{
		{"min above max", func(p *shared.PoolTypeParams) { p.MinFee = p.MaxFee + 1 }},
		{"max above global ceiling", func(p *shared.PoolTypeParams) { p.MaxFee = shared.MaxFeeNumerator + 1 }},
		{"min below global floor", func(p *shared.PoolTypeParams) { p.MinFee = shared.MinFeeNumerator - 1 }},
		{"zero delta cap", func(p *shared.PoolTypeParams) { p.BaseMaxFeeDelta = 0 }},
		{"lookback too small", func(p *shared.PoolTypeParams) { p.LookbackPeriod = 0 }},
		{"lookback too large", func(p *shared.PoolTypeParams) { p.LookbackPeriod = shared.MaxLookbackPeriod + 1 }},
		{"period too small", func(p *shared.PoolTypeParams) { p.MinPeriod = 0 }},
		{"period too large", func(p *shared.PoolTypeParams) { p.MinPeriod = shared.MaxAdjustmentPeriod + 1 }},
		{"tolerance below floor", func(p *shared.PoolTypeParams) {
			p.RatioTolerance = new(big.Int).Sub(shared.MinRatioTolerance, big.NewInt(1))
		}},
		{"nil tolerance", func(p *shared.PoolTypeParams) { p.RatioTolerance = nil }},
		{"slope below floor", func(p *shared.PoolTypeParams) {
			p.LinearSlope = new(big.Int).Sub(shared.MinLinearSlope, big.NewInt(1))
		}},
		{"zero max ratio", func(p *shared.PoolTypeParams) { p.MaxCurrentRatio = big.NewInt(0) }},
		{"max ratio above global ceiling", func(p *shared.PoolTypeParams) {
			p.MaxCurrentRatio = new(big.Int).Add(shared.MaxCurrentRatio, big.NewInt(1))
		}},
		{"zero upper side factor", func(p *shared.PoolTypeParams) { p.UpperSideFactor = big.NewInt(0) }},
		{"zero lower side factor", func(p *shared.PoolTypeParams) { p.LowerSideFactor = big.NewInt(0) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams(t)
			tc.mutate(&params)
			if ValidatePoolTypeParams(params) {
				t.Fatal("invalid params accepted")
			}
		})
	}
}

func TestValidateFeeBounds(t *testing.T) {
	if err := ValidateFeeBounds(shared.MinFeeNumerator, shared.MaxFeeNumerator); err != nil {
		t.Fatalf("full global interval rejected: %v", err)
	}
	if err := ValidateFeeBounds(200, 100); err == nil {
		t.Fatal("inverted interval accepted")
	}
	if err := ValidateFeeBounds(1, shared.MaxFeeNumerator); err == nil {
		t.Fatal("floor below global minimum accepted")
	}
	if err := ValidateFeeBounds(shared.MinFeeNumerator, shared.MaxFeeNumerator+1); err == nil {
		t.Fatal("ceiling above global maximum accepted")
	}
}

func TestValidateAdjustmentRate(t *testing.T) {
	if !ValidateAdjustmentRate(shared.MaxAdjustmentRate) {
		t.Fatal("global ceiling rejected")
	}
	if ValidateAdjustmentRate(nil) || ValidateAdjustmentRate(big.NewInt(0)) {
		t.Fatal("nil or zero rate accepted")
	}
	if ValidateAdjustmentRate(new(big.Int).Add(shared.MaxAdjustmentRate, big.NewInt(1))) {
		t.Fatal("rate above global ceiling accepted")
	}
}

func TestValidateFeeUpdateFrequency(t *testing.T) {
	last := big.NewInt(1_000)
	if ValidateFeeUpdateFrequency(last, big.NewInt(1_500), 600) {
		t.Fatal("poke inside cooldown accepted")
	}
	if !ValidateFeeUpdateFrequency(last, big.NewInt(1_600), 600) {
		t.Fatal("poke at cooldown boundary rejected")
	}
	if ValidateFeeUpdateFrequency(last, big.NewInt(900), 600) {
		t.Fatal("current point before last update accepted")
	}
}
