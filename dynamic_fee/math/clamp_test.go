package math

import (
	"math/big"
	"testing"
)

func TestClampFee(t *testing.T) {
	tests := []struct {
		name string
		fee  *big.Int
		min  uint64
		max  uint64
		want uint64
	}{
		{"below floor", big.NewInt(50), 100, 10_000, 100},
		{"at floor", big.NewInt(100), 100, 10_000, 100},
		{"inside", big.NewInt(3000), 100, 10_000, 3000},
		{"at ceiling", big.NewInt(10_000), 100, 10_000, 10_000},
		{"above ceiling", big.NewInt(10_001), 100, 10_000, 10_000},
		{"negative accumulator", big.NewInt(-7), 100, 10_000, 100},
		{"degenerate interval", big.NewInt(42), 500, 500, 500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampFee(tc.fee, tc.min, tc.max); got != tc.want {
				t.Fatalf("ClampFee(%s, %d, %d) = %d, want %d", tc.fee, tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestClampFeeWideInput(t *testing.T) {
	huge, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	if got := ClampFee(huge, 100, 990_000_000); got != 990_000_000 {
		t.Fatalf("ClampFee(u128 max) = %d, want ceiling", got)
	}
}
