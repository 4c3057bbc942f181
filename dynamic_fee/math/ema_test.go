package math

import (
	"math/big"
	"testing"
)

func TestEmaFixedPoint(t *testing.T) {
	for _, s := range []string{"0", "1", "1000000000000000000", "1300000000000000000", "9999999999999999999"} {
		x := ratio(t, s)
		for _, lookback := range []uint64{1, 2, 30, 65_535} {
			if got := Ema(x, x, lookback); got.Cmp(x) != 0 {
				t.Fatalf("Ema(%s, %s, %d) = %s, want fixed point", s, s, lookback, got)
			}
		}
	}
}

func TestEmaLookbackOneTracksExactly(t *testing.T) {
	current := ratio(t, "1300000000000000000")
	old := ratio(t, "1000000000000000000")
	if got := Ema(current, old, 1); got.Cmp(current) != 0 {
		t.Fatalf("Ema with lookback 1 = %s, want %s", got, current)
	}
}

func TestEmaStaysBetween(t *testing.T) {
	pairs := [][2]string{
		{"1300000000000000000", "1000000000000000000"},
		{"1000000000000000000", "1300000000000000000"},
		{"0", "1000000000000000000"},
		{"5000000000000000000", "1"},
	}
	for _, pair := range pairs {
		current, old := ratio(t, pair[0]), ratio(t, pair[1])
		lo, hi := current, old
		if lo.Cmp(hi) > 0 {
			lo, hi = hi, lo
		}
		for lookback := uint64(1); lookback <= 200; lookback++ {
			got := Ema(current, old, lookback)
			if got.Cmp(lo) < 0 || got.Cmp(hi) > 0 {
				t.Fatalf("Ema(%s, %s, %d) = %s escaped [%s, %s]", pair[0], pair[1], lookback, got, lo, hi)
			}
		}
	}
}

func TestEmaLargerLookbackMovesSlower(t *testing.T) {
	current := ratio(t, "2000000000000000000")
	old := ratio(t, "1000000000000000000")

	fast := Ema(current, old, 2)
	slow := Ema(current, old, 100)
	if fast.Cmp(slow) <= 0 {
		t.Fatalf("lookback 2 moved %s, lookback 100 moved %s; expected faster convergence for smaller lookback", fast, slow)
	}
}

func TestEmaDownwardStep(t *testing.T) {
	current := ratio(t, "1000000000000000000")
	old := ratio(t, "2000000000000000000")

	// alpha = 2/(3+1) = 0.5, step = 0.5e18 down.
	got := Ema(current, old, 3)
	want := ratio(t, "1500000000000000000")
	if got.Cmp(want) != 0 {
		t.Fatalf("Ema = %s, want %s", got, want)
	}
	if big.NewInt(0).Cmp(got) > 0 {
		t.Fatal("target must stay non-negative")
	}
}
