// equity_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

func TestPointsToEquityRoundTrip(t *testing.T) {
	for _, points := range []int{0, 1, 7, 50, -12} {
		e := PointsToEquity(points)
		if got := EquityToPoints(e); got != points {
			t.Errorf("PointsToEquity(%d) round-trip gave %d", points, got)
		}
	}
}

func TestEquitySentinelsAreDistinct(t *testing.T) {
	sentinels := []Equity{EquityUndefined, EquityInitial, EquityPass, EquityMin}
	for i := range sentinels {
		for j := range sentinels {
			if i != j && sentinels[i] == sentinels[j] {
				t.Errorf("sentinel %d and %d collide (%d)", i, j, sentinels[i])
			}
		}
	}
	if EquityMax != -EquityMin {
		t.Errorf("EquityMax should be the negation of EquityMin")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BingoBonus != 400 {
		t.Errorf("DefaultConfig BingoBonus = %v, want 400", cfg.BingoBonus)
	}
	if cfg.NonOutplayConstantPenalty != 80 {
		t.Errorf("DefaultConfig NonOutplayConstantPenalty = %v, want 80", cfg.NonOutplayConstantPenalty)
	}
}
