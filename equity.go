// equity.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// Equity: a signed value in eighths of a point, combining score and
// the expected future value of a tile leave.

package skrafl

import "math"

// Equity is stored in eighths of a point so that leave values (computed
// at the same resolution) can combine additively with integer scores.
type Equity int16

// EquityResolution is the number of Equity units per point.
const EquityResolution = 8

const (
	// EquityUndefined marks an uninitialized equity value.
	EquityUndefined Equity = math.MinInt16
	// EquityInitial is the "no move found yet" sentinel used as the
	// lower bound for best-so-far comparisons.
	EquityInitial Equity = math.MinInt16 + 1
	// EquityPass is the equity recorded for a pass move.
	EquityPass Equity = math.MinInt16 + 2
	// EquityMin is the lowest usable equity value.
	EquityMin Equity = math.MinInt16 + 3
	// EquityMax is the highest usable equity value, symmetric with EquityMin.
	EquityMax Equity = -EquityMin
)

// PointsToEquity converts an integer point value to Equity (eighths).
func PointsToEquity(points int) Equity {
	return Equity(points * EquityResolution)
}

// EquityToPoints truncates an Equity value back to whole points.
func EquityToPoints(e Equity) int {
	return int(e) / EquityResolution
}

// Config holds the tunable parameters recognized by the core (§6).
type Config struct {
	// Lexicon names which word-graph/leave-table pair to use.
	Lexicon string
	// OpeningHotspotPenalty is applied per vowel placed on an opening
	// hotspot square on the very first move of the game.
	OpeningHotspotPenalty Equity
	// NonOutplayConstantPenalty is subtracted when a play does not
	// empty the rack and the bag is empty.
	NonOutplayConstantPenalty Equity
	// BingoBonus is added when fresh-tile-count equals the rack size
	// at the start of the turn.
	BingoBonus Equity
}

// DefaultConfig returns the configuration defaults specified in §6.
func DefaultConfig() Config {
	return Config{
		Lexicon:                   "otcwl",
		OpeningHotspotPenalty:     -6,
		NonOutplayConstantPenalty: 80,
		BingoBonus:                400,
	}
}
