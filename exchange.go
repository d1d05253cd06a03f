// exchange.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Exchange Generator (§4.H): when the bag
// holds enough tiles, find the best subset of the rack to exchange by
// leave value alone. No teacher or pack source implements this —
// the teacher's robot.go HighScoreRobot only falls back to a random exchange —
// so the enumeration below is grounded directly on spec.md §4.H and
// reuses klv.go's LeaveValue, the same evaluator the Move Generator
// and Shadow Evaluator call.
package skrafl

// BestExchange returns the highest-equity exchange move available for
// rack, or nil if the bag does not hold enough tiles to exchange
// (§4.H: at least RackSize tiles must remain).
func BestExchange(rack *Rack, klv *Klv, bag *Bag) *Move {
	if !bag.ExchangeAllowed() || rack.IsEmpty() {
		return nil
	}
	tiles := rack.Tiles()
	n := len(tiles)

	var best *Move
	for mask := 1; mask < (1 << n); mask++ {
		var exchanged, kept []byte
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				exchanged = append(exchanged, tiles[i])
			} else {
				kept = append(kept, tiles[i])
			}
		}
		equity := klv.LeaveValue(kept)
		if best == nil || equity > best.Equity {
			best = NewExchangeMove(exchanged, equity)
		}
	}
	return best
}
