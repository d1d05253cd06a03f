// orchestrator.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements generate-moves (§4.I): the entry point that
// wires the Shadow Evaluator, Move Generator and Exchange Generator
// together into a single best-play (or pass) decision. Grounded on
// spec.md §4.I; it replaces the teacher's GameState.GenerateMoves in
// movegen.go, which returned every legal move for a caller (robot.go)
// to rank afterwards — this engine picks the winner itself and reports
// its effort as a GenStats value instead of global counters (see
// SPEC_FULL.md §9).
package skrafl

// GenerateMoves runs the full move-selection pipeline for one turn:
// the Shadow Evaluator orders anchors by an admissible upper bound,
// the Move Generator is run per anchor in that order with an early
// cutoff once no remaining anchor's bound can beat the best play found
// so far, and the result is compared against the best available
// exchange. Returns a pass if neither placement nor exchange tiles.
func GenerateMoves(b *Board, rack *Rack, oppRack *Rack, kwg *Kwg, klv *Klv, bag *Bag) (*Move, GenStats) {
	lm := NewLeaveMap(rack, klv)
	return generateMoves(b, rack, oppRack, kwg, klv, lm, bag, DefaultConfig(), true)
}

// GenerateMovesWithConfig is GenerateMoves with an explicit Config,
// used by callers (self-play, tests) that tune the equity parameters.
func GenerateMovesWithConfig(b *Board, rack *Rack, oppRack *Rack, kwg *Kwg, klv *Klv, bag *Bag, cfg Config) (*Move, GenStats) {
	lm := NewLeaveMap(rack, klv)
	return generateMoves(b, rack, oppRack, kwg, klv, lm, bag, cfg, true)
}

// GenerateMovesStrategy is GenerateMovesWithConfig with the shadow
// evaluator's best-first anchor ordering and early cutoff optionally
// disabled (§8 Testable Property 1's "no-shadow" strategy): every
// anchor is then visited in board order with no pruning. Only the
// number of anchors and moves the Move Generator visits changes; the
// chosen best play does not.
func GenerateMovesStrategy(b *Board, rack *Rack, oppRack *Rack, kwg *Kwg, klv *Klv, bag *Bag, cfg Config, useShadow bool) (*Move, GenStats) {
	lm := NewLeaveMap(rack, klv)
	return generateMoves(b, rack, oppRack, kwg, klv, lm, bag, cfg, useShadow)
}

func generateMoves(b *Board, rack *Rack, oppRack *Rack, kwg *Kwg, klv *Klv, lm *LeaveMap, bag *Bag, cfg Config, useShadow bool) (*Move, GenStats) {
	bagCount := bag.TileCount()
	oppRackScore := rackScore(oppRack)

	var heap *AnchorHeap
	if useShadow {
		heap = RunShadow(b, rack, lm, cfg, bagCount, oppRackScore)
	} else {
		anchors := EnumerateAnchors(b)
		for i := range anchors {
			anchors[i].Bound = EquityMax
		}
		heap = NewAnchorHeap(anchors)
	}

	gen := NewMoveGen(b, kwg, cfg, rack, lm, bagCount, oppRackScore)
	for {
		a, ok := heap.PopBest()
		if !ok {
			break
		}
		if gen.Best.Equity != EquityInitial && a.Bound < gen.Best.Equity {
			// Every remaining anchor's bound is strictly worse than
			// the best play already found: stop early (§4.I, §4.F). A
			// bound that only ties the incumbent's equity is kept,
			// since the anchor's actual play could still win on
			// Move.Better's score tie-break.
			remaining := heap.Len() + 1
			gen.Stats.AnchorsCutOff += remaining
			break
		}
		gen.GenerateFromAnchor(a)
	}

	if ex := BestExchange(rack, klv, bag); ex != nil && ex.Better(gen.Best) {
		gen.Best = ex
	}

	if gen.Best.Equity == EquityInitial {
		return NewPassMove(), gen.Stats
	}
	return gen.Best, gen.Stats
}

func rackScore(rack *Rack) int {
	if rack == nil {
		return 0
	}
	return remainingRackScore(rack)
}
