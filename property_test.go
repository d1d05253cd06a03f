// property_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// Exercises a couple of the generation pipeline's cross-cutting
// properties: the shadow-disabled strategy must explore every anchor
// without pruning yet still land on the same best play, and the
// Shadow Evaluator's bound must never undersell a move the Move
// Generator actually finds through that anchor.

package skrafl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShadowStrategyAgreesWithUnshadowedScan(t *testing.T) {
	kwg := newCatOnlyKwg()
	klv := newNeverMatchingKlv()
	rack := NewRack("cat")
	oppRack := NewRack("")

	board := NewBoard()
	RebuildAllCrossSets(board, kwg)
	bag := NewBag(EnglishTileSet)
	cfg := DefaultConfig()

	shadowMove, shadowStats := GenerateMovesWithConfig(board, rack, oppRack, kwg, klv, bag, cfg)
	plainMove, plainStats := GenerateMovesStrategy(board, rack, oppRack, kwg, klv, bag, cfg, false)

	require.NotNil(t, shadowMove)
	require.NotNil(t, plainMove)
	require.Equal(t, shadowMove.Equity, plainMove.Equity,
		"disabling the shadow evaluator's pruning must not change the chosen play's equity")
	require.Equal(t, shadowMove.Kind, plainMove.Kind)

	require.Zero(t, plainStats.AnchorsCutOff,
		"the no-shadow strategy forces every anchor's bound to EquityMax, so cutoff should never fire")
	require.GreaterOrEqual(t, plainStats.AnchorsProcessed, shadowStats.AnchorsProcessed,
		"scanning every anchor without pruning should process at least as many anchors as the shadow-ordered run")
}

func TestShadowBoundIsAdmissible(t *testing.T) {
	kwg := newCatOnlyKwg()
	klv := newNeverMatchingKlv()
	rack := NewRack("cat")

	board := NewBoard()
	RebuildAllCrossSets(board, kwg)
	cfg := DefaultConfig()
	lm := NewLeaveMap(rack, klv)

	heap := RunShadow(board, rack, lm, cfg, 0, 0)
	gen := NewMoveGen(board, kwg, cfg, rack, lm, 0, 0)
	for {
		a, ok := heap.PopBest()
		if !ok {
			break
		}
		beforeBest := gen.Best.Equity
		gen.GenerateFromAnchor(a)
		if gen.Best.Equity != beforeBest && gen.Best.Equity != EquityInitial {
			require.GreaterOrEqual(t, int(a.Bound), int(gen.Best.Equity),
				"an anchor's admissible bound must not undersell the best move it actually produces")
		}
	}
}
