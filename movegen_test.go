// movegen_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// Regression coverage for extend()'s anchor-adjacent LeftExtensionSet
// masking: the mask derived from the anchor's own square must restrict
// only the anchor square itself, not every square the leftward
// recursion later visits.

package skrafl

import "testing"

// newScatBscatGaddagKwg builds a hand-packed GADDAG supporting two
// leftward extensions of an existing "CAT" run: placing 'S' alone forms
// "SCAT", and placing 'S' then, one square further left, 'B' forms
// "BSCAT". The forward DAWG root is left empty (unused by the
// generation under test: the row-7 squares it visits have no
// perpendicular neighbor, so their cross-set queries short-circuit to
// AllLettersMask before touching it).
//
// Node layout:
//
//	2: 'S' (root, leave-direct-placement arc)          -> 4
//	3: 'T' (root, LeftExtensionSet query arc T-A-C)     -> 10
//	4: 'B' (child of 'S': one more step left)           -> 6
//	5: sep (child of 'S': switch right, validate "CAT") -> 7
//	6: sep (child of 'B': switch right, validate "CAT") -> 7
//	7: 'C' (validates the existing run rightward)       -> 8
//	8: 'A'                                               -> 9
//	9: 'T', accepts ("SCAT"/"BSCAT" complete)
//	10: 'A' (LeftExtensionSet query continues)           -> 11
//	11: 'C'                                              -> 12
//	12: 'S' (the computed front-hook set: only 'S' may front-hook "CAT")
func newScatBscatGaddagKwg() *Kwg {
	tS, _ := TileForRune('S')
	tB, _ := TileForRune('B')
	tC, _ := TileForRune('C')
	tA, _ := TileForRune('A')
	tT, _ := TileForRune('T')
	nodes := []uint32{
		packNode(0, false, false, 0),  // node 0: unused DAWG root header
		packNode(0, false, false, 2),  // node 1: GADDAG root header -> node 2
		packNode(tS, true, false, 4),  // node 2: 'S', accepts ("SCAT"), more root siblings follow
		packNode(tT, false, true, 10), // node 3: 'T', last root sibling
		packNode(tB, true, false, 6),  // node 4: 'B', accepts ("BSCAT"), sep sibling follows
		packNode(0, false, true, 7),   // node 5: separator, last sibling of node 4's list
		packNode(0, false, true, 7),   // node 6: separator, sole sibling of node 4's (B's) children
		packNode(tC, false, true, 8),  // node 7: 'C', validates the board's existing run
		packNode(tA, false, true, 9),  // node 8: 'A'
		packNode(tT, true, true, 0),   // node 9: 'T', accepts
		packNode(tA, false, true, 11), // node 10: 'A' (query path continues)
		packNode(tC, false, true, 12), // node 11: 'C'
		packNode(tS, false, true, 0),  // node 12: 'S' (the front-hook extension set)
	}
	return NewKwg(nodes)
}

// TestExtendLeftMaskAppliesOnceNotOnEveryLeftwardSquare plays "CAT"
// horizontally, then generates from the anchor immediately left of it
// with a rack holding both 'S' and 'B'. Only the anchor square itself
// ("S", forming "SCAT") may legally be restricted to the front-hook set
// computed from "CAT"; the next square over must stay
// open to 'B' ("BSCAT"). A mask reapplied at every leftward square (the
// bug) filters 'B' out there too, and the longer, higher-scoring play
// is never found.
func TestExtendLeftMaskAppliesOnceNotOnEveryLeftwardSquare(t *testing.T) {
	kwg := newScatBscatGaddagKwg()
	board := NewBoard()
	placeWord(board, 7, 6, true, "CAT")
	RebuildAllCrossSets(board, kwg)

	rack := NewRack("SB")
	klv := newNeverMatchingKlv()
	lm := NewLeaveMap(rack, klv)
	cfg := DefaultConfig()
	gen := NewMoveGen(board, kwg, cfg, rack, lm, 50, 0)

	anchor := Anchor{Row: 7, Col: 5, Horizontal: true, LastAnchorCol: -1}
	gen.GenerateFromAnchor(anchor)

	if gen.Best.Equity == EquityInitial {
		t.Fatalf("expected a play to be found through the anchor left of \"CAT\"")
	}
	if gen.Best.FreshTiles != 2 {
		t.Errorf("Best.FreshTiles = %d, want 2 (\"BSCAT\", using both S and B) — "+
			"the left-extension mask is leaking past the square adjacent to the anchor",
			gen.Best.FreshTiles)
	}
	if gen.Best.Col != 4 {
		t.Errorf("Best.Col = %d, want 4 (\"BSCAT\" starts two squares left of the anchor)", gen.Best.Col)
	}
	tB, _ := TileForRune('B')
	tS, _ := TileForRune('S')
	want := []byte{tB, tS, PlayedThroughMarker, PlayedThroughMarker, PlayedThroughMarker}
	if len(gen.Best.Strip) != len(want) {
		t.Fatalf("Best.Strip = %v, want length %d (\"BSCAT\")", gen.Best.Strip, len(want))
	}
	for i := range want {
		if gen.Best.Strip[i] != want[i] {
			t.Errorf("Best.Strip[%d] = %#x, want %#x", i, gen.Best.Strip[i], want[i])
		}
	}
}
