// crossset_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// Exercises §8 Testable Property 3: RebuildAllCrossSets run over a
// board's final tile layout must agree, square for square, with
// UpdateForMove/ApplyMove's incremental fringe recompute reaching that
// same layout one move at a time.

package skrafl

import "testing"

func placeWord(b *Board, row, col int, horizontal bool, word string) {
	dr, dc := 0, 1
	if !horizontal {
		dr, dc = 1, 0
	}
	r, c := row, col
	for _, t := range TilesForString(word) {
		b.PlaceTile(r, c, t)
		r += dr
		c += dc
	}
}

// TestRebuildAgreesWithIncrementalUpdate builds a board with two
// intersecting, adjacent tile runs ("CAR" placed first, then "CAT"
// played through its 'C') and checks that every square's cross-set,
// cross-score and extension sets come out identical whether reached by
// ApplyMove's incremental fringe recompute or by a full
// RebuildAllCrossSets call over the same final layout.
func TestRebuildAgreesWithIncrementalUpdate(t *testing.T) {
	kwg := newCatAndCarKwg()
	tA, _ := TileForRune('A')
	tT, _ := TileForRune('T')

	// Board A: the baseline "CAR" is placed, then the "CAT" move is
	// applied via ApplyMove, exercising UpdateForMove's fringe recompute.
	boardA := NewBoard()
	placeWord(boardA, 7, 6, false, "CAR")
	RebuildAllCrossSets(boardA, kwg)
	catMove := &Move{
		Kind:       MoveTilePlacement,
		Row:        7,
		Col:        6,
		Horizontal: true,
		FreshTiles: 2,
		Strip:      []byte{PlayedThroughMarker, tA, tT},
	}
	ApplyMove(boardA, kwg, catMove)

	// Board B: the same final tile layout, reached by placing every
	// tile directly and then rebuilding every square's cross-data from
	// scratch.
	boardB := NewBoard()
	placeWord(boardB, 7, 6, false, "CAR")
	placeWord(boardB, 7, 7, true, "AT")
	RebuildAllCrossSets(boardB, kwg)

	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			for _, horizontal := range []bool{true, false} {
				if got, want := boardA.CrossSet(r, c, horizontal), boardB.CrossSet(r, c, horizontal); got != want {
					t.Errorf("CrossSet(%d,%d,horizontal=%v): incremental = %#x, rebuild = %#x", r, c, horizontal, got, want)
				}
				if got, want := boardA.CrossScore(r, c, horizontal), boardB.CrossScore(r, c, horizontal); got != want {
					t.Errorf("CrossScore(%d,%d,horizontal=%v): incremental = %d, rebuild = %d", r, c, horizontal, got, want)
				}
				if got, want := boardA.LeftExtensionSet(r, c, horizontal), boardB.LeftExtensionSet(r, c, horizontal); got != want {
					t.Errorf("LeftExtensionSet(%d,%d,horizontal=%v): incremental = %#x, rebuild = %#x", r, c, horizontal, got, want)
				}
				if got, want := boardA.RightExtensionSet(r, c, horizontal), boardB.RightExtensionSet(r, c, horizontal); got != want {
					t.Errorf("RightExtensionSet(%d,%d,horizontal=%v): incremental = %#x, rebuild = %#x", r, c, horizontal, got, want)
				}
			}
		}
	}
	if boardA.NumTiles != boardB.NumTiles {
		t.Errorf("NumTiles mismatch: incremental = %d, rebuild = %d", boardA.NumTiles, boardB.NumTiles)
	}
}
