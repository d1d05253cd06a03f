// crossset.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Cross-Set Updater (§4.D): recomputing the
// cross-set, cross-score and extension sets of squares whose inputs
// changed after a move is applied.

package skrafl

// RebuildAllCrossSets recomputes cross-data for every empty square on
// the board from scratch. Used once after loading a board from
// serialized state.
func RebuildAllCrossSets(b *Board, kwg *Kwg) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.IsEmpty(r, c) {
				recomputeSquare(b, kwg, r, c)
			}
		}
	}
}

// recomputeSquare derives both directions' cross-set, cross-score and
// extension sets for the empty square at (row, col) from its current
// board neighbors.
func recomputeSquare(b *Board, kwg *Kwg, row, col int) {
	// Horizontal direction: cross-data comes from the vertical
	// (perpendicular) neighbors; extension sets come from the
	// horizontal (same-line) run.
	vPrefix := reverseBytes(collectRun(b, row, col, -1, 0))
	vSuffix := collectRun(b, row, col, 1, 0)
	hLeft := reverseBytes(collectRun(b, row, col, 0, -1))
	hRight := collectRun(b, row, col, 0, 1)

	hCrossSet := kwg.CrossSet(stripBlanks(vPrefix), stripBlanks(vSuffix))
	hCrossScore := runScore(vPrefix) + runScore(vSuffix)
	if len(vPrefix) == 0 && len(vSuffix) == 0 {
		hCrossScore = -1
	}
	hRightExt := kwg.RightExtensionSet(stripBlanks(hLeft))
	hLeftExt := kwg.LeftExtensionSet(stripBlanks(hRight))
	b.SetCrossData(row, col, true, hCrossSet, hCrossScore, hLeftExt, hRightExt)

	// Vertical direction: cross-data comes from the horizontal
	// neighbors; extension sets come from the vertical run.
	vCrossSet := kwg.CrossSet(stripBlanks(hLeft), stripBlanks(hRight))
	vCrossScore := runScore(hLeft) + runScore(hRight)
	if len(hLeft) == 0 && len(hRight) == 0 {
		vCrossScore = -1
	}
	vRightExt := kwg.RightExtensionSet(stripBlanks(vPrefix))
	vLeftExt := kwg.LeftExtensionSet(stripBlanks(vSuffix))
	b.SetCrossData(row, col, false, vCrossSet, vCrossScore, vLeftExt, vRightExt)
}

// stripBlanks masks off the blanked-tile flag so a run of board bytes
// can be fed to the word graph, which only knows tile values 0..26.
func stripBlanks(run []byte) []byte {
	out := make([]byte, len(run))
	for i, t := range run {
		out[i] = t &^ BlankFlag
	}
	return out
}

// collectRun walks from (row+dr, col+dc) in steps of (dr, dc) while the
// board holds a tile, returning the tiles nearest-first.
func collectRun(b *Board, row, col, dr, dc int) []byte {
	var run []byte
	r, c := row+dr, col+dc
	for InBounds(r, c) && !b.IsEmpty(r, c) {
		run = append(run, b.Tile(r, c))
		r += dr
		c += dc
	}
	return run
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

func runScore(run []byte) int {
	var sum int
	for _, t := range run {
		if t&BlankFlag != 0 {
			// A blank standing in for a letter always scores 0.
			continue
		}
		sum += TileScore(t)
	}
	return sum
}

// UpdateForMove recomputes cross-data for every empty square that could
// have been affected by applying move to the board: from each position
// the move touched, it walks in each of the four directions across any
// run of tiles and recomputes the first empty square it reaches. This is
// a safe superset of the minimal fringe described in §4.D, so it
// satisfies the same idempotence-with-rebuild-all property (§8 property
// 3) without tracking the exact minimal square list.
func UpdateForMove(b *Board, kwg *Kwg, m *Move) {
	if m.Kind != MoveTilePlacement {
		return
	}
	touched := make(map[[2]int]bool)
	dr, dc := 0, 1
	if !m.Horizontal {
		dr, dc = 1, 0
	}
	r, c := m.Row, m.Col
	for range m.Strip {
		touched[[2]int{r, c}] = true
		r += dr
		c += dc
	}
	seen := make(map[[2]int]bool)
	for pos := range touched {
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := pos[0]+d[0], pos[1]+d[1]
			for InBounds(nr, nc) && !b.IsEmpty(nr, nc) {
				nr += d[0]
				nc += d[1]
			}
			if InBounds(nr, nc) && !seen[[2]int{nr, nc}] {
				seen[[2]int{nr, nc}] = true
				recomputeSquare(b, kwg, nr, nc)
			}
		}
	}
}

// ApplyMove places a tile-placement move's fresh tiles on the board and
// updates the affected cross-data (§4.C, §4.D).
func ApplyMove(b *Board, kwg *Kwg, m *Move) {
	if m.Kind != MoveTilePlacement {
		return
	}
	dr, dc := 0, 1
	if !m.Horizontal {
		dr, dc = 1, 0
	}
	r, c := m.Row, m.Col
	for _, t := range m.Strip {
		if t != PlayedThroughMarker {
			b.PlaceTile(r, c, t)
		}
		r += dr
		c += dc
	}
	UpdateForMove(b, kwg, m)
}
