// movegen.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Move Generator (§4.G): a single-threaded
// recursive GADDAG traversal from one anchor, enumerating every legal
// play through it and keeping only the single best by equity under
// the 8-level deterministic tie-break comparator (Move.Better).
// Grounded on original_source/src/movegen.c's recursive_gen/go_on
// (the Gordon/Appel GADDAG algorithm), translated from the teacher's
// goroutine-parallel Axis/ExtendRightNavigator DAWG generator (deleted,
// see DESIGN.md) to this engine's single-threaded GADDAG walk.

package skrafl

// GenStats is a per-call record of generation effort, replacing the
// source's process-wide debug counters (§9 Design Notes permits a
// per-call statistics record in place of globals).
type GenStats struct {
	AnchorsProcessed int
	AnchorsCutOff    int
	MovesConsidered  int
}

// MoveGen holds the state of one Move Generator run across all anchors
// processed for a single generate-moves call. Everything mutated
// during a single anchor's recursion is restored before moving on to
// the next anchor: the board is never mutated (§4.I).
type MoveGen struct {
	b   *Board
	kwg *Kwg
	cfg Config

	rack *Rack
	lm   *LeaveMap

	rackSizeAtStart int
	bagCount        int
	oppRackScore    int
	openingMove     bool

	// Per-anchor scan state.
	line          int // row for a horizontal anchor, col for a vertical one
	horizontal    bool
	anchorRow     int
	anchorCol     int
	lastAnchorCol int

	strip       [BoardSize]byte
	tilesPlayed int

	mainWordScore  int
	crossScore     int
	wordMultiplier int

	Best  *Move
	Stats GenStats
}

// NewMoveGen prepares a Move Generator for one generate-moves call.
func NewMoveGen(b *Board, kwg *Kwg, cfg Config, rack *Rack, lm *LeaveMap, bagCount, oppRackScore int) *MoveGen {
	return &MoveGen{
		b: b, kwg: kwg, cfg: cfg, rack: rack, lm: lm,
		rackSizeAtStart: rack.Total,
		bagCount:        bagCount,
		oppRackScore:    oppRackScore,
		openingMove:     b.NumTiles == 0,
		Best:            &Move{Equity: EquityInitial},
	}
}

// squareAt maps a position along the current line to board coordinates.
func (g *MoveGen) squareAt(pos int) (row, col int) {
	if g.horizontal {
		return g.line, pos
	}
	return pos, g.line
}

func (g *MoveGen) isEmptyAt(pos int) bool {
	if pos < 0 || pos >= BoardSize {
		return true
	}
	r, c := g.squareAt(pos)
	return g.b.IsEmpty(r, c)
}

// takeTile and restoreTile keep the rack and leave map's current index
// in lock-step as tiles are placed and backtracked (§4.G: the
// restored per-branch state includes "rack counts; leave-map
// current-index").
func (g *MoveGen) takeTile(tile byte) {
	g.rack.Remove(tile)
	g.lm.TakeLetter(tile, g.rack.Counts[tile])
}

func (g *MoveGen) restoreTile(tile byte) {
	g.lm.AddLetter(tile, g.rack.Counts[tile])
	g.rack.Add(tile)
}

// GenerateFromAnchor runs the recursive GADDAG walk from a single
// anchor (§4.G), updating g.Best with any play found that improves on
// the current best-so-far.
func (g *MoveGen) GenerateFromAnchor(a Anchor) {
	g.horizontal = a.Horizontal
	g.anchorRow, g.anchorCol = a.Row, a.Col
	g.lastAnchorCol = a.LastAnchorCol
	if a.Horizontal {
		g.line = a.Row
	} else {
		g.line = a.Col
	}
	g.tilesPlayed = 0
	g.mainWordScore = 0
	g.crossScore = 0
	g.wordMultiplier = 1
	g.Stats.AnchorsProcessed++

	g.extend(g.anchorCol, g.kwg.GaddagRoot, g.anchorCol, g.anchorCol)
}

// extend is extend(col, node) of §4.G: try every letter the current
// square admits, recursing via go-on.
func (g *MoveGen) extend(pos int, node uint32, leftstrip, rightstrip int) {
	if pos < 0 || pos >= BoardSize {
		return
	}
	row, col := g.squareAt(pos)
	crossSet := g.b.CrossSet(row, col, g.horizontal)
	if g.tilesPlayed == 0 && pos == g.anchorCol {
		crossSet &= g.b.LeftExtensionSet(g.anchorRow, g.anchorCol, g.horizontal)
	}
	if g.tilesPlayed == 0 && pos == g.anchorCol+1 {
		crossSet &= g.b.RightExtensionSet(g.anchorRow, g.anchorCol, g.horizontal)
	}

	if !g.b.IsEmpty(row, col) {
		tile := g.b.Tile(row, col) &^ BlankFlag
		rec, found := g.kwg.scanArc(node, tile)
		if !found {
			return
		}
		g.goOn(pos, tile, nodeArcTarget(rec), nodeAccepts(rec), leftstrip, rightstrip)
		return
	}
	if g.rack.Total == 0 {
		return
	}
	idx := node
	for int(idx) < len(g.kwg.Nodes) {
		rec := g.kwg.Nodes[idx]
		tile := nodeTile(rec)
		if tile != Separator && crossSet&(uint32(1)<<tile) != 0 {
			nextNode := nodeArcTarget(rec)
			accepts := nodeAccepts(rec)
			if g.rack.HasTile(tile) {
				g.takeTile(tile)
				g.tilesPlayed++
				g.goOn(pos, tile, nextNode, accepts, leftstrip, rightstrip)
				g.tilesPlayed--
				g.restoreTile(tile)
			}
			if g.rack.HasBlank() {
				g.takeTile(Separator)
				g.tilesPlayed++
				g.goOn(pos, tile|BlankFlag, nextNode, accepts, leftstrip, rightstrip)
				g.tilesPlayed--
				g.restoreTile(Separator)
			}
		}
		if nodeEndOfSibs(rec) {
			break
		}
		idx++
	}
}

// goOn is go-on(col, placed-letter, next-node, accepts) of §4.G.
func (g *MoveGen) goOn(pos int, placed byte, nextNode uint32, accepts bool, leftstrip, rightstrip int) {
	row, col := g.squareAt(pos)
	letterMult := 1
	wordMult := 1
	fresh := g.b.IsEmpty(row, col)
	if fresh {
		g.strip[pos] = placed
		letterMult = g.b.LetterMultiplier(row, col)
		wordMult = g.b.WordMultiplier(row, col)
	} else {
		g.strip[pos] = PlayedThroughMarker
	}

	prevWordMult := g.wordMultiplier
	prevMainScore := g.mainWordScore
	prevCrossScore := g.crossScore

	g.wordMultiplier *= wordMult
	rawLetter := placed &^ BlankFlag
	tileScore := TileScore(rawLetter)
	if placed&BlankFlag != 0 {
		tileScore = 0
	}
	g.mainWordScore += tileScore * letterMult

	if fresh {
		crossScore := g.b.CrossScore(row, col, g.horizontal)
		if crossScore >= 0 {
			g.crossScore += (tileScore*letterMult + crossScore) * wordMult
		}
	}

	if pos <= g.anchorCol {
		leftstrip = pos
		noLetterLeft := pos == 0 || g.isEmptyAt(pos-1)
		noLetterRightOfAnchor := g.anchorCol == BoardSize-1 || g.isEmptyAt(g.anchorCol+1)
		if accepts && noLetterLeft && noLetterRightOfAnchor && g.tilesPlayed > 0 {
			g.recordMove(leftstrip, rightstrip)
		}
		if nextNode != 0 && pos > 0 && pos-1 != g.lastAnchorCol {
			g.extend(pos-1, nextNode, leftstrip, rightstrip)
		}
		if nextNode != 0 && noLetterLeft && g.anchorCol < BoardSize-1 {
			if sepTarget, ok := g.kwg.FollowArc(nextNode, Separator); ok {
				g.extend(g.anchorCol+1, sepTarget, leftstrip, rightstrip)
			}
		}
	} else {
		rightstrip = pos
		noLetterRight := pos == BoardSize-1 || g.isEmptyAt(pos+1)
		if accepts && noLetterRight && g.tilesPlayed > 0 {
			g.recordMove(leftstrip, rightstrip)
		}
		if nextNode != 0 && pos < BoardSize-1 {
			g.extend(pos+1, nextNode, leftstrip, rightstrip)
		}
	}

	g.wordMultiplier = prevWordMult
	g.mainWordScore = prevMainScore
	g.crossScore = prevCrossScore
}

// recordMove builds a candidate Move from the current strip window and
// keeps it only if it replaces g.Best under the §4.G comparator.
func (g *MoveGen) recordMove(leftstrip, rightstrip int) {
	g.Stats.MovesConsidered++
	score := g.mainWordScore*g.wordMultiplier + g.crossScore
	if g.tilesPlayed >= g.rackSizeAtStart && g.rackSizeAtStart > 0 {
		score += EquityToPoints(g.cfg.BingoBonus)
	}
	equity := PointsToEquity(score)

	startRow, startCol := g.squareAt(leftstrip)
	stripLen := rightstrip - leftstrip + 1
	strip := append([]byte(nil), g.strip[leftstrip:leftstrip+stripLen]...)

	if g.openingMove {
		equity += g.openingPenalty(strip, startRow, startCol)
	}
	if g.bagCount == 0 {
		if g.rack.Total > 0 {
			equity -= 2*PointsToEquity(remainingRackScore(g.rack)) + g.cfg.NonOutplayConstantPenalty
		} else {
			equity += 2 * PointsToEquity(g.oppRackScore)
		}
	} else {
		equity += g.lm.Current()
	}

	m := &Move{
		Kind:       MoveTilePlacement,
		Row:        startRow,
		Col:        startCol,
		Horizontal: g.horizontal,
		FreshTiles: g.tilesPlayed,
		Strip:      strip,
		Score:      PointsToEquity(score),
		Equity:     equity,
	}
	if m.Better(g.Best) {
		g.Best = m
	}
}

// openingPenalty applies the per-vowel hotspot penalty (§6, §9) on the
// very first move of the game.
func (g *MoveGen) openingPenalty(strip []byte, startRow, startCol int) Equity {
	var penalty Equity
	r, c := startRow, startCol
	dr, dc := lineStep(g.horizontal)
	for _, t := range strip {
		if t != PlayedThroughMarker && isVowel(t&^BlankFlag) && g.b.OpeningHotspot(r, c) {
			penalty += g.cfg.OpeningHotspotPenalty
		}
		r += dr
		c += dc
	}
	return penalty
}

func isVowel(tile byte) bool {
	switch tile {
	case 1, 5, 9, 15, 21: // A E I O U
		return true
	}
	return false
}

func remainingRackScore(rack *Rack) int {
	sum := 0
	for t := 1; t < 27; t++ {
		sum += rack.Counts[t] * TileScore(byte(t))
	}
	return sum
}
