// shadow.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Shadow Evaluator (§4.F): a cheap pre-pass
// that computes, for every anchor and line direction, an admissible
// upper bound on the equity any play through it could reach. No
// example source implements this component (it is absent from the
// retrieved original sources' movegen.c, which only scans anchors
// directly); the recurrence below follows spec.md §4.F directly.
// Grounded on anchor.h's bound-recording shape (Anchor/AnchorHeap) for
// the heap this evaluator populates.

package skrafl

import "math/bits"

// maxWordMultiplier bounds how much any single still-unrestricted
// square could multiply a word by; used to keep the unrestricted-
// position pairing sum (§4.F "Recording a shadow bound") a safe
// over-estimate without tracking the exact running word-multiplier
// each such square would eventually see.
const maxWordMultiplier = 3

// EnumerateAnchors walks the board once and returns every anchor
// square in both line directions, each carrying the "last anchor
// column" that bounds leftward travel during generation (§4.G). On an
// empty board only the horizontal direction is produced (vertical is
// a reflection, per §4.F).
func EnumerateAnchors(b *Board) []Anchor {
	var anchors []Anchor
	opening := b.NumTiles == 0

	for row := 0; row < BoardSize; row++ {
		lastAnchorCol := -1
		for col := 0; col < BoardSize; col++ {
			if !b.IsAnchor(row, col) {
				continue
			}
			anchors = append(anchors, Anchor{
				Row: row, Col: col, Horizontal: true,
				LastAnchorCol: lastAnchorCol,
				ScanOrder:     HorizontalScanOrder(row, col),
			})
			lastAnchorCol = col
		}
	}
	if opening {
		return anchors
	}
	for col := 0; col < BoardSize; col++ {
		lastAnchorCol := -1
		for row := 0; row < BoardSize; row++ {
			if !b.IsAnchor(row, col) {
				continue
			}
			anchors = append(anchors, Anchor{
				Row: row, Col: col, Horizontal: false,
				LastAnchorCol: lastAnchorCol,
				ScanOrder:     VerticalScanOrder(row, col),
			})
			lastAnchorCol = row
		}
	}
	return anchors
}

// shadowScratch is the per-anchor working state of §4.F, entirely
// discarded once an anchor's bound is computed.
type shadowScratch struct {
	b   *Board
	rack *Rack

	row, col   int
	horizontal bool

	mainRestrictedScore int
	perpAdditionalScore int
	wordMultiplier      int
	tilesPlayed         int

	// descTileScores holds the score of every rack tile not yet
	// committed to a restricted position, sorted descending.
	descTileScores []int
	// descLetterMults holds, for each still-unrestricted position
	// visited, an admissible per-tile multiplier bound, sorted
	// descending.
	descLetterMults []int

	// leaveBoundFn reads the turn's Leave Map's per-size maximum
	// (§4.E), assigned once by shadowBoundForAnchor.
	leaveBoundFn func(remaining int) Equity

	best Equity
}

// squareAt maps a position along the line back to board coordinates.
func (s *shadowScratch) squareAt(pos int) (row, col int) {
	if s.horizontal {
		return s.row, pos
	}
	return pos, s.row
}

func removeDescending(vals []int, v int) []int {
	for i, x := range vals {
		if x == v {
			return append(vals[:i], vals[i+1:]...)
		}
	}
	return vals
}

func insertDescending(vals []int, v int) []int {
	i := 0
	for i < len(vals) && vals[i] >= v {
		i++
	}
	vals = append(vals, 0)
	copy(vals[i+1:], vals[i:])
	vals[i] = v
	return vals
}

// recordBound computes and remembers the current admissible upper
// bound, per "Recording a shadow bound" in §4.F.
func (s *shadowScratch) recordBound(cfg Config, rackSizeAtStart, bagCount, oppRackScore int) {
	n := len(s.descLetterMults)
	if len(s.descTileScores) < n {
		n = len(s.descTileScores)
	}
	pairSum := 0
	for i := 0; i < n; i++ {
		pairSum += s.descTileScores[i] * s.descLetterMults[i]
	}
	boundScore := pairSum + s.mainRestrictedScore*s.wordMultiplier + s.perpAdditionalScore
	if s.tilesPlayed >= rackSizeAtStart && rackSizeAtStart > 0 {
		boundScore += EquityToPoints(cfg.BingoBonus)
	}

	bound := PointsToEquity(boundScore)
	if bagCount > 0 {
		remaining := rackSizeAtStart - s.tilesPlayed
		bound += s.leaveBoundFn(remaining)
	} else {
		if s.rack.Total-s.tilesPlayed > 0 {
			bound -= 2*PointsToEquity(lowestRemainingScore(s.rack, s.tilesPlayed)) + cfg.NonOutplayConstantPenalty
		} else {
			bound += 2 * PointsToEquity(oppRackScore)
		}
	}
	if bound > s.best {
		s.best = bound
	}
}

// lowestRemainingScore sums the lowest-scoring rack.Total-tilesPlayed
// tiles left on the rack, used for the endgame non-outplay penalty.
func lowestRemainingScore(rack *Rack, tilesPlayed int) int {
	scores := make([]int, 0, rack.Total)
	for t := 0; t < 27; t++ {
		for i := 0; i < rack.Counts[t]; i++ {
			scores = append(scores, TileScore(byte(t)))
		}
	}
	// Insertion sort ascending: RackSize is tiny.
	for i := 1; i < len(scores); i++ {
		v := scores[i]
		j := i - 1
		for j >= 0 && scores[j] > v {
			scores[j+1] = scores[j]
			j--
		}
		scores[j+1] = v
	}
	sum := 0
	for i := 0; i < len(scores)-tilesPlayed; i++ {
		sum += scores[i]
	}
	return sum
}

// restrictionSet returns the legal-tile bitmask at (row,col) from the
// intersection of crossSet with the rack's available tiles, widened
// to the full cross-set when a blank is on the rack.
func restrictionSet(crossSet uint32, rack *Rack) uint32 {
	if rack.HasBlank() {
		return crossSet
	}
	return crossSet & rack.AsSet()
}

// shadowBoundForAnchor runs the §4.F recurrence for a single anchor
// and line direction, returning the admissible equity bound. ok is
// false if no tile can legally start the play at this anchor, in
// which case the anchor is not inserted into the heap.
func shadowBoundForAnchor(b *Board, rack *Rack, lm *LeaveMap, cfg Config,
	row, col int, horizontal bool, rackSizeAtStart, bagCount, oppRackScore int) (Equity, bool) {

	s := &shadowScratch{b: b, rack: rack, row: row, col: col, horizontal: horizontal, best: EquityInitial}
	s.leaveBoundFn = func(remaining int) Equity { return lm.MaxLeaveForSize(remaining) }

	// descTileScores starts with every rack tile's score available for
	// pairing; entries are removed as positions become restricted.
	for t := 0; t < 27; t++ {
		for i := 0; i < rack.Counts[t]; i++ {
			s.descTileScores = insertDescending(s.descTileScores, TileScore(byte(t)))
		}
	}

	anchorOccupied := !b.IsEmpty(row, col)
	if anchorOccupied {
		// Not produced by EnumerateAnchors; defensive no-op.
		return 0, false
	}

	crossSet := b.CrossSet(row, col, horizontal)
	restrict := restrictionSet(crossSet, rack)
	if restrict == 0 {
		return 0, false
	}
	s.wordMultiplier = b.WordMultiplier(row, col)
	letterMult := b.LetterMultiplier(row, col)
	crossScore := b.CrossScore(row, col, horizontal)

	if bits.OnesCount32(restrict) == 1 {
		tile := byte(bits.TrailingZeros32(restrict))
		score := TileScore(tile)
		s.mainRestrictedScore += score * letterMult
		s.tilesPlayed++
		s.descTileScores = removeDescending(s.descTileScores, score)
		if crossScore >= 0 {
			s.perpAdditionalScore += (score*letterMult + crossScore) * s.wordMultiplier
		}
	} else {
		s.descLetterMults = insertDescending(s.descLetterMults, letterMult*maxWordMultiplier)
		if crossScore >= 0 && len(s.descTileScores) > 0 {
			s.perpAdditionalScore += (s.descTileScores[0]*letterMult + crossScore) * s.wordMultiplier
		}
	}

	// Scan outward for immediately adjacent played-through letters.
	dr, dc := lineStep(horizontal)
	for _, sign := range [2]int{-1, 1} {
		r, c := row+sign*dr, col+sign*dc
		for InBounds(r, c) && !b.IsEmpty(r, c) {
			s.mainRestrictedScore += TileScore(b.Tile(r, c) &^ BlankFlag)
			r += sign * dr
			c += sign * dc
		}
	}
	s.recordBound(cfg, rackSizeAtStart, bagCount, oppRackScore)

	s.extendRight(b, rack, cfg, rackSizeAtStart, bagCount, oppRackScore)
	s.extendLeft(b, rack, cfg, rackSizeAtStart, bagCount, oppRackScore)

	return s.best, true
}

func lineStep(horizontal bool) (dr, dc int) {
	if horizontal {
		return 0, 1
	}
	return 1, 0
}

// extendRight implements §4.F step 2.
func (s *shadowScratch) extendRight(b *Board, rack *Rack, cfg Config, rackSizeAtStart, bagCount, oppRackScore int) {
	dr, dc := lineStep(s.horizontal)
	r, c := s.row+dr, s.col+dc
	first := true
	for InBounds(r, c) {
		if !b.IsEmpty(r, c) {
			s.mainRestrictedScore += TileScore(b.Tile(r, c) &^ BlankFlag)
			r += dr
			c += dc
			first = false
			continue
		}
		if rack.Total-s.tilesPlayed == 0 {
			for InBounds(r, c) && !b.IsEmpty(r, c) {
				s.mainRestrictedScore += TileScore(b.Tile(r, c) &^ BlankFlag)
				r += dr
				c += dc
			}
			s.recordBound(cfg, rackSizeAtStart, bagCount, oppRackScore)
			return
		}
		crossSet := b.CrossSet(r, c, s.horizontal)
		if first {
			crossSet &= b.RightExtensionSet(s.row, s.col, s.horizontal)
		}
		restrict := restrictionSet(crossSet, rack)
		if restrict == 0 {
			return
		}
		wordMult := b.WordMultiplier(r, c)
		letterMult := b.LetterMultiplier(r, c)
		crossScore := b.CrossScore(r, c, s.horizontal)
		s.wordMultiplier *= wordMult

		if bits.OnesCount32(restrict) == 1 {
			tile := byte(bits.TrailingZeros32(restrict))
			score := TileScore(tile)
			s.mainRestrictedScore += score * letterMult
			s.tilesPlayed++
			s.descTileScores = removeDescending(s.descTileScores, score)
			if crossScore >= 0 {
				s.perpAdditionalScore += (score*letterMult + crossScore) * wordMult
			}
		} else {
			s.descLetterMults = insertDescending(s.descLetterMults, letterMult*maxWordMultiplier)
			if crossScore >= 0 && len(s.descTileScores) > 0 {
				s.perpAdditionalScore += (s.descTileScores[0]*letterMult + crossScore) * wordMult
			}
		}
		s.recordBound(cfg, rackSizeAtStart, bagCount, oppRackScore)
		r += dr
		c += dc
		first = false
	}
}

// extendLeft implements §4.F step 3: symmetric to extendRight, but the
// anchor's left-extension constraint only binds the square immediately
// left of the anchor, and each step first accounts for any trailing
// played-through run before placing a fresh tile.
func (s *shadowScratch) extendLeft(b *Board, rack *Rack, cfg Config, rackSizeAtStart, bagCount, oppRackScore int) {
	dr, dc := lineStep(s.horizontal)
	r, c := s.row-dr, s.col-dc
	first := true
	for InBounds(r, c) {
		if !b.IsEmpty(r, c) {
			s.mainRestrictedScore += TileScore(b.Tile(r, c) &^ BlankFlag)
			r -= dr
			c -= dc
			continue
		}
		if rack.Total-s.tilesPlayed == 0 {
			return
		}
		crossSet := b.CrossSet(r, c, s.horizontal)
		if first {
			crossSet &= b.LeftExtensionSet(s.row, s.col, s.horizontal)
		}
		restrict := restrictionSet(crossSet, rack)
		if restrict == 0 {
			return
		}
		wordMult := b.WordMultiplier(r, c)
		letterMult := b.LetterMultiplier(r, c)
		crossScore := b.CrossScore(r, c, s.horizontal)
		s.wordMultiplier *= wordMult

		if bits.OnesCount32(restrict) == 1 {
			tile := byte(bits.TrailingZeros32(restrict))
			score := TileScore(tile)
			s.mainRestrictedScore += score * letterMult
			s.tilesPlayed++
			s.descTileScores = removeDescending(s.descTileScores, score)
			if crossScore >= 0 {
				s.perpAdditionalScore += (score*letterMult + crossScore) * wordMult
			}
		} else {
			s.descLetterMults = insertDescending(s.descLetterMults, letterMult*maxWordMultiplier)
			if crossScore >= 0 && len(s.descTileScores) > 0 {
				s.perpAdditionalScore += (s.descTileScores[0]*letterMult + crossScore) * wordMult
			}
		}
		s.recordBound(cfg, rackSizeAtStart, bagCount, oppRackScore)
		r -= dr
		c -= dc
		first = false
	}
}

// RunShadow computes bounds for every anchor on the board (§4.F) and
// returns them as a ready-to-pop max-heap (§4.F tail). rack is read
// only; the Shadow Evaluator never mutates the caller's rack or leave
// map (it rebuilds its own scratch state per anchor).
func RunShadow(b *Board, rack *Rack, lm *LeaveMap, cfg Config, bagCount, oppRackScore int) *AnchorHeap {
	candidates := EnumerateAnchors(b)
	rackSizeAtStart := rack.Total
	var kept []Anchor
	for _, a := range candidates {
		bound, ok := shadowBoundForAnchor(b, rack, lm, cfg, a.Row, a.Col, a.Horizontal, rackSizeAtStart, bagCount, oppRackScore)
		if !ok {
			continue
		}
		a.Bound = bound
		kept = append(kept, a)
	}
	return NewAnchorHeap(kept)
}
