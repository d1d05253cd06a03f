// leavemap.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Leave Map (§4.E): a precomputed table of
// leave values for every subset of the turn's starting rack, with O(1)
// update as tiles are consumed or restored during the recursive search.

package skrafl

// LeaveMapSize is 2^RackSize: the number of rack subsets a Leave Map
// can index.
const LeaveMapSize = 1 << RackSize

// LeaveMap gives O(1) access to the leave value of the complement of
// whatever tiles have been taken off the rack so far.
type LeaveMap struct {
	values     [LeaveMapSize]Equity
	baseIndex  [27]int // first bit index assigned to each letter
	bitLetter  [RackSize]byte
	current    int
	rackSize   int
	maxForSize [RackSize + 1]Equity // best observed leave, per leave size
}

// NewLeaveMap precomputes the leave value of every subset of rack using
// klv, and the per-size maximum used by the Shadow Evaluator's
// admissible bound.
func NewLeaveMap(rack *Rack, klv *Klv) *LeaveMap {
	lm := &LeaveMap{rackSize: rack.Total}
	for i := range lm.maxForSize {
		lm.maxForSize[i] = EquityMin
	}
	if rack.Total == 0 {
		return lm
	}

	// Assign each tile on the rack a contiguous run of bit indices,
	// grouped by letter (§4.E step 1).
	bit := 0
	tiles := make([]byte, 0, rack.Total)
	for t := 0; t < 27; t++ {
		for i := 0; i < rack.Counts[t]; i++ {
			lm.bitLetter[bit] = byte(t)
			tiles = append(tiles, byte(t))
			bit++
		}
	}
	for t := 0; t < 27; t++ {
		if rack.Counts[t] > 0 {
			// baseIndex[t] is the index of this letter's first bit,
			// found by scanning bitLetter.
			for i, lt := range lm.bitLetter[:rack.Total] {
				if lt == byte(t) {
					lm.baseIndex[t] = i
					break
				}
			}
		}
	}

	n := rack.Total
	for mask := 0; mask < (1 << n); mask++ {
		// Bit i set means tile i has been taken off the rack; the
		// leave is the complementary subset of tiles still present.
		var leaveTiles []byte
		size := 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) == 0 {
				leaveTiles = append(leaveTiles, tiles[i])
				size++
			}
		}
		v := klv.LeaveValue(leaveTiles)
		lm.values[mask] = v
		if v > lm.maxForSize[size] {
			lm.maxForSize[size] = v
		}
	}
	// current index starts at 0: no tiles played yet, full rack kept.
	lm.current = 0
	return lm
}

// occurrenceBit returns the bit index of the occurrence-th (0-based,
// counted from the start of this letter's run) occurrence of letter
// still on the rack.
func (lm *LeaveMap) occurrenceBit(letter byte, occurrence int) int {
	return lm.baseIndex[letter] + occurrence
}

// TakeLetter sets the bit for one occurrence of letter, given how many
// of that letter remain on the rack after this one is removed. Setting
// the bit excludes that occurrence from the complementary leave subset.
func (lm *LeaveMap) TakeLetter(letter byte, countAfter int) {
	bit := lm.occurrenceBit(letter, countAfter)
	lm.current |= 1 << uint(bit)
}

// AddLetter restores the bit for one occurrence of letter, given how
// many of that letter were on the rack before it is added back.
func (lm *LeaveMap) AddLetter(letter byte, countBefore int) {
	bit := lm.occurrenceBit(letter, countBefore)
	lm.current &^= 1 << uint(bit)
}

// Current returns the leave value for the rack's present state.
func (lm *LeaveMap) Current() Equity {
	return lm.values[lm.current]
}

// MaxLeaveForSize returns the best observed leave value among all
// subsets of the given size — the admissible per-size bound used by
// the Shadow Evaluator.
func (lm *LeaveMap) MaxLeaveForSize(size int) Equity {
	if size < 0 || size > lm.rackSize {
		return 0
	}
	return lm.maxForSize[size]
}
