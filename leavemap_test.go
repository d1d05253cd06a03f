// leavemap_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

// newNeverMatchingKlv returns a Klv whose rank() never finds a match,
// so LeaveValue is always 0: enough to exercise LeaveMap's bit
// bookkeeping without needing a real .klv16 file.
func newNeverMatchingKlv() *Klv {
	nodes := []uint32{
		packNode(0, false, false, 2), // node 0: DAWG root header
		packNode(0, false, false, 0), // node 1: unused GADDAG header
		packNode(Separator, false, true, 0), // node 2: lone root sibling, matches nothing
	}
	return &Klv{Kwg: NewKwg(nodes)}
}

func TestLeaveMapCurrentMatchesTakeAndAdd(t *testing.T) {
	klv := newNeverMatchingKlv()
	rack := NewRack("cat")
	lm := NewLeaveMap(rack, klv)

	if lm.Current() != 0 {
		t.Errorf("a never-matching Klv should always yield a 0 leave value, got %v", lm.Current())
	}

	tC, _ := TileForRune('C')
	lm.TakeLetter(tC, 0)
	if lm.Current() != 0 {
		t.Errorf("Current() should stay 0 for this stub Klv regardless of which bits are set")
	}
	lm.AddLetter(tC, 0)
	if lm.Current() != lm.values[0] {
		t.Errorf("AddLetter should restore the full-rack index after TakeLetter")
	}
}

func TestLeaveMapEmptyRack(t *testing.T) {
	klv := newNeverMatchingKlv()
	rack := NewRack("")
	lm := NewLeaveMap(rack, klv)
	if lm.Current() != 0 {
		t.Errorf("an empty rack's leave value should be 0")
	}
	// rackSize is 0, so every size above it falls outside the table
	// and MaxLeaveForSize reports 0; size 0 itself reports the
	// untouched EquityMin sentinel, since no subset was ever scored.
	if lm.MaxLeaveForSize(0) != EquityMin {
		t.Errorf("MaxLeaveForSize(0) on an empty rack should be the EquityMin sentinel, got %v", lm.MaxLeaveForSize(0))
	}
	for size := 1; size <= RackSize; size++ {
		if lm.MaxLeaveForSize(size) != 0 {
			t.Errorf("MaxLeaveForSize(%d) on an empty rack should be 0, got %v", size, lm.MaxLeaveForSize(size))
		}
	}
}
