// klv_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

// newLeaveRankingKlv builds a small hand-packed ranking lexicon (shaped
// like a real .klv16's Kwg: a DAWG whose accepting paths are sorted
// tile sequences, not dictionary words) encoding five leaves: "A", "C",
// "T", "AC" and "ACT". Root siblings are kept in ascending tile order,
// as a real ranking lexicon's compiler would emit them, so rank()'s
// running count actually accumulates real skipped-sibling word counts
// rather than always taking the not-found fallback.
func newLeaveRankingKlv() *Klv {
	tA, _ := TileForRune('A')
	tC, _ := TileForRune('C')
	tT, _ := TileForRune('T')
	nodes := []uint32{
		packNode(0, false, false, 2), // node 0: DAWG root header
		packNode(0, false, false, 0), // node 1: unused GADDAG header
		packNode(tA, true, false, 5), // node 2: 'A', leave "A", more root siblings follow
		packNode(tC, true, false, 0), // node 3: 'C', leave "C", no children
		packNode(tT, true, true, 0),  // node 4: 'T', leave "T", last root sibling
		packNode(tC, true, true, 6),  // node 5: 'C' (child of 'A'), leave "AC"
		packNode(tT, true, true, 0),  // node 6: 'T' (child of node 5), leave "ACT"
	}
	// Leaves[i] holds the value for whichever leave ranks i. Index 0 is
	// shared by "A", "AC" and "ACT": each is reached by always matching
	// the lexicographically-first sibling at every level it visits, so
	// rank()'s running count never accumulates a skipped-sibling's word
	// count for any of them. Index 3 ("C") and 4 ("T") are not shared,
	// since reaching them means skipping one or two earlier root
	// siblings, each contributing their own word count to running.
	return &Klv{
		Kwg:    NewKwg(nodes),
		Leaves: []Equity{10, 0, 0, -5, 7},
	}
}

func TestKlvRankSkipsEarlierSiblingWordCounts(t *testing.T) {
	klv := newLeaveRankingKlv()
	tA, _ := TileForRune('A')
	tC, _ := TileForRune('C')
	tT, _ := TileForRune('T')

	cases := []struct {
		name   string
		tiles  []byte
		want   uint32
		wantOk bool
	}{
		{"A", []byte{tA}, 0, true},
		{"C", []byte{tC}, 3, true},
		{"T", []byte{tT}, 4, true},
		{"AC", []byte{tA, tC}, 0, true},
		{"ACT", []byte{tA, tC, tT}, 0, true},
	}
	for _, c := range cases {
		got, ok := klv.rank(c.tiles)
		if ok != c.wantOk || got != c.want {
			t.Errorf("rank(%s) = (%d, %v), want (%d, %v)", c.name, got, ok, c.want, c.wantOk)
		}
	}
}

func TestKlvRankMissingLeaveNotFound(t *testing.T) {
	klv := newLeaveRankingKlv()
	tC, _ := TileForRune('C')
	tT, _ := TileForRune('T')

	// "C" has no children in this lexicon, so the multiset {C, T} (sorted
	// C before T) fails to match past the root 'C' arc.
	if _, ok := klv.rank([]byte{tC, tT}); ok {
		t.Errorf("rank(CT) should report not-found: 'C' has no child leading to 'T'")
	}
}

func TestKlvLeaveValueUsesRealRank(t *testing.T) {
	klv := newLeaveRankingKlv()
	tA, _ := TileForRune('A')
	tC, _ := TileForRune('C')
	tT, _ := TileForRune('T')

	if v := klv.LeaveValue([]byte{tA}); v != 10 {
		t.Errorf("LeaveValue(A) = %v, want 10", v)
	}
	if v := klv.LeaveValue([]byte{tC}); v != -5 {
		t.Errorf("LeaveValue(C) = %v, want -5", v)
	}
	if v := klv.LeaveValue([]byte{tT}); v != 7 {
		t.Errorf("LeaveValue(T) = %v, want 7", v)
	}
	// LeaveValue sorts its input, so a rack given as "CA" is ranked the
	// same as "AC".
	if v := klv.LeaveValue([]byte{tC, tA}); v != 10 {
		t.Errorf("LeaveValue(CA) = %v, want 10 (same rank as AC)", v)
	}
	if v := klv.LeaveValue(nil); v != 0 {
		t.Errorf("LeaveValue(nil) = %v, want 0", v)
	}
	// {C, T} is outside this lexicon's support: LeaveValue must fall
	// back to 0 rather than indexing Leaves with a stale rank.
	if v := klv.LeaveValue([]byte{tC, tT}); v != 0 {
		t.Errorf("LeaveValue(CT) = %v, want 0 (not found)", v)
	}
}
