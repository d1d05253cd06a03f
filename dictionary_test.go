// dictionary_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import (
	"sort"
	"testing"
)

// newCatAndCarKwg builds a forward-dictionary node array holding "CAT"
// and "CAR", sharing the "CA" prefix, to exercise Match/Permute's
// branching over more than one sibling.
func newCatAndCarKwg() *Kwg {
	tC, _ := TileForRune('C')
	tA, _ := TileForRune('A')
	tT, _ := TileForRune('T')
	tR, _ := TileForRune('R')
	nodes := []uint32{
		packNode(0, false, false, 2), // node 0: DAWG root header
		packNode(0, false, false, 0), // node 1: unused GADDAG header
		packNode(tC, false, true, 3), // node 2: 'C', only root sibling
		packNode(tA, false, true, 4), // node 3: 'A', only sibling
		packNode(tR, true, false, 0), // node 4: 'R' (CAR), accepts, more siblings follow
		packNode(tT, true, true, 0),  // node 5: 'T' (CAT), accepts, last sibling
	}
	return NewKwg(nodes)
}

func TestDictionaryMatch(t *testing.T) {
	k := newCatAndCarKwg()
	got := k.Match("ca?")
	sort.Strings(got)
	want := []string{"CAR", "CAT"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Match(ca?) = %v, want %v", got, want)
	}
	if got := k.Match("c?t"); len(got) != 1 || got[0] != "CAT" {
		t.Errorf("Match(c?t) = %v, want [CAT]", got)
	}
	if got := k.Match("xy?"); got != nil {
		t.Errorf("Match(xy?) = %v, want nil", got)
	}
}

func TestDictionaryPermute(t *testing.T) {
	k := newCatAndCarKwg()
	got := k.Permute("tarc", 3)
	sort.Strings(got)
	want := []string{"CAR", "CAT"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Permute(tarc, 3) = %v, want %v", got, want)
	}
	if got := k.Permute("ta?", 3); len(got) != 1 || got[0] != "CAT" {
		t.Errorf("Permute with a blank standing in for C = %v, want [CAT]", got)
	}
	if got := k.Permute("xyz", 3); len(got) != 0 {
		t.Errorf("Permute(xyz, 3) = %v, want none", got)
	}
}
