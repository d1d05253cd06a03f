// rack_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

package skrafl

import "testing"

func TestRackAddRemove(t *testing.T) {
	r := NewRack("cat?")
	if r == nil {
		t.Fatalf("NewRack returned nil for a valid rack string")
	}
	if r.Total != 4 {
		t.Errorf("Total = %d, want 4", r.Total)
	}
	if !r.HasBlank() {
		t.Errorf("HasBlank() should be true after adding '?'")
	}
	tC, _ := TileForRune('C')
	if !r.HasTile(tC) {
		t.Errorf("HasTile(C) should be true")
	}
	if !r.Remove(tC) {
		t.Errorf("Remove(C) should succeed")
	}
	if r.HasTile(tC) {
		t.Errorf("HasTile(C) should be false after removing the only C")
	}
	if r.Remove(tC) {
		t.Errorf("Remove(C) should fail when no C remains")
	}
}

func TestRackInvalidLetter(t *testing.T) {
	if NewRack("cat1") != nil {
		t.Errorf("NewRack should reject a non-alphabetic character")
	}
}

func TestRackAsSet(t *testing.T) {
	r := NewRack("cat")
	set := r.AsSet()
	for _, letter := range []rune{'C', 'A', 'T'} {
		tile, _ := TileForRune(letter)
		if set&(uint32(1)<<tile) == 0 {
			t.Errorf("AsSet() missing bit for %c", letter)
		}
	}
	blankRack := NewRack("ca?")
	if blankRack.AsSet() != AllLettersMask {
		t.Errorf("a rack holding a blank should widen AsSet() to AllLettersMask")
	}
}

func TestRackClone(t *testing.T) {
	r := NewRack("cat")
	c := r.Clone()
	c.Remove(3) // remove a C
	if r.Total == c.Total {
		t.Errorf("Clone() should be independent of the original rack")
	}
}

func TestRackTilesAndString(t *testing.T) {
	r := NewRack("cat")
	if len(r.Tiles()) != 3 {
		t.Errorf("Tiles() length = %d, want 3", len(r.Tiles()))
	}
	if got := r.String(); len(got) != 3 {
		t.Errorf("String() = %q, want 3 characters", got)
	}
}
