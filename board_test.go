// board_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

package skrafl

import "testing"

func TestNewBoardEmptyState(t *testing.T) {
	b := NewBoard()
	if b.NumTiles != 0 {
		t.Errorf("a fresh board should hold no tiles")
	}
	r, c := b.StartSquare()
	if !b.IsAnchor(r, c) {
		t.Errorf("the start square should be the sole anchor on an empty board")
	}
	if b.IsAnchor(0, 0) {
		t.Errorf("a corner square should not be an anchor on an empty board")
	}
	if b.CrossSet(3, 3, true) != AllLettersMask {
		t.Errorf("an untouched square's cross-set should default to AllLettersMask")
	}
}

func TestBoardBonusLayout(t *testing.T) {
	b := NewBoard()
	r, c := b.StartSquare()
	if b.BonusAt(r, c) != BonusCenter {
		t.Errorf("the center square should carry BonusCenter")
	}
	if b.BonusAt(0, 0) != BonusTripleWord {
		t.Errorf("a corner square should carry BonusTripleWord")
	}
}

func TestBoardPlaceTileClearsCrossData(t *testing.T) {
	b := NewBoard()
	r, c := b.StartSquare()
	tC, _ := TileForRune('C')
	if !b.PlaceTile(r, c, tC) {
		t.Fatalf("PlaceTile should succeed on an empty square")
	}
	if b.PlaceTile(r, c, tC) {
		t.Errorf("PlaceTile should fail on an already-occupied square")
	}
	if b.NumTiles != 1 {
		t.Errorf("NumTiles = %d, want 1", b.NumTiles)
	}
	if b.Tile(r, c) != tC {
		t.Errorf("Tile() should return the placed tile")
	}
	if b.CrossSet(r, c, true) != 0 {
		t.Errorf("an occupied square's cross-set should be cleared to 0")
	}
	if b.IsAnchor(r, c) {
		t.Errorf("an occupied square is never an anchor")
	}
	if r > 0 && !b.IsAnchor(r-1, c) {
		t.Errorf("an empty square adjacent to a placed tile should become an anchor")
	}
}
