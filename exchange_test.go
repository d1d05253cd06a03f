// exchange_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

func TestBestExchangeRequiresFullBag(t *testing.T) {
	klv := newNeverMatchingKlv()
	rack := NewRack("cat")
	bag := NewBag(EnglishTileSet)
	// Drain the bag below the exchange threshold.
	bag.DrawTiles(bag.TileCount() - RackSize + 1)
	if BestExchange(rack, klv, bag) != nil {
		t.Errorf("BestExchange should refuse when the bag holds fewer than RackSize tiles")
	}
}

func TestBestExchangeEmptyRack(t *testing.T) {
	klv := newNeverMatchingKlv()
	bag := NewBag(EnglishTileSet)
	if BestExchange(NewRack(""), klv, bag) != nil {
		t.Errorf("BestExchange should refuse an empty rack")
	}
}

func TestBestExchangePicksAMove(t *testing.T) {
	klv := newNeverMatchingKlv()
	rack := NewRack("cat")
	bag := NewBag(EnglishTileSet)
	m := BestExchange(rack, klv, bag)
	if m == nil {
		t.Fatalf("BestExchange should return a candidate when the bag is full and the rack non-empty")
	}
	if m.Kind != MoveExchange {
		t.Errorf("Kind = %v, want MoveExchange", m.Kind)
	}
	if len(m.Exchanged) == 0 {
		t.Errorf("an exchange move should exchange at least one tile")
	}
}
