// bag_test.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

func TestNewBagMatchesTileSetSize(t *testing.T) {
	bag := NewBag(EnglishTileSet)
	if bag.TileCount() != EnglishTileSet.Size {
		t.Errorf("TileCount() = %d, want %d", bag.TileCount(), EnglishTileSet.Size)
	}
}

func TestBagDrawReturnReconserves(t *testing.T) {
	bag := NewBag(EnglishTileSet)
	total := bag.TileCount()
	drawn := bag.DrawTiles(7)
	if len(drawn) != 7 {
		t.Fatalf("DrawTiles(7) returned %d tiles", len(drawn))
	}
	if bag.TileCount() != total-7 {
		t.Errorf("TileCount() after drawing = %d, want %d", bag.TileCount(), total-7)
	}
	bag.Return(drawn)
	if bag.TileCount() != total {
		t.Errorf("TileCount() after Return = %d, want %d", bag.TileCount(), total)
	}
}

func TestBagExchangeAllowedThreshold(t *testing.T) {
	bag := NewBag(EnglishTileSet)
	if !bag.ExchangeAllowed() {
		t.Errorf("a full bag should allow exchanges")
	}
	bag.DrawTiles(bag.TileCount() - RackSize + 1)
	if bag.ExchangeAllowed() {
		t.Errorf("a bag below RackSize tiles should not allow exchanges")
	}
}

func TestBagDrawTileEmpty(t *testing.T) {
	bag := NewBag(EnglishTileSet)
	bag.DrawTiles(bag.TileCount())
	if _, ok := bag.DrawTile(); ok {
		t.Errorf("DrawTile on an empty bag should report ok=false")
	}
}
