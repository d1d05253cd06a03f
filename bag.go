// bag.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file contains the Bag and TileSet logic

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package skrafl

import (
	"fmt"
	"math/rand"
	"strings"
)

// TileSet is a static prototype of tile scores and counts over the
// 27-symbol alphabet (§3), used to build fresh Bags.
type TileSet struct {
	Scores [27]int
	Counts [27]int
	Size   int
}

// initTileSet builds a TileSet from per-letter score and count maps
// keyed by rune, translated through the alphabet's tile encoding.
func initTileSet(scores map[rune]int, counts map[rune]int) *TileSet {
	ts := &TileSet{}
	for ch, n := range counts {
		var t byte
		if ch == '?' {
			t = 0
		} else {
			var ok bool
			t, ok = TileForRune(ch)
			if !ok {
				panic(fmt.Sprintf("tile set letter %q outside the alphabet", ch))
			}
		}
		ts.Counts[t] = n
		ts.Scores[t] = scores[ch]
		ts.Size += n
	}
	return ts
}

// initEnglishTileSet creates the standard English tile set.
func initEnglishTileSet() *TileSet {
	scores := map[rune]int{
		'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1,
		'f': 4, 'g': 2, 'h': 4, 'i': 1, 'j': 8,
		'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1,
		'p': 3, 'q': 10, 'r': 1, 's': 1, 't': 1,
		'u': 1, 'v': 4, 'w': 4, 'x': 8, 'y': 4,
		'z': 10, '?': 0,
	}
	counts := map[rune]int{
		'a': 9, 'b': 2, 'c': 2, 'd': 4, 'e': 12,
		'f': 2, 'g': 3, 'h': 2, 'i': 9, 'j': 1,
		'k': 1, 'l': 4, 'm': 2, 'n': 6, 'o': 8,
		'p': 2, 'q': 1, 'r': 6, 's': 4, 't': 6,
		'u': 4, 'v': 2, 'w': 2, 'x': 1, 'y': 2,
		'z': 1, '?': 2,
	}
	return initTileSet(scores, counts)
}

// EnglishTileSet is the standard English-language tile set (§3).
var EnglishTileSet = initEnglishTileSet()

// initNewEnglishTileSet creates the Explo-era rebalanced English tile
// set, distributed and scored to favour higher-scoring bingos.
func initNewEnglishTileSet() *TileSet {
	scores := map[rune]int{
		'i': 1, 'o': 1, 's': 1, 'a': 1, 'e': 1,
		't': 2, 'h': 2, 'y': 2, 'm': 2, 'u': 2,
		'd': 2, 'n': 2, 'l': 2, 'r': 2, 'p': 2,
		'k': 3, 'b': 3, 'g': 3, 'c': 3, 'f': 3,
		'w': 4, 'x': 5, 'v': 5, 'j': 6, 'z': 6,
		'q': 12, '?': 0,
	}
	counts := map[rune]int{
		'e': 12, 'a': 11, 's': 9, 'o': 7, 'i': 6,
		'r': 6, 'n': 5, 'l': 5, 't': 4, 'u': 4,
		'd': 4, 'm': 3, 'g': 3, 'c': 3, 'h': 2,
		'y': 2, 'p': 2, 'b': 2, 'k': 1, 'w': 1,
		'f': 1, 'x': 1, 'v': 1, 'j': 1, 'z': 1,
		'q': 1, '?': 2,
	}
	return initTileSet(scores, counts)
}

// NewEnglishTileSet is the Explo rebalanced English tile set.
var NewEnglishTileSet = initNewEnglishTileSet()

// DefaultTileSet supplies tile values to components (cross-scoring,
// leave evaluation, exchange scoring) that need a score for a tile but
// are not otherwise handed a *TileSet. Non-English tile sets from the
// teacher's original locale support were dropped: the board's one-byte
// tile encoding (§3, bits 31-24 of a packed node) only has room for the
// 26-letter English alphabet plus blank, so an Icelandic, Polish or
// Norwegian tile set has nothing to encode into.
var DefaultTileSet = EnglishTileSet

// TileScore returns the point value of a tile under the default tile
// set; 0 for a blank.
func TileScore(t byte) int {
	return DefaultTileSet.Scores[t]
}

// Bag is a randomized multiset of tiles yet to be drawn.
type Bag struct {
	contents []byte
}

// NewBag builds a fully shuffled bag from a tile set.
func NewBag(ts *TileSet) *Bag {
	b := &Bag{contents: make([]byte, 0, ts.Size)}
	for t := 0; t < 27; t++ {
		for i := 0; i < ts.Counts[t]; i++ {
			b.contents = append(b.contents, byte(t))
		}
	}
	rand.Shuffle(len(b.contents), func(i, j int) {
		b.contents[i], b.contents[j] = b.contents[j], b.contents[i]
	})
	return b
}

// DrawTile pops one random tile from the bag. ok is false if the bag
// is empty.
func (b *Bag) DrawTile() (tile byte, ok bool) {
	n := len(b.contents)
	if n == 0 {
		return 0, false
	}
	tile = b.contents[n-1]
	b.contents = b.contents[:n-1]
	return tile, true
}

// DrawTiles draws up to n tiles, stopping early if the bag empties.
func (b *Bag) DrawTiles(n int) []byte {
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		t, ok := b.DrawTile()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out
}

// Return puts tiles back into the bag, e.g. after an exchange.
func (b *Bag) Return(tiles []byte) {
	b.contents = append(b.contents, tiles...)
}

// TileCount returns the number of tiles left in the bag.
func (b *Bag) TileCount() int { return len(b.contents) }

// ExchangeAllowed reports whether at least RackSize tiles remain,
// permitting an exchange move.
func (b *Bag) ExchangeAllowed() bool { return b.TileCount() >= RackSize }

// String renders the bag's remaining contents for debugging.
func (b *Bag) String() string {
	if b.TileCount() == 0 {
		return "empty"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%d tiles): ", b.TileCount())
	for _, t := range b.contents {
		sb.WriteRune(RuneForTile(t))
	}
	return sb.String()
}
