// board.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements the Board: a single row-major grid of squares,
// each carrying a placed tile (or the empty sentinel), a bonus
// classification, and — for both the horizontal and the vertical line
// direction — a cross-set, cross-score and pair of extension sets. A
// single store with transposed iteration over columns is semantically
// equivalent to two synchronized views (§9 Design Notes); the per-square
// horizontal/vertical field pairs below play that role without a second
// physical array.

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
	"strings"
)

const zero = int('0')

// BoardSize is the size of the Board.
const BoardSize = 15

// RackSize is the number of tiles a rack can hold.
const RackSize = 7

// EmptySquare is the sentinel tile value for an unoccupied square.
const EmptySquare byte = 0xff

// PlayedThroughMarker is used only inside a move's strip to mark a
// position the play passes through without placing a fresh tile there.
const PlayedThroughMarker byte = 0xfe

// BlankFlag, set on a placed tile's high bit, marks it as a blank that
// has been assigned a letter. Blanked tiles score 0.
const BlankFlag byte = 0x80

// Bonus classifies a square's premium status.
type Bonus int

const (
	BonusNone Bonus = iota
	BonusDoubleLetter
	BonusTripleLetter
	BonusDoubleWord
	BonusTripleWord
	BonusCenter
)

// Word multiplication factors on a standard board.
var wordMultipliersStandard = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

// Letter multiplication factors on a standard board.
var letterMultipliersStandard = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// colIds are the column identifiers of a board.
var colIds = [BoardSize]string{
	"1", "2", "3", "4", "5",
	"6", "7", "8", "9", "10",
	"11", "12", "13", "14", "15",
}

// rowIds are the row identifiers of a board.
var rowIds = [BoardSize]string{
	"A", "B", "C", "D", "E",
	"F", "G", "H", "I", "J",
	"L", "M", "N", "O", "P",
}

// square holds everything that depends on position: the placed tile,
// the bonus, and the horizontal/vertical cross-data used by move
// generation.
type square struct {
	tile byte

	letterMult int
	wordMult   int
	bonus      Bonus

	// crossSet/crossScore/leftExt/rightExt are indexed by line
	// direction: [0] horizontal, [1] vertical.
	crossSet   [2]uint32
	crossScore [2]int
	leftExt    [2]uint32
	rightExt   [2]uint32
}

// Board represents the 15x15 Scrabble board.
type Board struct {
	squares  [BoardSize][BoardSize]square
	NumTiles int
}

// dirIndex maps a horizontal flag to the cross-data slot.
func dirIndex(horizontal bool) int {
	if horizontal {
		return 0
	}
	return 1
}

// NewBoard returns a freshly initialized, empty standard board.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Init resets the board to the empty state: all squares empty, all
// cross-sets the all-letters mask, all cross-scores -1, all extension
// sets the all-letters mask, and the standard bonus layout.
func (b *Board) Init() {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			sq := &b.squares[r][c]
			sq.tile = EmptySquare
			sq.letterMult = int(letterMultipliersStandard[r][c]) - zero
			sq.wordMult = int(wordMultipliersStandard[r][c]) - zero
			sq.bonus = bonusFor(r, c, sq.letterMult, sq.wordMult)
			for d := 0; d < 2; d++ {
				sq.crossSet[d] = AllLettersMask
				sq.crossScore[d] = -1
				sq.leftExt[d] = AllLettersMask
				sq.rightExt[d] = AllLettersMask
			}
		}
	}
	b.NumTiles = 0
}

func bonusFor(row, col, letterMult, wordMult int) Bonus {
	if row == BoardSize/2 && col == BoardSize/2 {
		return BonusCenter
	}
	switch {
	case wordMult == 3:
		return BonusTripleWord
	case wordMult == 2:
		return BonusDoubleWord
	case letterMult == 3:
		return BonusTripleLetter
	case letterMult == 2:
		return BonusDoubleLetter
	default:
		return BonusNone
	}
}

// StartSquare returns the coordinate of the opening-move anchor.
func (b *Board) StartSquare() (row, col int) { return BoardSize / 2, BoardSize / 2 }

// HasStartTile reports whether the start square is occupied.
func (b *Board) HasStartTile() bool {
	r, c := b.StartSquare()
	return b.squares[r][c].tile != EmptySquare
}

// InBounds reports whether (row, col) is a valid board position.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Tile returns the tile at (row, col), or EmptySquare.
func (b *Board) Tile(row, col int) byte {
	return b.squares[row][col].tile
}

// IsEmpty reports whether (row, col) holds no tile.
func (b *Board) IsEmpty(row, col int) bool {
	return b.squares[row][col].tile == EmptySquare
}

// LetterMultiplier, WordMultiplier and BonusAt expose the premium
// layout of a square.
func (b *Board) LetterMultiplier(row, col int) int { return b.squares[row][col].letterMult }
func (b *Board) WordMultiplier(row, col int) int   { return b.squares[row][col].wordMult }
func (b *Board) BonusAt(row, col int) Bonus        { return b.squares[row][col].bonus }

// CrossSet, CrossScore, LeftExtensionSet and RightExtensionSet expose
// the per-direction cross-data used by move generation (§3, §4.A).
func (b *Board) CrossSet(row, col int, horizontal bool) uint32 {
	return b.squares[row][col].crossSet[dirIndex(horizontal)]
}
func (b *Board) CrossScore(row, col int, horizontal bool) int {
	return b.squares[row][col].crossScore[dirIndex(horizontal)]
}
func (b *Board) LeftExtensionSet(row, col int, horizontal bool) uint32 {
	return b.squares[row][col].leftExt[dirIndex(horizontal)]
}
func (b *Board) RightExtensionSet(row, col int, horizontal bool) uint32 {
	return b.squares[row][col].rightExt[dirIndex(horizontal)]
}

// SetCrossData overwrites one direction's cross-data for a square; used
// by the cross-set updater.
func (b *Board) SetCrossData(row, col int, horizontal bool, crossSet uint32, crossScore int, leftExt, rightExt uint32) {
	d := dirIndex(horizontal)
	sq := &b.squares[row][col]
	sq.crossSet[d] = crossSet
	sq.crossScore[d] = crossScore
	sq.leftExt[d] = leftExt
	sq.rightExt[d] = rightExt
}

// PlaceTile places tile at (row, col), clearing that square's cross-
// data in both directions per §4.D's key policy, and incrementing the
// tile count. Returns false if the square is already occupied.
func (b *Board) PlaceTile(row, col int, tile byte) bool {
	sq := &b.squares[row][col]
	if sq.tile != EmptySquare {
		return false
	}
	sq.tile = tile
	for d := 0; d < 2; d++ {
		sq.crossSet[d] = 0
		sq.crossScore[d] = -1
		sq.leftExt[d] = 0
		sq.rightExt[d] = 0
	}
	b.NumTiles++
	return true
}

// IsAnchor reports whether (row, col) is a legal starting point for a
// play: an empty square adjacent to a placed tile, or the board center
// when the board is empty.
func (b *Board) IsAnchor(row, col int) bool {
	if !b.IsEmpty(row, col) {
		return false
	}
	if b.NumTiles == 0 {
		sr, sc := b.StartSquare()
		return row == sr && col == sc
	}
	if row > 0 && !b.IsEmpty(row-1, col) {
		return true
	}
	if row < BoardSize-1 && !b.IsEmpty(row+1, col) {
		return true
	}
	if col > 0 && !b.IsEmpty(row, col-1) {
		return true
	}
	if col < BoardSize-1 && !b.IsEmpty(row, col+1) {
		return true
	}
	return false
}

// OpeningHotspot reports whether (row, col) carries the opening-move
// vowel penalty: squares along the center line that sit on a
// word-multiplying bonus (other than the mandatory center square
// itself) expose dangerous follow-on plays to the opponent.
func (b *Board) OpeningHotspot(row, col int) bool {
	center := BoardSize / 2
	if row != center && col != center {
		return false
	}
	sq := &b.squares[row][col]
	return sq.bonus != BonusCenter && sq.wordMult > 1
}

// Runes/letters -----------------------------------------------------

// String renders the board for debugging, uppercase letters for plain
// tiles and lowercase for blanked tiles.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%2s ", colIds[i]))
	}
	sb.WriteString("\n")
	for r := 0; r < BoardSize; r++ {
		sb.WriteString(fmt.Sprintf("%s ", rowIds[r]))
		for c := 0; c < BoardSize; c++ {
			sb.WriteString(fmt.Sprintf(" %s ", squareGlyph(b.squares[r][c].tile)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func squareGlyph(tile byte) string {
	if tile == EmptySquare {
		return "."
	}
	if tile&BlankFlag != 0 {
		return strings.ToLower(string(RuneForTile(tile &^ BlankFlag)))
	}
	return string(RuneForTile(tile))
}

// ToStrings renders the board as BoardSize row strings, '.' for empty
// squares, uppercase letters for plain tiles, lowercase for blanked
// ones — the board exchange format of §6.
func (b *Board) ToStrings() []string {
	rows := make([]string, BoardSize)
	for r := 0; r < BoardSize; r++ {
		var sb strings.Builder
		for c := 0; c < BoardSize; c++ {
			sb.WriteString(squareGlyph(b.squares[r][c].tile))
		}
		rows[r] = sb.String()
	}
	return rows
}
