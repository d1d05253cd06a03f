// alphabet.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file maps between the tile encoding used by the word graph
// (0 = blank/separator, 1..26 = A..Z) and the rune-based letters used
// by the board, rack and move types.

package skrafl

import "unicode"

// StdAlphabet is the 26-letter English alphabet used to index tiles
// 1..26 in the word graph.
const StdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TileForRune converts an uppercase letter to its tile encoding, or
// Separator (0) for '?' (a blank). Returns (0, false) for anything else.
func TileForRune(r rune) (byte, bool) {
	r = unicode.ToUpper(r)
	if r == '?' {
		return 0, true
	}
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return byte(r-'A') + 1, true
}

// RuneForTile converts a tile encoding back to its uppercase letter,
// or '?' for the blank/separator value 0.
func RuneForTile(t byte) rune {
	if t == 0 {
		return '?'
	}
	return rune('A' + t - 1)
}

// TilesForString converts a string of letters (with '?' for blanks)
// into a slice of tile encodings, skipping characters outside the
// alphabet.
func TilesForString(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if t, ok := TileForRune(r); ok {
			out = append(out, t)
		}
	}
	return out
}
