// dictionary.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements word-level dictionary queries (Find, Match,
// Permute) for the collaborator layer — the /wordcheck HTTP endpoint
// calls Find — built directly on the packed DAWG node
// array. The teacher's Navigator-driven traversal (navigators.go)
// targeted a variable-length-prefix on-disk encoding; the node layout
// this engine's word graph uses packs exactly one tile per arc, so the
// simple recursive walk below replaces it rather than adapting it.

package skrafl

// Find reports whether word is present in the forward dictionary.
func (k *Kwg) Find(word string) bool {
	tiles := TilesForString(word)
	if len(tiles) == 0 {
		return false
	}
	node := k.DawgRoot
	var lastAccepts bool
	for _, t := range tiles {
		rec, found := k.scanArc(node, t)
		if !found {
			return false
		}
		lastAccepts = nodeAccepts(rec)
		node = nodeArcTarget(rec)
	}
	return lastAccepts
}

// Match returns every word in the forward dictionary that matches
// pattern, where '?' stands for any single letter.
func (k *Kwg) Match(pattern string) []string {
	tiles := make([]byte, 0, len(pattern))
	for _, r := range pattern {
		if r == '?' {
			tiles = append(tiles, 0xff) // wildcard sentinel, never a real tile
			continue
		}
		t, ok := TileForRune(r)
		if !ok {
			return nil
		}
		tiles = append(tiles, t)
	}
	var results []string
	var buf []byte
	k.matchWalk(k.DawgRoot, tiles, buf, &results)
	return results
}

func (k *Kwg) matchWalk(node uint32, remaining []byte, matched []byte, results *[]string) {
	if len(remaining) == 0 {
		return
	}
	want := remaining[0]
	rest := remaining[1:]
	idx := node
	if node == 0 && len(k.Nodes) > 0 {
		return
	}
	for int(idx) < len(k.Nodes) {
		rec := k.Nodes[idx]
		tile := nodeTile(rec)
		if tile != Separator && (want == 0xff || want == tile) {
			m := append(append([]byte{}, matched...), tile)
			if len(rest) == 0 {
				if nodeAccepts(rec) {
					*results = append(*results, tilesToString(m))
				}
			} else {
				k.matchWalk(nodeArcTarget(rec), rest, m, results)
			}
		}
		if nodeEndOfSibs(rec) {
			break
		}
		idx++
	}
}

func tilesToString(tiles []byte) string {
	out := make([]rune, len(tiles))
	for i, t := range tiles {
		out[i] = RuneForTile(t)
	}
	return string(out)
}

// Permute returns every word reachable using the letters of rack (which
// may contain '?' for blanks), of at least minLen letters.
func (k *Kwg) Permute(rack string, minLen int) []string {
	counts := rackCounts(rack)
	var results []string
	var buf []byte
	k.permuteWalk(k.DawgRoot, counts, buf, minLen, &results)
	return results
}

func rackCounts(rack string) [27]int {
	var counts [27]int
	for _, r := range rack {
		if t, ok := TileForRune(r); ok {
			counts[t]++
		}
	}
	return counts
}

func (k *Kwg) permuteWalk(node uint32, counts [27]int, matched []byte, minLen int, results *[]string) {
	if node == 0 && len(k.Nodes) > 0 {
		return
	}
	idx := node
	for int(idx) < len(k.Nodes) {
		rec := k.Nodes[idx]
		tile := nodeTile(rec)
		if tile != Separator {
			var used byte = 0xff
			if counts[tile] > 0 {
				used = tile
			} else if counts[0] > 0 {
				used = 0 // a blank stands in for this tile
			}
			if used != 0xff {
				counts[used]--
				m := append(append([]byte{}, matched...), tile)
				if nodeAccepts(rec) && len(m) >= minLen {
					*results = append(*results, tilesToString(m))
				}
				k.permuteWalk(nodeArcTarget(rec), counts, m, minLen, results)
				counts[used]++
			}
		}
		if nodeEndOfSibs(rec) {
			break
		}
		idx++
	}
}
