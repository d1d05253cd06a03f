// kwg.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the shared DAWG/GADDAG word graph: a single
// flat array of packed 32-bit nodes, the forward dictionary rooted at
// node 0 and the bidirectional GADDAG rooted at node 1.

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
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// Separator is the GADDAG split marker and also denotes the blank tile.
const Separator byte = 0

// AllLettersMask is the cross-set value for a square with no perpendicular
// neighbors: every tile 1..26 is legal.
const AllLettersMask = uint32(1)<<27 - 2 // bits 1..26 set, bit 0 clear

const (
	tileShift    = 24
	tileMask     = uint32(0xff) << tileShift
	acceptsBit   = uint32(1) << 23
	endOfSibsBit = uint32(1) << 22
	arcMask      = uint32(1)<<22 - 1
)

func nodeTile(rec uint32) byte       { return byte(rec >> tileShift) }
func nodeAccepts(rec uint32) bool    { return rec&acceptsBit != 0 }
func nodeEndOfSibs(rec uint32) bool  { return rec&endOfSibsBit != 0 }
func nodeArcTarget(rec uint32) uint32 { return rec & arcMask }

// Kwg is the packed word graph: DAWG and GADDAG sharing one node array,
// as described in the word-graph input format.
type Kwg struct {
	Nodes []uint32
	// DawgRoot is the arc-target of node 0: the forward dictionary root.
	DawgRoot uint32
	// GaddagRoot is the arc-target of node 1: the bidirectional root.
	GaddagRoot uint32
	// WordCounts holds, per node index, the number of complete words
	// reachable by scanning the sibling chain starting at that index
	// (see computeWordCounts).
	WordCounts []uint32

	crossMux   sync.Mutex
	crossCache *simplelru.LRU
}

// LoadKwg reads a word graph from its little-endian wire format: a 32-bit
// node count N followed by N 32-bit node records.
func LoadKwg(r io.Reader) (*Kwg, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("kwg: reading node count: %w", err)
	}
	nodes := make([]uint32, count)
	if err := binary.Read(r, binary.LittleEndian, nodes); err != nil {
		return nil, fmt.Errorf("kwg: reading %d nodes: %w", count, err)
	}
	return NewKwg(nodes), nil
}

// NewKwg wraps an already-decoded node array, deriving the DAWG/GADDAG
// roots and the word-count array.
func NewKwg(nodes []uint32) *Kwg {
	k := &Kwg{Nodes: nodes}
	if len(nodes) > 0 {
		k.DawgRoot = nodeArcTarget(nodes[0])
	}
	if len(nodes) > 1 {
		k.GaddagRoot = nodeArcTarget(nodes[1])
	}
	k.WordCounts = computeWordCounts(nodes)
	lru, _ := simplelru.NewLRU(4096, nil)
	k.crossCache = lru
	return k
}

// computeWordCounts runs the fixed-point pass of §4.B: each node's count
// is (1 if it accepts) plus its arc-target's count plus, unless it is the
// last of its siblings, the next sibling's count. Bounded by RackSize
// passes.
func computeWordCounts(nodes []uint32) []uint32 {
	counts := make([]uint32, len(nodes))
	for pass := 0; pass < RackSize; pass++ {
		changed := false
		for i := len(nodes) - 1; i >= 0; i-- {
			rec := nodes[i]
			c := uint32(0)
			if nodeAccepts(rec) {
				c = 1
			}
			if at := nodeArcTarget(rec); at != 0 {
				c += counts[at]
			}
			if !nodeEndOfSibs(rec) && i+1 < len(nodes) {
				c += counts[i+1]
			}
			if c != counts[i] {
				counts[i] = c
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return counts
}

// scanArc scans the sibling list starting at siblingsStart for an arc
// whose tile matches, returning the raw node record and whether it was
// found. A siblingsStart of 0 conventionally means "no children".
func (k *Kwg) scanArc(siblingsStart uint32, tile byte) (rec uint32, found bool) {
	if siblingsStart == 0 && len(k.Nodes) > 0 {
		// Node 0 is the DAWG-root bookkeeping record, never a real
		// sibling list; an arc-target of 0 means "no children".
		return 0, false
	}
	idx := siblingsStart
	for int(idx) < len(k.Nodes) {
		rec = k.Nodes[idx]
		if nodeTile(rec) == tile {
			return rec, true
		}
		if nodeEndOfSibs(rec) {
			return 0, false
		}
		idx++
	}
	return 0, false
}

// FollowArc is follow-arc(node-index, tile) from §4.A: a linear scan of
// the sibling list, returning the matched arc's target or (0, false).
func (k *Kwg) FollowArc(siblingsStart uint32, tile byte) (uint32, bool) {
	rec, found := k.scanArc(siblingsStart, tile)
	if !found {
		return 0, false
	}
	return nodeArcTarget(rec), true
}

// LetterAccepts is letter-accepts(node-index, tile) from §4.A.
func (k *Kwg) LetterAccepts(siblingsStart uint32, tile byte) bool {
	rec, found := k.scanArc(siblingsStart, tile)
	return found && nodeAccepts(rec)
}

// LetterSets is letter-sets(node-index) from §4.A: one pass over the
// sibling list (ignoring the separator) builds the accept-set and the
// extension-set.
func (k *Kwg) LetterSets(siblingsStart uint32) (acceptSet, extensionSet uint32) {
	if siblingsStart == 0 && len(k.Nodes) > 0 {
		return 0, 0
	}
	idx := siblingsStart
	for int(idx) < len(k.Nodes) {
		rec := k.Nodes[idx]
		tile := nodeTile(rec)
		if tile != Separator {
			bit := uint32(1) << tile
			extensionSet |= bit
			if nodeAccepts(rec) {
				acceptSet |= bit
			}
		}
		if nodeEndOfSibs(rec) {
			break
		}
		idx++
	}
	return acceptSet, extensionSet
}

// followPath walks a sequence of tiles from a starting sibling-list index
// through the DAWG, returning the resulting sibling-list index.
func (k *Kwg) followPath(start uint32, tiles []byte) (uint32, bool) {
	cur := start
	for _, t := range tiles {
		next, ok := k.FollowArc(cur, t)
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// acceptsPath walks tiles from a starting sibling-list index and reports
// whether the final arc traversed accepts.
func (k *Kwg) acceptsPath(start uint32, tiles []byte) bool {
	if len(tiles) == 0 {
		return false
	}
	cur := start
	var lastAccepts bool
	for i, t := range tiles {
		rec, found := k.scanArc(cur, t)
		if !found {
			return false
		}
		lastAccepts = nodeAccepts(rec)
		cur = nodeArcTarget(rec)
		if i < len(tiles)-1 && cur == 0 {
			return false
		}
	}
	return lastAccepts
}

// CrossSet computes the cross-set (§3, §4.A) for an empty square with
// perpendicular prefix and suffix tile runs (each in reading order,
// i.e. prefix is top-to-bottom/left-to-right above/left of the square,
// suffix is the run below/right of it).
func (k *Kwg) CrossSet(prefix, suffix []byte) uint32 {
	if len(prefix) == 0 && len(suffix) == 0 {
		return AllLettersMask
	}
	key := string(prefix) + "\x00" + string(suffix)
	k.crossMux.Lock()
	if v, ok := k.crossCache.Get(key); ok {
		k.crossMux.Unlock()
		return v.(uint32)
	}
	k.crossMux.Unlock()

	mask := k.computeCrossSet(prefix, suffix)

	k.crossMux.Lock()
	k.crossCache.Add(key, mask)
	k.crossMux.Unlock()
	return mask
}

func (k *Kwg) computeCrossSet(prefix, suffix []byte) uint32 {
	node, ok := k.followPath(k.DawgRoot, prefix)
	if !ok {
		return 0
	}
	if node == 0 && len(k.Nodes) > 0 {
		return 0
	}
	var mask uint32
	idx := node
	for int(idx) < len(k.Nodes) {
		rec := k.Nodes[idx]
		tile := nodeTile(rec)
		if tile != Separator {
			var ok bool
			if len(suffix) == 0 {
				ok = nodeAccepts(rec)
			} else {
				ok = k.acceptsPath(nodeArcTarget(rec), suffix)
			}
			if ok {
				mask |= uint32(1) << tile
			}
		}
		if nodeEndOfSibs(rec) {
			break
		}
		idx++
	}
	return mask
}

// RightExtensionSet computes the back-hook set (§4.A) for a left run of
// tiles abutting an anchor in the line direction: traverse reverse(left)
// through the GADDAG, follow the separator, and take the extension-set
// at the resulting node.
func (k *Kwg) RightExtensionSet(left []byte) uint32 {
	node := k.GaddagRoot
	for i := len(left) - 1; i >= 0; i-- {
		next, ok := k.FollowArc(node, left[i])
		if !ok {
			return 0
		}
		node = next
	}
	sepTarget, ok := k.FollowArc(node, Separator)
	if !ok {
		return 0
	}
	_, ext := k.LetterSets(sepTarget)
	return ext
}

// LeftExtensionSet computes the front-hook set (§4.A) for a right run of
// tiles abutting an anchor: traverse reverse(right) through the GADDAG
// and take the extension-set at the resulting node.
func (k *Kwg) LeftExtensionSet(right []byte) uint32 {
	node := k.GaddagRoot
	for i := len(right) - 1; i >= 0; i-- {
		next, ok := k.FollowArc(node, right[i])
		if !ok {
			return 0
		}
		node = next
	}
	_, ext := k.LetterSets(node)
	return ext
}
