// klv.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Leave Evaluator (§4.B): given a rack, it
// ranks the rack's multiset in the canonical enumeration encoded by a
// small DAWG-like lexicon and indexes the externally computed
// leave-value table at that rank.

package skrafl

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

// Klv is the leave-value table: a ranking lexicon (its own small word
// graph, used solely to enumerate rack multisets) plus the values
// themselves.
type Klv struct {
	Kwg    *Kwg
	Leaves []Equity
}

// LoadKlv reads a .klv16 file: a 32-bit node count N, N nodes, a 32-bit
// leaf count M, then M signed 16-bit eighths values, all little-endian.
func LoadKlv(r io.Reader) (*Klv, error) {
	var nodeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &nodeCount); err != nil {
		return nil, fmt.Errorf("klv: reading node count: %w", err)
	}
	nodes := make([]uint32, nodeCount)
	if err := binary.Read(r, binary.LittleEndian, nodes); err != nil {
		return nil, fmt.Errorf("klv: reading %d nodes: %w", nodeCount, err)
	}
	var leafCount uint32
	if err := binary.Read(r, binary.LittleEndian, &leafCount); err != nil {
		return nil, fmt.Errorf("klv: reading leaf count: %w", err)
	}
	raw := make([]int16, leafCount)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, fmt.Errorf("klv: reading %d leaves: %w", leafCount, err)
	}
	leaves := make([]Equity, leafCount)
	for i, v := range raw {
		leaves[i] = Equity(v)
	}
	return &Klv{Kwg: NewKwg(nodes), Leaves: leaves}, nil
}

// rank computes the index of a sorted tile multiset in the lexicon's
// canonical enumeration (§4.B). The second return value is false if the
// multiset falls outside the enumeration's support.
func (klv *Klv) rank(sortedTiles []byte) (uint32, bool) {
	idx := klv.Kwg.DawgRoot
	var running uint32
	for _, t := range sortedTiles {
		if idx == 0 && len(klv.Kwg.Nodes) > 0 {
			return 0, false
		}
		cur := idx
		found := false
		for {
			rec := klv.Kwg.Nodes[cur]
			tile := nodeTile(rec)
			eos := nodeEndOfSibs(rec)
			if tile == t {
				idx = nodeArcTarget(rec)
				found = true
				break
			}
			var nextCount uint32
			if !eos && int(cur)+1 < len(klv.Kwg.WordCounts) {
				nextCount = klv.Kwg.WordCounts[cur+1]
			}
			running += klv.Kwg.WordCounts[cur] - nextCount
			if eos {
				break
			}
			cur++
		}
		if !found {
			return 0, false
		}
	}
	return running, true
}

// LeaveValue returns the equity adjustment for keeping the given rack
// multiset (tiles encoded 0..26, 0 for a blank). Per §7, an empty rack
// or an unfound rank both yield 0.
func (klv *Klv) LeaveValue(tiles []byte) Equity {
	if len(tiles) == 0 {
		return 0
	}
	sorted := append([]byte(nil), tiles...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx, ok := klv.rank(sorted)
	if !ok || int(idx) >= len(klv.Leaves) {
		return 0
	}
	return klv.Leaves[idx]
}
