// anchor.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the anchor max-heap of §4.F: anchors are
// extracted in decreasing shadow-bound order, ties broken by canonical
// scan order so that shadow-pruned generation agrees with a full scan.

package skrafl

import "container/heap"

// Anchor is one candidate starting square for a direction, carrying the
// Shadow Evaluator's upper bound on any play through it.
type Anchor struct {
	Row, Col   int
	Horizontal bool
	Bound      Equity
	// LastAnchorCol is the column of the nearest anchor to the left on
	// this line (or -1 if none), bounding leftward travel during move
	// generation to avoid duplicate plays.
	LastAnchorCol int
	// ScanOrder is the canonical tie-break key: row*BoardSize+col for
	// horizontal anchors, an offset plus col*BoardSize+row for vertical.
	ScanOrder int
}

// HorizontalScanOrder and VerticalScanOrder compute an anchor's
// canonical scan-order key (§4.F).
func HorizontalScanOrder(row, col int) int { return row*BoardSize + col }
func VerticalScanOrder(row, col int) int   { return BoardSize*BoardSize + col*BoardSize + row }

// AnchorHeap is a max-heap over Anchor, ordered by Bound descending and
// then ScanOrder ascending.
type AnchorHeap []Anchor

func (h AnchorHeap) Len() int { return len(h) }
func (h AnchorHeap) Less(i, j int) bool {
	if h[i].Bound != h[j].Bound {
		return h[i].Bound > h[j].Bound
	}
	return h[i].ScanOrder < h[j].ScanOrder
}
func (h AnchorHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *AnchorHeap) Push(x any) {
	*h = append(*h, x.(Anchor))
}

func (h *AnchorHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// NewAnchorHeap builds a ready-to-pop max-heap from a slice of anchors.
func NewAnchorHeap(anchors []Anchor) *AnchorHeap {
	h := AnchorHeap(anchors)
	heap.Init(&h)
	return &h
}

// PopBest removes and returns the anchor with the highest bound.
func (h *AnchorHeap) PopBest() (Anchor, bool) {
	if h.Len() == 0 {
		return Anchor{}, false
	}
	return heap.Pop(h).(Anchor), true
}

// Peek returns the highest-bound anchor without removing it. The heap
// invariant keeps the max at index 0.
func (h AnchorHeap) Peek() (Anchor, bool) {
	if len(h) == 0 {
		return Anchor{}, false
	}
	return h[0], true
}
