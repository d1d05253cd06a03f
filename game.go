// game.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements the Game: turn alternation, bag refill, and
// end-of-game scoring around the core Board/Rack/Bag/Move/Kwg/Klv
// types. Grounded on the teacher's game.go (Game/GameState/MoveItem
// shape, Init/State/PlayerToMove/MakePassMove/rawApply/acceptMove/
// IsOver/String), reworked for the byte-tile Board and the Move/
// orchestrator API instead of the teacher's *Tile/Covers/Dawg model.

package skrafl

import (
	"fmt"
	"strings"
)

// Game is a container for an in-progress game between two players.
type Game struct {
	PlayerNames [2]string
	Scores      [2]int
	Board       *Board
	Racks       [2]*Rack
	Bag         *Bag
	MoveList    []*MoveItem
	Kwg         *Kwg
	Klv         *Klv
	Cfg         Config
	// NumPassMoves counts consecutive zero-scoring moves; six in a row
	// ends the game.
	NumPassMoves int
}

// MoveItem is an entry in a Game's MoveList: the player's rack as it
// was before the move, and the move itself.
type MoveItem struct {
	RackBefore string
	Move       *Move
}

// NewGame initializes a fresh game from a word graph, leave table and
// tile set, drawing both players' racks from a freshly shuffled bag.
func NewGame(kwg *Kwg, klv *Klv, ts *TileSet) *Game {
	g := &Game{
		Board: NewBoard(),
		Bag:   NewBag(ts),
		Kwg:   kwg,
		Klv:   klv,
		Cfg:   DefaultConfig(),
	}
	g.Racks[0] = &Rack{}
	g.Racks[1] = &Rack{}
	for _, t := range g.Bag.DrawTiles(RackSize) {
		g.Racks[0].Add(t)
	}
	for _, t := range g.Bag.DrawTiles(RackSize) {
		g.Racks[1].Add(t)
	}
	return g
}

// SetPlayerNames sets the names of the two players.
func (g *Game) SetPlayerNames(player0, player1 string) {
	g.PlayerNames[0] = player0
	g.PlayerNames[1] = player1
}

// PlayerToMove returns 0 or 1 depending on which player's move it is.
func (g *Game) PlayerToMove() int {
	return len(g.MoveList) % 2
}

// GenerateMove runs the orchestrator for the player to move and
// returns its chosen play and generation statistics, without applying
// it to the game.
func (g *Game) GenerateMove() (*Move, GenStats) {
	p := g.PlayerToMove()
	return GenerateMovesWithConfig(g.Board, g.Racks[p], g.Racks[1-p], g.Kwg, g.Klv, g.Bag, g.Cfg)
}

// MakePassMove appends a pass move to the game.
func (g *Game) MakePassMove() bool {
	return g.Apply(NewPassMove())
}

// Apply applies a move to the game: places any fresh tiles, updates
// cross-data, scores the move, replenishes the mover's rack and
// checks for game end.
func (g *Game) Apply(m *Move) bool {
	if g == nil || m == nil {
		return false
	}
	player := g.PlayerToMove()
	rack := g.Racks[player]
	rackBefore := rack.String()

	switch m.Kind {
	case MoveTilePlacement:
		if !rackHasStrip(rack, m.Strip) {
			return false
		}
		removeStrip(rack, m.Strip)
		ApplyMove(g.Board, g.Kwg, m)
	case MoveExchange:
		if !g.Bag.ExchangeAllowed() {
			return false
		}
		for _, t := range m.Exchanged {
			if !rack.Remove(t) {
				return false
			}
		}
		drawn := g.Bag.DrawTiles(len(m.Exchanged))
		g.Bag.Return(m.Exchanged)
		for _, t := range drawn {
			rack.Add(t)
		}
	case MovePass:
		// Nothing to do to board or rack.
	}

	if m.Kind != MoveExchange {
		refill := RackSize - rack.Total
		if refill > 0 {
			for _, t := range g.Bag.DrawTiles(refill) {
				rack.Add(t)
			}
		}
	}

	points := EquityToPoints(m.Score)
	g.Scores[player] += points
	if points == 0 {
		g.NumPassMoves++
	} else {
		g.NumPassMoves = 0
	}
	g.MoveList = append(g.MoveList, &MoveItem{RackBefore: rackBefore, Move: m})

	if g.IsOver() {
		g.settleFinalScores()
	}
	return true
}

// settleFinalScores applies the standard end-game rack adjustment: if
// a player emptied their rack, they gain twice the opponent's
// remaining tile score; otherwise (the game ended on six consecutive
// passes) each player loses their own remaining tile score.
func (g *Game) settleFinalScores() {
	for p := 0; p < 2; p++ {
		if g.Racks[p].IsEmpty() {
			opp := 1 - p
			g.Scores[p] += 2 * remainingRackScore(g.Racks[opp])
			return
		}
	}
	for p := 0; p < 2; p++ {
		g.Scores[p] -= remainingRackScore(g.Racks[p])
	}
}

// IsOver reports whether the game has ended: either player's rack is
// empty right after their move, or six consecutive zero-point moves
// have been made.
func (g *Game) IsOver() bool {
	if len(g.MoveList) == 0 {
		return false
	}
	if g.NumPassMoves >= 6 {
		return true
	}
	lastPlayer := 1 - g.PlayerToMove()
	return g.Racks[lastPlayer].IsEmpty() && g.Bag.TileCount() == 0
}

func rackHasStrip(rack *Rack, strip []byte) bool {
	var counts [27]int
	for _, t := range strip {
		if t == PlayedThroughMarker {
			continue
		}
		if t&BlankFlag != 0 {
			counts[0]++
		} else {
			counts[t]++
		}
	}
	for t, n := range counts {
		if rack.Counts[t] < n {
			return false
		}
	}
	return true
}

func removeStrip(rack *Rack, strip []byte) {
	for _, t := range strip {
		if t == PlayedThroughMarker {
			continue
		}
		if t&BlankFlag != 0 {
			rack.Remove(0)
		} else {
			rack.Remove(t)
		}
	}
}

// String renders a Game for debugging.
func (g *Game) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v (%v : %v) %v\n", g.PlayerNames[0], g.Scores[0], g.Scores[1], g.PlayerNames[1])
	fmt.Fprintf(&sb, "%v\n", g.Board)
	fmt.Fprintf(&sb, "Rack 0: %v\n", g.Racks[0])
	fmt.Fprintf(&sb, "Rack 1: %v\n", g.Racks[1])
	fmt.Fprintf(&sb, "Bag: %v\n", g.Bag)
	if len(g.MoveList) > 0 {
		sb.WriteString("Moves:\n")
		for i, item := range g.MoveList {
			if i%2 == 0 {
				fmt.Fprintf(&sb, "  %2d: %v", (i/2)+1, item.Move)
			} else {
				fmt.Fprintf(&sb, " / %v\n", item.Move)
			}
		}
		if len(g.MoveList)%2 == 1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
