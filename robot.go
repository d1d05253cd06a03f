// robot.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements an automatic player wired to the equity-based
// orchestrator. Grounded on the teacher's robot.go (Robot interface,
// RobotWrapper, the NewXxxRobot constructor shape); the teacher's
// HighScoreRobot picked from a full move list the old GenerateMoves
// returned, which the new orchestrator no longer exposes (it keeps
// only the single equity-best candidate as it searches, per §4.I) —
// see DESIGN.md for why that strategy was dropped rather than adapted.

package skrafl

// Robot is an interface for automatic players that pick a move to
// play given a Game.
type Robot interface {
	PickMove(g *Game) *Move
}

// RobotWrapper wraps a Robot implementation.
type RobotWrapper struct {
	Robot
}

// GenerateMove asks the wrapped robot to pick a move for the player
// to move in g.
func (rw *RobotWrapper) GenerateMove(g *Game) *Move {
	return rw.PickMove(g)
}

// EquityRobot always plays the move the orchestrator judges best by
// equity (§4.I), falling back to its exchange or pass choice.
type EquityRobot struct{}

// PickMove runs the full generate-moves pipeline and returns its
// result.
func (r *EquityRobot) PickMove(g *Game) *Move {
	move, _ := g.GenerateMove()
	return move
}

// NewEquityRobot returns a fresh equity-based robot.
func NewEquityRobot() *RobotWrapper {
	return &RobotWrapper{&EquityRobot{}}
}
