// riddle.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements riddle generation: self-play a pair of equity
// robots (robot.go) forward to a board with a plausible number of
// tiles, then present the player-to-move's best available play as a
// puzzle. Grounded on the teacher's riddle.go for the worker-pool
// fan-out and heuristic-scored-candidate shape; the per-move ranking
// metrics that depended on the teacher's full move list (total move
// count, second-best score, average score) are dropped because the
// orchestrator (§4.I) only ever keeps the single equity-best candidate
// as it searches — see DESIGN.md.

package skrafl

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// GenerationParams holds the word graph, leave table and tile set a
// riddle should be built from.
type GenerationParams struct {
	Kwg           *Kwg
	Klv           *Klv
	TileSet       *TileSet
	Cfg           Config
	TimeLimit     time.Duration
	NumWorkers    int
	NumCandidates int
}

// HeuristicConfig defines what constitutes a "good" riddle.
type HeuristicConfig struct {
	MinTiles       int     // Minimum number of tiles on the board
	MaxTiles       int     // Maximum number of tiles on the board
	MinBestScore   int     // Minimum score for the best move
	MinWordLength  int     // Minimum length of the solution word
	BingoBonus     float64 // Bonus for a bingo (all rack tiles played)
	NumCoversBonus float64 // Bonus factor for the number of fresh tiles
}

// DefaultHeuristics provides a baseline configuration.
var DefaultHeuristics = HeuristicConfig{
	MinTiles:       50,
	MaxTiles:       70,
	MinBestScore:   30,
	MinWordLength:  3,
	BingoBonus:     15.0,
	NumCoversBonus: 2.0,
}

// Solution holds the answer to the riddle.
type Solution struct {
	Move        string `json:"move"`
	Coord       string `json:"coord"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// Analysis provides metrics about the riddle's solution.
type Analysis struct {
	BestMoveScore int  `json:"bestMoveScore"`
	IsBingo       bool `json:"isBingo"`
}

// Riddle is the final structure returned by the API.
type Riddle struct {
	Board    []string `json:"board"`
	Rack     string   `json:"rack"`
	Solution Solution `json:"solution"`
	Analysis Analysis `json:"analysis"`
}

// RiddleCandidate holds a potential riddle and its evaluated rank score.
type RiddleCandidate struct {
	Riddle *Riddle
	Score  float64
}

// Stats tallies why candidates were rejected.
type Stats struct {
	Candidates       int64
	NoValidMove      int
	GameEnded        int
	ContextCancelled int
	TooLowBestScore  int
	TooShortWord     int
}

func cleanWord(word string) string {
	out := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		if word[i] != '.' {
			out = append(out, word[i])
		}
	}
	return string(out)
}

// generateCandidate self-plays a fresh game forward to a plausible
// board state, then returns the player-to-move's best play as a
// candidate riddle.
func generateCandidate(ctx context.Context, params GenerationParams, heuristics HeuristicConfig, stats *Stats) (*RiddleCandidate, error) {
	game := NewGame(params.Kwg, params.Klv, params.TileSet)
	game.Cfg = params.Cfg
	game.PlayerNames[0], game.PlayerNames[1] = "P1", "P2"
	p1, p2 := NewEquityRobot(), NewEquityRobot()

	minTiles := heuristics.MinTiles + rand.Intn(heuristics.MaxTiles-heuristics.MinTiles+1)
	for game.Board.NumTiles < minTiles {
		robot := p1
		if game.PlayerToMove() == 1 {
			robot = p2
		}
		move := robot.GenerateMove(game)
		if move == nil {
			stats.NoValidMove++
			return nil, nil
		}
		if !game.Apply(move) {
			stats.NoValidMove++
			return nil, nil
		}
		if game.IsOver() {
			stats.GameEnded++
			return nil, nil
		}
		select {
		case <-ctx.Done():
			stats.ContextCancelled++
			return nil, ctx.Err()
		default:
		}
	}

	player := game.PlayerToMove()
	move, _ := game.GenerateMove()
	if move == nil || move.Kind != MoveTilePlacement {
		stats.NoValidMove++
		return nil, nil
	}

	score := EquityToPoints(move.Score)
	if score < heuristics.MinBestScore {
		stats.TooLowBestScore++
		return nil, nil
	}
	word := cleanWord(move.Word())
	if len(word) < heuristics.MinWordLength {
		stats.TooShortWord++
		return nil, nil
	}
	isBingo := move.FreshTiles == RackSize

	riddle := &Riddle{
		Board: game.Board.ToStrings(),
		Rack:  game.Racks[player].String(),
		Solution: Solution{
			Move:        word,
			Coord:       Coord(move.Row, move.Col, move.Horizontal),
			Score:       score,
			Description: move.String(),
		},
		Analysis: Analysis{BestMoveScore: score, IsBingo: isBingo},
	}

	rankScore := float64(score) + float64(move.FreshTiles)*heuristics.NumCoversBonus
	if isBingo {
		rankScore += heuristics.BingoBonus
	}

	return &RiddleCandidate{Riddle: riddle, Score: rankScore}, nil
}

// GenerateRiddle orchestrates the generation and selection of the best riddle.
func GenerateRiddle(params GenerationParams, heuristics HeuristicConfig) (*Riddle, *Stats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), params.TimeLimit)
	defer cancel()

	var wg sync.WaitGroup
	candidateChan := make(chan *RiddleCandidate, 100)
	stats := &Stats{}

	numWorkers := params.NumWorkers
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for atomic.LoadInt64(&stats.Candidates) < int64(params.NumCandidates) {
				select {
				case <-ctx.Done():
					return
				default:
					candidate, err := generateCandidate(ctx, params, heuristics, stats)
					if err == nil && candidate != nil {
						candidateChan <- candidate
						atomic.AddInt64(&stats.Candidates, 1)
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(candidateChan)
	}()

	var bestCandidates []*RiddleCandidate
	for candidate := range candidateChan {
		bestCandidates = append(bestCandidates, candidate)
	}
	if len(bestCandidates) == 0 {
		return nil, nil, fmt.Errorf("could not generate a suitable riddle in the allotted time")
	}

	sort.Slice(bestCandidates, func(i, j int) bool {
		return bestCandidates[i].Score > bestCandidates[j].Score
	})
	return bestCandidates[0].Riddle, stats, nil
}
