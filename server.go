// server.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements a compact HTTP server that receives JSON
// encoded requests and returns JSON encoded responses. Grounded on
// the teacher's server.go (MovesRequest/HeaderJson shape, http.Error
// status handling, /moves and /wordcheck endpoints), reworked around
// the byte-tile Board/Rack/Kwg/Klv model and the single equity-best
// Move the orchestrator (§4.I) returns, in place of the teacher's
// locale-keyed Dawg lookup and ranked move list.

package skrafl

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// MovesRequest describes an incoming /moves request: the board as
// BoardSize strings ('.' for an empty square, an uppercase letter for
// a placed tile, a lowercase letter for a placed blank) and the rack
// ('?' for a blank).
type MovesRequest struct {
	Board []string `json:"board"`
	Rack  string   `json:"rack"`
}

// MoveResponse is the JSON rendering of the chosen move.
type MoveResponse struct {
	Kind       string `json:"kind"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Horizontal bool   `json:"horizontal"`
	Word       string `json:"word"`
	Score      int    `json:"score"`
	Equity     int    `json:"equity"`
}

// MovesResult is the JSON response body of a /moves request.
type MovesResult struct {
	Version string       `json:"version"`
	Move    MoveResponse `json:"move"`
	Stats   GenStats     `json:"stats"`
}

// Server bundles the word graph and leave table the HTTP handlers
// generate moves against. One Server is built at process start and
// shared, read-only, across all requests (§5 concurrency model).
type Server struct {
	Kwg     *Kwg
	Klv     *Klv
	TileSet *TileSet
	Cfg     Config
}

// NewServer builds a Server from a loaded word graph, leave table and
// tile set.
func NewServer(kwg *Kwg, klv *Klv, ts *TileSet) *Server {
	return &Server{Kwg: kwg, Klv: klv, TileSet: ts, Cfg: DefaultConfig()}
}

func boardFromRows(rows []string) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("invalid board: must be %v rows", BoardSize)
	}
	b := NewBoard()
	for r, rowString := range rows {
		row := []rune(rowString)
		if len(row) != BoardSize {
			return nil, fmt.Errorf("invalid board row (#%v): must be %v characters long", r, BoardSize)
		}
		for c, letter := range row {
			if letter == '.' || letter == ' ' {
				continue
			}
			upper := letter
			blank := false
			if letter >= 'a' && letter <= 'z' {
				upper = letter - ('a' - 'A')
				blank = true
			}
			tile, ok := TileForRune(upper)
			if !ok || tile == 0 {
				return nil, fmt.Errorf("invalid letter '%c' at %v,%v", letter, r, c)
			}
			if blank {
				tile |= BlankFlag
			}
			if !b.PlaceTile(r, c, tile) {
				return nil, fmt.Errorf("square already occupied: %v,%v", r, c)
			}
		}
	}
	if b.NumTiles > 0 && !b.HasStartTile() {
		return nil, fmt.Errorf("the start square must be occupied")
	}
	return b, nil
}

// HandleMovesRequest runs the full generate-moves pipeline for the
// given board and rack and returns the chosen play.
func (s *Server) HandleMovesRequest(w http.ResponseWriter, req MovesRequest) {
	board, err := boardFromRows(req.Board)
	if err != nil {
		http.Error(w, err.Error()+"\n", http.StatusBadRequest)
		return
	}
	RebuildAllCrossSets(board, s.Kwg)

	rackTiles := TilesForString(req.Rack)
	if len(rackTiles) == 0 || len(rackTiles) > RackSize {
		http.Error(w, "Invalid rack.\n", http.StatusBadRequest)
		return
	}
	rack := &Rack{}
	for _, t := range rackTiles {
		rack.Add(t)
	}

	bag := NewBag(s.TileSet)
	move, stats := GenerateMovesWithConfig(board, rack, &Rack{}, s.Kwg, s.Klv, bag, s.Cfg)

	result := MovesResult{
		Version: "1.0",
		Move: MoveResponse{
			Kind:       moveKindName(move.Kind),
			Row:        move.Row,
			Col:        move.Col,
			Horizontal: move.Horizontal,
			Word:       move.Word(),
			Score:      EquityToPoints(move.Score),
			Equity:     int(move.Equity),
		},
		Stats: stats,
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func moveKindName(k MoveKind) string {
	switch k {
	case MoveTilePlacement:
		return "play"
	case MoveExchange:
		return "exchange"
	default:
		return "pass"
	}
}

// WordCheckRequest describes an incoming /wordcheck request.
type WordCheckRequest struct {
	Words []string `json:"words"`
}

type wordCheckResultPair [2]interface{}

// okFalseResponse is returned for malformed /wordcheck requests.
var okFalseResponse = map[string]bool{"ok": false}

// HandleWordCheckRequest checks a list of words against the word
// graph's dictionary.
func (s *Server) HandleWordCheckRequest(w http.ResponseWriter, req WordCheckRequest) {
	words := req.Words

	// A major-axis word plus up to BoardSize cross-axis words is the
	// most a single move can ever produce.
	if len(words) == 0 || len(words) > BoardSize+1 {
		json.NewEncoder(w).Encode(okFalseResponse)
		return
	}

	allValid := true
	valid := make([]wordCheckResultPair, len(words))
	for i, word := range words {
		if len(word) == 0 || len(word) > BoardSize {
			json.NewEncoder(w).Encode(okFalseResponse)
			return
		}
		found := s.Kwg.Find(word)
		valid[i] = wordCheckResultPair{word, found}
		if !found {
			allValid = false
		}
	}

	result := map[string]interface{}{
		"ok":    allValid,
		"valid": valid,
	}
	json.NewEncoder(w).Encode(result)
}
