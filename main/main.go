// main.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// Self-play command-line harness: two equity robots play games of
// scoria against each other and the results are printed (and,
// optionally, persisted via store.go).

package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	skrafl "github.com/halldorb/scoria"
)

// lexiconFiles names the .kwg/.klv16 binary files of each supported
// lexicon inside the -lexica-dir directory; generating those files is
// outside this repository's scope (§6: the word graph and leave table
// wire formats are consumed, not produced, here).
var lexiconFiles = map[string]struct {
	kwgName string
	klvName string
}{
	"NWL23": {"NWL23.kwg", "NWL23.klv16"},
	"CSW24": {"CSW24.kwg", "CSW24.klv16"},
}

func loadLexicon(dir, name string) (*skrafl.Kwg, *skrafl.Klv, error) {
	names, ok := lexiconFiles[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown lexicon %q", name)
	}
	kwgPath := filepath.Join(dir, names.kwgName)
	kwgFile, err := os.Open(kwgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", kwgPath, err)
	}
	defer kwgFile.Close()
	kwg, err := skrafl.LoadKwg(kwgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", kwgPath, err)
	}

	klvPath := filepath.Join(dir, names.klvName)
	klvFile, err := os.Open(klvPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", klvPath, err)
	}
	defer klvFile.Close()
	klv, err := skrafl.LoadKlv(klvFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", klvPath, err)
	}
	return kwg, klv, nil
}

// simulateGame plays one game to completion with the equity robot on
// both sides and returns the finished Game.
func simulateGame(kwg *skrafl.Kwg, klv *skrafl.Klv, ts *skrafl.TileSet, cfg skrafl.Config, useShadow bool, verbose bool) *skrafl.Game {
	game := skrafl.NewGame(kwg, klv, ts)
	game.Cfg = cfg
	game.SetPlayerNames("Robot A", "Robot B")
	robotA, robotB := skrafl.NewEquityRobot(), skrafl.NewEquityRobot()

	for !game.IsOver() {
		robot := robotA
		if game.PlayerToMove() == 1 {
			robot = robotB
		}
		var move *skrafl.Move
		if useShadow {
			move = robot.GenerateMove(game)
		} else {
			p := game.PlayerToMove()
			move, _ = skrafl.GenerateMovesStrategy(game.Board, game.Racks[p], game.Racks[1-p], game.Kwg, game.Klv, game.Bag, game.Cfg, false)
		}
		if !game.Apply(move) {
			// Nothing left to do if even a pass can't be applied.
			break
		}
		if verbose {
			fmt.Printf("%v\n", game)
		}
	}
	return game
}

func main() {
	rc := skrafl.ParseFlags(".env")

	kwg, klv, err := loadLexicon(rc.LexicaDir, rc.Lexicon)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ts := skrafl.EnglishTileSet

	var store *skrafl.Store
	if rc.Project != "" {
		ctx := context.Background()
		store, err = skrafl.NewStore(ctx, rc.Project)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer store.Close()
	}

	var winsA, winsB int
	for i := 0; i < rc.NumGames; i++ {
		seed := rc.Seed + int64(i)
		rand.Seed(seed)
		game := simulateGame(kwg, klv, ts, rc.Cfg, rc.ShadowEnabled, rc.NumGames == 1)
		scoreA, scoreB := game.Scores[0], game.Scores[1]
		fmt.Printf("Game %d (seed %d): %d - %d\n", i, seed, scoreA, scoreB)
		switch {
		case scoreA > scoreB:
			winsA++
		case scoreB > scoreA:
			winsB++
		}
		if store != nil {
			rec := skrafl.NewGameRecord(seed, rc.Lexicon, game)
			if _, err := store.SaveGame(context.Background(), rec); err != nil {
				fmt.Fprintf(os.Stderr, "failed to persist game %d: %v\n", i, err)
			}
		}
	}
	fmt.Printf("%v games were played using the %q lexicon.\n"+
		"Robot A won %v games, and Robot B won %v games; %v games were draws.\n",
		rc.NumGames, rc.Lexicon, winsA, winsB, rc.NumGames-winsA-winsB)
}
