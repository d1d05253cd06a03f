// config.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file wires process configuration: command-line flags (as in
// the teacher's main/main.go) layered on top of a .env file loaded
// with godotenv (as in the teacher's go-app/main.go), binding into
// equity.go's Config plus the self-play / server knobs SPEC_FULL.md's
// AMBIENT STACK section calls for.

package skrafl

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

// RunConfig is the process-wide configuration for both the self-play
// CLI and the HTTP server: equity.go's Config plus the knobs layered
// on top of it by the command line and environment.
type RunConfig struct {
	Cfg Config

	Lexicon       string
	LexicaDir     string
	Seed          int64
	NumGames      int
	ShadowEnabled bool
	Project       string // GCP project for store.go; empty disables persistence

	AccessKey string // Bearer token required of incoming HTTP requests, if set
}

// LoadEnv loads a .env file if present, as the teacher's go-app/main.go
// does; a missing or unreadable file is not an error: godotenv.Load's
// error is discarded.
func LoadEnv(path string) {
	_ = godotenv.Load(path)
}

// ParseFlags builds a RunConfig from the .env file named by envPath
// and the process's command-line flags, layering defaults from
// DefaultConfig().
func ParseFlags(envPath string) *RunConfig {
	LoadEnv(envPath)

	def := DefaultConfig()
	rc := &RunConfig{Cfg: def}

	lexicon := flag.String("lexicon", "NWL23", "Lexicon to load (NWL23, CSW24)")
	lexicaDir := flag.String("lexica-dir", "lexica", "Directory holding the .kwg/.klv16 files for the chosen lexicon")
	seed := flag.Int64("seed", 0, "Self-play PRNG seed")
	numGames := flag.Int("games", 1, "Number of self-play games to run")
	shadow := flag.Bool("shadow", true, "Use the shadow evaluator's best-first anchor ordering")
	openingPenalty := flag.Int("opening-hotspot-penalty", int(def.OpeningHotspotPenalty), "Equity penalty (eighths of a point) for an opening-move vowel on a premium hotspot")
	nonOutplayPenalty := flag.Int("non-outplay-constant-penalty", int(def.NonOutplayConstantPenalty), "Constant equity penalty applied when the bag is empty and the rack cannot be played out")
	bingoBonus := flag.Int("bingo-bonus", int(def.BingoBonus), "Equity bonus (eighths of a point) for playing all rack tiles")
	project := flag.String("project", "", "GCP project to persist self-play game records to (store.go); empty disables persistence")
	flag.Parse()

	rc.Lexicon = *lexicon
	rc.LexicaDir = *lexicaDir
	rc.Seed = *seed
	rc.NumGames = *numGames
	rc.ShadowEnabled = *shadow
	rc.Project = *project
	rc.Cfg.OpeningHotspotPenalty = Equity(*openingPenalty)
	rc.Cfg.NonOutplayConstantPenalty = Equity(*nonOutplayPenalty)
	rc.Cfg.BingoBonus = Equity(*bingoBonus)
	rc.AccessKey = os.Getenv("ACCESS_KEY")
	return rc
}
