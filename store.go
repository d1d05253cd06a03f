// store.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file persists completed self-play game records to Google Cloud
// Datastore: seed, lexicon, final scores and the move list, entirely
// outside the core's scope (§1). The teacher carries
// cloud.google.com/go/datastore as a direct dependency without using
// it (an App-Engine-era holdover); this collaborator gives it a real
// job, mirroring the client-construction/Put shape the datastore
// package itself documents, since no example repo in the retrieval
// pack uses it for anything more specific to imitate.

package skrafl

import (
	"context"
	"fmt"

	"cloud.google.com/go/datastore"
)

// GameRecordKind is the Datastore kind a GameRecord is stored under.
const GameRecordKind = "SelfPlayGame"

// MoveRecord is the Datastore-storable rendering of one MoveItem.
type MoveRecord struct {
	RackBefore string
	Kind       int
	Row        int
	Col        int
	Horizontal bool
	Word       string
	Score      int
	Equity     int
}

// GameRecord is a completed self-play game, ready to persist.
type GameRecord struct {
	Seed        int64
	Lexicon     string
	PlayerNames [2]string
	Scores      [2]int
	Moves       []MoveRecord `datastore:",noindex"`
}

// NewGameRecord builds a GameRecord from a finished Game.
func NewGameRecord(seed int64, lexicon string, g *Game) *GameRecord {
	rec := &GameRecord{
		Seed:        seed,
		Lexicon:     lexicon,
		PlayerNames: g.PlayerNames,
		Scores:      g.Scores,
		Moves:       make([]MoveRecord, len(g.MoveList)),
	}
	for i, item := range g.MoveList {
		m := item.Move
		rec.Moves[i] = MoveRecord{
			RackBefore: item.RackBefore,
			Kind:       int(m.Kind),
			Row:        m.Row,
			Col:        m.Col,
			Horizontal: m.Horizontal,
			Word:       m.Word(),
			Score:      EquityToPoints(m.Score),
			Equity:     int(m.Equity),
		}
	}
	return rec
}

// Store wraps a Datastore client for persisting self-play game records.
type Store struct {
	client *datastore.Client
}

// NewStore dials Datastore for the given GCP project. Callers that
// pass an empty project should not call NewStore at all; main/main.go
// treats persistence as entirely optional.
func NewStore(ctx context.Context, project string) (*Store, error) {
	client, err := datastore.NewClient(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("connecting to datastore project %q: %w", project, err)
	}
	return &Store{client: client}, nil
}

// SaveGame writes a completed game's record under a fresh incomplete
// key, returning the assigned key.
func (s *Store) SaveGame(ctx context.Context, rec *GameRecord) (*datastore.Key, error) {
	key := datastore.IncompleteKey(GameRecordKind, nil)
	return s.client.Put(ctx, key, rec)
}

// Close releases the underlying Datastore client.
func (s *Store) Close() error {
	return s.client.Close()
}
