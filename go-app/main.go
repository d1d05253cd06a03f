// go-app/main.go
// App Engine main package for the scoria move-generation server
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"

	skrafl "github.com/halldorb/scoria"
)

// authHeader is the expected "Authorization" header value, or "" if
// no bearer token is required.
var authHeader string

func withServer(s *skrafl.Server, handle func(*skrafl.Server, http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
			return
		}
		if authHeader != "" {
			got := r.Header.Get("Authorization")
			if got != authHeader {
				http.Error(w, fmt.Sprintf("Authorization header mismatch: got %q", got), http.StatusUnauthorized)
				return
			}
		}
		handle(s, w, r)
	}
}

func movesHandler(s *skrafl.Server, w http.ResponseWriter, r *http.Request) {
	var req skrafl.MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.HandleMovesRequest(w, req)
}

func wordCheckHandler(s *skrafl.Server, w http.ResponseWriter, r *http.Request) {
	var req skrafl.WordCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.HandleWordCheckRequest(w, req)
}

func warmup(w http.ResponseWriter, r *http.Request) {
	log.Println("Warmup request received")
}

func main() {
	log.SetOutput(os.Stderr)
	log.Printf("Moves service starting, Go version %s", runtime.Version())

	rc := skrafl.ParseFlags(".env")
	if rc.AccessKey != "" {
		authHeader = "Bearer " + rc.AccessKey
	}

	lexiconDir := rc.LexicaDir
	kwgPath := lexiconDir + "/" + rc.Lexicon + ".kwg"
	klvPath := lexiconDir + "/" + rc.Lexicon + ".klv16"
	kwgFile, err := os.Open(kwgPath)
	if err != nil {
		log.Fatalf("opening %s: %v", kwgPath, err)
	}
	kwg, err := skrafl.LoadKwg(kwgFile)
	kwgFile.Close()
	if err != nil {
		log.Fatalf("loading %s: %v", kwgPath, err)
	}

	klvFile, err := os.Open(klvPath)
	if err != nil {
		log.Fatalf("opening %s: %v", klvPath, err)
	}
	klv, err := skrafl.LoadKlv(klvFile)
	klvFile.Close()
	if err != nil {
		log.Fatalf("loading %s: %v", klvPath, err)
	}

	server := skrafl.NewServer(kwg, klv, skrafl.EnglishTileSet)
	server.Cfg = rc.Cfg

	http.HandleFunc("/_ah/warmup", warmup)
	http.HandleFunc("/moves", withServer(server, movesHandler))
	http.HandleFunc("/wordcheck", withServer(server, wordCheckHandler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Listening on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}
