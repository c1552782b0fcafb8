// pokedex-data builds the offline species snapshot the random generator
// reads: it walks the national dex, fetches each species' combined record
// and evolution chain, and writes the annotated rows to a sqlite database.
//
// Transient failures are retried up to three times with a linearly growing
// backoff; a 404 means the id has no data and the walk continues.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"pokedex/internal/config"
	"pokedex/internal/dex"
	"pokedex/internal/pokeapi"
	"pokedex/internal/snapshot"
)

const (
	maxAttempts  = 3
	retryBackoff = 500 * time.Millisecond
)

func main() {
	cfg := config.DefaultConfig()

	outFlag := flag.String("out", filepath.Join(cfg.DataDir, "snapshot.db"), "snapshot database path")
	baseFlag := flag.String("base", cfg.API.BaseURL, "API base URL")
	fromFlag := flag.Int("from", 1, "first species id")
	toFlag := flag.Int("to", dex.MaxSpeciesID, "last species id")
	timeoutFlag := flag.Duration("timeout", cfg.API.Timeout, "per-request timeout")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := os.MkdirAll(filepath.Dir(*outFlag), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	store, err := snapshot.Open(*outFlag)
	if err != nil {
		log.Fatalf("Failed to open snapshot: %v", err)
	}
	defer store.Close()

	client := pokeapi.New(*baseFlag, *timeoutFlag)

	var written, missing, failed int
	start := time.Now()
	for id := *fromFlag; id <= *toFlag; id++ {
		if ctx.Err() != nil {
			fmt.Println("\nInterrupted; snapshot is partial but usable.")
			break
		}

		row, err := fetchSpecies(ctx, client, id)
		if errors.Is(err, pokeapi.ErrNotFound) {
			missing++
			continue
		}
		if err != nil {
			log.Printf("species %d: %v", id, err)
			failed++
			continue
		}
		if err := store.Upsert(row); err != nil {
			log.Fatalf("Failed to write species %d: %v", id, err)
		}
		written++
		if written%50 == 0 {
			fmt.Printf("  %d species written (at #%04d, %s elapsed)\n",
				written, id, time.Since(start).Round(time.Second))
		}
	}

	fmt.Printf("Done: %d written, %d without data, %d failed, %s\n",
		written, missing, failed, time.Since(start).Round(time.Second))
	if failed > 0 {
		os.Exit(1)
	}
}

// fetchSpecies builds one snapshot row. The combined record is required;
// the evolution chain is optional and falls back to the base-stat guess.
func fetchSpecies(ctx context.Context, client *pokeapi.Client, id int) (snapshot.Species, error) {
	var rec *pokeapi.PokemonRecord
	err := withRetry(ctx, func() error {
		var err error
		rec, err = client.Detail(ctx, strconv.Itoa(id))
		return err
	})
	if err != nil {
		return snapshot.Species{}, err
	}

	row := snapshot.Species{
		ID:               id,
		Name:             rec.BaseName,
		Generation:       dex.GenerationOf(id),
		Types:            rec.Types,
		BaseStatTotal:    rec.BaseStatTotal(),
		HasGenderSprites: rec.HasGenderSprites,
	}
	if sp := rec.Species; sp != nil {
		row.IsLegendary = sp.IsLegendary
		row.IsMythical = sp.IsMythical
		row.IsBaby = sp.IsBaby
		for _, v := range sp.Varieties {
			if !v.IsDefault {
				row.Forms = append(row.Forms, v.Pokemon.Name)
			}
		}
	}

	row.Stage, row.IsFinal, row.StageHeuristic = stageOf(ctx, client, rec)
	return row, nil
}

// stageOf walks the evolution chain to place the species. When the chain
// cannot be fetched it guesses from the base stat total; those rows carry
// the heuristic marker and should not be treated as ground truth.
func stageOf(ctx context.Context, client *pokeapi.Client, rec *pokeapi.PokemonRecord) (stage int, final bool, heuristic bool) {
	if rec.Species != nil {
		var chain *pokeapi.EvolutionChain
		err := withRetry(ctx, func() error {
			var err error
			chain, err = client.EvolutionChainFor(ctx, rec.Species)
			return err
		})
		if err == nil {
			root := pokeapi.StageOf(chain.Chain)
			if s, leaf, ok := findStage(root, rec.BaseName, 1); ok {
				return s, leaf, false
			}
		}
	}

	// No chain data. Bucket by base stat total: most unevolved species sit
	// under 350, middle stages under 480, and fully evolved lines above.
	bst := rec.BaseStatTotal()
	switch {
	case bst < 350:
		return 1, false, true
	case bst < 480:
		return 2, false, true
	default:
		return 3, true, true
	}
}

// findStage locates name in the stage tree, returning its 1-based depth
// and whether it is a leaf.
func findStage(st pokeapi.Stage, name string, depth int) (int, bool, bool) {
	if st.Name == name {
		return depth, len(st.Children) == 0, true
	}
	for _, child := range st.Children {
		if s, leaf, ok := findStage(child, name, depth+1); ok {
			return s, leaf, ok
		}
	}
	return 0, false, false
}

// withRetry runs fn up to maxAttempts times. A 404 is final; other errors
// wait attempt*retryBackoff before the next try.
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || errors.Is(err, pokeapi.ErrNotFound) {
			return err
		}
		if attempt == maxAttempts {
			break
		}
		select {
		case <-time.After(time.Duration(attempt) * retryBackoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
