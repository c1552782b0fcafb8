// Package snapshot is the offline species snapshot: a sqlite database
// written by the pokedex-data prefetch tool and read by the random
// generator as its annotation source when working offline.
package snapshot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS species (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	generation INTEGER NOT NULL,
	types TEXT NOT NULL,
	is_legendary INTEGER NOT NULL DEFAULT 0,
	is_mythical INTEGER NOT NULL DEFAULT 0,
	is_baby INTEGER NOT NULL DEFAULT 0,
	stage INTEGER NOT NULL DEFAULT 1,
	is_final INTEGER NOT NULL DEFAULT 0,
	stage_heuristic INTEGER NOT NULL DEFAULT 0,
	bst INTEGER NOT NULL DEFAULT 0,
	has_gender_sprites INTEGER NOT NULL DEFAULT 0,
	forms TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_species_generation ON species(generation);
`

// Species is one snapshot row.
type Species struct {
	ID          int
	Name        string
	Generation  int
	Types       []string
	IsLegendary bool
	IsMythical  bool
	IsBaby      bool
	// Stage is the evolution stage (1-based); IsFinal marks a fully evolved
	// species. StageHeuristic is set when the prefetch tool could not walk
	// the chain and fell back to the base-stat-total guess — treat those
	// rows as approximate.
	Stage            int
	IsFinal          bool
	StageHeuristic   bool
	BaseStatTotal    int
	HasGenderSprites bool
	Forms            []string // alternate form identifiers
}

// Store wraps the sqlite snapshot database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	for _, stmt := range strings.Split(migrationsSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate snapshot: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Upsert inserts or replaces one species row.
func (s *Store) Upsert(sp Species) error {
	types, err := json.Marshal(sp.Types)
	if err != nil {
		return err
	}
	forms, err := json.Marshal(sp.Forms)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO species (id, name, generation, types, is_legendary, is_mythical,
			is_baby, stage, is_final, stage_heuristic, bst, has_gender_sprites, forms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			generation = excluded.generation,
			types = excluded.types,
			is_legendary = excluded.is_legendary,
			is_mythical = excluded.is_mythical,
			is_baby = excluded.is_baby,
			stage = excluded.stage,
			is_final = excluded.is_final,
			stage_heuristic = excluded.stage_heuristic,
			bst = excluded.bst,
			has_gender_sprites = excluded.has_gender_sprites,
			forms = excluded.forms`,
		sp.ID, sp.Name, sp.Generation, string(types), sp.IsLegendary, sp.IsMythical,
		sp.IsBaby, sp.Stage, sp.IsFinal, sp.StageHeuristic, sp.BaseStatTotal,
		sp.HasGenderSprites, string(forms))
	if err != nil {
		return fmt.Errorf("upsert species %d: %w", sp.ID, err)
	}
	return nil
}

// All returns every snapshot row ordered by id.
func (s *Store) All() ([]Species, error) {
	rows, err := s.db.Query(`
		SELECT id, name, generation, types, is_legendary, is_mythical, is_baby,
			stage, is_final, stage_heuristic, bst, has_gender_sprites, forms
		FROM species ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query species: %w", err)
	}
	defer rows.Close()

	var out []Species
	for rows.Next() {
		var sp Species
		var types, forms string
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Generation, &types,
			&sp.IsLegendary, &sp.IsMythical, &sp.IsBaby, &sp.Stage, &sp.IsFinal,
			&sp.StageHeuristic, &sp.BaseStatTotal, &sp.HasGenderSprites, &forms); err != nil {
			return nil, fmt.Errorf("scan species: %w", err)
		}
		if err := json.Unmarshal([]byte(types), &sp.Types); err != nil {
			return nil, fmt.Errorf("species %d types: %w", sp.ID, err)
		}
		if err := json.Unmarshal([]byte(forms), &sp.Forms); err != nil {
			return nil, fmt.Errorf("species %d forms: %w", sp.ID, err)
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// Count reports how many species rows the snapshot holds.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM species`).Scan(&n)
	return n, err
}
