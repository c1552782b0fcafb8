package pokeapi

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pokedex/internal/dex"
)

var titler = cases.Title(language.English)

// DisplayName turns an API identifier like "mr-mime" into "Mr Mime".
func DisplayName(identifier string) string {
	return titler.String(strings.ReplaceAll(identifier, "-", " "))
}

// StatEntry is one base stat with its UI label.
type StatEntry struct {
	Name        string // raw API key
	DisplayName string
	Value       int
}

// Stats returns the six base stats in the canonical default order. Stats
// the API did not report are omitted rather than zero-filled.
func (r *PokemonRecord) Stats() []StatEntry {
	if r.Pokemon == nil {
		return nil
	}
	byName := make(map[string]int, len(r.Pokemon.Stats))
	for _, s := range r.Pokemon.Stats {
		byName[s.Stat.Name] = s.BaseStat
	}
	out := make([]StatEntry, 0, len(dex.StatOrder))
	for _, name := range dex.StatOrder {
		v, ok := byName[name]
		if !ok {
			continue
		}
		out = append(out, StatEntry{
			Name:        name,
			DisplayName: dex.StatDisplayNames[name],
			Value:       v,
		})
	}
	return out
}

// BaseStatTotal sums the six base stats.
func (r *PokemonRecord) BaseStatTotal() int {
	total := 0
	for _, s := range r.Stats() {
		total += s.Value
	}
	return total
}

// MoveEntry is one level-up move.
type MoveEntry struct {
	Name  string
	Level int
}

// Moves returns the level-up moves: level > 0 only, de-duplicated by
// (name, level), sorted by level then name.
func (r *PokemonRecord) Moves() []MoveEntry {
	if r.Pokemon == nil {
		return nil
	}
	type key struct {
		name  string
		level int
	}
	seen := make(map[key]struct{})
	var out []MoveEntry
	for _, m := range r.Pokemon.Moves {
		for _, d := range m.VersionGroupDetails {
			if d.MoveLearnMethod.Name != "level-up" || d.LevelLearnedAt <= 0 {
				continue
			}
			k := key{m.Move.Name, d.LevelLearnedAt}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, MoveEntry{Name: m.Move.Name, Level: d.LevelLearnedAt})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// AbilityEntry is one ability with its hidden flag.
type AbilityEntry struct {
	Name   string
	Hidden bool
}

// Abilities lists the record's abilities in API order.
func (r *PokemonRecord) Abilities() []AbilityEntry {
	if r.Pokemon == nil {
		return nil
	}
	out := make([]AbilityEntry, 0, len(r.Pokemon.Abilities))
	for _, a := range r.Pokemon.Abilities {
		out = append(out, AbilityEntry{Name: a.Ability.Name, Hidden: a.IsHidden})
	}
	return out
}

// FlavorTextEntry is one English dex description.
type FlavorTextEntry struct {
	Version string
	Text    string
}

// FlavorTexts returns the English flavor texts, de-duplicated by version
// (first occurrence wins), sorted by version name. Control characters the
// games embed in flavor text are normalized to spaces.
func (r *PokemonRecord) FlavorTexts() []FlavorTextEntry {
	if r.Species == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []FlavorTextEntry
	for _, e := range r.Species.FlavorTextEntries {
		if e.Language.Name != "en" {
			continue
		}
		if _, dup := seen[e.Version.Name]; dup {
			continue
		}
		seen[e.Version.Name] = struct{}{}
		out = append(out, FlavorTextEntry{
			Version: e.Version.Name,
			Text:    cleanFlavorText(e.FlavorText),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out
}

func cleanFlavorText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\f", " ")
	s = strings.ReplaceAll(s, "­", "")
	return strings.Join(strings.Fields(s), " ")
}
