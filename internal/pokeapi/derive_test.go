package pokeapi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"pokedex/internal/dex"
)

func levelUpMove(name string, levels ...int) RawMove {
	m := RawMove{Move: NamedResource{Name: name}}
	for _, lvl := range levels {
		m.VersionGroupDetails = append(m.VersionGroupDetails, struct {
			LevelLearnedAt  int           `json:"level_learned_at"`
			MoveLearnMethod NamedResource `json:"move_learn_method"`
			VersionGroup    NamedResource `json:"version_group"`
		}{LevelLearnedAt: lvl, MoveLearnMethod: NamedResource{Name: "level-up"}})
	}
	return m
}

func TestMovesFiltersDeduplicatesAndSorts(t *testing.T) {
	tm := levelUpMove("tackle", 1, 1) // duplicate (name, level)
	machine := RawMove{Move: NamedResource{Name: "thunderbolt"}}
	machine.VersionGroupDetails = append(machine.VersionGroupDetails, struct {
		LevelLearnedAt  int           `json:"level_learned_at"`
		MoveLearnMethod NamedResource `json:"move_learn_method"`
		VersionGroup    NamedResource `json:"version_group"`
	}{LevelLearnedAt: 0, MoveLearnMethod: NamedResource{Name: "machine"}})

	rec := &PokemonRecord{Pokemon: &Pokemon{Moves: []RawMove{
		levelUpMove("thunder", 50),
		tm,
		levelUpMove("agility", 1),
		machine,
		levelUpMove("tackle", 5),
	}}}

	want := []MoveEntry{
		{Name: "agility", Level: 1},
		{Name: "tackle", Level: 1},
		{Name: "tackle", Level: 5},
		{Name: "thunder", Level: 50},
	}
	if diff := cmp.Diff(want, rec.Moves()); diff != "" {
		t.Errorf("Moves() mismatch (-want +got):\n%s", diff)
	}
}

func TestStatsCanonicalOrder(t *testing.T) {
	p := &Pokemon{}
	// Deliberately out of order.
	for _, s := range []struct {
		name  string
		value int
	}{
		{"speed", 90}, {"hp", 35}, {"attack", 55},
		{"special-defense", 50}, {"defense", 40}, {"special-attack", 50},
	} {
		p.Stats = append(p.Stats, struct {
			BaseStat int           `json:"base_stat"`
			Stat     NamedResource `json:"stat"`
		}{BaseStat: s.value, Stat: NamedResource{Name: s.name}})
	}
	rec := &PokemonRecord{Pokemon: p}

	stats := rec.Stats()
	var names []string
	for _, s := range stats {
		names = append(names, s.Name)
	}
	assert.Equal(t, dex.StatOrder, names)
	assert.Equal(t, "HP", stats[0].DisplayName)
	assert.Equal(t, 320, rec.BaseStatTotal())
}

func TestFlavorTextsEnglishFirstPerVersion(t *testing.T) {
	s := &Species{}
	entries := []struct {
		text, lang, version string
	}{
		{"Rouge feu.", "fr", "red"},
		{"A strange\nseed was\fplanted.", "en", "red"},
		{"Later red text.", "en", "red"}, // dropped, first wins
		{"Blue text.", "en", "blue"},
	}
	for _, e := range entries {
		s.FlavorTextEntries = append(s.FlavorTextEntries, struct {
			FlavorText string        `json:"flavor_text"`
			Language   NamedResource `json:"language"`
			Version    NamedResource `json:"version"`
		}{FlavorText: e.text, Language: NamedResource{Name: e.lang}, Version: NamedResource{Name: e.version}})
	}
	rec := &PokemonRecord{Species: s}

	want := []FlavorTextEntry{
		{Version: "blue", Text: "Blue text."},
		{Version: "red", Text: "A strange seed was planted."},
	}
	if diff := cmp.Diff(want, rec.FlavorTexts()); diff != "" {
		t.Errorf("FlavorTexts() mismatch (-want +got):\n%s", diff)
	}
}

func TestDerivationsOnDegradedRecord(t *testing.T) {
	rec := &PokemonRecord{}
	assert.Nil(t, rec.Stats())
	assert.Nil(t, rec.Moves())
	assert.Nil(t, rec.Abilities())
	assert.Nil(t, rec.FlavorTexts())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Mr Mime", DisplayName("mr-mime"))
	assert.Equal(t, "Charizard Mega X", DisplayName("charizard-mega-x"))
}

func TestDisplayFormName(t *testing.T) {
	assert.Equal(t, "Base", displayFormName("pikachu", "pikachu"))
	assert.Equal(t, "Mega X", displayFormName("charizard-mega-x", "charizard"))
	assert.Equal(t, "Gmax", displayFormName("pikachu-gmax", "pikachu"))
}
