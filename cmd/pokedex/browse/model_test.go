package browse

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pokedex/internal/config"
	"pokedex/internal/pokeapi"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	client := pokeapi.New(cfg.API.BaseURL, cfg.API.Timeout)
	return New(client, cfg)
}

func summaries(pairs ...any) []pokeapi.SpeciesSummary {
	var out []pokeapi.SpeciesSummary
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, pokeapi.SpeciesSummary{
			ID:   pairs[i].(int),
			Name: pairs[i+1].(string),
		})
	}
	return out
}

func TestStaleGenerationMessageDropped(t *testing.T) {
	m := testModel(t)
	m.species = summaries(1, "bulbasaur")
	m.rebuildVisible()
	m.reqSeq = 5

	next, _ := m.Update(generationLoadedMsg{
		seq:  3,
		list: summaries(152, "chikorita"),
	})
	m = next.(Model)

	if len(m.species) != 1 || m.species[0].Name != "bulbasaur" {
		t.Fatalf("stale message overwrote species list: %+v", m.species)
	}
}

func TestCurrentGenerationMessageApplied(t *testing.T) {
	m := testModel(t)
	m.reqSeq = 5
	m.loading = true

	next, _ := m.Update(generationLoadedMsg{
		seq:  5,
		list: summaries(4, "charmander", 1, "bulbasaur"),
	})
	m = next.(Model)

	if m.loading {
		t.Error("loading flag not cleared")
	}
	if len(m.visible) != 2 {
		t.Fatalf("visible = %d entries, want 2", len(m.visible))
	}
	if m.visible[0].ID != 1 {
		t.Errorf("default sort is by id, got %v first", m.visible[0])
	}
}

func TestGenerationErrorSetsGridError(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(generationLoadedMsg{seq: 1, err: errors.New("boom")})
	m = next.(Model)

	if m.gridErr != "boom" {
		t.Errorf("gridErr = %q, want boom", m.gridErr)
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("grid view does not surface the error")
	}
}

func TestRebuildVisibleTypeIntersection(t *testing.T) {
	m := testModel(t)
	m.species = summaries(1, "bulbasaur", 4, "charmander", 7, "squirtle")
	m.typeFilter = "fire"
	m.typeList = summaries(4, "charmander", 58, "growlithe")

	m.rebuildVisible()

	if len(m.visible) != 1 || m.visible[0].Name != "charmander" {
		t.Fatalf("visible = %+v, want only charmander", m.visible)
	}
}

func TestRebuildVisibleSearch(t *testing.T) {
	m := testModel(t)
	m.species = summaries(1, "bulbasaur", 2, "ivysaur", 3, "venusaur", 25, "pikachu")

	m.search.SetValue("saur")
	m.rebuildVisible()
	if len(m.visible) != 3 {
		t.Errorf("substring search matched %d, want 3", len(m.visible))
	}

	m.search.SetValue("25")
	m.rebuildVisible()
	if len(m.visible) != 1 || m.visible[0].Name != "pikachu" {
		t.Errorf("numeric search = %+v, want pikachu", m.visible)
	}
}

func TestRebuildVisibleSortByName(t *testing.T) {
	m := testModel(t)
	m.species = summaries(7, "squirtle", 1, "bulbasaur", 4, "charmander")
	m.sortMode = SortByName

	m.rebuildVisible()

	got := []string{m.visible[0].Name, m.visible[1].Name, m.visible[2].Name}
	want := []string{"bulbasaur", "charmander", "squirtle"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("name sort = %v, want %v", got, want)
		}
	}
}

func TestRebuildVisibleResetsOutOfRangeCursor(t *testing.T) {
	m := testModel(t)
	m.species = summaries(1, "bulbasaur", 2, "ivysaur")
	m.cursor = 5

	m.rebuildVisible()

	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after shrink", m.cursor)
	}
}

func TestTabCycleWrapsBothWays(t *testing.T) {
	m := testModel(t)
	m.mode = DetailView
	m.detail = &pokeapi.PokemonRecord{Name: "ditto", ID: 132, Types: []string{"normal"}}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	if m.tab != TabMatchups {
		t.Fatalf("shift+tab from Summary = %v, want Matchups", m.tab)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.tab != TabSummary {
		t.Fatalf("tab from Matchups = %v, want Summary", m.tab)
	}
}

func TestPanelErrorsAreIsolated(t *testing.T) {
	m := testModel(t)
	m.mode = DetailView
	m.detail = &pokeapi.PokemonRecord{Name: "ditto", ID: 132, Types: []string{"normal"}}

	next, _ := m.Update(matchupsLoadedMsg{seq: 0, err: errors.New("matchup down")})
	m = next.(Model)

	m.tab = TabMatchups
	if !strings.Contains(m.View(), "matchup down") {
		t.Error("matchup tab does not show its error")
	}

	m.tab = TabStats
	if strings.Contains(m.View(), "matchup down") {
		t.Error("matchup error leaked into the stats tab")
	}
}

func TestGenderToggleRequiresFemaleSprites(t *testing.T) {
	m := testModel(t)
	m.mode = DetailView
	m.detail = &pokeapi.PokemonRecord{Name: "hitmonlee", ID: 106, HasGenderSprites: false}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(Model)
	if m.female {
		t.Error("gender toggled without female sprites")
	}

	m.detail.HasGenderSprites = true
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(Model)
	if !m.female {
		t.Error("gender toggle ignored")
	}
}

func TestNextTypeWrapsToNoFilter(t *testing.T) {
	seen := map[string]bool{}
	current := ""
	for i := 0; i < 19; i++ {
		current = nextType(current)
		if seen[current] {
			t.Fatalf("type %q repeated before wrap", current)
		}
		seen[current] = true
	}
	if current != "" {
		t.Errorf("after full cycle filter = %q, want empty", current)
	}
}

func TestPageBoundsFollowCursor(t *testing.T) {
	m := testModel(t)
	m.cfg.UI.PageSize = 10
	for i := 1; i <= 35; i++ {
		m.species = append(m.species, pokeapi.SpeciesSummary{ID: i, Name: "mon"})
	}
	m.rebuildVisible()

	m.cursor = 25
	r := m.pageBounds()
	if r.start != 20 || r.end != 30 {
		t.Errorf("page = [%d,%d), want [20,30)", r.start, r.end)
	}

	m.cursor = 34
	r = m.pageBounds()
	if r.end != 35 {
		t.Errorf("last page end = %d, want 35", r.end)
	}
}
