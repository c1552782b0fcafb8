package browse

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pokedex/internal/dex"
	"pokedex/internal/pokeapi"
)

// Update handles messages and key input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.content.Width = msg.Width - 4
		m.content.Height = msg.Height - 8
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case generationLoadedMsg:
		if msg.seq < m.reqSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.gridErr = msg.err.Error()
			return m, nil
		}
		m.gridErr = ""
		m.species = msg.list
		m.rebuildVisible()
		cmd := m.prefetchPage()
		return m, cmd

	case typeListLoadedMsg:
		if msg.seq < m.reqSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.gridErr = msg.err.Error()
			return m, nil
		}
		m.gridErr = ""
		m.typeList = msg.list
		m.rebuildVisible()
		return m, nil

	case detailLoadedMsg:
		if msg.seq < m.reqSeq {
			m.log.Debug("dropping stale detail", zap.Int("seq", msg.seq))
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.detailErr = msg.err.Error()
			return m, nil
		}
		m.detailErr = ""
		m.detail = msg.rec
		m.mode = DetailView
		m.matchups = nil
		m.evolution = nil
		m.matchupErr = ""
		m.evoErr = ""
		return m, nil

	case matchupsLoadedMsg:
		if msg.seq < m.reqSeq {
			return m, nil
		}
		if msg.err != nil {
			m.matchupErr = msg.err.Error()
			return m, nil
		}
		m.matchupErr = ""
		m.matchups = msg.rel
		return m, nil

	case evolutionLoadedMsg:
		if msg.seq < m.reqSeq {
			return m, nil
		}
		if msg.err != nil {
			m.evoErr = msg.err.Error()
			return m, nil
		}
		m.evoErr = ""
		m.evolution = msg.root
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.mode == DetailView {
		return m.handleDetailKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		m.rebuildVisible()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.rebuildVisible()
	return m, cmd
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		gen, _ := strconv.Atoi(key)
		m.gen = gen
		m.loading = true
		cmd := m.loadGeneration(gen)
		return m, cmd

	case "0":
		m.gen = 0
		m.loading = true
		cmd := m.loadGeneration(0)
		return m, cmd

	case "t":
		m.typeFilter = nextType(m.typeFilter)
		if m.typeFilter == "" {
			m.typeList = nil
			m.rebuildVisible()
			return m, nil
		}
		m.loading = true
		cmd := m.loadTypeList(m.typeFilter)
		return m, cmd

	case "s":
		if m.sortMode == SortByID {
			m.sortMode = SortByName
		} else {
			m.sortMode = SortByID
		}
		m.rebuildVisible()
		return m, nil

	case "/":
		m.searching = true
		m.search.Focus()
		return m, nil

	case "r":
		if len(m.visible) > 0 {
			m.cursor = rand.Intn(len(m.visible))
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.cursor < len(m.visible) {
			m.loading = true
			cmd := m.loadDetail(m.visible[m.cursor].Name)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.mode = GridView
		return m, nil

	case "tab", "right":
		m.tab = (m.tab + 1) % tabCount
		cmd := m.tabLoadCmd()
		return m, cmd

	case "shift+tab", "left":
		m.tab = (m.tab + tabCount - 1) % tabCount
		cmd := m.tabLoadCmd()
		return m, cmd

	case "!":
		m.shiny = !m.shiny
		return m, nil

	case "g":
		if m.detail != nil && m.detail.HasGenderSprites {
			m.female = !m.female
		}
		return m, nil

	case "v":
		return m.cycleVariant()

	case "up", "k":
		m.content.LineUp(1)
		return m, nil

	case "down", "j":
		m.content.LineDown(1)
		return m, nil
	}
	return m, nil
}

// tabLoadCmd lazily fetches the data a newly opened tab needs.
func (m *Model) tabLoadCmd() tea.Cmd {
	if m.detail == nil {
		return nil
	}
	switch m.tab {
	case TabMatchups:
		if m.matchups == nil && m.matchupErr == "" {
			return m.loadMatchups(m.detail.Types)
		}
	case TabEvolutions:
		if m.evolution == nil && m.evoErr == "" {
			if m.detail.Species == nil {
				m.evoErr = "no species data for this form"
				return nil
			}
			return m.loadEvolution(m.detail)
		}
	}
	return nil
}

// cycleVariant opens the next alternate form of the current species.
func (m Model) cycleVariant() (tea.Model, tea.Cmd) {
	if m.detail == nil || len(m.detail.Varieties) < 2 {
		return m, nil
	}
	idx := 0
	for i, v := range m.detail.Varieties {
		if v.Identifier == m.detail.Name {
			idx = (i + 1) % len(m.detail.Varieties)
			break
		}
	}
	m.loading = true
	cmd := m.loadDetail(m.detail.Varieties[idx].Identifier)
	return m, cmd
}

// rebuildVisible recomputes the grid view from the generation list, the
// type filter, the search text, and the sort mode.
func (m *Model) rebuildVisible() {
	list := m.species
	if m.typeFilter != "" && m.typeList != nil {
		list = pokeapi.Intersect(list, m.typeList)
	}

	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query != "" {
		out := make([]pokeapi.SpeciesSummary, 0, len(list))
		for _, s := range list {
			if strings.Contains(s.Name, query) || strconv.Itoa(s.ID) == query {
				out = append(out, s)
			}
		}
		list = out
	}

	sorted := make([]pokeapi.SpeciesSummary, len(list))
	copy(sorted, list)
	if m.sortMode == SortByName {
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	} else {
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	}

	m.visible = sorted
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

func nextType(current string) string {
	if current == "" {
		return dex.TypeNames[0]
	}
	for i, t := range dex.TypeNames {
		if t == current {
			if i == len(dex.TypeNames)-1 {
				return "" // wrap back to "no filter"
			}
			return dex.TypeNames[i+1]
		}
	}
	return ""
}
