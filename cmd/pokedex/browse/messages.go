package browse

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"pokedex/internal/pokeapi"
)

// Async results carry the request sequence number they were issued under.
// Update drops any message whose seq is older than the model's current one,
// so a slow superseded fetch cannot overwrite newer state. The fetch itself
// is not cancelled and still populates the session cache.

type generationLoadedMsg struct {
	seq  int
	gen  int
	list []pokeapi.SpeciesSummary
	err  error
}

type typeListLoadedMsg struct {
	seq      int
	typeName string
	list     []pokeapi.SpeciesSummary
	err      error
}

type detailLoadedMsg struct {
	seq int
	rec *pokeapi.PokemonRecord
	err error
}

type matchupsLoadedMsg struct {
	seq int
	rel *pokeapi.TypeRelations
	err error
}

type evolutionLoadedMsg struct {
	seq  int
	root *pokeapi.Stage
	err  error
}

func (m *Model) nextSeq() int {
	m.reqSeq++
	return m.reqSeq
}

func (m *Model) loadGeneration(gen int) tea.Cmd {
	return loadGenerationCmd(m.client, gen, m.nextSeq())
}

// loadGenerationCmd is split out so Init, which runs on a model copy and
// cannot bump the sequence counter, can issue the first load at seq zero.
func loadGenerationCmd(client *pokeapi.Client, gen, seq int) tea.Cmd {
	return func() tea.Msg {
		list, err := client.GenerationList(context.Background(), gen)
		return generationLoadedMsg{seq: seq, gen: gen, list: list, err: err}
	}
}

func (m *Model) loadTypeList(typeName string) tea.Cmd {
	seq := m.nextSeq()
	client := m.client
	return func() tea.Msg {
		list, err := client.TypePokemon(context.Background(), typeName)
		return typeListLoadedMsg{seq: seq, typeName: typeName, list: list, err: err}
	}
}

func (m *Model) loadDetail(identifier string) tea.Cmd {
	seq := m.nextSeq()
	client := m.client
	return func() tea.Msg {
		rec, err := client.Detail(context.Background(), identifier)
		return detailLoadedMsg{seq: seq, rec: rec, err: err}
	}
}

func (m *Model) loadMatchups(types []string) tea.Cmd {
	seq := m.nextSeq()
	client := m.client
	return func() tea.Msg {
		rel, err := client.Matchups(context.Background(), types)
		return matchupsLoadedMsg{seq: seq, rel: rel, err: err}
	}
}

func (m *Model) loadEvolution(rec *pokeapi.PokemonRecord) tea.Cmd {
	seq := m.nextSeq()
	client := m.client
	return func() tea.Msg {
		chain, err := client.EvolutionChainFor(context.Background(), rec.Species)
		if err != nil {
			return evolutionLoadedMsg{seq: seq, err: err}
		}
		root := pokeapi.StageOf(chain.Chain)
		return evolutionLoadedMsg{seq: seq, root: &root}
	}
}

// prefetchPage warms the record cache for the first page of the grid.
// Failures are tolerated per entry; no message is needed back.
func (m *Model) prefetchPage() tea.Cmd {
	pageSize := m.cfg.UI.PageSize
	page := m.visible
	if len(page) > pageSize {
		page = page[:pageSize]
	}
	client := m.client
	snapshot := make([]pokeapi.SpeciesSummary, len(page))
	copy(snapshot, page)
	return func() tea.Msg {
		client.PrefetchDetails(context.Background(), snapshot)
		return nil
	}
}
