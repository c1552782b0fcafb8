// Package browse is the interactive Pokédex browser: a generation/type
// filtered grid of species with a tabbed detail page, built on bubbletea.
package browse

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pokedex/cmd/pokedex/ui"
	"pokedex/internal/config"
	"pokedex/internal/logging"
	"pokedex/internal/pokeapi"
)

// ViewMode determines which page is active.
type ViewMode int

const (
	GridView ViewMode = iota
	DetailView
)

// DetailTab is one tab of the detail page.
type DetailTab int

const (
	TabSummary DetailTab = iota
	TabStats
	TabAbilities
	TabMoves
	TabEvolutions
	TabMatchups
	tabCount
)

func (t DetailTab) String() string {
	switch t {
	case TabSummary:
		return "Summary"
	case TabStats:
		return "Stats"
	case TabAbilities:
		return "Abilities"
	case TabMoves:
		return "Moves"
	case TabEvolutions:
		return "Evolutions"
	case TabMatchups:
		return "Matchups"
	default:
		return "?"
	}
}

// SortMode orders the grid.
type SortMode int

const (
	SortByID SortMode = iota
	SortByName
)

// Model is the browser state.
type Model struct {
	client *pokeapi.Client
	cfg    *config.Config
	styles ui.Styles
	log    *zap.Logger

	mode ViewMode

	// Grid state
	gen        int
	typeFilter string // empty = no type filter
	sortMode   SortMode
	species    []pokeapi.SpeciesSummary // unfiltered generation list
	typeList   []pokeapi.SpeciesSummary // members of the active type filter
	visible    []pokeapi.SpeciesSummary // filtered+sorted+searched view
	cursor     int
	search     textinput.Model
	searching  bool
	gridErr    string

	// Detail state
	detail     *pokeapi.PokemonRecord
	tab        DetailTab
	shiny      bool
	female     bool
	matchups   *pokeapi.TypeRelations
	evolution  *pokeapi.Stage
	detailErr  string
	matchupErr string
	evoErr     string
	content    viewport.Model

	// Async bookkeeping: messages older than reqSeq are stale and dropped.
	reqSeq  int
	loading bool
	spinner spinner.Model

	width  int
	height int
}

// New creates a browser over the given client and config.
func New(client *pokeapi.Client, cfg *config.Config) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	search := textinput.New()
	search.Placeholder = "search by name or number"
	search.CharLimit = 40

	return Model{
		client:  client,
		cfg:     cfg,
		styles:  styles,
		log:     logging.For(logging.CategoryTUI),
		gen:     1,
		loading: true,
		search:  search,
		spinner: sp,
		content: viewport.New(0, 0),
	}
}

// Init starts the spinner and loads the first generation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadGenerationCmd(m.client, m.gen, m.reqSeq))
}
