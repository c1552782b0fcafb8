package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokedex/cmd/pokedex/ui"
	"pokedex/internal/pokeapi"
)

// View renders the active page.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.headerView())
	sb.WriteString("\n")

	if m.mode == DetailView {
		sb.WriteString(m.detailView())
	} else {
		sb.WriteString(m.gridView())
	}

	sb.WriteString("\n")
	sb.WriteString(m.footerView())
	return m.styles.App.Render(sb.String())
}

func (m Model) headerView() string {
	title := "Pokédex"
	if m.mode == DetailView && m.detail != nil {
		title = fmt.Sprintf("Pokédex — %s", pokeapi.DisplayName(m.detail.Name))
	}
	header := m.styles.Header.Render(title)

	var status []string
	if m.gen == 0 {
		status = append(status, "All generations")
	} else {
		status = append(status, fmt.Sprintf("Gen %d", m.gen))
	}
	if m.typeFilter != "" {
		status = append(status, m.styles.TypeBadge(m.typeFilter))
	}
	if m.sortMode == SortByName {
		status = append(status, "sorted by name")
	}
	if m.loading {
		status = append(status, m.spinner.View()+"loading")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		header, "  ", m.styles.Muted.Render(strings.Join(status, "  ")))
}

func (m Model) gridView() string {
	var sb strings.Builder

	if m.searching || m.search.Value() != "" {
		sb.WriteString(m.styles.Subtitle.Render("Search: "))
		sb.WriteString(m.search.View())
		sb.WriteString("\n")
	}

	if m.gridErr != "" {
		sb.WriteString(m.styles.Error.Render("Error: " + m.gridErr))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("Press a generation key to retry."))
		sb.WriteString("\n")
		return sb.String()
	}

	if len(m.visible) == 0 {
		if !m.loading {
			sb.WriteString(m.styles.Muted.Render("No Pokémon match the current filters."))
			sb.WriteString("\n")
		}
		return sb.String()
	}

	rows := m.pageBounds()
	for i := rows.start; i < rows.end; i++ {
		s := m.visible[i]
		line := fmt.Sprintf("#%04d  %s", s.ID, pokeapi.DisplayName(s.Name))
		if i == m.cursor {
			sb.WriteString(m.styles.Subtitle.Render("▸ " + line))
		} else {
			sb.WriteString(m.styles.Body.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Muted.Render(
		fmt.Sprintf("%d/%d", m.cursor+1, len(m.visible))))
	sb.WriteString("\n")
	return sb.String()
}

type pageRange struct{ start, end int }

// pageBounds keeps the cursor's page of the list on screen.
func (m Model) pageBounds() pageRange {
	size := m.cfg.UI.PageSize
	if size <= 0 {
		size = 20
	}
	start := (m.cursor / size) * size
	end := start + size
	if end > len(m.visible) {
		end = len(m.visible)
	}
	return pageRange{start: start, end: end}
}

func (m Model) detailView() string {
	if m.detailErr != "" {
		return m.styles.Error.Render("Error: "+m.detailErr) + "\n" +
			m.styles.Muted.Render("Press esc to go back.") + "\n"
	}
	if m.detail == nil {
		return m.styles.Muted.Render("Loading…") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(ui.DetailHeader(m.styles, m.detail, m.shiny, m.female))
	sb.WriteString(m.tabBar())
	sb.WriteString("\n")
	sb.WriteString(m.tabBody())
	return sb.String()
}

func (m Model) tabBar() string {
	var tabs []string
	for t := TabSummary; t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(t.String()))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

// tabBody renders the active tab. Each panel has its own error slot so a
// failed matchup or chain fetch never blanks the rest of the page.
func (m Model) tabBody() string {
	switch m.tab {
	case TabSummary:
		return ui.SummaryPanel(m.styles, m.detail)
	case TabStats:
		return ui.StatsPanel(m.styles, m.detail)
	case TabAbilities:
		return ui.AbilitiesPanel(m.styles, m.detail)
	case TabMoves:
		return ui.MovesPanel(m.styles, m.detail)
	case TabEvolutions:
		if m.evoErr != "" {
			return m.styles.Error.Render("Evolution data unavailable: " + m.evoErr)
		}
		if m.evolution == nil {
			return m.styles.Muted.Render("Loading evolution chain…")
		}
		return ui.EvolutionTree(m.styles, *m.evolution, m.detail.ID)
	case TabMatchups:
		if m.matchupErr != "" {
			return m.styles.Error.Render("Matchup data unavailable: " + m.matchupErr)
		}
		if m.matchups == nil {
			return m.styles.Muted.Render("Loading matchups…")
		}
		return ui.MatchupPanel(m.styles, m.matchups)
	}
	return ""
}

func (m Model) footerView() string {
	if m.mode == DetailView {
		help := "esc back · tab switch · ! shiny"
		if m.detail != nil && m.detail.HasGenderSprites {
			help += " · g gender"
		}
		if m.detail != nil && len(m.detail.Varieties) > 1 {
			help += " · v form"
		}
		return m.styles.Footer.Render(help + " · q quit")
	}
	return m.styles.Footer.Render(
		"1-9 gen · 0 all · t type · s sort · / search · r random · enter open · q quit")
}
