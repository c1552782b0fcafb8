package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokedex/internal/pokeapi"
)

const statBarWidth = 30

// maxBaseStat scales the stat bars; 255 is the largest base stat in use.
const maxBaseStat = 255

// DetailHeader renders the name/id/type line of a detail view. shiny and
// female only change the label; the terminal shows sprite URLs, not images.
func DetailHeader(styles Styles, rec *pokeapi.PokemonRecord, shiny, female bool) string {
	var sb strings.Builder

	name := pokeapi.DisplayName(rec.Name)
	label := fmt.Sprintf("#%04d  %s", rec.ID, name)
	if shiny {
		label += "  " + styles.Shiny.Render("★ shiny")
	}
	if female {
		label += "  " + styles.Subtitle.Render("♀")
	}
	sb.WriteString(styles.Title.Render(label))
	sb.WriteString("\n")

	var badges []string
	for _, t := range rec.Types {
		badges = append(badges, styles.TypeBadge(t))
	}
	sb.WriteString(strings.Join(badges, " "))
	sb.WriteString("\n")

	if sprite := spriteFor(rec, shiny, female); sprite != "" {
		sb.WriteString(styles.Muted.Render(sprite))
		sb.WriteString("\n")
	}
	return sb.String()
}

// spriteFor picks the sprite URL for the active shiny/gender toggles,
// falling back to the default sprite when a variant is missing.
func spriteFor(rec *pokeapi.PokemonRecord, shiny, female bool) string {
	if rec.Pokemon == nil {
		return rec.Sprite
	}
	s := rec.Pokemon.Sprites
	switch {
	case shiny && female && s.FrontShinyFemale != "":
		return s.FrontShinyFemale
	case shiny && s.FrontShiny != "":
		return s.FrontShiny
	case female && s.FrontFemale != "":
		return s.FrontFemale
	}
	return rec.Sprite
}

// StatsPanel renders the six base stats as labeled bars plus the total.
func StatsPanel(styles Styles, rec *pokeapi.PokemonRecord) string {
	stats := rec.Stats()
	if len(stats) == 0 {
		return styles.Muted.Render("No stat data.")
	}

	bar := lipgloss.NewStyle().Foreground(styles.Theme.Accent)
	var sb strings.Builder
	for _, s := range stats {
		filled := s.Value * statBarWidth / maxBaseStat
		if filled > statBarWidth {
			filled = statBarWidth
		}
		sb.WriteString(fmt.Sprintf("%-8s %4d  %s%s\n",
			s.DisplayName, s.Value,
			bar.Render(strings.Repeat("█", filled)),
			styles.Muted.Render(strings.Repeat("░", statBarWidth-filled))))
	}
	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("%-8s %4d", "Total", rec.BaseStatTotal())))
	sb.WriteString("\n")
	return sb.String()
}

// AbilitiesPanel lists abilities, marking hidden ones.
func AbilitiesPanel(styles Styles, rec *pokeapi.PokemonRecord) string {
	abilities := rec.Abilities()
	if len(abilities) == 0 {
		return styles.Muted.Render("No ability data.")
	}
	var sb strings.Builder
	for _, a := range abilities {
		line := "• " + pokeapi.DisplayName(a.Name)
		if a.Hidden {
			line += " " + styles.Muted.Render("(hidden)")
		}
		sb.WriteString(styles.Body.Render(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

// MovesPanel renders the level-up move table.
func MovesPanel(styles Styles, rec *pokeapi.PokemonRecord) string {
	moves := rec.Moves()
	if len(moves) == 0 {
		return styles.Muted.Render("No level-up moves.")
	}
	table := NewTable("", []string{"Lv", "Move"})
	for _, m := range moves {
		table.AddRow(fmt.Sprintf("%d", m.Level), pokeapi.DisplayName(m.Name))
	}
	return table.View(styles)
}

// SummaryPanel renders the dex descriptions and variant list.
func SummaryPanel(styles Styles, rec *pokeapi.PokemonRecord) string {
	var sb strings.Builder

	flavors := rec.FlavorTexts()
	if len(flavors) == 0 {
		sb.WriteString(styles.Muted.Render("No dex entries."))
		sb.WriteString("\n")
	}
	for _, f := range flavors {
		sb.WriteString(styles.Subtitle.Render(pokeapi.DisplayName(f.Version)))
		sb.WriteString("\n")
		sb.WriteString(styles.Body.Render(f.Text))
		sb.WriteString("\n\n")
	}

	if rec.HasVariants {
		sb.WriteString(styles.Subtitle.Render("Forms"))
		sb.WriteString("\n")
		for _, v := range rec.Varieties {
			marker := "  "
			if v.Identifier == rec.Name {
				marker = "▸ "
			}
			sb.WriteString(styles.Body.Render(marker + v.Name))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
