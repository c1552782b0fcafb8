package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokedex/internal/pokeapi"
)

const evolutionArrow = "↓"

// EvolutionTree renders a chain depth-first from the root. A node with one
// child stacks vertically with a connecting arrow; multiple children render
// side by side in a branch row. currentID highlights the open Pokémon.
func EvolutionTree(styles Styles, root pokeapi.Stage, currentID int) string {
	return renderStage(styles, root, currentID)
}

func renderStage(styles Styles, st pokeapi.Stage, currentID int) string {
	var sb strings.Builder
	sb.WriteString(stageCard(styles, st, currentID))

	switch len(st.Children) {
	case 0:
	case 1:
		child := st.Children[0]
		sb.WriteString("\n")
		sb.WriteString(arrowLine(styles, child.Trigger))
		sb.WriteString("\n")
		sb.WriteString(renderStage(styles, child, currentID))
	default:
		sb.WriteString("\n")
		sb.WriteString(arrowLine(styles, ""))
		sb.WriteString("\n")
		var branches []string
		for _, child := range st.Children {
			branches = append(branches, renderStage(styles, child, currentID))
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, branches...))
	}
	return sb.String()
}

// stageCard renders one species card: name plus dex number, highlighted
// when it is the Pokémon currently open.
func stageCard(styles Styles, st pokeapi.Stage, currentID int) string {
	label := fmt.Sprintf("%s\n#%04d", pokeapi.DisplayName(st.Name), st.ID)
	if st.ID == currentID {
		return styles.CardCurrent.Render(label)
	}
	return styles.Card.Render(label)
}

func arrowLine(styles Styles, trigger string) string {
	if trigger == "" {
		return styles.Muted.Render(evolutionArrow)
	}
	return styles.Muted.Render(evolutionArrow + " " + trigger)
}

// CountArrows returns the number of connecting arrows a rendered chain
// contains: one per parent-to-children link.
func CountArrows(st pokeapi.Stage) int {
	if len(st.Children) == 0 {
		return 0
	}
	n := 1
	for _, c := range st.Children {
		n += CountArrows(c)
	}
	return n
}
