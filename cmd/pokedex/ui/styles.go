// Package ui provides the lipgloss styling and render helpers for the
// pokedex terminal interface: grid tables, detail panels, the evolution
// tree, and the matchup buckets.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#f4f5f6"),
		Foreground: lipgloss.Color("#1a1c2c"),
		Primary:    lipgloss.Color("#cc0000"), // pokédex red
		Accent:     lipgloss.Color("#3b4cca"), // dex blue
		Muted:      lipgloss.Color("#8a8f98"),
		Border:     lipgloss.Color("#d6dae0"),
		Card:       lipgloss.Color("#ffffff"),
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#16181d"),
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#ff5350"),
		Accent:     lipgloss.Color("#7a8cff"),
		Muted:      lipgloss.Color("#6c7280"),
		Border:     lipgloss.Color("#2a2e38"),
		Card:       lipgloss.Color("#1e222b"),
		IsDark:     true,
	}
}

// ThemeByName resolves a configured theme name, falling back to detection.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses light/dark from COLORFGBG, defaulting to dark.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bg, err := strconv.Atoi(parts[1]); err == nil && bg >= 7 && bg != 8 {
				return LightTheme()
			}
		}
	}
	return DarkTheme()
}

// typeColors maps damage types to their familiar badge colors.
var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#A8A878"),
	"fire":     lipgloss.Color("#F08030"),
	"water":    lipgloss.Color("#6890F0"),
	"electric": lipgloss.Color("#F8D030"),
	"grass":    lipgloss.Color("#78C850"),
	"ice":      lipgloss.Color("#98D8D8"),
	"fighting": lipgloss.Color("#C03028"),
	"poison":   lipgloss.Color("#A040A0"),
	"ground":   lipgloss.Color("#E0C068"),
	"flying":   lipgloss.Color("#A890F0"),
	"psychic":  lipgloss.Color("#F85888"),
	"bug":      lipgloss.Color("#A8B820"),
	"rock":     lipgloss.Color("#B8A038"),
	"ghost":    lipgloss.Color("#705898"),
	"dragon":   lipgloss.Color("#7038F8"),
	"dark":     lipgloss.Color("#705848"),
	"steel":    lipgloss.Color("#B8B8D0"),
	"fairy":    lipgloss.Color("#EE99AC"),
}

// Styles holds the styled components.
type Styles struct {
	Theme Theme

	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style

	Card        lipgloss.Style
	CardCurrent lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Shiny   lipgloss.Style

	Divider lipgloss.Style
}

// NewStyles creates a Styles instance for the theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		CardCurrent: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935")).
			Bold(true),

		Shiny: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFC107")).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// TypeBadge renders a colored badge for a damage type.
func (s Styles) TypeBadge(typeName string) string {
	color, ok := typeColors[strings.ToLower(typeName)]
	if !ok {
		color = s.Theme.Muted
	}
	return lipgloss.NewStyle().
		Background(color).
		Foreground(lipgloss.Color("#1a1c2c")).
		Padding(0, 1).
		Render(strings.ToUpper(typeName))
}
