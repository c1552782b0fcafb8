package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a simple table component for rendering static data such as the
// move list and the shiny log.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates a new Table with the given title and headers.
func NewTable(title string, headers []string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}

	headerStyle := styles.Subtitle
	var header []string
	for i, h := range t.Headers {
		header = append(header, pad(h, colWidths[i]))
	}
	sb.WriteString(headerStyle.Render(strings.Join(header, "  ")))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		var cells []string
		for i, cell := range row {
			if i < len(colWidths) {
				cells = append(cells, pad(cell, colWidths[i]))
			}
		}
		sb.WriteString(styles.Body.Render(strings.Join(cells, "  ")))
		sb.WriteString("\n")
	}

	return sb.String()
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
