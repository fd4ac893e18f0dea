package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows of plain cells under a header line
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with the given title and headers
func NewTable(title string, headers ...string) *Table {
	return &Table{Title: title, Headers: headers}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table. Empty tables render as an empty string.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// padding on both sides
	for i := range widths {
		widths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	cellStyle := styles.Body.Padding(0, 1)
	sep := styles.Muted.Render("|")

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(styles.Title.Render(t.Title))
		b.WriteString("\n")
	}

	writeRow := func(style lipgloss.Style, cells []string) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style.Width(widths[i]).Render(cell))
			if i < len(widths)-1 {
				b.WriteString(sep)
			}
		}
		b.WriteString("\n")
	}

	writeRow(headerStyle, t.Headers)
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	b.WriteString(styles.Muted.Render(strings.Repeat("-", total)))
	b.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(cellStyle, row)
	}
	return b.String()
}
