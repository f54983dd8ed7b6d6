package views

import (
	"strings"

	"zeromonos/internal/suggest"
)

// NoMatchesText is shown when the query matches no municipality
const NoMatchesText = "No municipality found"

// SuggestionRenderer draws the suggestion panel, one line per row
type SuggestionRenderer struct {
	styles *Styles
	markup TerminalMarkup
}

// NewSuggestionRenderer creates a new suggestion renderer
func NewSuggestionRenderer(styles *Styles) *SuggestionRenderer {
	return &SuggestionRenderer{
		styles: styles,
		markup: TerminalMarkup{Emphasis: styles.Highlight},
	}
}

// Render returns the panel rows. A closed panel has none.
func (s *SuggestionRenderer) Render(panel suggest.State) []string {
	if !panel.Open {
		return nil
	}
	indent := strings.Repeat(" ", labelWidth-2)
	if panel.NoMatches {
		return []string{indent + "  " + s.styles.Placeholder.Render(NoMatchesText)}
	}

	start, end := panel.Window.Bounds(len(panel.Visible))
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		marker := "  "
		if i == panel.Cursor {
			marker = s.styles.Cursor.Render("›") + " "
		}
		row := indent + marker + suggest.Highlight(panel.Visible[i].Value, panel.Query, s.markup)

		switch {
		case i == start && start > 0:
			row += s.styles.Scroll.Render("  ↑")
		case i == end-1 && end < len(panel.Visible):
			row += s.styles.Scroll.Render("  ↓")
		}
		rows = append(rows, row)
	}
	return rows
}
