package views

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TerminalMarkup renders suggestions for the terminal. Escape removes
// anything the terminal would interpret, so candidate names coming from the
// backend can never move the cursor, recolour the screen or break a line.
type TerminalMarkup struct {
	Emphasis lipgloss.Style
}

func (m TerminalMarkup) Escape(text string) string {
	return Sanitize(text)
}

func (m TerminalMarkup) Emphasize(escaped string) string {
	return m.Emphasis.Render(escaped)
}

// Sanitize strips ANSI escape sequences and control characters
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(text))
}
