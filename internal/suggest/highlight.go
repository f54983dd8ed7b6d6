package suggest

import (
	"html"
	"strings"
)

// Markup turns plain text into a safe display form.
type Markup interface {
	// Escape makes arbitrary text safe to embed.
	Escape(text string) string
	// Emphasize wraps already escaped text in emphasis.
	Emphasize(escaped string) string
}

// HTMLMarkup escapes HTML-significant characters and emphasises with <strong>.
type HTMLMarkup struct{}

func (HTMLMarkup) Escape(text string) string { return html.EscapeString(text) }

func (HTMLMarkup) Emphasize(escaped string) string { return "<strong>" + escaped + "</strong>" }

// Highlight renders text with every occurrence of query emphasised, using
// the same lowercase comparison as Filter. Occurrences are found in a single
// left-to-right pass over the raw text, so overlapping occurrences are marked
// once. Everything, matched or not, goes through m.Escape before it is
// emitted.
func Highlight(text, query string, m Markup) string {
	if query == "" {
		return m.Escape(text)
	}

	locs := fold(text).occurrences(strings.ToLower(query))
	if len(locs) == 0 {
		return m.Escape(text)
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(m.Escape(text[last:loc[0]]))
		b.WriteString(m.Emphasize(m.Escape(text[loc[0]:loc[1]])))
		last = loc[1]
	}
	b.WriteString(m.Escape(text[last:]))
	return b.String()
}
