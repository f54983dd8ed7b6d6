package suggest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSuggestions bounds how many matches are ever shown at once.
const MaxSuggestions = 10

// Match is one visible suggestion. Start and End delimit, in bytes, the first
// case-insensitive occurrence of the query inside Value.
type Match struct {
	Value string
	Start int
	End   int
}

// Filter returns the candidates whose lowercase form contains the lowercase
// query, in candidate order, capped at MaxSuggestions. The query is plain
// text, so "a.b" only matches the text "a.b".
func Filter(candidates []string, query string) []Match {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var matches []Match
	for _, candidate := range candidates {
		f := fold(candidate)
		i := strings.Index(f.text, needle)
		if i < 0 {
			continue
		}
		start, end := f.span(i, i+len(needle))
		matches = append(matches, Match{Value: candidate, Start: start, End: end})
		if len(matches) == MaxSuggestions {
			break
		}
	}
	return matches
}

// folded is a string lowered rune by rune, which is what strings.ToLower
// produces, together with the original rune bounds behind every folded byte.
// Lowering can change byte lengths ("İ" lowers to a one-byte "i"), so offsets
// found in the folded text have to be mapped back.
type folded struct {
	text  string
	start []int
	end   []int
}

func fold(s string) folded {
	var b strings.Builder
	b.Grow(len(s))
	f := folded{start: make([]int, 0, len(s)), end: make([]int, 0, len(s))}

	for i, r := range s {
		_, size := utf8.DecodeRuneInString(s[i:])
		n, _ := b.WriteRune(unicode.ToLower(r))
		for j := 0; j < n; j++ {
			f.start = append(f.start, i)
			f.end = append(f.end, i+size)
		}
	}
	f.text = b.String()
	return f
}

// span maps the non-empty folded range [from, to) to the original text,
// widened to whole runes.
func (f folded) span(from, to int) (int, int) {
	return f.start[from], f.end[to-1]
}

// occurrences returns every non-overlapping occurrence of the lowered
// needle, left to right, as ranges of the original text.
func (f folded) occurrences(needle string) [][2]int {
	var spans [][2]int
	last := 0
	for pos := 0; pos < len(f.text); {
		i := strings.Index(f.text[pos:], needle)
		if i < 0 {
			break
		}
		from := pos + i
		start, end := f.span(from, from+len(needle))
		if start < last {
			start = last
		}
		if start < end {
			spans = append(spans, [2]int{start, end})
			last = end
		}
		pos = from + len(needle)
	}
	return spans
}
