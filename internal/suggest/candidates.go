// Package suggest implements the municipality suggestion selector: candidate
// storage, filtering, cursor movement and match highlighting. It knows
// nothing about terminals or browsers; hosts drive it through Widget and
// draw it from the State snapshots handed to their render callback.
package suggest

import "strings"

// Candidates is the ordered, de-duplicated list of selectable names.
// It never changes after construction.
type Candidates struct {
	values []string
}

// NewCandidates builds a candidate list from raw names. Names are trimmed,
// blank names are skipped and only the first occurrence of a duplicate is kept.
func NewCandidates(names []string) *Candidates {
	seen := make(map[string]struct{}, len(names))
	values := make([]string, 0, len(names))
	for _, name := range names {
		clean := strings.TrimSpace(name)
		if clean == "" {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		values = append(values, clean)
	}
	return &Candidates{values: values}
}

// Values returns a copy of the candidate names in their original order.
func (c *Candidates) Values() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

// Len returns the number of candidates
func (c *Candidates) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

func (c *Candidates) filter(query string) []Match {
	if c == nil {
		return nil
	}
	return Filter(c.values, query)
}
