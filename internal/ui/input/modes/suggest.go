package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"zeromonos/internal/ui/input/types"
)

// SuggestMode handles keys while the municipality suggestion panel is open.
// Arrows and enter never reach the text input in this mode.
type SuggestMode struct {
	keys Bindings
	form *FormMode
}

func NewSuggestMode(keys Bindings, form *FormMode) *SuggestMode {
	return &SuggestMode{keys: keys, form: form}
}

func (m *SuggestMode) Name() string {
	return "suggest"
}

func (m *SuggestMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.MoveSuggestionAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.MoveSuggestionAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Accept):
		return []types.Action{types.CommitSuggestionAction{}}, true

	case key.Matches(msg, m.keys.Dismiss):
		return []types.Action{types.DismissSuggestionsAction{}}, true

	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Submit):
		// Leaving the field closes the panel first
		actions, consumed := m.form.HandleKey(msg, ctx)
		return append([]types.Action{types.DismissSuggestionsAction{}}, actions...), consumed
	}

	return m.form.HandleKey(msg, ctx)
}
