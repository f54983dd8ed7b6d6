package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"zeromonos/internal/ui/input/modes"
	"zeromonos/internal/ui/input/types"
)

// Handler routes keyboard and pointer events to actions. The active mode
// follows the panel state, so it never has to be switched explicitly.
type Handler struct {
	form    types.ModeHandler
	suggest types.ModeHandler
}

func New() *Handler {
	bindings := modes.Bindings{
		Up:       Keys.Up,
		Down:     Keys.Down,
		Accept:   Keys.Accept,
		Dismiss:  Keys.Dismiss,
		Next:     Keys.Next,
		Prev:     Keys.Prev,
		SlotPrev: Keys.SlotPrev,
		SlotNext: Keys.SlotNext,
		Submit:   Keys.Submit,
		Cancel:   Keys.Cancel,
		Reload:   Keys.Reload,
		Quit:     Keys.Quit,
	}
	form := modes.NewFormMode(bindings)

	return &Handler{
		form:    form,
		suggest: modes.NewSuggestMode(bindings, form),
	}
}

// Mode returns the handler for the current state
func (h *Handler) Mode(ctx types.Context) types.ModeHandler {
	if ctx.PanelOpen() && ctx.FocusedField() == types.FieldMunicipality {
		return h.suggest
	}
	return h.form
}

// HandleKey returns the actions for a key press and whether the key was
// consumed. Keys that are not consumed belong to the focused text input.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	return h.Mode(ctx).HandleKey(msg, ctx)
}

// HandleMouse resolves a pointer event. Only a left press acts: on a
// suggestion it selects and commits, anywhere outside the municipality
// field and its panel it dismisses the panel, and on another field it
// moves focus there.
func (h *Handler) HandleMouse(msg tea.MouseMsg, ctx types.Context) []types.Action {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	hit := ctx.HitTest(msg.X, msg.Y)
	switch hit.Kind {
	case types.HitSuggestion:
		return []types.Action{types.SelectSuggestionAction{Index: hit.Index}}
	case types.HitPanel:
		return nil
	case types.HitField:
		if hit.Field == types.FieldMunicipality {
			return []types.Action{types.FocusAction{Field: types.FieldMunicipality}}
		}
		return []types.Action{types.DismissSuggestionsAction{}, types.FocusAction{Field: hit.Field}}
	default:
		return []types.Action{types.DismissSuggestionsAction{}}
	}
}
