package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"zeromonos/internal/ui/input/types"
)

// FormMode handles keys while no suggestion panel is open
type FormMode struct {
	keys Bindings
}

// Bindings is the subset of key bindings the modes match against
type Bindings struct {
	Up, Down, Accept, Dismiss key.Binding
	Next, Prev                key.Binding
	SlotPrev, SlotNext        key.Binding
	Submit, Cancel            key.Binding
	Reload, Quit              key.Binding
}

func NewFormMode(keys Bindings) *FormMode {
	return &FormMode{keys: keys}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.FocusAction{Relative: 1}}, true

	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.FocusAction{Relative: -1}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadMunicipalitiesAction{}}, true

	case key.Matches(msg, m.keys.Cancel):
		if ctx.Submitting() {
			return nil, true
		}
		return []types.Action{types.CancelBookingAction{}}, true

	case key.Matches(msg, m.keys.Accept) && ctx.FocusedField() == types.FieldToken:
		if ctx.Submitting() {
			return nil, true
		}
		return []types.Action{types.LookupBookingAction{}}, true

	case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Accept):
		if ctx.Submitting() {
			return nil, true
		}
		return []types.Action{types.SubmitFormAction{}}, true
	}

	// The slot field has no text input; arrows cycle it
	if ctx.FocusedField() == types.FieldSlot {
		switch {
		case key.Matches(msg, m.keys.SlotPrev):
			return []types.Action{types.CycleSlotAction{Step: -1}}, true
		case key.Matches(msg, m.keys.SlotNext):
			return []types.Action{types.CycleSlotAction{Step: 1}}, true
		}
		return nil, true
	}

	return nil, false
}
