package types

import tea "github.com/charmbracelet/bubbletea"

// Field identifies a form field
type Field int

const (
	FieldMunicipality Field = iota
	FieldDate
	FieldSlot
	FieldDescription
	FieldToken // booking look-up, below the booking fields
)

// FieldCount is the number of focusable fields
const FieldCount = 5

// Move returns the field step positions away, wrapping around
func (f Field) Move(step int) Field {
	return Field(((int(f)+step)%FieldCount + FieldCount) % FieldCount)
}

func (f Field) String() string {
	switch f {
	case FieldMunicipality:
		return "municipality"
	case FieldDate:
		return "date"
	case FieldSlot:
		return "slot"
	case FieldDescription:
		return "description"
	case FieldToken:
		return "token"
	default:
		return "unknown"
	}
}

// HitKind says what a pointer event landed on
type HitKind int

const (
	HitOutside HitKind = iota
	HitField
	HitSuggestion
	HitPanel // inside the panel but not on a suggestion, e.g. the no-matches row
)

// Hit is the result of resolving screen coordinates against the layout
type Hit struct {
	Kind  HitKind
	Field Field // for HitField
	Index int   // for HitSuggestion, index into the visible set
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	FocusedField() Field
	PanelOpen() bool
	Submitting() bool
	HitTest(x, y int) Hit
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
