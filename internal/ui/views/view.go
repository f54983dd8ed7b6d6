package views

import (
	"fmt"
	"strings"

	"zeromonos/internal/domain"
	"zeromonos/internal/suggest"
	"zeromonos/internal/ui/input/types"
)

// StatusKind selects how the status line is styled
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusSuccess
	StatusWarning
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Focus        types.Field
	Municipality string // rendered text input
	Date         string
	Slot         domain.TimeSlot
	Description  string
	Token        string
	Booking      *domain.Booking // looked-up booking, if any
	Panel        suggest.State
	Status       string
	StatusKind   StatusKind
	Help         string
}

const labelWidth = 14

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	suggestions *SuggestionRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		suggestions: NewSuggestionRenderer(styles),
	}
}

// Render produces the complete view. Row positions must agree with Layout.
func (r *Renderer) Render(state ViewState) string {
	lines := []string{
		r.styles.Title.Render("zeromonos · book a collection"),
		"",
		r.field("Municipality", state.Focus == types.FieldMunicipality, state.Municipality),
	}
	lines = append(lines, r.suggestions.Render(state.Panel)...)
	lines = append(lines,
		r.field("Date", state.Focus == types.FieldDate, state.Date),
		r.field("Time slot", state.Focus == types.FieldSlot, r.slot(state.Slot, state.Focus == types.FieldSlot)),
		r.field("Description", state.Focus == types.FieldDescription, state.Description),
		r.field("Look up token", state.Focus == types.FieldToken, state.Token),
		"",
	)
	if state.Booking != nil {
		lines = append(lines, r.booking(state.Booking)...)
		lines = append(lines, "")
	}

	if status := r.status(state.Status, state.StatusKind); status != "" {
		lines = append(lines, status, "")
	}
	if state.Help != "" {
		lines = append(lines, r.styles.Help.Render(state.Help))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) field(label string, focused bool, value string) string {
	style := r.styles.Label
	if focused {
		style = r.styles.LabelFocused
	}
	return style.Render(fmt.Sprintf("%-*s", labelWidth, label)) + value
}

// booking renders a looked-up booking. Everything in it comes from the
// server and is sanitised.
func (r *Renderer) booking(b *domain.Booking) []string {
	detail := func(label, value string) string {
		return r.styles.Label.Render(fmt.Sprintf("%-*s", labelWidth, label)) + r.styles.Value.Render(Sanitize(value))
	}
	lines := []string{
		r.styles.Title.Render("Booking " + Sanitize(b.Token)),
		detail("Municipality", b.MunicipalityName),
		detail("Date", b.RequestedDate),
		detail("Time slot", string(b.TimeSlot)),
		detail("Status", string(b.Status)),
	}
	if b.Description != "" {
		lines = append(lines, detail("Description", b.Description))
	}
	if !b.CreatedAt.IsZero() {
		lines = append(lines, detail("Created", b.CreatedAt.Local().Format("2006-01-02 15:04")))
	}
	if !b.UpdatedAt.IsZero() {
		lines = append(lines, detail("Updated", b.UpdatedAt.Local().Format("2006-01-02 15:04")))
	}
	for i, entry := range b.History {
		label := ""
		if i == 0 {
			label = "History"
		}
		lines = append(lines, r.styles.Label.Render(fmt.Sprintf("%-*s", labelWidth, label))+r.styles.Dim.Render("· "+Sanitize(entry)))
	}
	return lines
}

func (r *Renderer) slot(slot domain.TimeSlot, focused bool) string {
	text := string(slot)
	if focused {
		return "‹ " + r.styles.Value.Bold(true).Render(text) + " ›"
	}
	return "  " + r.styles.Value.Render(text)
}

func (r *Renderer) status(message string, kind StatusKind) string {
	message = Sanitize(message)
	if message == "" {
		return ""
	}
	switch kind {
	case StatusSuccess:
		return r.styles.StatusSuccess.Render(message)
	case StatusWarning:
		return r.styles.StatusWarning.Render(message)
	case StatusError:
		return r.styles.StatusError.Render(message)
	default:
		return r.styles.StatusLoading.Render(message)
	}
}
