package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"zeromonos/internal/api"
	"zeromonos/internal/config"
	"zeromonos/internal/domain"
	"zeromonos/internal/eventbus"
	"zeromonos/internal/suggest"
	"zeromonos/internal/ui/commands"
	"zeromonos/internal/ui/handlers"
	"zeromonos/internal/ui/input"
	inputtypes "zeromonos/internal/ui/input/types"
	"zeromonos/internal/ui/state"
	"zeromonos/internal/ui/views"
)

// Model is the booking form
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.FormState

	width  int
	height int
	help   help.Model

	// Municipality selector; panel is the last state it rendered
	widget *suggest.Widget
	panel  suggest.State

	municipality textinput.Model
	date         textinput.Model
	description  textinput.Model
	token        textinput.Model

	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, bookings commands.BookingService) *Model {
	formState := state.NewFormState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        formState,
		help:         help.New(),
		municipality: newTextInput("start typing a municipality", 64),
		date:         newTextInput("YYYY-MM-DD", 10),
		description:  newTextInput("what should be collected", 200),
		token:        newTextInput("token of an existing booking", 64),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
	}

	m.widget = suggest.New(
		suggest.WithOnCommit(m.commitMunicipality),
		suggest.WithRenderer(func(s suggest.State) { m.panel = s }),
		suggest.WithWindowHeight(cfg.UI.PanelHeight),
	)
	m.panel = m.widget.State()

	m.eventHandler = handlers.NewEventHandler(formState, m.widget)
	m.cmdExecutor = commands.NewExecutor(formState, bus, bookings, cfg.API.Timeout())
	formState.SetStatus(views.StatusInfo, "Loading municipalities…")

	m.municipality.Focus()

	return m
}

func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// FocusedField implements inputtypes.Context
func (m *Model) FocusedField() inputtypes.Field { return m.state.Focus }

// PanelOpen implements inputtypes.Context
func (m *Model) PanelOpen() bool { return m.widget.IsOpen() }

// Submitting implements inputtypes.Context
func (m *Model) Submitting() bool { return m.state.Submitting }

// HitTest implements inputtypes.Context against what was last drawn
func (m *Model) HitTest(x, y int) inputtypes.Hit {
	return views.NewLayout(m.panel).HitTest(x, y)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case EventMsg:
		m.eventHandler.HandleEvent(msg.Event)
		return m, nil

	case commands.BookingResultMsg:
		return m, m.handleBookingResult(msg)

	case commands.BookingLookupMsg:
		m.handleLookupResult(msg)
		return m, nil

	case commands.BookingCancelledMsg:
		m.handleCancelResult(msg)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.processActions(m.inputHandler.HandleMouse(msg, m))
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, consumed := m.inputHandler.HandleKey(msg, m)
	cmd := m.processActions(actions)
	if consumed {
		return cmd
	}
	m.state.CancelArmed = ""
	return tea.Batch(cmd, m.updateFocusedInput(msg))
}

// updateFocusedInput passes a message to the focused text input. Any change
// to the municipality text is a new query for the selector.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.state.Focus {
	case inputtypes.FieldMunicipality:
		before := m.municipality.Value()
		m.municipality, cmd = m.municipality.Update(msg)
		if after := m.municipality.Value(); after != before {
			m.widget.SetQuery(after)
		}
	case inputtypes.FieldDate:
		m.date, cmd = m.date.Update(msg)
	case inputtypes.FieldDescription:
		m.description, cmd = m.description.Update(msg)
	case inputtypes.FieldToken:
		m.token, cmd = m.token.Update(msg)
	}
	return cmd
}

func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if _, ok := action.(inputtypes.CancelBookingAction); !ok {
			m.state.CancelArmed = ""
		}
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.MoveSuggestionAction:
		if a.Delta > 0 {
			m.widget.MoveDown()
		} else {
			m.widget.MoveUp()
		}

	case inputtypes.CommitSuggestionAction:
		m.widget.Commit()

	case inputtypes.SelectSuggestionAction:
		m.widget.Select(a.Index)

	case inputtypes.DismissSuggestionsAction:
		m.widget.Dismiss()

	case inputtypes.FocusAction:
		target := a.Field
		if a.Relative != 0 {
			target = m.state.Focus.Move(a.Relative)
		}
		return m.focus(target)

	case inputtypes.CycleSlotAction:
		m.state.Slot = m.state.Slot.Next(a.Step)

	case inputtypes.SubmitFormAction:
		return m.cmdExecutor.ExecuteSubmit(m.request())

	case inputtypes.LookupBookingAction:
		return m.cmdExecutor.ExecuteLookup(strings.TrimSpace(m.token.Value()))

	case inputtypes.CancelBookingAction:
		return m.cancelViewed()

	case inputtypes.ReloadMunicipalitiesAction:
		return m.cmdExecutor.ExecuteReload()

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		log.Warn("ui: unhandled action", "action", action.Type())
	}
	return nil
}

// focus moves keyboard focus. Leaving the municipality field dismisses its panel.
func (m *Model) focus(field inputtypes.Field) tea.Cmd {
	if field != inputtypes.FieldMunicipality {
		m.widget.Dismiss()
	}
	m.state.Focus = field

	m.municipality.Blur()
	m.date.Blur()
	m.description.Blur()
	m.token.Blur()

	switch field {
	case inputtypes.FieldMunicipality:
		return m.municipality.Focus()
	case inputtypes.FieldDate:
		return m.date.Focus()
	case inputtypes.FieldDescription:
		return m.description.Focus()
	case inputtypes.FieldToken:
		return m.token.Focus()
	}
	return nil
}

// commitMunicipality writes a committed suggestion into the field. It runs
// before the selector closes its panel.
func (m *Model) commitMunicipality(name string) {
	m.municipality.SetValue(name)
	m.municipality.CursorEnd()
	m.bus.Publish(eventbus.MunicipalityCommittedEvent{Name: name})
}

func (m *Model) request() domain.BookingRequest {
	return domain.BookingRequest{
		MunicipalityName: strings.TrimSpace(m.municipality.Value()),
		RequestedDate:    strings.TrimSpace(m.date.Value()),
		TimeSlot:         m.state.Slot,
		Description:      strings.TrimSpace(m.description.Value()),
	}
}

func (m *Model) handleBookingResult(msg commands.BookingResultMsg) tea.Cmd {
	m.state.Submitting = false
	if msg.Err != nil {
		m.state.SetStatus(views.StatusError, commands.ErrorMessage(msg.Err))
		return nil
	}

	m.state.LastBooking = msg.Booking
	m.state.SetStatus(views.StatusSuccess, fmt.Sprintf("Booking created. Token: %s", msg.Booking.Token))
	m.bus.Publish(eventbus.BookingCreatedEvent{Booking: *msg.Booking})

	m.municipality.Reset()
	m.date.Reset()
	m.description.Reset()
	m.state.Slot = domain.SlotMorning
	m.widget.Dismiss()

	// The new token is ready to be looked up
	m.token.SetValue(m.state.LastBooking.Token)
	m.token.CursorEnd()
	return m.focus(inputtypes.FieldMunicipality)
}

// cancelViewed cancels the looked-up booking. The first press only asks
// for confirmation.
func (m *Model) cancelViewed() tea.Cmd {
	viewed := m.state.Viewed
	if viewed == nil {
		m.state.SetStatus(views.StatusWarning, "Look up a booking before cancelling it")
		return nil
	}
	if m.state.CancelArmed != viewed.Token {
		m.state.CancelArmed = viewed.Token
		m.state.SetStatus(views.StatusWarning, fmt.Sprintf("Press ctrl+x again to cancel booking %s", viewed.Token))
		return nil
	}
	m.state.CancelArmed = ""
	return m.cmdExecutor.ExecuteCancel(viewed.Token)
}

func (m *Model) handleLookupResult(msg commands.BookingLookupMsg) {
	m.state.Submitting = false
	switch {
	case api.IsNotFound(msg.Err):
		m.state.Viewed = nil
		m.state.SetStatus(views.StatusError, commands.NotFoundMessage(msg.Token, msg.Err))
	case msg.Err != nil:
		m.state.SetStatus(views.StatusError, commands.ErrorMessage(msg.Err))
	default:
		m.state.Viewed = msg.Booking
		m.state.ClearStatus()
	}
}

func (m *Model) handleCancelResult(msg commands.BookingCancelledMsg) {
	m.state.Submitting = false
	if msg.Err != nil {
		m.state.SetStatus(views.StatusError, commands.ErrorMessage(msg.Err))
		return
	}

	switch {
	case msg.Booking != nil:
		m.state.Viewed = msg.Booking
	case m.state.Viewed != nil && m.state.Viewed.Token == msg.Token:
		m.state.Viewed.Status = domain.StatusCancelled
	}
	m.state.SetStatus(views.StatusSuccess, fmt.Sprintf("Booking %s cancelled", msg.Token))
}

// View renders the form
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:        m.width,
		Focus:        m.state.Focus,
		Municipality: m.municipality.View(),
		Date:         m.date.View(),
		Slot:         m.state.Slot,
		Description:  m.description.View(),
		Token:        m.token.View(),
		Booking:      m.state.Viewed,
		Panel:        m.panel,
		Status:       m.state.StatusMessage,
		StatusKind:   m.state.StatusKind,
		Help:         m.help.View(input.Keys),
	})
}
