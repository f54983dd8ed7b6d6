package ui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zeromonos/internal/api"
	"zeromonos/internal/config"
	"zeromonos/internal/domain"
	"zeromonos/internal/eventbus"
	inputtypes "zeromonos/internal/ui/input/types"
	"zeromonos/internal/ui/views"
)

var municipalities = []string{
	"Lisboa", "Porto", "Braga", "Coimbra", "Faro", "Évora",
	"Aveiro", "Viseu", "Leiria", "Setúbal", "Guarda", "Beja",
}

// recordingBus records published events and delivers nothing
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) published(t eventbus.EventType) []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

type fakeBookings struct {
	requests []domain.BookingRequest
	booking  *domain.Booking
	err      error

	stored    map[string]*domain.Booking
	cancelled []string
	cancelErr error
}

func (f *fakeBookings) CreateBooking(_ context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	f.requests = append(f.requests, req)
	return f.booking, f.err
}

func (f *fakeBookings) Booking(_ context.Context, token string) (*domain.Booking, error) {
	b, ok := f.stored[token]
	if !ok {
		return nil, &api.Error{StatusCode: 404, Message: "Booking not found for token: " + token}
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookings) CancelBooking(_ context.Context, token string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	b, ok := f.stored[token]
	if !ok {
		return &api.Error{StatusCode: 404, Message: "HTTP 404"}
	}
	f.cancelled = append(f.cancelled, token)
	b.Status = domain.StatusCancelled
	return nil
}

type harness struct {
	t        *testing.T
	m        *Model
	bus      *recordingBus
	bookings *fakeBookings
}

func newHarness(t *testing.T, load bool) *harness {
	cfg := config.DefaultConfig()
	cfg.UI.PanelHeight = 4
	h := &harness{
		t:        t,
		bus:      &recordingBus{},
		bookings: &fakeBookings{booking: &domain.Booking{Token: "tok-123"}},
	}
	h.m = NewModel(h.bus, cfg, h.bookings)
	if load {
		h.m.Update(EventMsg{Event: eventbus.MunicipalitiesLoadedEvent{Names: municipalities}})
	}
	return h
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) press(k tea.KeyType) tea.Cmd {
	_, cmd := h.m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func (h *harness) click(y int) {
	h.m.Update(tea.MouseMsg{X: 20, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func (h *harness) visible() []string {
	var names []string
	for _, match := range h.m.panel.Visible {
		names = append(names, match.Value)
	}
	return names
}

func (h *harness) view() string {
	return ansi.Strip(h.m.View())
}

// run executes a command and flattens batches
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestTypingOpensPanel(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("ra")

	assert.True(t, h.m.PanelOpen())
	assert.Equal(t, []string{"Braga", "Coimbra", "Évora", "Guarda"}, h.visible())
	assert.Equal(t, -1, h.m.panel.Cursor)
	assert.Contains(t, h.view(), "Coimbra")
}

func TestKeyboardCommit(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("ra")
	h.press(tea.KeyDown)
	h.press(tea.KeyDown)
	h.press(tea.KeyEnter)

	assert.Equal(t, "Coimbra", h.m.municipality.Value())
	assert.False(t, h.m.PanelOpen())
	assert.Equal(t, inputtypes.FieldMunicipality, h.m.FocusedField())

	committed := h.bus.published(eventbus.EventMunicipalityCommitted)
	require.Len(t, committed, 1)
	assert.Equal(t, eventbus.MunicipalityCommittedEvent{Name: "Coimbra"}, committed[0])
}

func TestEnterWithoutHighlightDoesNothing(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("ra")

	cmd := h.press(tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.True(t, h.m.PanelOpen())
	assert.Equal(t, "ra", h.m.municipality.Value())
	assert.False(t, h.m.Submitting())
	assert.Empty(t, h.bookings.requests)
}

func TestArrowsAfterCommitReachInput(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("po")
	h.press(tea.KeyDown)
	h.press(tea.KeyEnter)
	require.Equal(t, "Porto", h.m.municipality.Value())

	h.press(tea.KeyDown)
	assert.False(t, h.m.PanelOpen(), "closed panel is not reopened by arrows")
}

func TestEscapeKeepsText(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("ra")
	h.press(tea.KeyDown)
	h.press(tea.KeyEsc)

	assert.False(t, h.m.PanelOpen())
	assert.Equal(t, "ra", h.m.municipality.Value())
	assert.Empty(t, h.bus.published(eventbus.EventMunicipalityCommitted))
	assert.NotContains(t, h.view(), "Coimbra")
}

func TestTypingResetsCursor(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("r")
	h.press(tea.KeyDown)
	h.press(tea.KeyDown)
	require.Equal(t, 1, h.m.panel.Cursor)

	h.typeText("a")
	assert.Equal(t, -1, h.m.panel.Cursor)
	assert.Equal(t, "ra", h.m.panel.Query)
}

func TestClearingQueryClosesPanel(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("b")
	require.True(t, h.m.PanelOpen())

	h.press(tea.KeyBackspace)
	assert.False(t, h.m.PanelOpen())
}

func TestNoMatchesPlaceholder(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("xyz")

	assert.True(t, h.m.PanelOpen())
	assert.True(t, h.m.panel.NoMatches)
	assert.Contains(t, h.view(), views.NoMatchesText)

	h.press(tea.KeyEnter)
	assert.Equal(t, "xyz", h.m.municipality.Value())
}

func TestClickCommitsRow(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("ra")
	h.press(tea.KeyDown) // Braga highlighted

	// panel rows start under the municipality field at row 3
	h.click(3 + 3)

	assert.Equal(t, "Guarda", h.m.municipality.Value())
	assert.False(t, h.m.PanelOpen())
}

func TestClickOutsideDismisses(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("ra")
	h.click(40)

	assert.False(t, h.m.PanelOpen())
	assert.Equal(t, "ra", h.m.municipality.Value())
	assert.Equal(t, inputtypes.FieldMunicipality, h.m.FocusedField())
}

func TestClickOtherFieldDismissesAndFocuses(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("ra")

	layout := views.NewLayout(h.m.panel)
	h.click(layout.FieldRow(inputtypes.FieldDate))

	assert.False(t, h.m.PanelOpen())
	assert.Equal(t, "ra", h.m.municipality.Value())
	assert.Equal(t, inputtypes.FieldDate, h.m.FocusedField())
}

func TestTabDismisses(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("ra")
	h.press(tea.KeyDown)
	h.press(tea.KeyTab)

	assert.False(t, h.m.PanelOpen())
	assert.Equal(t, "ra", h.m.municipality.Value())
	assert.Equal(t, inputtypes.FieldDate, h.m.FocusedField())
}

func TestScrollFollowsCursor(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("r")
	require.Len(t, h.m.panel.Visible, 8)

	for i := 0; i < 5; i++ {
		h.press(tea.KeyDown)
	}
	assert.Equal(t, 4, h.m.panel.Cursor)
	assert.Equal(t, 1, h.m.panel.Window.Offset)
	assert.Contains(t, h.view(), "↑")

	for i := 0; i < 5; i++ {
		h.press(tea.KeyUp)
	}
	assert.Equal(t, -1, h.m.panel.Cursor)
	assert.Equal(t, 0, h.m.panel.Window.Offset)
}

func TestInertUntilLoaded(t *testing.T) {
	h := newHarness(t, false)
	h.typeText("ra")
	assert.False(t, h.m.PanelOpen())

	h.m.Update(EventMsg{Event: eventbus.MunicipalitiesLoadFailedEvent{Err: &api.Error{StatusCode: 503, Message: "down"}}})
	assert.Contains(t, h.view(), "Could not load municipalities")

	h.press(tea.KeyCtrlR)
	assert.Len(t, h.bus.published(eventbus.EventMunicipalitiesRequested), 1)

	h.press(tea.KeyCtrlR)
	assert.Len(t, h.bus.published(eventbus.EventMunicipalitiesRequested), 1, "no second request while loading")

	h.m.Update(EventMsg{Event: eventbus.MunicipalitiesLoadedEvent{Names: municipalities}})
	h.typeText("x")
	h.press(tea.KeyBackspace)
	assert.True(t, h.m.PanelOpen())
	assert.NotContains(t, h.view(), "Could not load")
}

func TestSlotCycling(t *testing.T) {
	h := newHarness(t, true)
	h.press(tea.KeyTab)
	h.press(tea.KeyTab)
	require.Equal(t, inputtypes.FieldSlot, h.m.FocusedField())

	h.press(tea.KeyRight)
	assert.Equal(t, domain.SlotMidday, h.m.state.Slot)
	h.press(tea.KeyLeft)
	h.press(tea.KeyLeft)
	assert.Equal(t, domain.SlotAnytime, h.m.state.Slot)
}

func (h *harness) fillForm() {
	h.typeText("po")
	h.press(tea.KeyDown)
	h.press(tea.KeyEnter)
	h.press(tea.KeyTab)
	h.typeText("2026-11-02")
	h.press(tea.KeyTab)
	h.press(tea.KeyRight)
	h.press(tea.KeyTab)
	h.typeText("sofa")
}

func TestSubmitBooking(t *testing.T) {
	h := newHarness(t, true)
	h.fillForm()

	cmd := h.press(tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, h.m.Submitting())

	// enter again while the request is in flight
	assert.Nil(t, h.press(tea.KeyEnter))

	msgs := run(cmd)
	require.Len(t, msgs, 1)
	h.m.Update(msgs[0])

	require.Len(t, h.bookings.requests, 1)
	assert.Equal(t, domain.BookingRequest{
		MunicipalityName: "Porto",
		RequestedDate:    "2026-11-02",
		TimeSlot:         domain.SlotMidday,
		Description:      "sofa",
	}, h.bookings.requests[0])

	assert.False(t, h.m.Submitting())
	assert.Contains(t, h.view(), "tok-123")
	assert.Equal(t, views.StatusSuccess, h.m.state.StatusKind)
	assert.Empty(t, h.m.municipality.Value())
	assert.Equal(t, inputtypes.FieldMunicipality, h.m.FocusedField())
	assert.Len(t, h.bus.published(eventbus.EventBookingCreated), 1)
	assert.Equal(t, "tok-123", h.m.token.Value(), "new token is ready to look up")
}

func TestSubmitSuccessRefocusesInput(t *testing.T) {
	h := newHarness(t, true)
	h.fillForm()

	msgs := run(h.press(tea.KeyCtrlS))
	require.Len(t, msgs, 1)
	_, cmd := h.m.Update(msgs[0])

	assert.NotNil(t, cmd, "cursor blink for the refocused field")
	assert.True(t, h.m.municipality.Focused())
	assert.False(t, h.m.description.Focused())
}

func TestSubmitShowsServerMessage(t *testing.T) {
	h := newHarness(t, true)
	h.bookings.booking = nil
	h.bookings.err = &api.Error{StatusCode: 400, Message: "Requested date must be a working day"}
	h.fillForm()

	msgs := run(h.press(tea.KeyCtrlS))
	require.Len(t, msgs, 1)
	h.m.Update(msgs[0])

	assert.Equal(t, views.StatusError, h.m.state.StatusKind)
	assert.Contains(t, h.view(), "Requested date must be a working day")
	assert.Equal(t, "Porto", h.m.municipality.Value(), "form is kept for correction")
}

func TestSubmitValidatesLocally(t *testing.T) {
	h := newHarness(t, true)

	cmd := h.press(tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Empty(t, h.bookings.requests)
	assert.Equal(t, views.StatusError, h.m.state.StatusKind)
	assert.Equal(t, "Municipality is required", h.m.state.StatusMessage)
}

func TestQuit(t *testing.T) {
	h := newHarness(t, true)
	msgs := run(h.press(tea.KeyCtrlC))
	assert.Contains(t, msgs, tea.Msg(tea.QuitMsg{}))
}

func TestViewRowsMatchHitTest(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("ra")

	lines := strings.Split(h.view(), "\n")
	layout := views.NewLayout(h.m.panel)
	for i, name := range h.visible() {
		hit := layout.HitTest(0, 3+i)
		require.Equal(t, inputtypes.HitSuggestion, hit.Kind)
		assert.Equal(t, i, hit.Index)
		assert.Contains(t, lines[3+i], name)
	}
}

func (h *harness) lookUp(token string) {
	h.press(tea.KeyShiftTab)
	require.Equal(h.t, inputtypes.FieldToken, h.m.FocusedField())
	h.typeText(token)

	msgs := run(h.press(tea.KeyEnter))
	require.Len(h.t, msgs, 1)
	h.m.Update(msgs[0])
}

func storedBooking() *domain.Booking {
	return &domain.Booking{
		Token:            "abc-1",
		MunicipalityName: "Braga",
		RequestedDate:    "2026-11-02",
		TimeSlot:         domain.SlotEvening,
		Status:           domain.StatusReceived,
		Description:      "old fridge",
	}
}

func TestLookupShowsBooking(t *testing.T) {
	h := newHarness(t, true)
	h.bookings.stored = map[string]*domain.Booking{"abc-1": storedBooking()}

	h.lookUp("abc-1")

	require.NotNil(t, h.m.state.Viewed)
	assert.False(t, h.m.Submitting())
	view := h.view()
	assert.Contains(t, view, "Booking abc-1")
	assert.Contains(t, view, "Braga")
	assert.Contains(t, view, "old fridge")
	assert.Empty(t, h.bookings.requests, "enter on the token field does not submit")
}

func TestLookupNotFoundShowsServerMessage(t *testing.T) {
	h := newHarness(t, true)
	h.bookings.stored = map[string]*domain.Booking{"abc-1": storedBooking()}
	h.lookUp("abc-1")
	require.NotNil(t, h.m.state.Viewed)

	h.m.token.SetValue("")
	h.typeText("nope")
	msgs := run(h.press(tea.KeyEnter))
	require.Len(t, msgs, 1)
	h.m.Update(msgs[0])

	assert.Nil(t, h.m.state.Viewed, "stale details are cleared")
	assert.Equal(t, views.StatusError, h.m.state.StatusKind)
	assert.Equal(t, "Booking not found for token: nope", h.m.state.StatusMessage)
	assert.NotContains(t, h.view(), "Booking abc-1")
}

func TestLookupBlankToken(t *testing.T) {
	h := newHarness(t, true)
	h.press(tea.KeyShiftTab)

	assert.Nil(t, h.press(tea.KeyEnter))
	assert.Equal(t, views.StatusError, h.m.state.StatusKind)
	assert.False(t, h.m.Submitting())
}

func TestCancelNeedsConfirmation(t *testing.T) {
	h := newHarness(t, true)
	h.bookings.stored = map[string]*domain.Booking{"abc-1": storedBooking()}
	h.lookUp("abc-1")

	assert.Nil(t, h.press(tea.KeyCtrlX))
	assert.Equal(t, views.StatusWarning, h.m.state.StatusKind)
	assert.Contains(t, h.m.state.StatusMessage, "ctrl+x again")
	assert.Empty(t, h.bookings.cancelled)

	msgs := run(h.press(tea.KeyCtrlX))
	require.Len(t, msgs, 1)
	h.m.Update(msgs[0])

	assert.Equal(t, []string{"abc-1"}, h.bookings.cancelled)
	assert.Equal(t, domain.StatusCancelled, h.m.state.Viewed.Status)
	assert.Equal(t, views.StatusSuccess, h.m.state.StatusKind)
	assert.Contains(t, h.view(), string(domain.StatusCancelled))
}

func TestCancelConfirmationResetByOtherKeys(t *testing.T) {
	h := newHarness(t, true)
	h.bookings.stored = map[string]*domain.Booking{"abc-1": storedBooking()}
	h.lookUp("abc-1")

	h.press(tea.KeyCtrlX)
	h.typeText("x")
	assert.Nil(t, h.press(tea.KeyCtrlX), "typing disarms the first press")
	assert.Empty(t, h.bookings.cancelled)
}

func TestCancelWithoutLookup(t *testing.T) {
	h := newHarness(t, true)

	assert.Nil(t, h.press(tea.KeyCtrlX))
	assert.Equal(t, views.StatusWarning, h.m.state.StatusKind)
	assert.Empty(t, h.bookings.cancelled)
}

func TestCancelFailureKeepsDetails(t *testing.T) {
	h := newHarness(t, true)
	h.bookings.stored = map[string]*domain.Booking{"abc-1": storedBooking()}
	h.bookings.cancelErr = &api.Error{StatusCode: 409, Message: "Booking already completed"}
	h.lookUp("abc-1")

	h.press(tea.KeyCtrlX)
	msgs := run(h.press(tea.KeyCtrlX))
	require.Len(t, msgs, 1)
	h.m.Update(msgs[0])

	require.NotNil(t, h.m.state.Viewed)
	assert.Equal(t, domain.StatusReceived, h.m.state.Viewed.Status)
	assert.Equal(t, "Booking already completed", h.m.state.StatusMessage)
}
