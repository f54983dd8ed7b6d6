package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"zeromonos/internal/api"
	"zeromonos/internal/domain"
	"zeromonos/internal/eventbus"
	"zeromonos/internal/ui/state"
	"zeromonos/internal/ui/views"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// BookingService creates, looks up and cancels bookings
type BookingService interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
	Booking(ctx context.Context, token string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, token string) error
}

// CommandContext provides context for command execution
type CommandContext struct {
	State    *state.FormState
	Bus      eventbus.EventBus
	Bookings BookingService
	Timeout  time.Duration
}

// BookingResultMsg carries the outcome of a submission back to the model
type BookingResultMsg struct {
	Booking *domain.Booking
	Err     error
}

// BookingLookupMsg carries the outcome of a token look-up
type BookingLookupMsg struct {
	Token   string
	Booking *domain.Booking
	Err     error
}

// BookingCancelledMsg carries the outcome of a cancellation. Booking is the
// refreshed booking, or nil when it could not be fetched again.
type BookingCancelledMsg struct {
	Token   string
	Booking *domain.Booking
	Err     error
}

// SubmitBookingCommand posts the form to the API
type SubmitBookingCommand struct {
	ctx *CommandContext
	req domain.BookingRequest
}

// NewSubmitBookingCommand creates a new submit command
func NewSubmitBookingCommand(ctx *CommandContext, req domain.BookingRequest) *SubmitBookingCommand {
	return &SubmitBookingCommand{ctx: ctx, req: req}
}

// Execute validates the request locally and, if it passes, sends it
func (c *SubmitBookingCommand) Execute() tea.Cmd {
	if err := c.req.Validate(); err != nil {
		c.ctx.State.SetStatus(views.StatusError, capitalize(err.Error()))
		return nil
	}

	c.ctx.State.Submitting = true
	c.ctx.State.SetStatus(views.StatusInfo, "Submitting booking…")

	bookings, req, timeout := c.ctx.Bookings, c.req, c.ctx.Timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		booking, err := bookings.CreateBooking(ctx, req)
		if err != nil {
			log.Warn("booking rejected", "municipality", req.MunicipalityName, "err", err)
		} else {
			log.Info("booking created", "token", booking.Token)
		}
		return BookingResultMsg{Booking: booking, Err: err}
	}
}

// LookupBookingCommand fetches a booking by token
type LookupBookingCommand struct {
	ctx   *CommandContext
	token string
}

// NewLookupBookingCommand creates a new look-up command
func NewLookupBookingCommand(ctx *CommandContext, token string) *LookupBookingCommand {
	return &LookupBookingCommand{ctx: ctx, token: token}
}

// Execute sends the look-up unless the token is blank
func (c *LookupBookingCommand) Execute() tea.Cmd {
	if c.token == "" {
		c.ctx.State.SetStatus(views.StatusError, "Enter a booking token")
		return nil
	}

	c.ctx.State.Submitting = true
	c.ctx.State.SetStatus(views.StatusInfo, "Looking up booking…")

	bookings, token, timeout := c.ctx.Bookings, c.token, c.ctx.Timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		booking, err := bookings.Booking(ctx, token)
		if err != nil {
			log.Warn("booking look-up failed", "token", token, "err", err)
		}
		return BookingLookupMsg{Token: token, Booking: booking, Err: err}
	}
}

// CancelBookingCommand cancels a booking and fetches it again so the new
// status is shown
type CancelBookingCommand struct {
	ctx   *CommandContext
	token string
}

// NewCancelBookingCommand creates a new cancel command
func NewCancelBookingCommand(ctx *CommandContext, token string) *CancelBookingCommand {
	return &CancelBookingCommand{ctx: ctx, token: token}
}

// Execute sends the cancellation
func (c *CancelBookingCommand) Execute() tea.Cmd {
	c.ctx.State.Submitting = true
	c.ctx.State.SetStatus(views.StatusInfo, "Cancelling booking…")

	bookings, token, timeout := c.ctx.Bookings, c.token, c.ctx.Timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		if err := bookings.CancelBooking(ctx, token); err != nil {
			log.Warn("booking cancellation failed", "token", token, "err", err)
			return BookingCancelledMsg{Token: token, Err: err}
		}
		log.Info("booking cancelled", "token", token)

		booking, err := bookings.Booking(ctx, token)
		if err != nil {
			log.Warn("could not refresh cancelled booking", "token", token, "err", err)
		}
		return BookingCancelledMsg{Token: token, Booking: booking}
	}
}

// ReloadCommand asks the catalog to fetch municipalities again
type ReloadCommand struct {
	ctx *CommandContext
}

// NewReloadCommand creates a new reload command
func NewReloadCommand(ctx *CommandContext) *ReloadCommand {
	return &ReloadCommand{ctx: ctx}
}

// Execute publishes the reload request. While a load is pending it does
// nothing, unless the load has gone unanswered for longer than the request
// timeout and its result must have been lost.
func (c *ReloadCommand) Execute() tea.Cmd {
	if c.ctx.State.Loading && !c.ctx.State.LoadStale(c.ctx.Timeout) {
		return nil
	}
	c.ctx.State.StartLoading()
	c.ctx.State.SetStatus(views.StatusInfo, "Loading municipalities…")
	c.ctx.Bus.Publish(eventbus.MunicipalitiesRequestedEvent{})
	return nil
}

// ErrorMessage returns the user-facing text for a failed request: the
// server's message when there is one.
func ErrorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The booking service did not answer in time"
	}
	return err.Error()
}

// NotFoundMessage returns the text for a look-up that found nothing
func NotFoundMessage(token string, err error) string {
	msg := ErrorMessage(err)
	if msg == "" || strings.HasPrefix(msg, "HTTP ") {
		return fmt.Sprintf("No booking found for token %s", token)
	}
	return msg
}

func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
