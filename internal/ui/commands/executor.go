package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"zeromonos/internal/domain"
	"zeromonos/internal/eventbus"
	"zeromonos/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.FormState, bus eventbus.EventBus, bookings BookingService, timeout time.Duration) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:    state,
			Bus:      bus,
			Bookings: bookings,
			Timeout:  timeout,
		},
	}
}

// ExecuteSubmit creates and executes a submit command
func (e *Executor) ExecuteSubmit(req domain.BookingRequest) tea.Cmd {
	return NewSubmitBookingCommand(e.ctx, req).Execute()
}

// ExecuteReload creates and executes a reload command
func (e *Executor) ExecuteReload() tea.Cmd {
	return NewReloadCommand(e.ctx).Execute()
}

// ExecuteLookup creates and executes a look-up command
func (e *Executor) ExecuteLookup(token string) tea.Cmd {
	return NewLookupBookingCommand(e.ctx, token).Execute()
}

// ExecuteCancel creates and executes a cancel command
func (e *Executor) ExecuteCancel(token string) tea.Cmd {
	return NewCancelBookingCommand(e.ctx, token).Execute()
}
