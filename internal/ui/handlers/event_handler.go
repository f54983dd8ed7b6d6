package handlers

import (
	"fmt"

	"github.com/charmbracelet/log"

	"zeromonos/internal/eventbus"
	"zeromonos/internal/suggest"
	"zeromonos/internal/ui/state"
	"zeromonos/internal/ui/views"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state  *state.FormState
	widget *suggest.Widget
}

// NewEventHandler creates a new event handler
func NewEventHandler(formState *state.FormState, widget *suggest.Widget) *EventHandler {
	return &EventHandler{
		state:  formState,
		widget: widget,
	}
}

// HandleEvent processes domain events
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.MunicipalitiesLoadedEvent:
		h.widget.Load(e.Names)
		h.state.Loading = false
		if e.Fallback {
			h.state.SetStatus(views.StatusWarning, "Booking service unreachable, using the built-in municipality list")
		} else if h.state.StatusKind == views.StatusError || h.state.StatusKind == views.StatusInfo {
			h.state.ClearStatus()
		}

	case eventbus.MunicipalitiesLoadFailedEvent:
		h.state.Loading = false
		h.state.SetStatus(views.StatusError, fmt.Sprintf("Could not load municipalities: %v (ctrl+r to retry)", e.Err))

	case eventbus.ErrorEvent:
		log.Error("ui: error event", "message", e.Message, "err", e.Err)
		h.state.SetStatus(views.StatusError, e.Message)

	default:
		log.Debug("ui: ignoring event", "event", event.Type())
	}
}
