package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"zeromonos/internal/eventbus"
	"zeromonos/internal/suggest"
	"zeromonos/internal/ui/state"
	"zeromonos/internal/ui/views"
)

func TestLoadedMakesWidgetReady(t *testing.T) {
	s := state.NewFormState()
	w := suggest.New()
	h := NewEventHandler(s, w)

	h.HandleEvent(eventbus.MunicipalitiesLoadedEvent{Names: []string{"Porto"}})

	assert.True(t, w.Ready())
	assert.False(t, s.Loading)
	assert.Equal(t, views.StatusNone, s.StatusKind)
}

func TestFallbackWarns(t *testing.T) {
	s := state.NewFormState()
	h := NewEventHandler(s, suggest.New())

	h.HandleEvent(eventbus.MunicipalitiesLoadedEvent{Names: []string{"Porto"}, Fallback: true})

	assert.Equal(t, views.StatusWarning, s.StatusKind)
}

func TestLoadFailureKeepsWidgetInert(t *testing.T) {
	s := state.NewFormState()
	w := suggest.New()
	h := NewEventHandler(s, w)

	h.HandleEvent(eventbus.MunicipalitiesLoadFailedEvent{Err: errors.New("connection refused")})

	assert.False(t, w.Ready())
	assert.False(t, s.Loading)
	assert.Equal(t, views.StatusError, s.StatusKind)
	assert.Contains(t, s.StatusMessage, "connection refused")
	assert.Contains(t, s.StatusMessage, "ctrl+r")
}

func TestErrorEventShowsMessage(t *testing.T) {
	s := state.NewFormState()
	h := NewEventHandler(s, suggest.New())

	h.HandleEvent(eventbus.ErrorEvent{Message: "config could not be loaded", Err: errors.New("bad toml")})

	assert.Equal(t, views.StatusError, s.StatusKind)
	assert.Equal(t, "config could not be loaded", s.StatusMessage)
}
