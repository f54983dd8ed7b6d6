package state

import (
	"time"

	"zeromonos/internal/domain"
	"zeromonos/internal/ui/input/types"
	"zeromonos/internal/ui/views"
)

// FormState holds the booking form state that is not owned by a widget
type FormState struct {
	Focus types.Field
	Slot  domain.TimeSlot

	// Municipality loading
	Loading      bool
	LoadingSince time.Time

	// Submitting is set while a request to the booking API is in flight
	Submitting  bool
	LastBooking *domain.Booking

	// Booking look-up. CancelArmed holds the token a first cancel press
	// asked to confirm.
	Viewed      *domain.Booking
	CancelArmed string

	StatusMessage string
	StatusKind    views.StatusKind
}

// NewFormState creates the initial form state
func NewFormState() *FormState {
	return &FormState{
		Focus:        types.FieldMunicipality,
		Slot:         domain.SlotMorning,
		Loading:      true,
		LoadingSince: time.Now(),
	}
}

// StartLoading marks a municipality load as requested
func (s *FormState) StartLoading() {
	s.Loading = true
	s.LoadingSince = time.Now()
}

// LoadStale reports whether a requested load has gone unanswered for longer
// than timeout. A zero timeout never goes stale.
func (s *FormState) LoadStale(timeout time.Duration) bool {
	return s.Loading && timeout > 0 && time.Since(s.LoadingSince) >= timeout
}

// SetStatus replaces the status line
func (s *FormState) SetStatus(kind views.StatusKind, message string) {
	s.StatusKind = kind
	s.StatusMessage = message
}

// ClearStatus empties the status line
func (s *FormState) ClearStatus() {
	s.SetStatus(views.StatusNone, "")
}
