package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventMunicipalitiesRequested  EventType = "MunicipalitiesRequested"
	EventMunicipalitiesLoaded     EventType = "MunicipalitiesLoaded"
	EventMunicipalitiesLoadFailed EventType = "MunicipalitiesLoadFailed"
	EventMunicipalityCommitted    EventType = "MunicipalityCommitted"
	EventBookingCreated           EventType = "BookingCreated"
	EventError                    EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// MunicipalitiesRequestedEvent asks the catalog to (re)load the candidate list
type MunicipalitiesRequestedEvent struct{}

func (e MunicipalitiesRequestedEvent) Type() EventType { return EventMunicipalitiesRequested }

// MunicipalitiesLoadedEvent carries the candidate list once it is available
type MunicipalitiesLoadedEvent struct {
	Names    []string
	Fallback bool // true when the built-in list was used
}

func (e MunicipalitiesLoadedEvent) Type() EventType { return EventMunicipalitiesLoaded }

// MunicipalitiesLoadFailedEvent is emitted when the candidate list could not be loaded
type MunicipalitiesLoadFailedEvent struct {
	Err error
}

func (e MunicipalitiesLoadFailedEvent) Type() EventType { return EventMunicipalitiesLoadFailed }

// MunicipalityCommittedEvent is emitted when a suggestion is committed into the form
type MunicipalityCommittedEvent struct {
	Name string
}

func (e MunicipalityCommittedEvent) Type() EventType { return EventMunicipalityCommitted }

// BookingCreatedEvent is emitted after the API accepted a booking
type BookingCreatedEvent struct {
	Booking Booking
}

func (e BookingCreatedEvent) Type() EventType { return EventBookingCreated }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
