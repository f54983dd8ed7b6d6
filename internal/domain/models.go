package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and input format of requested dates
const DateLayout = "2006-01-02"

// TimeSlot is the part of the day a collection is requested for
type TimeSlot string

const (
	SlotMorning TimeSlot = "MORNING" // 06:00-10:00
	SlotMidday  TimeSlot = "MIDDAY"  // 10:00-14:00
	SlotEvening TimeSlot = "EVENING" // 14:00-18:00
	SlotNight   TimeSlot = "NIGHT"   // 18:00-22:00
	SlotAnytime TimeSlot = "ANYTIME"
)

// TimeSlots lists the slots in the order they are offered
var TimeSlots = []TimeSlot{SlotMorning, SlotMidday, SlotEvening, SlotNight, SlotAnytime}

// Next returns the slot after s, or before it when step is negative.
func (s TimeSlot) Next(step int) TimeSlot {
	idx := 0
	for i, slot := range TimeSlots {
		if slot == s {
			idx = i
			break
		}
	}
	n := len(TimeSlots)
	return TimeSlots[((idx+step)%n+n)%n]
}

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	StatusReceived   BookingStatus = "RECEIVED"
	StatusAssigned   BookingStatus = "ASSIGNED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// BookingRequest is what the form submits
type BookingRequest struct {
	MunicipalityName string   `json:"municipalityName"`
	RequestedDate    string   `json:"requestedDate"`
	TimeSlot         TimeSlot `json:"timeSlot"`
	Description      string   `json:"description"`
}

// Validate performs the checks the form can do before hitting the API.
// Everything else (existing municipality, working day, quota) is the
// server's call.
func (r BookingRequest) Validate() error {
	if r.MunicipalityName == "" {
		return fmt.Errorf("municipality is required")
	}
	if _, err := time.Parse(DateLayout, r.RequestedDate); err != nil {
		return fmt.Errorf("requested date must look like YYYY-MM-DD")
	}
	if r.TimeSlot == "" {
		return fmt.Errorf("time slot is required")
	}
	return nil
}

// Booking is a booking as returned by the API
type Booking struct {
	ID               string        `json:"id"`
	Token            string        `json:"token"`
	MunicipalityName string        `json:"municipalityName"`
	Description      string        `json:"description"`
	RequestedDate    string        `json:"requestedDate"`
	TimeSlot         TimeSlot      `json:"timeSlot"`
	Status           BookingStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
	History          []string      `json:"history"`
}
