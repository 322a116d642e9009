package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ViewingStatus is the scheduling state of an appointment.
type ViewingStatus string

const (
	ViewingBooked      ViewingStatus = "BOOKED"
	ViewingConfirmed   ViewingStatus = "CONFIRMED"
	ViewingCancelled   ViewingStatus = "CANCELLED"
	ViewingCompleted   ViewingStatus = "COMPLETED"
	ViewingRescheduled ViewingStatus = "RESCHEDULED"
)

// Viewing is a scheduled inspection appointment linking a requesting user,
// a property and its listing, and an agent. The time slot is reschedulable;
// the reference ids are fixed at creation.
type Viewing struct {
	id         uuid.UUID
	propertyID uuid.UUID
	listingID  uuid.UUID
	userID     uuid.UUID
	agentID    uuid.UUID
	location   string
	timeSlot   time.Time
	status     ViewingStatus
	feedback   string
	createdAt  time.Time
}

// NewViewing fails fast unless every reference and the initial slot are
// present. Status starts BOOKED.
func NewViewing(propertyID, listingID, userID, agentID uuid.UUID, location string, timeSlot time.Time) (*Viewing, error) {
	if propertyID == uuid.Nil {
		return nil, validationf("propertyId is required")
	}
	if listingID == uuid.Nil {
		return nil, validationf("listingId is required")
	}
	if userID == uuid.Nil {
		return nil, validationf("userId is required")
	}
	if agentID == uuid.Nil {
		return nil, validationf("agentId is required")
	}
	if strings.TrimSpace(location) == "" {
		return nil, validationf("location is required")
	}
	if timeSlot.IsZero() {
		return nil, validationf("timeSlot is required")
	}
	return &Viewing{
		id:         uuid.New(),
		propertyID: propertyID,
		listingID:  listingID,
		userID:     userID,
		agentID:    agentID,
		location:   location,
		timeSlot:   timeSlot,
		status:     ViewingBooked,
		createdAt:  time.Now(),
	}, nil
}

func (v *Viewing) ID() uuid.UUID         { return v.id }
func (v *Viewing) PropertyID() uuid.UUID { return v.propertyID }
func (v *Viewing) ListingID() uuid.UUID  { return v.listingID }
func (v *Viewing) UserID() uuid.UUID     { return v.userID }
func (v *Viewing) AgentID() uuid.UUID    { return v.agentID }
func (v *Viewing) Location() string      { return v.location }
func (v *Viewing) TimeSlot() time.Time   { return v.timeSlot }
func (v *Viewing) Status() ViewingStatus { return v.status }
func (v *Viewing) Feedback() string      { return v.feedback }
func (v *Viewing) CreatedAt() time.Time  { return v.createdAt }

// SetStatus is unconstrained, like the other status setters in this package.
func (v *Viewing) SetStatus(status ViewingStatus) {
	v.status = status
}

// Confirm marks the appointment confirmed by the agent.
func (v *Viewing) Confirm() {
	v.status = ViewingConfirmed
}

// Cancel marks the appointment cancelled.
func (v *Viewing) Cancel() {
	v.status = ViewingCancelled
}

// Complete marks the appointment as having taken place.
func (v *Viewing) Complete() {
	v.status = ViewingCompleted
}

// Reschedule moves the appointment to a new slot and marks it RESCHEDULED.
func (v *Viewing) Reschedule(timeSlot time.Time) error {
	if timeSlot.IsZero() {
		return validationf("timeSlot is required")
	}
	v.timeSlot = timeSlot
	v.status = ViewingRescheduled
	return nil
}

// RecordFeedback attaches feedback text. Only completed viewings can carry
// feedback.
func (v *Viewing) RecordFeedback(text string) error {
	if v.status != ViewingCompleted {
		return statef("feedback requires a completed viewing, current status is %s", v.status)
	}
	v.feedback = text
	return nil
}

// Equal compares by identity only.
func (v *Viewing) Equal(other *Viewing) bool {
	return other != nil && v.id == other.id
}
