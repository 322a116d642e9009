package viewings

import (
	"context"
	"errors"
	"time"

	"casavia-backend/internal/domain"
	"casavia-backend/internal/infrastructure/registry"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service schedules and drives viewing appointments over the registry.
type Service struct {
	Reg *registry.Registry
}

// ViewingView is the JSON projection of a live viewing.
type ViewingView struct {
	ViewingID  string    `json:"viewing_id"`
	PropertyID string    `json:"property_id"`
	ListingID  string    `json:"listing_id"`
	UserID     string    `json:"user_id"`
	AgentID    string    `json:"agent_id"`
	Location   string    `json:"location"`
	TimeSlot   time.Time `json:"time_slot"`
	Status     string    `json:"status"`
	Feedback   string    `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func viewOf(v *domain.Viewing) *ViewingView {
	return &ViewingView{
		ViewingID:  v.ID().String(),
		PropertyID: v.PropertyID().String(),
		ListingID:  v.ListingID().String(),
		UserID:     v.UserID().String(),
		AgentID:    v.AgentID().String(),
		Location:   v.Location(),
		TimeSlot:   v.TimeSlot(),
		Status:     string(v.Status()),
		Feedback:   v.Feedback(),
		CreatedAt:  v.CreatedAt(),
	}
}

// RequestViewing books an appointment for a buyer on a property and tracks
// it in the registry.
func (s *Service) RequestViewing(ctx context.Context, buyerID, propertyID, agentID uuid.UUID, timeSlot time.Time) (*ViewingView, error) {
	s.Reg.Lock()
	defer s.Reg.Unlock()
	buyer, ok := s.Reg.Buyer(buyerID)
	if !ok {
		return nil, errors.New("Buyer not found")
	}
	property, ok := s.Reg.Property(propertyID)
	if !ok {
		return nil, errors.New("Property not found")
	}
	viewing, err := buyer.RequestViewing(property, agentID, timeSlot)
	if err != nil {
		return nil, err
	}
	s.Reg.PutViewing(viewing)
	log.Info().
		Str("viewing_id", viewing.ID().String()).
		Str("property_id", propertyID.String()).
		Time("time_slot", timeSlot).
		Msg("Viewing requested")
	return viewOf(viewing), nil
}

// ConfirmViewing marks the appointment confirmed.
func (s *Service) ConfirmViewing(ctx context.Context, viewingID uuid.UUID) (*ViewingView, error) {
	return s.transition(viewingID, func(v *domain.Viewing) error { v.Confirm(); return nil })
}

// CancelViewing marks the appointment cancelled.
func (s *Service) CancelViewing(ctx context.Context, viewingID uuid.UUID) (*ViewingView, error) {
	return s.transition(viewingID, func(v *domain.Viewing) error { v.Cancel(); return nil })
}

// CompleteViewing marks the appointment as having taken place, optionally
// recording feedback in the same call.
func (s *Service) CompleteViewing(ctx context.Context, viewingID uuid.UUID, feedback string) (*ViewingView, error) {
	return s.transition(viewingID, func(v *domain.Viewing) error {
		v.Complete()
		if feedback == "" {
			return nil
		}
		return v.RecordFeedback(feedback)
	})
}

// RescheduleViewing moves the appointment to a new slot.
func (s *Service) RescheduleViewing(ctx context.Context, viewingID uuid.UUID, timeSlot time.Time) (*ViewingView, error) {
	return s.transition(viewingID, func(v *domain.Viewing) error { return v.Reschedule(timeSlot) })
}

// RecordFeedback attaches feedback to a completed viewing.
func (s *Service) RecordFeedback(ctx context.Context, viewingID uuid.UUID, feedback string) (*ViewingView, error) {
	return s.transition(viewingID, func(v *domain.Viewing) error { return v.RecordFeedback(feedback) })
}

// GetViewing returns one viewing by id.
func (s *Service) GetViewing(ctx context.Context, viewingID uuid.UUID) (*ViewingView, error) {
	s.Reg.RLock()
	defer s.Reg.RUnlock()
	viewing, ok := s.Reg.Viewing(viewingID)
	if !ok {
		return nil, errors.New("Viewing not found")
	}
	return viewOf(viewing), nil
}

func (s *Service) transition(viewingID uuid.UUID, apply func(*domain.Viewing) error) (*ViewingView, error) {
	s.Reg.Lock()
	defer s.Reg.Unlock()
	viewing, ok := s.Reg.Viewing(viewingID)
	if !ok {
		return nil, errors.New("Viewing not found")
	}
	if err := apply(viewing); err != nil {
		return nil, err
	}
	return viewOf(viewing), nil
}
