package offers

import (
	"context"
	"errors"
	"time"

	"casavia-backend/internal/domain"
	"casavia-backend/internal/infrastructure/registry"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Service runs the offer negotiation between buyers and sellers over the
// live entities in the registry.
type Service struct {
	Reg *registry.Registry
}

// OfferView is the JSON projection of a live offer.
type OfferView struct {
	OfferID    string    `json:"offer_id"`
	PropertyID string    `json:"property_id"`
	BuyerID    string    `json:"buyer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func viewOf(o *domain.Offer) *OfferView {
	return &OfferView{
		OfferID:    o.ID().String(),
		PropertyID: o.PropertyID().String(),
		BuyerID:    o.BuyerID().String(),
		Amount:     o.Amount(),
		Status:     string(o.Status()),
		CreatedAt:  o.CreatedAt(),
	}
}

// PlaceOffer lets a buyer bid on a property. The created offer is tracked
// in the registry so the seller can respond to it later.
func (s *Service) PlaceOffer(ctx context.Context, buyerID, propertyID uuid.UUID, amount float64) (*OfferView, error) {
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
	offer, err := buyer.PlaceOffer(property, amount)
	if err != nil {
		return nil, err
	}
	s.Reg.PutOffer(offer)
	log.Info().
		Str("offer_id", offer.ID().String()).
		Str("property_id", propertyID.String()).
		Float64("amount", amount).
		Msg("Offer placed")
	return viewOf(offer), nil
}

// RespondToOffer lets the owning seller accept or reject a pending offer.
func (s *Service) RespondToOffer(ctx context.Context, sellerID, offerID uuid.UUID, accept bool) (*OfferView, error) {
	s.Reg.Lock()
	defer s.Reg.Unlock()
	seller, ok := s.Reg.Seller(sellerID)
	if !ok {
		return nil, errors.New("Seller not found")
	}
	offer, ok := s.Reg.Offer(offerID)
	if !ok {
		return nil, errors.New("Offer not found")
	}
	if err := seller.RespondToOffer(offer, accept); err != nil {
		return nil, err
	}
	return viewOf(offer), nil
}

// WithdrawOffer lets the buyer who placed an offer withdraw it.
func (s *Service) WithdrawOffer(ctx context.Context, buyerID, offerID uuid.UUID) (*OfferView, error) {
	s.Reg.Lock()
	defer s.Reg.Unlock()
	buyer, ok := s.Reg.Buyer(buyerID)
	if !ok {
		return nil, errors.New("Buyer not found")
	}
	offer, ok := s.Reg.Offer(offerID)
	if !ok {
		return nil, errors.New("Offer not found")
	}
	if err := buyer.WithdrawOffer(offer); err != nil {
		return nil, err
	}
	return viewOf(offer), nil
}

// GetOffer returns one offer by id.
func (s *Service) GetOffer(ctx context.Context, offerID uuid.UUID) (*OfferView, error) {
	s.Reg.RLock()
	defer s.Reg.RUnlock()
	offer, ok := s.Reg.Offer(offerID)
	if !ok {
		return nil, errors.New("Offer not found")
	}
	return viewOf(offer), nil
}

// ReceivedOffers returns the offers a seller has already responded to or
// tracked, newest first.
func (s *Service) ReceivedOffers(ctx context.Context, sellerID uuid.UUID) ([]*OfferView, error) {
	s.Reg.RLock()
	defer s.Reg.RUnlock()
	seller, ok := s.Reg.Seller(sellerID)
	if !ok {
		return nil, errors.New("Seller not found")
	}
	views := lo.Map(seller.ReceivedOffers(), func(o *domain.Offer, _ int) *OfferView {
		return viewOf(o)
	})
	return views, nil
}
