package domain

import (
	"time"

	"github.com/google/uuid"
)

// Buyer is a participant who evaluates listings and places offers. Offers
// and viewings it creates are returned to the caller, not retained here —
// tracking them belongs to the counterpart seller or an external store.
type Buyer struct {
	Profile
	budget    float64
	interests []string
}

// NewBuyer creates a buyer with the given budget.
func NewBuyer(firstName, lastName, email, username, password string, budget float64) *Buyer {
	return &Buyer{
		Profile: *NewProfile(firstName, lastName, email, username, password, RoleBuyer),
		budget:  budget,
	}
}

func (b *Buyer) Budget() float64 { return b.budget }

// SetBudget replaces the budget.
func (b *Buyer) SetBudget(budget float64) {
	b.budget = budget
}

// AddInterest records a property-type interest; duplicates are ignored.
func (b *Buyer) AddInterest(propertyType string) bool {
	for _, t := range b.interests {
		if t == propertyType {
			return false
		}
	}
	b.interests = append(b.interests, propertyType)
	return true
}

// RemoveInterest drops an interest; absent entries are not an error.
func (b *Buyer) RemoveInterest(propertyType string) bool {
	for i, t := range b.interests {
		if t == propertyType {
			b.interests = append(b.interests[:i], b.interests[i+1:]...)
			return true
		}
	}
	return false
}

// Interests returns a copy in insertion order.
func (b *Buyer) Interests() []string {
	out := make([]string, len(b.interests))
	copy(out, b.interests)
	return out
}

// PlaceOffer constructs a pending offer bound to the property and this
// buyer. The offer is returned, not retained.
func (b *Buyer) PlaceOffer(property *Property, amount float64) (*Offer, error) {
	if property == nil {
		return nil, validationf("property is required")
	}
	if amount <= 0 {
		return nil, validationf("amount must be positive")
	}
	return NewOffer(property.ID(), b.ID(), amount)
}

// WithdrawOffer transitions an offer this buyer placed to WITHDRAWN.
func (b *Buyer) WithdrawOffer(offer *Offer) error {
	if offer == nil {
		return validationf("offer is required")
	}
	if offer.BuyerID() != b.ID() {
		return ownershipf("buyer can only withdraw their own offers")
	}
	offer.SetStatus(OfferWithdrawn)
	return nil
}

// RequestViewing books an appointment for the property's listing with the
// given agent. The viewing is returned, not retained.
func (b *Buyer) RequestViewing(property *Property, agentID uuid.UUID, timeSlot time.Time) (*Viewing, error) {
	if property == nil {
		return nil, validationf("property is required")
	}
	if timeSlot.IsZero() {
		return nil, validationf("timeSlot is required")
	}
	return NewViewing(property.ID(), property.ID(), b.ID(), agentID, property.Location(), timeSlot)
}
