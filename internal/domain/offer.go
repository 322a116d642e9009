package domain

import (
	"time"

	"github.com/google/uuid"
)

// OfferStatus is the negotiation state of a bid.
type OfferStatus string

const (
	OfferPending   OfferStatus = "PENDING"
	OfferAccepted  OfferStatus = "ACCEPTED"
	OfferRejected  OfferStatus = "REJECTED"
	OfferWithdrawn OfferStatus = "WITHDRAWN"
)

// Offer is a monetary bid by a buyer against one property. The amount is
// fixed for the life of the offer; only the status mutates.
type Offer struct {
	id         uuid.UUID
	propertyID uuid.UUID
	buyerID    uuid.UUID
	amount     float64
	createdAt  time.Time
	status     OfferStatus
}

// NewOffer validates its references and amount, then starts PENDING.
func NewOffer(propertyID, buyerID uuid.UUID, amount float64) (*Offer, error) {
	if propertyID == uuid.Nil {
		return nil, validationf("propertyId is required")
	}
	if buyerID == uuid.Nil {
		return nil, validationf("buyerId is required")
	}
	if amount <= 0 {
		return nil, validationf("amount must be positive")
	}
	return &Offer{
		id:         uuid.New(),
		propertyID: propertyID,
		buyerID:    buyerID,
		amount:     amount,
		createdAt:  time.Now(),
		status:     OfferPending,
	}, nil
}

func (o *Offer) ID() uuid.UUID         { return o.id }
func (o *Offer) PropertyID() uuid.UUID { return o.propertyID }
func (o *Offer) BuyerID() uuid.UUID    { return o.buyerID }
func (o *Offer) Amount() float64       { return o.amount }
func (o *Offer) CreatedAt() time.Time  { return o.createdAt }
func (o *Offer) Status() OfferStatus   { return o.status }

// SetStatus is unconstrained: no transition table, any value at any time.
func (o *Offer) SetStatus(status OfferStatus) {
	o.status = status
}

// Equal compares by identity only.
func (o *Offer) Equal(other *Offer) bool {
	return other != nil && o.id == other.id
}
