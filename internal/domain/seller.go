package domain

import (
	"github.com/google/uuid"
)

// owns is the single ownership predicate every seller-side check goes
// through, so the rule cannot drift between call sites.
func owns(actorID uuid.UUID, property *Property) bool {
	return property != nil && property.IsOwnedBy(actorID)
}

// Seller is a participant who creates and publishes listings and answers
// offers. Owned properties and received offers are append-managed and only
// exposed as copies.
type Seller struct {
	Profile
	ownedProperties []*Property
	receivedOffers  []*Offer
}

// NewSeller creates a seller with empty collections.
func NewSeller(firstName, lastName, email, username, password string) *Seller {
	return &Seller{
		Profile: *NewProfile(firstName, lastName, email, username, password, RoleSeller),
	}
}

// OwnedProperties returns a copy of the owned-properties collection.
func (s *Seller) OwnedProperties() []*Property {
	out := make([]*Property, len(s.ownedProperties))
	copy(out, s.ownedProperties)
	return out
}

// ReceivedOffers returns a copy of the received-offers collection.
func (s *Seller) ReceivedOffers() []*Offer {
	out := make([]*Offer, len(s.receivedOffers))
	copy(out, s.receivedOffers)
	return out
}

// CreateProperty constructs a listing owned by this seller and tracks it.
func (s *Seller) CreateProperty(title, description, location string, price, size float64, ptype PropertyType) *Property {
	property := NewProperty(s.ID(), title, description, location, price, size, ptype)
	s.ownedProperties = append(s.ownedProperties, property)
	return property
}

// PublishProperty puts an owned listing on the market, adopting it into the
// owned collection if it is not tracked yet. All checks run before any
// mutation so a failure leaves both the collection and the property untouched.
func (s *Seller) PublishProperty(property *Property) error {
	if property == nil {
		return validationf("property is required")
	}
	if !owns(s.ID(), property) {
		return ownershipf("seller can only publish properties they own")
	}
	if !s.tracksProperty(property.ID()) {
		s.ownedProperties = append(s.ownedProperties, property)
	}
	property.Publish()
	return nil
}

// RespondToOffer accepts or rejects an offer targeting one of the seller's
// properties, tracking it in receivedOffers if new. Ownership is verified
// before the offer is tracked or touched.
func (s *Seller) RespondToOffer(offer *Offer, accept bool) error {
	if offer == nil {
		return validationf("offer is required")
	}
	if !s.tracksProperty(offer.PropertyID()) {
		return ownershipf("seller can only respond to offers for their own properties")
	}
	if !s.tracksOffer(offer.ID()) {
		s.receivedOffers = append(s.receivedOffers, offer)
	}
	if accept {
		offer.SetStatus(OfferAccepted)
	} else {
		offer.SetStatus(OfferRejected)
	}
	return nil
}

// tracksProperty reports whether any owned property matches the id.
func (s *Seller) tracksProperty(propertyID uuid.UUID) bool {
	for _, p := range s.ownedProperties {
		if p.ID() == propertyID {
			return true
		}
	}
	return false
}

func (s *Seller) tracksOffer(offerID uuid.UUID) bool {
	for _, o := range s.receivedOffers {
		if o.ID() == offerID {
			return true
		}
	}
	return false
}
