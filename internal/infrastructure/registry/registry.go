package registry

import (
	"sync"

	"casavia-backend/internal/domain"

	"github.com/google/uuid"
)

// Registry holds the live domain entities. The domain core is written for a
// single serialized caller; the registry's mutex is that caller's
// serialization point — services take Lock/RLock around any access to the
// entities they pull out, so no two requests mutate an entity concurrently.
// Accessors themselves do not lock.
type Registry struct {
	sync.RWMutex

	buyers     map[uuid.UUID]*domain.Buyer
	sellers    map[uuid.UUID]*domain.Seller
	properties map[uuid.UUID]*domain.Property
	offers     map[uuid.UUID]*domain.Offer
	viewings   map[uuid.UUID]*domain.Viewing
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		buyers:     make(map[uuid.UUID]*domain.Buyer),
		sellers:    make(map[uuid.UUID]*domain.Seller),
		properties: make(map[uuid.UUID]*domain.Property),
		offers:     make(map[uuid.UUID]*domain.Offer),
		viewings:   make(map[uuid.UUID]*domain.Viewing),
	}
}

func (r *Registry) PutBuyer(b *domain.Buyer) {
	r.buyers[b.ID()] = b
}

func (r *Registry) Buyer(id uuid.UUID) (*domain.Buyer, bool) {
	b, ok := r.buyers[id]
	return b, ok
}

func (r *Registry) PutSeller(s *domain.Seller) {
	r.sellers[s.ID()] = s
}

func (r *Registry) Seller(id uuid.UUID) (*domain.Seller, bool) {
	s, ok := r.sellers[id]
	return s, ok
}

func (r *Registry) PutProperty(p *domain.Property) {
	r.properties[p.ID()] = p
}

func (r *Registry) Property(id uuid.UUID) (*domain.Property, bool) {
	p, ok := r.properties[id]
	return p, ok
}

func (r *Registry) PutOffer(o *domain.Offer) {
	r.offers[o.ID()] = o
}

func (r *Registry) Offer(id uuid.UUID) (*domain.Offer, bool) {
	o, ok := r.offers[id]
	return o, ok
}

func (r *Registry) PutViewing(v *domain.Viewing) {
	r.viewings[v.ID()] = v
}

func (r *Registry) Viewing(id uuid.UUID) (*domain.Viewing, bool) {
	v, ok := r.viewings[id]
	return v, ok
}

// SellerProperties returns the properties owned by sellerID, in no
// particular order.
func (r *Registry) SellerProperties(sellerID uuid.UUID) []*domain.Property {
	var out []*domain.Property
	for _, p := range r.properties {
		if p.IsOwnedBy(sellerID) {
			out = append(out, p)
		}
	}
	return out
}
