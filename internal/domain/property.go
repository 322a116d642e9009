package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PropertyType is the listing category label.
type PropertyType string

const (
	TypeApartment  PropertyType = "APARTMENT"
	TypeHouse      PropertyType = "HOUSE"
	TypeVilla      PropertyType = "VILLA"
	TypeStudio     PropertyType = "STUDIO"
	TypeLoft       PropertyType = "LOFT"
	TypeTownhouse  PropertyType = "TOWNHOUSE"
	TypeLand       PropertyType = "LAND"
	TypeCommercial PropertyType = "COMMERCIAL"
	TypeOffice     PropertyType = "OFFICE"
	TypeOther      PropertyType = "OTHER"
)

// PropertyStatus is the listing lifecycle state.
type PropertyStatus string

const (
	StatusForSale   PropertyStatus = "FOR_SALE"
	StatusPending   PropertyStatus = "PENDING"
	StatusSold      PropertyStatus = "SOLD"
	StatusOffMarket PropertyStatus = "OFF_MARKET"
)

// Feature is one named attribute of a property ("bedrooms" -> 3).
// Features keep insertion order, which is why they are not a bare map.
type Feature struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// Property is a listing owned by a seller. All mutation goes through its
// methods; every mutating call funnels through touch() so updatedAt always
// advances. Not safe for concurrent use — the caller serializes access.
type Property struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       string
	description string
	location    string
	price       float64
	size        float64 // square meters
	ptype       PropertyType
	features    []Feature
	featureIdx  map[string]int
	images      []string
	status      PropertyStatus
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProperty creates a listing in OFF_MARKET with the owner bound for life.
func NewProperty(ownerID uuid.UUID, title, description, location string, price, size float64, ptype PropertyType) *Property {
	now := time.Now()
	return &Property{
		id:          uuid.New(),
		ownerID:     ownerID,
		title:       title,
		description: description,
		location:    location,
		price:       price,
		size:        size,
		ptype:       ptype,
		featureIdx:  make(map[string]int),
		status:      StatusOffMarket,
		createdAt:   now,
		updatedAt:   now,
	}
}

func (p *Property) ID() uuid.UUID          { return p.id }
func (p *Property) OwnerID() uuid.UUID     { return p.ownerID }
func (p *Property) Title() string          { return p.title }
func (p *Property) Description() string    { return p.description }
func (p *Property) Location() string       { return p.location }
func (p *Property) Price() float64         { return p.price }
func (p *Property) Size() float64          { return p.size }
func (p *Property) Type() PropertyType     { return p.ptype }
func (p *Property) Status() PropertyStatus { return p.status }
func (p *Property) CreatedAt() time.Time   { return p.createdAt }
func (p *Property) UpdatedAt() time.Time   { return p.updatedAt }

// touch is the single update path for the updatedAt invariant.
func (p *Property) touch() {
	p.updatedAt = time.Now()
}

// Publish puts the listing on the market.
func (p *Property) Publish() {
	p.status = StatusForSale
	p.touch()
}

// Suspend takes the listing off the market without selling it.
func (p *Property) Suspend() {
	p.status = StatusOffMarket
	p.touch()
}

// Close marks the listing sold.
func (p *Property) Close() {
	p.status = StatusSold
	p.touch()
}

// SetStatus sets any status without a transition table. The named lifecycle
// methods are the intended entry points; this stays permissive on purpose.
func (p *Property) SetStatus(status PropertyStatus) {
	p.status = status
	p.touch()
}

// PropertyUpdate carries optional new values for UpdateDetails. Nil fields
// are left unchanged.
type PropertyUpdate struct {
	Title       *string
	Description *string
	Location    *string
	Price       *float64
	Size        *float64
	Type        *PropertyType
}

// UpdateDetails applies each present field; negative price or size is
// ignored for that field. Always bumps updatedAt, even if nothing changed.
func (p *Property) UpdateDetails(in PropertyUpdate) {
	if in.Title != nil {
		p.title = *in.Title
	}
	if in.Description != nil {
		p.description = *in.Description
	}
	if in.Location != nil {
		p.location = *in.Location
	}
	if in.Price != nil && *in.Price >= 0 {
		p.price = *in.Price
	}
	if in.Size != nil && *in.Size >= 0 {
		p.size = *in.Size
	}
	if in.Type != nil {
		p.ptype = *in.Type
	}
	p.touch()
}

// AddFeature upserts a named feature, keeping first-insertion order.
func (p *Property) AddFeature(key string, value interface{}) {
	if i, ok := p.featureIdx[key]; ok {
		p.features[i].Value = value
	} else {
		p.featureIdx[key] = len(p.features)
		p.features = append(p.features, Feature{Key: key, Value: value})
	}
	p.touch()
}

// RemoveFeature deletes a feature if present. Bumps updatedAt either way.
func (p *Property) RemoveFeature(key string) {
	if i, ok := p.featureIdx[key]; ok {
		p.features = append(p.features[:i], p.features[i+1:]...)
		delete(p.featureIdx, key)
		for j := i; j < len(p.features); j++ {
			p.featureIdx[p.features[j].Key] = j
		}
	}
	p.touch()
}

// Features returns a copy of the feature list in insertion order.
func (p *Property) Features() []Feature {
	out := make([]Feature, len(p.features))
	copy(out, p.features)
	return out
}

// Feature returns the value for key and whether it exists.
func (p *Property) Feature(key string) (interface{}, bool) {
	if i, ok := p.featureIdx[key]; ok {
		return p.features[i].Value, true
	}
	return nil, false
}

// AddImage appends an image URL. Blank URLs are a silent no-op and do not
// bump updatedAt.
func (p *Property) AddImage(url string) {
	if strings.TrimSpace(url) == "" {
		return
	}
	p.images = append(p.images, url)
	p.touch()
}

// RemoveImage removes the first matching URL. Bumps updatedAt only when an
// entry was actually removed.
func (p *Property) RemoveImage(url string) {
	for i, img := range p.images {
		if img == url {
			p.images = append(p.images[:i], p.images[i+1:]...)
			p.touch()
			return
		}
	}
}

// Images returns a copy of the image list.
func (p *Property) Images() []string {
	out := make([]string, len(p.images))
	copy(out, p.images)
	return out
}

// PricePerSquareMeter returns price/size, or 0 when size is 0. Zero is the
// defined sentinel, not an error.
func (p *Property) PricePerSquareMeter() float64 {
	if p.size > 0 {
		return p.price / p.size
	}
	return 0.0
}

// IsOwnedBy reports whether userID is the owner.
func (p *Property) IsOwnedBy(userID uuid.UUID) bool {
	return p.ownerID == userID
}

// IsAvailableForSale reports whether the listing is currently FOR_SALE.
func (p *Property) IsAvailableForSale() bool {
	return p.status == StatusForSale
}

// BedroomCount reads the "bedrooms" feature, 0 when absent or not an int.
func (p *Property) BedroomCount() int {
	return p.intFeature("bedrooms")
}

// BathroomCount reads the "bathrooms" feature, 0 when absent or not an int.
func (p *Property) BathroomCount() int {
	return p.intFeature("bathrooms")
}

func (p *Property) intFeature(key string) int {
	v, ok := p.Feature(key)
	if !ok {
		return 0
	}
	// JSON-decoded feature values arrive as float64.
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

// Equal compares by identity only: same id, same property.
func (p *Property) Equal(other *Property) bool {
	return other != nil && p.id == other.id
}
