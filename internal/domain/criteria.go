package domain

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Listing is the projection of a property a search evaluates: the matcher
// only ever reads location, price and type. Attributes carry anything extra
// a listing source wants to expose.
type Listing struct {
	ListingID    string                 `json:"listing_id"`
	PropertyID   string                 `json:"property_id"`
	Title        string                 `json:"title"`
	Location     string                 `json:"location"`
	PropertyType string                 `json:"property_type"`
	Price        float64                `json:"price"`
	Available    bool                   `json:"available"`
	Attributes   map[string]interface{} `json:"attributes,omitempty"`
}

// SearchCriteria is an immutable AND-combined filter over listings. Build it
// with NewCriteriaBuilder; an empty criteria matches everything.
type SearchCriteria struct {
	locations map[string]struct{}
	minPrice  *float64
	maxPrice  *float64
	types     map[string]struct{}
}

// Matches evaluates the three independent conditions. Location and type pass
// vacuously when their sets are empty; an unset price bound is unconstrained.
func (c *SearchCriteria) Matches(l Listing) bool {
	return c.matchesLocation(l) && c.matchesPrice(l) && c.matchesType(l)
}

func (c *SearchCriteria) matchesLocation(l Listing) bool {
	if len(c.locations) == 0 {
		return true
	}
	_, ok := c.locations[l.Location]
	return ok
}

func (c *SearchCriteria) matchesPrice(l Listing) bool {
	if c.minPrice != nil && l.Price < *c.minPrice {
		return false
	}
	if c.maxPrice != nil && l.Price > *c.maxPrice {
		return false
	}
	return true
}

func (c *SearchCriteria) matchesType(l Listing) bool {
	if len(c.types) == 0 {
		return true
	}
	_, ok := c.types[l.PropertyType]
	return ok
}

// CriteriaBuilder accumulates filter conditions. Blank locations and types
// are skipped; values are trimmed and matched exactly (case-sensitive).
type CriteriaBuilder struct {
	locations []string
	minPrice  *float64
	maxPrice  *float64
	types     []string
}

// NewCriteriaBuilder returns an empty builder.
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{}
}

// AddLocation adds an accepted location (trimmed, blanks skipped).
func (b *CriteriaBuilder) AddLocation(location string) *CriteriaBuilder {
	if s := strings.TrimSpace(location); s != "" {
		b.locations = append(b.locations, s)
	}
	return b
}

// MinPrice sets the lower price bound.
func (b *CriteriaBuilder) MinPrice(price float64) *CriteriaBuilder {
	b.minPrice = &price
	return b
}

// MaxPrice sets the upper price bound.
func (b *CriteriaBuilder) MaxPrice(price float64) *CriteriaBuilder {
	b.maxPrice = &price
	return b
}

// AddPropertyType adds an accepted type label (trimmed, blanks skipped).
func (b *CriteriaBuilder) AddPropertyType(propertyType string) *CriteriaBuilder {
	if s := strings.TrimSpace(propertyType); s != "" {
		b.types = append(b.types, s)
	}
	return b
}

// Build validates min <= max (when both set) and freezes the criteria.
func (b *CriteriaBuilder) Build() (*SearchCriteria, error) {
	if b.minPrice != nil && b.maxPrice != nil && *b.minPrice > *b.maxPrice {
		return nil, validationf("min price cannot exceed max price")
	}
	c := &SearchCriteria{
		locations: make(map[string]struct{}, len(b.locations)),
		types:     make(map[string]struct{}, len(b.types)),
		minPrice:  b.minPrice,
		maxPrice:  b.maxPrice,
	}
	for _, l := range b.locations {
		c.locations[l] = struct{}{}
	}
	for _, t := range b.types {
		c.types[t] = struct{}{}
	}
	return c, nil
}

// SearchListings filters listings by criteria (nil matches all) and sorts the
// result by price ascending. The input is never mutated.
func SearchListings(listings []Listing, criteria *SearchCriteria) []Listing {
	out := lo.Filter(listings, func(l Listing, _ int) bool {
		return criteria == nil || criteria.Matches(l)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price < out[j].Price
	})
	return out
}

// AvailableListings keeps only available listings, sorted by listing id.
func AvailableListings(listings []Listing) []Listing {
	out := lo.Filter(listings, func(l Listing, _ int) bool {
		return l.Available
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ListingID < out[j].ListingID
	})
	return out
}

// ListingOf projects a property into the view the matcher consumes. The
// listing id of a live property is its own id.
func ListingOf(p *Property) Listing {
	attrs := make(map[string]interface{}, len(p.Features()))
	for _, f := range p.Features() {
		attrs[f.Key] = f.Value
	}
	return Listing{
		ListingID:    p.ID().String(),
		PropertyID:   p.ID().String(),
		Title:        p.Title(),
		Location:     p.Location(),
		PropertyType: string(p.Type()),
		Price:        p.Price(),
		Available:    p.IsAvailableForSale(),
		Attributes:   attrs,
	}
}
