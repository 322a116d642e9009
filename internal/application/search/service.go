package search

import (
	"context"
	"encoding/json"

	"casavia-backend/internal/domain"
	"casavia-backend/internal/models"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Service answers listing searches from the snapshot table. Snapshots are
// projected into domain listings and filtered by the criteria matcher, so
// the matching rules live in one place regardless of storage.
type Service struct {
	DB *gorm.DB
}

// CriteriaInput is the wire form of a search: empty slices and nil bounds
// mean unconstrained.
type CriteriaInput struct {
	Locations     []string `json:"locations"`
	PropertyTypes []string `json:"property_types"`
	MinPrice      *float64 `json:"min_price"`
	MaxPrice      *float64 `json:"max_price"`
}

func buildCriteria(in CriteriaInput) (*domain.SearchCriteria, error) {
	b := domain.NewCriteriaBuilder()
	for _, l := range in.Locations {
		b.AddLocation(l)
	}
	for _, t := range in.PropertyTypes {
		b.AddPropertyType(t)
	}
	if in.MinPrice != nil {
		b.MinPrice(*in.MinPrice)
	}
	if in.MaxPrice != nil {
		b.MaxPrice(*in.MaxPrice)
	}
	return b.Build()
}

// Search returns the listings matching the criteria, cheapest first.
func (s *Service) Search(ctx context.Context, in CriteriaInput) ([]domain.Listing, error) {
	criteria, err := buildCriteria(in)
	if err != nil {
		return nil, err
	}
	listings, err := s.loadListings(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SearchListings(listings, criteria), nil
}

// Available returns every listing currently on the market, ordered by
// listing id.
func (s *Service) Available(ctx context.Context) ([]domain.Listing, error) {
	listings, err := s.loadListings(ctx)
	if err != nil {
		return nil, err
	}
	return domain.AvailableListings(listings), nil
}

func (s *Service) loadListings(ctx context.Context) ([]domain.Listing, error) {
	var rows []models.ListingSnapshot
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	listings := lo.Map(rows, func(r models.ListingSnapshot, _ int) domain.Listing {
		return listingOf(r)
	})
	return listings, nil
}

// listingOf projects a snapshot row into the matcher's listing view. The
// feature list becomes the attribute map; unreadable JSON just yields no
// attributes.
func listingOf(r models.ListingSnapshot) domain.Listing {
	var features []domain.Feature
	_ = json.Unmarshal(r.Features, &features)
	var attrs map[string]interface{}
	if len(features) > 0 {
		attrs = make(map[string]interface{}, len(features))
		for _, f := range features {
			attrs[f.Key] = f.Value
		}
	}
	return domain.Listing{
		ListingID:    r.ListingID.String(),
		PropertyID:   r.PropertyID.String(),
		Title:        r.Title,
		Location:     r.Location,
		PropertyType: r.PropertyType,
		Price:        r.Price,
		Available:    r.Status == string(domain.StatusForSale),
		Attributes:   attrs,
	}
}
