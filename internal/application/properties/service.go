package properties

import (
	"context"
	"encoding/json"
	"errors"

	"casavia-backend/internal/domain"
	"casavia-backend/internal/infrastructure/registry"
	"casavia-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service drives the property lifecycle. The live Property in the registry
// is authoritative; a ListingSnapshot row is kept in sync for the search
// source whenever the property has been published.
type Service struct {
	Reg *registry.Registry
	DB  *gorm.DB
}

// PropertyView is the JSON projection of a live property.
type PropertyView struct {
	PropertyID        string           `json:"property_id"`
	OwnerID           string           `json:"owner_id"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Location          string           `json:"location"`
	Price             float64          `json:"price"`
	SizeSqm           float64          `json:"size_sqm"`
	PricePerSqm       float64          `json:"price_per_sqm"`
	PropertyType      string           `json:"property_type"`
	Status            string           `json:"status"`
	Features          []domain.Feature `json:"features"`
	Images            []string         `json:"images"`
	Bedrooms          int              `json:"bedrooms"`
	Bathrooms         int              `json:"bathrooms"`
	AvailableForSale  bool             `json:"available_for_sale"`
	CreatedAt         string           `json:"createdAt"`
	UpdatedAt         string           `json:"updatedAt"`
}

func viewOf(p *domain.Property) *PropertyView {
	return &PropertyView{
		PropertyID:       p.ID().String(),
		OwnerID:          p.OwnerID().String(),
		Title:            p.Title(),
		Description:      p.Description(),
		Location:         p.Location(),
		Price:            p.Price(),
		SizeSqm:          p.Size(),
		PricePerSqm:      p.PricePerSquareMeter(),
		PropertyType:     string(p.Type()),
		Status:           string(p.Status()),
		Features:         p.Features(),
		Images:           p.Images(),
		Bedrooms:         p.BedroomCount(),
		Bathrooms:        p.BathroomCount(),
		AvailableForSale: p.IsAvailableForSale(),
		CreatedAt:        p.CreatedAt().Format("2006-01-02T15:04:05.000Z07:00"),
		UpdatedAt:        p.UpdatedAt().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// CreatePropertyInput for create-property.
type CreatePropertyInput struct {
	Title        string
	Description  string
	Location     string
	Price        float64
	SizeSqm      float64
	PropertyType string
}

// CreateProperty constructs a listing owned by the seller, OFF_MARKET.
func (s *Service) CreateProperty(ctx context.Context, sellerID uuid.UUID, in CreatePropertyInput) (*PropertyView, error) {
	if in.Title == "" || in.Location == "" {
		return nil, errors.New("Title and location are required")
	}
	if in.Price < 0 || in.SizeSqm < 0 {
		return nil, errors.New("Price and size must not be negative")
	}

	s.Reg.Lock()
	defer s.Reg.Unlock()
	seller, ok := s.Reg.Seller(sellerID)
	if !ok {
		return nil, errors.New("Seller not found")
	}
	property := seller.CreateProperty(in.Title, in.Description, in.Location, in.Price, in.SizeSqm, domain.PropertyType(in.PropertyType))
	s.Reg.PutProperty(property)
	log.Info().Str("property_id", property.ID().String()).Str("seller_id", sellerID.String()).Msg("Property created")
	return viewOf(property), nil
}

// PublishProperty runs the seller's ownership-checked publish, then writes
// the listing snapshot. The snapshot write is the only partial-failure
// point; it is reported, never masked.
func (s *Service) PublishProperty(ctx context.Context, sellerID, propertyID uuid.UUID) (*PropertyView, error) {
	s.Reg.Lock()
	defer s.Reg.Unlock()
	seller, ok := s.Reg.Seller(sellerID)
	if !ok {
		return nil, errors.New("Seller not found")
	}
	property, ok := s.Reg.Property(propertyID)
	if !ok {
		return nil, errors.New("Property not found")
	}
	if err := seller.PublishProperty(property); err != nil {
		return nil, err
	}
	if err := s.syncSnapshot(ctx, property); err != nil {
		return nil, err
	}
	log.Info().Str("property_id", propertyID.String()).Msg("Property published")
	return viewOf(property), nil
}

// SuspendProperty takes the listing off the market.
func (s *Service) SuspendProperty(ctx context.Context, sellerID, propertyID uuid.UUID) (*PropertyView, error) {
	return s.transition(ctx, sellerID, propertyID, func(p *domain.Property) { p.Suspend() })
}

// CloseProperty marks the listing sold.
func (s *Service) CloseProperty(ctx context.Context, sellerID, propertyID uuid.UUID) (*PropertyView, error) {
	return s.transition(ctx, sellerID, propertyID, func(p *domain.Property) { p.Close() })
}

func (s *Service) transition(ctx context.Context, sellerID, propertyID uuid.UUID, apply func(*domain.Property)) (*PropertyView, error) {
	s.Reg.Lock()
	defer s.Reg.Unlock()
	property, err := s.ownedProperty(sellerID, propertyID)
	if err != nil {
		return nil, err
	}
	apply(property)
	if err := s.refreshSnapshot(ctx, property); err != nil {
		return nil, err
	}
	return viewOf(property), nil
}

// UpdateDetailsInput mirrors domain.PropertyUpdate over the wire: nil means
// leave unchanged.
type UpdateDetailsInput struct {
	Title        *string
	Description  *string
	Location     *string
	Price        *float64
	SizeSqm      *float64
	PropertyType *string
}

// UpdateDetails applies a partial update through the property's own method.
func (s *Service) UpdateDetails(ctx context.Context, sellerID, propertyID uuid.UUID, in UpdateDetailsInput) (*PropertyView, error) {
	s.Reg.Lock()
	defer s.Reg.Unlock()
	property, err := s.ownedProperty(sellerID, propertyID)
	if err != nil {
		return nil, err
	}
	var ptype *domain.PropertyType
	if in.PropertyType != nil {
		t := domain.PropertyType(*in.PropertyType)
		ptype = &t
	}
	property.UpdateDetails(domain.PropertyUpdate{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Price:       in.Price,
		Size:        in.SizeSqm,
		Type:        ptype,
	})
	if err := s.refreshSnapshot(ctx, property); err != nil {
		return nil, err
	}
	return viewOf(property), nil
}

// AddFeature upserts a named feature on an owned property.
func (s *Service) AddFeature(ctx context.Context, sellerID, propertyID uuid.UUID, key string, value interface{}) (*PropertyView, error) {
	if key == "" {
		return nil, errors.New("Feature key is required")
	}
	s.Reg.Lock()
	defer s.Reg.Unlock()
	property, err := s.ownedProperty(sellerID, propertyID)
	if err != nil {
		return nil, err
	}
	property.AddFeature(key, value)
	if err := s.refreshSnapshot(ctx, property); err != nil {
		return nil, err
	}
	return viewOf(property), nil
}

// RemoveFeature deletes a named feature on an owned property.
func (s *Service) RemoveFeature(ctx context.Context, sellerID, propertyID uuid.UUID, key string) (*PropertyView, error) {
	s.Reg.Lock()
	defer s.Reg.Unlock()
	property, err := s.ownedProperty(sellerID, propertyID)
	if err != nil {
		return nil, err
	}
	property.RemoveFeature(key)
	if err := s.refreshSnapshot(ctx, property); err != nil {
		return nil, err
	}
	return viewOf(property), nil
}

// AddImage appends an image URL (blank URLs are a domain-level no-op).
func (s *Service) AddImage(ctx context.Context, sellerID, propertyID uuid.UUID, url string) (*PropertyView, error) {
	s.Reg.Lock()
	defer s.Reg.Unlock()
	property, err := s.ownedProperty(sellerID, propertyID)
	if err != nil {
		return nil, err
	}
	property.AddImage(url)
	if err := s.refreshSnapshot(ctx, property); err != nil {
		return nil, err
	}
	return viewOf(property), nil
}

// RemoveImage removes an image URL.
func (s *Service) RemoveImage(ctx context.Context, sellerID, propertyID uuid.UUID, url string) (*PropertyView, error) {
	s.Reg.Lock()
	defer s.Reg.Unlock()
	property, err := s.ownedProperty(sellerID, propertyID)
	if err != nil {
		return nil, err
	}
	property.RemoveImage(url)
	if err := s.refreshSnapshot(ctx, property); err != nil {
		return nil, err
	}
	return viewOf(property), nil
}

// GetProperty returns any property by id (no ownership needed to view).
func (s *Service) GetProperty(ctx context.Context, propertyID uuid.UUID) (*PropertyView, error) {
	s.Reg.RLock()
	defer s.Reg.RUnlock()
	property, ok := s.Reg.Property(propertyID)
	if !ok {
		return nil, errors.New("Property not found")
	}
	return viewOf(property), nil
}

// SellerProperties returns the seller's owned listings.
func (s *Service) SellerProperties(ctx context.Context, sellerID uuid.UUID) ([]*PropertyView, error) {
	s.Reg.RLock()
	defer s.Reg.RUnlock()
	seller, ok := s.Reg.Seller(sellerID)
	if !ok {
		return nil, errors.New("Seller not found")
	}
	owned := seller.OwnedProperties()
	out := make([]*PropertyView, len(owned))
	for i, p := range owned {
		out[i] = viewOf(p)
	}
	return out, nil
}

// ownedProperty is the mutation gate: the property must exist and belong to
// the acting seller. Callers hold the registry lock.
func (s *Service) ownedProperty(sellerID, propertyID uuid.UUID) (*domain.Property, error) {
	property, ok := s.Reg.Property(propertyID)
	if !ok {
		return nil, errors.New("Property not found")
	}
	if !property.IsOwnedBy(sellerID) {
		return nil, &domain.OwnershipError{Message: "seller can only modify properties they own"}
	}
	return property, nil
}

// syncSnapshot creates or rewrites the listing snapshot for a property.
func (s *Service) syncSnapshot(ctx context.Context, p *domain.Property) error {
	features, err := json.Marshal(p.Features())
	if err != nil {
		return err
	}
	images, err := json.Marshal(p.Images())
	if err != nil {
		return err
	}

	var existing models.ListingSnapshot
	err = s.DB.WithContext(ctx).Where("property_id = ?", p.ID()).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return s.DB.WithContext(ctx).Create(&models.ListingSnapshot{
			PropertyID:   p.ID(),
			SellerID:     p.OwnerID(),
			Title:        p.Title(),
			Description:  p.Description(),
			Location:     p.Location(),
			PropertyType: string(p.Type()),
			Price:        p.Price(),
			SizeSqm:      p.Size(),
			Status:       string(p.Status()),
			Features:     features,
			Images:       images,
		}).Error
	}
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
		"title":         p.Title(),
		"description":   p.Description(),
		"location":      p.Location(),
		"property_type": string(p.Type()),
		"price":         p.Price(),
		"size_sqm":      p.Size(),
		"status":        string(p.Status()),
		"features":      features,
		"images":        images,
	}).Error
}

// refreshSnapshot rewrites the snapshot only when one exists (i.e. the
// property has been published at least once).
func (s *Service) refreshSnapshot(ctx context.Context, p *domain.Property) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.ListingSnapshot{}).
		Where("property_id = ?", p.ID()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	return s.syncSnapshot(ctx, p)
}
