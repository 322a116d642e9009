package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListingSnapshot is the search source: a denormalized copy of a published
// property, refreshed on every property mutation while it is on the market.
// The in-memory Property remains authoritative; snapshots exist so search
// can run against any storage without touching live entities.
type ListingSnapshot struct {
	ListingID    uuid.UUID      `gorm:"column:listing_id;type:uuid;primaryKey" json:"listing_id"`
	PropertyID   uuid.UUID      `gorm:"column:property_id;type:uuid;not null;uniqueIndex" json:"property_id"`
	SellerID     uuid.UUID      `gorm:"column:seller_id;type:uuid;not null" json:"seller_id"`
	Title        string         `gorm:"column:title;not null" json:"title"`
	Description  string         `gorm:"column:description" json:"description"`
	Location     string         `gorm:"column:location;not null" json:"location"`
	PropertyType string         `gorm:"column:property_type;type:varchar(20);not null" json:"property_type"`
	Price        float64        `gorm:"column:price;type:decimal(18,2);not null" json:"price"`
	SizeSqm      float64        `gorm:"column:size_sqm;type:decimal(18,2);not null" json:"size_sqm"`
	Status       string         `gorm:"column:status;type:varchar(20);default:'FOR_SALE'" json:"status"`
	Features     datatypes.JSON `gorm:"column:features;type:json" json:"features"`
	Images       datatypes.JSON `gorm:"column:images;type:json" json:"images"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ListingSnapshot) TableName() string {
	return "ListingSnapshots"
}

// BeforeCreate sets the id for DBs without gen_random_uuid.
func (l *ListingSnapshot) BeforeCreate(tx *gorm.DB) error {
	if l.ListingID == uuid.Nil {
		l.ListingID = uuid.New()
	}
	return nil
}
