package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProperty() *Property {
	return NewProperty(uuid.New(), "Lakeside flat", "Bright 3-room flat", "Lausanne", 500000, 80, TypeApartment)
}

func TestNewProperty_Defaults(t *testing.T) {
	owner := uuid.New()
	p := NewProperty(owner, "Title", "Desc", "Lausanne", 500000, 80, TypeApartment)

	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, owner, p.OwnerID())
	assert.Equal(t, StatusOffMarket, p.Status())
	assert.False(t, p.IsAvailableForSale())
	assert.False(t, p.UpdatedAt().Before(p.CreatedAt()))
}

func TestProperty_PublishSuspendClose(t *testing.T) {
	p := newTestProperty()

	p.Publish()
	assert.Equal(t, StatusForSale, p.Status())
	assert.True(t, p.IsAvailableForSale())

	p.Suspend()
	assert.Equal(t, StatusOffMarket, p.Status())
	assert.False(t, p.IsAvailableForSale())

	p.Publish()
	p.Close()
	assert.Equal(t, StatusSold, p.Status())
	assert.False(t, p.IsAvailableForSale())
}

func TestProperty_SetStatusIsUnconstrained(t *testing.T) {
	p := newTestProperty()
	p.SetStatus(StatusSold)
	assert.Equal(t, StatusSold, p.Status())
	p.SetStatus(StatusForSale)
	assert.Equal(t, StatusForSale, p.Status())
}

func TestProperty_UpdateDetails_PartialFields(t *testing.T) {
	p := newTestProperty()
	title := "New title"
	negative := -100.0

	p.UpdateDetails(PropertyUpdate{Title: &title, Price: &negative})

	assert.Equal(t, "New title", p.Title())
	assert.Equal(t, 500000.0, p.Price(), "negative price must be ignored")
	assert.Equal(t, "Bright 3-room flat", p.Description())
}

func TestProperty_UpdateDetails_AlwaysTouches(t *testing.T) {
	p := newTestProperty()
	before := p.UpdatedAt()
	time.Sleep(5 * time.Millisecond)

	p.UpdateDetails(PropertyUpdate{})

	assert.True(t, p.UpdatedAt().After(before))
}

func TestProperty_Features_InsertionOrderAndUpsert(t *testing.T) {
	p := newTestProperty()
	p.AddFeature("bedrooms", 3)
	p.AddFeature("balcony", true)
	p.AddFeature("bedrooms", 4)

	features := p.Features()
	require.Len(t, features, 2)
	assert.Equal(t, "bedrooms", features[0].Key)
	assert.Equal(t, 4, features[0].Value)
	assert.Equal(t, "balcony", features[1].Key)

	p.RemoveFeature("bedrooms")
	features = p.Features()
	require.Len(t, features, 1)
	assert.Equal(t, "balcony", features[0].Key)
	_, ok := p.Feature("bedrooms")
	assert.False(t, ok)
}

func TestProperty_RemoveFeature_TouchesEvenWhenAbsent(t *testing.T) {
	p := newTestProperty()
	before := p.UpdatedAt()
	time.Sleep(5 * time.Millisecond)

	p.RemoveFeature("nonexistent")

	assert.True(t, p.UpdatedAt().After(before))
}

func TestProperty_AddImage_BlankIsNoOp(t *testing.T) {
	p := newTestProperty()
	before := p.UpdatedAt()

	p.AddImage("")
	p.AddImage("   ")

	assert.Empty(t, p.Images())
	assert.Equal(t, before, p.UpdatedAt(), "blank image must not touch updatedAt")
}

func TestProperty_RemoveImage_TouchesOnlyOnRemoval(t *testing.T) {
	p := newTestProperty()
	p.AddImage("https://img.example/1.jpg")
	before := p.UpdatedAt()

	p.RemoveImage("https://img.example/missing.jpg")
	assert.Equal(t, before, p.UpdatedAt())
	require.Len(t, p.Images(), 1)

	time.Sleep(5 * time.Millisecond)
	p.RemoveImage("https://img.example/1.jpg")
	assert.Empty(t, p.Images())
	assert.True(t, p.UpdatedAt().After(before))
}

func TestProperty_PricePerSquareMeter(t *testing.T) {
	p := NewProperty(uuid.New(), "T", "D", "Lausanne", 500000, 100, TypeHouse)
	assert.Equal(t, 5000.0, p.PricePerSquareMeter())

	zero := 0.0
	p.UpdateDetails(PropertyUpdate{Size: &zero})
	assert.Equal(t, 0.0, p.PricePerSquareMeter(), "size zero yields the 0 sentinel")
}

func TestProperty_BedroomAndBathroomCount(t *testing.T) {
	p := newTestProperty()
	assert.Equal(t, 0, p.BedroomCount())

	p.AddFeature("bedrooms", 3)
	p.AddFeature("bathrooms", "two")
	assert.Equal(t, 3, p.BedroomCount())
	assert.Equal(t, 0, p.BathroomCount(), "non-int feature counts as 0")
}

func TestProperty_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	p := NewProperty(owner, "T", "D", "Geneva", 1, 1, TypeLand)
	assert.True(t, p.IsOwnedBy(owner))
	assert.False(t, p.IsOwnedBy(uuid.New()))
}

func TestProperty_EqualityByIDOnly(t *testing.T) {
	owner := uuid.New()
	a := NewProperty(owner, "Same", "Same", "Lausanne", 1000, 10, TypeStudio)
	b := NewProperty(owner, "Same", "Same", "Lausanne", 1000, 10, TypeStudio)

	assert.False(t, a.Equal(b), "identical fields but different ids are distinct")
	assert.True(t, a.Equal(a))
	assert.NotEqual(t, a.ID(), b.ID())
}
