package search

import (
	"context"
	"testing"

	"casavia-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSearchTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ListingSnapshot{}))
	return &Service{DB: db}
}

func seedSnapshot(t *testing.T, db *gorm.DB, title, location, ptype string, price float64, status string) *models.ListingSnapshot {
	snap := &models.ListingSnapshot{
		PropertyID:   uuid.New(),
		SellerID:     uuid.New(),
		Title:        title,
		Location:     location,
		PropertyType: ptype,
		Price:        price,
		SizeSqm:      90,
		Status:       status,
		Features:     []byte(`[{"key":"bedrooms","value":3}]`),
		Images:       []byte(`[]`),
	}
	require.NoError(t, db.Create(snap).Error)
	return snap
}

func TestSearch_LocationAndMaxPrice(t *testing.T) {
	s := setupSearchTest(t)
	seedSnapshot(t, s.DB, "Flat A", "Lausanne", "APARTMENT", 550000, "FOR_SALE")
	seedSnapshot(t, s.DB, "Flat B", "Lausanne", "APARTMENT", 500000, "FOR_SALE")
	seedSnapshot(t, s.DB, "Flat C", "Geneva", "APARTMENT", 450000, "FOR_SALE")
	seedSnapshot(t, s.DB, "Flat D", "Lausanne", "APARTMENT", 900000, "FOR_SALE")

	maxPrice := 600000.0
	results, err := s.Search(context.Background(), CriteriaInput{
		Locations: []string{"Lausanne"},
		MaxPrice:  &maxPrice,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	// Sorted by price ascending
	assert.Equal(t, "Flat B", results[0].Title)
	assert.Equal(t, 500000.0, results[0].Price)
	assert.Equal(t, "Flat A", results[1].Title)
	assert.Equal(t, 550000.0, results[1].Price)
}

func TestSearch_EmptyCriteriaMatchesAll(t *testing.T) {
	s := setupSearchTest(t)
	seedSnapshot(t, s.DB, "Flat A", "Lausanne", "APARTMENT", 550000, "FOR_SALE")
	seedSnapshot(t, s.DB, "House B", "Bern", "HOUSE", 900000, "OFF_MARKET")

	results, err := s.Search(context.Background(), CriteriaInput{})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearch_TypeFilter(t *testing.T) {
	s := setupSearchTest(t)
	seedSnapshot(t, s.DB, "Flat A", "Lausanne", "APARTMENT", 550000, "FOR_SALE")
	seedSnapshot(t, s.DB, "House B", "Lausanne", "HOUSE", 900000, "FOR_SALE")

	results, err := s.Search(context.Background(), CriteriaInput{PropertyTypes: []string{"HOUSE"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "House B", results[0].Title)
}

func TestSearch_MinAboveMaxIsValidationError(t *testing.T) {
	s := setupSearchTest(t)
	minPrice, maxPrice := 700000.0, 600000.0
	_, err := s.Search(context.Background(), CriteriaInput{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.Error(t, err)
}

func TestSearch_AttributesFromFeatures(t *testing.T) {
	s := setupSearchTest(t)
	seedSnapshot(t, s.DB, "Flat A", "Lausanne", "APARTMENT", 550000, "FOR_SALE")

	results, err := s.Search(context.Background(), CriteriaInput{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Attributes)
	assert.EqualValues(t, 3, results[0].Attributes["bedrooms"])
}

func TestAvailable_FiltersAndSortsByListingID(t *testing.T) {
	s := setupSearchTest(t)
	a := seedSnapshot(t, s.DB, "Flat A", "Lausanne", "APARTMENT", 550000, "FOR_SALE")
	seedSnapshot(t, s.DB, "Flat B", "Bern", "APARTMENT", 400000, "SOLD")
	c := seedSnapshot(t, s.DB, "Flat C", "Zurich", "APARTMENT", 700000, "FOR_SALE")

	results, err := s.Available(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, l := range results {
		assert.True(t, l.Available)
	}
	assert.True(t, results[0].ListingID <= results[1].ListingID)
	ids := []string{results[0].ListingID, results[1].ListingID}
	assert.Contains(t, ids, a.ListingID.String())
	assert.Contains(t, ids, c.ListingID.String())
}
