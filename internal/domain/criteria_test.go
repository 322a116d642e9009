package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing(id, location, ptype string, price float64, available bool) Listing {
	return Listing{
		ListingID:    id,
		Title:        "Listing " + id,
		Location:     location,
		PropertyType: ptype,
		Price:        price,
		Available:    available,
	}
}

func TestCriteriaBuilder_MinAboveMaxFails(t *testing.T) {
	_, err := NewCriteriaBuilder().MinPrice(100).MaxPrice(50).Build()
	assert.True(t, IsValidation(err))
}

func TestCriteriaBuilder_SkipsBlankEntries(t *testing.T) {
	c, err := NewCriteriaBuilder().
		AddLocation("  ").
		AddLocation(" Lausanne ").
		AddPropertyType("").
		Build()
	require.NoError(t, err)

	assert.True(t, c.Matches(listing("a", "Lausanne", "HOUSE", 1, true)), "trimmed location must match")
	assert.False(t, c.Matches(listing("b", "Geneva", "HOUSE", 1, true)))
}

func TestCriteria_EmptyMatchesEverything(t *testing.T) {
	c, err := NewCriteriaBuilder().Build()
	require.NoError(t, err)
	assert.True(t, c.Matches(listing("a", "Anywhere", "ANYTHING", 1e9, false)))
}

func TestCriteria_LocationIsExactMatch(t *testing.T) {
	c, err := NewCriteriaBuilder().AddLocation("Lausanne").Build()
	require.NoError(t, err)

	assert.True(t, c.Matches(listing("a", "Lausanne", "HOUSE", 1, true)))
	assert.False(t, c.Matches(listing("b", "Lausanne-Ouest", "HOUSE", 1, true)), "no prefix matching")
	assert.False(t, c.Matches(listing("c", "lausanne", "HOUSE", 1, true)), "case-sensitive")
}

func TestCriteria_PriceBounds(t *testing.T) {
	c, err := NewCriteriaBuilder().MinPrice(100).MaxPrice(200).Build()
	require.NoError(t, err)

	assert.True(t, c.Matches(listing("a", "X", "T", 100, true)), "bounds are inclusive")
	assert.True(t, c.Matches(listing("b", "X", "T", 200, true)))
	assert.False(t, c.Matches(listing("c", "X", "T", 99.99, true)))
	assert.False(t, c.Matches(listing("d", "X", "T", 200.01, true)))

	onlyMin, err := NewCriteriaBuilder().MinPrice(100).Build()
	require.NoError(t, err)
	assert.True(t, onlyMin.Matches(listing("e", "X", "T", 1e12, true)), "unset max is unconstrained")
}

func TestCriteria_TypeMembership(t *testing.T) {
	c, err := NewCriteriaBuilder().AddPropertyType("APARTMENT").AddPropertyType("LOFT").Build()
	require.NoError(t, err)

	assert.True(t, c.Matches(listing("a", "X", "LOFT", 1, true)))
	assert.False(t, c.Matches(listing("b", "X", "HOUSE", 1, true)))
}

func TestSearchListings_FilterAndSortByPriceAscending(t *testing.T) {
	c, err := NewCriteriaBuilder().AddLocation("Lausanne").MaxPrice(600000).Build()
	require.NoError(t, err)

	in := []Listing{
		listing("a", "Lausanne", "APARTMENT", 550000, true),
		listing("b", "Geneva", "APARTMENT", 400000, true),
		listing("c", "Lausanne", "HOUSE", 500000, true),
		listing("d", "Lausanne", "VILLA", 700000, true),
	}

	out := SearchListings(in, c)
	require.Len(t, out, 2)
	assert.Equal(t, "c", out[0].ListingID)
	assert.Equal(t, "a", out[1].ListingID)
}

func TestSearchListings_NilCriteriaMatchesAll(t *testing.T) {
	in := []Listing{
		listing("b", "Geneva", "HOUSE", 200, true),
		listing("a", "Lausanne", "HOUSE", 100, true),
	}
	out := SearchListings(in, nil)
	require.Len(t, out, 2)
	assert.Equal(t, 100.0, out[0].Price)
}

func TestAvailableListings_FilterAndSortByID(t *testing.T) {
	in := []Listing{
		listing("b", "Geneva", "HOUSE", 200, true),
		listing("c", "Lausanne", "HOUSE", 100, false),
		listing("a", "Lausanne", "HOUSE", 300, true),
	}
	out := AvailableListings(in)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ListingID)
	assert.Equal(t, "b", out[1].ListingID)
}

func TestListingOf_ProjectsProperty(t *testing.T) {
	p := newTestProperty()
	p.AddFeature("bedrooms", 3)
	p.Publish()

	l := ListingOf(p)
	assert.Equal(t, p.ID().String(), l.ListingID)
	assert.Equal(t, "Lausanne", l.Location)
	assert.Equal(t, "APARTMENT", l.PropertyType)
	assert.Equal(t, 500000.0, l.Price)
	assert.True(t, l.Available)
	assert.Equal(t, 3, l.Attributes["bedrooms"])
}
