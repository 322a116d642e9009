package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer_Valid(t *testing.T) {
	propertyID := uuid.New()
	buyerID := uuid.New()

	o, err := NewOffer(propertyID, buyerID, 450000)
	require.NoError(t, err)
	assert.Equal(t, propertyID, o.PropertyID())
	assert.Equal(t, buyerID, o.BuyerID())
	assert.Equal(t, 450000.0, o.Amount())
	assert.Equal(t, OfferPending, o.Status())
	assert.False(t, o.CreatedAt().IsZero())
}

func TestNewOffer_Validation(t *testing.T) {
	_, err := NewOffer(uuid.Nil, uuid.New(), 100)
	assert.True(t, IsValidation(err))

	_, err = NewOffer(uuid.New(), uuid.Nil, 100)
	assert.True(t, IsValidation(err))

	_, err = NewOffer(uuid.New(), uuid.New(), 0)
	assert.True(t, IsValidation(err))

	_, err = NewOffer(uuid.New(), uuid.New(), -5)
	assert.True(t, IsValidation(err))
}

func TestOffer_SetStatusIsUnconstrained(t *testing.T) {
	o, err := NewOffer(uuid.New(), uuid.New(), 100)
	require.NoError(t, err)

	o.SetStatus(OfferWithdrawn)
	assert.Equal(t, OfferWithdrawn, o.Status())

	// WITHDRAWN is not terminal in this model
	o.SetStatus(OfferAccepted)
	assert.Equal(t, OfferAccepted, o.Status())
}

func TestOffer_EqualityByIDOnly(t *testing.T) {
	propertyID := uuid.New()
	buyerID := uuid.New()

	a, err := NewOffer(propertyID, buyerID, 300000)
	require.NoError(t, err)
	b, err := NewOffer(propertyID, buyerID, 300000)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.ID(), b.ID())
}
