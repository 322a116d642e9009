package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validViewing(t *testing.T) *Viewing {
	t.Helper()
	v, err := NewViewing(uuid.New(), uuid.New(), uuid.New(), uuid.New(), "Lausanne", time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	return v
}

func TestNewViewing_Valid(t *testing.T) {
	slot := time.Now().Add(24 * time.Hour)
	propertyID, listingID, userID, agentID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	v, err := NewViewing(propertyID, listingID, userID, agentID, "Geneva", slot)
	require.NoError(t, err)
	assert.Equal(t, propertyID, v.PropertyID())
	assert.Equal(t, listingID, v.ListingID())
	assert.Equal(t, userID, v.UserID())
	assert.Equal(t, agentID, v.AgentID())
	assert.Equal(t, "Geneva", v.Location())
	assert.Equal(t, slot, v.TimeSlot())
	assert.Equal(t, ViewingBooked, v.Status())
}

func TestNewViewing_FailsFastOnMissingFields(t *testing.T) {
	slot := time.Now()
	id := uuid.New()

	cases := []struct {
		name string
		err  error
	}{
		{"property", func() error { _, err := NewViewing(uuid.Nil, id, id, id, "L", slot); return err }()},
		{"listing", func() error { _, err := NewViewing(id, uuid.Nil, id, id, "L", slot); return err }()},
		{"user", func() error { _, err := NewViewing(id, id, uuid.Nil, id, "L", slot); return err }()},
		{"agent", func() error { _, err := NewViewing(id, id, id, uuid.Nil, "L", slot); return err }()},
		{"location", func() error { _, err := NewViewing(id, id, id, id, "  ", slot); return err }()},
		{"slot", func() error { _, err := NewViewing(id, id, id, id, "L", time.Time{}); return err }()},
	}
	for _, tc := range cases {
		assert.True(t, IsValidation(tc.err), "missing %s must be a validation error", tc.name)
	}
}

func TestViewing_LifecycleHelpers(t *testing.T) {
	v := validViewing(t)

	v.Confirm()
	assert.Equal(t, ViewingConfirmed, v.Status())

	v.Complete()
	assert.Equal(t, ViewingCompleted, v.Status())

	v.Cancel()
	assert.Equal(t, ViewingCancelled, v.Status())
}

func TestViewing_Reschedule(t *testing.T) {
	v := validViewing(t)
	newSlot := time.Now().Add(72 * time.Hour)

	require.NoError(t, v.Reschedule(newSlot))
	assert.Equal(t, newSlot, v.TimeSlot())
	assert.Equal(t, ViewingRescheduled, v.Status())

	err := v.Reschedule(time.Time{})
	assert.True(t, IsValidation(err))
}

func TestViewing_FeedbackOnlyAfterCompletion(t *testing.T) {
	v := validViewing(t)

	err := v.RecordFeedback("great view")
	assert.True(t, IsState(err))
	assert.Empty(t, v.Feedback())

	v.Complete()
	require.NoError(t, v.RecordFeedback("great view"))
	assert.Equal(t, "great view", v.Feedback())
}
