package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfile() *Profile {
	return NewProfile("Lea", "Favre", "lea@example.com", "leaf", "secret", RoleBuyer)
}

func TestProfile_UpdateProfile_BlankFieldsIgnored(t *testing.T) {
	p := newTestProfile()

	p.UpdateProfile("", "  ", "new@example.com")
	assert.Equal(t, "Lea", p.FirstName())
	assert.Equal(t, "Favre", p.LastName())
	assert.Equal(t, "new@example.com", p.Email())
}

func TestProfile_ChangePassword(t *testing.T) {
	p := newTestProfile()

	err := p.ChangePassword("wrong", "next")
	assert.True(t, IsValidation(err))

	err = p.ChangePassword("secret", " ")
	assert.True(t, IsValidation(err))

	require.NoError(t, p.ChangePassword("secret", "next"))
	assert.True(t, p.CheckPassword("next"))
}

func TestProfile_DepositWithdraw(t *testing.T) {
	p := newTestProfile()

	require.NoError(t, p.Deposit(100))
	assert.Equal(t, 100, p.Balance())

	err := p.Deposit(-1)
	assert.True(t, IsValidation(err))

	err = p.Withdraw(150)
	assert.True(t, IsState(err), "shortfall is a state error")
	assert.Equal(t, 100, p.Balance())

	require.NoError(t, p.Withdraw(40))
	assert.Equal(t, 60, p.Balance())
}

func TestProfile_PreferredLocations(t *testing.T) {
	p := newTestProfile()

	added, err := p.AddPreferredLocation(" Lausanne ")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = p.AddPreferredLocation("Lausanne")
	require.NoError(t, err)
	assert.False(t, added, "idempotent add")

	_, err = p.AddPreferredLocation("  ")
	assert.True(t, IsValidation(err))

	assert.Equal(t, []string{"Lausanne"}, p.PreferredLocations())
	assert.True(t, p.RemovePreferredLocation("Lausanne"))
	assert.False(t, p.RemovePreferredLocation("Lausanne"))
}

func TestProfile_SavedListings(t *testing.T) {
	p := newTestProfile()
	l := listing("l-1", "Lausanne", "APARTMENT", 500000, true)

	isNew, err := p.SaveListing(l)
	require.NoError(t, err)
	assert.True(t, isNew)

	l.Price = 450000
	isNew, err = p.SaveListing(l)
	require.NoError(t, err)
	assert.False(t, isNew, "re-save refreshes in place")

	saved := p.SavedListings()
	require.Len(t, saved, 1)
	assert.Equal(t, 450000.0, saved[0].Price)

	_, err = p.SaveListing(Listing{})
	assert.True(t, IsValidation(err))

	assert.True(t, p.RemoveSavedListing("l-1"))
	assert.False(t, p.RemoveSavedListing("l-1"))
}

func TestProfile_Documents(t *testing.T) {
	p := newTestProfile()
	doc := NewIdentityDocument("passport scan", DocPassport, []byte{1, 2, 3}, time.Now().AddDate(5, 0, 0))

	require.NoError(t, p.UploadDocument(doc))
	require.Len(t, p.Documents(), 1)

	// replacing the same id does not grow the list
	require.NoError(t, p.UploadDocument(doc))
	assert.Len(t, p.Documents(), 1)

	err := p.UploadDocument(nil)
	assert.True(t, IsValidation(err))

	assert.True(t, p.RemoveDocument(doc.ID()))
	assert.False(t, p.RemoveDocument(uuid.New()))
}

func TestIdentityDocument_Defaults(t *testing.T) {
	doc := NewIdentityDocument("  ", "", nil, time.Time{})
	assert.Equal(t, "Unnamed Document", doc.Name())
	assert.Equal(t, DocOther, doc.Type())
	assert.Empty(t, doc.Content())
}

func TestIdentityDocument_ContentIsCopied(t *testing.T) {
	raw := []byte{1, 2, 3}
	doc := NewIdentityDocument("doc", DocIDCard, raw, time.Time{})

	raw[0] = 9
	assert.Equal(t, byte(1), doc.Content()[0])

	out := doc.Content()
	out[1] = 9
	assert.Equal(t, byte(2), doc.Content()[1])
}

func TestMessage_Directions(t *testing.T) {
	sender, recipient := uuid.New(), uuid.New()

	out := OutboundMessage(sender, recipient, "Re: villa", "still available?")
	assert.Equal(t, MessageSent, out.Direction())
	assert.True(t, out.Read(), "sent copies are implicitly read")

	in := InboundMessage(sender, recipient, "Re: villa", "still available?")
	assert.Equal(t, MessageReceived, in.Direction())
	assert.False(t, in.Read())

	in.MarkAsRead()
	assert.True(t, in.Read())
}
