package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role tags a marketplace participant.
type Role string

const (
	RoleBuyer    Role = "BUYER"
	RoleRenter   Role = "RENTER"
	RoleSeller   Role = "SELLER"
	RoleLandlord Role = "LANDLORD"
	RoleAgent    Role = "AGENT"
	RoleAdmin    Role = "ADMIN"
)

// DocumentType labels an identity document.
type DocumentType string

const (
	DocPassport        DocumentType = "PASSPORT"
	DocIDCard          DocumentType = "ID_CARD"
	DocDriverLicense   DocumentType = "DRIVER_LICENSE"
	DocResidencePermit DocumentType = "RESIDENCE_PERMIT"
	DocOther           DocumentType = "OTHER"
)

// IdentityDocument is an uploaded identity proof. Content is copied on the
// way in and out so callers cannot alias the stored bytes.
type IdentityDocument struct {
	id             uuid.UUID
	name           string
	docType        DocumentType
	content        []byte
	uploadedAt     time.Time
	expirationDate time.Time
}

// NewIdentityDocument defaults a blank name and unknown type instead of failing.
func NewIdentityDocument(name string, docType DocumentType, content []byte, expirationDate time.Time) *IdentityDocument {
	if strings.TrimSpace(name) == "" {
		name = "Unnamed Document"
	}
	if docType == "" {
		docType = DocOther
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return &IdentityDocument{
		id:             uuid.New(),
		name:           name,
		docType:        docType,
		content:        cp,
		uploadedAt:     time.Now(),
		expirationDate: expirationDate,
	}
}

func (d *IdentityDocument) ID() uuid.UUID              { return d.id }
func (d *IdentityDocument) Name() string               { return d.name }
func (d *IdentityDocument) Type() DocumentType         { return d.docType }
func (d *IdentityDocument) UploadedAt() time.Time      { return d.uploadedAt }
func (d *IdentityDocument) ExpirationDate() time.Time  { return d.expirationDate }

// Content returns a copy of the document bytes.
func (d *IdentityDocument) Content() []byte {
	cp := make([]byte, len(d.content))
	copy(cp, d.content)
	return cp
}

// ListingReference is a saved-search bookmark: a snapshot of a listing's
// headline fields at the time it was saved.
type ListingReference struct {
	ListingID    string    `json:"listing_id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	PropertyType string    `json:"property_type"`
	Price        float64   `json:"price"`
	Available    bool      `json:"available"`
	SavedAt      time.Time `json:"saved_at"`
}

// Profile carries the fields shared by every participant role. Buyer and
// Seller compose it instead of inheriting from a user base class.
type Profile struct {
	id        uuid.UUID
	firstName string
	lastName  string
	username  string
	email     string
	password  string
	role      Role
	balance   int

	preferredLocations []string
	savedListings      []ListingReference
	savedIdx           map[string]int
	documents          []*IdentityDocument
}

// NewProfile creates a participant profile with a fresh id.
func NewProfile(firstName, lastName, email, username, password string, role Role) *Profile {
	return &Profile{
		id:        uuid.New(),
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		username:  username,
		password:  password,
		role:      role,
		savedIdx:  make(map[string]int),
	}
}

func (p *Profile) ID() uuid.UUID     { return p.id }
func (p *Profile) FirstName() string { return p.firstName }
func (p *Profile) LastName() string  { return p.lastName }
func (p *Profile) Username() string  { return p.username }
func (p *Profile) Email() string     { return p.email }
func (p *Profile) Role() Role        { return p.role }
func (p *Profile) Balance() int      { return p.balance }

// FullName joins first and last name.
func (p *Profile) FullName() string {
	return p.firstName + " " + p.lastName
}

// UpdateProfile replaces only the non-blank fields.
func (p *Profile) UpdateProfile(firstName, lastName, email string) {
	if strings.TrimSpace(firstName) != "" {
		p.firstName = firstName
	}
	if strings.TrimSpace(lastName) != "" {
		p.lastName = lastName
	}
	if strings.TrimSpace(email) != "" {
		p.email = email
	}
}

// ChangePassword verifies the current password before replacing it.
func (p *Profile) ChangePassword(currentPassword, newPassword string) error {
	if p.password != currentPassword {
		return validationf("current password does not match")
	}
	if strings.TrimSpace(newPassword) == "" {
		return validationf("new password must not be blank")
	}
	p.password = newPassword
	return nil
}

// CheckPassword reports whether candidate matches the stored password.
func (p *Profile) CheckPassword(candidate string) bool {
	return p.password == candidate
}

// Deposit adds funds to the balance.
func (p *Profile) Deposit(amount int) error {
	if amount < 0 {
		return validationf("deposit amount must be positive")
	}
	p.balance += amount
	return nil
}

// Withdraw removes funds; a shortfall is a state error, not a validation one.
func (p *Profile) Withdraw(amount int) error {
	if amount < 0 {
		return validationf("withdrawal amount must be positive")
	}
	if p.balance < amount {
		return statef("insufficient funds: CHF %d missing", amount-p.balance)
	}
	p.balance -= amount
	return nil
}

// AddPreferredLocation adds a trimmed location; duplicates are ignored.
// Returns true when the set grew.
func (p *Profile) AddPreferredLocation(location string) (bool, error) {
	s := strings.TrimSpace(location)
	if s == "" {
		return false, validationf("location must not be blank")
	}
	for _, existing := range p.preferredLocations {
		if existing == s {
			return false, nil
		}
	}
	p.preferredLocations = append(p.preferredLocations, s)
	return true, nil
}

// RemovePreferredLocation removes a location; absent entries are not an error.
func (p *Profile) RemovePreferredLocation(location string) bool {
	s := strings.TrimSpace(location)
	for i, existing := range p.preferredLocations {
		if existing == s {
			p.preferredLocations = append(p.preferredLocations[:i], p.preferredLocations[i+1:]...)
			return true
		}
	}
	return false
}

// PreferredLocations returns a copy in insertion order.
func (p *Profile) PreferredLocations() []string {
	out := make([]string, len(p.preferredLocations))
	copy(out, p.preferredLocations)
	return out
}

// SaveListing bookmarks a listing; re-saving the same id refreshes the
// snapshot in place. Returns true when the listing was new.
func (p *Profile) SaveListing(l Listing) (bool, error) {
	if strings.TrimSpace(l.ListingID) == "" {
		return false, validationf("listing id must not be blank")
	}
	ref := ListingReference{
		ListingID:    l.ListingID,
		Title:        l.Title,
		Location:     l.Location,
		PropertyType: l.PropertyType,
		Price:        l.Price,
		Available:    l.Available,
		SavedAt:      time.Now(),
	}
	if i, ok := p.savedIdx[ref.ListingID]; ok {
		p.savedListings[i] = ref
		return false, nil
	}
	p.savedIdx[ref.ListingID] = len(p.savedListings)
	p.savedListings = append(p.savedListings, ref)
	return true, nil
}

// RemoveSavedListing drops a bookmark; absent ids are not an error.
func (p *Profile) RemoveSavedListing(listingID string) bool {
	i, ok := p.savedIdx[listingID]
	if !ok {
		return false
	}
	p.savedListings = append(p.savedListings[:i], p.savedListings[i+1:]...)
	delete(p.savedIdx, listingID)
	for j := i; j < len(p.savedListings); j++ {
		p.savedIdx[p.savedListings[j].ListingID] = j
	}
	return true
}

// SavedListings returns a copy of the bookmarks in insertion order.
func (p *Profile) SavedListings() []ListingReference {
	out := make([]ListingReference, len(p.savedListings))
	copy(out, p.savedListings)
	return out
}

// UploadDocument stores a document, replacing any existing one with the same id.
func (p *Profile) UploadDocument(doc *IdentityDocument) error {
	if doc == nil {
		return validationf("document is required")
	}
	for i, existing := range p.documents {
		if existing.ID() == doc.ID() {
			p.documents[i] = doc
			return nil
		}
	}
	p.documents = append(p.documents, doc)
	return nil
}

// RemoveDocument drops a document by id; absent ids are not an error.
func (p *Profile) RemoveDocument(documentID uuid.UUID) bool {
	for i, doc := range p.documents {
		if doc.ID() == documentID {
			p.documents = append(p.documents[:i], p.documents[i+1:]...)
			return true
		}
	}
	return false
}

// Documents returns a copy of the document list.
func (p *Profile) Documents() []*IdentityDocument {
	out := make([]*IdentityDocument, len(p.documents))
	copy(out, p.documents)
	return out
}
