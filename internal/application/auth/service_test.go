package auth

import (
	"testing"

	"casavia-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Account{}))
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, email, password string) *models.Account {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	account := &models.Account{
		UserID:       uuid.New(),
		FirstName:    "Nina",
		LastName:     "Keller",
		Username:     "nkeller",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "BUYER",
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func TestLoginAccount_MissingFields(t *testing.T) {
	db := setupAuthDB(t)
	_, err := LoginAccount(db, LoginInput{Email: "", Password: ""})
	assert.Equal(t, ErrEmailPasswordRequired, err)
}

func TestLoginAccount_UnknownEmail(t *testing.T) {
	db := setupAuthDB(t)
	_, err := LoginAccount(db, LoginInput{Email: "nobody@example.com", Password: "Secret1!x"})
	assert.Equal(t, ErrInvalidEmail, err)
}

func TestLoginAccount_WrongPassword(t *testing.T) {
	db := setupAuthDB(t)
	seedAccount(t, db, "nina@example.com", "Secret1!x")
	_, err := LoginAccount(db, LoginInput{Email: "nina@example.com", Password: "wrong"})
	assert.Equal(t, ErrIncorrectPassword, err)
}

func TestLoginAccount_Success(t *testing.T) {
	db := setupAuthDB(t)
	seeded := seedAccount(t, db, "nina@example.com", "Secret1!x")
	account, err := LoginAccount(db, LoginInput{Email: "nina@example.com", Password: "Secret1!x"})
	require.NoError(t, err)
	assert.Equal(t, seeded.UserID, account.UserID)
	assert.Equal(t, "BUYER", account.Role)
}

func TestVerifyUser_Nil(t *testing.T) {
	u, err := VerifyUser(nil)
	assert.Nil(t, u)
	assert.Equal(t, ErrNotAuthenticated, err)
}

func TestVerifyUser_NoUserID(t *testing.T) {
	u, err := VerifyUser(map[string]interface{}{
		"fullname": "Test",
		"email":    "a@b.com",
	})
	assert.Nil(t, u)
	assert.Equal(t, ErrNotAuthenticated, err)
}

func TestVerifyUser_Valid(t *testing.T) {
	u, err := VerifyUser(map[string]interface{}{
		"user_id":  "550e8400-e29b-41d4-a716-446655440000",
		"fullname": "Test User",
		"email":    "test@example.com",
		"role":     "SELLER",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", u.UserID)
	assert.Equal(t, "Test User", u.Fullname)
	assert.Equal(t, "SELLER", u.Role)
}
