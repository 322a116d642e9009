package accounts

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	acctsvc "casavia-backend/internal/application/accounts"
	"casavia-backend/internal/infrastructure/registry"
	"casavia-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAccountsHandlers(t *testing.T) *Handlers {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Account{}))
	return &Handlers{Service: &acctsvc.Service{DB: db, Reg: registry.New()}}
}

func TestRegisterBuyer_Created(t *testing.T) {
	h := setupAccountsHandlers(t)
	app := fiber.New()
	app.Post("/api/v1/accounts/register-buyer", h.RegisterBuyer)

	body, _ := json.Marshal(map[string]interface{}{
		"first_name": "Nina",
		"last_name":  "Keller",
		"username":   "nkeller",
		"email":      "nina@example.com",
		"password":   "Secret1!x",
		"budget":     800000,
	})
	req := httptest.NewRequest("POST", "/api/v1/accounts/register-buyer", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestRegisterBuyer_MissingFields(t *testing.T) {
	h := setupAccountsHandlers(t)
	app := fiber.New()
	app.Post("/api/v1/accounts/register-buyer", h.RegisterBuyer)

	body, _ := json.Marshal(map[string]interface{}{
		"first_name": "Nina",
		// missing everything else
	})
	req := httptest.NewRequest("POST", "/api/v1/accounts/register-buyer", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterSeller_DuplicateEmailConflict(t *testing.T) {
	h := setupAccountsHandlers(t)
	app := fiber.New()
	app.Post("/api/v1/accounts/register-seller", h.RegisterSeller)

	payload := map[string]interface{}{
		"first_name": "Marc",
		"last_name":  "Laurent",
		"username":   "mlaurent",
		"email":      "marc@example.com",
		"password":   "Secret1!x",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/accounts/register-seller", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	payload["username"] = "other"
	body2, _ := json.Marshal(payload)
	req2 := httptest.NewRequest("POST", "/api/v1/accounts/register-seller", bytes.NewReader(body2))
	req2.Header.Set("Content-Type", "application/json")
	resp2, err := app.Test(req2)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp2.StatusCode)
}

func TestViewAccount_InvalidID(t *testing.T) {
	h := setupAccountsHandlers(t)
	app := fiber.New()
	app.Get("/api/v1/accounts/view-account/:user_id", h.ViewAccount)

	req := httptest.NewRequest("GET", "/api/v1/accounts/view-account/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
