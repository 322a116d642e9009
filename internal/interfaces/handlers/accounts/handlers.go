package accounts

import (
	acctsvc "casavia-backend/internal/application/accounts"
	"casavia-backend/internal/middleware"
	"casavia-backend/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *acctsvc.Service
}

var validate = validator.New()

// RegisterRequest body for register-buyer / register-seller.
type RegisterRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Username  string  `json:"username" validate:"required,min=3"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Budget    float64 `json:"budget" validate:"gte=0"`
}

// POST /api/v1/accounts/register-buyer
func (h *Handlers) RegisterBuyer(c *fiber.Ctx) error {
	return h.register(c, true)
}

// POST /api/v1/accounts/register-seller
func (h *Handlers) RegisterSeller(c *fiber.Ctx) error {
	return h.register(c, false)
}

func (h *Handlers) register(c *fiber.Ctx, buyer bool) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	if err := validate.Struct(&req); err != nil {
		return response.Error(c, "All fields are required", 400, nil)
	}

	in := acctsvc.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Budget:    req.Budget,
	}
	var account interface{}
	var err error
	if buyer {
		account, err = h.Service.RegisterBuyer(c.Context(), in)
	} else {
		account, err = h.Service.RegisterSeller(c.Context(), in)
	}
	if err != nil {
		statusMap := map[string]int{
			"All fields are required": 400,
			"Invalid name format":     400,
			"Invalid email format":    400,
			"Password must be at least 8 characters with a letter, a number and a special character": 400,
			"Email or username already in use":                                                       409,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Account registered successfully", account, nil)
}

// GET /api/v1/accounts/view-account/:user_id
func (h *Handlers) ViewAccount(c *fiber.Ctx) error {
	idStr := c.Params("user_id")
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return response.Error(c, "Invalid user_id format", 400, nil)
	}
	account, err := h.Service.ViewAccount(c.Context(), userID)
	if err != nil {
		if err.Error() == "Account not found" {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Account fetched successfully", account, nil)
}

// PUT /api/v1/accounts/update-profile
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	account, err := h.Service.UpdateProfile(c.Context(), actor, acctsvc.UpdateProfileInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
	})
	if err != nil {
		statusMap := map[string]int{
			"Invalid email format": 400,
			"Account not found":    404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Profile updated successfully", account, nil)
}

// PUT /api/v1/accounts/change-password
func (h *Handlers) ChangePassword(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	if err := h.Service.ChangePassword(c.Context(), actor, body.CurrentPassword, body.NewPassword); err != nil {
		statusMap := map[string]int{
			"Current and new password are required": 400,
			"Password must be at least 8 characters with a letter, a number and a special character": 400,
			"Account not found":               404,
			"Current password does not match": 403,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Password changed successfully", nil, nil)
}

// actorID returns the authenticated user's id from the session.
func actorID(c *fiber.Ctx) (uuid.UUID, error) {
	user := middleware.GetUser(c)
	m, ok := user.(map[string]interface{})
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	idStr, _ := m["user_id"].(string)
	return uuid.Parse(idStr)
}
