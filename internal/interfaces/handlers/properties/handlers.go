package properties

import (
	"context"

	propsvc "casavia-backend/internal/application/properties"
	"casavia-backend/internal/middleware"
	"casavia-backend/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *propsvc.Service
}

var validate = validator.New()

// CreatePropertyRequest body for create-property.
type CreatePropertyRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Location     string  `json:"location" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	SizeSqm      float64 `json:"size_sqm" validate:"gte=0"`
	PropertyType string  `json:"property_type" validate:"required"`
}

// POST /api/v1/properties/create-property
func (h *Handlers) CreateProperty(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var req CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	if err := validate.Struct(&req); err != nil {
		return response.Error(c, "Title, location and property_type are required", 400, nil)
	}
	property, err := h.Service.CreateProperty(c.Context(), actor, propsvc.CreatePropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Price:        req.Price,
		SizeSqm:      req.SizeSqm,
		PropertyType: req.PropertyType,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessCreated(c, "Property created successfully", property, nil)
}

// POST /api/v1/properties/publish-property
func (h *Handlers) PublishProperty(c *fiber.Ctx) error {
	return h.lifecycle(c, h.Service.PublishProperty, "Property published successfully")
}

// POST /api/v1/properties/suspend-property
func (h *Handlers) SuspendProperty(c *fiber.Ctx) error {
	return h.lifecycle(c, h.Service.SuspendProperty, "Property suspended successfully")
}

// POST /api/v1/properties/close-property
func (h *Handlers) CloseProperty(c *fiber.Ctx) error {
	return h.lifecycle(c, h.Service.CloseProperty, "Property closed successfully")
}

// PUT /api/v1/properties/update-details
func (h *Handlers) UpdateDetails(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PropertyID   string   `json:"property_id"`
		Title        *string  `json:"title"`
		Description  *string  `json:"description"`
		Location     *string  `json:"location"`
		Price        *float64 `json:"price"`
		SizeSqm      *float64 `json:"size_sqm"`
		PropertyType *string  `json:"property_type"`
	}
	if err := c.BodyParser(&body); err != nil || body.PropertyID == "" {
		return response.Error(c, "property_id is required", 400, nil)
	}
	propertyID, err := uuid.Parse(body.PropertyID)
	if err != nil {
		return response.Error(c, "Invalid property_id format", 400, nil)
	}
	property, err := h.Service.UpdateDetails(c.Context(), actor, propertyID, propsvc.UpdateDetailsInput{
		Title:        body.Title,
		Description:  body.Description,
		Location:     body.Location,
		Price:        body.Price,
		SizeSqm:      body.SizeSqm,
		PropertyType: body.PropertyType,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Property updated successfully", property, nil)
}

// POST /api/v1/properties/add-feature
func (h *Handlers) AddFeature(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PropertyID string      `json:"property_id"`
		Key        string      `json:"key"`
		Value      interface{} `json:"value"`
	}
	if err := c.BodyParser(&body); err != nil || body.PropertyID == "" || body.Key == "" {
		return response.Error(c, "property_id and key are required", 400, nil)
	}
	propertyID, err := uuid.Parse(body.PropertyID)
	if err != nil {
		return response.Error(c, "Invalid property_id format", 400, nil)
	}
	property, err := h.Service.AddFeature(c.Context(), actor, propertyID, body.Key, body.Value)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Feature added successfully", property, nil)
}

// POST /api/v1/properties/remove-feature
func (h *Handlers) RemoveFeature(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PropertyID string `json:"property_id"`
		Key        string `json:"key"`
	}
	if err := c.BodyParser(&body); err != nil || body.PropertyID == "" || body.Key == "" {
		return response.Error(c, "property_id and key are required", 400, nil)
	}
	propertyID, err := uuid.Parse(body.PropertyID)
	if err != nil {
		return response.Error(c, "Invalid property_id format", 400, nil)
	}
	property, err := h.Service.RemoveFeature(c.Context(), actor, propertyID, body.Key)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Feature removed successfully", property, nil)
}

// POST /api/v1/properties/add-image
func (h *Handlers) AddImage(c *fiber.Ctx) error {
	return h.image(c, h.Service.AddImage, "Image added successfully")
}

// POST /api/v1/properties/remove-image
func (h *Handlers) RemoveImage(c *fiber.Ctx) error {
	return h.image(c, h.Service.RemoveImage, "Image removed successfully")
}

// GET /api/v1/properties/get-property/:property_id
func (h *Handlers) GetProperty(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("property_id"))
	if err != nil {
		return response.Error(c, "Invalid property_id format", 400, nil)
	}
	property, err := h.Service.GetProperty(c.Context(), propertyID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Property fetched successfully", property, nil)
}

// GET /api/v1/properties/get-seller-properties
func (h *Handlers) GetSellerProperties(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	list, err := h.Service.SellerProperties(c.Context(), actor)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Properties fetched successfully", list, nil)
}

// --- helpers ---

func (h *Handlers) lifecycle(c *fiber.Ctx, op func(ctx context.Context, sellerID, propertyID uuid.UUID) (*propsvc.PropertyView, error), message string) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PropertyID string `json:"property_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.PropertyID == "" {
		return response.Error(c, "property_id is required", 400, nil)
	}
	propertyID, err := uuid.Parse(body.PropertyID)
	if err != nil {
		return response.Error(c, "Invalid property_id format", 400, nil)
	}
	property, err := op(c.Context(), actor, propertyID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, message, property, nil)
}

func (h *Handlers) image(c *fiber.Ctx, op func(ctx context.Context, sellerID, propertyID uuid.UUID, url string) (*propsvc.PropertyView, error), message string) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PropertyID string `json:"property_id"`
		URL        string `json:"url"`
	}
	if err := c.BodyParser(&body); err != nil || body.PropertyID == "" {
		return response.Error(c, "property_id is required", 400, nil)
	}
	propertyID, err := uuid.Parse(body.PropertyID)
	if err != nil {
		return response.Error(c, "Invalid property_id format", 400, nil)
	}
	property, err := op(c.Context(), actor, propertyID, body.URL)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, message, property, nil)
}

func actorID(c *fiber.Ctx) (uuid.UUID, error) {
	user := middleware.GetUser(c)
	m, ok := user.(map[string]interface{})
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	idStr, _ := m["user_id"].(string)
	return uuid.Parse(idStr)
}

func serviceError(c *fiber.Ctx, err error) error {
	statusMap := map[string]int{
		"Seller not found":                    404,
		"Property not found":                  404,
		"Title and location are required":     400,
		"Price and size must not be negative": 400,
		"Feature key is required":             400,
	}
	if code, ok := statusMap[err.Error()]; ok {
		return response.Error(c, err.Error(), code, nil)
	}
	return response.DomainError(c, err)
}
