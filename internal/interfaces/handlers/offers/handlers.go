package offers

import (
	offersvc "casavia-backend/internal/application/offers"
	"casavia-backend/internal/middleware"
	"casavia-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *offersvc.Service
}

// POST /api/v1/offers/place-offer
func (h *Handlers) PlaceOffer(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PropertyID string  `json:"property_id"`
		Amount     float64 `json:"amount"`
	}
	if err := c.BodyParser(&body); err != nil || body.PropertyID == "" {
		return response.Error(c, "property_id and amount are required", 400, nil)
	}
	propertyID, err := uuid.Parse(body.PropertyID)
	if err != nil {
		return response.Error(c, "Invalid property_id format", 400, nil)
	}
	offer, err := h.Service.PlaceOffer(c.Context(), actor, propertyID, body.Amount)
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessCreated(c, "Offer placed successfully", offer, nil)
}

// POST /api/v1/offers/respond-to-offer
func (h *Handlers) RespondToOffer(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		OfferID string `json:"offer_id"`
		Accept  *bool  `json:"accept"`
	}
	if err := c.BodyParser(&body); err != nil || body.OfferID == "" || body.Accept == nil {
		return response.Error(c, "offer_id and accept are required", 400, nil)
	}
	offerID, err := uuid.Parse(body.OfferID)
	if err != nil {
		return response.Error(c, "Invalid offer_id format", 400, nil)
	}
	offer, err := h.Service.RespondToOffer(c.Context(), actor, offerID, *body.Accept)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Offer response recorded", offer, nil)
}

// POST /api/v1/offers/withdraw-offer
func (h *Handlers) WithdrawOffer(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		OfferID string `json:"offer_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.OfferID == "" {
		return response.Error(c, "offer_id is required", 400, nil)
	}
	offerID, err := uuid.Parse(body.OfferID)
	if err != nil {
		return response.Error(c, "Invalid offer_id format", 400, nil)
	}
	offer, err := h.Service.WithdrawOffer(c.Context(), actor, offerID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Offer withdrawn successfully", offer, nil)
}

// GET /api/v1/offers/get-offer/:offer_id
func (h *Handlers) GetOffer(c *fiber.Ctx) error {
	offerID, err := uuid.Parse(c.Params("offer_id"))
	if err != nil {
		return response.Error(c, "Invalid offer_id format", 400, nil)
	}
	offer, err := h.Service.GetOffer(c.Context(), offerID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Offer fetched successfully", offer, nil)
}

// GET /api/v1/offers/get-received-offers
func (h *Handlers) GetReceivedOffers(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	offers, err := h.Service.ReceivedOffers(c.Context(), actor)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Received offers fetched successfully", offers, nil)
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
		"Buyer not found":    404,
		"Seller not found":   404,
		"Property not found": 404,
		"Offer not found":    404,
	}
	if code, ok := statusMap[err.Error()]; ok {
		return response.Error(c, err.Error(), code, nil)
	}
	return response.DomainError(c, err)
}
