package viewings

import (
	"context"
	"time"

	viewsvc "casavia-backend/internal/application/viewings"
	"casavia-backend/internal/middleware"
	"casavia-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *viewsvc.Service
}

// POST /api/v1/viewings/request-viewing
func (h *Handlers) RequestViewing(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PropertyID string    `json:"property_id"`
		AgentID    string    `json:"agent_id"`
		TimeSlot   time.Time `json:"time_slot"`
	}
	if err := c.BodyParser(&body); err != nil || body.PropertyID == "" || body.AgentID == "" {
		return response.Error(c, "property_id, agent_id and time_slot are required", 400, nil)
	}
	propertyID, err := uuid.Parse(body.PropertyID)
	if err != nil {
		return response.Error(c, "Invalid property_id format", 400, nil)
	}
	agentID, err := uuid.Parse(body.AgentID)
	if err != nil {
		return response.Error(c, "Invalid agent_id format", 400, nil)
	}
	viewing, err := h.Service.RequestViewing(c.Context(), actor, propertyID, agentID, body.TimeSlot)
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessCreated(c, "Viewing requested successfully", viewing, nil)
}

// POST /api/v1/viewings/confirm-viewing
func (h *Handlers) ConfirmViewing(c *fiber.Ctx) error {
	return h.transition(c, h.Service.ConfirmViewing, "Viewing confirmed successfully")
}

// POST /api/v1/viewings/cancel-viewing
func (h *Handlers) CancelViewing(c *fiber.Ctx) error {
	return h.transition(c, h.Service.CancelViewing, "Viewing cancelled successfully")
}

// POST /api/v1/viewings/complete-viewing — optional feedback in the same call.
func (h *Handlers) CompleteViewing(c *fiber.Ctx) error {
	var body struct {
		ViewingID string `json:"viewing_id"`
		Feedback  string `json:"feedback"`
	}
	if err := c.BodyParser(&body); err != nil || body.ViewingID == "" {
		return response.Error(c, "viewing_id is required", 400, nil)
	}
	viewingID, err := uuid.Parse(body.ViewingID)
	if err != nil {
		return response.Error(c, "Invalid viewing_id format", 400, nil)
	}
	viewing, err := h.Service.CompleteViewing(c.Context(), viewingID, body.Feedback)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Viewing completed successfully", viewing, nil)
}

// POST /api/v1/viewings/reschedule-viewing
func (h *Handlers) RescheduleViewing(c *fiber.Ctx) error {
	var body struct {
		ViewingID string    `json:"viewing_id"`
		TimeSlot  time.Time `json:"time_slot"`
	}
	if err := c.BodyParser(&body); err != nil || body.ViewingID == "" {
		return response.Error(c, "viewing_id and time_slot are required", 400, nil)
	}
	viewingID, err := uuid.Parse(body.ViewingID)
	if err != nil {
		return response.Error(c, "Invalid viewing_id format", 400, nil)
	}
	viewing, err := h.Service.RescheduleViewing(c.Context(), viewingID, body.TimeSlot)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Viewing rescheduled successfully", viewing, nil)
}

// POST /api/v1/viewings/record-feedback
func (h *Handlers) RecordFeedback(c *fiber.Ctx) error {
	var body struct {
		ViewingID string `json:"viewing_id"`
		Feedback  string `json:"feedback"`
	}
	if err := c.BodyParser(&body); err != nil || body.ViewingID == "" {
		return response.Error(c, "viewing_id and feedback are required", 400, nil)
	}
	viewingID, err := uuid.Parse(body.ViewingID)
	if err != nil {
		return response.Error(c, "Invalid viewing_id format", 400, nil)
	}
	viewing, err := h.Service.RecordFeedback(c.Context(), viewingID, body.Feedback)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Feedback recorded successfully", viewing, nil)
}

// GET /api/v1/viewings/get-viewing/:viewing_id
func (h *Handlers) GetViewing(c *fiber.Ctx) error {
	viewingID, err := uuid.Parse(c.Params("viewing_id"))
	if err != nil {
		return response.Error(c, "Invalid viewing_id format", 400, nil)
	}
	viewing, err := h.Service.GetViewing(c.Context(), viewingID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Viewing fetched successfully", viewing, nil)
}

func (h *Handlers) transition(c *fiber.Ctx, op func(ctx context.Context, viewingID uuid.UUID) (*viewsvc.ViewingView, error), message string) error {
	var body struct {
		ViewingID string `json:"viewing_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.ViewingID == "" {
		return response.Error(c, "viewing_id is required", 400, nil)
	}
	viewingID, err := uuid.Parse(body.ViewingID)
	if err != nil {
		return response.Error(c, "Invalid viewing_id format", 400, nil)
	}
	viewing, err := op(c.Context(), viewingID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, message, viewing, nil)
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
		"Property not found": 404,
		"Viewing not found":  404,
	}
	if code, ok := statusMap[err.Error()]; ok {
		return response.Error(c, err.Error(), code, nil)
	}
	return response.DomainError(c, err)
}
