package messages

import (
	msgsvc "casavia-backend/internal/application/messages"
	"casavia-backend/internal/middleware"
	"casavia-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *msgsvc.Service
}

// POST /api/v1/messages/send-message
func (h *Handlers) SendMessage(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		RecipientID string `json:"recipient_id"`
		Subject     string `json:"subject"`
		Content     string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil || body.RecipientID == "" {
		return response.Error(c, "recipient_id and content are required", 400, nil)
	}
	recipientID, err := uuid.Parse(body.RecipientID)
	if err != nil {
		return response.Error(c, "Invalid recipient_id format", 400, nil)
	}
	record, err := h.Service.SendMessage(c.Context(), msgsvc.SendInput{
		SenderID:    actor,
		RecipientID: recipientID,
		Subject:     body.Subject,
		Content:     body.Content,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessCreated(c, "Message sent successfully", record, nil)
}

// GET /api/v1/messages/inbox
func (h *Handlers) Inbox(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	records, err := h.Service.Inbox(c.Context(), actor)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Inbox fetched successfully", records, nil)
}

// GET /api/v1/messages/outbox
func (h *Handlers) Outbox(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	records, err := h.Service.Outbox(c.Context(), actor)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Outbox fetched successfully", records, nil)
}

// POST /api/v1/messages/mark-read
func (h *Handlers) MarkRead(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		MessageID string `json:"message_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.MessageID == "" {
		return response.Error(c, "message_id is required", 400, nil)
	}
	messageID, err := uuid.Parse(body.MessageID)
	if err != nil {
		return response.Error(c, "Invalid message_id format", 400, nil)
	}
	record, err := h.Service.MarkRead(c.Context(), actor, messageID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Message marked as read", record, nil)
}

// GET /api/v1/messages/unread-count
func (h *Handlers) UnreadCount(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	count, err := h.Service.UnreadCount(c.Context(), actor)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Unread count fetched successfully", fiber.Map{"unread": count}, nil)
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
		"Sender and recipient are required": 400,
		"Cannot send a message to yourself": 400,
		"Message content is required":       400,
		"Message not found":                 404,
	}
	if code, ok := statusMap[err.Error()]; ok {
		return response.Error(c, err.Error(), code, nil)
	}
	return response.DomainError(c, err)
}
