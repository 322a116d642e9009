package messages

import (
	"context"
	"errors"
	"strings"

	"casavia-backend/internal/domain"
	"casavia-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service is the message store. Every send writes two records inside one
// transaction: the sender's SENT copy (read from birth) and the recipient's
// RECEIVED copy.
type Service struct {
	DB *gorm.DB
}

// SendInput for sending a message.
type SendInput struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Subject     string
	Content     string
}

// SendMessage materializes both copies and persists them atomically. The
// returned record is the sender's copy.
func (s *Service) SendMessage(ctx context.Context, in SendInput) (*models.MessageRecord, error) {
	if in.SenderID == uuid.Nil || in.RecipientID == uuid.Nil {
		return nil, errors.New("Sender and recipient are required")
	}
	if in.SenderID == in.RecipientID {
		return nil, errors.New("Cannot send a message to yourself")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, errors.New("Message content is required")
	}

	outbound := domain.OutboundMessage(in.SenderID, in.RecipientID, in.Subject, in.Content)
	inbound := domain.InboundMessage(in.SenderID, in.RecipientID, in.Subject, in.Content)

	sent := recordOf(outbound, in.SenderID)
	received := recordOf(inbound, in.RecipientID)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sent).Error; err != nil {
			return err
		}
		return tx.Create(received).Error
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("message_id", sent.MessageID.String()).
		Str("recipient_id", in.RecipientID.String()).
		Msg("Message sent")
	return sent, nil
}

// Inbox returns the owner's RECEIVED copies, newest first.
func (s *Service) Inbox(ctx context.Context, ownerID uuid.UUID) ([]models.MessageRecord, error) {
	return s.mailbox(ctx, ownerID, domain.MessageReceived)
}

// Outbox returns the owner's SENT copies, newest first.
func (s *Service) Outbox(ctx context.Context, ownerID uuid.UUID) ([]models.MessageRecord, error) {
	return s.mailbox(ctx, ownerID, domain.MessageSent)
}

func (s *Service) mailbox(ctx context.Context, ownerID uuid.UUID, direction domain.MessageDirection) ([]models.MessageRecord, error) {
	var records []models.MessageRecord
	err := s.DB.WithContext(ctx).
		Where("owner_id = ? AND direction = ?", ownerID, string(direction)).
		Order("sent_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// MarkRead flags the owner's copy of a message as read. Only the copy's
// owner can mark it.
func (s *Service) MarkRead(ctx context.Context, ownerID, messageID uuid.UUID) (*models.MessageRecord, error) {
	var record models.MessageRecord
	err := s.DB.WithContext(ctx).
		Where("message_id = ? AND owner_id = ?", messageID, ownerID).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.New("Message not found")
		}
		return nil, err
	}
	if !record.Read {
		if err := s.DB.WithContext(ctx).Model(&record).Update("read", true).Error; err != nil {
			return nil, err
		}
	}
	return &record, nil
}

// UnreadCount counts the owner's unread received messages.
func (s *Service) UnreadCount(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.MessageRecord{}).
		Where("owner_id = ? AND direction = ? AND read = ?", ownerID, string(domain.MessageReceived), false).
		Count(&count).Error
	return count, err
}

func recordOf(m *domain.Message, ownerID uuid.UUID) *models.MessageRecord {
	return &models.MessageRecord{
		MessageID:   m.ID(),
		OwnerID:     ownerID,
		SenderID:    m.SenderID(),
		RecipientID: m.RecipientID(),
		Subject:     m.Subject(),
		Content:     m.Content(),
		Direction:   string(m.Direction()),
		Read:        m.Read(),
		SentAt:      m.SentAt(),
	}
}
