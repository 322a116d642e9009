package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRecord is one stored copy of a message: every send writes a SENT
// copy for the sender and a RECEIVED copy for the recipient.
type MessageRecord struct {
	MessageID   uuid.UUID      `gorm:"column:message_id;type:uuid;primaryKey" json:"message_id"`
	OwnerID     uuid.UUID      `gorm:"column:owner_id;type:uuid;not null;index" json:"owner_id"`
	SenderID    uuid.UUID      `gorm:"column:sender_id;type:uuid;not null" json:"sender_id"`
	RecipientID uuid.UUID      `gorm:"column:recipient_id;type:uuid;not null" json:"recipient_id"`
	Subject     string         `gorm:"column:subject" json:"subject"`
	Content     string         `gorm:"column:content" json:"content"`
	Direction   string         `gorm:"column:direction;type:varchar(10);not null" json:"direction"`
	Read        bool           `gorm:"column:read;not null;default:false" json:"read"`
	SentAt      time.Time      `gorm:"column:sent_at;not null" json:"sent_at"`
	CreatedAt   time.Time      `json:"createdAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MessageRecord) TableName() string {
	return "MessageRecords"
}
