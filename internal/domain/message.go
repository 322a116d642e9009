package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageDirection marks which side of a conversation a copy belongs to.
type MessageDirection string

const (
	MessageSent     MessageDirection = "SENT"
	MessageReceived MessageDirection = "RECEIVED"
)

// Message is one copy of a participant-to-participant note about a property.
// The core only carries ids; storing and routing messages is the message
// store's business.
type Message struct {
	id          uuid.UUID
	senderID    uuid.UUID
	recipientID uuid.UUID
	subject     string
	content     string
	sentAt      time.Time
	direction   MessageDirection
	read        bool
}

func newMessage(senderID, recipientID uuid.UUID, subject, content string, direction MessageDirection) *Message {
	return &Message{
		id:          uuid.New(),
		senderID:    senderID,
		recipientID: recipientID,
		subject:     subject,
		content:     content,
		sentAt:      time.Now(),
		direction:   direction,
		// the sender's copy is implicitly read
		read: direction == MessageSent,
	}
}

// OutboundMessage creates the sender's copy.
func OutboundMessage(senderID, recipientID uuid.UUID, subject, content string) *Message {
	return newMessage(senderID, recipientID, subject, content, MessageSent)
}

// InboundMessage creates the recipient's copy.
func InboundMessage(senderID, recipientID uuid.UUID, subject, content string) *Message {
	return newMessage(senderID, recipientID, subject, content, MessageReceived)
}

func (m *Message) ID() uuid.UUID               { return m.id }
func (m *Message) SenderID() uuid.UUID         { return m.senderID }
func (m *Message) RecipientID() uuid.UUID      { return m.recipientID }
func (m *Message) Subject() string             { return m.subject }
func (m *Message) Content() string             { return m.content }
func (m *Message) SentAt() time.Time           { return m.sentAt }
func (m *Message) Direction() MessageDirection { return m.direction }
func (m *Message) Read() bool                  { return m.read }

// MarkAsRead flags the copy as read.
func (m *Message) MarkAsRead() {
	m.read = true
}
