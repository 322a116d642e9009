package messages

import (
	"context"
	"testing"

	"casavia-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMessagesTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MessageRecord{}))
	return &Service{DB: db}
}

func TestSendMessage_WritesBothCopies(t *testing.T) {
	s := setupMessagesTest(t)
	sender, recipient := uuid.New(), uuid.New()

	sent, err := s.SendMessage(context.Background(), SendInput{
		SenderID:    sender,
		RecipientID: recipient,
		Subject:     "Viewing on Saturday",
		Content:     "Is 10:00 still fine?",
	})
	require.NoError(t, err)
	assert.Equal(t, "SENT", sent.Direction)
	assert.True(t, sent.Read, "the sender's copy is read from birth")

	var count int64
	require.NoError(t, s.DB.Model(&models.MessageRecord{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	inbox, err := s.Inbox(context.Background(), recipient)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "RECEIVED", inbox[0].Direction)
	assert.False(t, inbox[0].Read)
	assert.Equal(t, sender, inbox[0].SenderID)
}

func TestSendMessage_Validation(t *testing.T) {
	s := setupMessagesTest(t)
	id := uuid.New()

	_, err := s.SendMessage(context.Background(), SendInput{SenderID: id, RecipientID: id, Content: "hi"})
	require.Error(t, err)
	assert.Equal(t, "Cannot send a message to yourself", err.Error())

	_, err = s.SendMessage(context.Background(), SendInput{SenderID: id, RecipientID: uuid.New(), Content: "   "})
	require.Error(t, err)
	assert.Equal(t, "Message content is required", err.Error())
}

func TestInboxAndOutbox_SeparateDirections(t *testing.T) {
	s := setupMessagesTest(t)
	alice, bob := uuid.New(), uuid.New()

	_, err := s.SendMessage(context.Background(), SendInput{SenderID: alice, RecipientID: bob, Content: "first"})
	require.NoError(t, err)
	_, err = s.SendMessage(context.Background(), SendInput{SenderID: bob, RecipientID: alice, Content: "reply"})
	require.NoError(t, err)

	aliceInbox, err := s.Inbox(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, aliceInbox, 1)
	assert.Equal(t, "reply", aliceInbox[0].Content)

	aliceOutbox, err := s.Outbox(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, aliceOutbox, 1)
	assert.Equal(t, "first", aliceOutbox[0].Content)
}

func TestMarkRead_OnlyOwnerCopy(t *testing.T) {
	s := setupMessagesTest(t)
	sender, recipient := uuid.New(), uuid.New()

	_, err := s.SendMessage(context.Background(), SendInput{SenderID: sender, RecipientID: recipient, Content: "hello"})
	require.NoError(t, err)

	inbox, err := s.Inbox(context.Background(), recipient)
	require.NoError(t, err)
	require.Len(t, inbox, 1)

	// A stranger cannot mark the recipient's copy
	_, err = s.MarkRead(context.Background(), uuid.New(), inbox[0].MessageID)
	require.Error(t, err)
	assert.Equal(t, "Message not found", err.Error())

	marked, err := s.MarkRead(context.Background(), recipient, inbox[0].MessageID)
	require.NoError(t, err)
	assert.Equal(t, inbox[0].MessageID, marked.MessageID)

	count, err := s.UnreadCount(context.Background(), recipient)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUnreadCount(t *testing.T) {
	s := setupMessagesTest(t)
	sender, recipient := uuid.New(), uuid.New()

	for i := 0; i < 3; i++ {
		_, err := s.SendMessage(context.Background(), SendInput{SenderID: sender, RecipientID: recipient, Content: "ping"})
		require.NoError(t, err)
	}
	count, err := s.UnreadCount(context.Background(), recipient)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
