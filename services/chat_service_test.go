package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"skillswap_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService(users *fakeUserStore) (*ChatService, *fakeMessageStore, *recordingNotifier) {
	messages := &fakeMessageStore{}
	notifier := &recordingNotifier{}
	tick := 0
	service := &ChatService{
		Users:    users,
		Messages: messages,
		Notifier: notifier,
		Now: func() time.Time {
			tick++
			return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC).Add(time.Duration(tick) * time.Second)
		},
	}
	return service, messages, notifier
}

func matchedPair() *fakeUserStore {
	alice := testUser("alice", "Alice", []string{"JavaScript"}, []string{"Python"})
	bob := testUser("bob", "Bob", []string{"Python"}, []string{"JavaScript"})
	alice.Matches = []string{"bob"}
	bob.Matches = []string{"alice"}
	return newFakeUserStore(alice, bob)
}

func TestSendMessageStoredAndReceiverNotified(t *testing.T) {
	ctx := context.Background()
	service, messages, notifier := newChatService(matchedPair())

	message, err := service.SendMessage(ctx, "alice", "bob", "hey, still up for the Python intro?", "")
	require.NoError(t, err)
	assert.Equal(t, models.MessageTypeText, message.MessageType)
	assert.False(t, message.Read)
	assert.Equal(t, models.ConversationID("alice", "bob"), message.ConversationID)
	require.Len(t, messages.messages, 1)

	received := notifier.eventsFor("bob", models.EventNewMessage)
	require.Len(t, received, 1)
	payload := received[0].Payload.(models.NewMessageEvent)
	assert.Equal(t, "Alice", payload.Message.Sender.Name)
	assert.Equal(t, message.Content, payload.Message.Content)

	// the unread count push follows the message
	counts := notifier.eventsFor("bob", models.EventNotificationUpdate)
	require.Len(t, counts, 1)
	update := counts[0].Payload.(models.NotificationUpdateEvent)
	assert.Equal(t, models.NotificationKindMessages, update.Type)
	assert.Equal(t, 1, update.Count)
}

func TestSendMessageRequiresMutualMatch(t *testing.T) {
	ctx := context.Background()
	users := matchedPair()
	require.NoError(t, users.Create(ctx, *testUser("carol", "Carol", nil, nil)))
	service, _, notifier := newChatService(users)

	_, err := service.SendMessage(ctx, "alice", "carol", "hello", "")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, notifier.events)
}

func TestSendMessageValidation(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newChatService(matchedPair())

	_, err := service.SendMessage(ctx, "alice", "bob", "   ", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.SendMessage(ctx, "alice", "bob", "hello", "carrier_pigeon")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.SendMessage(ctx, "alice", "ghost", "hello", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetConversationReturnsTrailingWindow(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newChatService(matchedPair())

	for i := 0; i < 60; i++ {
		_, err := service.SendMessage(ctx, "alice", "bob", fmt.Sprintf("msg-%02d", i), "")
		require.NoError(t, err)
	}

	conversation, err := service.GetConversation(ctx, "bob", "alice")
	require.NoError(t, err)
	require.Len(t, conversation, 50)

	// oldest ten dropped, remainder in chronological order
	assert.Equal(t, "msg-10", conversation[0].Content)
	assert.Equal(t, "msg-59", conversation[49].Content)
	for i := 1; i < len(conversation); i++ {
		assert.LessOrEqual(t, conversation[i-1].CreatedAt, conversation[i].CreatedAt)
	}
}

func TestGetConversationRequiresMatch(t *testing.T) {
	ctx := context.Background()
	users := matchedPair()
	require.NoError(t, users.Create(ctx, *testUser("carol", "Carol", nil, nil)))
	service, _, _ := newChatService(users)

	_, err := service.GetConversation(ctx, "alice", "carol")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMarkConversationReadClearsUnread(t *testing.T) {
	ctx := context.Background()
	service, messages, notifier := newChatService(matchedPair())

	_, err := service.SendMessage(ctx, "bob", "alice", "one", "")
	require.NoError(t, err)
	_, err = service.SendMessage(ctx, "bob", "alice", "two", "")
	require.NoError(t, err)
	notifier.reset()

	require.NoError(t, service.MarkConversationRead(ctx, "alice", "bob"))

	count, err := messages.CountUnread(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, count)

	// the read state change pushes a fresh zero count
	updates := notifier.eventsFor("alice", models.EventNotificationUpdate)
	require.Len(t, updates, 1)
	assert.Equal(t, 0, updates[0].Payload.(models.NotificationUpdateEvent).Count)
}

func TestUnreadCountsGroupedBySender(t *testing.T) {
	ctx := context.Background()
	messages := &fakeMessageStore{}
	service := &ChatService{Users: matchedPair(), Messages: messages, Notifier: &recordingNotifier{}}

	seed := []models.Message{
		{MessageID: "m1", SenderID: "bob", ReceiverID: "alice"},
		{MessageID: "m2", SenderID: "bob", ReceiverID: "alice"},
		{MessageID: "m3", SenderID: "carol", ReceiverID: "alice"},
		{MessageID: "m4", SenderID: "bob", ReceiverID: "alice", Read: true},
		{MessageID: "m5", SenderID: "alice", ReceiverID: "bob"},
	}
	for _, msg := range seed {
		require.NoError(t, messages.Put(ctx, msg))
	}

	counts, err := service.UnreadCounts(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, models.UnreadCount{SenderID: "bob", Count: 2}, counts[0])
	assert.Equal(t, models.UnreadCount{SenderID: "carol", Count: 1}, counts[1])
}
