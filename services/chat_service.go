package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"skillswap_server/models"

	"github.com/google/uuid"
)

// conversationLimit caps how many of the most recent messages a
// conversation fetch returns
const conversationLimit = 50

// ChatService stores and retrieves messages between matched users
type ChatService struct {
	Users    UserStore
	Messages MessageStore
	Notifier Notifier
	Now      func() time.Time
}

func (s *ChatService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SendMessage persists a message from sender to receiver and notifies the
// receiver. Both users must exist and be mutual matches.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID, content, messageType string) (models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return models.Message{}, fmt.Errorf("message content is required: %w", ErrValidation)
	}
	if messageType == "" {
		messageType = models.MessageTypeText
	}
	if !models.IsValidMessageType(messageType) {
		return models.Message{}, fmt.Errorf("unknown message type %q: %w", messageType, ErrValidation)
	}

	sender, err := s.Users.GetByID(ctx, senderID)
	if err != nil {
		return models.Message{}, err
	}
	receiver, err := s.Users.GetByID(ctx, receiverID)
	if err != nil {
		return models.Message{}, err
	}

	if !sender.HasMatch(receiverID) || !receiver.HasMatch(senderID) {
		return models.Message{}, fmt.Errorf("you can only message matched users: %w", ErrForbidden)
	}

	message := models.Message{
		ConversationID: models.ConversationID(senderID, receiverID),
		MessageID:      uuid.NewString(),
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        content,
		MessageType:    messageType,
		Read:           false,
		CreatedAt:      s.now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.Messages.Put(ctx, message); err != nil {
		return models.Message{}, err
	}

	s.Notifier.Notify(receiverID, models.EventNewMessage, models.NewMessageEvent{
		Type: models.EventNewMessage,
		Message: models.NewMessagePayload{
			ID:          message.MessageID,
			Content:     message.Content,
			MessageType: message.MessageType,
			Sender:      models.UserRef{ID: sender.UserID, Name: sender.Name},
			ReceiverID:  receiverID,
			CreatedAt:   message.CreatedAt,
		},
	})
	s.pushUnreadCount(ctx, receiverID)

	return message, nil
}

// GetConversation returns the most recent messages between the two users in
// chronological order, capped at conversationLimit. Both must be matched.
func (s *ChatService) GetConversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := s.Users.GetByID(ctx, otherUserID)
	if err != nil {
		return nil, err
	}
	if !user.HasMatch(otherUserID) || !other.HasMatch(userID) {
		return nil, fmt.Errorf("you can only view conversations with matched users: %w", ErrForbidden)
	}

	messages, err := s.Messages.ListConversation(ctx, models.ConversationID(userID, otherUserID))
	if err != nil {
		return nil, err
	}
	if len(messages) > conversationLimit {
		messages = messages[len(messages)-conversationLimit:]
	}
	return messages, nil
}

// MarkConversationRead flags all unread messages from senderID to
// receiverID as read and refreshes the receiver's unread count. An empty
// senderID marks every conversation read.
func (s *ChatService) MarkConversationRead(ctx context.Context, receiverID, senderID string) error {
	if err := s.Messages.MarkRead(ctx, receiverID, senderID); err != nil {
		return err
	}
	s.pushUnreadCount(ctx, receiverID)
	return nil
}

// UnreadCounts returns the receiver's unread message counts grouped by sender
func (s *ChatService) UnreadCounts(ctx context.Context, receiverID string) ([]models.UnreadCount, error) {
	unread, err := s.Messages.ListUnreadByReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	bySender := map[string]int{}
	for _, msg := range unread {
		bySender[msg.SenderID]++
	}

	counts := make([]models.UnreadCount, 0, len(bySender))
	for senderID, count := range bySender {
		counts = append(counts, models.UnreadCount{SenderID: senderID, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].SenderID < counts[j].SenderID })
	return counts, nil
}

// pushUnreadCount is fire-and-forget: a failed recount only skips the push
func (s *ChatService) pushUnreadCount(ctx context.Context, receiverID string) {
	count, err := s.Messages.CountUnread(ctx, receiverID)
	if err != nil {
		log.Printf("Failed to recount unread messages for %s: %v", receiverID, err)
		return
	}
	s.Notifier.Notify(receiverID, models.EventNotificationUpdate, models.NotificationUpdateEvent{
		Type:  models.NotificationKindMessages,
		Count: count,
	})
}
