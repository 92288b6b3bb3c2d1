package services

import (
	"context"

	"skillswap_server/models"
)

// ProfileUpdate carries a partial profile update; nil fields are left untouched
type ProfileUpdate struct {
	Name           *string
	ProfilePicture *string
	SkillsKnown    *[]string
	SkillsWanted   *[]string
}

// UserStore is the persistence surface the user-facing services depend on
type UserStore interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user models.User) error
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error)
	AppendSwipe(ctx context.Context, userID string, swipe models.SwipeRecord) error
	AddMatch(ctx context.Context, userID, matchedUserID string) error
	ListExcluding(ctx context.Context, exclude map[string]struct{}) ([]models.User, error)
}

// MessageStore persists and queries chat messages
type MessageStore interface {
	Put(ctx context.Context, message models.Message) error
	ListConversation(ctx context.Context, conversationID string) ([]models.Message, error)
	ListUnreadByReceiver(ctx context.Context, receiverID string) ([]models.Message, error)
	// MarkRead flags the receiver's unread messages from senderID as read;
	// an empty senderID covers all senders
	MarkRead(ctx context.Context, receiverID, senderID string) error
	CountUnread(ctx context.Context, receiverID string) (int, error)
}

// MeetingStore persists and queries meeting requests
type MeetingStore interface {
	Put(ctx context.Context, meeting models.Meeting) error
	GetByID(ctx context.Context, meetingID string) (*models.Meeting, error)
	UpdateStatus(ctx context.Context, meetingID, status, updatedAt string) (*models.Meeting, error)
	ListByUser(ctx context.Context, userID string) ([]models.Meeting, error)
	CountPendingForParticipant(ctx context.Context, userID string) (int, error)
}

// Notifier pushes a real-time event to one user's room. Delivery is
// best-effort; a user without an open socket simply misses the event.
type Notifier interface {
	Notify(userID, event string, payload interface{})
}
