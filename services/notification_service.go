package services

import (
	"context"

	"skillswap_server/models"
)

// NotificationService derives aggregate unread/pending counts. Counts are
// recomputed from the Messages and Meetings tables on every call; there is
// no notification ledger to drift out of sync.
type NotificationService struct {
	Messages MessageStore
	Meetings MeetingStore
}

// Counts returns the user's current unread message and pending meeting counts
func (s *NotificationService) Counts(ctx context.Context, userID string) (models.NotificationCounts, error) {
	messages, err := s.Messages.CountUnread(ctx, userID)
	if err != nil {
		return models.NotificationCounts{}, err
	}

	meetings, err := s.Meetings.CountPendingForParticipant(ctx, userID)
	if err != nil {
		return models.NotificationCounts{}, err
	}

	return models.NotificationCounts{Messages: messages, Meetings: meetings}, nil
}
