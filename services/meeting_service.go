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

// MeetingService manages the meeting request/accept/decline/cancel/complete
// state machine between two matched users
type MeetingService struct {
	Users    UserStore
	Meetings MeetingStore
	Notifier Notifier
	Now      func() time.Time
}

// CreateMeetingInput carries the fields of a new meeting request
type CreateMeetingInput struct {
	ParticipantID string
	Title         string
	Description   string
	SkillToTeach  string
	SkillToLearn  string
	ScheduledDate string
	Duration      int
	MeetingType   string
	Location      string
}

func (s *MeetingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create stores a new pending meeting and notifies the participant. The
// initiator and participant must be mutual matches and the scheduled date
// strictly in the future.
func (s *MeetingService) Create(ctx context.Context, initiatorID string, input CreateMeetingInput) (models.Meeting, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.SkillToTeach) == "" || strings.TrimSpace(input.SkillToLearn) == "" {
		return models.Meeting{}, fmt.Errorf("title, skillToTeach and skillToLearn are required: %w", ErrValidation)
	}
	if input.MeetingType == "" {
		input.MeetingType = models.MeetingTypeVideoCall
	}
	if !models.IsValidMeetingType(input.MeetingType) {
		return models.Meeting{}, fmt.Errorf("unknown meeting type %q: %w", input.MeetingType, ErrValidation)
	}
	if input.Duration <= 0 {
		input.Duration = 60
	}

	scheduled, err := time.Parse(time.RFC3339, input.ScheduledDate)
	if err != nil {
		return models.Meeting{}, fmt.Errorf("scheduledDate must be RFC3339: %w", ErrValidation)
	}
	now := s.now()
	if !scheduled.After(now) {
		return models.Meeting{}, fmt.Errorf("meeting date must be in the future: %w", ErrValidation)
	}

	initiator, err := s.Users.GetByID(ctx, initiatorID)
	if err != nil {
		return models.Meeting{}, err
	}
	participant, err := s.Users.GetByID(ctx, input.ParticipantID)
	if err != nil {
		return models.Meeting{}, err
	}
	if !initiator.HasMatch(participant.UserID) || !participant.HasMatch(initiatorID) {
		return models.Meeting{}, fmt.Errorf("you can only schedule meetings with matched users: %w", ErrForbidden)
	}

	createdAt := now.UTC().Format(time.RFC3339)
	meeting := models.Meeting{
		MeetingID:     uuid.NewString(),
		InitiatorID:   initiatorID,
		ParticipantID: participant.UserID,
		Title:         input.Title,
		Description:   input.Description,
		SkillToTeach:  input.SkillToTeach,
		SkillToLearn:  input.SkillToLearn,
		ScheduledDate: scheduled.UTC().Format(time.RFC3339),
		Duration:      input.Duration,
		MeetingType:   input.MeetingType,
		Location:      input.Location,
		Status:        models.MeetingStatusPending,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	if err := s.Meetings.Put(ctx, meeting); err != nil {
		return models.Meeting{}, err
	}

	s.Notifier.Notify(participant.UserID, models.EventMeetingRequest, models.MeetingRequestEvent{
		Type: models.EventMeetingRequest,
		Meeting: models.MeetingRequestPayload{
			ID:            meeting.MeetingID,
			Title:         meeting.Title,
			SkillToTeach:  meeting.SkillToTeach,
			SkillToLearn:  meeting.SkillToLearn,
			ScheduledDate: meeting.ScheduledDate,
			Initiator:     models.UserRef{ID: initiator.UserID, Name: initiator.Name},
		},
	})
	s.pushPendingCount(ctx, participant.UserID)

	return meeting, nil
}

// Accept moves a pending meeting to accepted; only the participant may accept
func (s *MeetingService) Accept(ctx context.Context, meetingID, actorID string) (models.Meeting, error) {
	return s.respond(ctx, meetingID, actorID, models.MeetingStatusAccepted, models.EventMeetingAccepted)
}

// Decline moves a pending meeting to declined; only the participant may decline
func (s *MeetingService) Decline(ctx context.Context, meetingID, actorID string) (models.Meeting, error) {
	return s.respond(ctx, meetingID, actorID, models.MeetingStatusDeclined, models.EventMeetingDeclined)
}

func (s *MeetingService) respond(ctx context.Context, meetingID, actorID, status, event string) (models.Meeting, error) {
	meeting, err := s.Meetings.GetByID(ctx, meetingID)
	if err != nil {
		return models.Meeting{}, err
	}
	if meeting.ParticipantID != actorID {
		return models.Meeting{}, fmt.Errorf("only the participant can respond to a meeting request: %w", ErrForbidden)
	}
	if meeting.Status != models.MeetingStatusPending {
		return models.Meeting{}, fmt.Errorf("meeting is not pending: %w", ErrInvalidState)
	}

	updated, err := s.Meetings.UpdateStatus(ctx, meetingID, status, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return models.Meeting{}, err
	}

	s.Notifier.Notify(meeting.InitiatorID, event, models.MeetingStatusEvent{
		Type: event,
		Meeting: models.MeetingStatusPayload{
			ID:            updated.MeetingID,
			Title:         updated.Title,
			ScheduledDate: updated.ScheduledDate,
		},
	})
	s.pushPendingCount(ctx, actorID)

	return *updated, nil
}

// Cancel moves a pending or accepted meeting to cancelled; either party may
// cancel. The other party is notified and both pending counts refreshed.
func (s *MeetingService) Cancel(ctx context.Context, meetingID, actorID string) (models.Meeting, error) {
	meeting, err := s.Meetings.GetByID(ctx, meetingID)
	if err != nil {
		return models.Meeting{}, err
	}
	if !meeting.Involves(actorID) {
		return models.Meeting{}, fmt.Errorf("you can only cancel your own meetings: %w", ErrForbidden)
	}
	if meeting.Status != models.MeetingStatusPending && meeting.Status != models.MeetingStatusAccepted {
		return models.Meeting{}, fmt.Errorf("meeting cannot be cancelled: %w", ErrInvalidState)
	}

	updated, err := s.Meetings.UpdateStatus(ctx, meetingID, models.MeetingStatusCancelled, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return models.Meeting{}, err
	}

	otherID := meeting.OtherParty(actorID)
	s.Notifier.Notify(otherID, models.EventMeetingCancelled, models.MeetingStatusEvent{
		Type: models.EventMeetingCancelled,
		Meeting: models.MeetingStatusPayload{
			ID:    updated.MeetingID,
			Title: updated.Title,
		},
	})
	s.pushPendingCount(ctx, otherID)
	s.pushPendingCount(ctx, actorID)

	return *updated, nil
}

// Complete moves an accepted meeting to completed; either party may complete.
// Terminal, no further notification.
func (s *MeetingService) Complete(ctx context.Context, meetingID, actorID string) (models.Meeting, error) {
	meeting, err := s.Meetings.GetByID(ctx, meetingID)
	if err != nil {
		return models.Meeting{}, err
	}
	if !meeting.Involves(actorID) {
		return models.Meeting{}, fmt.Errorf("you can only complete your own meetings: %w", ErrForbidden)
	}
	if meeting.Status != models.MeetingStatusAccepted {
		return models.Meeting{}, fmt.Errorf("meeting must be accepted to complete: %w", ErrInvalidState)
	}

	updated, err := s.Meetings.UpdateStatus(ctx, meetingID, models.MeetingStatusCompleted, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return models.Meeting{}, err
	}
	return *updated, nil
}

// ListMine returns the user's meetings as initiator or participant, optionally
// filtered by status, ascending by scheduled date
func (s *MeetingService) ListMine(ctx context.Context, userID, statusFilter string) ([]models.Meeting, error) {
	meetings, err := s.Meetings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if statusFilter != "" && m.Status != statusFilter {
			continue
		}
		filtered = append(filtered, m)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ScheduledDate < filtered[j].ScheduledDate
	})
	return filtered, nil
}

// pushPendingCount is fire-and-forget: a failed recount only skips the push
func (s *MeetingService) pushPendingCount(ctx context.Context, userID string) {
	count, err := s.Meetings.CountPendingForParticipant(ctx, userID)
	if err != nil {
		log.Printf("Failed to recount pending meetings for %s: %v", userID, err)
		return
	}
	s.Notifier.Notify(userID, models.EventNotificationUpdate, models.NotificationUpdateEvent{
		Type:  models.NotificationKindMeetings,
		Count: count,
	})
}
