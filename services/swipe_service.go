package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"skillswap_server/models"
)

// SwipeService records swipe decisions and evaluates match eligibility
type SwipeService struct {
	Users    UserStore
	Matches  *MatchService
	Notifier Notifier
	Policy   MatchPolicy
	Now      func() time.Time
}

// SwipeResult is the outcome of one swipe
type SwipeResult struct {
	Matched     bool
	MatchedUser *models.UserSummary
}

func (s *SwipeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Swipe records a directional decision by actorID about targetID. The swipe
// is persisted for both directions; a right swipe additionally evaluates the
// configured match policy and, on success, commits the match on both records
// and notifies both users.
func (s *SwipeService) Swipe(ctx context.Context, actorID, targetID, direction string) (SwipeResult, error) {
	if direction != models.SwipeLeft && direction != models.SwipeRight {
		return SwipeResult{}, fmt.Errorf("direction must be left or right: %w", ErrValidation)
	}
	if actorID == targetID {
		return SwipeResult{}, fmt.Errorf("cannot swipe on yourself: %w", ErrValidation)
	}

	target, err := s.Users.GetByID(ctx, targetID)
	if err != nil {
		return SwipeResult{}, err
	}

	actor, err := s.Users.GetByID(ctx, actorID)
	if err != nil {
		return SwipeResult{}, err
	}

	// read-then-write check; a concurrent duplicate can slip through, which
	// is an accepted weak consistency point
	if actor.HasSwiped(targetID) {
		return SwipeResult{}, fmt.Errorf("already swiped on this user: %w", ErrConflict)
	}

	swipe := models.SwipeRecord{
		TargetUserID: targetID,
		Direction:    direction,
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
	}
	if err := s.Users.AppendSwipe(ctx, actorID, swipe); err != nil {
		return SwipeResult{}, err
	}

	if direction != models.SwipeRight || !s.Policy.Matches(actor, target) {
		return SwipeResult{}, nil
	}

	if err := s.Matches.CommitMatch(ctx, actorID, targetID); err != nil {
		return SwipeResult{}, err
	}

	actorSummary := actor.Summary()
	targetSummary := target.Summary()
	s.Notifier.Notify(actorID, models.EventMatch, models.MatchEvent{
		Type:        "new_match",
		Message:     "It's a match! 🎉",
		MatchedUser: targetSummary,
	})
	s.Notifier.Notify(targetID, models.EventMatch, models.MatchEvent{
		Type:        "new_match",
		Message:     "It's a match! 🎉",
		MatchedUser: actorSummary,
	})

	return SwipeResult{Matched: true, MatchedUser: &targetSummary}, nil
}

// ListCandidates returns the users actorID can still swipe on: everyone
// except themselves, previously swiped targets (either direction) and
// current matches. Sorted by id so the order is stable across calls.
func (s *SwipeService) ListCandidates(ctx context.Context, actorID string) ([]models.UserSummary, error) {
	actor, err := s.Users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	exclude := map[string]struct{}{actorID: {}}
	for _, swipe := range actor.Swipes {
		exclude[swipe.TargetUserID] = struct{}{}
	}
	for _, matchID := range actor.Matches {
		exclude[matchID] = struct{}{}
	}

	users, err := s.Users.ListExcluding(ctx, exclude)
	if err != nil {
		return nil, err
	}

	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}
