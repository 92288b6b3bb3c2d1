package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"skillswap_server/models"
)

// MatchPolicy decides when a right swipe turns into a confirmed match
type MatchPolicy string

const (
	// MatchPolicyLenient matches instantly on a right swipe when either user
	// can teach the other, without waiting for reciprocity
	MatchPolicyLenient MatchPolicy = "lenient"
	// MatchPolicyMutual additionally requires that the target already
	// right-swiped the actor
	MatchPolicyMutual MatchPolicy = "mutual"
)

// ParseMatchPolicy resolves a configured policy name, defaulting to lenient
func ParseMatchPolicy(value string) MatchPolicy {
	if MatchPolicy(strings.ToLower(strings.TrimSpace(value))) == MatchPolicyMutual {
		return MatchPolicyMutual
	}
	return MatchPolicyLenient
}

// Matches evaluates the policy for a right swipe by actor on target
func (p MatchPolicy) Matches(actor, target *models.User) bool {
	complementary := canTeach(actor, target) || canTeach(target, actor)
	if p == MatchPolicyMutual {
		return complementary && target.HasRightSwiped(actor.UserID)
	}
	return complementary
}

// canTeach reports whether one of teacher's known skills is wanted by learner
func canTeach(teacher, learner *models.User) bool {
	return skillsIntersect(teacher.SkillsKnown, learner.SkillsWanted)
}

func skillsIntersect(known, wanted []string) bool {
	for _, k := range known {
		for _, w := range wanted {
			if k == w {
				return true
			}
		}
	}
	return false
}

// MatchService keeps the match relation symmetric across two user records
type MatchService struct {
	Users UserStore
}

// CommitMatch adds each user to the other's match set. The underlying set
// add is idempotent, so concurrent commits from both sides of a pair are
// safe. The store offers no two-record transaction; if the second write
// fails it is retried once, and a persistent failure is surfaced rather
// than leaving the half-applied state silent.
func (s *MatchService) CommitMatch(ctx context.Context, userA, userB string) error {
	if err := s.Users.AddMatch(ctx, userA, userB); err != nil {
		return fmt.Errorf("failed to record match for %s: %w", userA, err)
	}

	if err := s.Users.AddMatch(ctx, userB, userA); err != nil {
		log.Printf("⚠️ Match %s/%s half-applied, retrying second write: %v", userA, userB, err)
		if err := s.Users.AddMatch(ctx, userB, userA); err != nil {
			return fmt.Errorf("match between %s and %s left half-applied: %w", userA, userB, err)
		}
	}
	return nil
}

// ListMatches returns the user's confirmed matches followed by potential
// matches: targets the user right-swiped whose skills are complementary in
// both directions but who have not confirmed the match yet.
func (s *MatchService) ListMatches(ctx context.Context, userID string) ([]models.MatchEntry, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := []models.MatchEntry{}
	for _, matchID := range sortedCopy(user.Matches) {
		matched, err := s.Users.GetByID(ctx, matchID)
		if err != nil {
			// a dangling match id should not break the listing
			log.Printf("Skipping unresolvable match %s for %s: %v", matchID, userID, err)
			continue
		}
		entries = append(entries, models.MatchEntry{UserSummary: matched.Summary()})
	}

	for _, swipe := range user.Swipes {
		if swipe.Direction != models.SwipeRight || user.HasMatch(swipe.TargetUserID) {
			continue
		}
		target, err := s.Users.GetByID(ctx, swipe.TargetUserID)
		if err != nil {
			continue
		}
		// potential matches use the stricter bidirectional check
		if canTeach(user, target) && canTeach(target, user) {
			entries = append(entries, models.MatchEntry{UserSummary: target.Summary(), IsPotentialMatch: true})
		}
	}

	return entries, nil
}

func sortedCopy(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}
