package services

import (
	"context"
	"sort"
	"strings"

	"skillswap_server/models"
)

// UserService serves the public user directory and profile updates
type UserService struct {
	Users UserStore
}

// Get returns one user's full record
func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.Users.GetByID(ctx, userID)
}

// UpdateProfile applies a partial profile update and returns the new record
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error) {
	return s.Users.UpdateProfile(ctx, userID, update)
}

// ListAll returns every user's public summary, sorted by id
func (s *UserService) ListAll(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.Users.ListExcluding(ctx, nil)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

// FindBySkills returns users whose known skills intersect the requested ones
func (s *UserService) FindBySkills(ctx context.Context, skills []string) ([]models.UserSummary, error) {
	wanted := make([]string, 0, len(skills))
	for _, skill := range skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			wanted = append(wanted, trimmed)
		}
	}
	if len(wanted) == 0 {
		return nil, ErrValidation
	}

	users, err := s.Users.ListExcluding(ctx, nil)
	if err != nil {
		return nil, err
	}

	matching := users[:0]
	for _, user := range users {
		if skillsIntersect(user.SkillsKnown, wanted) {
			matching = append(matching, user)
		}
	}
	return summarize(matching), nil
}

func summarize(users []models.User) []models.UserSummary {
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries
}
