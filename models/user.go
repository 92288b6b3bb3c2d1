package models

// UsersTable is the DynamoDB table name for user records
const UsersTable = "Users"

// UserEmailIndex is the GSI used to look up a user by email at login
const UserEmailIndex = "email-index"

// Swipe directions
const (
	SwipeLeft  = "left"
	SwipeRight = "right"
)

// SwipeRecord is one directional decision by a user about another.
// Records are append-only and never mutated.
type SwipeRecord struct {
	TargetUserID string `dynamodbav:"targetUserId" json:"targetUserId"`
	Direction    string `dynamodbav:"direction" json:"direction"`
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
}

// User is the full user record as stored in the Users table
type User struct {
	UserID         string        `dynamodbav:"userId" json:"id"`
	Name           string        `dynamodbav:"name" json:"name"`
	Email          string        `dynamodbav:"email" json:"email"`
	PasswordHash   string        `dynamodbav:"passwordHash" json:"-"`
	ProfilePicture string        `dynamodbav:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	SkillsKnown    []string      `dynamodbav:"skillsKnown,stringset,omitempty" json:"skillsKnown"`
	SkillsWanted   []string      `dynamodbav:"skillsWanted,stringset,omitempty" json:"skillsWanted"`
	Swipes         []SwipeRecord `dynamodbav:"swipes,omitempty" json:"-"`
	Matches        []string      `dynamodbav:"matches,stringset,omitempty" json:"-"`
	CreatedAt      string        `dynamodbav:"createdAt" json:"createdAt"`
}

// UserSummary is the public projection of a user returned by swipe,
// candidate and match endpoints.
type UserSummary struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	SkillsKnown    []string `json:"skillsKnown"`
	SkillsWanted   []string `json:"skillsWanted"`
}

// Summary returns the public projection of the user
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.UserID,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
		SkillsKnown:    u.SkillsKnown,
		SkillsWanted:   u.SkillsWanted,
	}
}

// HasMatch reports whether userID is in the user's match set
func (u *User) HasMatch(userID string) bool {
	for _, id := range u.Matches {
		if id == userID {
			return true
		}
	}
	return false
}

// HasSwiped reports whether the user already swiped on targetID, in either direction
func (u *User) HasSwiped(targetID string) bool {
	for _, s := range u.Swipes {
		if s.TargetUserID == targetID {
			return true
		}
	}
	return false
}

// HasRightSwiped reports whether the user swiped right on targetID
func (u *User) HasRightSwiped(targetID string) bool {
	for _, s := range u.Swipes {
		if s.TargetUserID == targetID && s.Direction == SwipeRight {
			return true
		}
	}
	return false
}

// MatchEntry is a match-listing row; potential matches are right-swipes
// with strictly complementary skills that are not yet confirmed mutual.
type MatchEntry struct {
	UserSummary
	IsPotentialMatch bool `json:"isPotentialMatch,omitempty"`
}
