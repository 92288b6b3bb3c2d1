package services

import (
	"context"
	"testing"
	"time"

	"skillswap_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSwipeService(users *fakeUserStore) (*SwipeService, *recordingNotifier) {
	notifier := &recordingNotifier{}
	service := &SwipeService{
		Users:    users,
		Matches:  &MatchService{Users: users},
		Notifier: notifier,
		Policy:   MatchPolicyLenient,
		Now:      func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) },
	}
	return service, notifier
}

func TestSwipeRightWithComplementarySkillsMatches(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore(
		testUser("alice", "Alice", []string{"JavaScript"}, []string{"Python"}),
		testUser("bob", "Bob", []string{"Python"}, []string{"Guitar"}),
	)
	service, notifier := newSwipeService(users)

	result, err := service.Swipe(ctx, "alice", "bob", models.SwipeRight)
	require.NoError(t, err)
	require.True(t, result.Matched)
	require.NotNil(t, result.MatchedUser)
	assert.Equal(t, "bob", result.MatchedUser.ID)

	// the match relation is recorded on both sides
	alice, err := users.GetByID(ctx, "alice")
	require.NoError(t, err)
	bob, err := users.GetByID(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, alice.HasMatch("bob"))
	assert.True(t, bob.HasMatch("alice"))

	// both users receive a match event naming the other
	aliceEvents := notifier.eventsFor("alice", models.EventMatch)
	require.Len(t, aliceEvents, 1)
	assert.Equal(t, "bob", aliceEvents[0].Payload.(models.MatchEvent).MatchedUser.ID)

	bobEvents := notifier.eventsFor("bob", models.EventMatch)
	require.Len(t, bobEvents, 1)
	assert.Equal(t, "alice", bobEvents[0].Payload.(models.MatchEvent).MatchedUser.ID)
}

func TestSwipeLeftNeverMatches(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore(
		testUser("alice", "Alice", []string{"JavaScript"}, []string{"Python"}),
		testUser("bob", "Bob", []string{"Python"}, []string{"JavaScript"}),
	)
	service, notifier := newSwipeService(users)

	result, err := service.Swipe(ctx, "alice", "bob", models.SwipeLeft)
	require.NoError(t, err)
	assert.False(t, result.Matched)

	// the decision is still recorded
	alice, err := users.GetByID(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alice.Swipes, 1)
	assert.Equal(t, models.SwipeLeft, alice.Swipes[0].Direction)
	assert.False(t, alice.HasMatch("bob"))
	assert.Empty(t, notifier.eventsFor("bob", models.EventMatch))
}

func TestSwipeRightWithoutComplementarySkills(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore(
		testUser("alice", "Alice", []string{"JavaScript"}, []string{"Python"}),
		testUser("bob", "Bob", []string{"Cooking"}, []string{"Chess"}),
	)
	service, notifier := newSwipeService(users)

	result, err := service.Swipe(ctx, "alice", "bob", models.SwipeRight)
	require.NoError(t, err)
	assert.False(t, result.Matched)

	alice, err := users.GetByID(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, alice.HasSwiped("bob"))
	assert.Empty(t, notifier.events)
}

func TestDuplicateSwipeRejected(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore(
		testUser("alice", "Alice", nil, nil),
		testUser("bob", "Bob", nil, nil),
	)
	service, _ := newSwipeService(users)

	_, err := service.Swipe(ctx, "alice", "bob", models.SwipeLeft)
	require.NoError(t, err)

	// a second swipe is rejected regardless of direction
	_, err = service.Swipe(ctx, "alice", "bob", models.SwipeLeft)
	assert.ErrorIs(t, err, ErrConflict)
	_, err = service.Swipe(ctx, "alice", "bob", models.SwipeRight)
	assert.ErrorIs(t, err, ErrConflict)

	alice, err := users.GetByID(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, alice.Swipes, 1)
}

func TestSwipeValidation(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore(testUser("alice", "Alice", nil, nil))
	service, _ := newSwipeService(users)

	_, err := service.Swipe(ctx, "alice", "bob", "up")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Swipe(ctx, "alice", "alice", models.SwipeRight)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Swipe(ctx, "alice", "ghost", models.SwipeRight)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutualPolicyRequiresReciprocity(t *testing.T) {
	ctx := context.Background()
	alice := testUser("alice", "Alice", []string{"JavaScript"}, []string{"Python"})
	bob := testUser("bob", "Bob", []string{"Python"}, []string{"JavaScript"})
	users := newFakeUserStore(alice, bob)
	service, _ := newSwipeService(users)
	service.Policy = MatchPolicyMutual

	// bob has not swiped yet, so no match despite complementary skills
	result, err := service.Swipe(ctx, "alice", "bob", models.SwipeRight)
	require.NoError(t, err)
	assert.False(t, result.Matched)

	// once bob reciprocates, his swipe completes the match
	result, err = service.Swipe(ctx, "bob", "alice", models.SwipeRight)
	require.NoError(t, err)
	assert.True(t, result.Matched)
}

func TestListCandidatesExcludesSwipedAndMatched(t *testing.T) {
	ctx := context.Background()
	alice := testUser("alice", "Alice", nil, nil)
	alice.Swipes = []models.SwipeRecord{{TargetUserID: "bob", Direction: models.SwipeLeft}}
	alice.Matches = []string{"carol"}
	users := newFakeUserStore(
		alice,
		testUser("bob", "Bob", nil, nil),
		testUser("carol", "Carol", nil, nil),
		testUser("dave", "Dave", nil, nil),
		testUser("erin", "Erin", nil, nil),
	)
	service, _ := newSwipeService(users)

	candidates, err := service.ListCandidates(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "dave", candidates[0].ID)
	assert.Equal(t, "erin", candidates[1].ID)
}
