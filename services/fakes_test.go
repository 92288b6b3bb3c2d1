package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"skillswap_server/models"
)

// fakeUserStore is an in-memory UserStore for service tests
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
	// remaining AddMatch failures to inject, per user id
	addMatchFails map[string]int
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	store := &fakeUserStore{
		users:         map[string]*models.User{},
		addMatchFails: map[string]int{},
	}
	for _, u := range users {
		store.users[u.UserID] = u
	}
	return store
}

func (f *fakeUserStore) GetByID(_ context.Context, userID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.UserID]; exists {
		return errors.New("user already exists")
	}
	f.users[user.UserID] = &user
	return nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, userID string, update ProfileUpdate) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.ProfilePicture != nil {
		user.ProfilePicture = *update.ProfilePicture
	}
	if update.SkillsKnown != nil {
		user.SkillsKnown = *update.SkillsKnown
	}
	if update.SkillsWanted != nil {
		user.SkillsWanted = *update.SkillsWanted
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) AppendSwipe(_ context.Context, userID string, swipe models.SwipeRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	user.Swipes = append(user.Swipes, swipe)
	return nil
}

func (f *fakeUserStore) AddMatch(_ context.Context, userID, matchedUserID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addMatchFails[userID] > 0 {
		f.addMatchFails[userID]--
		return errors.New("provisioned throughput exceeded")
	}
	user, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	// set semantics, same as a DynamoDB ADD on a string set
	for _, id := range user.Matches {
		if id == matchedUserID {
			return nil
		}
	}
	user.Matches = append(user.Matches, matchedUserID)
	return nil
}

func (f *fakeUserStore) ListExcluding(_ context.Context, exclude map[string]struct{}) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []models.User
	for id, user := range f.users {
		if _, excluded := exclude[id]; excluded {
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}

// fakeMessageStore is an in-memory MessageStore for service tests
type fakeMessageStore struct {
	mu       sync.Mutex
	messages []models.Message
}

func (f *fakeMessageStore) Put(_ context.Context, message models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageStore) ListConversation(_ context.Context, conversationID string) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Message
	for _, msg := range f.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

func (f *fakeMessageStore) ListUnreadByReceiver(_ context.Context, receiverID string) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Message
	for _, msg := range f.messages {
		if msg.ReceiverID == receiverID && !msg.Read {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) MarkRead(_ context.Context, receiverID, senderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.messages {
		msg := &f.messages[i]
		if msg.ReceiverID != receiverID || msg.Read {
			continue
		}
		if senderID != "" && msg.SenderID != senderID {
			continue
		}
		msg.Read = true
	}
	return nil
}

func (f *fakeMessageStore) CountUnread(ctx context.Context, receiverID string) (int, error) {
	unread, err := f.ListUnreadByReceiver(ctx, receiverID)
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}

// fakeMeetingStore is an in-memory MeetingStore for service tests
type fakeMeetingStore struct {
	mu       sync.Mutex
	meetings map[string]models.Meeting
}

func newFakeMeetingStore(meetings ...models.Meeting) *fakeMeetingStore {
	store := &fakeMeetingStore{meetings: map[string]models.Meeting{}}
	for _, m := range meetings {
		store.meetings[m.MeetingID] = m
	}
	return store
}

func (f *fakeMeetingStore) Put(_ context.Context, meeting models.Meeting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meetings[meeting.MeetingID] = meeting
	return nil
}

func (f *fakeMeetingStore) GetByID(_ context.Context, meetingID string) (*models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	meeting, ok := f.meetings[meetingID]
	if !ok {
		return nil, fmt.Errorf("meeting %s: %w", meetingID, ErrNotFound)
	}
	return &meeting, nil
}

func (f *fakeMeetingStore) UpdateStatus(_ context.Context, meetingID, status, updatedAt string) (*models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	meeting, ok := f.meetings[meetingID]
	if !ok {
		return nil, fmt.Errorf("meeting %s: %w", meetingID, ErrNotFound)
	}
	meeting.Status = status
	meeting.UpdatedAt = updatedAt
	f.meetings[meetingID] = meeting
	return &meeting, nil
}

func (f *fakeMeetingStore) ListByUser(_ context.Context, userID string) ([]models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Meeting
	for _, meeting := range f.meetings {
		if meeting.Involves(userID) {
			out = append(out, meeting)
		}
	}
	return out, nil
}

func (f *fakeMeetingStore) CountPendingForParticipant(_ context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, meeting := range f.meetings {
		if meeting.ParticipantID == userID && meeting.Status == models.MeetingStatusPending {
			count++
		}
	}
	return count, nil
}

// notification is one recorded Notify call
type notification struct {
	UserID  string
	Event   string
	Payload interface{}
}

// recordingNotifier captures Notify calls for assertions
type recordingNotifier struct {
	mu     sync.Mutex
	events []notification
}

func (r *recordingNotifier) Notify(userID, event string, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, notification{UserID: userID, Event: event, Payload: payload})
}

// eventsFor returns the recorded events of one kind addressed to userID
func (r *recordingNotifier) eventsFor(userID, event string) []notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []notification
	for _, n := range r.events {
		if n.UserID == userID && n.Event == event {
			out = append(out, n)
		}
	}
	return out
}

func (r *recordingNotifier) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// testUser builds a user record with the given skill profile
func testUser(id, name string, known, wanted []string) *models.User {
	return &models.User{
		UserID:       id,
		Name:         name,
		Email:        id + "@example.com",
		SkillsKnown:  known,
		SkillsWanted: wanted,
	}
}
