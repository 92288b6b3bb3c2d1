package models

// Socket event names pushed to per-user rooms
const (
	EventMatch              = "match"
	EventNewMessage         = "new_message"
	EventNotificationUpdate = "notification_update"
	EventMeetingRequest     = "meeting_request"
	EventMeetingAccepted    = "meeting_accepted"
	EventMeetingDeclined    = "meeting_declined"
	EventMeetingCancelled   = "meeting_cancelled"
)

// Notification count kinds carried by notification_update events
const (
	NotificationKindMessages = "messages"
	NotificationKindMeetings = "meetings"
)

// UserRef is the minimal user reference embedded in event payloads
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MatchEvent announces a new confirmed match to one of its two users
type MatchEvent struct {
	Type        string      `json:"type"`
	Message     string      `json:"message"`
	MatchedUser UserSummary `json:"matchedUser"`
}

// NewMessagePayload is the message body carried by a new_message event
type NewMessagePayload struct {
	ID          string  `json:"id"`
	Content     string  `json:"content"`
	MessageType string  `json:"messageType"`
	Sender      UserRef `json:"sender"`
	ReceiverID  string  `json:"receiver"`
	CreatedAt   string  `json:"createdAt"`
}

// NewMessageEvent announces an incoming chat message to its receiver
type NewMessageEvent struct {
	Type    string            `json:"type"`
	Message NewMessagePayload `json:"message"`
}

// NotificationUpdateEvent refreshes one aggregate unread/pending count
type NotificationUpdateEvent struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// MeetingRequestPayload is the meeting body carried by a meeting_request event
type MeetingRequestPayload struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	SkillToTeach  string  `json:"skillToTeach"`
	SkillToLearn  string  `json:"skillToLearn"`
	ScheduledDate string  `json:"scheduledDate"`
	Initiator     UserRef `json:"initiator"`
}

// MeetingRequestEvent announces a new meeting request to the participant
type MeetingRequestEvent struct {
	Type    string                `json:"type"`
	Meeting MeetingRequestPayload `json:"meeting"`
}

// MeetingStatusPayload is the meeting body carried by accept/decline/cancel events
type MeetingStatusPayload struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ScheduledDate string `json:"scheduledDate,omitempty"`
}

// MeetingStatusEvent announces a meeting status transition to the other party
type MeetingStatusEvent struct {
	Type    string               `json:"type"`
	Meeting MeetingStatusPayload `json:"meeting"`
}

// NotificationCounts is the derived unread/pending aggregate. It is always
// recomputed from the Messages and Meetings tables, never cached.
type NotificationCounts struct {
	Messages int `json:"messages"`
	Meetings int `json:"meetings"`
}
