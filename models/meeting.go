package models

// MeetingsTable is the DynamoDB table name for meetings
const MeetingsTable = "Meetings"

// GSIs used to list a user's meetings from either side
const (
	MeetingInitiatorIndex   = "initiator-index"
	MeetingParticipantIndex = "participant-index"
)

// Meeting statuses. pending -> accepted -> completed; pending -> declined;
// pending/accepted -> cancelled. Everything except accepted is terminal.
const (
	MeetingStatusPending   = "pending"
	MeetingStatusAccepted  = "accepted"
	MeetingStatusDeclined  = "declined"
	MeetingStatusCompleted = "completed"
	MeetingStatusCancelled = "cancelled"
)

// Meeting types
const (
	MeetingTypeVideoCall   = "video_call"
	MeetingTypeInPerson    = "in_person"
	MeetingTypeChatSession = "chat_session"
)

// Meeting is a scheduled skill-exchange session between two matched users.
// Created by the initiator; the participant accepts or declines.
type Meeting struct {
	MeetingID     string `dynamodbav:"meetingId" json:"id"`
	InitiatorID   string `dynamodbav:"initiatorId" json:"initiatorId"`
	ParticipantID string `dynamodbav:"participantId" json:"participantId"`
	Title         string `dynamodbav:"title" json:"title"`
	Description   string `dynamodbav:"description,omitempty" json:"description,omitempty"`
	SkillToTeach  string `dynamodbav:"skillToTeach" json:"skillToTeach"`
	SkillToLearn  string `dynamodbav:"skillToLearn" json:"skillToLearn"`
	ScheduledDate string `dynamodbav:"scheduledDate" json:"scheduledDate"`
	Duration      int    `dynamodbav:"duration" json:"duration"`
	MeetingType   string `dynamodbav:"meetingType" json:"meetingType"`
	Location      string `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Status        string `dynamodbav:"status" json:"status"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt     string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Involves reports whether userID is the initiator or the participant
func (m *Meeting) Involves(userID string) bool {
	return m.InitiatorID == userID || m.ParticipantID == userID
}

// OtherParty returns the counterpart of userID in the meeting
func (m *Meeting) OtherParty(userID string) string {
	if m.InitiatorID == userID {
		return m.ParticipantID
	}
	return m.InitiatorID
}

// IsValidMeetingType reports whether t is one of the supported meeting types
func IsValidMeetingType(t string) bool {
	switch t {
	case MeetingTypeVideoCall, MeetingTypeInPerson, MeetingTypeChatSession:
		return true
	}
	return false
}
