package models

import "strings"

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"

// MessageReceiverIndex is the GSI keyed by receiverId, used for unread aggregation
const MessageReceiverIndex = "receiver-index"

// Message types
const (
	MessageTypeText           = "text"
	MessageTypeMeetingRequest = "meeting_request"
	MessageTypeSkillOffer     = "skill_offer"
)

// Message is one chat message between two matched users. Messages are
// created on send and never deleted; only the read flag is mutated.
type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"-"`
	MessageID      string `dynamodbav:"messageId" json:"id"`
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	ReceiverID     string `dynamodbav:"receiverId" json:"receiverId"`
	Content        string `dynamodbav:"content" json:"content"`
	MessageType    string `dynamodbav:"messageType" json:"messageType"`
	Read           bool   `dynamodbav:"read" json:"read"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// ConversationID builds the canonical partition key for a user pair,
// identical regardless of who sends.
func ConversationID(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + "#" + userB
}

// IsValidMessageType reports whether t is one of the supported message types
func IsValidMessageType(t string) bool {
	switch t {
	case MessageTypeText, MessageTypeMeetingRequest, MessageTypeSkillOffer:
		return true
	}
	return false
}

// UnreadCount is the per-sender unread message count for a receiver
type UnreadCount struct {
	SenderID string `json:"senderId"`
	Count    int    `json:"count"`
}
