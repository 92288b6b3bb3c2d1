package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MessageRepository implements MessageStore on the Messages table.
// Partition key is the canonical conversation id, sort key the message id;
// chronological order comes from the createdAt attribute, sorted in memory.
type MessageRepository struct {
	Dynamo *DynamoService
}

// Put stores a new message
func (r *MessageRepository) Put(ctx context.Context, message models.Message) error {
	return r.Dynamo.PutItem(ctx, models.MessagesTable, message)
}

// ListConversation fetches every message of a conversation, oldest first
func (r *MessageRepository) ListConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	items, err := r.Dynamo.QueryItems(ctx, models.MessagesTable,
		"conversationId = :cid",
		map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: conversationID},
		}, nil, 0,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation %s: %w", conversationID, err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages, nil
}

// ListUnreadByReceiver returns all unread messages addressed to receiverID,
// via the receiver GSI
func (r *MessageRepository) ListUnreadByReceiver(ctx context.Context, receiverID string) ([]models.Message, error) {
	items, err := r.Dynamo.QueryItemsWithIndex(ctx, models.MessagesTable, models.MessageReceiverIndex,
		"receiverId = :receiver",
		map[string]types.AttributeValue{
			":receiver": &types.AttributeValueMemberS{Value: receiverID},
			":false":    &types.AttributeValueMemberBOOL{Value: false},
		},
		map[string]string{"#read": "read"},
		"#read = :false",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unread messages for %s: %w", receiverID, err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse unread messages: %w", err)
	}
	return messages, nil
}

// MarkRead flags the receiver's unread messages from senderID as read;
// an empty senderID covers all senders
func (r *MessageRepository) MarkRead(ctx context.Context, receiverID, senderID string) error {
	unread, err := r.ListUnreadByReceiver(ctx, receiverID)
	if err != nil {
		return err
	}

	for _, msg := range unread {
		if senderID != "" && msg.SenderID != senderID {
			continue
		}

		key := map[string]types.AttributeValue{
			"conversationId": &types.AttributeValueMemberS{Value: msg.ConversationID},
			"messageId":      &types.AttributeValueMemberS{Value: msg.MessageID},
		}
		_, err := r.Dynamo.UpdateItem(ctx, models.MessagesTable,
			"SET #read = :true", key,
			map[string]types.AttributeValue{
				":true": &types.AttributeValueMemberBOOL{Value: true},
			},
			map[string]string{"#read": "read"},
		)
		if err != nil {
			log.Printf("❌ Failed to mark message %s as read: %v", msg.MessageID, err)
			return err
		}
	}
	return nil
}

// CountUnread counts unread messages addressed to receiverID
func (r *MessageRepository) CountUnread(ctx context.Context, receiverID string) (int, error) {
	unread, err := r.ListUnreadByReceiver(ctx, receiverID)
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}
