package services

import (
	"context"
	"errors"
	"fmt"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MeetingRepository implements MeetingStore on the Meetings table
type MeetingRepository struct {
	Dynamo *DynamoService
}

func meetingKey(meetingID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"meetingId": &types.AttributeValueMemberS{Value: meetingID},
	}
}

// Put stores a new meeting
func (r *MeetingRepository) Put(ctx context.Context, meeting models.Meeting) error {
	return r.Dynamo.PutItem(ctx, models.MeetingsTable, meeting)
}

// GetByID retrieves a meeting by id
func (r *MeetingRepository) GetByID(ctx context.Context, meetingID string) (*models.Meeting, error) {
	item, err := r.Dynamo.GetItem(ctx, models.MeetingsTable, meetingKey(meetingID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, fmt.Errorf("meeting %s: %w", meetingID, ErrNotFound)
		}
		return nil, err
	}

	var meeting models.Meeting
	if err := attributevalue.UnmarshalMap(item, &meeting); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meeting %s: %w", meetingID, err)
	}
	return &meeting, nil
}

// UpdateStatus sets the meeting status and returns the updated record
func (r *MeetingRepository) UpdateStatus(ctx context.Context, meetingID, status, updatedAt string) (*models.Meeting, error) {
	attrs, err := r.Dynamo.UpdateItem(ctx, models.MeetingsTable,
		"SET #status = :status, updatedAt = :updatedAt",
		meetingKey(meetingID),
		map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: status},
			":updatedAt": &types.AttributeValueMemberS{Value: updatedAt},
		},
		map[string]string{"#status": "status"},
	)
	if err != nil {
		return nil, err
	}

	var meeting models.Meeting
	if err := attributevalue.UnmarshalMap(attrs, &meeting); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated meeting: %w", err)
	}
	return &meeting, nil
}

// ListByUser returns every meeting where the user is initiator or participant
func (r *MeetingRepository) ListByUser(ctx context.Context, userID string) ([]models.Meeting, error) {
	asInitiator, err := r.queryIndex(ctx, models.MeetingInitiatorIndex, "initiatorId", userID, "")
	if err != nil {
		return nil, err
	}
	asParticipant, err := r.queryIndex(ctx, models.MeetingParticipantIndex, "participantId", userID, "")
	if err != nil {
		return nil, err
	}
	return append(asInitiator, asParticipant...), nil
}

// CountPendingForParticipant counts pending meetings addressed to the user
func (r *MeetingRepository) CountPendingForParticipant(ctx context.Context, userID string) (int, error) {
	pending, err := r.queryIndex(ctx, models.MeetingParticipantIndex, "participantId", userID, models.MeetingStatusPending)
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

func (r *MeetingRepository) queryIndex(ctx context.Context, index, keyAttr, userID, statusFilter string) ([]models.Meeting, error) {
	values := map[string]types.AttributeValue{
		":user": &types.AttributeValueMemberS{Value: userID},
	}
	names := map[string]string{"#key": keyAttr}
	filter := ""
	if statusFilter != "" {
		filter = "#status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: statusFilter}
	}

	items, err := r.Dynamo.QueryItemsWithIndex(ctx, models.MeetingsTable, index,
		"#key = :user", values, names, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings via %s: %w", index, err)
	}

	var meetings []models.Meeting
	if err := attributevalue.UnmarshalListOfMaps(items, &meetings); err != nil {
		return nil, fmt.Errorf("failed to parse meetings: %w", err)
	}
	return meetings, nil
}
