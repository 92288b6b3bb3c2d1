package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserRepository implements UserStore on the Users table
type UserRepository struct {
	Dynamo *DynamoService
}

func userKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}

// GetByID retrieves a user record by id
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	item, err := r.Dynamo.GetItem(ctx, models.UsersTable, userKey(userID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user %s: %w", userID, err)
	}
	return &user, nil
}

// GetByEmail looks a user up through the email GSI
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	items, err := r.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, models.UserEmailIndex,
		"#email = :email",
		map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: strings.ToLower(email)},
		},
		map[string]string{"#email": "email"},
		"",
	)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user by email: %w", err)
	}
	return &user, nil
}

// Create stores a new user record
func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	return r.Dynamo.PutItem(ctx, models.UsersTable, user)
}

// UpdateProfile applies the non-nil fields of update and returns the new record
func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error) {
	var sets []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	if update.Name != nil {
		sets = append(sets, "#name = :name")
		names["#name"] = "name"
		values[":name"] = &types.AttributeValueMemberS{Value: *update.Name}
	}
	if update.ProfilePicture != nil {
		sets = append(sets, "profilePicture = :picture")
		values[":picture"] = &types.AttributeValueMemberS{Value: *update.ProfilePicture}
	}
	if update.SkillsKnown != nil {
		sets = append(sets, "skillsKnown = :known")
		values[":known"] = skillSet(*update.SkillsKnown)
	}
	if update.SkillsWanted != nil {
		sets = append(sets, "skillsWanted = :wanted")
		values[":wanted"] = skillSet(*update.SkillsWanted)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, userID)
	}

	attrs, err := r.Dynamo.UpdateItem(ctx, models.UsersTable,
		"SET "+strings.Join(sets, ", "), userKey(userID), values, names)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(attrs, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated user: %w", err)
	}
	return &user, nil
}

// AppendSwipe appends one swipe record to the user's swipes list
func (r *UserRepository) AppendSwipe(ctx context.Context, userID string, swipe models.SwipeRecord) error {
	record, err := attributevalue.MarshalMap(swipe)
	if err != nil {
		return fmt.Errorf("failed to marshal swipe: %w", err)
	}

	_, err = r.Dynamo.UpdateItem(ctx, models.UsersTable,
		"SET swipes = list_append(if_not_exists(swipes, :empty), :swipe)",
		userKey(userID),
		map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":swipe": &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: record}}},
		}, nil,
	)
	if err != nil {
		return fmt.Errorf("failed to append swipe for %s: %w", userID, err)
	}
	return nil
}

// AddMatch adds matchedUserID to the user's match set. ADD on a string set
// is idempotent, which keeps repeated match commits safe.
func (r *UserRepository) AddMatch(ctx context.Context, userID, matchedUserID string) error {
	_, err := r.Dynamo.UpdateItem(ctx, models.UsersTable,
		"ADD matches :match",
		userKey(userID),
		map[string]types.AttributeValue{
			":match": &types.AttributeValueMemberSS{Value: []string{matchedUserID}},
		}, nil,
	)
	if err != nil {
		return fmt.Errorf("failed to add match for %s: %w", userID, err)
	}
	return nil
}

// ListExcluding scans the Users table, dropping every id in exclude
func (r *UserRepository) ListExcluding(ctx context.Context, exclude map[string]struct{}) ([]models.User, error) {
	var users []models.User
	err := r.Dynamo.ScanWithFilter(ctx, models.UsersTable, func(item map[string]types.AttributeValue) bool {
		idAttr, ok := item["userId"].(*types.AttributeValueMemberS)
		if !ok {
			return false
		}
		_, excluded := exclude[idAttr.Value]
		return !excluded
	}, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// skillSet builds a string-set attribute; DynamoDB rejects empty sets, so an
// empty slice is stored as an empty list instead.
func skillSet(skills []string) types.AttributeValue {
	if len(skills) == 0 {
		return &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
	}
	return &types.AttributeValueMemberSS{Value: skills}
}
