package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureRepository routes the DynamoDB client at a local endpoint and
// records the raw request body of each call
func captureRepository(t *testing.T, response string) (*UserRepository, *[]byte) {
	t.Helper()
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		body, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)

	client := dynamodb.New(dynamodb.Options{
		BaseEndpoint: aws.String(server.URL),
		Region:       "us-east-1",
		Credentials:  aws.AnonymousCredentials{},
	})
	return &UserRepository{Dynamo: &DynamoService{Client: client}}, &body
}

func TestUpdateProfileOmitsEmptyNameAliases(t *testing.T) {
	ctx := context.Background()
	repo, body := captureRepository(t,
		`{"Attributes":{"userId":{"S":"u1"},"name":{"S":"Alice"},"profilePicture":{"S":"pic.png"}}}`)

	pic := "pic.png"
	user, err := repo.UpdateProfile(ctx, "u1", ProfileUpdate{ProfilePicture: &pic})
	require.NoError(t, err)
	assert.Equal(t, "pic.png", user.ProfilePicture)

	var request map[string]interface{}
	require.NoError(t, json.Unmarshal(*body, &request))
	// no aliased attributes in play, so the key must be absent entirely
	assert.NotContains(t, request, "ExpressionAttributeNames")
	assert.Contains(t, request, "ExpressionAttributeValues")
	assert.Equal(t, "SET profilePicture = :picture", request["UpdateExpression"])
}

func TestUpdateProfileCarriesNameAlias(t *testing.T) {
	ctx := context.Background()
	repo, body := captureRepository(t,
		`{"Attributes":{"userId":{"S":"u1"},"name":{"S":"Alice B"}}}`)

	name := "Alice B"
	user, err := repo.UpdateProfile(ctx, "u1", ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", user.Name)

	var request map[string]interface{}
	require.NoError(t, json.Unmarshal(*body, &request))
	assert.Equal(t, map[string]interface{}{"#name": "name"}, request["ExpressionAttributeNames"])
}
