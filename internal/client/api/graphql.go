package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"socialcli/internal/client/models"
	"socialcli/internal/common"
	"socialcli/internal/logging"
)

const userFields = `
	id
	name
	username
	email
	phone
	profileImage
	bio
	createTime
	followers { id name }
	following { id name }
	posts { id caption imageUrl createdAt }`

const searchUsersQuery = `
query searchUsers($username: String!) {
	searchUsers(username: $username) {` + userFields + `
	}
}`

const followAndUnfollowMutation = `
mutation followAndUnfollow($id: ID!) {
	followAndUnfollow(id: $id) {` + userFields + `
	}
}`

// GraphQLClient implements Client against a GraphQL-over-HTTP endpoint.
// The session token is sent as a bearer credential on every call.
type GraphQLClient struct {
	endpointURL string
	httpClient  *http.Client
	token       string
	log         logging.Logger
}

func NewGraphQLClient(endpointURL string, token string, timeout time.Duration, log logging.Logger) *GraphQLClient {
	return &GraphQLClient{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: timeout},
		token:       token,
		log:         log,
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// do posts a GraphQL document and unmarshals the data payload into out.
// A non-empty error list counts as a failed call even on HTTP 200.
func (c *GraphQLClient) do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		c.log.Warn(ctx, "directory call rejected", "request_id", requestID, "status", resp.StatusCode)
		return err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var gr graphqlResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if len(gr.Errors) > 0 {
		c.log.Warn(ctx, "directory call failed", "request_id", requestID, "error", gr.Errors[0].Message)
		return fmt.Errorf("%w: %s", ErrQueryFailed, gr.Errors[0].Message)
	}

	if gr.Data == nil {
		return fmt.Errorf("%w: empty data payload", ErrQueryFailed)
	}

	return json.Unmarshal(gr.Data, out)
}

func mapStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}

func (c *GraphQLClient) SearchUsers(ctx context.Context, term string) ([]models.User, error) {
	var payload struct {
		SearchUsers []models.User `json:"searchUsers"`
	}

	err := c.do(ctx, searchUsersQuery, map[string]any{"username": term}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.SearchUsers, nil
}

func (c *GraphQLClient) ToggleFollow(ctx context.Context, userID string) (*models.User, error) {
	var payload struct {
		FollowAndUnfollow *models.User `json:"followAndUnfollow"`
	}

	err := c.do(ctx, followAndUnfollowMutation, map[string]any{"id": userID}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.FollowAndUnfollow, nil
}

func (c *GraphQLClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
