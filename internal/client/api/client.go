// Package api talks to the social-network directory endpoint: one query that
// searches users by a free-text term and one mutation that toggles a follow
// relationship. Transport details stay behind the Client interface.
package api

import (
	"context"

	"socialcli/internal/client/models"
)

type Client interface {
	// SearchUsers returns the raw user records matching term. Records are not
	// normalized here; callers own filtering and defaulting.
	SearchUsers(ctx context.Context, term string) ([]models.User, error)

	// ToggleFollow follows the target user when the viewer does not follow
	// them yet and unfollows otherwise. It returns the updated user record
	// with a refreshed follower list. A nil user with a nil error means the
	// server acknowledged the call but sent no record back.
	ToggleFollow(ctx context.Context, userID string) (*models.User, error)

	Close() error
}
