// Package profile holds the state of the profile detail view: the selected
// user snapshot and the viewer-relative follow status.
package profile

import (
	"context"
	"time"

	"socialcli/internal/client/models"
	"socialcli/internal/logging"
)

// Detail is the detail view for one selected user. The snapshot is replaced
// wholesale when a follow toggle succeeds; it is never mutated in place.
type Detail struct {
	viewerID string
	log      logging.Logger

	user        *models.User
	isFollowing bool
}

// NewDetail creates a closed detail view for the given viewer identity.
// An empty viewerID is allowed; follow status then always reads false.
func NewDetail(viewerID string, log logging.Logger) *Detail {
	return &Detail{viewerID: viewerID, log: log}
}

// Open selects a user and recomputes the follow status from its follower list.
func (d *Detail) Open(user models.User) {
	d.user = &user
	d.recompute()
}

// Close hides the view and clears the selection.
func (d *Detail) Close() {
	d.user = nil
	d.isFollowing = false
}

func (d *Detail) Visible() bool { return d.user != nil }

// User returns the selected snapshot, or nil when the view is closed.
func (d *Detail) User() *models.User { return d.user }

// IsFollowing reports whether the viewer appears in the selected user's
// follower list.
func (d *Detail) IsFollowing() bool { return d.isFollowing }

// ApplyFollowResult is the terminal transition of a follow/unfollow call.
// On success the held snapshot is replaced by the server-returned record and
// the follow status recomputed. On failure nothing changes; the error goes
// to the operational log only.
func (d *Detail) ApplyFollowResult(ctx context.Context, updated *models.User, err error) {
	if err != nil {
		d.log.Error(ctx, "follow toggle failed", "error", err)
		return
	}
	if updated == nil {
		d.log.Warn(ctx, "follow toggle returned no user record")
		return
	}
	if d.user == nil {
		// View was closed while the mutation was in flight.
		return
	}

	normalized := models.NormalizeUser(*updated)
	d.user = &normalized
	d.recompute()
}

func (d *Detail) recompute() {
	d.isFollowing = d.user != nil && d.user.HasFollower(d.viewerID)
}

// FormatCreateTime renders an RFC 3339 timestamp as a long calendar date,
// e.g. "March 14, 2026". Empty or unparsable values render as "Unknown".
func FormatCreateTime(value string) string {
	if value == "" {
		return "Unknown"
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "Unknown"
	}
	return ts.Format("January 2, 2006")
}
