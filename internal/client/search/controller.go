// Package search owns the state of the user-search screen: the query text,
// the result list, the loading flag, and whether recent-search suggestions
// are visible.
//
// The controller is a plain synchronous state machine. The caller (the TUI
// event loop) performs the remote lookup itself when SubmitQuery asks for
// one, and feeds the outcome back through ApplyResults. Overlapping lookups
// are not tracked or cancelled: the last outcome applied wins, matching the
// observed behavior of the original screen.
package search

import (
	"context"
	"strings"

	"socialcli/internal/client/models"
	"socialcli/internal/client/recent"
	"socialcli/internal/logging"
)

// DisplayState is what the screen body should show, in precedence order.
type DisplayState int

const (
	// DisplayNone: empty query, no suggestions worth showing.
	DisplayNone DisplayState = iota
	// DisplayLoading: a lookup is in flight.
	DisplayLoading
	// DisplayResults: at least one result card.
	DisplayResults
	// DisplayNoResults: a non-empty query produced nothing.
	DisplayNoResults
	// DisplayRecent: the recent-searches grid.
	DisplayRecent
)

type Controller struct {
	recent *recent.Store
	log    logging.Logger

	query           string
	results         []models.User
	loading         bool
	showSuggestions bool
}

func New(recentStore *recent.Store, log logging.Logger) *Controller {
	return &Controller{
		recent:          recentStore,
		log:             log,
		showSuggestions: true,
	}
}

func (c *Controller) Query() string            { return c.query }
func (c *Controller) Loading() bool            { return c.loading }
func (c *Controller) SuggestionsVisible() bool { return c.showSuggestions }

// Results returns the current result list, most relevant first.
func (c *Controller) Results() []models.User { return c.results }

// Recent exposes the backing recency store (for rendering the grid).
func (c *Controller) Recent() *recent.Store { return c.recent }

// SetQuery records an input change. Emptying the box immediately clears the
// results and brings suggestions back, so a stale result list never sits
// behind an empty query.
func (c *Controller) SetQuery(text string) {
	c.query = text
	if strings.TrimSpace(text) == "" {
		c.results = nil
		c.showSuggestions = true
	}
}

// SubmitQuery starts a search for text. It returns true when the caller must
// perform the remote lookup and eventually call ApplyResults; a blank query
// resolves immediately to the suggestions view and returns false.
func (c *Controller) SubmitQuery(text string) bool {
	if strings.TrimSpace(text) == "" {
		c.results = nil
		c.showSuggestions = true
		return false
	}

	c.loading = true
	c.showSuggestions = false
	return true
}

// ApplyResults is the terminal transition of a lookup: normalize the raw
// records, make them the displayed results, and merge each one into the
// recent-searches store. Any failure degrades to an empty result list; no
// error is surfaced beyond the log.
func (c *Controller) ApplyResults(ctx context.Context, raw []models.User, err error) {
	c.loading = false

	if err != nil {
		c.log.Warn(ctx, "user search failed", "error", err)
		c.results = nil
		return
	}

	normalized := models.Normalize(raw)
	c.results = normalized

	for _, u := range normalized {
		c.recent.Prepend(ctx, u)
	}
}

// Clear resets the query and results and shows suggestions again.
func (c *Controller) Clear() {
	c.query = ""
	c.results = nil
	c.showSuggestions = true
}

// SelectRecent re-runs the search for a previously viewed user by name. The
// cached snapshot may be stale, so the lookup is always reissued.
func (c *Controller) SelectRecent(user models.User) (string, bool) {
	c.query = user.Name
	return user.Name, c.SubmitQuery(user.Name)
}

// DismissRecent drops one entry from the recent-searches store. No remote
// effect.
func (c *Controller) DismissRecent(ctx context.Context, id string) {
	c.recent.Remove(ctx, id)
}

// Display resolves what the screen body shows right now.
func (c *Controller) Display() DisplayState {
	switch {
	case c.loading:
		return DisplayLoading
	case len(c.results) > 0:
		return DisplayResults
	case strings.TrimSpace(c.query) != "":
		return DisplayNoResults
	case c.showSuggestions && c.recent.Len() > 0:
		return DisplayRecent
	default:
		return DisplayNone
	}
}
