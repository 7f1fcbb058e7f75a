package search

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"socialcli/internal/client/models"
	"socialcli/internal/client/recent"
	"socialcli/internal/logging"
)

var dbSeq int

func setupController(t *testing.T) *Controller {
	t.Helper()
	dbSeq++
	db, err := sql.Open("sqlite", fmt.Sprintf("file:search_tests_%d?mode=memory&cache=shared", dbSeq))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := recent.NewStore(db, log)
	store.Load(context.Background())

	return New(store, log)
}

func TestSubmitQuery_BlankNeverTriggersLookup(t *testing.T) {
	for _, q := range []string{"", "   ", "\t \n"} {
		t.Run(fmt.Sprintf("%q", q), func(t *testing.T) {
			c := setupController(t)

			need := c.SubmitQuery(q)

			assert.False(t, need, "no remote call for blank input")
			assert.False(t, c.Loading())
			assert.True(t, c.SuggestionsVisible())
			assert.Empty(t, c.Results())
		})
	}
}

func TestSubmitQuery_StartsLookup(t *testing.T) {
	c := setupController(t)

	need := c.SubmitQuery("alice")

	assert.True(t, need)
	assert.True(t, c.Loading())
	assert.False(t, c.SuggestionsVisible())
}

func TestApplyResults_NormalizesAndMergesIntoRecents(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()

	c.SubmitQuery("alice")
	c.ApplyResults(ctx, []models.User{
		{ID: "1", Name: "Alice A"},
		{ID: "2", Name: "Alice B", Username: "aliceb"},
	}, nil)

	assert.False(t, c.Loading())

	results := c.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "Alice A", results[0].Name)
	assert.Equal(t, "aliceb", results[1].Username)
	assert.NotNil(t, results[0].Followers, "results are normalized")

	// Insertion order reversed: the last merged user sits in front.
	entries := c.Recent().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0].ID)
	assert.Equal(t, "1", entries[1].ID)
	assert.NotNil(t, entries[0].Posts, "cached snapshots are normalized too")
}

func TestApplyResults_DropsInvalidRecords(t *testing.T) {
	c := setupController(t)

	c.SubmitQuery("x")
	c.ApplyResults(context.Background(), []models.User{
		{ID: "", Name: "NoID"},
		{ID: "3", Name: ""},
	}, nil)

	assert.Empty(t, c.Results())
	assert.Zero(t, c.Recent().Len())
}

func TestApplyResults_FailureClearsResultsKeepsRecents(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()

	c.SubmitQuery("alice")
	c.ApplyResults(ctx, []models.User{{ID: "1", Name: "Alice"}}, nil)
	require.Len(t, c.Results(), 1)

	c.SubmitQuery("alice")
	c.ApplyResults(ctx, nil, errors.New("connection refused"))

	assert.False(t, c.Loading())
	assert.Empty(t, c.Results())
	assert.Equal(t, 1, c.Recent().Len(), "recents untouched by a failed lookup")
}

func TestSetQuery_EmptyingInputClearsStaleResults(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()

	c.SubmitQuery("ali")
	c.ApplyResults(ctx, []models.User{
		{ID: "1", Name: "A"}, {ID: "2", Name: "B"}, {ID: "3", Name: "C"},
	}, nil)
	require.Len(t, c.Results(), 3)

	c.SetQuery("")

	assert.Empty(t, c.Results())
	assert.True(t, c.SuggestionsVisible())
	assert.Equal(t, DisplayRecent, c.Display(), "recent searches reappear")
}

func TestClear_ResetsEverything(t *testing.T) {
	c := setupController(t)

	c.SetQuery("bob")
	c.SubmitQuery("bob")
	c.ApplyResults(context.Background(), []models.User{{ID: "1", Name: "Bob"}}, nil)

	c.Clear()

	assert.Empty(t, c.Query())
	assert.Empty(t, c.Results())
	assert.True(t, c.SuggestionsVisible())
}

func TestSelectRecent_ReissuesLookupByName(t *testing.T) {
	c := setupController(t)

	term, need := c.SelectRecent(models.User{ID: "1", Name: "Alice A"})

	assert.Equal(t, "Alice A", term)
	assert.True(t, need, "cached snapshot is never replayed, lookup is reissued")
	assert.Equal(t, "Alice A", c.Query())
	assert.True(t, c.Loading())
}

func TestDismissRecent_RemovesExactlyOne(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()

	c.SubmitQuery("a")
	c.ApplyResults(ctx, []models.User{
		{ID: "1", Name: "A"}, {ID: "2", Name: "B"},
	}, nil)
	require.Equal(t, 2, c.Recent().Len())

	c.DismissRecent(ctx, "2")

	entries := c.Recent().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].ID)
}

func TestDisplay_Precedence(t *testing.T) {
	ctx := context.Background()

	t.Run("idle and empty", func(t *testing.T) {
		c := setupController(t)
		assert.Equal(t, DisplayNone, c.Display())
	})

	t.Run("loading wins", func(t *testing.T) {
		c := setupController(t)
		c.SubmitQuery("alice")
		assert.Equal(t, DisplayLoading, c.Display())
	})

	t.Run("results", func(t *testing.T) {
		c := setupController(t)
		c.SetQuery("alice")
		c.SubmitQuery("alice")
		c.ApplyResults(ctx, []models.User{{ID: "1", Name: "Alice"}}, nil)
		assert.Equal(t, DisplayResults, c.Display())
	})

	t.Run("no results for a non-empty query", func(t *testing.T) {
		c := setupController(t)
		c.SetQuery("zzz")
		c.SubmitQuery("zzz")
		c.ApplyResults(ctx, nil, nil)
		assert.Equal(t, DisplayNoResults, c.Display())
	})

	t.Run("recent grid when idle with history", func(t *testing.T) {
		c := setupController(t)
		c.SubmitQuery("alice")
		c.ApplyResults(ctx, []models.User{{ID: "1", Name: "Alice"}}, nil)
		c.Clear()
		assert.Equal(t, DisplayRecent, c.Display())
	})
}
