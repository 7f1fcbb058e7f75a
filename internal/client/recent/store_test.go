package recent

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"socialcli/internal/client/models"
	"socialcli/internal/logging"
)

var dbSeq int

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:recent_tests_%d?mode=memory&cache=shared", dbSeq)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newStore(t *testing.T, db *sql.DB) *Store {
	t.Helper()
	s := NewStore(db, testLogger())
	s.Load(context.Background())
	return s
}

func user(id, name string) models.User {
	return models.User{ID: id, Name: name}
}

func storedList(t *testing.T, db *sql.DB) []models.User {
	t.Helper()
	var raw []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = 'recent_searches'`).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)

	var list []models.User
	require.NoError(t, json.Unmarshal(raw, &list))
	return list
}

func seedList(t *testing.T, db *sql.DB, list []models.User) {
	t.Helper()
	raw, err := json.Marshal(list)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO metadata(key, value) VALUES ('recent_searches', ?)`, raw)
	require.NoError(t, err)
}

func TestLoad_EmptyDatabase(t *testing.T) {
	s := newStore(t, setupDB(t))
	assert.Zero(t, s.Len())
}

func TestLoad_CorruptPayload_StartsEmpty(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES ('recent_searches', 'not json')`)
	require.NoError(t, err)

	s := newStore(t, db)
	assert.Zero(t, s.Len())
}

func TestPrepend_MostRecentFirst(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	s.Prepend(ctx, user("1", "Alice A"))
	s.Prepend(ctx, user("2", "Alice B"))

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0].ID)
	assert.Equal(t, "1", entries[1].ID)

	stored := storedList(t, db)
	require.Len(t, stored, 2)
	assert.Equal(t, "2", stored[0].ID)
}

func TestPrepend_DuplicateID_NoOp(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	s.Prepend(ctx, user("1", "Alice"))
	s.Prepend(ctx, user("2", "Bob"))
	before := s.Entries()

	s.Prepend(ctx, user("1", "Alice again"))

	assert.Equal(t, before, s.Entries(), "list unchanged, no duplicate, no reordering")
}

func TestPrepend_TruncatesAtCap(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		s.Prepend(ctx, user(fmt.Sprint(i), fmt.Sprintf("User %d", i)))
	}

	entries := s.Entries()
	require.Len(t, entries, DefaultCap)
	assert.Equal(t, "7", entries[0].ID, "newest first")
	assert.Equal(t, "3", entries[4].ID, "oldest surviving entry")
}

func TestRemove_ExactEntryOnly(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	s.Prepend(ctx, user("1", "A"))
	s.Prepend(ctx, user("2", "B"))
	s.Prepend(ctx, user("3", "C"))

	s.Remove(ctx, "2")

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "3", entries[0].ID)
	assert.Equal(t, "1", entries[1].ID)
}

func TestRemove_UnknownID_NoWrite(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)

	s.Remove(context.Background(), "missing")

	assert.Nil(t, storedList(t, db), "nothing was ever persisted")
}

func TestSave_SkipsEmptyListOnFreshSession(t *testing.T) {
	db := setupDB(t)
	seedList(t, db, []models.User{user("1", "Alice")})

	s := newStore(t, db)
	require.Equal(t, 1, s.Len())

	// Dismissing the only loaded entry empties the in-memory list, but this
	// session never persisted a non-empty list, so storage keeps the old one.
	s.Remove(context.Background(), "1")
	assert.Zero(t, s.Len())

	stored := storedList(t, db)
	require.Len(t, stored, 1)
	assert.Equal(t, "1", stored[0].ID)
}

func TestSave_PersistsEmptyAfterNonEmptySaveThisSession(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	s.Prepend(ctx, user("1", "Alice"))
	s.Remove(ctx, "1")

	stored := storedList(t, db)
	require.NotNil(t, stored)
	assert.Empty(t, stored)
}

func TestLoad_RestoresAcrossSessions(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	first := newStore(t, db)
	first.Prepend(ctx, user("1", "Alice A"))
	first.Prepend(ctx, user("2", "Alice B"))

	second := newStore(t, db)
	entries := second.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0].ID)
	assert.Equal(t, "1", entries[1].ID)
}
