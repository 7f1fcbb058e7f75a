// Package recent keeps the bounded, most-recent-first list of previously
// searched users and persists it to the local database.
package recent

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"socialcli/internal/client/models"
	"socialcli/internal/client/repositories/metadata"
	"socialcli/internal/dbx"
	"socialcli/internal/logging"
)

const (
	// DefaultCap bounds how many recent searches are kept.
	DefaultCap = 5

	listKey      = "recent_searches"
	updatedAtKey = "recent_searches_updated_at"
)

// Store owns the recent-searches list. Entries are snapshots taken at search
// time; they are replaced wholesale, never mutated in place. All methods are
// meant to be called from a single event loop.
//
// Persistence is fire-and-forget: storage failures are logged and the
// in-memory list stays authoritative for the session.
type Store struct {
	db   *sql.DB
	repo metadata.Repository
	log  logging.Logger
	cap  int

	entries []models.User

	// persistedThisSession guards against overwriting a previously stored
	// list with emptiness: an empty list is only written out after a
	// non-empty one was written earlier in this session.
	persistedThisSession bool
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		log:  log,
		cap:  DefaultCap,
	}
}

// Load restores the persisted list. Called once at startup. A missing or
// corrupt payload starts the session with an empty list; Load never fails.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.repo.Get(ctx, listKey)
	if err != nil {
		s.log.Warn(ctx, "reading recent searches", "error", err)
		return
	}
	if raw == nil {
		return
	}

	var list []models.User
	if err := json.Unmarshal(raw, &list); err != nil {
		s.log.Warn(ctx, "recent searches payload is corrupt, starting empty", "error", err)
		return
	}
	s.entries = list
}

// Prepend inserts user at the front and truncates to the cap. A user already
// present (by id) leaves the list untouched: no duplicate, no reordering.
func (s *Store) Prepend(ctx context.Context, user models.User) {
	for _, e := range s.entries {
		if e.ID == user.ID {
			return
		}
	}

	s.entries = append([]models.User{user}, s.entries...)
	if len(s.entries) > s.cap {
		s.entries = s.entries[:s.cap]
	}
	s.save(ctx)
}

// Remove deletes the entry with the given id, if present.
func (s *Store) Remove(ctx context.Context, id string) {
	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.entries) {
		return
	}
	s.entries = kept
	s.save(ctx)
}

// Entries returns a copy of the list, most recent first.
func (s *Store) Entries() []models.User {
	out := make([]models.User, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) save(ctx context.Context) {
	if len(s.entries) == 0 && !s.persistedThisSession {
		return
	}

	payload, err := json.Marshal(s.entries)
	if err != nil {
		s.log.Error(ctx, "serializing recent searches", "error", err)
		return
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, listKey, payload); err != nil {
			return err
		}
		return repo.Set(ctx, updatedAtKey, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
	if err != nil {
		s.log.Error(ctx, "saving recent searches", "error", err)
		return
	}

	if len(s.entries) > 0 {
		s.persistedThisSession = true
	}
}
