// Package client assembles the pieces of the user-search client: session,
// local database, directory API, and the terminal UI.
package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"socialcli/internal/client/api"
	"socialcli/internal/client/config"
	"socialcli/internal/client/profile"
	"socialcli/internal/client/recent"
	"socialcli/internal/client/search"
	"socialcli/internal/client/session"
	"socialcli/internal/client/storage"
	"socialcli/internal/client/ui"
	"socialcli/internal/common"
	"socialcli/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db     *sql.DB
	api    api.Client
	search *search.Controller
	detail *profile.Detail
}

// NewApp wires the client together. It fails when no session token is
// available; everything past that gate degrades gracefully at runtime.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	sessions := session.NewFileProvider(c.SessionTokenPath)
	token, err := sessions.Token()
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			return nil, fmt.Errorf("no session token at %s, log in first: %w", c.SessionTokenPath, err)
		}
		return nil, fmt.Errorf("reading session token: %w", err)
	}

	// A token that carries no readable identity still lets the user search;
	// follow status just reads as "not following" everywhere.
	viewerID, err := sessions.ViewerID(ctx)
	if err != nil {
		log.Warn(ctx, "cannot decode viewer id from session token", "error", err)
		viewerID = ""
	}

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	recentStore := recent.NewStore(db, log)
	recentStore.Load(ctx)

	apiClient := api.NewGraphQLClient(c.ServerEndpointAddr, token, c.RequestTimeout, log)

	return &App{
		config: c,
		log:    log,
		db:     db,
		api:    apiClient,
		search: search.New(recentStore, log),
		detail: profile.NewDetail(viewerID, log),
	}, nil
}

// Run drives the terminal UI until the user quits.
func (a *App) Run() error {
	defer a.Close()
	return ui.Run(a.api, a.search, a.detail, a.config.RequestTimeout, a.log)
}

// Close releases the database and API client.
func (a *App) Close() {
	if err := a.api.Close(); err != nil {
		a.log.Warn(context.Background(), "closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing database", "error", err)
	}
}
