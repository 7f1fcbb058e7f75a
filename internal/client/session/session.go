// Package session reads the opaque session credential for the current user.
//
// The token is produced elsewhere (the login flow of the companion web app or
// a support tool); this client only checks that one is present and extracts
// the viewer identity from its claims. The token is deliberately not
// validated locally: the server rejects a bad one on the first call.
package session

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"socialcli/internal/common"
)

// Provider is the injected identity source for the client. Keeping it an
// interface (instead of ambient file/env reads spread around) makes the
// auth-gated paths deterministic in tests.
type Provider interface {
	// Token returns the session token. common.ErrNoSession means the user
	// has to log in first.
	Token() (string, error)

	// ViewerID returns the id of the logged-in user, decoded from the token
	// without signature verification.
	ViewerID(ctx context.Context) (string, error)
}

// Claims carries the registered claims plus the user id the token was
// issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// FileProvider reads the token from a file, trimming surrounding whitespace.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Token() (string, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", common.ErrNoSession
		}
		return "", err
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", common.ErrNoSession
	}
	return token, nil
}

func (p *FileProvider) ViewerID(ctx context.Context) (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	return DecodeViewerID(token)
}

// DecodeViewerID extracts the user id from a JWT without verifying its
// signature. The custom userId claim wins; the registered subject is the
// fallback for tokens minted by older server builds.
func DecodeViewerID(token string) (string, error) {
	claims := &Claims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", common.ErrInvalidToken
	}

	if claims.UserID != "" {
		return claims.UserID, nil
	}
	if claims.Subject != "" {
		return claims.Subject, nil
	}
	return "", common.ErrInvalidToken
}
