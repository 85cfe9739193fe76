// Package sessions declares the session registry that maps bearer tokens
// to the users that own them.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// Repository is the session registry. Every failure to resolve is reported
// as common.ErrorUnauthorized, whatever the underlying reason.
type Repository interface {
	// Issue creates a session for username, replacing any previous one. The
	// replaced token stops resolving immediately.
	Issue(ctx context.Context, username string) (*models.Session, error)

	// Resolve returns the owner of token when it equals claimedUsername.
	Resolve(ctx context.Context, token, claimedUsername string) (string, error)

	// Revoke ends the session identified by token.
	Revoke(ctx context.Context, token string) error

	// PurgeExpired drops expired sessions and reports how many were removed.
	PurgeExpired(ctx context.Context) int
}
