// Package users declares the identity store: the mapping from username to
// stored password digest.
package users

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// Repository defines identity operations.
type Repository interface {
	// Create inserts user. It fails with common.ErrorAlreadyExists when the
	// username is taken; the check and the insert happen atomically.
	Create(ctx context.Context, user *models.User) error

	// Get returns the user or common.ErrorNotFound.
	Get(ctx context.Context, username string) (*models.User, error)

	// Verify checks password against the stored digest using h. It returns
	// common.ErrorNotFound for unknown users and common.ErrorMismatch for a
	// wrong password.
	Verify(ctx context.Context, username, password string, h auth.Hasher) error
}
