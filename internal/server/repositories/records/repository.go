// Package records declares the vault store: each user's ordered collection
// of password records. The store trusts its caller to have authenticated
// the username it is given.
package records

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// Repository defines vault operations, all scoped to one username.
type Repository interface {
	// List returns the user's records in insertion order; never nil.
	List(ctx context.Context, username string) ([]models.Record, error)

	// Search returns the user's records whose site equals site, ignoring case.
	Search(ctx context.Context, username, site string) ([]models.Record, error)

	// Add stores a new record with a generated ID and timestamps.
	Add(ctx context.Context, username string, fields models.RecordFields) (*models.Record, error)

	// Update applies patch to the record with id, or returns common.ErrorNotFound.
	Update(ctx context.Context, username, id string, patch models.RecordPatch) (*models.Record, error)

	// Remove deletes the record with id, or returns common.ErrorNotFound.
	Remove(ctx context.Context, username, id string) error
}
