package users

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// InMemoryRepository keeps users in a map guarded by a RWMutex.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewInMemoryRepository returns an empty identity store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return common.ErrorAlreadyExists
	}
	r.users[user.UserName] = *user
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	u, ok := r.users[username]
	r.mu.RUnlock()

	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *InMemoryRepository) Verify(ctx context.Context, username, password string, h auth.Hasher) error {
	u, err := r.Get(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn the same hashing work so a missing user is not faster
			_, _ = h.Hash(password)
		}
		return err
	}

	if !h.Verify(u.Digest, password) {
		return common.ErrorMismatch
	}
	return nil
}
