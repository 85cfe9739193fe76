package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// InMemoryRegistry indexes sessions both by token and by owner, so a new
// login can find and drop the previous token.
type InMemoryRegistry struct {
	mu      sync.Mutex
	byToken map[string]*models.Session
	byUser  map[string]string

	tokens auth.TokenGenerator
	ttl    time.Duration
	now    func() time.Time
}

// NewInMemoryRegistry returns an empty registry minting tokens with g.
// A ttl of zero disables expiry.
func NewInMemoryRegistry(g auth.TokenGenerator, ttl time.Duration) *InMemoryRegistry {
	return &InMemoryRegistry{
		byToken: make(map[string]*models.Session),
		byUser:  make(map[string]string),
		tokens:  g,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *InMemoryRegistry) Issue(ctx context.Context, username string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	token, err := r.tokens.Generate(username)
	if err != nil {
		return nil, fmt.Errorf("error generating session token: %w", err)
	}

	now := r.now()
	s := &models.Session{Token: token, UserName: username, CreatedAt: now}
	if r.ttl > 0 {
		s.ExpiresAt = now.Add(r.ttl)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byToken[token]; taken {
		return nil, fmt.Errorf("error generating session token: %w", common.ErrorAlreadyExists)
	}
	if old, ok := r.byUser[username]; ok {
		delete(r.byToken, old)
	}
	r.byToken[token] = s
	r.byUser[username] = token

	out := *s
	return &out, nil
}

func (r *InMemoryRegistry) Resolve(ctx context.Context, token, claimedUsername string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if token == "" || claimedUsername == "" {
		return "", common.ErrorUnauthorized
	}

	r.mu.Lock()
	s, ok := r.byToken[token]
	if ok && s.Expired(r.now()) {
		r.dropLocked(s)
		ok = false
	}
	r.mu.Unlock()

	if !ok || s.UserName != claimedUsername {
		return "", common.ErrorUnauthorized
	}
	if err := r.tokens.Validate(token, claimedUsername); err != nil {
		return "", common.ErrorUnauthorized
	}

	return s.UserName, nil
}

func (r *InMemoryRegistry) Revoke(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byToken[token]
	if !ok {
		return common.ErrorUnauthorized
	}
	r.dropLocked(s)
	return nil
}

func (r *InMemoryRegistry) PurgeExpired(ctx context.Context) int {
	if r.ttl <= 0 || ctx.Err() != nil {
		return 0
	}

	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, s := range r.byToken {
		if s.Expired(now) {
			r.dropLocked(s)
			n++
		}
	}
	return n
}

// dropLocked removes s from both indexes. r.mu must be held.
func (r *InMemoryRegistry) dropLocked(s *models.Session) {
	delete(r.byToken, s.Token)
	if r.byUser[s.UserName] == s.Token {
		delete(r.byUser, s.UserName)
	}
}
