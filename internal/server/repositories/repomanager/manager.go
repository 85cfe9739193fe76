// Package repomanager bundles the three stores the vault service depends on
// so they can be constructed and swapped as one unit.
package repomanager

import (
	"time"

	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/records"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Sessions() sessions.Repository
	Records() records.Repository
}

// InMemoryRepositoryManager vends process-local stores. Nothing survives a
// restart.
type InMemoryRepositoryManager struct {
	users    *users.InMemoryRepository
	sessions *sessions.InMemoryRegistry
	records  *records.InMemoryRepository
}

// NewInMemoryRepositoryManager builds empty stores; sessions are minted
// with tokens and expire after ttl (zero disables expiry).
func NewInMemoryRepositoryManager(tokens auth.TokenGenerator, ttl time.Duration) *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		sessions: sessions.NewInMemoryRegistry(tokens, ttl),
		records:  records.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository       { return m.users }
func (m *InMemoryRepositoryManager) Sessions() sessions.Repository { return m.sessions }
func (m *InMemoryRepositoryManager) Records() records.Repository   { return m.records }
