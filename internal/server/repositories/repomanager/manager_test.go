package repomanager

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInMemoryRepositoryManager_StoresAreStable(t *testing.T) {
	m := NewInMemoryRepositoryManager(auth.OpaqueTokenGenerator{}, 0)

	require.NotNil(t, m.Users())
	require.NotNil(t, m.Sessions())
	require.NotNil(t, m.Records())

	assert.Same(t, m.Users(), m.Users())
	assert.Same(t, m.Sessions(), m.Sessions())
	assert.Same(t, m.Records(), m.Records())
}

func TestInMemoryRepositoryManager_StoresShareNothingAcrossManagers(t *testing.T) {
	ctx := context.Background()
	a := NewInMemoryRepositoryManager(auth.OpaqueTokenGenerator{}, 0)
	b := NewInMemoryRepositoryManager(auth.OpaqueTokenGenerator{}, 0)

	require.NoError(t, a.Users().Create(ctx, &models.User{UserName: "alice", Digest: "d"}))
	require.NoError(t, b.Users().Create(ctx, &models.User{UserName: "alice", Digest: "d"}))

	_, err := a.Records().Add(ctx, "alice", models.RecordFields{Site: "s", Secret: "p"})
	require.NoError(t, err)

	got, err := b.Records().List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, got)
}

var _ RepositoryManager = (*InMemoryRepositoryManager)(nil)
