package records

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestRepo() *InMemoryRepository {
	r := NewInMemoryRepository()
	n := 0
	r.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	r.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return r
}

func TestList_UnknownUserIsEmptyNotNil(t *testing.T) {
	r := NewInMemoryRepository()
	got, err := r.List(context.Background(), "ghost")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdd_AssignsIDAndTimestamps(t *testing.T) {
	r := NewInMemoryRepository()
	rec, err := r.Add(context.Background(), "alice", models.RecordFields{
		Site: "Gmail", AccountUsername: "alice@example.com", Secret: "pw1", Category: "Email",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "alice", rec.UserName)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	for _, site := range []string{"Gmail", "GitHub", "Bank"} {
		_, err := r.Add(ctx, "alice", models.RecordFields{Site: site, Secret: "x"})
		require.NoError(t, err)
	}

	got, err := r.List(ctx, "alice")
	require.NoError(t, err)

	var sites []string
	for _, rec := range got {
		sites = append(sites, rec.Site)
	}
	if diff := cmp.Diff([]string{"Gmail", "GitHub", "Bank"}, sites); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestVaultsAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	a, err := r.Add(ctx, "alice", models.RecordFields{Site: "Gmail", Secret: "pw1"})
	require.NoError(t, err)

	bobs, err := r.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, bobs)

	_, err = r.Update(ctx, "bob", a.ID, models.RecordPatch{Secret: strPtr("stolen")})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, r.Remove(ctx, "bob", a.ID), common.ErrorNotFound)

	_, err = r.Add(ctx, "bob", models.RecordFields{Site: "Bank", Secret: "b"})
	require.NoError(t, err)
	assert.ErrorIs(t, r.Remove(ctx, "bob", a.ID), common.ErrorNotFound)

	alices, _ := r.List(ctx, "alice")
	require.Len(t, alices, 1)
	assert.Equal(t, "pw1", alices[0].Secret)
}

func TestUpdate_PartialPatch(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	rec, err := r.Add(ctx, "alice", models.RecordFields{
		Site: "Gmail", AccountUsername: "alice@example.com", Secret: "pw1", Category: "Email",
	})
	require.NoError(t, err)

	got, err := r.Update(ctx, "alice", rec.ID, models.RecordPatch{Secret: strPtr("pw2")})
	require.NoError(t, err)

	want := *rec
	want.Secret = "pw2"
	want.UpdatedAt = got.UpdatedAt
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got.UpdatedAt.After(rec.UpdatedAt))
	assert.Equal(t, rec.CreatedAt, got.CreatedAt)

	list, _ := r.List(ctx, "alice")
	assert.Equal(t, "pw2", list[0].Secret)
}

func TestUpdate_EmptyPatchKeepsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	rec, _ := r.Add(ctx, "alice", models.RecordFields{Site: "Gmail", Secret: "pw1"})
	got, err := r.Update(ctx, "alice", rec.ID, models.RecordPatch{})
	require.NoError(t, err)
	assert.Equal(t, rec.UpdatedAt, got.UpdatedAt)
}

func TestUpdate_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	rec, _ := r.Add(ctx, "alice", models.RecordFields{Site: "Gmail", Secret: "pw1"})
	got, _ := r.Update(ctx, "alice", rec.ID, models.RecordPatch{Notes: strPtr("n")})
	got.Secret = "mutated"

	list, _ := r.List(ctx, "alice")
	assert.Equal(t, "pw1", list[0].Secret)
}

func TestRemove_KeepsOrderOfTheRest(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	var ids []string
	for _, site := range []string{"A", "B", "C", "D"} {
		rec, _ := r.Add(ctx, "alice", models.RecordFields{Site: site, Secret: "x"})
		ids = append(ids, rec.ID)
	}

	require.NoError(t, r.Remove(ctx, "alice", ids[1]))
	assert.ErrorIs(t, r.Remove(ctx, "alice", ids[1]), common.ErrorNotFound)

	got, _ := r.List(ctx, "alice")
	var sites []string
	for _, rec := range got {
		sites = append(sites, rec.Site)
	}
	assert.Equal(t, []string{"A", "C", "D"}, sites)
}

func TestSearch_MatchesSiteIgnoringCase(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	_, _ = r.Add(ctx, "alice", models.RecordFields{Site: "GitHub", Secret: "1"})
	_, _ = r.Add(ctx, "alice", models.RecordFields{Site: "Gmail", Secret: "2"})
	_, _ = r.Add(ctx, "alice", models.RecordFields{Site: "github", Secret: "3"})
	_, _ = r.Add(ctx, "bob", models.RecordFields{Site: "GitHub", Secret: "4"})

	got, err := r.Search(ctx, "alice", "GITHUB")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Secret)
	assert.Equal(t, "3", got[1].Secret)

	none, err := r.Search(ctx, "alice", "Git")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewInMemoryRepository()

	_, err := r.List(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = r.Add(ctx, "alice", models.RecordFields{Site: "s", Secret: "p"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = r.Update(ctx, "alice", "x", models.RecordPatch{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, r.Remove(ctx, "alice", "x"), context.Canceled)
}

func TestConcurrentAdds_NoLostWrites(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	const users, perUser = 4, 50
	var wg sync.WaitGroup
	for u := 0; u < users; u++ {
		name := fmt.Sprintf("user%d", u)
		for i := 0; i < perUser; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := r.Add(ctx, name, models.RecordFields{Site: "s", Secret: "p"})
				assert.NoError(t, err)
			}()
		}
	}
	wg.Wait()

	for u := 0; u < users; u++ {
		got, err := r.List(ctx, fmt.Sprintf("user%d", u))
		require.NoError(t, err)
		assert.Len(t, got, perUser)

		seen := map[string]bool{}
		for _, rec := range got {
			assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
			seen[rec.ID] = true
		}
	}
}
