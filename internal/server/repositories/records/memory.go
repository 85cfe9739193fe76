package records

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository locks per user: the outer RWMutex only guards the map
// of vaults, each vault serialises its own mutations.
type InMemoryRepository struct {
	mu     sync.RWMutex
	vaults map[string]*vault

	newID func() string
	now   func() time.Time
}

type vault struct {
	mu      sync.Mutex
	records []models.Record
}

// NewInMemoryRepository returns an empty vault store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		vaults: make(map[string]*vault),
		newID:  uuid.NewString,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// vaultFor returns the user's vault, creating it when create is set.
func (r *InMemoryRepository) vaultFor(username string, create bool) *vault {
	r.mu.RLock()
	v := r.vaults[username]
	r.mu.RUnlock()
	if v != nil || !create {
		return v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if v = r.vaults[username]; v == nil {
		v = &vault{}
		r.vaults[username] = v
	}
	return v
}

func (r *InMemoryRepository) List(ctx context.Context, username string) ([]models.Record, error) {
	return r.filter(ctx, username, func(models.Record) bool { return true })
}

func (r *InMemoryRepository) Search(ctx context.Context, username, site string) ([]models.Record, error) {
	return r.filter(ctx, username, func(rec models.Record) bool {
		return strings.EqualFold(rec.Site, site)
	})
}

func (r *InMemoryRepository) filter(ctx context.Context, username string, keep func(models.Record) bool) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := []models.Record{}
	v := r.vaultFor(username, false)
	if v == nil {
		return out, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for _, rec := range v.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Add(ctx context.Context, username string, fields models.RecordFields) (*models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := r.now()
	rec := models.Record{
		ID:              r.newID(),
		UserName:        username,
		Site:            fields.Site,
		AccountUsername: fields.AccountUsername,
		Secret:          fields.Secret,
		Category:        fields.Category,
		Notes:           fields.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	v := r.vaultFor(username, true)
	v.mu.Lock()
	defer v.mu.Unlock()

	if indexOf(v.records, rec.ID) >= 0 {
		return nil, common.ErrorAlreadyExists
	}
	v.records = append(v.records, rec)

	return &rec, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, username, id string, patch models.RecordPatch) (*models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := r.vaultFor(username, false)
	if v == nil {
		return nil, common.ErrorNotFound
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	i := indexOf(v.records, id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}

	rec := &v.records[i]
	patch.Apply(rec)
	if !patch.Empty() {
		rec.UpdatedAt = r.now()
	}

	out := *rec
	return &out, nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, username, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	v := r.vaultFor(username, false)
	if v == nil {
		return common.ErrorNotFound
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	var ok bool
	v.records, ok = removeByID(v.records, id)
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}

func indexOf(xs []models.Record, id string) int {
	for i := range xs {
		if xs[i].ID == id {
			return i
		}
	}
	return -1
}

// removeByID drops the first record with id, keeping the order of the rest.
func removeByID(xs []models.Record, id string) ([]models.Record, bool) {
	i := indexOf(xs, id)
	if i < 0 {
		return xs, false
	}
	return append(xs[:i], xs[i+1:]...), true
}
