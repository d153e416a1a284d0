package profilerepo

import (
	"context"
	"fmt"
	"sync"

	"github.com/yanqian/cosmic-calendar/internal/domain/profile"
)

// MemoryRepository keeps profiles in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]profile.Profile
}

// NewMemoryRepository builds an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]profile.Profile)}
}

// Create stores p; ids must be unique.
func (r *MemoryRepository) Create(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[p.ID]; exists {
		return fmt.Errorf("profile %s already exists", p.ID)
	}
	r.items[p.ID] = clone(p)
	return nil
}

// Get fetches by id.
func (r *MemoryRepository) Get(_ context.Context, id string) (profile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return profile.Profile{}, false, nil
	}
	return clone(p), true, nil
}

func clone(p profile.Profile) profile.Profile {
	if p.Birth.BirthTime != nil {
		t := *p.Birth.BirthTime
		p.Birth.BirthTime = &t
	}
	return p
}

var _ profile.Repository = (*MemoryRepository)(nil)
