package daycache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/cosmic-calendar/internal/domain/calendar"
	"github.com/yanqian/cosmic-calendar/internal/domain/scoring"
)

type monthEntry struct {
	days      map[string]scoring.CosmicDay
	expiresAt time.Time
}

// MemoryStore caches months in process memory for tests and single instances.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]monthEntry
	now     func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]monthEntry),
		now:     time.Now,
	}
}

// GetMonth implements calendar.Store.
func (s *MemoryStore) GetMonth(_ context.Context, key string) (map[string]scoring.CosmicDay, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return copyDays(entry.days), true, nil
}

// SaveMonth stores days with an optional TTL; zero keeps them forever. Expired
// months left behind by keys that are never read again are dropped here.
func (s *MemoryStore) SaveMonth(_ context.Context, key string, days map[string]scoring.CosmicDay, ttl time.Duration) error {
	now := s.now()
	entry := monthEntry{days: copyDays(days)}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}
	s.mu.Lock()
	s.sweepLocked(now)
	s.entries[key] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	for k, e := range s.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}

func (s *MemoryStore) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func copyDays(in map[string]scoring.CosmicDay) map[string]scoring.CosmicDay {
	out := make(map[string]scoring.CosmicDay, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

var _ calendar.Store = (*MemoryStore)(nil)
