package daycache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/cosmic-calendar/internal/domain/calendar"
	"github.com/yanqian/cosmic-calendar/internal/domain/scoring"
)

// ValkeyStore caches months as JSON strings in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "cosmic"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetMonth(ctx context.Context, key string) (map[string]scoring.CosmicDay, bool, error) {
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var days map[string]scoring.CosmicDay
	if err := json.Unmarshal([]byte(payload), &days); err != nil {
		return nil, false, err
	}
	return days, true, nil
}

func (s *ValkeyStore) SaveMonth(ctx context.Context, key string, days map[string]scoring.CosmicDay, ttl time.Duration) error {
	payload, err := json.Marshal(days)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return s.prefix + ":" + key
}

var _ calendar.Store = (*ValkeyStore)(nil)
