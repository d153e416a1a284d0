package profilerepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/profile"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	p := profile.Profile{
		ID: "6f1c1f5e-9a53-4b7e-8a59-1b1f8f0c2d11",
		Birth: ephemeris.BirthProfile{
			Name:      "Ada",
			BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			BirthTime: &ephemeris.TimeOfDay{Hour: 14, Minute: 30},
			Timezone:  "UTC",
		},
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, p))
	require.Error(t, repo.Create(ctx, p))

	got, found, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, p, got)

	got.Birth.BirthTime.Hour = 3
	again, _, _ := repo.Get(ctx, p.ID)
	require.Equal(t, 14, again.Birth.BirthTime.Hour)

	_, found, err = repo.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)
}

type fakeRow struct {
	values []any
}

func (r fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch ptr := d.(type) {
		case *string:
			*ptr = r.values[i].(string)
		case *time.Time:
			*ptr = r.values[i].(time.Time)
		case **int16:
			if v, ok := r.values[i].(int16); ok {
				*ptr = &v
			}
		case *float64:
			*ptr = r.values[i].(float64)
		}
	}
	return nil
}

func TestScanProfile(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	row := fakeRow{values: []any{
		"6f1c1f5e-9a53-4b7e-8a59-1b1f8f0c2d11", "Ada",
		time.Date(1990, 6, 15, 0, 0, 0, 0, tokyo), int16(14), int16(30),
		51.5, -0.12, "Europe/London",
		time.Date(2026, 1, 1, 9, 0, 0, 0, tokyo),
	}}
	p, err := scanProfile(row)
	require.NoError(t, err)
	require.Equal(t, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), p.Birth.BirthDate)
	require.Equal(t, &ephemeris.TimeOfDay{Hour: 14, Minute: 30}, p.Birth.BirthTime)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), p.CreatedAt)

	noTime := fakeRow{values: []any{
		"id", "Bo", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), nil, nil,
		0.0, 0.0, "UTC", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	p, err = scanProfile(noTime)
	require.NoError(t, err)
	require.Nil(t, p.Birth.BirthTime)
}
