package profile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	apperrors "github.com/yanqian/cosmic-calendar/pkg/errors"
)

type stubRepo struct {
	items     map[string]Profile
	createErr error
	getErr    error
}

func newStubRepo() *stubRepo {
	return &stubRepo{items: map[string]Profile{}}
}

func (r *stubRepo) Create(_ context.Context, p Profile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.items[p.ID] = p
	return nil
}

func (r *stubRepo) Get(_ context.Context, id string) (Profile, bool, error) {
	if r.getErr != nil {
		return Profile{}, false, r.getErr
	}
	p, ok := r.items[id]
	return p, ok, nil
}

func newTestService(repo Repository) *service {
	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func validRequest() Request {
	return Request{
		Name:      "Ada",
		BirthDate: "1990-06-15",
		BirthTime: "14:30",
		Latitude:  40.71,
		Longitude: -74.0,
		Timezone:  "America/New_York",
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{"valid", func(*Request) {}, false},
		{"empty name", func(r *Request) { r.Name = "  " }, true},
		{"bad date", func(r *Request) { r.BirthDate = "15/06/1990" }, true},
		{"bad time", func(r *Request) { r.BirthTime = "2pm" }, true},
		{"latitude out of range", func(r *Request) { r.Latitude = 91 }, true},
		{"longitude out of range", func(r *Request) { r.Longitude = -181 }, true},
		{"no birth time", func(r *Request) { r.BirthTime = "" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := Parse(req)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseUnknownTimezoneFallsBack(t *testing.T) {
	req := validRequest()
	req.Timezone = "Nowhere/Atlantis"

	birth, err := Parse(req)
	require.ErrorIs(t, err, ErrUnknownTimezone)
	require.Equal(t, "UTC", birth.Timezone)
	require.Equal(t, "Ada", birth.Name)
	require.Equal(t, &ephemeris.TimeOfDay{Hour: 14, Minute: 30}, birth.BirthTime)
}

func TestServiceCreateAndGet(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), created.CreatedAt)
	require.Equal(t, "America/New_York", created.Birth.Timezone)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	chart, err := svc.Chart(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, chart.RisingSign)
	require.Equal(t, created.CreatedAt, chart.CalculatedAt)

	again, err := svc.Chart(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, chart, again)
}

func TestServiceCreateUnknownTimezoneStoresUTC(t *testing.T) {
	svc := newTestService(newStubRepo())
	req := validRequest()
	req.Timezone = "Nowhere/Atlantis"

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "UTC", created.Birth.Timezone)
}

func TestServiceErrors(t *testing.T) {
	ctx := context.Background()

	svc := newTestService(newStubRepo())
	_, err := svc.Get(ctx, "not-a-uuid")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Get(ctx, "6f1c1f5e-9a53-4b7e-8a59-1b1f8f0c2d11")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	failing := newStubRepo()
	failing.createErr = errors.New("disk full")
	_, err = newTestService(failing).Create(ctx, validRequest())
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))

	failing.getErr = errors.New("connection reset")
	_, err = newTestService(failing).Chart(ctx, "6f1c1f5e-9a53-4b7e-8a59-1b1f8f0c2d11")
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
}
