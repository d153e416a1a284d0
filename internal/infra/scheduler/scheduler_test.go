package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAddRejectsBadExpression(t *testing.T) {
	s := New(time.UTC, testLogger())
	err := s.Add("alerts", "not a schedule", func(context.Context, time.Time) error { return nil })
	require.Error(t, err)
	require.Zero(t, s.Entries())
}

func TestAddRegistersEntry(t *testing.T) {
	s := New(nil, testLogger())
	require.NoError(t, s.Add("alerts", "0 6 * * *", func(context.Context, time.Time) error { return nil }))
	require.NoError(t, s.Add("hourly", "@hourly", func(context.Context, time.Time) error { return nil }))
	require.Equal(t, 2, s.Entries())
}

func TestRunNowPassesTriggerTime(t *testing.T) {
	s := New(time.UTC, testLogger())
	fixed := time.Date(2031, 5, 10, 6, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	var got time.Time
	s.RunNow("alerts", func(_ context.Context, at time.Time) error {
		got = at
		return errors.New("ignored")
	})
	require.Equal(t, fixed, got)
}

func TestStartStop(t *testing.T) {
	s := New(time.UTC, testLogger())
	s.Start()
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))
	require.Error(t, s.ctx.Err())
}
