package alerts

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/events"
	apperrors "github.com/yanqian/cosmic-calendar/pkg/errors"
)

type memoryQueue struct {
	seen map[string]bool
	jobs []Job
	err  error
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{seen: map[string]bool{}}
}

func (q *memoryQueue) Enqueue(_ context.Context, job Job) (bool, error) {
	if q.err != nil {
		return false, q.err
	}
	if q.seen[job.Key] {
		return false, nil
	}
	q.seen[job.Key] = true
	q.jobs = append(q.jobs, job)
	return true, nil
}

func newTestService(queue JobQueue) *service {
	return NewService(Config{LookaheadDays: 7}, queue, nil, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
}

func TestDispatchMercuryStation(t *testing.T) {
	queue := newMemoryQueue()
	svc := newTestService(queue)
	now := time.Date(2024, 1, 20, 6, 0, 0, 0, time.UTC)

	n, err := svc.Dispatch(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, len(queue.jobs), n)

	var titles []string
	for _, job := range queue.jobs {
		titles = append(titles, job.Title)
		require.NotEmpty(t, job.ID)
		require.False(t, job.NotifyAt.Before(now))
	}
	require.Contains(t, titles, "Mercury Retrograde Begins")
	require.Contains(t, titles, "Uranus Goes Direct")

	for _, job := range queue.jobs {
		if job.Title == "Mercury Retrograde Begins" {
			require.Equal(t, "mercury-retrograde-start-2024-01-21", job.Key)
			require.Equal(t, time.Date(2024, 1, 21, 9, 0, 0, 0, time.UTC), job.NotifyAt)
			require.Equal(t, "Mercury", job.Planet)
		}
	}

	again, err := svc.Dispatch(context.Background(), now)
	require.NoError(t, err)
	require.Zero(t, again)
}

func TestDispatchMoonJobsAndPastEvents(t *testing.T) {
	queue := newMemoryQueue()
	svc := newTestService(queue)
	now := time.Date(2031, 5, 10, 19, 0, 0, 0, time.UTC)
	mercury := ephemeris.Mercury
	svc.detect = func(from, to time.Time, loc *time.Location) []events.CosmicEvent {
		return []events.CosmicEvent{
			{Type: events.FullMoon, StartDate: time.Date(2031, 5, 10, 0, 0, 0, 0, time.UTC)},
			{Type: events.NewMoon, StartDate: time.Date(2031, 5, 12, 0, 0, 0, 0, time.UTC)},
			{Type: events.Retrograde, StartDate: time.Date(2031, 5, 13, 0, 0, 0, 0, time.UTC)},
			{Type: events.DirectStation, Planet: &mercury, StartDate: time.Date(2031, 5, 14, 0, 0, 0, 0, time.UTC)},
		}
	}

	n, err := svc.Dispatch(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "🌑 New Moon Tonight", queue.jobs[0].Title)
	require.Equal(t, "Set your intentions for the lunar cycle ahead.", queue.jobs[0].Body)
	require.Equal(t, "new-moon-2031-05-12", queue.jobs[0].Key)
	require.Equal(t, time.Date(2031, 5, 12, 18, 0, 0, 0, time.UTC), queue.jobs[0].NotifyAt)
	require.Equal(t, "Mercury Goes Direct", queue.jobs[1].Title)
	require.Equal(t, "mercury-retrograde-end-2031-05-14", queue.jobs[1].Key)
}

func TestDispatchQueueError(t *testing.T) {
	queue := newMemoryQueue()
	queue.err = errors.New("connection refused")
	svc := newTestService(queue)
	svc.detect = func(from, to time.Time, loc *time.Location) []events.CosmicEvent {
		return []events.CosmicEvent{{Type: events.FullMoon, StartDate: time.Date(2031, 5, 12, 0, 0, 0, 0, time.UTC)}}
	}

	_, err := svc.Dispatch(context.Background(), time.Date(2031, 5, 10, 0, 0, 0, 0, time.UTC))
	require.True(t, apperrors.IsCode(err, apperrors.CodeQueue))
}

func TestDispatchPassesLookaheadWindow(t *testing.T) {
	svc := NewService(Config{LookaheadDays: 3, Location: time.FixedZone("UTC+8", 8*3600)}, newMemoryQueue(), nil,
		slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)

	var gotFrom, gotTo time.Time
	svc.detect = func(from, to time.Time, loc *time.Location) []events.CosmicEvent {
		gotFrom, gotTo = from, to
		require.Equal(t, "UTC+8", loc.String())
		return nil
	}
	now := time.Date(2031, 5, 10, 20, 0, 0, 0, time.UTC)
	_, err := svc.Dispatch(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 11, gotFrom.Day())
	require.Equal(t, 14, gotTo.Day())
}
