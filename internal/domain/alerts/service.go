// Package alerts turns upcoming sky events into notification jobs.
package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/events"
	apperrors "github.com/yanqian/cosmic-calendar/pkg/errors"
	"github.com/yanqian/cosmic-calendar/pkg/metrics"
)

const (
	stationHour = 9
	moonHour    = 18
)

// Service dispatches alert jobs for the coming days.
type Service interface {
	Dispatch(ctx context.Context, now time.Time) (int, error)
}

type detector func(from, to time.Time, loc *time.Location) []events.CosmicEvent

type service struct {
	cfg     Config
	queue   JobQueue
	detect  detector
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewService wires up alert dispatch.
func NewService(cfg Config, queue JobQueue, m *metrics.Metrics, logger *slog.Logger) Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.LookaheadDays <= 0 {
		cfg.LookaheadDays = 7
	}
	return &service{
		cfg:     cfg,
		queue:   queue,
		detect:  events.Detect,
		metrics: m,
		logger:  logger.With("component", "alerts.service"),
	}
}

// Dispatch enqueues a job for every event starting between today and
// LookaheadDays ahead whose notification time is still in the future. It
// returns the number of newly accepted jobs.
func (s *service) Dispatch(ctx context.Context, now time.Time) (int, error) {
	local := now.In(s.cfg.Location)
	found := s.detect(local, local.AddDate(0, 0, s.cfg.LookaheadDays), s.cfg.Location)

	accepted := 0
	for _, event := range found {
		job, ok := buildJob(event, now)
		if !ok || job.NotifyAt.Before(now) {
			continue
		}
		added, err := s.queue.Enqueue(ctx, job)
		if err != nil {
			return accepted, apperrors.Wrap(apperrors.CodeQueue, "failed to enqueue alert", err)
		}
		if !added {
			continue
		}
		accepted++
		s.metrics.ObserveAlert(string(job.Type))
		s.logger.Info("alert enqueued", "key", job.Key, "notifyAt", job.NotifyAt)
	}
	s.logger.Info("alert dispatch finished", "events", len(found), "enqueued", accepted)
	return accepted, nil
}

func buildJob(event events.CosmicEvent, now time.Time) (Job, bool) {
	day := event.StartDate
	job := Job{
		ID:        uuid.NewString(),
		Type:      event.Type,
		CreatedAt: now.UTC(),
	}

	switch event.Type {
	case events.Retrograde, events.DirectStation:
		if event.Planet == nil {
			return Job{}, false
		}
		planet := *event.Planet
		job.Planet = planet.String()
		job.NotifyAt = at(day, stationHour)
		if event.Type == events.Retrograde {
			job.Title = fmt.Sprintf("%s Retrograde Begins", planet)
			job.Body = "Time to slow down and review. Tap to see how this affects you."
			job.Key = stationKey(planet, "start", day)
		} else {
			job.Title = fmt.Sprintf("%s Goes Direct", planet)
			job.Body = "The retrograde period ends. Forward motion resumes!"
			job.Key = stationKey(planet, "end", day)
		}
	case events.FullMoon:
		job.Title = fmt.Sprintf("%s %s Tonight", ephemeris.FullMoon.Symbol(), ephemeris.FullMoon)
		job.Body = "Heightened emotions and intuition. Perfect for manifestation rituals."
		job.NotifyAt = at(day, moonHour)
		job.Key = "full-moon-" + day.Format("2006-01-02")
	case events.NewMoon:
		job.Title = fmt.Sprintf("%s %s Tonight", ephemeris.NewMoon.Symbol(), ephemeris.NewMoon)
		job.Body = "Set your intentions for the lunar cycle ahead."
		job.NotifyAt = at(day, moonHour)
		job.Key = "new-moon-" + day.Format("2006-01-02")
	default:
		return Job{}, false
	}
	return job, true
}

func stationKey(p ephemeris.Planet, edge string, day time.Time) string {
	return fmt.Sprintf("%s-retrograde-%s-%s", strings.ToLower(p.String()), edge, day.Format("2006-01-02"))
}

func at(day time.Time, hour int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, day.Location())
}
