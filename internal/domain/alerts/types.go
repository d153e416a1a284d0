package alerts

import (
	"context"
	"time"

	"github.com/yanqian/cosmic-calendar/internal/domain/events"
)

// Config holds runtime knobs for alert dispatch.
type Config struct {
	LookaheadDays int
	Location      *time.Location
}

// Job is one notification to deliver. Key is stable for the same event so
// queues can drop repeats across dispatch runs.
type Job struct {
	ID        string           `json:"id"`
	Key       string           `json:"key"`
	Type      events.EventType `json:"type"`
	Planet    string           `json:"planet,omitempty"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	NotifyAt  time.Time        `json:"notifyAt"`
	CreatedAt time.Time        `json:"createdAt"`
}

// JobQueue accepts alert jobs. Enqueue reports false when a job with the same
// Key was already accepted.
type JobQueue interface {
	Enqueue(ctx context.Context, job Job) (bool, error)
}

// Handler delivers a dequeued job.
type Handler func(ctx context.Context, job Job)
