package alertqueue

import (
	"context"
	"sync"

	"github.com/yanqian/cosmic-calendar/internal/domain/alerts"
)

// HandlerQueue supports setting a handler for job delivery.
type HandlerQueue interface {
	alerts.JobQueue
	SetHandler(handler alerts.Handler)
	Close()
}

// ImmediateQueue hands jobs to the handler on enqueue and remembers keys in
// memory to drop repeats.
type ImmediateQueue struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	handler alerts.Handler
}

// NewImmediateQueue constructs the queue.
func NewImmediateQueue(handler alerts.Handler) *ImmediateQueue {
	return &ImmediateQueue{seen: make(map[string]struct{}), handler: handler}
}

// SetHandler replaces the handler used for queued jobs.
func (q *ImmediateQueue) SetHandler(handler alerts.Handler) {
	q.mu.Lock()
	q.handler = handler
	q.mu.Unlock()
}

// Enqueue invokes the handler asynchronously.
func (q *ImmediateQueue) Enqueue(ctx context.Context, job alerts.Job) (bool, error) {
	q.mu.Lock()
	if _, dup := q.seen[job.Key]; dup {
		q.mu.Unlock()
		return false, nil
	}
	q.seen[job.Key] = struct{}{}
	handler := q.handler
	q.mu.Unlock()

	if handler != nil {
		go handler(context.WithoutCancel(ctx), job)
	}
	return true, nil
}

// Close is a no-op.
func (q *ImmediateQueue) Close() {}

var _ HandlerQueue = (*ImmediateQueue)(nil)
