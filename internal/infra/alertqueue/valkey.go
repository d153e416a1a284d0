package alertqueue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/cosmic-calendar/internal/domain/alerts"
)

// ValkeyQueue persists jobs in a Valkey list and delivers them to a handler.
// A marker key per job Key, expiring after dedupeTTL, drops repeats.
type ValkeyQueue struct {
	client      valkey.Client
	queueKey    string
	dedupeTTL   time.Duration
	logger      *slog.Logger
	pollTimeout time.Duration

	mu      sync.Mutex
	handler alerts.Handler
	stop    chan struct{}
	started bool
	closed  bool
}

// NewValkeyQueue constructs a Valkey-backed queue.
func NewValkeyQueue(client valkey.Client, queueKey string, logger *slog.Logger) *ValkeyQueue {
	if queueKey == "" {
		queueKey = "cosmic:alerts"
	}
	return &ValkeyQueue{
		client:      client,
		queueKey:    queueKey,
		dedupeTTL:   45 * 24 * time.Hour,
		logger:      logger.With("component", "alertqueue.valkey"),
		pollTimeout: 5 * time.Second,
		stop:        make(chan struct{}),
	}
}

// SetHandler starts the worker loop that pops jobs and invokes the handler.
func (q *ValkeyQueue) SetHandler(handler alerts.Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handler = handler
	if handler == nil || q.started || q.closed {
		return
	}
	q.started = true
	go q.consume()
}

// Enqueue pushes a job unless its key was seen within dedupeTTL.
func (q *ValkeyQueue) Enqueue(ctx context.Context, job alerts.Job) (bool, error) {
	encoded, err := json.Marshal(job)
	if err != nil {
		return false, err
	}
	marker := q.queueKey + ":seen:" + job.Key
	setCmd := q.client.B().Set().Key(marker).Value(job.ID).Nx().ExSeconds(int64(q.dedupeTTL.Seconds())).Build()
	if err := q.client.Do(ctx, setCmd).Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return false, nil
		}
		return false, err
	}
	cmd := q.client.B().Lpush().Key(q.queueKey).Element(string(encoded)).Build()
	if err := q.client.Do(ctx, cmd).Error(); err != nil {
		_ = q.client.Do(ctx, q.client.B().Del().Key(marker).Build()).Error()
		return false, err
	}
	return true, nil
}

// Close stops the worker loop after its current poll.
func (q *ValkeyQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.stop)
}

func (q *ValkeyQueue) currentHandler() alerts.Handler {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.handler
}

func (q *ValkeyQueue) consume() {
	ctx := context.Background()
	for {
		select {
		case <-q.stop:
			return
		default:
		}
		resp := q.client.Do(ctx, q.client.B().Brpop().Key(q.queueKey).Timeout(q.pollTimeout.Seconds()).Build())
		values, err := resp.ToArray()
		if err != nil {
			if !valkey.IsValkeyNil(err) {
				q.logger.Warn("valkey queue pop failed", "error", err)
				time.Sleep(time.Second)
			}
			continue
		}
		handler := q.currentHandler()
		if len(values) < 2 || handler == nil {
			continue
		}
		raw, err := values[1].ToString()
		if err != nil {
			q.logger.Warn("valkey queue payload decode failed", "error", err)
			continue
		}
		var job alerts.Job
		if err := json.Unmarshal([]byte(raw), &job); err != nil {
			q.logger.Warn("valkey queue unmarshal failed", "error", err)
			continue
		}
		handler(ctx, job)
	}
}

var _ HandlerQueue = (*ValkeyQueue)(nil)
