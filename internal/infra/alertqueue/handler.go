package alertqueue

import (
	"context"
	"log/slog"

	"github.com/yanqian/cosmic-calendar/internal/domain/alerts"
)

// LogHandler records delivered jobs. Push delivery to devices belongs to the
// client platform, so the server side only logs the hand-off.
func LogHandler(logger *slog.Logger) alerts.Handler {
	logger = logger.With("component", "alertqueue.handler")
	return func(_ context.Context, job alerts.Job) {
		logger.Info("alert ready for delivery",
			"id", job.ID,
			"key", job.Key,
			"type", job.Type,
			"title", job.Title,
			"notifyAt", job.NotifyAt,
		)
	}
}
