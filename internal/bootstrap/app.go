package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/cosmic-calendar/internal/infra/alertqueue"
	"github.com/yanqian/cosmic-calendar/internal/infra/config"
	"github.com/yanqian/cosmic-calendar/internal/infra/scheduler"
)

// App encapsulates the HTTP server and alert scheduler lifecycle.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	server    *http.Server
	scheduler *scheduler.Scheduler
	queue     alertqueue.HandlerQueue
}

// NewApp is used by Wire to build the runnable app. A nil scheduler means
// alerts are disabled.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, sched *scheduler.Scheduler, queue alertqueue.HandlerQueue) *App {
	return &App{
		cfg:       cfg,
		logger:    logger.With("component", "bootstrap"),
		server:    server,
		scheduler: sched,
		queue:     queue,
	}
}

// Run starts the HTTP server and scheduler and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	if a.scheduler != nil {
		a.scheduler.Start()
		a.logger.Info("alert scheduler started", "schedule", a.cfg.Alerts.Schedule, "timezone", a.cfg.Alerts.Timezone)
	}

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
		return a.shutdown()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return a.shutdown()
		}
		_ = a.shutdown()
		return err
	}
}

func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if a.scheduler != nil {
		if err := a.scheduler.Stop(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
	}
	if a.queue != nil {
		a.queue.Close()
	}
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
