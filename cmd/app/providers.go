package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/cosmic-calendar/internal/domain/alerts"
	"github.com/yanqian/cosmic-calendar/internal/domain/calendar"
	"github.com/yanqian/cosmic-calendar/internal/domain/profile"
	"github.com/yanqian/cosmic-calendar/internal/domain/scoring"
	"github.com/yanqian/cosmic-calendar/internal/infra/alertqueue"
	"github.com/yanqian/cosmic-calendar/internal/infra/config"
	"github.com/yanqian/cosmic-calendar/internal/infra/daycache"
	"github.com/yanqian/cosmic-calendar/internal/infra/profilerepo"
	"github.com/yanqian/cosmic-calendar/internal/infra/scheduler"
	"github.com/yanqian/cosmic-calendar/pkg/util"
)

func provideCalendarConfig(cfg *config.Config) calendar.Config {
	return calendar.Config{
		DefaultTimezone: cfg.Calendar.DefaultTimezone,
		CacheTTL:        cfg.Calendar.CacheTTL,
		MaxEventDays:    cfg.Calendar.MaxEventDays,
	}
}

func provideCalculator(cfg *config.Config) *scoring.Calculator {
	return scoring.NewCalculator(cfg.Calendar.MonthWorkers)
}

func provideChartSource(svc profile.Service) calendar.ChartSource {
	return svc
}

func provideProfileRepository(cfg *config.Config, logger *slog.Logger) profile.Repository {
	fallback := profilerepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Profiles.Postgres.DSN)
	if dsn == "" {
		logger.Info("profiles postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Profiles.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Profiles.Postgres.MaxConns
	}
	if cfg.Profiles.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Profiles.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	repo := profilerepo.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("profile schema setup failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("profiles postgres repository enabled")
	return repo
}

func provideMonthStore(cfg *config.Config, logger *slog.Logger) calendar.Store {
	if !cfg.Cache.Redis.Enabled {
		return daycache.NewMemoryStore()
	}
	client, err := newValkeyClient(cfg.Cache.Redis.Addr)
	if err != nil {
		logger.Error("valkey cache unavailable, falling back to memory store", "error", err)
		return daycache.NewMemoryStore()
	}
	logger.Info("month valkey cache enabled", "addr", cfg.Cache.Redis.Addr)
	return daycache.NewValkeyStore(client, "cosmic")
}

func provideAlertQueue(cfg *config.Config, logger *slog.Logger) alertqueue.HandlerQueue {
	handler := alertqueue.LogHandler(logger)
	if cfg.Alerts.Queue.Redis.Enabled {
		client, err := newValkeyClient(cfg.Alerts.Queue.Redis.Addr)
		if err != nil {
			logger.Error("valkey alert queue unavailable, using immediate queue", "error", err)
		} else {
			logger.Info("alert valkey queue enabled", "addr", cfg.Alerts.Queue.Redis.Addr, "key", cfg.Alerts.Queue.Key)
			queue := alertqueue.NewValkeyQueue(client, cfg.Alerts.Queue.Key, logger)
			queue.SetHandler(handler)
			return queue
		}
	}
	return alertqueue.NewImmediateQueue(handler)
}

func provideJobQueue(queue alertqueue.HandlerQueue) alerts.JobQueue {
	return queue
}

func provideAlertsConfig(cfg *config.Config, logger *slog.Logger) alerts.Config {
	loc, err := util.LoadLocation(cfg.Alerts.Timezone, time.UTC)
	if err != nil {
		logger.Warn("alerts timezone unknown, using UTC", "timezone", cfg.Alerts.Timezone, "error", err)
	}
	return alerts.Config{
		LookaheadDays: cfg.Alerts.LookaheadDays,
		Location:      loc,
	}
}

func provideScheduler(cfg *config.Config, alertCfg alerts.Config, svc alerts.Service, logger *slog.Logger) (*scheduler.Scheduler, error) {
	if !cfg.Alerts.Enabled {
		logger.Info("alert dispatch disabled")
		return nil, nil
	}
	sched := scheduler.New(alertCfg.Location, logger)
	err := sched.Add("alerts.dispatch", cfg.Alerts.Schedule, func(ctx context.Context, at time.Time) error {
		_, err := svc.Dispatch(ctx, at)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sched, nil
}

func newValkeyClient(addr string) (valkey.Client, error) {
	opt, err := buildValkeyOptions(addr)
	if err != nil {
		return nil, err
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
